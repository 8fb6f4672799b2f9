// Command sitec manages the company's clients, technicians, quotes,
// visits and service reports. All data lives in a local snapshot; when
// cloud sync is configured, changes are pushed to the remote backend on
// a best-effort basis.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/sitec-sas/gestion/internal/credential"
	"github.com/sitec-sas/gestion/internal/model"
	"github.com/sitec-sas/gestion/internal/store"
	"github.com/sitec-sas/gestion/internal/sync"
)

// app holds the wired components for the lifetime of one invocation.
type app struct {
	cfg    *model.AppConfig
	log    zerolog.Logger
	store  *store.Store
	engine *sync.Engine
}

var (
	configPath string
	gestor     *app
)

var rootCmd *cobra.Command

func init() {
	rootCmd = &cobra.Command{
		Use:           "sitec",
		Short:         "Gestión local de clientes, cotizaciones y reportes de servicio",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return teardown()
		},
	}
}

func setup() error {
	path := configPath
	if path == "" {
		path = model.DefaultConfigPath()
	}
	cfg, err := model.LoadConfig(path)
	if err != nil {
		return err
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	st, err := store.Open(cfg.DataPath, log)
	if err != nil {
		return fmt.Errorf("opening local store: %w", err)
	}

	engine := sync.NewEngine(st, log)
	st.SetPusher(engine)

	gestor = &app{cfg: cfg, log: log, store: st, engine: engine}
	restoreRemoteKey()
	return nil
}

// restoreRemoteKey refills the remote API key from the OS keyring when a
// snapshot (e.g. a restored backup) carries an empty key with sync
// enabled.
func restoreRemoteKey() {
	state := gestor.store.State()
	cfg := state.SyncConfig
	if !cfg.Enabled || cfg.RemoteKey != "" {
		return
	}
	key, err := credential.Get(credential.RemoteKeyName)
	if err != nil || key == "" {
		return
	}
	state.SyncConfig.RemoteKey = key
	if err := gestor.store.Replace(rootCmd.Context(), state); err != nil {
		gestor.log.Warn().Err(err).Msg("restoring remote key from keyring")
		return
	}
	gestor.log.Debug().Msg("remote key restored from keyring")
}

// teardown flushes the store; Close waits for any in-flight push.
func teardown() error {
	if gestor == nil {
		return nil
	}
	return gestor.store.Close()
}

func main() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/sitec-gestion/config.yaml)")

	rootCmd.AddCommand(
		clientCmd,
		techCmd,
		quoteCmd,
		visitCmd,
		reportCmd,
		alertCmd,
		syncCmd,
		backupCmd,
		configCmd,
		resetCmd,
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
