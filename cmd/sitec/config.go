package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sitec-sas/gestion/internal/credential"
	"github.com/sitec-sas/gestion/internal/model"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuración de la aplicación",
}

var configSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Configurar la sincronización con la nube",
	RunE: func(cmd *cobra.Command, args []string) error {
		state := gestor.store.State()
		flags := cmd.Flags()

		if flags.Changed("url") {
			state.SyncConfig.RemoteURL, _ = flags.GetString("url")
		}
		if flags.Changed("key") {
			key, _ := flags.GetString("key")
			state.SyncConfig.RemoteKey = key
			// Mirror into the OS keyring so a scrubbed backup can be
			// restored without retyping the key.
			if err := credential.Set(credential.RemoteKeyName, key); err != nil {
				gestor.log.Warn().Err(err).Msg("storing remote key in keyring")
			}
		}
		if enable, _ := flags.GetBool("enable"); enable {
			state.SyncConfig.Enabled = true
		}
		if disable, _ := flags.GetBool("disable"); disable {
			state.SyncConfig.Enabled = false
		}

		if err := gestor.store.Commit(cmd.Context(), state); err != nil {
			return err
		}
		fmt.Println("Configuración guardada. La App intentará sincronizar automáticamente al hacer cambios.")
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Mostrar la configuración",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := gestor.store.State().SyncConfig
		fmt.Printf("Base de datos: %s\n", gestor.cfg.DataPath)
		fmt.Printf("Sincronización habilitada: %t\n", cfg.Enabled)
		fmt.Printf("URL remota: %s\n", cfg.RemoteURL)
		if cfg.RemoteKey != "" {
			fmt.Println("Key remota: configurada")
		} else {
			fmt.Println("Key remota: no configurada")
		}
		return nil
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Borrar todos los datos locales",
	RunE: func(cmd *cobra.Command, args []string) error {
		ok, err := askConfirm("ADVERTENCIA: Se borrarán todos los clientes, cotizaciones y reportes locales. ¿Continuar?")
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		return gestor.store.Replace(cmd.Context(), model.DefaultAppState())
	},
}

func init() {
	configSyncCmd.Flags().String("url", "", "URL del backend remoto")
	configSyncCmd.Flags().String("key", "", "API key del backend remoto")
	configSyncCmd.Flags().Bool("enable", false, "habilitar la sincronización")
	configSyncCmd.Flags().Bool("disable", false, "deshabilitar la sincronización")
	configCmd.AddCommand(configSyncCmd, configShowCmd)
}
