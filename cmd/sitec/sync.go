package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sitec-sas/gestion/internal/store"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sincronización con la nube",
}

var syncPullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Descargar los datos de la nube",
	Long: `Descarga las colecciones remotas y, tras confirmación, reemplaza las
colecciones locales correspondientes. Las colecciones que la nube no
devuelve conservan su valor local.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		state := gestor.store.State()

		fmt.Println("Sincronizando...")
		partial, err := gestor.engine.Pull(cmd.Context(), state.SyncConfig)
		if err != nil {
			return fmt.Errorf("pull failed: %w", err)
		}

		ok, err := askConfirm("Se han encontrado datos en la nube. ¿Desea descargarlos y actualizar su lista local?")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Descarga descartada; los datos locales no cambiaron.")
			return nil
		}

		next := store.MergeRemote(state, partial)
		if err := gestor.store.Commit(cmd.Context(), next); err != nil {
			return err
		}
		fmt.Printf("Datos sincronizados: %d clientes, %d cotizaciones.\n",
			len(next.Clients), len(next.Quotes))
		return nil
	},
}

var syncStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Mostrar el estado de sincronización",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := gestor.store.State().SyncConfig
		if cfg.Enabled {
			fmt.Println("Estado: CONECTADO A LA NUBE")
		} else {
			fmt.Println("Estado: TRABAJANDO LOCALMENTE")
		}
		if cfg.RemoteURL != "" {
			fmt.Printf("Remoto: %s\n", cfg.RemoteURL)
		}
		if cfg.LastSync != nil {
			fmt.Printf("Última sincronización: %s\n", cfg.LastSync.Local().Format("2006-01-02 15:04:05"))
		}
		return nil
	},
}

func init() {
	syncCmd.AddCommand(syncPullCmd, syncStatusCmd)
}
