package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/sitec-sas/gestion/internal/backup"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Copias de seguridad",
}

var backupExportCmd = &cobra.Command{
	Use:   "export [ruta]",
	Short: "Exportar todos los datos a un archivo JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := backup.FileName(time.Now())
		if len(args) == 1 {
			path = args[0]
		}

		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
		defer f.Close()

		if err := backup.Export(gestor.store.State(), f); err != nil {
			return err
		}
		fmt.Printf("Copia de seguridad exportada: %s\n", path)
		return nil
	},
}

var backupImportCmd = &cobra.Command{
	Use:   "import <ruta>",
	Short: "Restaurar una copia de seguridad",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening %s: %w", args[0], err)
		}
		defer f.Close()

		// Parse before asking: a malformed file must fail without
		// touching local data.
		state, err := backup.Import(f)
		if err != nil {
			return fmt.Errorf("el archivo no es un respaldo válido de SITEC: %w", err)
		}

		ok, err := askConfirm("¿Desea sobrescribir todos los datos actuales con esta copia de seguridad?")
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		if err := gestor.store.Replace(cmd.Context(), state); err != nil {
			return err
		}
		fmt.Println("Datos importados con éxito.")
		return nil
	},
}

func init() {
	backupCmd.AddCommand(backupExportCmd, backupImportCmd)
}
