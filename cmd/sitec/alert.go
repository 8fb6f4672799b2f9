package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sitec-sas/gestion/internal/model"
)

var alertCmd = &cobra.Command{
	Use:     "alert",
	Aliases: []string{"mantenimiento"},
	Short:   "Administrar alertas de mantenimiento",
}

var alertAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Crear una alerta de mantenimiento",
	RunE: func(cmd *cobra.Command, args []string) error {
		clientID, _ := cmd.Flags().GetString("client")
		equipment, _ := cmd.Flags().GetString("equipment")
		nextDue, _ := cmd.Flags().GetString("due")
		notes, _ := cmd.Flags().GetString("notes")
		if clientID == "" || equipment == "" || nextDue == "" {
			return fmt.Errorf("--client, --equipment and --due are required")
		}

		state := gestor.store.State()
		if _, ok := state.ClientByID(clientID); !ok {
			return fmt.Errorf("unknown client %s", clientID)
		}

		a := model.MaintenanceAlert{
			ID:        uuid.NewString(),
			ClientID:  clientID,
			Equipment: equipment,
			NextDue:   nextDue,
			Notes:     notes,
		}
		state.Maintenance = append([]model.MaintenanceAlert{a}, state.Maintenance...)
		if err := gestor.store.Commit(cmd.Context(), state); err != nil {
			return err
		}
		fmt.Printf("Alerta creada (%s)\n", a.ID)
		return nil
	},
}

var alertListCmd = &cobra.Command{
	Use:   "list",
	Short: "Listar alertas de mantenimiento",
	RunE: func(cmd *cobra.Command, args []string) error {
		state := gestor.store.State()
		tw := newTable(os.Stdout)
		fmt.Fprintln(tw, "ID\tCLIENTE\tEQUIPO\tPRÓXIMO SERVICIO")
		for _, a := range state.Maintenance {
			clientName := a.ClientID
			if c, ok := state.ClientByID(a.ClientID); ok {
				clientName = c.Name
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", a.ID, clientName, a.Equipment, a.NextDue)
		}
		return tw.Flush()
	},
}

func init() {
	alertAddCmd.Flags().String("client", "", "id del cliente")
	alertAddCmd.Flags().String("equipment", "", "equipo instalado")
	alertAddCmd.Flags().String("due", "", "fecha del próximo servicio (YYYY-MM-DD)")
	alertAddCmd.Flags().String("notes", "", "notas")
	alertCmd.AddCommand(alertAddCmd, alertListCmd)
}
