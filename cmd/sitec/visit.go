package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sitec-sas/gestion/internal/model"
)

var visitCmd = &cobra.Command{
	Use:     "visit",
	Aliases: []string{"visita"},
	Short:   "Administrar visitas técnicas",
}

var visitAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Programar una visita",
	RunE: func(cmd *cobra.Command, args []string) error {
		clientID, _ := cmd.Flags().GetString("client")
		techID, _ := cmd.Flags().GetString("tech")
		if clientID == "" {
			return fmt.Errorf("--client is required")
		}

		state := gestor.store.State()
		if _, ok := state.ClientByID(clientID); !ok {
			return fmt.Errorf("unknown client %s", clientID)
		}

		date, _ := cmd.Flags().GetString("date")
		if date == "" {
			date = time.Now().Format("2006-01-02")
		}
		purpose, _ := cmd.Flags().GetString("purpose")

		v := model.Visit{
			ID:           uuid.NewString(),
			ClientID:     clientID,
			TechnicianID: techID,
			Date:         date,
			Purpose:      purpose,
		}
		state.Visits = append([]model.Visit{v}, state.Visits...)
		if err := gestor.store.Commit(cmd.Context(), state); err != nil {
			return err
		}
		fmt.Printf("Visita programada (%s)\n", v.ID)
		return nil
	},
}

var visitListCmd = &cobra.Command{
	Use:   "list",
	Short: "Listar visitas",
	RunE: func(cmd *cobra.Command, args []string) error {
		state := gestor.store.State()
		tw := newTable(os.Stdout)
		fmt.Fprintln(tw, "ID\tFECHA\tCLIENTE\tPROPÓSITO")
		for _, v := range state.Visits {
			clientName := v.ClientID
			if c, ok := state.ClientByID(v.ClientID); ok {
				clientName = c.Name
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", v.ID, v.Date, clientName, v.Purpose)
		}
		return tw.Flush()
	},
}

func init() {
	visitAddCmd.Flags().String("client", "", "id del cliente")
	visitAddCmd.Flags().String("tech", "", "id del técnico")
	visitAddCmd.Flags().String("date", "", "fecha (YYYY-MM-DD, hoy por defecto)")
	visitAddCmd.Flags().String("purpose", "", "propósito de la visita")
	visitCmd.AddCommand(visitAddCmd, visitListCmd)
}
