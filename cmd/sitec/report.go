package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sitec-sas/gestion/internal/reports"
)

var reportCmd = &cobra.Command{
	Use:     "report",
	Aliases: []string{"reporte"},
	Short:   "Administrar reportes de trabajo",
}

var reportAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Crear un reporte de ejecución",
	RunE: func(cmd *cobra.Command, args []string) error {
		visitID, _ := cmd.Flags().GetString("visit")
		quoteID, _ := cmd.Flags().GetString("quote")
		activities, _ := cmd.Flags().GetString("activities")
		equipment, _ := cmd.Flags().GetString("equipment")
		observations, _ := cmd.Flags().GetString("obs")
		warranty, _ := cmd.Flags().GetInt("warranty")

		if quoteID != "" {
			q, err := resolveQuote(gestor.store.State(), quoteID)
			if err != nil {
				return err
			}
			quoteID = q.ID
		}

		svc := reports.NewService(gestor.store)
		r, err := svc.Create(cmd.Context(), reports.CreateInput{
			VisitID:             visitID,
			QuoteID:             quoteID,
			Activities:          activities,
			EquipmentIntervened: equipment,
			Observations:        observations,
			WarrantyMonths:      warranty,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Reporte creado (%s)\n", r.ID)
		return nil
	},
}

var reportListCmd = &cobra.Command{
	Use:   "list",
	Short: "Listar reportes",
	RunE: func(cmd *cobra.Command, args []string) error {
		state := gestor.store.State()
		tw := newTable(os.Stdout)
		fmt.Fprintln(tw, "ID\tFECHA\tCLIENTE\tGARANTÍA")
		for _, r := range state.Reports {
			clientName := r.ClientID
			if c, ok := state.ClientByID(r.ClientID); ok {
				clientName = c.Name
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d meses\n", r.ID, r.Date, clientName, r.WarrantyMonths)
		}
		return tw.Flush()
	},
}

var reportPrintCmd = &cobra.Command{
	Use:   "print <id>",
	Short: "Imprimir el resumen de un reporte",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		state := gestor.store.State()
		for _, r := range state.Reports {
			if r.ID == args[0] {
				printDocument(os.Stdout, "REPORTE DE TRABAJO", reports.Summary(state, r))
				return nil
			}
		}
		return fmt.Errorf("unknown report %s", args[0])
	},
}

func init() {
	reportAddCmd.Flags().String("visit", "", "id de la visita")
	reportAddCmd.Flags().String("quote", "", "cotización aprobada asociada (opcional)")
	reportAddCmd.Flags().String("activities", "", "actividades realizadas")
	reportAddCmd.Flags().String("equipment", "", "equipos intervenidos")
	reportAddCmd.Flags().String("obs", "", "observaciones")
	reportAddCmd.Flags().Int("warranty", 0, "meses de garantía (12 por defecto)")
	reportCmd.AddCommand(reportAddCmd, reportListCmd, reportPrintCmd)
}
