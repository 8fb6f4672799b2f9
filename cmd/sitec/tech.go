package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sitec-sas/gestion/internal/model"
)

var techCmd = &cobra.Command{
	Use:     "tech",
	Aliases: []string{"tecnico"},
	Short:   "Administrar técnicos",
}

var techAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Registrar un técnico",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		if name == "" {
			return fmt.Errorf("--name is required")
		}
		specialty, _ := cmd.Flags().GetString("specialty")
		if specialty == "" {
			specialty = model.SpecialtySecurity
		} else if !validSpecialty(specialty) {
			return fmt.Errorf("unknown specialty %q (options: %s)",
				specialty, strings.Join(model.Specialties, ", "))
		}

		t := model.Technician{ID: uuid.NewString(), Name: name, Specialty: specialty}
		t.Phone, _ = cmd.Flags().GetString("phone")
		t.Email, _ = cmd.Flags().GetString("email")

		state := gestor.store.State()
		state.Technicians = append([]model.Technician{t}, state.Technicians...)
		if err := gestor.store.Commit(cmd.Context(), state); err != nil {
			return err
		}
		fmt.Printf("Técnico %s registrado (%s)\n", t.Name, t.ID)
		return nil
	},
}

var techListCmd = &cobra.Command{
	Use:   "list",
	Short: "Listar técnicos",
	RunE: func(cmd *cobra.Command, args []string) error {
		state := gestor.store.State()
		tw := newTable(os.Stdout)
		fmt.Fprintln(tw, "ID\tNOMBRE\tESPECIALIDAD\tTELÉFONO")
		for _, t := range state.Technicians {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", t.ID, t.Name, t.Specialty, t.Phone)
		}
		return tw.Flush()
	},
}

var techRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Retirar un técnico",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ok, err := askConfirm("¿Desea retirar definitivamente a este técnico de la nómina de SITEC S.A.S.?")
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		state := gestor.store.State()
		kept := state.Technicians[:0]
		removed := false
		for _, t := range state.Technicians {
			if t.ID == args[0] {
				removed = true
				continue
			}
			kept = append(kept, t)
		}
		if !removed {
			return fmt.Errorf("unknown technician %s", args[0])
		}
		state.Technicians = kept
		return gestor.store.Commit(cmd.Context(), state)
	},
}

func validSpecialty(s string) bool {
	for _, opt := range model.Specialties {
		if opt == s {
			return true
		}
	}
	return false
}

func init() {
	techAddCmd.Flags().String("name", "", "nombre del técnico")
	techAddCmd.Flags().String("specialty", "", "área de especialidad")
	techAddCmd.Flags().String("phone", "", "teléfono")
	techAddCmd.Flags().String("email", "", "correo electrónico")
	techCmd.AddCommand(techAddCmd, techListCmd, techRmCmd)
}
