package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sitec-sas/gestion/internal/model"
)

var clientCmd = &cobra.Command{
	Use:     "client",
	Aliases: []string{"cliente"},
	Short:   "Administrar clientes",
}

var clientAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Registrar un cliente",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		nit, _ := cmd.Flags().GetString("nit")
		if name == "" || nit == "" {
			return fmt.Errorf("--name and --nit are required")
		}

		c := model.Client{ID: uuid.NewString(), Name: name, NIT: nit}
		c.Address, _ = cmd.Flags().GetString("address")
		c.Phone, _ = cmd.Flags().GetString("phone")
		c.Email, _ = cmd.Flags().GetString("email")
		c.ContactPerson, _ = cmd.Flags().GetString("contact")

		state := gestor.store.State()
		state.Clients = append([]model.Client{c}, state.Clients...)
		if err := gestor.store.Commit(cmd.Context(), state); err != nil {
			return err
		}
		fmt.Printf("Cliente %s registrado (%s)\n", c.Name, c.ID)
		return nil
	},
}

var clientListCmd = &cobra.Command{
	Use:   "list",
	Short: "Listar clientes",
	RunE: func(cmd *cobra.Command, args []string) error {
		state := gestor.store.State()
		tw := newTable(os.Stdout)
		fmt.Fprintln(tw, "ID\tNOMBRE\tNIT\tTELÉFONO\tCONTACTO")
		for _, c := range state.Clients {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", c.ID, c.Name, c.NIT, c.Phone, c.ContactPerson)
		}
		return tw.Flush()
	},
}

var clientEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Editar un cliente",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		state := gestor.store.State()
		idx := -1
		for i, c := range state.Clients {
			if c.ID == args[0] {
				idx = i
				break
			}
		}
		if idx < 0 {
			return fmt.Errorf("unknown client %s", args[0])
		}

		flags := cmd.Flags()
		setIf := func(name string, dst *string) {
			if flags.Changed(name) {
				*dst, _ = flags.GetString(name)
			}
		}
		setIf("name", &state.Clients[idx].Name)
		setIf("nit", &state.Clients[idx].NIT)
		setIf("address", &state.Clients[idx].Address)
		setIf("phone", &state.Clients[idx].Phone)
		setIf("email", &state.Clients[idx].Email)
		setIf("contact", &state.Clients[idx].ContactPerson)

		if err := gestor.store.Commit(cmd.Context(), state); err != nil {
			return err
		}
		fmt.Printf("Cliente %s actualizado\n", state.Clients[idx].Name)
		return nil
	},
}

var clientRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Eliminar un cliente",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Quotes referencing the client are left in place; references
		// are not enforced on delete.
		ok, err := askConfirm("¿Está seguro de eliminar este cliente de la base de datos de SITEC?")
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		state := gestor.store.State()
		kept := state.Clients[:0]
		removed := false
		for _, c := range state.Clients {
			if c.ID == args[0] {
				removed = true
				continue
			}
			kept = append(kept, c)
		}
		if !removed {
			return fmt.Errorf("unknown client %s", args[0])
		}
		state.Clients = kept
		return gestor.store.Commit(cmd.Context(), state)
	},
}

func init() {
	for _, c := range []*cobra.Command{clientAddCmd, clientEditCmd} {
		c.Flags().String("name", "", "nombre del cliente")
		c.Flags().String("nit", "", "NIT")
		c.Flags().String("address", "", "dirección")
		c.Flags().String("phone", "", "teléfono")
		c.Flags().String("email", "", "correo electrónico")
		c.Flags().String("contact", "", "persona de contacto")
	}
	clientCmd.AddCommand(clientAddCmd, clientListCmd, clientEditCmd, clientRmCmd)
}
