package main

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/sitec-sas/gestion/internal/finance"
	"github.com/sitec-sas/gestion/internal/model"
	"github.com/sitec-sas/gestion/internal/money"
	"github.com/sitec-sas/gestion/internal/pdf"
	"github.com/sitec-sas/gestion/internal/quotes"
)

var quoteCmd = &cobra.Command{
	Use:     "quote",
	Aliases: []string{"cotizacion"},
	Short:   "Administrar cotizaciones",
}

var quoteCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Crear una cotización",
	Long: `Crea una cotización para un cliente. Cada --item usa el formato
"descripción;cantidad;precio unitario", por ejemplo:

  sitec quote create --client <id> --service Venta \
      --item "Cámara Domo 4MP;2;350000" --item "Instalación punto;1;50000" \
      --labor 30000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		clientID, _ := cmd.Flags().GetString("client")
		rawServices, _ := cmd.Flags().GetStringArray("service")
		rawItems, _ := cmd.Flags().GetStringArray("item")
		rawLabor, _ := cmd.Flags().GetString("labor")

		services := make([]model.ServiceType, 0, len(rawServices))
		for _, s := range rawServices {
			st, err := model.ParseServiceType(s)
			if err != nil {
				return err
			}
			services = append(services, st)
		}

		items := make([]model.QuoteItem, 0, len(rawItems))
		for _, raw := range rawItems {
			it, err := parseItem(raw)
			if err != nil {
				return err
			}
			items = append(items, it)
		}

		labor := decimal.Zero
		if rawLabor != "" {
			var err error
			labor, err = decimal.NewFromString(rawLabor)
			if err != nil {
				return fmt.Errorf("parsing labor cost %q: %w", rawLabor, err)
			}
		}

		svc := quotes.NewService(gestor.store)
		q, err := svc.Create(cmd.Context(), quotes.CreateInput{
			ClientID:     clientID,
			ServiceTypes: services,
			Items:        items,
			LaborCost:    labor,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Cotización %s creada — total %s\n", q.Number, money.FormatCOP(q.Total))
		return nil
	},
}

var quoteListCmd = &cobra.Command{
	Use:   "list",
	Short: "Listar cotizaciones",
	RunE: func(cmd *cobra.Command, args []string) error {
		state := gestor.store.State()
		tw := newTable(os.Stdout)
		fmt.Fprintln(tw, "NÚMERO\tFECHA\tCLIENTE\tTOTAL\tESTADO")
		for _, q := range state.Quotes {
			clientName := q.ClientID
			if c, ok := state.ClientByID(q.ClientID); ok {
				clientName = c.Name
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
				q.Number, q.Date, clientName, money.FormatCOP(q.Total), statusBadge(q.Status))
		}
		return tw.Flush()
	},
}

var quoteShowCmd = &cobra.Command{
	Use:   "show <número|id>",
	Short: "Mostrar una cotización",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		state := gestor.store.State()
		q, err := resolveQuote(state, args[0])
		if err != nil {
			return err
		}
		printDocument(os.Stdout, "COTIZACIÓN "+q.Number, quoteText(state, q))
		return nil
	},
}

var quoteStatusCmd = &cobra.Command{
	Use:   "status <número|id> <Draft|Sent|Rejected>",
	Short: "Cambiar el estado de una cotización",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		q, err := resolveQuote(gestor.store.State(), args[0])
		if err != nil {
			return err
		}
		status, err := model.ParseQuoteStatus(args[1])
		if err != nil {
			return err
		}
		svc := quotes.NewService(gestor.store)
		if err := svc.SetStatus(cmd.Context(), q.ID, status); err != nil {
			return err
		}
		fmt.Printf("%s → %s\n", q.Number, statusBadge(status))
		return nil
	},
}

var quoteApproveCmd = &cobra.Command{
	Use:   "approve <número|id>",
	Short: "Aprobar una cotización",
	RunE: func(cmd *cobra.Command, args []string) error {
		q, err := resolveQuote(gestor.store.State(), args[0])
		if err != nil {
			return err
		}
		svc := quotes.NewService(gestor.store)
		approved, err := svc.Approve(cmd.Context(), q.ID, quotes.ConfirmerFunc(askConfirm))
		if err != nil {
			return err
		}
		if !approved {
			fmt.Println("Operación cancelada; ningún estado cambió.")
			return nil
		}
		fmt.Printf("%s → %s\n", q.Number, statusBadge(model.StatusApproved))
		return nil
	},
	Args: cobra.ExactArgs(1),
}

var quoteRmCmd = &cobra.Command{
	Use:   "rm <número|id>",
	Short: "Eliminar una cotización",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		q, err := resolveQuote(gestor.store.State(), args[0])
		if err != nil {
			return err
		}
		ok, err := askConfirm("¿Está seguro de eliminar esta cotización?")
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		svc := quotes.NewService(gestor.store)
		return svc.Delete(cmd.Context(), q.ID)
	},
}

var quotePDFCmd = &cobra.Command{
	Use:   "pdf <número|id>",
	Short: "Generar el PDF de una cotización",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		state := gestor.store.State()
		q, err := resolveQuote(state, args[0])
		if err != nil {
			return err
		}
		client, _ := state.ClientByID(q.ClientID)

		doc, err := pdf.QuoteDocument(q, client)
		if err != nil {
			return err
		}
		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = q.Number + ".pdf"
		}
		if err := os.WriteFile(out, doc, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", out, err)
		}
		fmt.Printf("PDF generado: %s\n", out)
		return nil
	},
}

var quoteShareCmd = &cobra.Command{
	Use:   "share <número|id>",
	Short: "Generar el enlace de WhatsApp para compartir",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		state := gestor.store.State()
		q, err := resolveQuote(state, args[0])
		if err != nil {
			return err
		}
		clientName := q.ClientID
		if c, ok := state.ClientByID(q.ClientID); ok {
			clientName = c.Name
		}
		labels := make([]string, len(q.ServiceTypes))
		for i, s := range q.ServiceTypes {
			labels[i] = string(s)
		}
		msg := fmt.Sprintf("SITEC - Cotización %s\nCliente: %s\nServicios: %s\nTotal: %s\n¡Gracias por preferirnos!",
			q.Number, clientName, strings.Join(labels, ", "), money.FormatCOP(q.Total))
		fmt.Printf("https://wa.me/?text=%s\n", url.QueryEscape(msg))
		return nil
	},
}

// resolveQuote finds a quote by display number or UUID. Display numbers
// can repeat after deletions, so an ambiguous number is an error.
func resolveQuote(state model.AppState, arg string) (model.Quote, error) {
	if q, ok := state.QuoteByID(arg); ok {
		return q, nil
	}
	var matches []model.Quote
	for _, q := range state.Quotes {
		if q.Number == arg {
			matches = append(matches, q)
		}
	}
	switch len(matches) {
	case 0:
		return model.Quote{}, fmt.Errorf("unknown quote %s", arg)
	case 1:
		return matches[0], nil
	default:
		return model.Quote{}, fmt.Errorf("number %s is ambiguous, use the full id", arg)
	}
}

// parseItem parses "description;quantity;unitPrice".
func parseItem(raw string) (model.QuoteItem, error) {
	parts := strings.Split(raw, ";")
	if len(parts) != 3 {
		return model.QuoteItem{}, fmt.Errorf("item %q: expected descripción;cantidad;precio", raw)
	}
	qty, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return model.QuoteItem{}, fmt.Errorf("item %q: parsing quantity: %w", raw, err)
	}
	price, err := decimal.NewFromString(strings.TrimSpace(parts[2]))
	if err != nil {
		return model.QuoteItem{}, fmt.Errorf("item %q: parsing unit price: %w", raw, err)
	}
	return model.QuoteItem{
		Description: strings.TrimSpace(parts[0]),
		Quantity:    qty,
		UnitPrice:   price,
	}, nil
}

// quoteText builds the plain-text body shown by `quote show`, using the
// frozen totals stored on the quote.
func quoteText(state model.AppState, q model.Quote) string {
	var b strings.Builder
	clientName := q.ClientID
	if c, ok := state.ClientByID(q.ClientID); ok {
		clientName = c.Name
	}
	labels := make([]string, len(q.ServiceTypes))
	for i, s := range q.ServiceTypes {
		labels[i] = string(s)
	}
	fmt.Fprintf(&b, "Cliente: %s\nFecha: %s\nServicios: %s\nEstado: %s\n\n",
		clientName, q.Date, strings.Join(labels, ", "), statusBadge(q.Status))
	for _, it := range q.Items {
		fmt.Fprintf(&b, "  %d x %-40s %s\n", it.Quantity, it.Description,
			money.FormatCOP(finance.LineTotal(it)))
	}
	fmt.Fprintf(&b, "\nSubtotal ítems:    %s\n", money.FormatCOP(q.SubtotalItems))
	fmt.Fprintf(&b, "Mano de obra:      %s\n", money.FormatCOP(q.LaborCost))
	fmt.Fprintf(&b, "Subtotal general:  %s\n", money.FormatCOP(q.SubtotalGeneral))
	fmt.Fprintf(&b, "IVA (19%%):         %s\n", money.FormatCOP(q.IVA))
	fmt.Fprintf(&b, "TOTAL:             %s\n", money.FormatCOP(q.Total))
	return b.String()
}

func init() {
	quoteCreateCmd.Flags().String("client", "", "id del cliente")
	quoteCreateCmd.Flags().StringArray("service", nil, "tipo de servicio (Venta, Mantenimiento, Instalación)")
	quoteCreateCmd.Flags().StringArray("item", nil, "ítem: descripción;cantidad;precio")
	quoteCreateCmd.Flags().String("labor", "", "costo de mano de obra")
	quotePDFCmd.Flags().String("out", "", "ruta del PDF de salida")

	quoteCmd.AddCommand(
		quoteCreateCmd, quoteListCmd, quoteShowCmd, quoteStatusCmd,
		quoteApproveCmd, quoteRmCmd, quotePDFCmd, quoteShareCmd,
	)
}
