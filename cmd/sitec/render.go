package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/sitec-sas/gestion/internal/model"
)

var (
	styleApproved = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	styleRejected = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	styleSent     = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	styleDraft    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	styleTitle    = lipgloss.NewStyle().Bold(true).Underline(true)
)

// statusBadge renders a quote status with its color.
func statusBadge(s model.QuoteStatus) string {
	switch s {
	case model.StatusApproved:
		return styleApproved.Render("Aprobada")
	case model.StatusRejected:
		return styleRejected.Render("Rechazada")
	case model.StatusSent:
		return styleSent.Render("Enviada")
	default:
		return styleDraft.Render("Borrador")
	}
}

// newTable returns a tab-aligned writer for list output.
func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

// printDocument writes a titled, pre-formatted text block. This is the
// plain-text print renderer: the caller supplies already-computed totals
// and text, never formatting logic.
func printDocument(w io.Writer, title, content string) {
	fmt.Fprintln(w, styleTitle.Render(title))
	fmt.Fprintln(w)
	fmt.Fprintln(w, content)
	fmt.Fprintln(w, strings.Repeat("─", 40))
}
