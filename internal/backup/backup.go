// Package backup serializes the complete AppState to a portable,
// human-readable JSON document for manual backup and restore. Import is
// all-or-nothing: a document that fails to parse changes nothing.
package backup

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/sitec-sas/gestion/internal/model"
)

// FileName returns the conventional backup file name for a given day,
// e.g. SITEC_BACKUP_2026-08-31.json.
func FileName(t time.Time) string {
	return fmt.Sprintf("SITEC_BACKUP_%s.json", t.Format("2006-01-02"))
}

// Export writes the full state, including the sync configuration, as
// indented JSON.
func Export(state model.AppState, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(state); err != nil {
		return fmt.Errorf("encoding backup: %w", err)
	}
	return nil
}

// Import parses a backup document. The caller applies the result with a
// confirmed Replace; a parse failure surfaces here and leaves local data
// untouched. Collections absent from the document come back as empty,
// not nil, so the result is always a complete AppState.
func Import(r io.Reader) (model.AppState, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return model.AppState{}, fmt.Errorf("reading backup: %w", err)
	}

	state := model.DefaultAppState()
	if err := json.Unmarshal(data, &state); err != nil {
		return model.AppState{}, fmt.Errorf("parsing backup: %w", err)
	}
	return state, nil
}
