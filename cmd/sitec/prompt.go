package main

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

// askConfirm puts a yes/no question to the user. It backs the Confirmer
// contract used by the lifecycle service and gates every destructive or
// overwriting operation in the CLI.
func askConfirm(message string) (bool, error) {
	var ok bool
	err := huh.NewConfirm().
		Title(message).
		Affirmative("Sí").
		Negative("No").
		Value(&ok).
		Run()
	if err != nil {
		return false, fmt.Errorf("reading confirmation: %w", err)
	}
	return ok, nil
}
