// Package prompt is the interactive input boundary. Workflows depend on the
// Prompter interface; Huh implements it with charmbracelet/huh forms.
package prompt

import (
	"errors"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/colonyops/probar/internal/core/styles"
)

// ErrAborted is returned when the user cancels a prompt.
var ErrAborted = errors.New("prompt aborted")

// Prompter asks the user for a single value at a time.
type Prompter interface {
	// Input asks for free text, pre-filled with initial.
	Input(title, initial string) (string, error)
	// Select asks the user to pick one of options and returns it.
	Select(title string, options []string) (string, error)
	// Confirm asks a yes/no question.
	Confirm(title string) (bool, error)
}

// Huh prompts on the terminal using huh forms. When stdin is not a
// terminal it falls back to huh's accessible, line-based mode.
type Huh struct {
	accessible bool
	theme      *huh.Theme
}

// NewHuh creates a Huh prompter reading from in.
func NewHuh(in *os.File) *Huh {
	return &Huh{
		accessible: !term.IsTerminal(int(in.Fd())),
		theme:      styles.FormTheme(),
	}
}

func (h *Huh) run(field huh.Field) error {
	err := huh.NewForm(huh.NewGroup(field)).
		WithTheme(h.theme).
		WithAccessible(h.accessible).
		Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrAborted
	}
	return err
}

// Input implements Prompter.
func (h *Huh) Input(title, initial string) (string, error) {
	value := initial
	err := h.run(huh.NewInput().
		Title(title).
		Value(&value))
	if err != nil {
		return "", err
	}
	return value, nil
}

// Select implements Prompter.
func (h *Huh) Select(title string, options []string) (string, error) {
	var value string
	err := h.run(huh.NewSelect[string]().
		Title(title).
		Options(huh.NewOptions(options...)...).
		Value(&value))
	if err != nil {
		return "", err
	}
	return value, nil
}

// Confirm implements Prompter.
func (h *Huh) Confirm(title string) (bool, error) {
	var value bool
	err := h.run(huh.NewConfirm().
		Title(title).
		Affirmative("Sí").
		Negative("No").
		Value(&value))
	if err != nil {
		return false, err
	}
	return value, nil
}
