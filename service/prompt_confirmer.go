package service

import (
	"errors"

	"github.com/manifoldco/promptui"
)

// PromptConfirmer asks yes/no questions on the terminal
type PromptConfirmer struct{}

// NewPromptConfirmer creates a terminal confirmer
func NewPromptConfirmer() *PromptConfirmer {
	return &PromptConfirmer{}
}

// Confirm returns true when the user answers yes. Ctrl-C or "n" is a no.
func (c *PromptConfirmer) Confirm(label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}
	if _, err := prompt.Run(); err != nil {
		if errors.Is(err, promptui.ErrAbort) || errors.Is(err, promptui.ErrInterrupt) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
