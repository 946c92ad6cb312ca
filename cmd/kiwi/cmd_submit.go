package main

import (
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/kiwinews/kiwi/pkg/kiwi"
)

type submitCmd struct {
	Href     string `arg:"" help:"The URL of the story."`
	Title    string `arg:"" help:"The title of the story."`
	Password string `arg:"" optional:"" help:"The keystore password (keystore backend only)."`
}

func (cmd *submitCmd) Run(_ *kong.Context) error {
	// An empty title would turn the submission into a vote.
	if cmd.Title == "" {
		return fmt.Errorf("title must not be empty: %w", kiwi.ErrValidation)
	}

	return amplify(cmd.Title, cmd.Href, cmd.Password)
}
