package main

import (
	"github.com/alecthomas/kong"
)

type voteCmd struct {
	Href     string `arg:"" help:"The URL of the story."`
	Password string `arg:"" optional:"" help:"The keystore password (keystore backend only)."`
}

func (cmd *voteCmd) Run(_ *kong.Context) error {
	// A vote is a submission with an empty title.
	return amplify("", cmd.Href, cmd.Password)
}
