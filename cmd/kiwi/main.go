package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/kiwinews/kiwi/pkg/kiwi"
	"golang.org/x/term"
)

type cli struct {
	Submit submitCmd `cmd:"" help:"Submit a story with a title."`
	Vote   voteCmd   `cmd:"" help:"Vote for a story."`
	Config configCmd `cmd:"" help:"Show or change the configuration."`
}

func main() {
	var cli cli

	ctx := kong.Parse(&cli)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// amplify runs the full pipeline for submit and vote: load the
// configuration, resolve the credential backend, build and sign the
// message, and deliver it. The response body is printed verbatim.
func amplify(title, href, password string) error {
	path, err := kiwi.ConfigPath()
	if err != nil {
		return err
	}

	cfg, err := kiwi.LoadConfig(path)
	if err != nil {
		return err
	}

	if !cfg.UseLedger {
		password, err = resolvePassword(password)
		if err != nil {
			return err
		}

		if password == "" {
			return fmt.Errorf("keystore backend needs a password: %w", kiwi.ErrValidation)
		}
	}

	payload, err := kiwi.Amplify(cfg.Signer(password), title, href)
	if err != nil {
		return err
	}

	body, err := (&kiwi.Client{}).Submit(cfg.Endpoint, payload)
	if err != nil {
		return err
	}

	fmt.Println(body)

	return nil
}

// resolvePassword prefers the positional argument and falls back to an
// interactive prompt when stdin is a terminal.
func resolvePassword(arg string) (string, error) {
	if arg != "" {
		return arg, nil
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", nil
	}

	return askPassword("Enter keystore password: ")
}

func askPassword(prompt string) (string, error) {
	defer func() { _, _ = fmt.Fprintln(os.Stderr) }()

	_, _ = fmt.Fprint(os.Stderr, prompt)

	pwd, err := term.ReadPassword(int(os.Stdin.Fd()))

	return string(pwd), err
}
