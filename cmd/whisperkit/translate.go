package main

import (
	"log"
	"os"
	"path/filepath"

	// Packages
	client "github.com/mutablelogic/go-whisperkit/pkg/client"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type TranslateCmd struct {
	Path   string `arg:"" help:"Path to audio file"`
	Format string `flag:"format" short:"f" help:"Response format" default:"verbose_json" enum:"json,verbose_json"`
	Prompt string `flag:"prompt" help:"Prompt to guide the model's style"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *TranslateCmd) Run(app *Globals) error {
	// Open the audio file
	f, err := os.Open(cmd.Path)
	if err != nil {
		return err
	}
	defer f.Close()

	// Create the request. The translation endpoint has no timestamp
	// granularities, so none are offered here.
	req, err := client.NewTranslation(app.Model, f,
		client.OptPath(filepath.Base(cmd.Path)),
		client.OptFormat(cmd.Format),
		client.OptPrompt(cmd.Prompt),
	)
	if err != nil {
		return err
	}

	// Perform the translation. Failures are logged, not escalated to the
	// process exit code.
	translation, err := app.client.Translate(app.ctx, req)
	if err != nil {
		log.Printf("translation failed: %v", err)
		return nil
	}
	return printTranscription(app, translation, cmd.Format)
}
