package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	// Packages
	client "github.com/mutablelogic/go-whisperkit/pkg/client"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type CompareCmd struct {
	Path     string `arg:"" help:"Path to audio file"`
	Language string `flag:"language" short:"l" help:"Source language (default: auto-detect)"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Run transcribes the same audio with the json and verbose_json response
// formats and prints both results
func (cmd *CompareCmd) Run(app *Globals) error {
	// Open the audio file
	f, err := os.Open(cmd.Path)
	if err != nil {
		return err
	}
	defer f.Close()

	for _, format := range client.Formats {
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return err
		}
		fmt.Printf("--- Format %q ---\n", format)
		if err := cmd.run(app, f, format); err != nil {
			log.Printf("transcription failed: %v", err)
		}
	}
	return nil
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (cmd *CompareCmd) run(app *Globals, f *os.File, format string) error {
	req, err := client.NewTranscription(app.Model, f,
		client.OptPath(filepath.Base(cmd.Path)),
		client.OptFormat(format),
		client.OptLanguage(cmd.Language),
	)
	if err != nil {
		return err
	}
	transcription, err := app.client.Transcribe(app.ctx, req)
	if err != nil {
		return err
	}
	return printTranscription(app, transcription, format)
}
