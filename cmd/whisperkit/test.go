package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	// Packages
	errors "github.com/djthorpe/go-errors"
	client "github.com/mutablelogic/go-whisperkit/pkg/client"
	resources "github.com/mutablelogic/go-whisperkit/pkg/resources"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type TestCmd struct {
	Resources     string `flag:"resources" help:"Directory of sample audio files" default:"samples"`
	File          string `flag:"file" help:"Specific sample file to process"`
	Format        string `flag:"format" short:"f" help:"Response format" default:"verbose_json" enum:"json,verbose_json"`
	Granularities string `flag:"granularities" short:"t" help:"Comma-separated timestamp granularities (word,segment)"`
	Stream        bool   `flag:"stream" help:"Stream the transcription results"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *TestCmd) Run(app *Globals) error {
	// Discover sample audio files
	files, err := resources.Discover(cmd.Resources)
	if err != nil {
		return err
	} else if len(files) == 0 {
		return errors.ErrNotFound.Withf("no audio files found in %q", cmd.Resources)
	}

	fmt.Printf("Found %d audio file(s) in %q\n", len(files), cmd.Resources)
	for _, file := range files {
		fmt.Println(" ", filepath.Base(file))
	}

	// A named file must be among the discovered resources. This aborts
	// before any network call is made.
	if cmd.File != "" {
		file, err := resources.Find(files, cmd.File)
		if err != nil {
			return err
		}
		files = []string{file}
	}

	// Transcribe each file, and translate the non-english samples. Per-file
	// failures are logged, not escalated to the process exit code.
	for _, file := range files {
		name := filepath.Base(file)
		fmt.Println("--- Testing:", name, "---")
		cmd.transcribeFile(app, file)
		if strings.Contains(name, "es_") || strings.Contains(name, "ja_") {
			cmd.translateFile(app, file)
		}
	}

	// Check log probabilities with the first wav file
	for _, file := range files {
		if strings.EqualFold(filepath.Ext(file), ".wav") {
			cmd.logprobsFile(app, file)
			break
		}
	}

	return nil
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (cmd *TestCmd) transcribeFile(app *Globals, path string) {
	f, err := os.Open(path)
	if err != nil {
		log.Printf("transcription failed: %v", err)
		return
	}
	defer f.Close()

	opts := []client.Opt{
		client.OptPath(filepath.Base(path)),
		client.OptFormat(cmd.Format),
	}
	if cmd.Granularities != "" {
		opts = append(opts, client.OptGranularities(splitGranularities(cmd.Granularities)...))
	}
	if cmd.Stream {
		opts = append(opts, client.OptStream())
		app.client.SetDeltaCallback(func(delta string) {
			fmt.Println(delta)
		})
	}

	req, err := client.NewTranscription(app.Model, f, opts...)
	if err != nil {
		log.Printf("transcription failed: %v", err)
		return
	}
	transcription, err := app.client.Transcribe(app.ctx, req)
	if err != nil {
		log.Printf("transcription failed: %v", err)
		return
	}
	if err := printTranscription(app, transcription, cmd.Format); err != nil {
		log.Printf("transcription failed: %v", err)
	}
}

func (cmd *TestCmd) translateFile(app *Globals, path string) {
	f, err := os.Open(path)
	if err != nil {
		log.Printf("translation failed: %v", err)
		return
	}
	defer f.Close()

	req, err := client.NewTranslation(app.Model, f,
		client.OptPath(filepath.Base(path)),
		client.OptFormat(cmd.Format),
	)
	if err != nil {
		log.Printf("translation failed: %v", err)
		return
	}
	translation, err := app.client.Translate(app.ctx, req)
	if err != nil {
		log.Printf("translation failed: %v", err)
		return
	}
	if err := printTranscription(app, translation, cmd.Format); err != nil {
		log.Printf("translation failed: %v", err)
	}
}

func (cmd *TestCmd) logprobsFile(app *Globals, path string) {
	fmt.Println("--- Testing log probabilities:", filepath.Base(path), "---")

	f, err := os.Open(path)
	if err != nil {
		log.Printf("logprobs check failed: %v", err)
		return
	}
	defer f.Close()

	req, err := client.NewTranscription(app.Model, f,
		client.OptPath(filepath.Base(path)),
		client.OptFormat(client.FormatJson),
		client.OptLogprobs(),
	)
	if err != nil {
		log.Printf("logprobs check failed: %v", err)
		return
	}
	transcription, err := app.client.Transcribe(app.ctx, req)
	if err != nil {
		log.Printf("logprobs check failed: %v", err)
		return
	}
	if len(transcription.Logprobs) == 0 {
		log.Printf("no logprobs in response")
		return
	}
	fmt.Printf("Received %d token logprobs\n", len(transcription.Logprobs))
	for i, token := range transcription.Logprobs {
		if i >= 5 {
			fmt.Printf("  ... and %d more tokens\n", len(transcription.Logprobs)-5)
			break
		}
		fmt.Printf("  %q logprob=%.3f\n", token.Token, token.Logprob)
	}
}
