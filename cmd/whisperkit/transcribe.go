package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	// Packages
	tablewriter "github.com/djthorpe/go-tablewriter"
	client "github.com/mutablelogic/go-whisperkit/pkg/client"
	schema "github.com/mutablelogic/go-whisperkit/pkg/schema"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type TranscribeCmd struct {
	Path          string `arg:"" help:"Path to audio file"`
	Language      string `flag:"language" short:"l" help:"Source language (default: auto-detect)"`
	Format        string `flag:"format" short:"f" help:"Response format" default:"verbose_json" enum:"json,verbose_json"`
	Granularities string `flag:"granularities" short:"t" help:"Comma-separated timestamp granularities (word,segment)"`
	Logprobs      bool   `flag:"logprobs" help:"Include token log probabilities"`
	Stream        bool   `flag:"stream" help:"Stream the transcription results"`
	Prompt        string `flag:"prompt" help:"Prompt to guide the model's style or continue a previous audio segment"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *TranscribeCmd) Run(app *Globals) error {
	// Open the audio file
	f, err := os.Open(cmd.Path)
	if err != nil {
		return err
	}
	defer f.Close()

	// Create the request
	opts := []client.Opt{
		client.OptPath(filepath.Base(cmd.Path)),
		client.OptFormat(cmd.Format),
		client.OptLanguage(cmd.Language),
		client.OptPrompt(cmd.Prompt),
	}
	if cmd.Granularities != "" {
		opts = append(opts, client.OptGranularities(splitGranularities(cmd.Granularities)...))
	}
	if cmd.Logprobs {
		opts = append(opts, client.OptLogprobs())
	}
	if cmd.Stream {
		opts = append(opts, client.OptStream())
		app.client.SetDeltaCallback(func(delta string) {
			fmt.Println(delta)
		})
		app.client.SetEventCallback(func(data string) {
			log.Printf("event: %s", data)
		})
	}
	req, err := client.NewTranscription(app.Model, f, opts...)
	if err != nil {
		return err
	}

	// Perform the transcription. Failures are logged, not escalated to the
	// process exit code.
	transcription, err := app.client.Transcribe(app.ctx, req)
	if err != nil {
		log.Printf("transcription failed: %v", err)
		return nil
	}
	return printTranscription(app, transcription, cmd.Format)
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func splitGranularities(v string) []string {
	var granularities []string
	for _, granularity := range strings.Split(v, ",") {
		if granularity = strings.TrimSpace(granularity); granularity != "" {
			granularities = append(granularities, granularity)
		}
	}
	return granularities
}

func printTranscription(app *Globals, t *schema.Transcription, format string) error {
	fmt.Println(t.Text)
	if format != client.FormatVerboseJson {
		return nil
	}
	if t.Language != "" {
		fmt.Println("Language:", t.Language)
	}
	if t.Duration > 0 {
		fmt.Printf("Duration: %.2fs\n", t.Duration.Seconds())
	}
	if len(t.Segments) > 0 {
		if err := app.writer.Write(t.Segments, tablewriter.OptHeader()); err != nil {
			return err
		}
	}
	if len(t.Words) > 0 {
		if err := app.writer.Write(t.Words, tablewriter.OptHeader()); err != nil {
			return err
		}
	}
	if len(t.Logprobs) > 0 {
		if err := app.writer.Write(t.Logprobs, tablewriter.OptHeader()); err != nil {
			return err
		}
	}
	return nil
}
