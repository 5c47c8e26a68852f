package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	// Packages
	kong "github.com/alecthomas/kong"
	tablewriter "github.com/djthorpe/go-tablewriter"
	opt "github.com/mutablelogic/go-client"
	client "github.com/mutablelogic/go-whisperkit/pkg/client"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	Url   string `name:"url" help:"URL of the WhisperKit service (can be set from WHISPERKIT_URL env)" default:"${WHISPERKIT_URL}"`
	Model string `name:"model" short:"m" help:"Model to use" default:"tiny"`
	Debug bool   `name:"debug" help:"Enable debug output"`

	// Writer, client and context
	writer *tablewriter.Writer
	client *client.Client
	ctx    context.Context
}

type CLI struct {
	Globals

	Transcribe TranscribeCmd `cmd:"transcribe" help:"Transcribe an audio file"`
	Translate  TranslateCmd  `cmd:"translate" help:"Translate an audio file to english"`
	Test       TestCmd       `cmd:"test" help:"Transcribe and translate sample audio files"`
	Compare    CompareCmd    `cmd:"compare" help:"Compare json and verbose_json response formats"`
	Ping       PingCmd       `cmd:"ping" help:"Test the connection to the WhisperKit service"`
	Version    VersionCmd    `cmd:"version" help:"Print version information"`
}

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	// The name of the executable
	name, err := os.Executable()
	if err != nil {
		panic(err)
	} else {
		name = filepath.Base(name)
	}

	// Create a cli parser
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(name),
		kong.Description("WhisperKit speech transcription and translation client"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{
			"WHISPERKIT_URL": envOrDefault("WHISPERKIT_URL", client.DefaultEndpoint),
		},
	)

	// Set client options
	opts := []opt.ClientOpt{}
	if cli.Globals.Debug {
		opts = append(opts, opt.OptTrace(os.Stderr, true))
	}

	// Create a whisperkit client
	remote, err := client.New(cli.Globals.Url, opts...)
	if err != nil {
		cmd.FatalIfErrorf(err)
		return
	} else {
		cli.Globals.client = remote
	}

	// Create a tablewriter object with text output
	writer := tablewriter.New(os.Stdout, tablewriter.OptOutputText())
	cli.Globals.writer = writer

	// Create a context
	var cancel context.CancelFunc
	cli.Globals.ctx, cancel = signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Run the command
	if err := cmd.Run(&cli.Globals); err != nil {
		cmd.FatalIfErrorf(err)
	}
}

func envOrDefault(name, def string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return def
}
