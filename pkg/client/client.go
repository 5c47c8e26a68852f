package client

import (
	"context"
	"time"

	// Packages
	client "github.com/mutablelogic/go-client"
	multipart "github.com/mutablelogic/go-client/pkg/multipart"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	types "github.com/mutablelogic/go-server/pkg/types"
	wav "github.com/mutablelogic/go-whisperkit/pkg/wav"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Client is a client for the transcription and translation endpoints of a
// WhisperKit server. The endpoint is fixed at creation; no process-wide
// state is shared between clients.
type Client struct {
	*client.Client
	deltafn func(string)
	eventfn func(string)
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// Sample rate for the generated connection-test payload
	SampleRate = 16000
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a new client for the given endpoint, which should include the
// API version prefix (for example http://localhost:50060/v1)
func New(endpoint string, opts ...client.ClientOpt) (*Client, error) {
	if endpoint == "" {
		return nil, httpresponse.ErrBadRequest.With("missing endpoint")
	}
	opts = append([]client.ClientOpt{
		client.OptEndpoint(endpoint),
	}, opts...)
	if client, err := client.New(opts...); err != nil {
		return nil, err
	} else {
		return &Client{Client: client}, nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// SetDeltaCallback sets a callback invoked with each incremental text
// fragment of a streaming transcription
func (c *Client) SetDeltaCallback(fn func(string)) {
	c.deltafn = fn
}

// SetEventCallback sets a callback invoked with the raw payload of any
// unclassified stream event, for diagnostic display
func (c *Client) SetEventCallback(fn func(string)) {
	c.eventfn = fn
}

// Ping tests the connection to the server by transcribing a short generated
// silence payload
func (c *Client) Ping(ctx context.Context) error {
	r, err := wav.NewSilence(250*time.Millisecond, SampleRate)
	if err != nil {
		return err
	}
	_, err = c.Transcribe(ctx, TranscriptionRequest{
		TranslationRequest: TranslationRequest{
			Model: DefaultModel,
			File:  multipart.File{Path: "ping.wav", Body: r},
		},
		Language: types.StringPtr("en"),
	})
	return err
}
