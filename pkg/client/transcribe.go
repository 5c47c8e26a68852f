package client

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"

	// Packages
	client "github.com/mutablelogic/go-client"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	types "github.com/mutablelogic/go-server/pkg/types"
	schema "github.com/mutablelogic/go-whisperkit/pkg/schema"
	stream "github.com/mutablelogic/go-whisperkit/pkg/stream"
)

/////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Transcribe performs a transcription request in the language of the speech.
// When the request has streaming set, the response is consumed as server-sent
// events and, if the stream ends without data and the audio source is
// seekable, the request is reissued once without streaming.
func (c *Client) Transcribe(ctx context.Context, req TranscriptionRequest) (*schema.Transcription, error) {
	// Check model
	if req.Model == "" {
		req.Model = DefaultModel
	}

	// Check file, set path if not provided
	if req.File.Body == nil {
		return nil, httpresponse.ErrBadRequest.With("file is required")
	} else if req.File.Path == "" {
		if f, ok := req.File.Body.(*os.File); ok {
			req.File.Path = filepath.Base(f.Name())
		}
	}

	if types.PtrBool(req.Stream) {
		return c.transcribeStream(ctx, req)
	}
	return c.transcribe(ctx, req)
}

/////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (c *Client) transcribe(ctx context.Context, req TranscriptionRequest) (*schema.Transcription, error) {
	var response TranscriptionResponse

	// Create multipart request, and execute it
	if payload, err := client.NewMultipartRequest(req, client.ContentTypeAny); err != nil {
		return nil, err
	} else if err := c.DoWithContext(ctx, payload, &response, client.OptPath(TranscribePath), client.OptNoTimeout()); err != nil {
		return nil, err
	}

	// Return success
	return response.Transcription(), nil
}

func (c *Client) transcribeStream(ctx context.Context, req TranscriptionRequest) (*schema.Transcription, error) {
	consumer := stream.New(stream.WithDelta(c.deltafn), stream.WithEvent(c.eventfn))

	// Create multipart request, and execute it, feeding each event payload
	// to the consumer in arrival order
	if payload, err := client.NewMultipartRequest(req, client.ContentTypeAny); err != nil {
		return nil, err
	} else if err := c.DoWithContext(ctx, payload, nil,
		client.OptPath(TranscribePath),
		client.OptNoTimeout(),
		client.OptTextStreamCallback(func(evt client.TextStreamEvent) error {
			// Ignore non-data events
			if evt.Data == "" {
				return nil
			}
			return consumer.Feed(evt.Data)
		}),
	); err != nil {
		return nil, err
	}

	result, err := consumer.Result()
	if errors.Is(err, stream.ErrNoData) {
		// One-shot fallback to the non-streaming path, when the audio
		// source can be rewound
		if seeker, ok := req.File.Body.(io.Seeker); ok {
			if _, err := seeker.Seek(0, io.SeekStart); err != nil {
				return nil, err
			}
			req.Stream = nil
			return c.transcribe(ctx, req)
		}
	}
	return result, err
}
