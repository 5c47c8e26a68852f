package client

import (
	"context"
	"os"
	"path/filepath"

	// Packages
	client "github.com/mutablelogic/go-client"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	schema "github.com/mutablelogic/go-whisperkit/pkg/schema"
)

/////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Translate performs a transcription request and returns the result in english
func (c *Client) Translate(ctx context.Context, req TranslationRequest) (*schema.Transcription, error) {
	var response TranscriptionResponse

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

	// Create multipart request, and execute it
	if payload, err := client.NewMultipartRequest(req, client.ContentTypeAny); err != nil {
		return nil, err
	} else if err := c.DoWithContext(ctx, payload, &response, client.OptPath(TranslatePath), client.OptNoTimeout()); err != nil {
		return nil, err
	}

	// Return success
	return response.Transcription(), nil
}
