package client

import (
	"io"
	"slices"
	"strings"

	// Packages
	multipart "github.com/mutablelogic/go-client/pkg/multipart"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Request options, applied to both request types. Options which the
// translation endpoint does not accept only set the transcription fields.
type opts struct {
	transcribe TranscriptionRequest
	translate  TranslationRequest
}

type Opt func(*opts) error

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func applyOpts(model string, r io.Reader, opt ...Opt) (*opts, error) {
	var o opts

	o.transcribe.Model = model
	o.transcribe.File = multipart.File{Body: r}
	o.translate.Model = model
	o.translate.File = multipart.File{Body: r}

	for _, opt := range opt {
		if err := opt(&o); err != nil {
			return nil, err
		}
	}
	return &o, nil
}

// NewTranscription creates a transcription request for the given model and
// audio source
func NewTranscription(model string, r io.Reader, opt ...Opt) (TranscriptionRequest, error) {
	o, err := applyOpts(model, r, opt...)
	if err != nil {
		return TranscriptionRequest{}, err
	}
	return o.transcribe, nil
}

// NewTranslation creates a translation request for the given model and audio
// source. Options which translation does not support are silently omitted
// from the request.
func NewTranslation(model string, r io.Reader, opt ...Opt) (TranslationRequest, error) {
	o, err := applyOpts(model, r, opt...)
	if err != nil {
		return TranslationRequest{}, err
	}
	return o.translate, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Set the source language for transcription. An empty language means
// auto-detection
func OptLanguage(language string) Opt {
	return func(o *opts) error {
		if language != "" {
			o.transcribe.Language = types.StringPtr(language)
		}
		return nil
	}
}

// Set the response format (json or verbose_json)
func OptFormat(v string) Opt {
	return func(o *opts) error {
		if !slices.Contains(Formats, v) {
			return httpresponse.ErrBadRequest.Withf("format %q not supported", v)
		}
		o.transcribe.Format = types.StringPtr(v)
		o.translate.Format = types.StringPtr(v)
		return nil
	}
}

// Set the filename sent with the audio payload
func OptPath(v string) Opt {
	return func(o *opts) error {
		o.transcribe.File.Path = v
		o.translate.File.Path = v
		return nil
	}
}

// Text to guide the model's style or continue a previous audio segment
func OptPrompt(v string) Opt {
	return func(o *opts) error {
		if v != "" {
			o.transcribe.Prompt = types.StringPtr(v)
			o.translate.Prompt = types.StringPtr(v)
		}
		return nil
	}
}

// Set timestamp granularities (word, segment) for transcription. The
// translation endpoint does not accept them and never sends the field.
func OptGranularities(granularities ...string) Opt {
	return func(o *opts) error {
		if len(granularities) == 0 {
			return nil
		}
		for _, granularity := range granularities {
			if !slices.Contains(Granularities, granularity) {
				return httpresponse.ErrBadRequest.Withf("granularity %q not supported", granularity)
			}
		}
		o.transcribe.Granularities = types.StringPtr(strings.Join(granularities, ","))
		return nil
	}
}

// Return the log probabilities of the tokens in the response
func OptLogprobs() Opt {
	return func(o *opts) error {
		if !slices.Contains(o.transcribe.Include, IncludeLogprobs) {
			o.transcribe.Include = append(o.transcribe.Include, IncludeLogprobs)
		}
		return nil
	}
}

// Stream the transcription response as server-sent events
func OptStream() Opt {
	return func(o *opts) error {
		o.transcribe.Stream = types.BoolPtr(true)
		return nil
	}
}
