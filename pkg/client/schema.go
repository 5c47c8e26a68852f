package client

import (
	"encoding/json"
	"io"
	"net/http"

	// Packages
	multipart "github.com/mutablelogic/go-client/pkg/multipart"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	types "github.com/mutablelogic/go-server/pkg/types"
	schema "github.com/mutablelogic/go-whisperkit/pkg/schema"
)

/////////////////////////////////////////////////////////////////////////////////
// TYPES

type TranslationRequest struct {
	Model  string         `json:"model"` // tiny, base, small, ...
	File   multipart.File `json:"file"`
	Prompt *string        `json:"prompt,omitempty"`
	Format *string        `json:"response_format,omitempty"` // json or verbose_json
}

// The translation endpoint does not accept timestamp granularities, so the
// request type has no field for them.
type TranscriptionRequest struct {
	TranslationRequest
	Language      *string  `json:"language,omitempty"` // en, es, fr, ... empty is auto-detect
	Stream        *bool    `json:"stream,omitempty"`
	Granularities *string  `json:"timestamp_granularities[],omitempty"` // comma-joined word, segment
	Include       []string `json:"include[],omitempty"`                 // logprobs
}

type TranscriptionResponse struct {
	Task     string                 `json:"task,omitempty"`
	Language string                 `json:"language,omitempty"`
	Duration schema.Timestamp       `json:"duration,omitempty"`
	Text     string                 `json:"text,omitempty"`
	Segments []*schema.Segment      `json:"segments,omitempty"`
	Words    []*schema.Word         `json:"words,omitempty"`
	Logprobs []*schema.TokenLogprob `json:"logprobs,omitempty"`
}

/////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	DefaultEndpoint = "http://localhost:50060/v1"
	TranscribePath  = "audio/transcriptions" // Endpoint for transcription
	TranslatePath   = "audio/translations"   // Endpoint for translation
)

const (
	FormatJson        = "json"
	FormatVerboseJson = "verbose_json"
)

const (
	GranularityWord    = "word"
	GranularitySegment = "segment"
)

const (
	IncludeLogprobs = "logprobs"
)

var (
	DefaultModel  = "tiny"
	Formats       = []string{FormatJson, FormatVerboseJson}
	Granularities = []string{GranularityWord, GranularitySegment}
)

/////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (s TranscriptionRequest) String() string {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

func (s TranslationRequest) String() string {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

func (s TranscriptionResponse) String() string {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

/////////////////////////////////////////////////////////////////////////////////
// UNMARSHALL

func (s *TranscriptionResponse) Unmarshal(header http.Header, r io.Reader) error {
	mimetype, err := types.ParseContentType(header.Get(types.ContentTypeHeader))
	if err != nil {
		return err
	}
	switch mimetype {
	case types.ContentTypeJSON:
		// If the content type is JSON, we unmarshal directly
		return json.NewDecoder(r).Decode(&s)
	case types.ContentTypeTextPlain:
		data, err := io.ReadAll(r)
		if err != nil {
			return err
		} else {
			s.Text = string(data)
		}
		return nil
	}

	// Decode error
	return httpresponse.ErrBadRequest.Withf("Unsupported content type %q", mimetype)
}

/////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (s *TranscriptionResponse) Transcription() *schema.Transcription {
	return &schema.Transcription{
		Task:     s.Task,
		Language: s.Language,
		Duration: s.Duration,
		Text:     s.Text,
		Segments: s.Segments,
		Words:    s.Words,
		Logprobs: s.Logprobs,
	}
}
