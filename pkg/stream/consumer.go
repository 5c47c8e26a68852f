package stream

import (
	"encoding/json"
	"regexp"
	"strings"

	// Packages
	errors "github.com/djthorpe/go-errors"
	schema "github.com/mutablelogic/go-whisperkit/pkg/schema"
)

//////////////////////////////////////////////////////////////////////////////
// TYPES

// Consumer accumulates the payloads of a streaming transcription response,
// one server-sent event at a time, in arrival order. Delta events append to
// the accumulated text until a done event supersedes it with the final text.
type Consumer struct {
	deltafn  func(string)
	eventfn  func(string)
	text     string
	language string
	duration *float64
	done     bool
}

type Opt func(*Consumer)

//////////////////////////////////////////////////////////////////////////////
// GLOBALS

// ErrNoData is returned by Result when the stream closed without any text
// being received. The caller may recover by reissuing the request without
// streaming.
var ErrNoData = errors.ErrUnexpectedResponse.With("no data received from stream")

var (
	reMarker     = regexp.MustCompile(`<\|[^>]+\|>`)
	reWhitespace = regexp.MustCompile(`\s+`)
)

//////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a consumer for one streaming response
func New(opts ...Opt) *Consumer {
	c := new(Consumer)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithDelta sets a callback invoked with each cleaned delta fragment,
// for incremental display
func WithDelta(fn func(string)) Opt {
	return func(c *Consumer) {
		c.deltafn = fn
	}
}

// WithEvent sets a callback invoked with the raw payload of any event
// which is neither a delta nor a done event, for diagnostic display
func WithEvent(fn func(string)) Opt {
	return func(c *Consumer) {
		c.eventfn = fn
	}
}

//////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Feed processes one event payload. Payloads which do not parse as JSON are
// used verbatim as the transcription text. Events received after a done
// event are ignored.
func (c *Consumer) Feed(data string) error {
	if c.done {
		return nil
	}

	// A payload which is not JSON is treated as a raw text fragment
	var evt schema.Event
	if err := json.Unmarshal([]byte(data), &evt); err != nil {
		if text := strings.TrimSpace(data); text != "" {
			c.text = text
		}
		return nil
	}

	switch evt.Type {
	case schema.TranscribeStreamDeltaType:
		if delta := Clean(evt.Delta); delta != "" {
			c.text += delta
			if c.deltafn != nil {
				c.deltafn(delta)
			}
		}
	case schema.TranscribeStreamDoneType:
		// The done event is authoritative over accumulated deltas
		c.text = evt.Text
		if evt.Language != "" {
			c.language = evt.Language
		}
		if evt.Duration != nil {
			c.duration = evt.Duration
		}
		c.done = true
	default:
		if c.eventfn != nil {
			c.eventfn(data)
		}
	}

	// Return success
	return nil
}

// Done returns true once a done event has been observed
func (c *Consumer) Done() bool {
	return c.done
}

// Result returns the accumulated transcription, or ErrNoData when the stream
// ended without any text
func (c *Consumer) Result() (*schema.Transcription, error) {
	if c.text == "" {
		return nil, ErrNoData
	}
	transcription := &schema.Transcription{
		Language: c.language,
		Text:     c.text,
	}
	if c.duration != nil {
		transcription.Duration = schema.SecToTimestamp(*c.duration)
	}

	// Return success
	return transcription, nil
}

// Clean removes recognizer-internal marker tokens of the form <|...|> and
// collapses runs of whitespace to single spaces. Cleaning an already-cleaned
// string returns it unchanged.
func Clean(text string) string {
	text = reMarker.ReplaceAllString(text, "")
	text = reWhitespace.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
