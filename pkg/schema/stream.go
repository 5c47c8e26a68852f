package schema

import "encoding/json"

//////////////////////////////////////////////////////////////////////////////
// TYPES

// Event is one server-sent event payload emitted during a streaming
// transcription. Only the fields for the event's type are populated;
// payloads with an unrecognized type tag are still decoded, not rejected.
type Event struct {
	Type     string   `json:"type"`
	Delta    string   `json:"delta,omitempty"`    // transcript.text.delta
	Text     string   `json:"text,omitempty"`     // transcript.text.done
	Language string   `json:"language,omitempty"` // transcript.text.done
	Duration *float64 `json:"duration,omitempty"` // transcript.text.done, seconds
}

//////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	TranscribeStreamDeltaType = "transcript.text.delta"
	TranscribeStreamDoneType  = "transcript.text.done"
)

//////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (e Event) String() string {
	data, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}
