package schema_test

import (
	"encoding/json"
	"testing"

	// Packages
	schema "github.com/mutablelogic/go-whisperkit/pkg/schema"
	"github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_Timestamp_001(t *testing.T) {
	assert := assert.New(t)

	var ts schema.Timestamp
	assert.NoError(json.Unmarshal([]byte(`1.2`), &ts))
	assert.InDelta(1.2, ts.Seconds(), 1e-9)

	data, err := json.Marshal(ts)
	assert.NoError(err)
	assert.Equal("1.2", string(data))
}

func Test_Timestamp_002(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(4.0, schema.SecToTimestamp(4.0).Seconds())

	var ts schema.Timestamp
	assert.Error(json.Unmarshal([]byte(`"not a number"`), &ts))
}

func Test_Event_001(t *testing.T) {
	assert := assert.New(t)

	// Delta event
	var evt schema.Event
	assert.NoError(json.Unmarshal([]byte(`{"type":"transcript.text.delta","delta":"Hello"}`), &evt))
	assert.Equal(schema.TranscribeStreamDeltaType, evt.Type)
	assert.Equal("Hello", evt.Delta)

	// Done event with metadata
	assert.NoError(json.Unmarshal([]byte(`{"type":"transcript.text.done","text":"Hello world","language":"en","duration":4.0}`), &evt))
	assert.Equal(schema.TranscribeStreamDoneType, evt.Type)
	assert.Equal("Hello world", evt.Text)
	assert.Equal("en", evt.Language)
	if assert.NotNil(evt.Duration) {
		assert.Equal(4.0, *evt.Duration)
	}
}

func Test_Event_002(t *testing.T) {
	assert := assert.New(t)

	// An unknown type tag is not a decode failure
	var evt schema.Event
	assert.NoError(json.Unmarshal([]byte(`{"type":"transcript.text.language","language":"en"}`), &evt))
	assert.Equal("transcript.text.language", evt.Type)
	assert.Nil(evt.Duration)
}
