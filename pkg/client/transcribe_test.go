package client_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	// Packages
	client "github.com/mutablelogic/go-whisperkit/pkg/client"
	"github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_Transcribe_001(t *testing.T) {
	assert := assert.New(t)

	// Verify the multipart fields of a non-streaming transcription request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(http.MethodPost, r.Method)
		assert.Equal("/v1/audio/transcriptions", r.URL.Path)
		if !assert.NoError(r.ParseMultipartForm(1 << 20)) {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		assert.Equal("tiny", r.FormValue("model"))
		assert.Equal(client.FormatVerboseJson, r.FormValue("response_format"))
		assert.Equal("en", r.FormValue("language"))
		assert.Equal("word,segment", r.FormValue("timestamp_granularities[]"))
		assert.Contains(strings.Join(r.MultipartForm.Value["include[]"], ","), "logprobs")
		assert.Empty(r.FormValue("stream"))

		_, hdr, err := r.FormFile("file")
		if assert.NoError(err) {
			assert.Equal("jfk.wav", hdr.Filename)
		}

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"text":"hi","language":"en","duration":1.2,"segments":[{"id":0,"start":0.0,"end":1.2,"text":"hi","avg_logprob":-0.2}],"words":[{"start":0.0,"end":1.2,"word":"hi"}],"logprobs":[{"token":"hi","logprob":-0.2}]}`)
	}))
	defer srv.Close()

	remote, err := client.New(srv.URL + "/v1")
	if !assert.NoError(err) {
		assert.FailNow("failed to create client")
	}

	req, err := client.NewTranscription("tiny", strings.NewReader("audio bytes"),
		client.OptPath("jfk.wav"),
		client.OptFormat(client.FormatVerboseJson),
		client.OptLanguage("en"),
		client.OptGranularities(client.GranularityWord, client.GranularitySegment),
		client.OptLogprobs(),
	)
	if !assert.NoError(err) {
		assert.FailNow("failed to create request")
	}

	transcription, err := remote.Transcribe(context.Background(), req)
	if !assert.NoError(err) {
		assert.FailNow("failed to call transcribe endpoint")
	}
	assert.Equal("hi", transcription.Text)
	assert.Equal("en", transcription.Language)
	assert.InDelta(1.2, transcription.Duration.Seconds(), 1e-9)
	if assert.Len(transcription.Segments, 1) {
		segment := transcription.Segments[0]
		assert.LessOrEqual(segment.Start, segment.End)
		assert.Equal("hi", segment.Text)
		if assert.NotNil(segment.AvgLogprob) {
			assert.LessOrEqual(*segment.AvgLogprob, 0.0)
		}
	}
	assert.Len(transcription.Words, 1)
	if assert.Len(transcription.Logprobs, 1) {
		assert.LessOrEqual(transcription.Logprobs[0].Logprob, 0.0)
	}
}

func Test_Transcribe_002(t *testing.T) {
	assert := assert.New(t)

	// A streaming transcription accumulates deltas and finishes on done
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !assert.NoError(r.ParseMultipartForm(1 << 20)) {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		assert.Equal("true", r.FormValue("stream"))

		w.Header().Set("Content-Type", "text/event-stream")
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "data: {\"type\":\"transcript.text.delta\",\"delta\":\"<|0.00|> Hello\"}\n\n")
		fmt.Fprint(w, "data: {\"type\":\"transcript.text.delta\",\"delta\":\" world<|4.00|>\"}\n\n")
		fmt.Fprint(w, "data: {\"type\":\"transcript.text.done\",\"text\":\"Hello world\",\"language\":\"en\",\"duration\":4.0}\n\n")
	}))
	defer srv.Close()

	remote, err := client.New(srv.URL + "/v1")
	if !assert.NoError(err) {
		assert.FailNow("failed to create client")
	}

	var deltas []string
	remote.SetDeltaCallback(func(delta string) {
		deltas = append(deltas, delta)
	})

	req, err := client.NewTranscription("tiny", strings.NewReader("audio bytes"),
		client.OptPath("jfk.wav"),
		client.OptStream(),
	)
	if !assert.NoError(err) {
		assert.FailNow("failed to create request")
	}

	transcription, err := remote.Transcribe(context.Background(), req)
	if !assert.NoError(err) {
		assert.FailNow("failed to call transcribe endpoint")
	}
	assert.Equal("Hello world", transcription.Text)
	assert.Equal("en", transcription.Language)
	assert.Equal(4.0, transcription.Duration.Seconds())
	assert.Equal([]string{"Hello", "world"}, deltas)
}

func Test_Transcribe_003(t *testing.T) {
	assert := assert.New(t)

	// An empty stream falls back once to the non-streaming path
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if !assert.NoError(r.ParseMultipartForm(1 << 20)) {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		switch requests {
		case 1:
			assert.Equal("true", r.FormValue("stream"))
			w.Header().Set("Content-Type", "text/event-stream")
			w.WriteHeader(http.StatusOK)
			fmt.Fprint(w, "data: {\"type\":\"transcript.text.language\",\"language\":\"en\"}\n\n")
		default:
			assert.Empty(r.FormValue("stream"))
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"text":"hi","language":"en","duration":1.2}`)
		}
	}))
	defer srv.Close()

	remote, err := client.New(srv.URL + "/v1")
	if !assert.NoError(err) {
		assert.FailNow("failed to create client")
	}

	req, err := client.NewTranscription("tiny", strings.NewReader("audio bytes"),
		client.OptPath("jfk.wav"),
		client.OptStream(),
	)
	if !assert.NoError(err) {
		assert.FailNow("failed to create request")
	}

	transcription, err := remote.Transcribe(context.Background(), req)
	if !assert.NoError(err) {
		assert.FailNow("failed to call transcribe endpoint")
	}
	assert.Equal("hi", transcription.Text)
	assert.Equal(2, requests)
}

func Test_Transcribe_004(t *testing.T) {
	assert := assert.New(t)

	// A non-success status is surfaced as an error, not a panic
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	remote, err := client.New(srv.URL + "/v1")
	if !assert.NoError(err) {
		assert.FailNow("failed to create client")
	}

	req, err := client.NewTranscription("tiny", strings.NewReader("audio bytes"), client.OptPath("jfk.wav"))
	if !assert.NoError(err) {
		assert.FailNow("failed to create request")
	}

	transcription, err := remote.Transcribe(context.Background(), req)
	assert.Error(err)
	assert.Nil(transcription)
}

func Test_Transcribe_005(t *testing.T) {
	assert := assert.New(t)

	// A missing file is rejected before any network call
	remote, err := client.New("http://localhost:0/v1")
	if !assert.NoError(err) {
		assert.FailNow("failed to create client")
	}

	_, err = remote.Transcribe(context.Background(), client.TranscriptionRequest{
		TranslationRequest: client.TranslationRequest{Model: "tiny"},
	})
	assert.Error(err)
}
