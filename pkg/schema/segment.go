package schema

import (
	"encoding/json"
)

//////////////////////////////////////////////////////////////////////////////
// TYPES

type Segment struct {
	Id         int32     `json:"id" writer:",right,width:5"`
	Start      Timestamp `json:"start" writer:",right,width:5"`
	End        Timestamp `json:"end" writer:",right,width:5"`
	Text       string    `json:"text" writer:",wrap,width:70"`
	AvgLogprob *float64  `json:"avg_logprob,omitempty" writer:",right,width:8"`
}

type Word struct {
	Start Timestamp `json:"start" writer:",right,width:5"`
	End   Timestamp `json:"end" writer:",right,width:5"`
	Word  string    `json:"word" writer:",width:30"`
}

type TokenLogprob struct {
	Token   string  `json:"token" writer:",width:30"`
	Logprob float64 `json:"logprob" writer:",right,width:8"`
}

//////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (s *Segment) String() string {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

func (w *Word) String() string {
	data, err := json.MarshalIndent(w, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}
