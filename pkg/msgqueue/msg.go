package msgqueue

import (
	"encoding/json"
	"fmt"

	"github.com/bitnation/pangea-core/pkg/db"
)

// msgVersion is written into every stored record so future readers can tell
// which message shape they are looking at.
const msgVersion = 1

// Msg is a user-facing message. Key is a translation key and Params the
// values to interpolate into it; Interpret tells the reader whether the key
// needs translating at all.
type Msg struct {
	Key        string
	Params     map[string]any
	Interpret  bool
	ShouldShow bool
	Heading    string
}

// NewMsg builds a message that is stored but not surfaced to the user.
func NewMsg(key string, params map[string]any, interpret bool) *Msg {
	return &Msg{
		Key:       key,
		Params:    params,
		Interpret: interpret,
	}
}

// Display returns a copy of the message marked for display under the given
// heading key.
func (m *Msg) Display(heading string) *Msg {
	shown := *m
	shown.ShouldShow = true
	shown.Heading = heading
	return &shown
}

// record converts the message into its stored form.
func (m *Msg) record() (*db.MessageJob, error) {
	params := m.Params
	if params == nil {
		params = map[string]any{}
	}
	encoded, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("failed to encode message params: %w", err)
	}

	return &db.MessageJob{
		Msg:       m.Key,
		Params:    string(encoded),
		Interpret: m.Interpret,
		Display:   m.ShouldShow,
		Heading:   m.Heading,
		Version:   msgVersion,
	}, nil
}

// FromRecord rebuilds a message from its stored form.
func FromRecord(rec *db.MessageJob) (*Msg, error) {
	var params map[string]any
	if rec.Params != "" {
		if err := json.Unmarshal([]byte(rec.Params), &params); err != nil {
			return nil, fmt.Errorf("failed to decode message params: %w", err)
		}
	}

	return &Msg{
		Key:        rec.Msg,
		Params:     params,
		Interpret:  rec.Interpret,
		ShouldShow: rec.Display,
		Heading:    rec.Heading,
	}, nil
}
