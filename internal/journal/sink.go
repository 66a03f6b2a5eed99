package journal

import "slices"

// Encoder abstracts an event encoder for testability.
// *json.Encoder satisfies it.
type Encoder interface {
	Encode(v any) error
}

// Sink receives every event published to a journal.
type Sink interface {
	ID() string
	Send(ev Event) error
}

// EncoderSink writes events through an Encoder, one value per event.
type EncoderSink struct {
	id  string
	enc Encoder
}

// NewEncoderSink creates a sink wrapping enc.
func NewEncoderSink(id string, enc Encoder) *EncoderSink {
	return &EncoderSink{id: id, enc: enc}
}

// ID returns the sink identifier.
func (s *EncoderSink) ID() string {
	return s.id
}

// Send encodes the event.
func (s *EncoderSink) Send(ev Event) error {
	return s.enc.Encode(ev)
}

// Recorder keeps every event it receives in memory.
type Recorder struct {
	id     string
	events []Event
}

// NewRecorder creates an empty recorder.
func NewRecorder(id string) *Recorder {
	return &Recorder{id: id}
}

// ID returns the sink identifier.
func (r *Recorder) ID() string {
	return r.id
}

// Send appends the event.
func (r *Recorder) Send(ev Event) error {
	r.events = append(r.events, ev)

	return nil
}

// Events returns a copy of everything recorded so far.
func (r *Recorder) Events() []Event {
	return slices.Clone(r.events)
}

// Types returns the type of every recorded event, in order.
func (r *Recorder) Types() []EventType {
	types := make([]EventType, 0, len(r.events))

	for _, ev := range r.events {
		types = append(types, ev.Type)
	}

	return types
}

var (
	_ Sink = (*EncoderSink)(nil)
	_ Sink = (*Recorder)(nil)
)
