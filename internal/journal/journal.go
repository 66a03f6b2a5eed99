// Package journal records what happens in an office and fans each entry out
// to registered sinks.
package journal

import (
	"errors"
	"fmt"
	"slices"
)

// Journal delivers events to its sinks synchronously, in registration order.
type Journal struct {
	sinks map[string]Sink
	order []string
	seq   int
}

// New creates an empty journal.
func New() *Journal {
	return &Journal{
		sinks: make(map[string]Sink),
	}
}

// Register adds a sink. A sink with the same ID is replaced in place.
func (j *Journal) Register(s Sink) {
	if _, exists := j.sinks[s.ID()]; !exists {
		j.order = append(j.order, s.ID())
	}

	j.sinks[s.ID()] = s
}

// Unregister removes a sink.
func (j *Journal) Unregister(id string) {
	if _, exists := j.sinks[id]; !exists {
		return
	}

	delete(j.sinks, id)
	j.order = slices.DeleteFunc(j.order, func(v string) bool { return v == id })
}

// Publish stamps the next sequence number on an event of type t and sends
// it to every sink. A failing sink does not stop delivery to the others.
func (j *Journal) Publish(t EventType, payload any) (Event, error) {
	j.seq++
	ev := Event{Seq: j.seq, Type: t, Payload: payload}

	var errs []error

	for _, id := range j.order {
		if err := j.sinks[id].Send(ev); err != nil {
			errs = append(errs, fmt.Errorf("sink %s: %w", id, err))
		}
	}

	return ev, errors.Join(errs...)
}

// SinkCount returns the number of registered sinks.
func (j *Journal) SinkCount() int {
	return len(j.sinks)
}
