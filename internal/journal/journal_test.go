package journal_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/serroba/bureau/internal/journal"
	"github.com/stretchr/testify/require"
)

// failingEncoder is a mock encoder that always errors.
type failingEncoder struct {
	err   error
	calls int
}

func (f *failingEncoder) Encode(_ any) error {
	f.calls++

	return f.err
}

func TestJournal_Publish_Sequences(t *testing.T) {
	t.Parallel()

	j := journal.New()
	rec := journal.NewRecorder("rec")
	j.Register(rec)

	_, err := j.Publish(journal.EventHired, journal.StaffPayload{Name: "Alice", Grade: 20})
	require.NoError(t, err)

	ev, err := j.Publish(journal.EventPromoted, journal.StaffPayload{Name: "Alice", Grade: 19})
	require.NoError(t, err)
	require.Equal(t, 2, ev.Seq)

	expected := []journal.Event{
		{Seq: 1, Type: journal.EventHired, Payload: journal.StaffPayload{Name: "Alice", Grade: 20}},
		{Seq: 2, Type: journal.EventPromoted, Payload: journal.StaffPayload{Name: "Alice", Grade: 19}},
	}

	if diff := cmp.Diff(expected, rec.Events()); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestJournal_Publish_NoSinks(t *testing.T) {
	t.Parallel()

	j := journal.New()

	ev, err := j.Publish(journal.EventSigned, nil)
	require.NoError(t, err)
	require.Equal(t, 1, ev.Seq)
}

func TestJournal_Publish_SinkErrorDoesNotStopOthers(t *testing.T) {
	t.Parallel()

	j := journal.New()
	sinkErr := errors.New("disk full")
	broken := &failingEncoder{err: sinkErr}

	j.Register(journal.NewEncoderSink("broken", broken))

	rec := journal.NewRecorder("rec")
	j.Register(rec)

	_, err := j.Publish(journal.EventExecuted, nil)
	if !errors.Is(err, sinkErr) {
		t.Errorf("expected sink error, got %v", err)
	}

	require.Equal(t, 1, broken.calls)
	require.Equal(t, []journal.EventType{journal.EventExecuted}, rec.Types())
}

func TestJournal_RegisterReplaces(t *testing.T) {
	t.Parallel()

	j := journal.New()
	first := journal.NewRecorder("rec")
	second := journal.NewRecorder("rec")

	j.Register(first)
	j.Register(second)
	require.Equal(t, 1, j.SinkCount())

	_, err := j.Publish(journal.EventSigned, nil)
	require.NoError(t, err)

	require.Empty(t, first.Events())
	require.Len(t, second.Events(), 1)
}

func TestJournal_Unregister(t *testing.T) {
	t.Parallel()

	j := journal.New()
	rec := journal.NewRecorder("rec")
	j.Register(rec)
	j.Unregister("rec")
	j.Unregister("never-registered")

	require.Equal(t, 0, j.SinkCount())

	_, err := j.Publish(journal.EventSigned, nil)
	require.NoError(t, err)
	require.Empty(t, rec.Events())
}

func TestEncoderSink_JSONLines(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	j := journal.New()
	j.Register(journal.NewEncoderSink("file", json.NewEncoder(&buf)))

	_, err := j.Publish(journal.EventSignRefused, journal.DecisionPayload{
		FormID: "id-1",
		Form:   "Presidential Pardon",
		Actor:  "LowGrade",
		Grade:  30,
		Reason: "grade is too low",
	})
	require.NoError(t, err)

	var decoded struct {
		Seq     int                     `json:"seq"`
		Type    journal.EventType       `json:"type"`
		Payload journal.DecisionPayload `json:"payload"`
	}

	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, journal.EventSignRefused, decoded.Type)
	require.Equal(t, "LowGrade", decoded.Payload.Actor)
	require.Equal(t, 30, decoded.Payload.Grade)
}
