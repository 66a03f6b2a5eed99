package journal

// EventType identifies the kind of journal entry.
type EventType string

const (
	// Staff changes.
	EventHired    EventType = "hired"    // A bureaucrat joined the office
	EventPromoted EventType = "promoted" // A bureaucrat moved one grade up
	EventDemoted  EventType = "demoted"  // A bureaucrat moved one grade down

	EventPromoteRefused EventType = "promote_refused" // A promotion would leave the grade range
	EventDemoteRefused  EventType = "demote_refused"  // A demotion would leave the grade range

	// Paperwork.
	EventDrafted         EventType = "drafted"          // A form was filed
	EventDraftRefused    EventType = "draft_refused"    // The intern did not know the form
	EventSigned          EventType = "signed"           // A signature was accepted
	EventSignRefused     EventType = "sign_refused"     // A signature was refused
	EventExecuted        EventType = "executed"         // A form's action ran
	EventExecutionFailed EventType = "execution_failed" // An execution was refused or its action failed
	EventShredded        EventType = "shredded"         // A filed form was discarded
)

// Event is the envelope for every journal entry.
type Event struct {
	Seq     int       `json:"seq"`
	Type    EventType `json:"type"`
	Payload any       `json:"payload,omitempty"`
}

// StaffPayload describes a bureaucrat after a staff change.
type StaffPayload struct {
	Name   string `json:"name"`
	Grade  int    `json:"grade"`
	Reason string `json:"reason,omitempty"`
}

// DraftPayload describes a newly filed form.
type DraftPayload struct {
	FormID    string `json:"formId"`
	Alias     string `json:"alias,omitempty"`
	Kind      string `json:"kind"`
	Form      string `json:"form"`
	Target    string `json:"target,omitempty"`
	SignGrade int    `json:"signGrade"`
	ExecGrade int    `json:"execGrade"`
}

// ShredPayload identifies a discarded form.
type ShredPayload struct {
	FormID string `json:"formId"`
	Alias  string `json:"alias,omitempty"`
	Form   string `json:"form"`
}

// DraftRefusedPayload reports a form name the intern did not know.
type DraftRefusedPayload struct {
	Requested string   `json:"requested"`
	Available []string `json:"available"`
}

// DecisionPayload records a sign or execute attempt.
type DecisionPayload struct {
	FormID string `json:"formId"`
	Form   string `json:"form"`
	Actor  string `json:"actor"`
	Grade  int    `json:"grade"`
	Reason string `json:"reason,omitempty"`
}
