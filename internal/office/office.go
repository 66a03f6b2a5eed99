// Package office wires bureaucrats, forms, the intern and the journal
// together and reports every step the way a clerk would.
package office

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/serroba/bureau/internal/bureaucrat"
	"github.com/serroba/bureau/internal/form"
	"github.com/serroba/bureau/internal/intern"
	"github.com/serroba/bureau/internal/journal"
	"github.com/serroba/bureau/internal/metrics"
	"github.com/serroba/bureau/internal/registry"
	"github.com/serroba/bureau/internal/render"
	"go.uber.org/zap"
)

// Office coordinates the paperwork of one department.
type Office struct {
	out io.Writer

	// Dependencies
	store   registry.Store
	intern  *intern.Intern
	actions form.Performer
	journal *journal.Journal
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// Config holds configuration for creating an office.
type Config struct {
	Out     io.Writer
	Store   registry.Store
	Intern  *intern.Intern
	Actions form.Performer
	Journal *journal.Journal
	Metrics *metrics.Metrics
	Logger  *zap.Logger
}

// New creates an office. Missing dependencies get in-memory or no-op
// defaults.
func New(cfg Config) *Office {
	o := &Office{
		out:     cfg.Out,
		store:   cfg.Store,
		intern:  cfg.Intern,
		actions: cfg.Actions,
		journal: cfg.Journal,
		metrics: cfg.Metrics,
		logger:  cfg.Logger,
	}

	if o.out == nil {
		o.out = io.Discard
	}

	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	if o.store == nil {
		o.store = registry.NewMemoryStore()
	}

	if o.intern == nil {
		o.intern = intern.New(o.logger)
	}

	if o.actions == nil {
		o.actions = form.NewActions(form.ActionsConfig{Out: o.out, Logger: o.logger})
	}

	if o.journal == nil {
		o.journal = journal.New()
	}

	return o
}

// Hire adds a bureaucrat to the staff. Invalid grades are returned as
// errors from grade.
func (o *Office) Hire(name string, g int) (*bureaucrat.Bureaucrat, error) {
	b, err := bureaucrat.New(name, g)
	if err != nil {
		return nil, err
	}

	if err := o.store.Hire(b); err != nil {
		return nil, fmt.Errorf("hire %s: %w", name, err)
	}

	o.println(b.String())
	o.publish(journal.EventHired, journal.StaffPayload{Name: b.Name(), Grade: int(b.Grade())})

	return b, nil
}

// Promote moves a bureaucrat one grade up.
func (o *Office) Promote(name string) error {
	return o.regrade(name, journal.EventPromoted, journal.EventPromoteRefused, (*bureaucrat.Bureaucrat).Promote)
}

// Demote moves a bureaucrat one grade down.
func (o *Office) Demote(name string) error {
	return o.regrade(name, journal.EventDemoted, journal.EventDemoteRefused, (*bureaucrat.Bureaucrat).Demote)
}

func (o *Office) regrade(name string, done, refused journal.EventType, change func(*bureaucrat.Bureaucrat) error) error {
	b, err := o.store.Bureaucrat(name)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	if err := change(b); err != nil {
		o.publish(refused, journal.StaffPayload{Name: b.Name(), Grade: int(b.Grade()), Reason: err.Error()})

		return err
	}

	o.println(b.String())
	o.publish(done, journal.StaffPayload{Name: b.Name(), Grade: int(b.Grade())})

	return nil
}

// Draft asks the intern for a form of the named kind and files it under
// alias. An unknown kind is reported and yields ok == false, not an error.
// A draft is only counted as accepted once it is filed.
func (o *Office) Draft(kind, target, alias string) (registry.Record, bool, error) {
	f, ok := o.intern.MakeForm(kind, target)
	if !ok {
		o.observeDraft(false)

		available := intern.Kinds()

		o.println(render.Fail(fmt.Sprintf("Error: Form name %q does not exist.", kind)))
		o.println(render.Fail("Available forms: " + strings.Join(available, ", ")))
		o.publish(journal.EventDraftRefused, journal.DraftRefusedPayload{Requested: kind, Available: available})

		return registry.Record{}, false, nil
	}

	rec, err := o.file(alias, f)
	if err != nil {
		o.observeDraft(false)

		return registry.Record{}, false, err
	}

	o.observeDraft(true)
	o.println("Intern creates " + kind)

	return rec, true, nil
}

func (o *Office) observeDraft(accepted bool) {
	if o.metrics != nil {
		o.metrics.ObserveDraft(accepted)
	}
}

// FilePlain files a form with no action and the given thresholds.
func (o *Office) FilePlain(alias, name string, signGrade, execGrade int) (registry.Record, error) {
	f, err := form.New(name, signGrade, execGrade)
	if err != nil {
		return registry.Record{}, fmt.Errorf("form %s: %w", name, err)
	}

	return o.file(alias, f)
}

func (o *Office) file(alias string, f *form.Form) (registry.Record, error) {
	rec, err := o.store.File(alias, f)
	if err != nil {
		return registry.Record{}, fmt.Errorf("file %s as %q: %w", f.Name(), alias, err)
	}

	o.publish(journal.EventDrafted, journal.DraftPayload{
		FormID:    rec.ID,
		Alias:     rec.Alias,
		Kind:      f.Kind().String(),
		Form:      f.Name(),
		Target:    f.Target(),
		SignGrade: int(f.SignGrade()),
		ExecGrade: int(f.ExecGrade()),
	})

	return rec, nil
}

// Sign has the named bureaucrat sign a filed form. A refusal is reported
// and returned in the result; the error is only for unknown names.
func (o *Office) Sign(actor, ref string) (bureaucrat.SignResult, error) {
	b, rec, err := o.lookup(actor, ref)
	if err != nil {
		return bureaucrat.SignResult{}, err
	}

	result := b.SignForm(rec.Form)

	if o.metrics != nil {
		o.metrics.ObserveSignature(result.Signed)
	}

	payload := decision(b, rec)

	if result.Signed {
		o.println(render.OK(result.String()))
		o.publish(journal.EventSigned, payload)

		return result, nil
	}

	payload.Reason = result.Reason.Error()

	o.println(render.Fail(result.String()))
	o.publish(journal.EventSignRefused, payload)

	return result, nil
}

// Execute has the named bureaucrat execute a filed form. The outcome is
// journaled either way; failures are returned to the caller.
func (o *Office) Execute(actor, ref string) error {
	b, rec, err := o.lookup(actor, ref)
	if err != nil {
		return err
	}

	err = b.ExecuteForm(rec.Form, o.actions)

	if o.metrics != nil {
		o.metrics.ObserveExecution(rec.Form.Kind().String(), err == nil)
	}

	payload := decision(b, rec)

	if err != nil {
		payload.Reason = err.Error()

		o.logger.Info("execution failed",
			zap.String("actor", b.Name()),
			zap.String("form", rec.Form.Name()),
			zap.Bool("artifact", errors.Is(err, form.ErrArtifactWrite)),
			zap.Error(err),
		)
		o.publish(journal.EventExecutionFailed, payload)

		return err
	}

	o.println(render.OK(fmt.Sprintf("%s executed %s", b.Name(), rec.Form.Name())))
	o.publish(journal.EventExecuted, payload)

	return nil
}

// Describe returns the rendering of a bureaucrat or a filed form.
// Bureaucrat names are tried first.
func (o *Office) Describe(ref string) (string, error) {
	if b, err := o.store.Bureaucrat(ref); err == nil {
		return b.String(), nil
	}

	rec, err := o.store.Form(ref)
	if err != nil {
		return "", fmt.Errorf("%s: %w", ref, err)
	}

	return rec.Form.String(), nil
}

// Show prints what Describe returns.
func (o *Office) Show(ref string) error {
	text, err := o.Describe(ref)
	if err != nil {
		return err
	}

	o.println(text)

	return nil
}

// Shred discards a filed form.
func (o *Office) Shred(ref string) error {
	rec, err := o.store.Form(ref)
	if err != nil {
		return fmt.Errorf("%s: %w", ref, err)
	}

	if err := o.store.Shred(rec.ID); err != nil {
		return fmt.Errorf("%s: %w", ref, err)
	}

	o.println(rec.Form.Name() + " shredded")
	o.publish(journal.EventShredded, journal.ShredPayload{FormID: rec.ID, Alias: rec.Alias, Form: rec.Form.Name()})

	return nil
}

// Forms returns every filed form in filing order.
func (o *Office) Forms() []registry.Record {
	return o.store.Forms()
}

// Staff returns every bureaucrat, ordered by name.
func (o *Office) Staff() []*bureaucrat.Bureaucrat {
	return o.store.Staff()
}

// Println writes a line of office output.
func (o *Office) Println(line string) {
	o.println(line)
}

func (o *Office) lookup(actor, ref string) (*bureaucrat.Bureaucrat, registry.Record, error) {
	b, err := o.store.Bureaucrat(actor)
	if err != nil {
		return nil, registry.Record{}, fmt.Errorf("%s: %w", actor, err)
	}

	rec, err := o.store.Form(ref)
	if err != nil {
		return nil, registry.Record{}, fmt.Errorf("%s: %w", ref, err)
	}

	return b, rec, nil
}

func decision(b *bureaucrat.Bureaucrat, rec registry.Record) journal.DecisionPayload {
	return journal.DecisionPayload{
		FormID: rec.ID,
		Form:   rec.Form.Name(),
		Actor:  b.Name(),
		Grade:  int(b.Grade()),
	}
}

func (o *Office) publish(t journal.EventType, payload any) {
	if _, err := o.journal.Publish(t, payload); err != nil {
		o.logger.Warn("journal delivery failed", zap.String("event", string(t)), zap.Error(err))
	}
}

func (o *Office) println(line string) {
	if _, err := fmt.Fprintln(o.out, line); err != nil {
		o.logger.Warn("failed to write office output", zap.Error(err))
	}
}
