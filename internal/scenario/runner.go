package scenario

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/serroba/bureau/internal/office"
	"github.com/serroba/bureau/internal/render"
	"go.uber.org/zap"
)

// Report summarizes a run.
type Report struct {
	Steps    int
	Failures int
	// Skipped counts steps not run because an earlier step in the same
	// section failed.
	Skipped int
}

// Runner plays scenarios against an office.
type Runner struct {
	office *office.Office
	logger *zap.Logger
}

// NewRunner creates a runner for o.
func NewRunner(o *office.Office, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Runner{office: o, logger: logger}
}

// Run plays every step. A failing step is reported and the rest of its
// section is skipped; the next section starts fresh.
func (r *Runner) Run(s *Scenario) Report {
	var (
		report  Report
		aborted bool
	)

	r.logger.Debug("running scenario", zap.String("name", s.Name), zap.Int("steps", len(s.Steps)))

	for _, step := range s.Steps {
		if step.Section != "" {
			aborted = false
		}

		if aborted {
			report.Skipped++

			continue
		}

		report.Steps++

		if err := r.step(step); err != nil {
			report.Failures++
			aborted = true

			r.office.Println(render.Fail("Exception: " + err.Error()))
			r.logger.Debug("step failed", zap.Error(err))
		}
	}

	return report
}

func (r *Runner) step(st Step) error {
	o := r.office

	switch {
	case st.Section != "":
		o.Println("")
		o.Println(render.Header(st.Section))
	case st.Note != "":
		o.Println("")
		o.Println(render.Subheader(st.Note))
	case st.Hire != nil:
		_, err := o.Hire(st.Hire.Name, st.Hire.Grade)

		return err
	case st.Draft != nil:
		_, _, err := o.Draft(st.Draft.Kind, st.Draft.Target, st.Draft.As)

		return err
	case st.Form != nil:
		_, err := o.FilePlain(st.Form.As, st.Form.Name, st.Form.Sign, st.Form.Exec)

		return err
	case st.Sign != nil:
		for range times(st.Sign.Repeat) {
			if _, err := o.Sign(st.Sign.By, st.Sign.Form); err != nil {
				return err
			}
		}
	case st.Execute != nil:
		for range times(st.Execute.Repeat) {
			if err := o.Execute(st.Execute.By, st.Execute.Form); err != nil {
				return err
			}
		}
	case st.Promote != "":
		return o.Promote(st.Promote)
	case st.Demote != "":
		return o.Demote(st.Demote)
	case st.Show != "":
		return o.Show(st.Show)
	case st.Shred != "":
		return o.Shred(st.Shred)
	case st.List == "forms":
		for i, rec := range o.Forms() {
			o.Println(fmt.Sprintf("%d. %s", i+1, rec.Form))
		}
	case st.List == "staff":
		rows := [][]string{{"NAME", "GRADE"}}
		for _, b := range o.Staff() {
			rows = append(rows, []string{b.Name(), strconv.Itoa(int(b.Grade()))})
		}

		o.Println(strings.TrimRight(render.Table(rows), "\n"))
	}

	return nil
}

func times(n int) int {
	if n < 1 {
		return 1
	}

	return n
}
