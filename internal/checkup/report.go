package checkup

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gsheetdoctor/internal/sheets"
	"gsheetdoctor/internal/ui"
)

// Status is the outcome of a single finding.
type Status string

const (
	StatusPass Status = "pass"
	StatusWarn Status = "warn"
	StatusFail Status = "fail"
	StatusInfo Status = "info"
)

// Finding is one line of the checkup report.
type Finding struct {
	Status  Status `json:"status"`
	Message string `json:"message"`
	Fix     string `json:"fix,omitempty"`
}

// Step groups the findings of one checkup stage. A fatal step stops the
// stages that follow it.
type Step struct {
	Name     string    `json:"name"`
	Findings []Finding `json:"findings"`
	Fatal    bool      `json:"fatal,omitempty"`
}

func (s *Step) add(status Status, fix, format string, args ...any) {
	s.Findings = append(s.Findings, Finding{
		Status:  status,
		Message: fmt.Sprintf(format, args...),
		Fix:     fix,
	})
}

func (s *Step) passf(format string, args ...any) { s.add(StatusPass, "", format, args...) }
func (s *Step) warnf(format string, args ...any) { s.add(StatusWarn, "", format, args...) }
func (s *Step) failf(format string, args ...any) { s.add(StatusFail, "", format, args...) }
func (s *Step) infof(format string, args ...any) { s.add(StatusInfo, "", format, args...) }

func (s *Step) failFix(fix, format string, args ...any) {
	s.add(StatusFail, fix, format, args...)
}

// Report is the full result of one checkup run.
type Report struct {
	Steps    []*Step         `json:"steps"`
	Preview  *sheets.Preview `json:"preview,omitempty"`
	ExitCode int             `json:"exit_code"`
}

func (r *Report) startStep(name string) *Step {
	step := &Step{Name: name}
	r.Steps = append(r.Steps, step)
	return step
}

func (r *Report) counts() (warnings, failures int) {
	for _, step := range r.Steps {
		for _, f := range step.Findings {
			switch f.Status {
			case StatusWarn:
				warnings++
			case StatusFail:
				failures++
			}
		}
	}
	return warnings, failures
}

// finish computes the exit code: 2 when token exchange or sheet access
// failed, 1 for any other finding that needs operator attention, 0 when
// everything passed.
func (r *Report) finish(accessFailed bool) {
	warnings, failures := r.counts()
	switch {
	case accessFailed:
		r.ExitCode = 2
	case failures > 0 || warnings > 0:
		r.ExitCode = 1
	default:
		r.ExitCode = 0
	}
}

func tag(status Status) string {
	switch status {
	case StatusPass:
		return ui.OKTag()
	case StatusWarn:
		return ui.WarnTag()
	case StatusFail:
		return ui.FailTag()
	default:
		return ui.InfoTag()
	}
}

// Render writes the human-readable report.
func (r *Report) Render(w io.Writer) {
	for i, step := range r.Steps {
		if i > 0 {
			fmt.Fprintln(w)
		}
		ui.Section(w, step.Name)
		for _, f := range step.Findings {
			fmt.Fprintf(w, "%s %s\n", tag(f.Status), f.Message)
			if f.Fix != "" {
				fmt.Fprintf(w, "  %s\n", ui.Dim("Action: "+f.Fix))
			}
		}
	}

	if r.Preview != nil {
		fmt.Fprintln(w)
		ui.Section(w, "Preview")
		renderPreview(w, r.Preview)
	}

	warnings, failures := r.counts()
	fmt.Fprintln(w)
	switch {
	case failures > 0:
		fmt.Fprintf(w, "%s %d check(s) failed, %d warning(s)\n", ui.FailTag(), failures, warnings)
	case warnings > 0:
		fmt.Fprintf(w, "%s All checks passed with %d warning(s)\n", ui.WarnTag(), warnings)
	default:
		fmt.Fprintf(w, "%s All checks passed\n", ui.OKTag())
	}
}

func renderPreview(w io.Writer, p *sheets.Preview) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if len(p.Header) > 0 {
		writeRow(tw, p.Header)
	}
	for _, row := range p.Rows {
		writeRow(tw, row)
	}
	tw.Flush()
}

func writeRow(w io.Writer, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, cell)
	}
	fmt.Fprintln(w)
}

// RenderJSON writes the report as indented JSON for scripting.
func (r *Report) RenderJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// Summary is a one-line outcome for notifications.
func (r *Report) Summary() string {
	warnings, failures := r.counts()
	switch {
	case failures > 0:
		return fmt.Sprintf("%d check(s) failed, %d warning(s)", failures, warnings)
	case warnings > 0:
		return fmt.Sprintf("All checks passed with %d warning(s)", warnings)
	default:
		return "All checks passed"
	}
}
