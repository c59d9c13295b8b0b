package execution

import (
	"fmt"
	"strings"
)

const maxStepDescription = 50

// Step is one line of a multi-line suggestion.
type Step struct {
	Number            int
	Command           string
	Description       string
	DependsOnPrevious bool
}

// Plan walks the steps of a multi-line suggestion in order.
type Plan struct {
	Steps   []Step
	current int
}

// ParseSteps splits text into steps, one per non-empty line. Blank lines and
// lines starting with '#' are dropped. It returns false when fewer than two
// steps remain, in which case the text is an ordinary single command.
//
// A step depends on the previous one when it contains "&&", or when it is
// not the first step and contains neither "||" nor ";".
func ParseSteps(text string) (*Plan, bool) {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) <= 1 {
		return nil, false
	}

	p := &Plan{Steps: make([]Step, 0, len(lines))}
	for i, line := range lines {
		depends := strings.Contains(line, "&&") ||
			(i > 0 && !strings.Contains(line, "||") && !strings.Contains(line, ";"))
		p.Steps = append(p.Steps, Step{
			Number:            i + 1,
			Command:           line,
			Description:       fmt.Sprintf("Step %d: %s", i+1, truncate(line)),
			DependsOnPrevious: depends,
		})
	}
	return p, true
}

func truncate(line string) string {
	r := []rune(line)
	if len(r) <= maxStepDescription {
		return line
	}
	return string(r[:maxStepDescription-3]) + "..."
}

// Next returns the step to run, or false when every step has been handled.
func (p *Plan) Next() (Step, bool) {
	if p.current >= len(p.Steps) {
		return Step{}, false
	}
	return p.Steps[p.current], true
}

// Complete marks the current step done and advances. It returns false when
// execution should stop: there was no current step, or the step failed and
// the next one depends on it.
func (p *Plan) Complete(success bool) bool {
	if p.current >= len(p.Steps) {
		return false
	}
	p.current++
	if !success && p.current < len(p.Steps) && p.Steps[p.current].DependsOnPrevious {
		return false
	}
	return true
}

func (p *Plan) HasMore() bool {
	return p.current < len(p.Steps)
}

// Progress returns the number of completed steps and the total.
func (p *Plan) Progress() (done, total int) {
	return p.current, len(p.Steps)
}

// Format renders the plan with a ✓ for finished steps and → for the current one.
func (p *Plan) Format() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Multi-step execution (%d steps):\n", len(p.Steps))
	for i, s := range p.Steps {
		status := " "
		switch {
		case i < p.current:
			status = "✓"
		case i == p.current:
			status = "→"
		}
		fmt.Fprintf(&b, "  %s %s\n", status, s.Description)
	}
	return b.String()
}
