// Package domain contains the core repair workflow and logic.
package domain

import (
	"fmt"
	"strings"

	"github.com/mole-wink/logmend/internal/domain/rules"
	m "github.com/mole-wink/logmend/internal/model"
)

// Lines carrying this directive in a trailing comment are never rewritten.
const ignoreDirective = "logmend:ignore"

// Fixer applies repair rules to file content and reports what changed.
type Fixer interface {
	// Repair runs the given rules over content line by line. When no rules
	// are passed, the full pipeline runs in order. Lines that match no rule
	// pass through unchanged.
	Repair(content []byte, ruleIDs ...m.RuleID) ([]byte, []m.Finding, error)
}

type fixer struct{}

// NewFixer creates a new Fixer instance.
func NewFixer() Fixer {
	return &fixer{}
}

type ruleStep struct {
	id    m.RuleID
	apply rules.LineRule
}

func (f *fixer) Repair(content []byte, ruleIDs ...m.RuleID) ([]byte, []m.Finding, error) {
	if len(ruleIDs) == 0 {
		ruleIDs = m.AllRules()
	}

	steps := make([]ruleStep, 0, len(ruleIDs))

	for _, id := range ruleIDs {
		apply, ok := rules.ForID(id)
		if !ok {
			return nil, nil, fmt.Errorf("unsupported rule: %v", id)
		}

		steps = append(steps, ruleStep{id: id, apply: apply})
	}

	lines := strings.Split(string(content), "\n")

	var findings []m.Finding

	for i, line := range lines {
		if strings.Contains(line, ignoreDirective) {
			continue
		}

		prev := ""
		if i > 0 {
			prev = lines[i-1]
		}

		for _, step := range steps {
			repaired, changed := step.apply(line, prev)
			if !changed {
				continue
			}

			findings = append(findings, m.Finding{
				Rule:     step.id,
				Line:     i + 1,
				Original: line,
				Repaired: repaired,
			})
			line = repaired
		}

		lines[i] = line
	}

	return []byte(strings.Join(lines, "\n")), findings, nil
}
