// Package rules provides the repair rules for corrupted logging statements.
package rules

import (
	m "github.com/mole-wink/logmend/internal/model"
)

// LineRule rewrites a single line. prev is the previous line of the file
// ("" for the first line) and is only consulted by context-sensitive rules.
// The boolean reports whether the line was changed.
type LineRule func(line, prev string) (string, bool)

// ForID returns the rule implementation for the given rule ID.
func ForID(id m.RuleID) (LineRule, bool) {
	switch id {
	case m.RuleDoubleStringify:
		return func(line, _ string) (string, bool) { return ApplyDoubleStringify(line) }, true
	case m.RuleSingleStringify:
		return func(line, _ string) (string, bool) { return ApplySingleStringify(line) }, true
	case m.RuleResidualStringify:
		return func(line, _ string) (string, bool) { return ApplyResidualStringify(line) }, true
	case m.RuleEmptyLog:
		return ApplyEmptyLog, true
	}

	return nil, false
}
