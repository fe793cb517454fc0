package model

// RuleID identifies a repair rule family.
type RuleID string

const (
	// RuleDoubleStringify repairs logging templates wrapping two JSON.stringify calls.
	RuleDoubleStringify RuleID = "double-stringify"
	// RuleSingleStringify repairs logging templates wrapping one JSON.stringify call.
	RuleSingleStringify RuleID = "single-stringify"
	// RuleResidualStringify strips leftover JSON.stringify interpolation artifacts.
	RuleResidualStringify RuleID = "residual-stringify"
	// RuleEmptyLog fills empty console.log() calls with a contextual message.
	RuleEmptyLog RuleID = "empty-log"
)

// AllRules lists every rule in pipeline order. Specific rules run before
// the residual catch-all so the catch-all only sees leftovers.
func AllRules() []RuleID {
	return []RuleID{
		RuleDoubleStringify,
		RuleSingleStringify,
		RuleResidualStringify,
		RuleEmptyLog,
	}
}

// Finding records a single repair applied to a line.
type Finding struct {
	Rule     RuleID `json:"rule"`
	Line     int    `json:"line"` // 1-based
	Original string `json:"original"`
	Repaired string `json:"repaired"`
}
