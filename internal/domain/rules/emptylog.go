package rules

import "strings"

const emptyCall = "console.log()"

// Synthetic messages for empty logging calls.
const (
	MessageCompleted  = "Operation completed successfully"
	MessageError      = "Error logged"
	MessageProcessing = "Processing..."
)

// Context classifies the line preceding an empty logging call.
type Context int

// Available Context values.
const (
	ContextGeneric Context = iota
	ContextSuccess
	ContextFailure
)

var successKeywords = []string{"Found", "Created", "Updated"}

// ClassifyContext maps a line of surrounding text to an event category by
// keyword membership. Success keywords are case-sensitive, failure keywords
// are not; success wins when both are present.
func ClassifyContext(prev string) Context {
	for _, keyword := range successKeywords {
		if strings.Contains(prev, keyword) {
			return ContextSuccess
		}
	}

	lower := strings.ToLower(prev)
	if strings.Contains(lower, "error") || strings.Contains(lower, "fail") {
		return ContextFailure
	}

	return ContextGeneric
}

// MessageFor returns the synthetic log message for a context category.
func MessageFor(ctx Context) string {
	switch ctx {
	case ContextSuccess:
		return MessageCompleted
	case ContextFailure:
		return MessageError
	case ContextGeneric:
	}

	return MessageProcessing
}

// ApplyEmptyLog replaces argument-less console.log() calls with a message
// inferred from the previous line.
func ApplyEmptyLog(line, prev string) (string, bool) {
	if !strings.Contains(line, emptyCall) {
		return line, false
	}

	msg := MessageFor(ClassifyContext(prev))

	return strings.ReplaceAll(line, emptyCall, `console.log("`+msg+`")`), true
}
