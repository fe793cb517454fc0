package rules

import (
	"regexp"
	"strings"
)

// The generator that produced the target files wrapped template fragments
// in JSON.stringify calls it should never have emitted, e.g.
//
//	console.log(`${JSON.stringify(`Found user`)} ${JSON.stringify(user.id)}`);
//
// The rules below unwrap those fragments back into a flat template.
var (
	doublePattern = regexp.MustCompile("console\\.log\\(`\\$\\{JSON\\.stringify\\(`([^`]+)`\\)\\} \\$\\{JSON\\.stringify\\(([^)]+)\\)\\}`\\);")
	singlePattern = regexp.MustCompile("console\\.log\\(`\\$\\{JSON\\.stringify\\(`([^`]+)`\\)\\}`\\);")
)

// ApplyDoubleStringify repairs a templated logging call that wraps two
// JSON.stringify fragments: the literal text of the first and the expression
// text of the second are joined with a space into a single flat template.
func ApplyDoubleStringify(line string) (string, bool) {
	changed := false

	out := doublePattern.ReplaceAllStringFunc(line, func(call string) string {
		sub := doublePattern.FindStringSubmatch(call)
		if sub == nil {
			return call
		}

		literal := sub[1]
		expr := strings.ReplaceAll(sub[2], "`)}", "")
		expr = strings.ReplaceAll(expr, "`", "")
		changed = true

		return "console.log(`" + literal + " " + expr + "`);"
	})

	return out, changed
}

// ApplySingleStringify repairs a templated logging call that wraps a single
// JSON.stringify fragment, unwrapping it into a flat template.
func ApplySingleStringify(line string) (string, bool) {
	changed := false

	out := singlePattern.ReplaceAllStringFunc(line, func(call string) string {
		sub := singlePattern.FindStringSubmatch(call)
		if sub == nil {
			return call
		}

		changed = true

		return "console.log(`" + sub[1] + "`);"
	})

	return out, changed
}
