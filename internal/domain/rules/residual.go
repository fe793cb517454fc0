package rules

import "regexp"

// Catch-all for wrapping artifacts the specific rules did not cover. The
// literal form must run first so its backticks are not consumed by the
// generic expression form.
var (
	residualLiteral = regexp.MustCompile("\\$\\{JSON\\.stringify\\(`([^`]+)`\\)\\}")
	residualExpr    = regexp.MustCompile("\\$\\{JSON\\.stringify\\(([^)]+)\\)\\}")
)

// ApplyResidualStringify strips any remaining ${JSON.stringify(...)}
// interpolation around a backtick-delimited literal or an arbitrary
// expression, leaving just the inner text in place.
func ApplyResidualStringify(line string) (string, bool) {
	out := residualLiteral.ReplaceAllString(line, "$1")
	out = residualExpr.ReplaceAllString(out, "$1")

	return out, out != line
}
