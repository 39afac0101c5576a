package token

import "strings"

// quoteReplacer rewrites in a single pass, so backslashes introduced
// by one replacement are never escaped again by another.
var quoteReplacer = strings.NewReplacer(
	`\`, `\\`,
	"\n", `\n`,
	"\t", `\t`,
	`"`, `\"`,
)

// Quote escapes v and wraps it in double quotes.
func Quote(v string) string {
	var b strings.Builder
	b.Grow(len(v) + 2)
	b.WriteByte('"')
	quoteReplacer.WriteString(&b, v)
	b.WriteByte('"')
	return b.String()
}
