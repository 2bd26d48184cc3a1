package vlog

import (
	"fmt"
	"strings"
)

const indentWidth = 2

// String renders the retained messages as a brace-nested plain-text report.
//
// The renderer walks the messages in logging order and diffs each message's
// scope path against the previous one: scopes no longer on the path are
// closed with "}", newly entered scopes are opened with "<name> {", and the
// message itself is written as "<Level>: <Property>: <Text>" indented two
// spaces per nesting depth. Scope names are compared byte-wise, so a renamed
// scope at the same depth closes the old one and opens the new one. An empty
// log renders as an empty string.
func (l *Logger) String() string {
	var builder strings.Builder
	var previous []string

	for _, msg := range l.messages {
		match := commonPrefixLen(previous, msg.Scope)
		writeClosers(&builder, len(previous), match)
		previous = msg.Scope
		for i := match; i < len(previous); i++ {
			builder.WriteString(strings.Repeat(" ", i*indentWidth))
			builder.WriteString(previous[i])
			builder.WriteString(" {\n")
		}
		builder.WriteString(strings.Repeat(" ", len(previous)*indentWidth))
		builder.WriteString(fmt.Sprintf("%s: %s: %s\n", msg.Level, msg.Property, msg.Text))
	}
	writeClosers(&builder, len(previous), 0)

	return builder.String()
}

// writeClosers emits a "}" line for every depth from `from` down to `to+1`,
// each indented one level shallower than the content it closes.
func writeClosers(builder *strings.Builder, from, to int) {
	for level := from; level > to; level-- {
		builder.WriteString(strings.Repeat(" ", (level-1)*indentWidth))
		builder.WriteString("}\n")
	}
}

func commonPrefixLen(a, b []string) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}
