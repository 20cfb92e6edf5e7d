package dotenv

import (
	"strings"
)

// Line is one line of an env file: a variable (IsVar) or an opaque line
// such as a comment, a blank line or anything malformed.
type Line struct {
	Name  string
	Value string
	Raw   string
	IsVar bool
}

// String renders the line as it is written to the output file.
func (l Line) String() string {
	if l.IsVar {
		return l.Name + "=" + l.Value
	}
	return l.Raw
}

// ParseLine trims text and splits it at the first "=".
func ParseLine(text string) Line {
	trimmed := strings.TrimSpace(text)
	name, value, ok := strings.Cut(trimmed, "=")
	if !ok || name == "" {
		return Line{Raw: trimmed}
	}
	return Line{Name: name, Value: value, IsVar: true}
}

// SplitLines splits text into lines. A trailing newline does not start an
// extra line, so "A=1\n" and "A=1" both hold one line and "" holds none.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}

// ParseLines parses every line of text.
func ParseLines(text string) []Line {
	raw := SplitLines(text)
	lines := make([]Line, 0, len(raw))
	for _, r := range raw {
		lines = append(lines, ParseLine(r))
	}
	return lines
}
