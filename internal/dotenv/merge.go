package dotenv

import (
	"strings"
)

// Merge applies overrides to the template text and returns the resulting env file content.
//
// Template lines keep their order. The first line for a key is kept (with the
// override value if there is one) and later lines for the same key are dropped.
// Overrides that match no template key are appended in insertion order.
// Lines are joined with "\n" without a trailing newline.
func Merge(templateText string, overrides *OverrideSet) string {
	lines, _ := mergeLines(ParseLines(templateText), overrides)
	return strings.Join(lines, "\n")
}

// mergeLines does the work of Merge and also returns the override keys that were appended.
func mergeLines(template []Line, overrides *OverrideSet) (out []string, appended []string) {
	seen := make(map[string]bool, len(template))
	out = make([]string, 0, len(template)+overrides.Len())

	for _, line := range template {
		if !line.IsVar {
			out = append(out, line.Raw)
			continue
		}
		if seen[line.Name] {
			continue
		}
		seen[line.Name] = true
		if v, ok := overrides.Get(line.Name); ok {
			line.Value = v
		}
		out = append(out, line.String())
	}

	// A key matched by any template line counts as applied, duplicates included
	for _, key := range overrides.Keys() {
		if seen[key] {
			continue
		}
		v, _ := overrides.Get(key)
		out = append(out, key+"="+v)
		appended = append(appended, key)
	}

	return out, appended
}
