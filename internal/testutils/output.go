package testutils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"text/tabwriter"
)

// TestCase represents a single comparison in a table test.
type TestCase struct {
	Name     string
	Input    string
	Expected string
	Actual   string
	Pass     bool
}

// PrintTestTable logs a formatted table of comparison results.
// Failing rows are marked with arrows. It fails the test if any case has Pass=false.
func PrintTestTable(t *testing.T, cases []TestCase) {
	t.Helper()

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 3, ' ', 0)
	_, _ = w.Write([]byte("  Input\tExpected Value\tReturned Value\t\n"))

	anyFailed := false
	for _, tc := range cases {
		left, right := " ", " "
		if !tc.Pass {
			anyFailed = true
			left, right = ">", "<"
		}
		input := tc.Input
		if tc.Name != "" {
			input = tc.Name + ": " + input
		}
		_, _ = w.Write([]byte(left + " " + quote(input) + "\t" + quote(tc.Expected) + "\t" + quote(tc.Actual) + "\t" + right + "\n"))
	}
	_ = w.Flush()

	if anyFailed {
		t.Errorf("comparison table has failures:\n%s", sb.String())
		return
	}
	t.Logf("\n%s", sb.String())
}

// quote makes control characters in a table cell visible.
func quote(s string) string {
	return strings.NewReplacer("\n", `\n`, "\r", `\r`, "\t", `\t`, "\033", `\e`).Replace(s)
}

// WriteFile writes content to name inside dir, creating parent folders, and returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// ReadFile returns the content of path, failing the test if it cannot be read.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}
