package console

import (
	"AppTasks/internal/testutils"
	"testing"

	"github.com/muesli/termenv"
)

func TestToANSI(t *testing.T) {
	saved := GetPreferredProfile()
	SetPreferredProfile(termenv.ANSI)
	defer SetPreferredProfile(saved)

	tests := []struct {
		input    string
		expected string
	}{
		{"Hello World", "Hello World"},
		{"{{_Var_}}KEY{{|-|}}", CodeMagenta + "KEY" + CodeReset},
		{"{{_File_}}.env{{|-|}}", CodeCyan + CodeBold + ".env" + CodeReset},
		{"{{|red|}}x", CodeRed + "x"},
		{"{{_Unknown_}}x", "x"},
		{"{{|white:red|}}!", CodeWhite + CodeRedBg + "!"},
	}

	var cases []testutils.TestCase
	for _, tt := range tests {
		actual := ToANSI(tt.input)
		cases = append(cases, testutils.TestCase{
			Input:    tt.input,
			Expected: tt.expected,
			Actual:   actual,
			Pass:     actual == tt.expected,
		})
	}

	testutils.PrintTestTable(t, cases)
}

func TestStrip(t *testing.T) {
	saved := GetPreferredProfile()
	SetPreferredProfile(termenv.Ascii)
	defer SetPreferredProfile(saved)

	in := "Saved {{_Var_}}3{{|-|}} lines to '{{_File_}}.env{{|-|}}'"
	want := "Saved 3 lines to '.env'"
	if got := Strip(in); got != want {
		t.Errorf("Strip(%q) = %q; want %q", in, got, want)
	}
	if got := ToANSI(in); got != want {
		t.Errorf("ToANSI with Ascii profile = %q; want %q", got, want)
	}
}
