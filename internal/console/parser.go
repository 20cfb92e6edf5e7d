package console

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/muesli/termenv"
)

var (
	// semanticRegex matches {{_content_}} format for semantic tags
	semanticRegex = regexp.MustCompile(`\{\{_([A-Za-z0-9_]+)_\}\}`)

	// directRegex matches {{|content|}} format for direct style codes
	directRegex = regexp.MustCompile(`\{\{\|([A-Za-z0-9_:\-#]+)\|\}\}`)

	// preferredProfile stores the detected or forced color profile
	preferredProfile termenv.Profile
)

// colorIndex maps named colors to their ANSI palette index for background lookups.
var colorIndex = map[string]string{
	"black": "0", "red": "1", "green": "2", "yellow": "3",
	"blue": "4", "magenta": "5", "cyan": "6", "white": "7",
}

func init() {
	preferredProfile = detectProfile()
}

// GetPreferredProfile returns the detected or forced color profile
func GetPreferredProfile() termenv.Profile {
	return preferredProfile
}

// SetPreferredProfile explicitly sets the color profile (useful for testing)
func SetPreferredProfile(p termenv.Profile) {
	preferredProfile = p
}

func detectProfile() termenv.Profile {
	stat, err := os.Stderr.Stat()
	if err != nil || (stat.Mode()&os.ModeCharDevice) == 0 {
		return termenv.Ascii
	}

	switch strings.ToLower(os.Getenv("COLORTERM")) {
	case "truecolor", "24bit":
		return termenv.TrueColor
	case "8bit", "256color":
		return termenv.ANSI256
	case "4bit", "16color", "8color", "3bit":
		return termenv.ANSI
	case "1bit", "2color", "mono", "false", "0":
		return termenv.Ascii
	}
	if os.Getenv("NO_COLOR") != "" || strings.ToLower(os.Getenv("TERM")) == "dumb" {
		return termenv.Ascii
	}

	return termenv.ColorProfile()
}

// ToANSI converts semantic and direct tags to ANSI escape sequences
// - {{_Tag_}} : Semantic lookup -> ANSI
// - {{|code|}} : Direct fg:bg:flags style -> ANSI
func ToANSI(text string) string {
	if preferredProfile == termenv.Ascii {
		return Strip(text)
	}

	text = semanticRegex.ReplaceAllStringFunc(text, func(match string) string {
		content := strings.ToLower(match[3 : len(match)-3])
		if style, ok := semanticStyles[content]; ok {
			return styleToANSI(style)
		}
		// Unknown semantic tag - strip it
		return ""
	})

	text = directRegex.ReplaceAllStringFunc(text, func(match string) string {
		return styleToANSI(strings.ToLower(match[3 : len(match)-3]))
	})

	return text
}

// Strip removes all semantic and direct tags from text, leaving plain text
func Strip(text string) string {
	text = semanticRegex.ReplaceAllString(text, "")
	text = directRegex.ReplaceAllString(text, "")
	return text
}

// styleToANSI parses fg:bg:flags format and returns ANSI codes
func styleToANSI(content string) string {
	if content == "-" {
		return CodeReset
	}

	parts := strings.Split(content, ":")
	var codes strings.Builder

	if parts[0] != "" && parts[0] != "-" {
		codes.WriteString(foreground[parts[0]])
	}

	if len(parts) > 1 && parts[1] != "" && parts[1] != "-" {
		if idx, ok := colorIndex[parts[1]]; ok {
			seq := preferredProfile.Color(idx).Sequence(true)
			if seq != "" {
				codes.WriteString(termenv.CSI + seq + "m")
			}
		}
	}

	if len(parts) > 2 {
		for _, flag := range parts[2] {
			codes.WriteString(flags[flag])
		}
	}

	return codes.String()
}

// Sprintf formats according to a format specifier and returns the string with ANSI codes
func Sprintf(format string, a ...any) string {
	return ToANSI(fmt.Sprintf(format, a...))
}

// Println prints a line with tags rendered for the terminal
func Println(a ...any) {
	fmt.Println(ToANSI(fmt.Sprint(a...)))
}

// Parse is a convenience alias for ToANSI
func Parse(text string) string {
	return ToANSI(text)
}
