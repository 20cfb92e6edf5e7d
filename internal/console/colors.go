package console

// Raw ANSI Color Codes
const (
	// Reset
	CodeReset = "\033[0m"

	// Modifiers
	CodeBold      = "\033[1m"
	CodeDim       = "\033[2m"
	CodeUnderline = "\033[4m"
	CodeReverse   = "\033[7m"

	// Foreground
	CodeBlack   = "\033[30m"
	CodeRed     = "\033[31m"
	CodeGreen   = "\033[32m"
	CodeYellow  = "\033[33m"
	CodeBlue    = "\033[34m"
	CodeMagenta = "\033[35m"
	CodeCyan    = "\033[36m"
	CodeWhite   = "\033[37m"

	// Background
	CodeRedBg = "\033[41m"
)

// semanticStyles maps semantic tag names (lowercase) to "fg:bg:flags" styles.
var semanticStyles = map[string]string{
	"timestamp":              "-",
	"trace":                  "blue",
	"debug":                  "blue",
	"info":                   "blue",
	"notice":                 "green",
	"warn":                   "yellow",
	"error":                  "red",
	"fatal":                  "white:red",
	"fatalfooter":            "-",
	"traceheader":            "red",
	"tracefooter":            "red",
	"applicationname":        "cyan::b",
	"file":                   "cyan::b",
	"folder":                 "cyan::b",
	"runningcommand":         "green::b",
	"usercommand":            "yellow::b",
	"usercommanderror":       "red::u",
	"usercommanderrormarker": "red",
	"var":                    "magenta",
	"version":                "cyan",
	"usagecommand":           "yellow::b",
	"usageoption":            "yellow",
	"usagefile":              "cyan::b",
	"usagevar":               "magenta",
}

var foreground = map[string]string{
	"black":   CodeBlack,
	"red":     CodeRed,
	"green":   CodeGreen,
	"yellow":  CodeYellow,
	"blue":    CodeBlue,
	"magenta": CodeMagenta,
	"cyan":    CodeCyan,
	"white":   CodeWhite,
}

var flags = map[rune]string{
	'b': CodeBold,
	'd': CodeDim,
	'u': CodeUnderline,
	'r': CodeReverse,
}
