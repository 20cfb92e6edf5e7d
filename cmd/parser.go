package cmd

import (
	"AppTasks/internal/version"
	"fmt"
	"strings"
)

// ParseError wraps argument parsing errors to provide rich output
type ParseError struct {
	Args           []string // The full argument list passed to Parse
	Index          int      // The index where the error occurred
	Message        string   // The specific error message
	FailingCommand string   // The command being processed (e.g. "--version-log")
}

func (e *ParseError) Error() string {
	indent := "   "

	var cmdLineParts []string
	cmdLineParts = append(cmdLineParts, fmt.Sprintf("{{_UserCommand_}}%s{{|-|}}", version.CommandName))

	for i := 0; i <= e.Index && i < len(e.Args); i++ {
		str := e.Args[i]
		if i == e.Index {
			str = fmt.Sprintf("{{_UserCommandError_}}%s{{|-|}}", str)
		} else {
			str = fmt.Sprintf("{{_UserCommand_}}%s{{|-|}}", str)
		}
		cmdLineParts = append(cmdLineParts, str)
	}

	cmdLineStr := "'" + strings.Join(cmdLineParts, " ") + "'"
	// indent + "'" + command + " "
	caretOffset := len(indent) + 1 + len(version.CommandName) + 1
	for i := 0; i < e.Index && i < len(e.Args); i++ {
		caretOffset += len(e.Args[i]) + 1
	}
	pointerLine := strings.Repeat(" ", caretOffset) + "{{_UserCommandErrorMarker_}}^{{|-|}}"

	// %c is the command and %o the failing option
	failingOpt := ""
	if e.Index < len(e.Args) {
		failingOpt = e.Args[e.Index]
	}
	replacer := strings.NewReplacer(
		"%c", fmt.Sprintf("'{{_UserCommand_}}%s{{|-|}}'", e.FailingCommand),
		"%o", fmt.Sprintf("'{{_UserCommand_}}%s{{|-|}}'", failingOpt),
	)
	formattedMsg := replacer.Replace(e.Message)

	out := fmt.Sprintf("Error in command line:\n\n%s%s\n%s\n\n%s%s\n", indent, cmdLineStr, pointerLine, indent, formattedMsg)

	if e.FailingCommand != "" {
		out += fmt.Sprintf("\n%sUsage is:\n", indent)
		for _, line := range strings.Split(strings.TrimRight(GetUsage(e.FailingCommand), "\n"), "\n") {
			out += fmt.Sprintf("%s%s\n", indent, line)
		}
	} else {
		out += fmt.Sprintf("\n%sRun '{{_UserCommand_}}%s --help{{|-|}}' for usage.\n", indent, version.CommandName)
	}

	return out
}

// CommandGroup represents a parsed group of flags and a command with its arguments
type CommandGroup struct {
	Flags   []string
	Command string
	Args    []string
}

// FullSlice returns the reconstructed slice of strings for the group
func (cg CommandGroup) FullSlice() []string {
	var s []string
	s = append(s, cg.Flags...)
	if cg.Command != "" {
		s = append(s, cg.Command)
	}
	s = append(s, cg.Args...)
	return s
}

var modifiers = map[string]bool{
	"-v": true, "--verbose": true,
	"-x": true, "--debug": true,
	"-n": true, "--no-backup": true,
}

// expandArgs splits combined short flags (e.g. -vn -> -v -n) up to a literal "--".
func expandArgs(args []string) []string {
	var expanded []string
	for i, arg := range args {
		if arg == "--" {
			return append(expanded, args[i:]...)
		}
		if strings.HasPrefix(arg, "-") && !strings.HasPrefix(arg, "--") && len(arg) > 2 {
			for _, c := range arg[1:] {
				expanded = append(expanded, fmt.Sprintf("-%c", c))
			}
			continue
		}
		expanded = append(expanded, arg)
	}
	return expanded
}

// isCommand reports whether arg starts a new command or modifier.
func isCommand(arg string) bool {
	if _, ok := aliases[arg]; ok {
		return true
	}
	return strings.HasPrefix(arg, "-") && arg != "--"
}

// Parse parses the raw command line arguments into groups of command operations.
// Modifiers apply to the command that follows them. Commands are given as
// flags (--dotenv-create) or in task form (dotenv:create).
func Parse(args []string) ([]CommandGroup, error) {
	InitFlags()

	expandedArgs := expandArgs(args)

	var groups []CommandGroup
	var currentGroup CommandGroup
	var lastCommand string

	i := 0
	for i < len(expandedArgs) {
		arg := expandedArgs[i]

		if !isCommand(arg) {
			return nil, &ParseError{Args: expandedArgs, Index: i, Message: "Invalid option %o", FailingCommand: lastCommand}
		}

		if modifiers[arg] {
			currentGroup.Flags = append(currentGroup.Flags, arg)
			lastCommand = arg
			i++
			continue
		}

		// Handle --flag=value
		inlineValue, hasInline := "", false
		cmdToCheck := arg
		if strings.HasPrefix(arg, "--") && strings.Contains(arg, "=") {
			cmdToCheck, inlineValue, _ = strings.Cut(arg, "=")
			hasInline = true
		}

		if _, ok := aliases[cmdToCheck]; !ok && lookupFlag(cmdToCheck) == nil {
			return nil, &ParseError{Args: expandedArgs, Index: i, Message: "Invalid option %o"}
		}

		cmd := canonical(cmdToCheck)
		currentGroup.Command = cmd
		lastCommand = arg
		i++

		if hasInline {
			switch cmd {
			case "--app-install", "--app-update", "--app-remove", "--dotenv-create", "--version-log":
				currentGroup.Args = append(currentGroup.Args, inlineValue)
			default:
				return nil, &ParseError{Args: expandedArgs, Index: i - 1, FailingCommand: cmd, Message: "Command %c does not take an argument."}
			}
		}

		switch cmd {
		// KEY=VALUE overrides until the next command, or everything after "--"
		case "--app-install", "--app-update", "--app-remove", "--dotenv-create":
			for i < len(expandedArgs) {
				next := expandedArgs[i]
				if next == "--" {
					currentGroup.Args = append(currentGroup.Args, expandedArgs[i+1:]...)
					i = len(expandedArgs)
					break
				}
				if isCommand(next) {
					break
				}
				currentGroup.Args = append(currentGroup.Args, next)
				i++
			}

		// FILE is required, VERSION is optional
		case "--version-log":
			for count := len(currentGroup.Args); count < 2; count++ {
				if i < len(expandedArgs) && !isCommand(expandedArgs[i]) && expandedArgs[i] != "--" {
					currentGroup.Args = append(currentGroup.Args, expandedArgs[i])
					i++
				} else {
					break
				}
			}
			if len(currentGroup.Args) == 0 {
				return nil, &ParseError{Args: expandedArgs, Index: i - 1, FailingCommand: cmd, Message: fmt.Sprintf("Command %s requires an argument.", cmd)}
			}

		// Help allows an optional command to describe
		case "--help":
			if i < len(expandedArgs) && isCommand(expandedArgs[i]) {
				currentGroup.Args = append(currentGroup.Args, expandedArgs[i])
				i++
			}
		}

		groups = append(groups, currentGroup)
		currentGroup = CommandGroup{}
	}

	// Trailing modifiers without a command
	if len(currentGroup.Flags) > 0 {
		groups = append(groups, currentGroup)
	}

	return groups, nil
}
