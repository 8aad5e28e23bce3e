// Package input parses the board's command prompt.
package input

import "strings"

// PromptCommand describes a command suggestion entry.
type PromptCommand struct {
	Name        string
	Usage       string
	Description string
}

// PromptMatchingCommands returns commands that match the current input prefix.
// Matching stops once the input contains an argument.
func PromptMatchingCommands(input string, commands []PromptCommand) []PromptCommand {
	input = strings.TrimLeft(input, " ")
	if !strings.HasPrefix(input, "/") || strings.Contains(input, " ") {
		return nil
	}

	prefix := strings.ToLower(input)
	var matches []PromptCommand
	for _, cmd := range commands {
		if strings.HasPrefix(cmd.Name, prefix) {
			matches = append(matches, cmd)
		}
	}
	return matches
}

// PromptAutocomplete returns the first matching command and whether it exists.
func PromptAutocomplete(input string, commands []PromptCommand) (string, bool) {
	matches := PromptMatchingCommands(input, commands)
	if len(matches) == 0 {
		return "", false
	}
	return matches[0].Name + " ", true
}

// Split separates a submitted prompt into a lower-cased command name and its
// trimmed argument. Input without a leading slash has an empty name.
func Split(value string) (name, arg string) {
	value = strings.TrimSpace(value)
	if !strings.HasPrefix(value, "/") {
		return "", value
	}
	name, arg, _ = strings.Cut(value, " ")
	return strings.ToLower(name), strings.TrimSpace(arg)
}

// Fields splits an argument on whitespace, keeping double-quoted runs together.
func Fields(arg string) []string {
	var (
		out     []string
		current strings.Builder
		quoted  bool
		started bool
	)
	flush := func() {
		if started {
			out = append(out, current.String())
		}
		current.Reset()
		started = false
	}
	for _, r := range arg {
		switch {
		case r == '"':
			quoted = !quoted
			started = true
		case r == ' ' && !quoted:
			flush()
		default:
			current.WriteRune(r)
			started = true
		}
	}
	flush()
	return out
}
