package plotcsv

import (
	"strings"
)

const (
	DefaultPrompt  = "> "
	maxPromptLabel = 60
)

// PromptFor returns the prompt shown while path is the current CSV file: its
// base name followed by "> ".
func PromptFor(path string) string {
	label := path
	if parts := strings.FieldsFunc(path, func(r rune) bool { return r == '/' }); len(parts) > 0 {
		label = parts[len(parts)-1]
	}
	return labelPrompt(label)
}

func labelPrompt(label string) string {
	if label == "" {
		return DefaultPrompt
	}
	if r := []rune(label); len(r) > maxPromptLabel {
		label = string(r[:maxPromptLabel])
	}
	return label + DefaultPrompt
}
