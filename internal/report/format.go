package report

import (
	"fmt"
	"strings"
)

// Format is an export format.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
)

// Formats returns every supported format.
func Formats() []Format {
	return []Format{FormatText, FormatMarkdown, FormatJSON, FormatYAML}
}

// ParseFormat parses a format name. "md" and "yml" are accepted.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "txt":
		return FormatText, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown export format %q (want one of %s)", s, formatList())
}

// Extension returns the file extension without the dot.
func (f Format) Extension() string {
	switch f {
	case FormatMarkdown:
		return "md"
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "txt"
	}
}

func formatList() string {
	names := make([]string, 0, len(Formats()))
	for _, f := range Formats() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}
