package formatter

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/kataras/figma-projects/pkg/figma"

	"gopkg.in/yaml.v3"
)

// Format names an output encoding for a project dump.
type Format string

const (
	// Markdown renders a heading and a table of files.
	Markdown Format = "markdown"
	// JSON renders the API shape, indented by two spaces.
	JSON Format = "json"
	// YAML renders the API shape with the same camelCase keys.
	YAML Format = "yaml"
)

// Formats lists every supported format.
var Formats = []Format{Markdown, JSON, YAML}

// ParseFormat parses a case-insensitive format name. "md" and "yml" are accepted as aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "markdown", "md":
		return Markdown, nil
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("invalid format %q (must be markdown, json, or yaml)", s)
	}
}

// Valid reports whether f is one of Formats.
func (f Format) Valid() bool {
	for _, known := range Formats {
		if f == known {
			return true
		}
	}
	return false
}

// Render writes the project in the given format to w.
func Render(w io.Writer, project *figma.ProjectDetails, f Format) error {
	switch f {
	case Markdown:
		_, err := io.WriteString(w, ToMarkdown(project))
		return err
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(project)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(project); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q", f)
	}
}
