package formatter

import (
	"fmt"
	"strings"

	"github.com/kataras/figma-projects/pkg/figma"
)

// ToMarkdown renders a project as a markdown document: a heading with the project name
// and a table of its files in the order the API returned them.
func ToMarkdown(project *figma.ProjectDetails) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Figma Project - %s\n\n", escapeCell(project.Name)))

	if len(project.Files) == 0 {
		sb.WriteString("This project has no files.\n")
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("This project contains %d file(s).\n\n", len(project.Files)))

	sb.WriteString("## Files\n\n")
	sb.WriteString("| # | Name | Key | Last Modified | Thumbnail |\n")
	sb.WriteString("|---|------|-----|---------------|-----------|\n")

	for i, file := range project.Files {
		thumbnail := "-"
		if file.ThumbnailURL != nil && *file.ThumbnailURL != "" {
			thumbnail = fmt.Sprintf("[view](%s)", *file.ThumbnailURL)
		}

		sb.WriteString(fmt.Sprintf("| %d | %s | `%s` | %s | %s |\n",
			i+1,
			escapeCell(file.Name),
			file.Key,
			formatLastModified(file),
			thumbnail))
	}

	sb.WriteString("\n")
	return sb.String()
}

// formatLastModified prints RFC 3339 timestamps in a shorter UTC form
// and leaves anything else untouched.
func formatLastModified(file figma.FileInfo) string {
	if file.LastModified == "" {
		return "-"
	}
	ts, err := file.LastModifiedTime()
	if err != nil {
		return escapeCell(file.LastModified)
	}
	return ts.UTC().Format("2006-01-02 15:04 UTC")
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}
