// Package ioreport writes results of a check run and the check catalog
// in text, JSON or YAML.
package ioreport

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gnfmt"
	"github.com/gnames/squadcheck/pkg/integrity"
	"gopkg.in/yaml.v3"
)

// Formats returns supported output formats.
func Formats() []string {
	return []string{"text", "json", "yaml"}
}

// Render writes the report to w in the given format.
func Render(w io.Writer, rep *integrity.Report, format string) error {
	switch format {
	case "text", "":
		return writeText(w, textReport(rep))
	case "json":
		return writeJSON(w, rep)
	case "yaml":
		return writeYAML(w, rep)
	default:
		return FormatError(format)
	}
}

// catalogEntry is the serialized form of a check.
type catalogEntry struct {
	Name        string         `json:"name" yaml:"name"`
	Kind        integrity.Kind `json:"kind" yaml:"kind"`
	Description string         `json:"description" yaml:"description"`
}

// RenderCatalog writes names, kinds and descriptions of checks.
func RenderCatalog(w io.Writer, checks []integrity.Check, format string) error {
	entries := make([]catalogEntry, len(checks))
	for i, v := range checks {
		entries[i] = catalogEntry{
			Name:        v.Name,
			Kind:        v.Kind,
			Description: v.Description,
		}
	}

	switch format {
	case "text", "":
		return writeText(w, textCatalog(entries))
	case "json":
		return writeJSON(w, entries)
	case "yaml":
		return writeYAML(w, entries)
	default:
		return FormatError(format)
	}
}

func textReport(rep *integrity.Report) string {
	var b strings.Builder
	for _, v := range rep.Results {
		fmt.Fprintf(&b, "%-5s %s", v.Status, v.Name)
		if v.Note != "" {
			fmt.Fprintf(&b, " (%s)", v.Note)
		}
		b.WriteString("\n")
		if v.Diagnostic != "" {
			fmt.Fprintf(&b, "      %s\n", v.Diagnostic)
		}
	}

	if rep.Total() > 0 {
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "%s: %s passed, %s failed, %s errored in %s\n",
		countWord(rep.Total(), "check"),
		humanize.Comma(int64(rep.Passed)),
		humanize.Comma(int64(rep.Failed)),
		humanize.Comma(int64(rep.Errored)),
		gnfmt.TimeString(rep.Seconds),
	)
	return b.String()
}

func textCatalog(entries []catalogEntry) string {
	width := 0
	for _, v := range entries {
		width = max(width, len(v.Name))
	}

	var b strings.Builder
	for _, v := range entries {
		fmt.Fprintf(&b, "%-*s  %-13s  %s\n",
			width, v.Name, v.Kind, v.Description)
	}
	return b.String()
}

func countWord(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return humanize.Comma(int64(n)) + " " + word + "s"
}

func writeText(w io.Writer, s string) error {
	if _, err := io.WriteString(w, s); err != nil {
		return EncodeError("text", err)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := gnfmt.GNjson{Pretty: true}
	res, err := enc.Encode(v)
	if err != nil {
		return EncodeError("json", err)
	}
	if _, err = w.Write(append(res, '\n')); err != nil {
		return EncodeError("json", err)
	}
	return nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return EncodeError("yaml", err)
	}
	if err := enc.Close(); err != nil {
		return EncodeError("yaml", err)
	}
	return nil
}
