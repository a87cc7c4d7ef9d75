package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	selectable "github.com/albertocavalcante/go-selectable"
	"github.com/albertocavalcante/go-selectable/status"
)

// encode writes v as JSON or YAML.
func encode(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("format %q has no encoder", format)
}

// statusColor picks the color of a status code in listings.
func statusColor(st status.Status) *color.Color {
	switch {
	case st.IsAuto():
		return color.New(color.FgCyan)
	case st == status.Del:
		return color.New(color.FgRed)
	case st.Transacts():
		return color.New(color.FgGreen)
	case st.IsLocked():
		return color.New(color.FgYellow)
	}
	return color.New(color.Reset)
}

// writeLine writes the one-line form of s with a colored status code.
func writeLine(w io.Writer, s *selectable.Selectable) error {
	line := selectable.String(s)
	st := s.Status()
	code := st.Code()
	_, err := fmt.Fprintf(w, "%s%s\n", statusColor(st).Sprint(code), line[len(code):])
	return err
}
