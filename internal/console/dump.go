package console

import (
	"encoding/json"
	"flight-dashboard/internal/adapters/flatfile"
	"flight-dashboard/internal/console/dto"
	"flight-dashboard/internal/domain"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Write records in the requested format. Text is the snapshot line format.
func WriteDump(w io.Writer, records []domain.Record, format string) error {
	switch format {
	case FormatText, "":
		return flatfile.Encode(w, records)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(dto.NewDumpResponse(records)); err != nil {
			return fmt.Errorf("write dump: encode json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(dto.NewDumpResponse(records)); err != nil {
			return fmt.Errorf("write dump: encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("write dump: close yaml encoder: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("write dump: unknown format %q", format)
	}
}
