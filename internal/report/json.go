package report

import (
	"encoding/json"
	"fmt"
	"io"
)

func writeJSON(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r.Output); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return nil
}
