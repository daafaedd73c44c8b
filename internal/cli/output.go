package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// writeResults prints step results as text lines or a JSON array.
func writeResults(w io.Writer, format string, results []StepResult) error {
	if format == "json" {
		if results == nil {
			results = []StepResult{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	for _, r := range results {
		line := fmt.Sprintf("step %d: %s", r.Step, formatPairs(r.Pairs))
		if len(r.Missing) > 0 {
			line += " missing " + formatPairs(r.Missing)
		}
		if len(r.Extra) > 0 {
			line += " extra " + formatPairs(r.Extra)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func formatPairs(pairs []Pair) string {
	if len(pairs) == 0 {
		return "none"
	}
	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = p[0] + "-" + p[1]
	}
	return strings.Join(parts, " ")
}
