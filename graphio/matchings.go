package graphio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/bimatch/core"
)

// Output is a matching list encoding.
type Output int

const (
	// Text writes one matching per line.
	Text Output = iota
	// JSONArray writes a single JSON array of pair arrays.
	JSONArray
)

// ParseOutput maps "text" or "json" to an Output.
func ParseOutput(name string) (Output, error) {
	switch name {
	case "text", "":
		return Text, nil
	case "json":
		return JSONArray, nil
	default:
		return 0, fmt.Errorf("ParseOutput(%q): %w", name, ErrUnknownFormat)
	}
}

// WriteMatchings writes ms to w in the chosen encoding.
func WriteMatchings(w io.Writer, ms []core.Matching, out Output) error {
	switch out {
	case Text:
		bw := bufio.NewWriter(w)
		for _, m := range ms {
			if _, err := fmt.Fprintln(bw, m); err != nil {
				return fmt.Errorf("WriteMatchings: %w", err)
			}
		}
		if err := bw.Flush(); err != nil {
			return fmt.Errorf("WriteMatchings: %w", err)
		}
	case JSONArray:
		// nil matchings must encode as [] rather than null
		rows := make([]core.Matching, len(ms))
		for i, m := range ms {
			rows[i] = m
			if rows[i] == nil {
				rows[i] = core.Matching{}
			}
		}
		if err := json.NewEncoder(w).Encode(rows); err != nil {
			return fmt.Errorf("WriteMatchings: %w", err)
		}
	default:
		return fmt.Errorf("WriteMatchings: output %d: %w", out, ErrUnknownFormat)
	}

	return nil
}
