package graphio

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/bimatch/core"
)

var (
	// ErrUnknownFormat is returned for an unrecognised format name or file extension.
	ErrUnknownFormat = errors.New("graphio: unknown format")

	// ErrUnknownKey is returned when a graph file carries keys this package does not read.
	ErrUnknownKey = errors.New("graphio: unknown key")

	// ErrMalformed wraps syntax and schema errors from the decoders.
	ErrMalformed = errors.New("graphio: malformed graph file")
)

// Format is a graph file encoding.
type Format int

const (
	// TOML is the default graph file format.
	TOML Format = iota
	// JSON is the alternative graph file format.
	JSON
)

// String returns "toml" or "json".
func (f Format) String() string {
	switch f {
	case TOML:
		return "toml"
	case JSON:
		return "json"
	default:
		return "unknown"
	}
}

// DetectFormat picks the format from path's extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".json":
		return JSON, nil
	default:
		return 0, fmt.Errorf("DetectFormat(%q): %w", path, ErrUnknownFormat)
	}
}

// File is the on-disk shape of a graph.
type File struct {
	Left  []string    `toml:"left,omitempty" json:"left,omitempty"`
	Right []string    `toml:"right,omitempty" json:"right,omitempty"`
	Edges []core.Pair `toml:"edge" json:"edges"`
}

// ReadFile loads the graph at path, detecting the format by extension.
func ReadFile(path string) (*core.Graph, error) {
	f, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ReadFile: %w", err)
	}

	return Decode(bytes.NewReader(data), f)
}

// Decode reads one graph in format f from r.
//
// Steps:
//  1. Decode into File, rejecting unknown keys.
//  2. Add the listed Left and Right vertices.
//  3. Add every edge with its Left endpoint first.
//
// Graph errors (ErrSideConflict, ErrMultiEdgeNotAllowed, ...) are wrapped as is.
func Decode(r io.Reader, f Format) (*core.Graph, error) {
	var file File
	switch f {
	case TOML:
		md, err := toml.NewDecoder(r).Decode(&file)
		if err != nil {
			return nil, fmt.Errorf("Decode(toml): %w: %w", ErrMalformed, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("Decode(toml): %q: %w", undecoded[0].String(), ErrUnknownKey)
		}
	case JSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&file); err != nil {
			if strings.HasPrefix(err.Error(), "json: unknown field") {
				return nil, fmt.Errorf("Decode(json): %w: %w", ErrUnknownKey, err)
			}
			return nil, fmt.Errorf("Decode(json): %w: %w", ErrMalformed, err)
		}
	default:
		return nil, fmt.Errorf("Decode: format %d: %w", f, ErrUnknownFormat)
	}

	return file.Graph()
}

// Graph builds a core.Graph from the decoded file.
func (file File) Graph() (*core.Graph, error) {
	g := core.NewGraph()
	for _, id := range file.Left {
		if err := g.AddVertex(id, core.Left); err != nil {
			return nil, fmt.Errorf("Graph: left %q: %w", id, err)
		}
	}
	for _, id := range file.Right {
		if err := g.AddVertex(id, core.Right); err != nil {
			return nil, fmt.Errorf("Graph: right %q: %w", id, err)
		}
	}
	for i, p := range file.Edges {
		if err := g.AddVertex(p.Left, core.Left); err != nil {
			return nil, fmt.Errorf("Graph: edge %d: %w", i, err)
		}
		if err := g.AddVertex(p.Right, core.Right); err != nil {
			return nil, fmt.Errorf("Graph: edge %d: %w", i, err)
		}
		if _, err := g.AddEdge(p.Left, p.Right); err != nil {
			return nil, fmt.Errorf("Graph: edge %d (%s): %w", i, p, err)
		}
	}

	return g, nil
}

// FromGraph captures g as a File; isolated vertices are listed explicitly.
func FromGraph(g *core.Graph) File {
	var file File
	for _, e := range g.Edges() {
		file.Edges = append(file.Edges, core.Pair{Left: e.Left, Right: e.Right})
	}
	for _, id := range g.LeftVertices() {
		if iso, _ := g.IsIsolated(id); iso {
			file.Left = append(file.Left, id)
		}
	}
	for _, id := range g.RightVertices() {
		if iso, _ := g.IsIsolated(id); iso {
			file.Right = append(file.Right, id)
		}
	}

	return file
}

// Encode writes g to w in format f.
func Encode(w io.Writer, g *core.Graph, f Format) error {
	file := FromGraph(g)
	switch f {
	case TOML:
		if err := toml.NewEncoder(w).Encode(file); err != nil {
			return fmt.Errorf("Encode(toml): %w", err)
		}
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(file); err != nil {
			return fmt.Errorf("Encode(json): %w", err)
		}
	default:
		return fmt.Errorf("Encode: format %d: %w", f, ErrUnknownFormat)
	}

	return nil
}
