// Copyright (c) 2026 ToeiRei
// Cricketstats - cricket player statistics store
// This source code is licensed under the MIT license found in the LICENSE file.

// Package ingest reads player record documents produced by scrapers. A
// document is JSON or YAML holding either one record or a list of records;
// YAML streams may hold several documents. Files ending in ".zst" are
// Zstandard-compressed.
package ingest

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/toeirei/cricketstats/internal/model"
	"gopkg.in/yaml.v3"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// stdin is swapped by tests.
var stdin io.Reader = os.Stdin

// ReadFile reads every record in the file at path, or stdin for "-".
func ReadFile(path string) ([]model.PlayerRecord, error) {
	if path == Stdin {
		return Read(stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var r io.Reader = f
	if strings.HasSuffix(path, ".zst") {
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("could not create zstd reader: %w", err)
		}
		defer zr.Close()
		r = zr
	}

	recs, err := Read(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}

// Read decodes every record from r.
func Read(r io.Reader) ([]model.PlayerRecord, error) {
	dec := yaml.NewDecoder(r)
	var out []model.PlayerRecord
	for doc := 0; ; doc++ {
		var node yaml.Node
		if err := dec.Decode(&node); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("document %d: %w", doc, err)
		}
		v, err := nodeValue(&node)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", doc, err)
		}
		recs, err := decodeDocument(v)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", doc, err)
		}
		out = append(out, recs...)
	}
	return out, nil
}

// nodeValue converts a YAML node tree into maps, slices and strings. Scalars
// keep their source text ("010" stays "010", "12.50" stays "12.50") so
// numeric coercion and verbatim columns see what the document said; null
// scalars become nil.
func nodeValue(n *yaml.Node) (any, error) {
	switch n.Kind {
	case 0:
		return nil, nil
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return nodeValue(n.Content[0])
	case yaml.AliasNode:
		return nodeValue(n.Alias)
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return nil, nil
		}
		return n.Value, nil
	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := nodeValue(c)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case yaml.MappingNode:
		out := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			if k.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: mapping keys must be scalars", k.Line)
			}
			v, err := nodeValue(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			out[k.Value] = v
		}
		return out, nil
	default:
		return nil, fmt.Errorf("line %d: unexpected YAML node kind %d", n.Line, n.Kind)
	}
}

func decodeDocument(v any) ([]model.PlayerRecord, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case map[string]any:
		rec, err := model.DecodePlayerRecord(t)
		if err != nil {
			return nil, err
		}
		return []model.PlayerRecord{rec}, nil
	case []any:
		out := make([]model.PlayerRecord, 0, len(t))
		for i, item := range t {
			m, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("record %d: expected a mapping, got %T", i, item)
			}
			rec, err := model.DecodePlayerRecord(m)
			if err != nil {
				return nil, fmt.Errorf("record %d: %w", i, err)
			}
			out = append(out, rec)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected a record or a list of records, got %T", v)
	}
}
