package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

func (p *parser) parseYAML(content []byte) (*Manifest, error) {
	m := &Manifest{Path: p.filename}
	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	if err := dec.Decode(m); err != nil && !errors.Is(err, io.EOF) {
		return nil, &ParseError{
			Pos:     Position{Filename: p.filename},
			Message: fmt.Sprintf("syntax error: %v", err),
			Wrapped: err,
		}
	}

	// A second pass over the node tree recovers positions for diagnostics.
	var doc yaml.Node
	if err := yaml.Unmarshal(content, &doc); err != nil || len(doc.Content) == 0 {
		return m, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return m, nil
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		if val.Kind != yaml.SequenceNode {
			continue
		}
		switch key.Value {
		case "repositories":
			for j, item := range val.Content {
				if j < len(m.Repositories) {
					m.Repositories[j].Pos = p.yamlPosition(item)
				}
			}
		case "objects":
			for j, item := range val.Content {
				if j < len(m.Objects) {
					m.Objects[j].Pos = p.yamlPosition(item)
				}
			}
		}
	}
	return m, nil
}

func (p *parser) yamlPosition(n *yaml.Node) Position {
	return Position{Filename: p.filename, Line: n.Line, Column: n.Column}
}
