package config

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/pelletier/go-toml/v2"
	"github.com/pelletier/go-toml/v2/unstable"
	"go.trai.ch/vulcan/internal/core/domain"
	"go.trai.ch/vulcan/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var dependencyTable = []string{"tool", "vulcan", "dependencies"}

// Editor implements ports.ProjectEditor. Edits are made in place so that
// comments and the order of unrelated entries survive.
type Editor struct{}

// NewEditor creates a new Editor.
func NewEditor() *Editor {
	return &Editor{}
}

// AddDependency writes name = specifier into the descriptor Load would read from dir.
func (e *Editor) AddDependency(dir, name, specifier string) (string, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return "", zerr.Wrap(err, "failed to resolve project directory")
	}

	path := filepath.Join(root, YAMLFilename)
	edit := addYAMLDependency
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		path = filepath.Join(root, PyprojectFilename)
		edit = addTOMLDependency
		info, err = os.Stat(path)
	}
	if errors.Is(err, fs.ErrNotExist) {
		notFound := zerr.Wrap(domain.ErrProjectNotFound, "no project descriptor found")
		return "", zerr.With(notFound, "dir", root)
	}
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to read project descriptor"), "file", path)
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the working directory
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to read project descriptor"), "file", path)
	}

	edited, err := edit(data, name, specifier)
	if err != nil {
		return "", zerr.With(err, "file", path)
	}

	if err := os.WriteFile(path, edited, info.Mode().Perm()); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to write project descriptor"), "file", path)
	}
	return path, nil
}

// addTOMLDependency rewrites or inserts a single line of the [tool.vulcan.dependencies]
// table, appending the table when the document has none.
func addTOMLDependency(data []byte, name, specifier string) ([]byte, error) {
	entry, err := toml.Marshal(map[string]string{name: specifier})
	if err != nil {
		return nil, zerr.Wrap(err, "failed to render dependency")
	}

	var (
		p         unstable.Parser
		current   []string
		inTable   bool
		headerEnd = -1
		lastEnd   = -1
		dotted    bool
	)
	p.Reset(data)

	for p.NextExpression() {
		expr := p.Expression()
		switch expr.Kind {
		case unstable.Table, unstable.ArrayTable:
			current = keyParts(expr.Key())
			inTable = expr.Kind == unstable.Table && slices.Equal(current, dependencyTable)
			if inTable {
				headerEnd = lineEnd(data, firstKeyOffset(expr.Key()))
			}
			if len(current) > len(dependencyTable) && isDependencyPath(current) && sameDistribution(current[3], name) {
				return nil, tableFormDependency(name)
			}

		case unstable.KeyValue:
			parts := keyParts(expr.Key())
			full := append(slices.Clone(current), parts...)

			if inTable && len(parts) == 1 {
				start := lineStart(data, firstKeyOffset(expr.Key()))
				end := lineEnd(data, start)
				if sameDistribution(parts[0], name) {
					return splice(data, start, end, entry), nil
				}
				lastEnd = end
				continue
			}

			switch {
			case slices.Equal(full, dependencyTable):
				return nil, zerr.Wrap(domain.ErrInvalidProject,
					"tool.vulcan.dependencies is an inline table, declare it as a [tool.vulcan.dependencies] table to edit it")
			case len(full) > len(dependencyTable) && isDependencyPath(full):
				if sameDistribution(full[3], name) {
					return nil, tableFormDependency(name)
				}
				if !inTable {
					dotted = true
				}
			}
		}
	}
	if err := p.Error(); err != nil {
		return nil, invalid("failed to parse "+PyprojectFilename, err)
	}

	switch {
	case lastEnd >= 0:
		return splice(data, lastEnd, lastEnd, entry), nil
	case headerEnd >= 0:
		return splice(data, headerEnd, headerEnd, entry), nil
	case dotted:
		return nil, zerr.Wrap(domain.ErrInvalidProject,
			"tool.vulcan.dependencies uses dotted keys, declare it as a [tool.vulcan.dependencies] table to edit it")
	}

	out := bytes.Clone(data)
	if len(out) > 0 && !bytes.HasSuffix(out, []byte("\n")) {
		out = append(out, '\n')
	}
	if len(out) > 0 {
		out = append(out, '\n')
	}
	out = append(out, "[tool.vulcan.dependencies]\n"...)
	return append(out, entry...), nil
}

// addYAMLDependency sets the entry in the top-level "dependencies" mapping.
func addYAMLDependency(data []byte, name, specifier string) ([]byte, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, invalid("failed to parse "+YAMLFilename, err)
	}
	if doc.Kind == 0 {
		doc = yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{{Kind: yaml.MappingNode, Tag: "!!map"}}}
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, zerr.Wrap(domain.ErrInvalidProject, YAMLFilename+" must be a mapping")
	}

	value := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: specifier}
	deps := mappingValue(root, "dependencies")
	switch {
	case deps == nil:
		deps = &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		root.Content = append(root.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: "dependencies"}, deps)
	case deps.Kind == yaml.ScalarNode && deps.Tag == "!!null":
		deps.Kind, deps.Tag, deps.Value = yaml.MappingNode, "!!map", ""
	case deps.Kind != yaml.MappingNode:
		return nil, zerr.Wrap(domain.ErrInvalidProject, "dependencies must be a mapping")
	}

	replaced := false
	for i := 0; i+1 < len(deps.Content); i += 2 {
		if sameDistribution(deps.Content[i].Value, name) {
			deps.Content[i].Value = name
			deps.Content[i+1] = value
			replaced = true
			break
		}
	}
	if !replaced {
		deps.Content = append(deps.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name}, value)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return nil, zerr.Wrap(err, "failed to render "+YAMLFilename)
	}
	if err := enc.Close(); err != nil {
		return nil, zerr.Wrap(err, "failed to render "+YAMLFilename)
	}
	return buf.Bytes(), nil
}

func mappingValue(mapping *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}
	return nil
}

// sameDistribution compares two dependency keys by normalized package name,
// ignoring any extras.
func sameDistribution(a, b string) bool {
	nameA, errA := domain.Requirement(a).Name()
	nameB, errB := domain.Requirement(b).Name()
	if errA != nil || errB != nil {
		return a == b
	}
	return nameA == nameB
}

func isDependencyPath(path []string) bool {
	return slices.Equal(path[:len(dependencyTable)], dependencyTable)
}

func tableFormDependency(name string) error {
	err := zerr.Wrap(domain.ErrInvalidProject, "dependency is declared as a table and cannot be replaced")
	return zerr.With(err, "package", name)
}

func keyParts(it unstable.Iterator) []string {
	var parts []string
	for it.Next() {
		parts = append(parts, string(it.Node().Data))
	}
	return parts
}

func firstKeyOffset(it unstable.Iterator) int {
	it.Next()
	return int(it.Node().Raw.Offset)
}

func lineStart(data []byte, offset int) int {
	return bytes.LastIndexByte(data[:offset], '\n') + 1
}

// lineEnd returns the offset just past the newline ending the line at offset.
func lineEnd(data []byte, offset int) int {
	if i := bytes.IndexByte(data[offset:], '\n'); i >= 0 {
		return offset + i + 1
	}
	return len(data)
}

// splice replaces data[start:end] with repl. A replacement landing at the end
// of a document without a final newline gets one first.
func splice(data []byte, start, end int, repl []byte) []byte {
	out := make([]byte, 0, len(data)+len(repl)+1)
	out = append(out, data[:start]...)
	if start == len(data) && start > 0 && data[start-1] != '\n' {
		out = append(out, '\n')
	}
	out = append(out, repl...)
	return append(out, data[end:]...)
}

var _ ports.ProjectEditor = (*Editor)(nil)
