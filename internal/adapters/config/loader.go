// Package config loads the project descriptor of a vulcan project.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"go.trai.ch/vulcan/internal/core/domain"
	"go.trai.ch/vulcan/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// YAMLFilename is the standalone descriptor, preferred when present.
	YAMLFilename = "vulcan.yaml"
	// PyprojectFilename is the descriptor holding a [tool.vulcan] table.
	PyprojectFilename = "pyproject.toml"
	// DefaultLockfile is the lockfile name used when none is configured.
	DefaultLockfile = "vulcan.lock"
)

// Loader implements ports.ProjectLoader.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads vulcan.yaml from dir, falling back to pyproject.toml.
func (l *Loader) Load(dir string) (domain.Project, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return domain.Project{}, zerr.Wrap(err, "failed to resolve project directory")
	}

	yamlPath := filepath.Join(root, YAMLFilename)
	pyprojectPath := filepath.Join(root, PyprojectFilename)

	yamlData, yamlErr := readOptional(yamlPath)
	if yamlErr != nil {
		return domain.Project{}, yamlErr
	}
	pyprojectData, pyprojectErr := readOptional(pyprojectPath)
	if pyprojectErr != nil {
		return domain.Project{}, pyprojectErr
	}

	switch {
	case yamlData != nil:
		if pyprojectData != nil && bytes.Contains(pyprojectData, []byte("[tool.vulcan")) {
			l.logger.Warn(YAMLFilename + " takes precedence over [tool.vulcan] in " + PyprojectFilename)
		}
		settings, err := decodeYAML(yamlData)
		if err != nil {
			return domain.Project{}, zerr.With(err, "file", yamlPath)
		}
		return build(root, settings)

	case pyprojectData != nil:
		settings, err := decodePyproject(pyprojectData)
		if err != nil {
			return domain.Project{}, zerr.With(err, "file", pyprojectPath)
		}
		return build(root, settings)

	default:
		notFound := zerr.Wrap(domain.ErrProjectNotFound, "no project descriptor found")
		notFound = zerr.With(notFound, "dir", root)
		return domain.Project{}, zerr.With(notFound, "searched", YAMLFilename+", "+PyprojectFilename)
	}
}

func readOptional(path string) ([]byte, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the working directory
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read project descriptor"), "file", path)
	}
	return data, nil
}

func decodeYAML(data []byte) (Settings, error) {
	var settings Settings
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&settings); err != nil && !errors.Is(err, io.EOF) {
		return Settings{}, invalid("failed to parse "+YAMLFilename, err)
	}
	return settings, nil
}

func decodePyproject(data []byte) (Settings, error) {
	var doc Pyproject
	if err := toml.Unmarshal(data, &doc); err != nil {
		return Settings{}, invalid("failed to parse "+PyprojectFilename, err)
	}
	if doc.Tool.Vulcan == nil {
		return Settings{}, zerr.Wrap(domain.ErrProjectNotFound, "no [tool.vulcan] table in "+PyprojectFilename)
	}

	settings := *doc.Tool.Vulcan
	if settings.Dependencies != nil && !slices.Contains(doc.Project.Dynamic, "dependencies") {
		return Settings{}, zerr.Wrap(domain.ErrInvalidProject,
			"tool.vulcan.dependencies configured but 'dependencies' not in project.dynamic")
	}
	if settings.Extras != nil && !slices.Contains(doc.Project.Dynamic, "optional-dependencies") {
		return Settings{}, zerr.Wrap(domain.ErrInvalidProject,
			"tool.vulcan.extras configured but 'optional-dependencies' not in project.dynamic")
	}
	return settings, nil
}

func build(root string, settings Settings) (domain.Project, error) {
	if settings.DevDependencies != nil {
		return domain.Project{}, zerr.Wrap(domain.ErrInvalidProject,
			"tool.vulcan.dev-dependencies is not supported, use extras instead")
	}
	if !isEmpty(settings.Shiv) {
		return domain.Project{}, zerr.Wrap(domain.ErrInvalidProject, "tool.vulcan.shiv is not supported")
	}

	plugins, err := validatePlugins(settings.Plugins)
	if err != nil {
		return domain.Project{}, err
	}

	deps, err := FlattenDependencies(settings.Dependencies)
	if err != nil {
		return domain.Project{}, err
	}

	extras := make(map[string][]domain.Requirement, len(settings.Extras))
	for name, raw := range settings.Extras {
		reqs, err := domain.ParseRequirements(raw)
		if err != nil {
			return domain.Project{}, zerr.With(invalid("invalid extra requirement", err), "extra", name)
		}
		extras[name] = reqs
	}

	lockfile := settings.Lockfile
	if lockfile == "" {
		lockfile = DefaultLockfile
	}
	if !filepath.IsAbs(lockfile) {
		lockfile = filepath.Join(root, lockfile)
	}

	return domain.Project{
		Root:           root,
		Lockfile:       lockfile,
		Dependencies:   deps,
		Extras:         extras,
		PythonLockWith: strings.TrimSpace(settings.PythonLockWith),
		NoLock:         settings.NoLock,
		Plugins:        plugins,
	}, nil
}

func validatePlugins(raw []string) ([]string, error) {
	var plugins []string
	for _, entry := range raw {
		name := strings.TrimSpace(entry)
		if name == "" {
			return nil, zerr.Wrap(domain.ErrInvalidProject, "plugin names must not be empty")
		}
		if slices.Contains(plugins, name) {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidProject, "plugin listed twice"), "plugin", name)
		}
		plugins = append(plugins, name)
	}
	return plugins, nil
}

// isEmpty reports whether a decoded value is absent or an empty string, list or table.
func isEmpty(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case []any:
		return len(val) == 0
	case map[string]any:
		return len(val) == 0
	default:
		return false
	}
}

// FlattenDependencies renders the dependency table as requirement strings,
// ordered by package name. A string value is appended to the name as a version
// specifier; a table contributes its "extras" in brackets and then its "version".
func FlattenDependencies(deps map[string]any) ([]domain.Requirement, error) {
	reqs := make([]domain.Requirement, 0, len(deps))
	for _, name := range slices.Sorted(maps.Keys(deps)) {
		raw, err := toPEP508(name, deps[name])
		if err != nil {
			return nil, err
		}
		req, err := domain.ParseRequirement(raw)
		if err != nil {
			return nil, zerr.With(invalid("invalid dependency", err), "package", name)
		}
		reqs = append(reqs, req)
	}
	domain.SortRequirements(reqs)
	return reqs, nil
}

func toPEP508(name string, spec any) (string, error) {
	switch v := spec.(type) {
	case string:
		return name + v, nil
	case map[string]any:
		version, ok := v["version"].(string)
		if !ok {
			return "", invalidDependency(name, "table requires a string \"version\"")
		}
		extras, err := stringList(v["extras"])
		if err != nil {
			return "", invalidDependency(name, err.Error())
		}
		if len(extras) == 0 {
			return name + version, nil
		}
		return name + "[" + strings.Join(extras, ",") + "]" + version, nil
	default:
		return "", invalidDependency(name, fmt.Sprintf("must be a string or a table, got %T", spec))
	}
}

func stringList(v any) ([]string, error) {
	switch list := v.(type) {
	case nil:
		return nil, nil
	case []string:
		return list, nil
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("extras must be strings, got %T", item)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("extras must be a list, got %T", v)
	}
}

func invalidDependency(name, reason string) error {
	err := zerr.Wrap(domain.ErrInvalidProject, "invalid dependency")
	err = zerr.With(err, "package", name)
	return zerr.With(err, "reason", reason)
}

func invalid(msg string, cause error) error {
	return zerr.With(zerr.Wrap(domain.ErrInvalidProject, msg), "cause", cause.Error())
}

var _ ports.ProjectLoader = (*Loader)(nil)
