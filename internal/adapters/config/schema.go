package config

// Settings is the [tool.vulcan] table of pyproject.toml, or the whole of vulcan.yaml.
type Settings struct {
	// Dependencies maps a package name to a version specifier string or to a
	// table with "version" and "extras" keys.
	Dependencies   map[string]any      `toml:"dependencies" yaml:"dependencies"`
	Extras         map[string][]string `toml:"extras" yaml:"extras"`
	Lockfile       string              `toml:"lockfile" yaml:"lockfile"`
	PythonLockWith string              `toml:"python-lock-with" yaml:"python-lock-with"`
	NoLock         bool                `toml:"no-lock" yaml:"no-lock"`
	Plugins        []string            `toml:"plugins" yaml:"plugins"`

	// Retired keys, kept so their presence can be reported.
	DevDependencies any `toml:"dev-dependencies" yaml:"dev-dependencies"`
	Shiv            any `toml:"shiv" yaml:"shiv"`
}

// Pyproject is the subset of pyproject.toml the loader reads.
type Pyproject struct {
	Project struct {
		Dynamic []string `toml:"dynamic"`
	} `toml:"project"`
	Tool struct {
		Vulcan *Settings `toml:"vulcan"`
	} `toml:"tool"`
}
