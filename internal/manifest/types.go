package manifest

// ModuleType is the value of package.json "type" that enables ES modules.
const ModuleType = "module"

// DevScript is the script every generated project is expected to define.
const DevScript = "dev"

// PackageJSON is the subset of package.json the CLI reads and writes.
type PackageJSON struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Description     string            `json:"description,omitempty"`
	Private         bool              `json:"private,omitempty"`
	Type            string            `json:"type,omitempty"`
	Scripts         map[string]string `json:"scripts,omitempty"`
	Dependencies    map[string]string `json:"dependencies,omitempty"`
	DevDependencies map[string]string `json:"devDependencies,omitempty"`
}

// Dependency returns the declared range of a runtime dependency.
func (p *PackageJSON) Dependency(name string) (string, bool) {
	v, ok := p.Dependencies[name]
	return v, ok
}

// HasScript reports whether a script with the given name is declared.
func (p *PackageJSON) HasScript(name string) bool {
	_, ok := p.Scripts[name]
	return ok
}

// IsModule reports whether the package opts into ES modules.
func (p *PackageJSON) IsModule() bool {
	return p.Type == ModuleType
}
