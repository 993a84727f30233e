package manifest

// ManifestFileName is the conventional file name of a package manifest.
const ManifestFileName = "wasmpack.toml"

// InstallDirName is the directory packages are installed into. It is also
// the entry appended to a project's .gitignore.
const InstallDirName = "wasmpack_packages"

// Manifest is a complete package description as stored in wasmpack.toml.
// Modules and Commands are nil (not empty slices) when absent so their
// sections are suppressed when the manifest is rendered.
type Manifest struct {
	// Path is the base directory the manifest was loaded from or will be
	// saved to. Not serialized.
	Path string `toml:"-"`

	Package      Package           `toml:"package"`
	Dependencies map[string]string `toml:"dependencies,omitempty"`
	Modules      []Module          `toml:"module,omitempty"`
	Commands     []Command         `toml:"command,omitempty"`
}

// Package holds the top-level package metadata.
type Package struct {
	Name        string `toml:"name"`
	Version     string `toml:"version"`
	Description string `toml:"description"`
	Repository  string `toml:"repository,omitempty"`
	License     string `toml:"license,omitempty"`
	LicenseFile string `toml:"license-file,omitempty"`
	Homepage    string `toml:"homepage,omitempty"`
	Readme      string `toml:"readme,omitempty"`
}

// Module describes one deployable wasm binary within a package.
type Module struct {
	Name   string `toml:"name"`
	Source string `toml:"source"`
	Abi    Abi    `toml:"abi"`
	// Interfaces maps a required interface name to the version it is
	// pinned at (e.g. "wasi" -> "0.0.0-unstable").
	Interfaces map[string]string `toml:"interfaces,omitempty"`
}

// Command is a named entry point exposed by a module.
type Command struct {
	Name string `toml:"name"`
	// Module is the name of the module that backs this command. It must
	// match the Name of a Module declared in the same manifest.
	Module   string `toml:"module"`
	MainArgs string `toml:"main-args,omitempty"`
	Package  string `toml:"package,omitempty"`
}
