package wizard

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/wasmpack-labs/wasmpack/internal/branding"
	"github.com/wasmpack-labs/wasmpack/internal/config"
	"github.com/wasmpack-labs/wasmpack/internal/manifest"
)

// defaultVersion is the version a freshly seeded manifest starts with.
const defaultVersion = "1.0.0"

// defaultLicense is used when the user configuration carries no
// init.license setting.
const defaultLicense = "ISC"

// Run drives the interactive manifest session for dir. It loads the
// existing manifest if one is present, or seeds a minimal draft; walks the
// user through the package fields and the module-collection loop (skipped
// entirely when forceYes is set); and after confirmation saves the
// manifest and best-effort updates the .gitignore. in and out carry all
// console traffic.
func Run(dir string, forceYes bool, in io.Reader, out io.Writer) error {
	m, err := loadOrSeed(dir)
	if err != nil {
		return err
	}

	// One Asker for the whole session: assembly and confirmation share the
	// buffered reader.
	asker := NewAsker(in, out)

	if !forceYes {
		if err := assemble(m, asker, out); err != nil {
			return err
		}
	}

	text, err := m.Render()
	if err != nil {
		return err
	}

	lead := "About to write to"
	if forceYes {
		lead = "Wrote to"
	}
	fmt.Fprintf(out, "\n%s %s:\n\n%s\n", lead, m.FilePath(), text)

	ok := forceYes
	if !ok {
		ok, err = asker.Confirm("Is this OK?", true)
		if err != nil {
			return err
		}
	}
	if !ok {
		fmt.Fprintln(out, "Aborted.")
		return nil
	}

	if err := m.Save(); err != nil {
		return err
	}
	// Best effort: a project without a .gitignore is not an error.
	_ = EnsureIgnored(dir)
	return nil
}

// loadOrSeed returns the manifest to edit: the one already in dir if
// present, else a minimal draft named after the directory with a single
// conventional entry module.
func loadOrSeed(dir string) (*manifest.Manifest, error) {
	if manifest.ExistsInDirectory(dir) {
		return manifest.FindInDirectory(dir)
	}

	config.Load()
	license := config.Get("init.license")
	if license == "" {
		license = defaultLicense
	}

	return &manifest.Manifest{
		Path: dir,
		Package: manifest.Package{
			Name:    filepath.Base(filepath.Clean(dir)),
			Version: defaultVersion,
			License: license,
		},
		Modules: []manifest.Module{{
			Name:   "entry",
			Source: "entry" + SourceExtension,
			Abi:    manifest.AbiNone,
		}},
	}, nil
}

// assemble walks the user through every manifest field, mutating m in
// place. The module and command collections are rebuilt from scratch.
func assemble(m *manifest.Manifest, asker *Asker, out io.Writer) error {
	fmt.Fprintf(out, `This utility will walk you through creating a %s file.
It only covers the most common items, and tries to guess sensible defaults.

Press ^C at any time to quit.
`, branding.ManifestFile())

	p := &m.Package
	var err error

	p.Name, err = AskUntilValid(asker, "Package name", p.Name, ValidateName)
	if err != nil {
		return err
	}
	version, err := AskUntilValid(asker, "Version", p.Version, ValidateVersion)
	if err != nil {
		return err
	}
	p.Version = version.String()
	p.Description, err = asker.Ask("Description", p.Description)
	if err != nil {
		return err
	}
	p.Repository, err = asker.Ask("Repository", p.Repository)
	if err != nil {
		return err
	}
	p.License, err = AskUntilValid(asker, "License", p.License, ValidateLicense)
	if err != nil {
		return err
	}

	modules, commands, err := collectModules(asker, out)
	if err != nil {
		return err
	}
	m.Modules = modules
	m.Commands = commands
	return nil
}

// abiItems is the ABI selection list shown in the module loop.
var abiItems = func() []string {
	items := make([]string, len(manifest.AbiChoices))
	for i, abi := range manifest.AbiChoices {
		items[i] = abi.String()
	}
	return items
}()

// collectModules runs the repeatable module sub-loop until the user gives
// the "none" source sentinel. Commands are derived for every module with a
// non-"none" ABI and non-empty command text; each carries the name of the
// module it belongs to. Both returned slices are nil when empty.
func collectModules(asker *Asker, out io.Writer) ([]manifest.Module, []manifest.Command, error) {
	var modules []manifest.Module
	var commands []manifest.Command

	for {
		index := len(modules)
		fmt.Fprintf(out, "Enter the data for the module (%d)\n", index+1)

		// The first module of a session gets the conventional default;
		// later iterations default to the terminating sentinel.
		defaultSource := SourceNone
		if index == 0 {
			defaultSource = "entry" + SourceExtension
		}

		source, err := AskUntilValid(asker, " - Source (path)", defaultSource, ValidateSource)
		if err != nil {
			return nil, nil, err
		}
		if source == SourceNone {
			break
		}

		// Guess the module name from the source file path.
		base := filepath.Base(source)
		defaultName := strings.TrimSuffix(base, filepath.Ext(base))

		name, err := AskUntilValid(asker, " - Name", defaultName, ValidateName)
		if err != nil {
			return nil, nil, err
		}

		module := manifest.Module{Name: name, Source: source}
		choice, err := asker.Select(" - ABI", abiItems, 0)
		if err != nil {
			return nil, nil, err
		}
		module.Abi = manifest.AbiChoices[choice]
		if module.Abi == manifest.AbiWasi {
			module.Interfaces = map[string]string{"wasi": manifest.WasiVersion}
		}

		// Commands only make sense for modules with an ABI.
		if module.Abi != manifest.AbiNone {
			commandText, err := AskUntilValid(asker, " - Commands (space separated)", defaultName, ValidateCommandList)
			if err != nil {
				return nil, nil, err
			}
			if commandText != "" {
				commands = append(commands, manifest.Command{
					Name:   commandText,
					Module: module.Name,
				})
			}
		}

		modules = append(modules, module)
	}

	return modules, commands, nil
}
