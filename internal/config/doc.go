// Package config manages user-level settings stored at
// ~/.wasmpack/config.yaml. It provides functions to load, read, and write
// configuration keys such as init.license (the default license the init
// wizard seeds new manifests with) and registry.owner (the namespace new
// packages are created under).
package config
