// Package manifest defines the wasmpack.toml package manifest: the typed
// model, the TOML codec used to load and persist it, and JSON Schema
// validation of full manifest documents.
package manifest
