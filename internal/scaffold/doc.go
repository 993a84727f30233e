// Package scaffold creates the starting files for a brand-new package. It
// powers the "wasmpack new" command, writing a minimal template manifest
// into a directory that must not already contain one.
package scaffold
