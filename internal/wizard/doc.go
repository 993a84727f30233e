// Package wizard implements the interactive manifest-creation flow behind
// `wasmpack init`. It walks the user through the package fields and a
// repeatable module-collection loop, validating every answer and retrying
// until a valid one is given, then persists the assembled manifest after
// confirmation. All console I/O goes through an injected Asker so the whole
// flow is testable with scripted input.
package wizard
