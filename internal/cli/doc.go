// Package cli defines the Cobra command tree for the readlater CLI. Each file
// in this package builds one top-level command (list, save, show, etc.).
// Commands load the list through internal/listfile, delegate list logic to
// internal/readlater, and only handle flag parsing, output formatting, and
// user interaction.
package cli
