// Package cli defines the Cobra command tree for the smoothjs CLI. Each file
// builds one top-level command (create, validate, add, etc.) through a
// constructor that receives its output writers and working directory, so
// commands never reach for process globals. Command implementations delegate
// to internal packages for the actual work and only handle flag parsing and
// output formatting.
package cli
