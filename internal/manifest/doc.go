// Package manifest handles the package.json of generated projects: parsing,
// validation against an embedded JSON Schema, semver checks on the version and
// the framework dependency range, and choosing how the framework dependency
// is referenced (registry range or a linked local checkout).
package manifest
