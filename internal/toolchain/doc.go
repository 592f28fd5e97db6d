// Package toolchain probes and drives the Node.js tools a generated project
// depends on. Check reports whether node and npm are installed at a
// supported version, and Install runs `npm install` inside a project.
package toolchain
