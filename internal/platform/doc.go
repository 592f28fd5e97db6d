// Package platform holds the error kinds shared by the scaffolder and the
// validator, together with the small filesystem helpers both of them build on.
// Errors carry a Kind so the command layer can tell bad user input apart from
// filesystem failures without string matching.
package platform
