// Package validator checks a directory against the conventional SmoothJS
// project layout and scores the result.
//
// Validation always completes. Filesystem errors met along the way become
// issues or warnings in the Result instead of aborting the run.
package validator
