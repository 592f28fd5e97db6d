// Package scaffold generates new SmoothJS projects from the template catalog
// and adds single items (components, pages, stores, utils) to existing ones.
// It powers the "smoothjs create" and "smoothjs add" commands. Work is strictly
// sequential and a failed run is not rolled back: whatever was written before
// the failing step stays on disk.
package scaffold
