// Package dirsize computes the apparent size of files and directory trees.
//
// Directories are summed by a recursive fork-join over their entries, with the
// number of in-flight goroutines capped by a shared worker pool. An alternative
// engine walks the tree with fastwalk. Both skip pseudo-filesystems and absorb
// every per-entry failure as a zero contribution.
package dirsize
