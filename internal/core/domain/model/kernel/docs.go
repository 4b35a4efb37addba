// Package kernel provides core domain primitives used throughout the model:
// the UUID value object for entity identifiers and a Money value object for
// two-decimal monetary amounts. Both are immutable and safe for concurrent
// use; both reject zero values that bypassed their constructors.
package kernel
