// Package core provides foundational types, errors, and patterns used
// throughout gophercoreset.
//
// This package defines:
//   - Sentinel errors shared by every layer of the coreset pipeline
//   - The generic functional-options pattern (Option[T] / ApplyOptions)
//   - Package-wide default hyperparameters
//
// The core package has no dependencies on other gophercoreset packages and
// can be imported by all modules to avoid circular dependencies.
package core
