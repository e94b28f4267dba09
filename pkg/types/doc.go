// Package types contains the shared types used across unfurl.
//
// It defines the extraction modes, the filesystem abstraction used for
// dependency injection in tests, and the result types returned by the
// extract pipeline.
package types
