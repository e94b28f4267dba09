// Package paths provides path handling for unfurl.
//
// It contains the archive name resolver used to derive the subdir name
// from an archive path, plus validation of the caller-supplied inputs
// to the extract pipeline. The resolver is a pure string transformation
// and never touches the filesystem; validation goes through types.FS so
// it can be tested against a memory filesystem.
package paths
