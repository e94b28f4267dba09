// Package unpack materializes archive contents into a scratch directory.
//
// Decompression itself is delegated to a Service, treated as an opaque
// collaborator: the built-in ArchivesService handles the common formats
// in-process, and CommandService shells out to a user-configured tool
// for anything else. The Unpacker owns scratch directory creation; it
// never places content in its final location (that is pkg/place's job).
package unpack
