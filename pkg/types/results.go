package types

// Plan is the Layout Normalizer's decision: where to move from and
// where to move to.
type Plan struct {
	// SourceRoot is the directory whose entries will be moved. Either
	// the scratch directory itself or its sole interesting child.
	SourceRoot string

	// Target is the directory the entries land in. The destination
	// itself, or a new archive-named child of it in subdir mode.
	Target string

	// Collapsed reports whether a single wrapper directory was elided
	Collapsed bool
}

// ExtractResult describes a completed extraction
type ExtractResult struct {
	ArchivePath string
	Destination string

	// Target is the directory the content actually landed in
	Target string

	Mode      Mode
	Collapsed bool

	// Moved lists the names of the top-level entries placed into Target
	Moved []string

	// Warnings holds non-fatal problems (failed scratch cleanup,
	// failed sanitization) that did not abort the operation
	Warnings []string
}
