package assetpack

// FileScanner discovers the files of an input root.
// Implementations must be safe for concurrent use by multiple goroutines.
type FileScanner interface {
	// Scan walks root and returns one record per file plus aggregate statistics.
	// Fails with ErrInvalidRoot if root is not a readable directory.
	Scan(root string, opts ScanOptions) ([]FileRecord, ScanSummary, error)
}

// ProfileStore persists profiles under a storage root.
type ProfileStore interface {
	// EnsurePersisted writes the built-in profiles that are not yet stored.
	EnsurePersisted() error

	// Load reads a stored profile by name.
	Load(name string) (Profile, error)

	// Save writes a profile and returns the file path.
	Save(p Profile) (string, error)

	// List returns the names of stored profiles.
	List() ([]string, error)
}

// ProgressFunc receives the 1-based index of the item about to be processed.
type ProgressFunc func(index, total int, item PlanItem)

// CancelFunc is polled once per item boundary; returning true stops the run.
type CancelFunc func() bool

// Validator checks scanned files against a profile.
type Validator interface {
	// Validate returns findings in rule order, ending with a PROFILE_ACTIVE info finding.
	Validate(inputRoot string, files []FileRecord, summary ScanSummary, profile Profile) []Finding
}

// Planner maps scanned files to delivery destinations.
type Planner interface {
	// Plan returns one item per file in input order plus identity and collision findings.
	// An invalid identity yields an empty plan.
	Plan(files []FileRecord, outputRoot string, id Identity) ([]PlanItem, []Finding)
}

// PackExecutor copies a plan into the delivery tree.
type PackExecutor interface {
	// Execute processes items sequentially and returns source hashes keyed by source path.
	// The error is reserved for unusable options; per-item failures are findings.
	Execute(plan []PlanItem, opts PackOptions) (PackSummary, []Finding, map[string]string, error)
}
