package assetpack

import "time"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess          = 0  // Command completed successfully
	ExitGeneralError     = 1  // Unknown or unclassified error
	ExitUsageError       = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic            = 3  // Internal panic (unexpected crash)
	ExitConfigError      = 10 // Invalid configuration or options
	ExitInvalidRoot      = 20 // Input root is not a readable directory
	ExitProfileError     = 21 // Profile missing or corrupt
	ExitValidationFailed = 22 // Validation produced ERROR findings (strict mode)
	ExitPlanBlocked      = 23 // Plan has identity or collision errors
	ExitApprovalDenied   = 24 // User denied overwrite approval
	ExitPackIncomplete   = 25 // Pack finished with failures or was cancelled
)

// Validator finding codes.
const (
	CodeRootUnreadable       = "ROOT_UNREADABLE"
	CodeReqFolderMissing     = "REQ_FOLDER_MISSING"
	CodeSpaceInDirname       = "SPACE_IN_DIRNAME"
	CodeSpaceInFilename      = "SPACE_IN_FILENAME"
	CodeSpaceInPath          = "SPACE_IN_PATH"
	CodeVersionTokenMissing  = "VERSION_TOKEN_MISSING"
	CodeUnsupportedExtension = "UNSUPPORTED_EXTENSION"
	CodeNoExtensionFiles     = "NO_EXTENSION_FILES"
	CodeDuplicateFilename    = "DUPLICATE_FILENAME"
	CodeProfileActive        = "PROFILE_ACTIVE"
)

// Planner finding codes.
const (
	CodeProjectMissing    = "PROJECT_MISSING"
	CodeAssetMissing      = "ASSET_MISSING"
	CodeVersionMissing    = "VERSION_MISSING"
	CodeVersionInvalid    = "VERSION_INVALID"
	CodeDestCollision     = "DEST_COLLISION"
	CodeDestCollisionMore = "DEST_COLLISION_MORE"
)

// Pack finding codes.
const (
	CodePackCancelled      = "PACK_CANCELLED"
	CodeSrcMissing         = "SRC_MISSING"
	CodeHashSrcFailed      = "HASH_SRC_FAILED"
	CodeDstDirCreateFailed = "DST_DIR_CREATE_FAILED"
	CodeDstExistsSkipped   = "DST_EXISTS_SKIPPED"
	CodeCopyFailed         = "COPY_FAILED"
	CodeHashDstFailed      = "HASH_DST_FAILED"
	CodeHashMismatch       = "HASH_MISMATCH"
)

const (
	// DefaultHashAlgorithm is used when no algorithm is configured.
	DefaultHashAlgorithm = HashSHA1

	// HashChunkSize is the read buffer size for streaming hashes.
	HashChunkSize = 1024 * 1024

	// MaxReportedCollisions caps individually reported destination collisions.
	MaxReportedCollisions = 25

	// NoExtensionKey labels files without an extension in ScanSummary.Unsupported.
	NoExtensionKey = "(no_ext)"

	// ProfilesDirName is the subdirectory of the storage root holding profile JSON files.
	ProfilesDirName = "profiles"

	// CustomProfileName names a profile edited from a built-in.
	CustomProfileName = "Custom"

	// DefaultProfileName is used when no profile is configured.
	DefaultProfileName = "VFX"

	// DefaultForceApprovalCountdown is the countdown duration before forced approval proceeds.
	DefaultForceApprovalCountdown = 5 * time.Second

	// ManifestFileName and ReportFileName are written into ReportDirName under the version folder.
	ManifestFileName = "manifest.json"
	ReportFileName   = "report.html"
	ReportDirName    = "docs"

	// ToolName is recorded in manifests and reports.
	ToolName = "assetpack"
)

// DefaultIgnoredDirs are directory names pruned from every scan unless overridden.
var DefaultIgnoredDirs = []string{".git", "__pycache__", ".venv", "node_modules"}
