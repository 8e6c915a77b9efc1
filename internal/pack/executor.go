package pack

import (
	"fmt"
	"path/filepath"

	"github.com/vvka-141/assetpack/internal/checksum"
	"github.com/vvka-141/assetpack/internal/files/filesystem"
	"github.com/vvka-141/assetpack/pkg/assetpack"
)

// Outcome is the terminal state of one plan item.
type Outcome string

const (
	OutcomeMissing      Outcome = "missing"
	OutcomeHashFailed   Outcome = "hash_failed"
	OutcomeDirError     Outcome = "dir_error"
	OutcomeSkipped      Outcome = "skipped"
	OutcomeCopyFailed   Outcome = "copy_failed"
	OutcomeCopied       Outcome = "copied"
	OutcomeVerified     Outcome = "verified"
	OutcomeVerifyFailed Outcome = "verify_failed"
)

// Executor copies plan items on a filesystem.
// An Executor holds no per-run state; concurrent runs against overlapping
// destination trees must be serialized by the caller.
type Executor struct {
	fsys   filesystem.FileSystem
	logger assetpack.Logger
}

// NewExecutor creates an executor over fsys.
// Panics if fsys or logger is nil.
func NewExecutor(fsys filesystem.FileSystem, logger assetpack.Logger) *Executor {
	if fsys == nil {
		panic("fsys cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Executor{fsys: fsys, logger: logger}
}

// run is the mutable state of one Execute call.
type run struct {
	opts     assetpack.PackOptions
	hasher   checksum.Calculator
	summary  assetpack.PackSummary
	findings []assetpack.Finding
	hashes   map[string]string
}

// Execute processes plan in order and returns the summary, the findings and
// the source digests keyed by source path. Digests are recorded as soon as a
// source hashes successfully, whatever happens to the item afterwards.
//
// The only error is an invalid option set; per-item problems are findings.
func (e *Executor) Execute(plan []assetpack.PlanItem, opts assetpack.PackOptions) (assetpack.PackSummary, []assetpack.Finding, map[string]string, error) {
	if err := opts.Validate(); err != nil {
		return assetpack.PackSummary{}, nil, nil, err
	}

	r := &run{
		opts:    opts,
		summary: assetpack.PackSummary{Total: len(plan)},
		hashes:  make(map[string]string),
	}
	if opts.VerifyHash {
		hasher, err := checksum.New(opts.HashAlgo)
		if err != nil {
			return assetpack.PackSummary{}, nil, nil, err
		}
		r.hasher = hasher
	}

	for i, item := range plan {
		if opts.IsCancelled != nil && opts.IsCancelled() {
			r.findings = append(r.findings,
				assetpack.Warnf(assetpack.CodePackCancelled, item.RelPath, "Packaging cancelled by user."))
			r.summary.Cancelled = true
			e.logger.Verbose("Cancelled before item %d of %d", i+1, len(plan))
			break
		}

		if opts.OnProgress != nil {
			opts.OnProgress(i+1, len(plan), item)
		}

		outcome := e.process(r, item)
		e.logger.Verbose("[%d/%d] %s: %s", i+1, len(plan), item.RelPath, outcome)
	}

	return r.summary, r.findings, r.hashes, nil
}

// process drives one item to its terminal state, updating counters and findings.
func (e *Executor) process(r *run, item assetpack.PlanItem) Outcome {
	if exists, err := filesystem.Exists(e.fsys, item.Src); !exists {
		detail := ""
		if err != nil {
			detail = fmt.Sprintf(" (%v)", err)
		}
		return r.fail(assetpack.Errorf(assetpack.CodeSrcMissing, item.RelPath, "Source missing: %s%s", item.Src, detail), OutcomeMissing)
	}

	srcHash := ""
	if r.opts.VerifyHash {
		digest, err := r.hasher.HashFile(e.fsys, item.Src)
		if err != nil {
			return r.fail(assetpack.Errorf(assetpack.CodeHashSrcFailed, item.RelPath, "Failed hashing source: %s (%v)", item.Src, err), OutcomeHashFailed)
		}
		srcHash = digest
		r.hashes[item.Src] = digest
	}

	parent := filepath.Dir(item.Dst)
	if err := e.fsys.MkdirAll(parent, 0o755); err != nil {
		return r.fail(assetpack.Errorf(assetpack.CodeDstDirCreateFailed, item.RelPath, "Failed creating destination folder: %s (%v)", parent, err), OutcomeDirError)
	}

	if !r.opts.Overwrite {
		if exists, _ := filesystem.Exists(e.fsys, item.Dst); exists {
			r.summary.Skipped++
			if !e.sameFile(item.Src, item.Dst) {
				r.findings = append(r.findings,
					assetpack.Warnf(assetpack.CodeDstExistsSkipped, item.RelPath, "Destination exists; skipped (overwrite disabled): %s", item.Dst))
			}
			return OutcomeSkipped
		}
	}

	if err := filesystem.CopyFile(e.fsys, item.Src, item.Dst); err != nil {
		return r.fail(assetpack.Errorf(assetpack.CodeCopyFailed, item.RelPath, "Copy failed: %s -> %s (%v)", item.Src, item.Dst, err), OutcomeCopyFailed)
	}
	r.summary.Copied++

	if !r.opts.VerifyHash || srcHash == "" {
		return OutcomeCopied
	}

	dstHash, err := r.hasher.HashFile(e.fsys, item.Dst)
	if err != nil {
		return r.fail(assetpack.Errorf(assetpack.CodeHashDstFailed, item.RelPath, "Failed hashing destination: %s (%v)", item.Dst, err), OutcomeVerifyFailed)
	}
	if dstHash != srcHash {
		// copied stays counted
		return r.fail(assetpack.Errorf(assetpack.CodeHashMismatch, item.RelPath, "Integrity check failed (src != dst) for: %s", filepath.Base(item.Dst)), OutcomeVerifyFailed)
	}
	return OutcomeVerified
}

func (r *run) fail(f assetpack.Finding, outcome Outcome) Outcome {
	r.summary.Failed++
	r.findings = append(r.findings, f)
	return outcome
}

// sameFile is a cheap pre-check: equal size and equal modification time in
// whole seconds. Content is not compared.
func (e *Executor) sameFile(src, dst string) bool {
	s, err := e.fsys.Stat(src)
	if err != nil {
		return false
	}
	d, err := e.fsys.Stat(dst)
	if err != nil {
		return false
	}
	return s.Size() == d.Size() && s.ModTime().Unix() == d.ModTime().Unix()
}

// Verify Executor implements the PackExecutor interface at compile time
var _ assetpack.PackExecutor = (*Executor)(nil)
