package services

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/vvka-141/assetpack/internal/files/filesystem"
	"github.com/vvka-141/assetpack/internal/planner"
	"github.com/vvka-141/assetpack/internal/report"
	"github.com/vvka-141/assetpack/pkg/assetpack"
)

// Request describes one delivery.
type Request struct {
	InputRoot  string
	OutputRoot string
	Identity   assetpack.Identity
	Profile    assetpack.Profile
	Scan       assetpack.ScanOptions

	// Pack callbacks are ignored; pass them through Hooks
	Pack assetpack.PackOptions

	// Strict refuses to pack when validation produced ERROR findings
	Strict bool

	// Manifest and Report write manifest.json and report.html after packing
	Manifest bool
	Report   bool

	// ToolVersion is recorded in the manifest
	ToolVersion string
}

// Hooks lets a front-end observe and stop a pack run.
type Hooks struct {
	OnProgress  assetpack.ProgressFunc
	IsCancelled assetpack.CancelFunc
}

// Inspection is the side-effect-free part of a delivery: scan, validation and plan.
type Inspection struct {
	Files        []assetpack.FileRecord
	Summary      assetpack.ScanSummary
	Validation   []assetpack.Finding
	Plan         []assetpack.PlanItem
	PlanFindings []assetpack.Finding
	DeliveryDir  string
}

// Findings returns validation findings followed by plan findings.
func (i *Inspection) Findings() []assetpack.Finding {
	all := make([]assetpack.Finding, 0, len(i.Validation)+len(i.PlanFindings))
	all = append(all, i.Validation...)
	return append(all, i.PlanFindings...)
}

// Result is the outcome of Deliver.
type Result struct {
	*Inspection

	Pack         assetpack.PackSummary
	PackFindings []assetpack.Finding
	Hashes       map[string]string
	ManifestPath string
	ReportPath   string
}

// Findings returns every finding of the delivery in generation order.
func (r *Result) Findings() []assetpack.Finding {
	return append(r.Inspection.Findings(), r.PackFindings...)
}

// DeliveryService orchestrates scan, validation, planning and packing.
// Thread-Safety: NOT safe for concurrent Deliver() calls against the same output root.
type DeliveryService struct {
	fsys      filesystem.FileSystem
	scanner   assetpack.FileScanner
	validator assetpack.Validator
	planner   assetpack.Planner
	executor  assetpack.PackExecutor
	approver  assetpack.Approver
	logger    assetpack.Logger
	now       func() time.Time
}

// NewDeliveryService creates a DeliveryService with all dependencies injected.
// Panics on nil dependencies.
func NewDeliveryService(
	fsys filesystem.FileSystem,
	scanner assetpack.FileScanner,
	validator assetpack.Validator,
	planner assetpack.Planner,
	executor assetpack.PackExecutor,
	approver assetpack.Approver,
	logger assetpack.Logger,
) *DeliveryService {
	if fsys == nil {
		panic("fsys cannot be nil")
	}
	if scanner == nil {
		panic("scanner cannot be nil")
	}
	if validator == nil {
		panic("validator cannot be nil")
	}
	if planner == nil {
		panic("planner cannot be nil")
	}
	if executor == nil {
		panic("executor cannot be nil")
	}
	if approver == nil {
		panic("approver cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}

	return &DeliveryService{
		fsys:      fsys,
		scanner:   scanner,
		validator: validator,
		planner:   planner,
		executor:  executor,
		approver:  approver,
		logger:    logger,
		now:       time.Now,
	}
}

// Inspect scans, validates and plans without writing anything.
// Only an unreadable input root is returned as an error.
func (s *DeliveryService) Inspect(ctx context.Context, req Request) (*Inspection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.logger.Verbose("Scanning %s", req.InputRoot)
	files, summary, err := s.scanner.Scan(req.InputRoot, req.Scan)
	if err != nil {
		return nil, err
	}
	s.logger.Verbose("Found %d file(s) in %d folder(s)", summary.TotalFiles, summary.TotalDirs)

	validation := s.validator.Validate(summary.Root, files, summary, req.Profile)
	plan, planFindings := s.planner.Plan(files, req.OutputRoot, req.Identity)

	insp := &Inspection{
		Files:        files,
		Summary:      summary,
		Validation:   validation,
		Plan:         plan,
		PlanFindings: planFindings,
	}
	if len(planner.ValidateIdentity(req.Identity)) == 0 {
		insp.DeliveryDir = planner.DeliveryDir(req.OutputRoot, req.Identity)
	}
	return insp, nil
}

// Deliver prepares, then packs the plan into the delivery tree.
// A Result is returned whenever the inspection succeeded, even alongside an error.
func (s *DeliveryService) Deliver(ctx context.Context, req Request, hooks Hooks) (*Result, error) {
	insp, err := s.Prepare(ctx, req)
	if err != nil {
		if insp == nil {
			return nil, err
		}
		return &Result{Inspection: insp}, err
	}
	return s.Execute(ctx, req, insp, hooks)
}

// Prepare inspects and decides whether the delivery may run.
//
// The run is refused with ErrPlanBlocked when the plan has ERROR findings, and
// with ErrValidationFailed in strict mode when validation has ERROR findings.
// Overwriting into a populated version folder requires approval.
// The inspection is returned with refusals so callers can report its findings.
func (s *DeliveryService) Prepare(ctx context.Context, req Request) (*Inspection, error) {
	insp, err := s.Inspect(ctx, req)
	if err != nil {
		return nil, err
	}

	if assetpack.HasErrors(insp.PlanFindings) {
		return insp, fmt.Errorf("%d plan error(s): %w",
			assetpack.CountByLevel(insp.PlanFindings)[assetpack.LevelError], assetpack.ErrPlanBlocked)
	}
	if req.Strict && assetpack.HasErrors(insp.Validation) {
		return insp, fmt.Errorf("%d validation error(s): %w",
			assetpack.CountByLevel(insp.Validation)[assetpack.LevelError], assetpack.ErrValidationFailed)
	}

	if req.Pack.Overwrite {
		if err := s.approveOverwrite(ctx, insp.DeliveryDir, req.Identity.Version); err != nil {
			return insp, err
		}
	}
	return insp, nil
}

// Execute packs a prepared inspection and writes the requested artifacts.
// Failed items or cancellation yield ErrPackIncomplete alongside a full Result.
func (s *DeliveryService) Execute(ctx context.Context, req Request, insp *Inspection, hooks Hooks) (*Result, error) {
	result := &Result{Inspection: insp}

	opts := req.Pack
	opts.OnProgress = hooks.OnProgress
	opts.IsCancelled = func() bool {
		if ctx.Err() != nil {
			return true
		}
		return hooks.IsCancelled != nil && hooks.IsCancelled()
	}

	s.logger.Verbose("Packing %d item(s) into %s", len(insp.Plan), insp.DeliveryDir)
	summary, packFindings, hashes, err := s.executor.Execute(insp.Plan, opts)
	if err != nil {
		return result, err
	}
	result.Pack = summary
	result.PackFindings = packFindings
	result.Hashes = hashes

	if err := s.writeArtifacts(req, result); err != nil {
		return result, err
	}

	if summary.Failed > 0 || summary.Cancelled {
		return result, fmt.Errorf("%d failed, cancelled=%t: %w", summary.Failed, summary.Cancelled, assetpack.ErrPackIncomplete)
	}
	return result, nil
}

// approveOverwrite asks for confirmation when the version folder already has content.
func (s *DeliveryService) approveOverwrite(ctx context.Context, deliveryDir, version string) error {
	empty, err := filesystem.IsEmptyDir(s.fsys, deliveryDir)
	if err != nil {
		return fmt.Errorf("failed to inspect %s: %w", deliveryDir, err)
	}
	if empty {
		return nil
	}

	approved, err := s.approver.RequestApproval(ctx, deliveryDir, version)
	if err != nil {
		return fmt.Errorf("approval failed: %w", err)
	}
	if !approved {
		return assetpack.ErrApprovalDenied
	}
	return nil
}

// Preview builds the manifest a pack run of insp would write, without hashes.
func (s *DeliveryService) Preview(req Request, insp *Inspection) report.Manifest {
	return report.BuildManifest(s.fsys, s.meta(req, insp), insp.Findings(), insp.Plan, nil, true)
}

func (s *DeliveryService) meta(req Request, insp *Inspection) report.Meta {
	algo := req.Pack.HashAlgo
	if algo == "" {
		algo = assetpack.DefaultHashAlgorithm
	}
	return report.Meta{
		Tool:        assetpack.ToolName,
		ToolVersion: req.ToolVersion,
		Profile:     req.Profile.Name,
		InputRoot:   insp.Summary.Root,
		OutputRoot:  req.OutputRoot,
		Identity:    req.Identity,
		HashAlgo:    algo,
		GeneratedAt: s.now(),
	}
}

func (s *DeliveryService) writeArtifacts(req Request, result *Result) error {
	if !req.Manifest && !req.Report {
		return nil
	}

	meta := s.meta(req, result.Inspection)
	docsDir := filepath.Join(result.DeliveryDir, assetpack.ReportDirName)
	findings := result.Findings()

	if req.Manifest {
		m := report.BuildManifest(s.fsys, meta, findings, result.Plan, result.Hashes, true)
		path := filepath.Join(docsDir, assetpack.ManifestFileName)
		if err := report.WriteManifestJSON(s.fsys, m, path); err != nil {
			return err
		}
		result.ManifestPath = path
		s.logger.Verbose("Manifest written: %s", path)
	}

	if req.Report {
		path := filepath.Join(docsDir, assetpack.ReportFileName)
		if err := report.WriteHTML(s.fsys, meta, findings, result.Plan, result.Hashes, path); err != nil {
			return err
		}
		result.ReportPath = path
		s.logger.Verbose("Report written: %s", path)
	}
	return nil
}
