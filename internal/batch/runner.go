package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"legacy2pbr/internal/config"
	"legacy2pbr/internal/logging"
	"legacy2pbr/internal/raster"
	"legacy2pbr/internal/relocate"
	"legacy2pbr/internal/repack"
	"legacy2pbr/internal/roleset"
	"legacy2pbr/internal/services"
)

// lockFileName guards the output directory against concurrent batches.
const lockFileName = ".legacy2pbr.lock"

// Runner executes one single-pass conversion batch: scan, repack each set in
// sequence, then relocate the packed maps.
type Runner struct {
	cfg    *config.Config
	logger *slog.Logger
	policy repack.Policy
}

// New constructs a Runner from validated configuration.
func New(cfg *config.Config, logger *slog.Logger) (*Runner, error) {
	policy, err := repack.PolicyFromStrings(
		cfg.Repack.OcclusionAlpha,
		cfg.Repack.DimensionPolicy,
		cfg.Repack.ResizeFilter,
	)
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "batch", "build repack policy", "", err)
	}
	return &Runner{
		cfg:    cfg,
		logger: logging.NewComponentLogger(logger, "batch"),
		policy: policy,
	}, nil
}

// SetResult records the outcome for one conversion set.
type SetResult struct {
	Stem    string
	Written []string
	Err     error
}

// Summary totals one batch run.
type Summary struct {
	RunID        string
	Sets         int
	Converted    int
	Failed       int
	FilesWritten int
	FilesMoved   int
	Results      []SetResult
}

// Run executes the batch. Missing role lists abort before any set is
// processed; decode and dimension failures are recorded against their set
// and the batch continues. A non-nil error is returned when the run was
// fatal or when any set failed, so callers can exit non-zero.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	runID := uuid.NewString()[:8]
	ctx = services.WithRunID(ctx, runID)
	summary := Summary{RunID: runID}
	logger := logging.WithContext(ctx, r.logger)

	if err := r.cfg.EnsureDirectories(); err != nil {
		return summary, services.Wrap(services.ErrFilesystem, "batch", "ensure output directory", "", err)
	}

	lock := flock.New(filepath.Join(r.cfg.Paths.OutputDir, lockFileName))
	locked, err := lock.TryLock()
	if err != nil {
		return summary, services.Wrap(services.ErrFilesystem, "batch", "acquire lock", lock.Path(), err)
	}
	if !locked {
		return summary, services.Wrap(services.ErrFilesystem, "batch", "acquire lock",
			"another conversion is already running on "+r.cfg.Paths.OutputDir, nil)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	scanCtx := services.WithStage(ctx, "scan")
	listing, err := roleset.Scan(r.cfg.Paths.SourceDir)
	if err != nil {
		return summary, err
	}
	if err := listing.Validate(); err != nil {
		logging.WithContext(scanCtx, r.logger).Error("role files missing", logging.Error(err))
		return summary, err
	}

	sets := listing.Sets()
	summary.Sets = len(sets)
	logger.Info("starting batch",
		logging.Int("sets", len(sets)),
		logging.String("source_dir", r.cfg.Paths.SourceDir),
		logging.Any("formats", r.cfg.Output.Formats),
	)

	for _, set := range sets {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		setCtx := services.WithSet(services.WithStage(ctx, "repack"), set.Stem)
		written, err := r.convertSet(setCtx, set)
		summary.FilesWritten += len(written)
		summary.Results = append(summary.Results, SetResult{Stem: set.Stem, Written: written, Err: err})
		if err != nil {
			summary.Failed++
			logging.WithContext(setCtx, r.logger).Error("set failed, continuing batch", logging.Error(err))
			continue
		}
		summary.Converted++
	}

	if r.cfg.Output.Relocate {
		relocateCtx := services.WithStage(ctx, "relocate")
		moved, err := relocate.New(r.logger).Run(relocateCtx, r.cfg.Paths.OutputDir, r.cfg.Paths.FinalDir)
		if err != nil {
			logging.WithContext(relocateCtx, r.logger).Warn("relocation failed", logging.Error(err))
		}
		summary.FilesMoved = moved
	}

	logger.Info("batch finished",
		logging.Int("converted", summary.Converted),
		logging.Int("failed", summary.Failed),
		logging.Int("files_written", summary.FilesWritten),
		logging.Int("files_moved", summary.FilesMoved),
	)

	if summary.Failed > 0 {
		return summary, fmt.Errorf("%d of %d sets failed", summary.Failed, summary.Sets)
	}
	return summary, nil
}

// convertSet decodes one role set, repacks it, and writes the packed maps in
// every configured format. The returned names are relative to the output
// directory. Encode failures stay local to the one write attempt.
func (r *Runner) convertSet(ctx context.Context, set roleset.Set) ([]string, error) {
	logger := logging.WithContext(ctx, r.logger)

	inputs := repack.Inputs{}
	for _, role := range []struct {
		role roleset.Role
		path string
		dst  **raster.Buffer
	}{
		{roleset.RoleNormal, set.Normal, &inputs.Normal},
		{roleset.RoleSpecular, set.Specular, &inputs.Specular},
		{roleset.RoleAmbient, set.Ambient, &inputs.Ambient},
		{roleset.RoleDiffuse, set.Diffuse, &inputs.Diffuse},
	} {
		buf, err := raster.Decode(role.path)
		if err != nil {
			return nil, err
		}
		logger.Debug("decoded input",
			logging.String(logging.FieldRole, string(role.role)),
			logging.String(logging.FieldPath, role.path),
			logging.Int("width", buf.Width),
			logging.Int("height", buf.Height),
		)
		*role.dst = buf
	}

	if err := inputs.Prepare(r.policy); err != nil {
		return nil, err
	}
	outputs, err := repack.Repack(inputs, r.policy)
	if err != nil {
		return nil, err
	}

	var written []string
	for _, format := range r.cfg.Output.Formats {
		nmoName, bcrName := roleset.OutputNames(set.Stem, format)
		for _, output := range []struct {
			name string
			buf  *raster.Buffer
		}{
			{nmoName, outputs.NMO},
			{bcrName, outputs.BCR},
		} {
			path := filepath.Join(r.cfg.Paths.OutputDir, output.name)
			if err := raster.Encode(path, output.buf); err != nil {
				logger.Warn("write failed, skipping format",
					logging.String(logging.FieldPath, path), logging.Error(err))
				continue
			}
			written = append(written, output.name)
		}
	}

	logger.Info("packed maps written", logging.Int("files", len(written)))
	return written, nil
}

// Fatal reports whether a Run error aborted the batch before processing, as
// opposed to summarizing per-set failures.
func Fatal(err error) bool {
	return services.Fatal(err) || errors.Is(err, services.ErrFilesystem)
}
