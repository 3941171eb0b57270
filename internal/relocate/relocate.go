// Package relocate moves freshly packed NMO/BCR maps from the output
// directory into the final result directory. It is purely a filesystem step:
// per-file failures are logged and skipped, never escalated to the batch.
package relocate

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"legacy2pbr/internal/fileutil"
	"legacy2pbr/internal/logging"
	"legacy2pbr/internal/roleset"
	"legacy2pbr/internal/services"
)

// Relocator files packed maps into the final directory.
type Relocator struct {
	logger *slog.Logger
}

// New constructs a Relocator.
func New(logger *slog.Logger) *Relocator {
	return &Relocator{logger: logging.NewComponentLogger(logger, "relocate")}
}

// Run moves every packed map in fromDir into toDir, creating toDir when
// missing. It returns the number of files moved. Unrelated files are left
// untouched and individual move failures are logged and skipped.
func (r *Relocator) Run(ctx context.Context, fromDir, toDir string) (int, error) {
	logger := logging.WithContext(ctx, r.logger)

	entries, err := os.ReadDir(fromDir)
	if err != nil {
		return 0, services.Wrap(services.ErrFilesystem, "relocate", "read output directory", fromDir, err)
	}

	if err := os.MkdirAll(toDir, 0o755); err != nil {
		logger.Warn("create final directory failed, leaving outputs in place",
			logging.String(logging.FieldPath, toDir), logging.Error(err))
		return 0, nil
	}

	moved := 0
	for _, entry := range entries {
		if entry.IsDir() || !roleset.MatchOutput(entry.Name()) {
			continue
		}
		src := filepath.Join(fromDir, entry.Name())
		dst := filepath.Join(toDir, entry.Name())
		if err := fileutil.MoveFile(src, dst); err != nil {
			logger.Warn("move failed, skipping file",
				logging.String(logging.FieldPath, src), logging.Error(err))
			continue
		}
		logger.Debug("moved packed map", logging.String(logging.FieldPath, dst))
		moved++
	}

	logger.Info("relocation finished", logging.Int("moved", moved),
		logging.String("final_dir", toDir))
	return moved, nil
}
