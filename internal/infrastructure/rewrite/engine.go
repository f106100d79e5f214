// Package rewrite contains the source-code rewriters used to migrate the
// application's TypeScript sources in bulk: normalizing logger call
// signatures and moving dynamic route pages to the Promise-params pattern.
package rewrite

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ethan273/limn-systems-enterprise-sub010/internal/pkg/logger"
)

// TransformFunc rewrites file content, reporting whether anything changed.
type TransformFunc func(content string) (string, bool)

// FileResult records the outcome for one file.
type FileResult struct {
	Path    string `json:"path"`
	Changed bool   `json:"changed"`
	Error   string `json:"error,omitempty"`
}

// Summary aggregates a rewrite run over many files.
type Summary struct {
	Total    int          `json:"total"`
	Modified int          `json:"modified"`
	Skipped  int          `json:"skipped"`
	Failed   int          `json:"failed"`
	Files    []FileResult `json:"files"`
}

// ApplyToFiles runs a transform over each file in order. In dry-run mode
// changed files are reported but not written. Per-file errors are logged and
// the loop continues; the summary carries the mixed outcome.
func ApplyToFiles(paths []string, transform TransformFunc, dryRun bool, log logger.Logger) *Summary {
	summary := &Summary{Total: len(paths)}

	for i, path := range paths {
		log.Info("[", i+1, "/", len(paths), "] processing ", path)

		result := FileResult{Path: path}
		changed, err := applyToFile(path, transform, dryRun)
		if err != nil {
			result.Error = err.Error()
			summary.Failed++
			log.Error("failed to process ", path, ": ", err)
		} else if changed {
			result.Changed = true
			summary.Modified++
			if dryRun {
				log.Info("would modify ", path)
			} else {
				log.Info("modified ", path)
			}
		} else {
			summary.Skipped++
		}
		summary.Files = append(summary.Files, result)
	}

	log.Info("Rewrite complete: ", summary.Modified, " modified, ", summary.Skipped, " unchanged, ", summary.Failed, " failed")
	return summary
}

func applyToFile(path string, transform TransformFunc, dryRun bool) (bool, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return false, fmt.Errorf("failed to read file: %w", err)
	}

	fixed, changed := transform(string(data))
	if !changed {
		return false, nil
	}
	if dryRun {
		return true, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("failed to stat file: %w", err)
	}
	if err := os.WriteFile(path, []byte(fixed), info.Mode().Perm()); err != nil {
		return false, fmt.Errorf("failed to write file: %w", err)
	}
	return true, nil
}
