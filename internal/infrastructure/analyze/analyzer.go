// Package analyze walks the application source tree and produces the
// code/schema/dependency statistics report the team tracks between releases.
package analyze

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/ethan273/limn-systems-enterprise-sub010/internal/pkg/logger"
)

// sourceExtensions are the file types counted by the code statistics.
var sourceExtensions = []string{".ts", ".tsx", ".js", ".jsx", ".css", ".sql", ".prisma", ".json", ".md"}

// sourceModules are the top-level directories under src/ reported on.
var sourceModules = []string{"app", "components", "lib", "server", "hooks", "types", "utils", "modules"}

// skipDirs are never descended into.
var skipDirs = map[string]bool{"node_modules": true, ".next": true}

// FileCount pairs a file count with a line count.
type FileCount struct {
	Files int `json:"files"`
	Lines int `json:"lines"`
}

// CodeStats summarizes the application source tree.
type CodeStats struct {
	TotalFiles  int                   `json:"total_files"`
	TotalLines  int                   `json:"total_lines"`
	ByExtension map[string]*FileCount `json:"by_extension"`
	ByModule    map[string]*FileCount `json:"by_module"`
	TestFiles   int                   `json:"test_files"`
	TestLines   int                   `json:"test_lines"`
}

// SchemaStats summarizes the Prisma schema, when present.
type SchemaStats struct {
	Models int `json:"models"`
	Enums  int `json:"enums"`
	Lines  int `json:"lines"`
}

// DepStats summarizes package.json dependency counts, when present.
type DepStats struct {
	Dependencies    int `json:"dependencies"`
	DevDependencies int `json:"devDependencies"`
	Total           int `json:"total"`
}

// Report is the full analysis result written to app-analysis.json.
type Report struct {
	Generated    time.Time    `json:"generated"`
	Code         CodeStats    `json:"code"`
	Database     *SchemaStats `json:"database,omitempty"`
	Dependencies *DepStats    `json:"dependencies,omitempty"`
}

// Analyzer walks an application checkout rooted at root.
type Analyzer struct {
	root   string
	logger logger.Logger
}

// NewAnalyzer creates a new Analyzer for the given application root.
func NewAnalyzer(root string, logger logger.Logger) *Analyzer {
	return &Analyzer{
		root:   root,
		logger: logger,
	}
}

// Run produces the analysis report and logs a human-readable summary.
func (a *Analyzer) Run() (*Report, error) {
	code, err := a.analyzeCode()
	if err != nil {
		return nil, fmt.Errorf("failed to analyze source tree: %w", err)
	}

	report := &Report{
		Generated: time.Now().UTC(),
		Code:      *code,
	}

	if schemaStats, err := a.analyzeSchema(); err == nil {
		report.Database = schemaStats
	} else {
		a.logger.Warn("prisma schema not analyzed: ", err)
	}

	if depStats, err := a.analyzeDependencies(); err == nil {
		report.Dependencies = depStats
	} else {
		a.logger.Warn("package.json not analyzed: ", err)
	}

	a.logSummary(report)
	return report, nil
}

func (a *Analyzer) analyzeCode() (*CodeStats, error) {
	stats := &CodeStats{
		ByExtension: make(map[string]*FileCount),
		ByModule:    make(map[string]*FileCount),
	}
	for _, ext := range sourceExtensions {
		stats.ByExtension[ext] = &FileCount{}
	}

	for _, module := range sourceModules {
		modulePath := filepath.Join(a.root, "src", module)
		if _, err := os.Stat(modulePath); err != nil {
			continue
		}
		stats.ByModule[module] = &FileCount{}

		err := filepath.WalkDir(modulePath, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if skipDirs[d.Name()] {
					return filepath.SkipDir
				}
				return nil
			}

			ext := filepath.Ext(d.Name())
			extCount, counted := stats.ByExtension[ext]
			if !counted {
				return nil
			}

			lines, err := countLines(path)
			if err != nil {
				return nil // unreadable files are skipped, as the original did
			}

			stats.TotalFiles++
			stats.TotalLines += lines
			extCount.Files++
			extCount.Lines += lines
			stats.ByModule[module].Files++
			stats.ByModule[module].Lines += lines
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	if err := a.analyzeTests(stats); err != nil {
		return nil, err
	}

	return stats, nil
}

func (a *Analyzer) analyzeTests(stats *CodeStats) error {
	testPath := filepath.Join(a.root, "tests")
	if _, err := os.Stat(testPath); err != nil {
		return nil
	}

	return filepath.WalkDir(testPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !strings.HasSuffix(d.Name(), ".spec.ts") && !strings.HasSuffix(d.Name(), ".test.ts") {
			return nil
		}

		lines, err := countLines(path)
		if err != nil {
			return nil
		}
		stats.TestFiles++
		stats.TestLines += lines
		return nil
	})
}

func (a *Analyzer) analyzeSchema() (*SchemaStats, error) {
	schemaPath := filepath.Join(a.root, "prisma", "schema.prisma")
	data, err := os.ReadFile(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}

	content := string(data)
	return &SchemaStats{
		Models: strings.Count(content, "model "),
		Enums:  strings.Count(content, "enum "),
		Lines:  len(strings.Split(content, "\n")),
	}, nil
}

func (a *Analyzer) analyzeDependencies() (*DepStats, error) {
	packagePath := filepath.Join(a.root, "package.json")
	data, err := os.ReadFile(packagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read package.json: %w", err)
	}

	var pkg struct {
		Dependencies    map[string]string `json:"dependencies"`
		DevDependencies map[string]string `json:"devDependencies"`
	}
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, fmt.Errorf("failed to parse package.json: %w", err)
	}

	return &DepStats{
		Dependencies:    len(pkg.Dependencies),
		DevDependencies: len(pkg.DevDependencies),
		Total:           len(pkg.Dependencies) + len(pkg.DevDependencies),
	}, nil
}

func (a *Analyzer) logSummary(report *Report) {
	a.logger.Info("Total files: ", report.Code.TotalFiles, ", total lines: ", report.Code.TotalLines)
	a.logger.Info("Test files: ", report.Code.TestFiles, ", test lines: ", report.Code.TestLines)

	modules := make([]string, 0, len(report.Code.ByModule))
	for module := range report.Code.ByModule {
		modules = append(modules, module)
	}
	sort.Slice(modules, func(i, j int) bool {
		return report.Code.ByModule[modules[i]].Lines > report.Code.ByModule[modules[j]].Lines
	})
	for _, module := range modules {
		count := report.Code.ByModule[module]
		a.logger.Info("module ", module, ": ", count.Files, " files, ", count.Lines, " lines")
	}

	if report.Database != nil {
		a.logger.Info("Prisma models: ", report.Database.Models, ", enums: ", report.Database.Enums)
	}
	if report.Dependencies != nil {
		a.logger.Info("Dependencies: ", report.Dependencies.Dependencies, " prod, ", report.Dependencies.DevDependencies, " dev")
	}
}

// WriteFile writes the report as indented JSON.
func (r *Report) WriteFile(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal analysis report: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write analysis report: %w", err)
	}
	return nil
}

func countLines(path string) (int, error) {
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = file.Close()
	}()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lines := 0
	for scanner.Scan() {
		lines++
	}
	return lines, scanner.Err()
}
