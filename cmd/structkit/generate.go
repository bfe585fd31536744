package main

import (
	"fmt"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/structkit/structkit/internal/config"
	"github.com/structkit/structkit/internal/diag"
	"github.com/structkit/structkit/internal/gen"
)

var (
	generateVerbose bool
	generateSuffix  string
)

func init() {
	generateCmd.Flags().BoolVar(&generateVerbose, "verbose", false, "Show detailed generation output")
	generateCmd.Flags().StringVar(&generateSuffix, "suffix", "", "Override the generated file suffix")
}

var generateCmd = &cobra.Command{
	Use:   "generate [paths...]",
	Short: "Generate companion source for annotated declarations",
	Long: `Scan Go files for //structkit: directives and write a <file><suffix>.go
next to each file that contains opted-in declarations.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(".")
		if err != nil {
			return err
		}
		if generateSuffix != "" {
			cfg.Suffix = generateSuffix
		}
		if generateVerbose {
			cfg.Verbose = true
		}

		logger := zap.NewNop()
		if cfg.Verbose {
			logger, err = zap.NewDevelopment()
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}
			defer logger.Sync()
		}

		if len(args) == 0 {
			args = []string{"."}
		}
		files, err := collectFiles(args, cfg.Suffix)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			return fmt.Errorf("no Go files found in %s", strings.Join(args, ", "))
		}

		opts := gen.Options{Markers: cfg.Markers, Logger: logger}
		errCount := 0
		for _, file := range files {
			fset := token.NewFileSet()
			parsed, err := parser.ParseFile(fset, file, nil, parser.ParseComments)
			if err != nil {
				return fmt.Errorf("failed to parse %s: %w", file, err)
			}

			out, diags := gen.Source(fset, parsed, opts)
			diag.Print(os.Stderr, diags)
			for _, d := range diags {
				if d.Severity >= diag.Error {
					errCount++
				}
			}
			if out == nil {
				continue
			}

			outPath := strings.TrimSuffix(file, ".go") + cfg.Suffix + ".go"
			if err := os.WriteFile(outPath, out, 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", outPath, err)
			}
			logger.Info("wrote generated file", zap.String("path", outPath))
		}

		if errCount > 0 {
			return fmt.Errorf("generation failed with %d error(s)", errCount)
		}
		return nil
	},
}

// collectFiles expands the path arguments into the Go files to scan,
// skipping tests and previously generated output.
func collectFiles(paths []string, suffix string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("cannot read %s: %w", path, err)
		}

		if !info.IsDir() {
			if keepFile(path, suffix) {
				files = append(files, path)
			}
			continue
		}

		matches, err := filepath.Glob(filepath.Join(path, "*.go"))
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			if keepFile(m, suffix) {
				files = append(files, m)
			}
		}
	}
	return files, nil
}

func keepFile(path, suffix string) bool {
	base := filepath.Base(path)
	if strings.HasSuffix(base, "_test.go") {
		return false
	}
	return !strings.HasSuffix(base, suffix+".go")
}
