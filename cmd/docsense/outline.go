package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/docsense/docsense/internal/config"
	"github.com/docsense/docsense/internal/parser"
	"github.com/docsense/docsense/internal/pipeline"
	"github.com/spf13/cobra"
)

func outlineCmd() *cobra.Command {
	var inDir string
	var outDir string

	cmd := &cobra.Command{
		Use:   "outline",
		Short: "Extract a structural outline from every document in a directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := slog.New(slog.NewTextHandler(os.Stderr, nil))
			cfg := config.Load()

			files, err := discoverDocuments(inDir)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				return fmt.Errorf("no supported documents in %s", inDir)
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}

			analyzer := pipeline.NewAnalyzer(cfg, nil, log)
			for _, path := range files {
				data, err := os.ReadFile(path)
				if err != nil {
					log.Warn("skipping unreadable file", "file", path, "error", err)
					continue
				}
				result := analyzer.Outline(pipeline.Input{Name: filepath.Base(path), Data: data})

				name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + ".json"
				outPath := filepath.Join(outDir, name)
				if err := writeJSON(outPath, result); err != nil {
					return err
				}
				log.Info("outline written", "document", filepath.Base(path), "output", outPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&inDir, "input", "i", "input", "directory of documents to process")
	cmd.Flags().StringVarP(&outDir, "output", "o", "output", "directory for outline JSON files")
	return cmd
}

// discoverDocuments lists supported files in a directory, sorted by name
// so runs are deterministic.
func discoverDocuments(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read input directory: %w", err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if parser.IsSupportedExtension(e.Name()) {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
