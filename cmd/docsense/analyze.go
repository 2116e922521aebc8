package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/docsense/docsense/internal/config"
	"github.com/docsense/docsense/internal/docmodel"
	"github.com/docsense/docsense/internal/nlp"
	"github.com/docsense/docsense/internal/pipeline"
	"github.com/spf13/cobra"
)

func analyzeCmd() *cobra.Command {
	var inDir string
	var outPath string
	var persona string
	var job string

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Rank a document collection's sections for a persona and task",
		Long: `Analyze reads every supported document in the input directory and ranks
their sections against a persona and a job-to-be-done. The persona and job
may be passed as flags or read from persona.txt and job.txt in the input
directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := slog.New(slog.NewTextHandler(os.Stderr, nil))
			cfg := config.Load()

			query := docmodel.Query{
				Persona: strings.TrimSpace(persona),
				Job:     strings.TrimSpace(job),
			}
			if query.Persona == "" {
				query.Persona = readOptional(filepath.Join(inDir, "persona.txt"))
			}
			if query.Job == "" {
				query.Job = readOptional(filepath.Join(inDir, "job.txt"))
			}
			if query.Empty() {
				log.Warn("no persona or job defined, nothing to analyze", "input", inDir)
				return nil
			}

			files, err := discoverDocuments(inDir)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				return fmt.Errorf("no supported documents in %s", inDir)
			}

			lang, err := nlp.NewEngine()
			if err != nil {
				return fmt.Errorf("init nlp engine: %w", err)
			}

			var inputs []pipeline.Input
			for _, path := range files {
				data, err := os.ReadFile(path)
				if err != nil {
					log.Warn("skipping unreadable file", "file", path, "error", err)
					continue
				}
				inputs = append(inputs, pipeline.Input{Name: filepath.Base(path), Data: data})
			}
			if len(inputs) == 0 {
				return fmt.Errorf("no readable documents in %s", inDir)
			}

			analyzer := pipeline.NewAnalyzer(cfg, lang, log)
			result := analyzer.AnalyzeCollection(cmd.Context(), inputs, query)

			if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}
			if err := writeJSON(outPath, result); err != nil {
				return err
			}
			log.Info("analysis written",
				"output", outPath,
				"sections", len(result.ExtractedSections),
				"refined", len(result.SubSectionAnalysis),
			)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inDir, "input", "i", "input", "directory with documents (and optional persona.txt/job.txt)")
	cmd.Flags().StringVarP(&outPath, "output", "o", "output/analysis.json", "path of the result JSON")
	cmd.Flags().StringVar(&persona, "persona", "", "persona description")
	cmd.Flags().StringVar(&job, "job", "", "job-to-be-done description")
	return cmd
}

func readOptional(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
