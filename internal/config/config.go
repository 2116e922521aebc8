package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/docsense/docsense/internal/outline"
)

type Config struct {
	Port string

	// Auth
	APIKey string

	// Worker pool
	WorkerCount  int
	MaxQueueSize int

	// Upload limits
	MaxUploadBytes int64

	// Job state
	JobTTL time.Duration

	// Outline extraction
	FontPolicy      outline.Policy
	CollapseRepeats bool

	// Relevance pipeline
	TopSections      int
	JaccardThreshold float64
	RefineMaxChars   int
	MaxVocabulary    int
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8091"),

		APIKey: os.Getenv("DOCSENSE_API_KEY"),

		WorkerCount:  envInt("WORKER_COUNT", 4),
		MaxQueueSize: envInt("MAX_QUEUE_SIZE", 50),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB

		JobTTL: envDuration("JOB_TTL", 1*time.Hour),

		FontPolicy:      outline.Policy(envOr("FONT_POLICY", string(outline.PolicyRank))),
		CollapseRepeats: envBool("COLLAPSE_REPEATS", true),

		TopSections:      envInt("TOP_SECTIONS", 5),
		JaccardThreshold: envFloat("JACCARD_THRESHOLD", 0.05),
		RefineMaxChars:   envInt("REFINE_MAX_CHARS", 1000),
		MaxVocabulary:    envInt("MAX_VOCABULARY", 5000),
	}

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 50
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.JobTTL <= 0 {
		cfg.JobTTL = 1 * time.Hour
	}
	if cfg.TopSections <= 0 {
		cfg.TopSections = 5
	}
	if cfg.JaccardThreshold <= 0 {
		cfg.JaccardThreshold = 0.05
	}
	if cfg.RefineMaxChars <= 0 {
		cfg.RefineMaxChars = 1000
	}
	if cfg.MaxVocabulary <= 0 {
		cfg.MaxVocabulary = 5000
	}

	return cfg
}

func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("DOCSENSE_API_KEY is required")
	}
	if c.FontPolicy != outline.PolicyRank && c.FontPolicy != outline.PolicyFrequency {
		return fmt.Errorf("FONT_POLICY must be %q or %q", outline.PolicyRank, outline.PolicyFrequency)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
