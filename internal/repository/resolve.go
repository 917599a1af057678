package repository

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

const (
	// AnswersPathEnv overrides the answers store location.
	AnswersPathEnv = "ANSWERS_PATH"
	// DefaultAnswersPath is relative to the working directory.
	DefaultAnswersPath = "data/answers.json"
	// FallbackFileName is created under os.TempDir when nothing else is writable.
	FallbackFileName = "qanda-answers.json"
)

type ResolveOptions struct {
	// AnswersPath is tried before any other candidate.
	AnswersPath string
	// SkipDefault drops DefaultAnswersPath from the candidates.
	SkipDefault bool
}

// ResolveAnswersPath returns the first candidate store path whose directory
// can be created and written to. Candidates are, in order: the explicit
// path, $ANSWERS_PATH and DefaultAnswersPath. When none is writable the
// fallback file under the system temp directory is returned.
func ResolveAnswersPath(opts ResolveOptions) string {
	candidates := []func() string{
		func() string { return opts.AnswersPath },
		func() string { return os.Getenv(AnswersPathEnv) },
		func() string {
			if opts.SkipDefault {
				return ""
			}
			return DefaultAnswersPath
		},
	}

	for _, next := range candidates {
		candidate := next()
		if candidate == "" {
			continue
		}
		if writableDir(filepath.Dir(candidate)) {
			return candidate
		}
	}

	fallback := filepath.Join(os.TempDir(), FallbackFileName)
	writableDir(filepath.Dir(fallback))
	return fallback
}

// writableDir creates dir if needed and probes it with a throwaway file.
func writableDir(dir string) bool {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return false
	}
	probe := filepath.Join(dir, ".write-test-"+uuid.NewString())
	f, err := os.OpenFile(probe, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return false
	}
	f.Close()
	return os.Remove(probe) == nil
}
