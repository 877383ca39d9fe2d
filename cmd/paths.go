package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrMissingInputFile is reported for a path that does not exist.
	ErrMissingInputFile = errors.New("doesn't exist")
	// ErrInvalidWildcard is reported for a wildcard path that cannot be resolved.
	ErrInvalidWildcard = errors.New("invalid wildcard")
)

const wildcardChars = "*?["

// expandPath expands a leading "~" and makes the path absolute.
func expandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expanding %s: %w", path, err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return filepath.Abs(path)
}

// ResolvePaths turns command-line arguments into existing file paths, in
// argument order. Each argument may hold a single wildcard segment. Arguments
// that cannot be resolved are returned as errors and skipped; the rest
// still resolve.
func ResolvePaths(args []string) ([]string, []error) {
	var paths []string
	var errs []error
	for _, arg := range args {
		resolved, err := resolvePath(arg)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		paths = append(paths, resolved...)
	}
	return paths, errs
}

func resolvePath(arg string) ([]string, error) {
	path, err := expandPath(arg)
	if err != nil {
		return nil, err
	}
	if !strings.ContainsAny(path, wildcardChars) {
		info, err := os.Stat(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("%s %w", path, ErrMissingInputFile)
			}
			return nil, fmt.Errorf("checking %s: %w", path, err)
		}
		if info.IsDir() {
			return nil, fmt.Errorf("%s is a directory", path)
		}
		return []string{path}, nil
	}

	segments := strings.Split(path, string(filepath.Separator))
	wild := -1
	for i, seg := range segments {
		if !strings.ContainsAny(seg, wildcardChars) {
			continue
		}
		if wild >= 0 {
			return nil, fmt.Errorf("%s: %w: more than one wildcard segment", path, ErrInvalidWildcard)
		}
		wild = i
	}
	base := strings.Join(segments[:wild], string(filepath.Separator))
	if base == "" {
		base = string(filepath.Separator)
	}
	if info, err := os.Stat(base); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%s: %w: base directory %s not found", path, ErrInvalidWildcard, base)
	}
	matches, err := filepath.Glob(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", path, ErrInvalidWildcard, err)
	}
	var files []string
	for _, m := range matches {
		if info, err := os.Stat(m); err == nil && !info.IsDir() {
			files = append(files, m)
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%s %w", path, ErrMissingInputFile)
	}
	return files, nil
}
