// Package discover expands command line arguments into tsconfig paths.
package discover

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cockroachdb/errors"
)

// ErrNoMatches is returned when a glob matches no file.
var ErrNoMatches = errors.New("no files match pattern")

const nodeModules = "node_modules"

// Paths expands args into the paths to check. Arguments without glob
// meta characters are passed through untouched, so files and directories
// keep their loader semantics. Globs support ** and are matched against
// regular files only; matches inside node_modules are skipped. No arguments
// means the current directory.
//
// The result keeps argument order, sorts the matches of each glob, and drops
// duplicates.
func Paths(args []string) ([]string, error) {
	if len(args) == 0 {
		return []string{"."}, nil
	}

	seen := make(map[string]bool)

	var paths []string

	add := func(p string) {
		key := filepath.Clean(p)
		if seen[key] {
			return
		}

		seen[key] = true
		paths = append(paths, p)
	}

	for _, arg := range args {
		if !IsPattern(arg) {
			add(arg)

			continue
		}

		matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
		if err != nil {
			return nil, errors.Wrapf(err, "expanding %q", arg)
		}

		matches = slices.DeleteFunc(matches, inNodeModules)
		if len(matches) == 0 {
			return nil, errors.Wrapf(ErrNoMatches, "%q", arg)
		}

		slices.Sort(matches)

		for _, m := range matches {
			add(m)
		}
	}

	return paths, nil
}

// IsPattern reports whether arg contains glob meta characters.
func IsPattern(arg string) bool {
	return strings.ContainsAny(arg, "*?[{")
}

func inNodeModules(path string) bool {
	return slices.Contains(strings.Split(filepath.ToSlash(path), "/"), nodeModules)
}
