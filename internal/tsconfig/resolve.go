package tsconfig

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
)

const (
	// DefaultFileName is the file looked up when a directory is given.
	DefaultFileName = "tsconfig.json"

	nodeModules = "node_modules"
	jsonExt     = ".json"
)

// resolveEntry turns a user-supplied path into an absolute tsconfig file path.
func resolveEntry(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrapf(err, "resolving %s", path)
	}

	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.Wrapf(ErrNotFound, "%s", path)
		}

		return "", errors.Wrapf(err, "stat %s", path)
	}

	if info.IsDir() {
		abs = filepath.Join(abs, DefaultFileName)
		if !isFile(abs) {
			return "", errors.Wrapf(ErrNotFound, "%s", filepath.Join(path, DefaultFileName))
		}
	}

	return abs, nil
}

// resolveExtends resolves an extends specifier relative to the directory of the extending file.
//
// Relative and absolute specifiers are tried as given and with ".json" appended.
// Bare specifiers are package references looked up in node_modules, from dir upward.
func resolveExtends(dir, ref string) (string, error) {
	if ref == "" {
		return "", errors.Wrap(ErrInvalidExtends, "empty specifier")
	}

	if isRelative(ref) || filepath.IsAbs(ref) {
		base := ref
		if !filepath.IsAbs(base) {
			base = filepath.Join(dir, ref)
		}

		if found, ok := firstFile(candidates(base)...); ok {
			return found, nil
		}

		return "", errors.Wrapf(ErrNotFound, "extends %q from %s", ref, dir)
	}

	for current := dir; ; current = filepath.Dir(current) {
		base := filepath.Join(current, nodeModules, filepath.FromSlash(ref))

		tries := append(candidates(base), filepath.Join(base, DefaultFileName))
		if found, ok := firstFile(tries...); ok {
			return found, nil
		}

		if parent := filepath.Dir(current); parent == current {
			break
		}
	}

	return "", errors.Wrapf(ErrNotFound, "extends %q: no %s entry above %s", ref, nodeModules, dir)
}

func candidates(base string) []string {
	if strings.HasSuffix(base, jsonExt) {
		return []string{base}
	}

	return []string{base, base + jsonExt}
}

func isRelative(ref string) bool {
	return ref == "." || ref == ".." ||
		strings.HasPrefix(ref, "./") || strings.HasPrefix(ref, "../") ||
		strings.HasPrefix(ref, `.\`) || strings.HasPrefix(ref, `..\`)
}

func firstFile(paths ...string) (string, bool) {
	for _, p := range paths {
		if isFile(p) {
			return p, true
		}
	}

	return "", false
}

func isFile(path string) bool {
	info, err := os.Stat(path)

	return err == nil && info.Mode().IsRegular()
}
