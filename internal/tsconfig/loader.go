// Package tsconfig loads tsconfig files, resolving their extends chains into a snapshot.
package tsconfig

import (
	"bytes"
	"context"
	"encoding/json"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"
	"github.com/tailscale/hujson"

	"github.com/smykla-skalski/tsconfcheck/pkg/logger"
	"github.com/smykla-skalski/tsconfcheck/pkg/options"
)

var utf8BOM = []byte("\xef\xbb\xbf")

// Result is a loaded tsconfig.
type Result struct {
	// Path is the absolute path of the entry file.
	Path string

	// Chain lists every file merged, bases first and the entry file last.
	Chain []string

	// Snapshot is the merged compilerOptions.
	Snapshot *options.Snapshot
}

// Loader loads tsconfig files. A Loader is safe for concurrent use.
type Loader struct {
	logger logger.Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithLogger sets the logger for the loader.
func WithLogger(log logger.Logger) LoaderOption {
	return func(l *Loader) {
		l.logger = log
	}
}

// NewLoader creates a new Loader.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{}

	for _, opt := range opts {
		opt(l)
	}

	if l.logger == nil {
		l.logger = logger.NewNoOpLogger()
	}

	return l
}

// document is the part of a tsconfig file the loader reads.
type document struct {
	Extends         any            `json:"extends"`
	CompilerOptions map[string]any `json:"compilerOptions"`
}

// load is the state of a single Load call.
type load struct {
	k     *koanf.Koanf
	chain []string
}

// Load reads the tsconfig at path, which may be a file or a directory holding
// tsconfig.json, and merges its extends chain.
//
// Bases are merged before the file extending them; with several bases, later
// ones win. Merging replaces compilerOptions key by key.
func (l *Loader) Load(ctx context.Context, path string) (*Result, error) {
	entry, err := resolveEntry(path)
	if err != nil {
		return nil, err
	}

	st := &load{k: koanf.New(".")}

	if err := l.loadFile(ctx, st, entry, nil); err != nil {
		return nil, err
	}

	snap, err := l.decode(st.k, entry)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding compilerOptions of %s", entry)
	}

	return &Result{
		Path:     entry,
		Chain:    st.chain,
		Snapshot: snap,
	}, nil
}

func (l *Loader) loadFile(ctx context.Context, st *load, file string, stack []string) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrapf(err, "loading %s", file)
	}

	if slices.Contains(stack, file) {
		return errors.Wrapf(ErrExtendsCycle, "%s", strings.Join(append(stack, file), " -> "))
	}

	stack = append(slices.Clip(stack), file)

	doc, err := readDocument(file)
	if err != nil {
		return err
	}

	bases, err := extendsList(doc.Extends)
	if err != nil {
		return errors.Wrapf(err, "in %s", file)
	}

	for _, ref := range bases {
		base, err := resolveExtends(filepath.Dir(file), ref)
		if err != nil {
			return errors.Wrapf(err, "in %s", file)
		}

		l.logger.Debug("resolved extends", "from", file, "extends", ref, "path", base)

		if err := l.loadFile(ctx, st, base, stack); err != nil {
			return err
		}
	}

	if len(doc.CompilerOptions) > 0 {
		err := st.k.Load(confmap.Provider(doc.CompilerOptions, ""), nil, koanf.WithMergeFunc(replaceKeys))
		if err != nil {
			return errors.Wrapf(err, "merging %s", file)
		}
	}

	st.chain = append(st.chain, file)

	return nil
}

// replaceKeys merges src into dest one top-level key at a time, so a base's
// nested values (paths, plugins) are replaced rather than deep-merged.
func replaceKeys(src, dest map[string]any) error {
	for key, value := range src {
		dest[key] = value
	}

	return nil
}

func readDocument(file string) (*document, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrNotFound, "%s", file)
		}

		return nil, errors.Wrapf(err, "reading %s", file)
	}

	std, err := hujson.Standardize(bytes.TrimPrefix(data, utf8BOM))
	if err != nil {
		return nil, newParseError(file, err)
	}

	var doc document
	if err := json.Unmarshal(std, &doc); err != nil {
		return nil, &ParseError{Path: file, Err: err}
	}

	return &doc, nil
}

func extendsList(raw any) ([]string, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case string:
		return []string{v}, nil
	case []any:
		specs := make([]string, 0, len(v))

		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, errors.Wrapf(ErrInvalidExtends, "element %d is %T", i, item)
			}

			specs = append(specs, s)
		}

		return specs, nil
	default:
		return nil, errors.Wrapf(ErrInvalidExtends, "got %T", raw)
	}
}

// decode decodes the merged compilerOptions into a snapshot.
//
// Types are not validated: when the whole map does not decode, each option is
// decoded on its own and those that still fail are left unset.
func (l *Loader) decode(k *koanf.Koanf, file string) (*options.Snapshot, error) {
	raw := k.Raw()

	snap := &options.Snapshot{}
	if err := decodeInto(snap, raw); err == nil {
		return snap, nil
	}

	snap = &options.Snapshot{}

	for _, name := range slices.Sorted(maps.Keys(raw)) {
		err := decodeInto(snap, map[string]any{name: raw[name]})
		if err == nil {
			continue
		}

		if errors.Is(err, errDecoderConfig) {
			return nil, err
		}

		l.logger.Debug("ignoring compilerOptions value", "path", file, "option", name, "error", err)
	}

	return snap, nil
}

var errDecoderConfig = errors.New("invalid decoder configuration")

func decodeInto(snap *options.Snapshot, input map[string]any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Result:           snap,
		Squash:           true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return errors.Mark(err, errDecoderConfig)
	}

	return dec.Decode(input)
}
