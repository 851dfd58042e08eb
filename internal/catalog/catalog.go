// Package catalog provides the diagnostic message templates used by the rules.
package catalog

import (
	_ "embed"
	"slices"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
)

//go:embed messages.toml
var defaultMessages []byte

// ErrInvalidCatalog is returned when catalog data cannot be parsed.
var ErrInvalidCatalog = errors.New("invalid message catalog")

// Key identifies a template by rule family and message name.
type Key struct {
	Family string
	Name   string
}

// String returns the dotted form of the key, e.g. "strict.implied".
func (k Key) String() string {
	return k.Family + "." + k.Name
}

// Catalog is an immutable set of message templates.
type Catalog struct {
	templates map[Key]Template
}

// Default returns the catalog shipped with tsconfcheck. It is parsed once.
var Default = sync.OnceValue(func() *Catalog {
	c, err := Parse(defaultMessages)
	if err != nil {
		panic(errors.NewAssertionErrorWithWrappedErrf(err, "embedded message catalog"))
	}

	return c
})

// New creates a catalog from family -> name -> template.
func New(messages map[string]map[string]string) *Catalog {
	templates := make(map[Key]Template)

	for family, names := range messages {
		for name, tmpl := range names {
			templates[Key{Family: family, Name: name}] = Template(tmpl)
		}
	}

	return &Catalog{templates: templates}
}

// Parse creates a catalog from TOML data with one table per family.
func Parse(data []byte) (*Catalog, error) {
	var messages map[string]map[string]string

	if err := toml.Unmarshal(data, &messages); err != nil {
		return nil, errors.WithSecondaryError(ErrInvalidCatalog, err)
	}

	return New(messages), nil
}

// Lookup returns the template stored under key.
func (c *Catalog) Lookup(key Key) (Template, bool) {
	tmpl, ok := c.templates[key]

	return tmpl, ok
}

// Render renders the template stored under key with args.
// An unknown key renders as the empty string; Require guards against that.
func (c *Catalog) Render(key Key, args ...string) string {
	tmpl, ok := c.Lookup(key)
	if !ok {
		return ""
	}

	return tmpl.Render(args...)
}

// Require returns an assertion failure naming every key missing from the catalog.
// A missing template is a defect in rule authoring, not a user error.
func (c *Catalog) Require(keys ...Key) error {
	var missing []string

	for _, key := range keys {
		if _, ok := c.templates[key]; !ok {
			missing = append(missing, key.String())
		}
	}

	if len(missing) == 0 {
		return nil
	}

	return errors.AssertionFailedf(
		"message catalog is missing %d template(s): %s",
		len(missing),
		strings.Join(missing, ", "),
	)
}

// Keys returns all keys in the catalog, sorted.
func (c *Catalog) Keys() []Key {
	keys := make([]Key, 0, len(c.templates))
	for key := range c.templates {
		keys = append(keys, key)
	}

	slices.SortFunc(keys, func(a, b Key) int {
		return strings.Compare(a.String(), b.String())
	})

	return keys
}

// Len returns the number of templates.
func (c *Catalog) Len() int {
	return len(c.templates)
}
