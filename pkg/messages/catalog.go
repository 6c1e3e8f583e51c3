package messages

import (
	"embed"
	"fmt"
	"io/fs"
	"maps"
	"path"
	"regexp"
	"slices"
	"strings"

	"github.com/dmitrymomot/marketparams/pkg/validator"
)

// DefaultLanguage is used when a requested language or key is missing.
const DefaultLanguage = "en"

//go:embed locales/*.yaml
var locales embed.FS

// Catalog renders validation errors as localized messages. It is read-only
// after construction and safe for concurrent use.
type Catalog struct {
	translations map[string]map[string]any
}

// Default returns a catalog built from the bundled locales.
func Default() *Catalog {
	c, err := Load(locales, "locales")
	if err != nil {
		panic(fmt.Sprintf("messages: bundled locales: %v", err))
	}
	return c
}

// Load reads every .yaml and .yml file in dir of fsys, in name order.
// Nested maps are merged key by key, so a later file may add templates under
// a group such as validation defined by an earlier file. On a conflicting
// leaf the later file wins.
func Load(fsys fs.FS, dir string) (*Catalog, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read locales dir: %w", err)
	}

	c := &Catalog{translations: make(map[string]map[string]any)}
	for _, e := range entries {
		ext := strings.ToLower(path.Ext(e.Name()))
		if e.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}

		content, err := fs.ReadFile(fsys, path.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", e.Name(), err)
		}
		parsed, err := Parse(content)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name(), err)
		}
		for lang, m := range parsed {
			if c.translations[lang] == nil {
				c.translations[lang] = make(map[string]any)
			}
			merge(c.translations[lang], m)
		}
	}

	if len(c.translations) == 0 {
		return nil, ErrNoTranslations
	}
	return c, nil
}

// Languages returns the sorted language codes of the catalog.
func (c *Catalog) Languages() []string {
	return slices.Sorted(maps.Keys(c.translations))
}

// T renders the template for key in lang, falling back to DefaultLanguage.
// The second result is false when neither language has the key.
func (c *Catalog) T(lang, key string, params map[string]any) (string, bool) {
	tmpl, ok := c.lookup(lang, key)
	if !ok {
		tmpl, ok = c.lookup(DefaultLanguage, key)
	}
	if !ok {
		return "", false
	}
	return render(tmpl, params), true
}

// Message renders one validation error. Without a template the error's own
// Message is returned.
func (c *Catalog) Message(lang string, e validator.ValidationError) string {
	if s, ok := c.T(lang, e.TranslationKey, e.TranslationValues); ok {
		return s
	}
	return e.Message
}

// Translate groups rendered messages by field.
func (c *Catalog) Translate(lang string, errs validator.ValidationErrors) map[string][]string {
	out := make(map[string][]string, len(errs))
	for _, e := range errs {
		out[e.Field] = append(out[e.Field], c.Message(lang, e))
	}
	return out
}

// merge copies src into dst, descending into maps present on both sides.
func merge(dst, src map[string]any) {
	for k, v := range src {
		srcMap, srcOK := v.(map[string]any)
		dstMap, dstOK := dst[k].(map[string]any)
		if srcOK && dstOK {
			merge(dstMap, srcMap)
			continue
		}
		if srcOK {
			cp := make(map[string]any, len(srcMap))
			merge(cp, srcMap)
			dst[k] = cp
			continue
		}
		dst[k] = v
	}
}

// lookup follows a dot-separated key through nested maps.
func (c *Catalog) lookup(lang, key string) (string, bool) {
	current, ok := c.translations[lang]
	if !ok || key == "" {
		return "", false
	}

	parts := strings.Split(key, ".")
	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return "", false
		}
		if i == len(parts)-1 {
			s, ok := val.(string)
			return s, ok
		}
		if current, ok = val.(map[string]any); !ok {
			return "", false
		}
	}
	return "", false
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// render replaces %{name} placeholders. Unknown names are kept as is.
func render(tmpl string, params map[string]any) string {
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		val, ok := params[match[2:len(match)-1]]
		if !ok {
			return match
		}
		if list, ok := val.([]string); ok {
			return strings.Join(list, ", ")
		}
		return fmt.Sprint(val)
	})
}
