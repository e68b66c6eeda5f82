package polyglot

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"maps"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/polyglot/pkg/translate"
)

// WithJSONDir loads translations from JSON files in an fs.FS. The root must
// contain language directories directly; each file inside becomes a group of
// keys prefixed with the file name.
//
// Example structure:
//
//	en/common.json
//	en/errors.json
//	de-CH/common.json
//
// en/common.json containing {"buttons": {"save": "Save"}} yields the key
// "common.buttons.save" in the "en" layer.
func WithJSONDir(fsys fs.FS) Option {
	return func(b *builder) error {
		return loadDir(b, fsys, ".json", func(data []byte, v any) error {
			return json.Unmarshal(data, v)
		})
	}
}

// WithYAMLDir loads translations from YAML files in an fs.FS, following the
// same {lang}/{group}.yaml (or .yml) convention as WithJSONDir.
func WithYAMLDir(fsys fs.FS) Option {
	return func(b *builder) error {
		return loadDir(b, fsys, ".yaml", func(data []byte, v any) error {
			return yaml.Unmarshal(data, v)
		})
	}
}

func loadDir(b *builder, fsys fs.FS, ext string, unmarshal func([]byte, any) error) error {
	return fs.WalkDir(fsys, ".", func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		fileExt := strings.ToLower(path.Ext(filePath))
		var matches bool
		if ext == ".yaml" {
			matches = fileExt == ".yaml" || fileExt == ".yml"
		} else {
			matches = fileExt == ext
		}
		if !matches {
			return nil
		}

		dir := path.Dir(filePath)
		if dir == "." || dir == "" {
			return fmt.Errorf("%w: file %q must be inside a language directory", ErrInvalidFile, filePath)
		}

		lang := path.Base(dir)
		if _, err := b.registry.Parse(lang); err != nil {
			return fmt.Errorf("%w: directory %q is not a language tag", ErrInvalidFile, lang)
		}
		group := strings.TrimSuffix(path.Base(filePath), path.Ext(filePath))

		data, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			return fmt.Errorf("reading %q: %w", filePath, err)
		}

		var raw map[string]any
		if err := unmarshal(data, &raw); err != nil {
			return fmt.Errorf("%w: parsing %q: %s", ErrInvalidFile, filePath, err)
		}

		flattened := flatten(raw, group)
		if b.loaded[lang] == nil {
			b.loaded[lang] = make(translate.Messages)
		}
		maps.Copy(b.loaded[lang], flattened)
		return nil
	})
}

// flatten converts a nested translation map into dot-separated flat keys.
func flatten(data map[string]any, prefix string) translate.Messages {
	result := make(translate.Messages)

	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = v
		case map[string]any:
			maps.Copy(result, flatten(v, fullKey))
		case map[string]string:
			for subKey, subVal := range v {
				result[fullKey+"."+subKey] = subVal
			}
		default:
			result[fullKey] = fmt.Sprintf("%v", v)
		}
	}

	return result
}
