package content

import (
	"bytes"
	"html/template"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"
)

// Load reads a catalog from a YAML file. An empty path returns the built-in catalog.
func Load(path string) (cat Catalog, err error) {
	if path == "" {
		cat = Default()
		return cat, err
	}

	var data []byte
	data, err = os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read content file: %s", path)
		return cat, err
	}

	cat, err = Parse(data)
	if err != nil {
		err = errors.Wrapf(err, "content file %s", path)
		return cat, err
	}

	return cat, err
}

// Parse decodes a YAML catalog and validates it.
func Parse(data []byte) (cat Catalog, err error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	err = dec.Decode(&cat)
	if err != nil {
		err = errors.Wrap(err, "failed to parse content")
		return cat, err
	}

	err = cat.Validate()
	return cat, err
}

// Export writes the catalog as YAML.
func Export(cat Catalog) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cat); err != nil {
		return nil, errors.Wrap(err, "failed to encode content")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to encode content")
	}
	return buf.Bytes(), nil
}

// Validate checks the invariants the page relies on.
func (c Catalog) Validate() error {
	if strings.TrimSpace(c.Profile.Name) == "" {
		return errors.New("profile.name is required")
	}

	for i, s := range c.Skills {
		if s.Name == "" {
			return errors.Errorf("skills[%d]: name is required", i)
		}
		if s.Level < 0 || s.Level > 100 {
			return errors.Errorf("skills[%d] %s: level %d outside 0-100", i, s.Name, s.Level)
		}
	}

	for i, p := range c.Projects {
		if p.Title == "" {
			return errors.Errorf("projects[%d]: title is required", i)
		}
	}

	seen := make(map[int]bool, len(c.Certificates))
	for i, cert := range c.Certificates {
		if cert.ID == 0 {
			return errors.Errorf("certificates[%d]: id is required", i)
		}
		if seen[cert.ID] {
			return errors.Errorf("certificates[%d]: duplicate id %d", i, cert.ID)
		}
		seen[cert.ID] = true
		if cert.Title == "" {
			return errors.Errorf("certificates[%d]: title is required", i)
		}
	}

	for i, t := range c.Testimonials {
		if t.Name == "" || t.Quote == "" {
			return errors.Errorf("testimonials[%d]: name and quote are required", i)
		}
	}

	return nil
}

var md = goldmark.New()

// Markdown renders copy to HTML. Raw HTML in the source is dropped by goldmark's
// default (unsafe-off) renderer, so the result is safe to embed.
func Markdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(buf.String())
}
