package lexicon

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Overlay is extra vocabulary merged into the built-in tables, loaded from
// a YAML file. Overlays only add entries; built-ins are never removed, so
// the behavior the built-in tables pin down stays stable.
type Overlay struct {
	Brands []struct {
		Keyword  string `yaml:"keyword"`
		Brand    string `yaml:"brand"`
		Model    string `yaml:"model,omitempty"`
		Category string `yaml:"category"`
	} `yaml:"brands,omitempty"`

	Entities []struct {
		Keyword     string            `yaml:"keyword"`
		Category    string            `yaml:"category"`
		Subcategory string            `yaml:"subcategory,omitempty"`
		Fields      map[string]string `yaml:"fields,omitempty"`
	} `yaml:"entities,omitempty"`

	Cities []struct {
		Name        string `yaml:"name"`
		Governorate string `yaml:"governorate"`
	} `yaml:"cities,omitempty"`

	CategoryKeywords map[string][]string `yaml:"categoryKeywords,omitempty"`
}

// LoadOverlay reads an overlay from a YAML file.
func LoadOverlay(path string) (*Overlay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading lexicon overlay: %w", err)
	}
	var overlay Overlay
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOverlay, err)
	}
	return &overlay, nil
}

// Apply merges the overlay's vocabulary into the lexicon and re-sorts the
// keyword tables so longest-match ordering still holds.
func (l *Lexicon) Apply(overlay *Overlay) error {
	if overlay == nil {
		return nil
	}

	for _, b := range overlay.Brands {
		if b.Keyword == "" || b.Brand == "" {
			return fmt.Errorf("%w: brand entry needs keyword and brand", ErrInvalidOverlay)
		}
		l.brands = append(l.brands, Brand{
			Keyword:  b.Keyword,
			Brand:    b.Brand,
			Model:    b.Model,
			Category: b.Category,
		})
	}

	for _, e := range overlay.Entities {
		if e.Keyword == "" || e.Category == "" {
			return fmt.Errorf("%w: entity entry needs keyword and category", ErrInvalidOverlay)
		}
		l.entities = append(l.entities, Entity{
			Keyword:     e.Keyword,
			Category:    e.Category,
			Subcategory: e.Subcategory,
			Fields:      e.Fields,
		})
	}

	for _, c := range overlay.Cities {
		if c.Name == "" || c.Governorate == "" {
			return fmt.Errorf("%w: city entry needs name and governorate", ErrInvalidOverlay)
		}
		l.cities = append(l.cities, City(c))
	}

	for category, keywords := range overlay.CategoryKeywords {
		found := false
		for i := range l.categoryKeywords {
			if l.categoryKeywords[i].Category == category {
				l.categoryKeywords[i].Keywords = append(l.categoryKeywords[i].Keywords, keywords...)
				found = true
				break
			}
		}
		if !found {
			l.categoryKeywords = append(l.categoryKeywords, CategoryKeywords{
				Category: category,
				Keywords: append([]string(nil), keywords...),
			})
		}
	}

	l.sortTables()
	return nil
}
