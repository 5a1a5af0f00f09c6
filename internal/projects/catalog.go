package projects

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned when a project id is not in the catalog.
var ErrNotFound = errors.New("project not found")

// FilterAll selects every project in Filter.
const FilterAll = "all"

// Catalog is a fixed id -> Record table. It is built once and never
// changes afterwards, so it is safe for concurrent readers.
type Catalog struct {
	order []string
	byID  map[string]Record
}

// NewCatalog builds a catalog from records, keeping their order for
// listing. Ids must be non-empty and unique.
func NewCatalog(records ...Record) (*Catalog, error) {
	c := &Catalog{
		order: make([]string, 0, len(records)),
		byID:  make(map[string]Record, len(records)),
	}
	for _, rec := range records {
		if err := rec.validate(); err != nil {
			return nil, err
		}
		if _, dup := c.byID[rec.ID]; dup {
			return nil, fmt.Errorf("project %s: duplicate id", rec.ID)
		}
		c.order = append(c.order, rec.ID)
		c.byID[rec.ID] = rec.clone()
	}
	return c, nil
}

type catalogFile struct {
	Projects []Record `yaml:"projects"`
}

// LoadFile reads a YAML catalog of the form
//
//	projects:
//	  - id: kapray
//	    title: ...
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	if len(f.Projects) == 0 {
		return nil, fmt.Errorf("parse catalog %s: no projects", path)
	}
	return NewCatalog(f.Projects...)
}

// Get returns a copy of the record for id.
func (c *Catalog) Get(id string) (Record, error) {
	rec, ok := c.byID[id]
	if !ok {
		return Record{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return rec.clone(), nil
}

// Len reports the number of projects.
func (c *Catalog) Len() int {
	return len(c.order)
}

// IDs returns project ids in declaration order.
func (c *Catalog) IDs() []string {
	return copyStrings(c.order)
}

// All returns every record in declaration order.
func (c *Catalog) All() []Record {
	return c.Filter(FilterAll)
}

// Filter returns the records whose category equals category. An empty
// category or FilterAll matches everything.
func (c *Catalog) Filter(category string) []Record {
	out := make([]Record, 0, len(c.order))
	for _, id := range c.order {
		rec := c.byID[id]
		if category == "" || category == FilterAll || rec.Category == category {
			out = append(out, rec.clone())
		}
	}
	return out
}

// Categories returns the distinct categories in first-seen order.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, id := range c.order {
		cat := c.byID[id].Category
		if cat == "" || seen[cat] {
			continue
		}
		seen[cat] = true
		out = append(out, cat)
	}
	return out
}
