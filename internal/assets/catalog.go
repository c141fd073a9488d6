package assets

import (
	"io/fs"
	"slices"
)

// Catalog is the classified asset collection. It is built once during
// initialization and is read-only afterwards, so any number of handlers may
// share one pointer without locking.
type Catalog struct {
	gallery      []Record
	certificates []Record
	byPath       map[string]Record
}

// NewCatalog classifies every discovered source.
func NewCatalog(src Sources) *Catalog {
	c := &Catalog{
		gallery:      make([]Record, 0, len(src.Gallery)),
		certificates: make([]Record, 0, len(src.Certificates)),
		byPath:       make(map[string]Record, len(src.Gallery)+len(src.Certificates)),
	}
	for _, s := range src.Gallery {
		r := ClassifyGallery(s.Path, s.Ref)
		c.gallery = append(c.gallery, r)
		c.byPath[r.Path] = r
	}
	for _, s := range src.Certificates {
		r := Classify(s.Path, s.Ref)
		c.certificates = append(c.certificates, r)
		c.byPath[r.Path] = r
	}
	return c
}

// Load discovers the assets in fsys and classifies them.
func Load(fsys fs.FS, resolver Resolver) (*Catalog, error) {
	src, err := Discover(fsys, resolver)
	if err != nil {
		return nil, err
	}
	return NewCatalog(src), nil
}

// Gallery returns the gallery records in discovery order.
func (c *Catalog) Gallery() []Record { return slices.Clone(c.gallery) }

// Certificates returns the certificate records in discovery order.
func (c *Catalog) Certificates() []Record { return slices.Clone(c.certificates) }

// Lookup finds a record by its logical path.
func (c *Catalog) Lookup(path string) (Record, bool) {
	r, ok := c.byPath[path]
	return r, ok
}

// CountByCategory tallies certificates per category.
func (c *Catalog) CountByCategory() map[Category]int {
	counts := make(map[Category]int, len(Categories))
	for _, r := range c.certificates {
		counts[r.Category]++
	}
	return counts
}
