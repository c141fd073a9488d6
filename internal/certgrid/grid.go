// Package certgrid derives the visible slice of the certification grid from
// the active category filter and the expanded toggle.
package certgrid

import (
	"strconv"

	"github.com/shub-dev/portfolio/internal/assets"
)

const (
	// PageSize caps the grid while it is collapsed.
	PageSize = 12
	// All is the filter key that matches every category.
	All = "all"
)

// Filter is the grid's interaction state.
type Filter struct {
	Category string
	Expanded bool
}

// ParseFilter reads a filter from request values. An empty category means
// All; keys outside the category enumeration fall back to "other".
func ParseFilter(category, expanded string) Filter {
	f := Filter{Category: All}
	switch {
	case category == "" || category == All:
	default:
		if c, ok := assets.ParseCategory(category); ok {
			f.Category = c.String()
		} else {
			f.Category = assets.CategoryOther.String()
		}
	}
	f.Expanded, _ = strconv.ParseBool(expanded)
	return f
}

// Option is one button of the filter bar.
type Option struct {
	Key    string
	Label  string
	Active bool
}

// View is everything the grid template renders.
type View struct {
	Items    []assets.Record
	Options  []Option
	Filter   Filter
	Total    int
	Matching int
	HasMore  bool
	Empty    bool
}

// Matching returns the records in the filter's category, in discovery order.
func Matching(all []assets.Record, category string) []assets.Record {
	if category == All {
		return all
	}
	out := make([]assets.Record, 0, len(all))
	for _, r := range all {
		if string(r.Category) == category {
			out = append(out, r)
		}
	}
	return out
}

// Visible applies the category filter and, unless expanded, the page cap.
func Visible(all []assets.Record, f Filter) []assets.Record {
	matching := Matching(all, f.Category)
	if !f.Expanded && len(matching) > PageSize {
		return matching[:PageSize]
	}
	return matching
}

// Categories lists All followed by the categories present in all, in order
// of first appearance.
func Categories(all []assets.Record) []Option {
	opts := []Option{{Key: All, Label: "All"}}
	seen := make(map[assets.Category]bool)
	for _, r := range all {
		if seen[r.Category] {
			continue
		}
		seen[r.Category] = true
		opts = append(opts, Option{Key: r.Category.String(), Label: r.Category.Meta().Label})
	}
	return opts
}

// Build derives the full grid view.
func Build(all []assets.Record, f Filter) View {
	if f.Category == "" {
		f.Category = All
	}
	matching := Matching(all, f.Category)
	items := matching
	if !f.Expanded && len(items) > PageSize {
		items = items[:PageSize]
	}

	opts := Categories(all)
	for i := range opts {
		opts[i].Active = opts[i].Key == f.Category
	}

	return View{
		Items:    items,
		Options:  opts,
		Filter:   f,
		Total:    len(all),
		Matching: len(matching),
		HasMore:  len(matching) > PageSize,
		Empty:    len(matching) == 0,
	}
}
