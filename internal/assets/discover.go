package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"path"
	"strings"
)

const (
	galleryRoot      = "gallery"
	certificatesRoot = "certificates"
)

var (
	galleryExtensions     = []string{".png", ".jpg", ".jpeg", ".webp", ".gif"}
	certificateExtensions = []string{".png", ".jpg", ".jpeg", ".webp", ".pdf"}
)

// Source pairs a logical asset path with the reference a browser can load.
type Source struct {
	Path string
	Ref  string
}

// Sources is the output of discovery: the two asset trees in lexical order.
type Sources struct {
	Gallery      []Source
	Certificates []Source
}

// Resolver maps a logical asset path to a loadable reference.
type Resolver interface {
	Resolve(path string) string
}

// PrefixResolver serves assets below a URL prefix, escaping each segment.
type PrefixResolver struct {
	Base string
}

// Resolve joins the escaped path onto the base URL.
func (r PrefixResolver) Resolve(p string) string {
	segments := strings.Split(p, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return strings.TrimRight(r.Base, "/") + "/" + strings.Join(segments, "/")
}

// OverlayResolver prefers explicit references (public URLs recorded by the
// upload utility) and falls back to another resolver for the rest.
type OverlayResolver struct {
	Overrides map[string]string
	Fallback  Resolver
}

// Resolve returns the override for p when one exists.
func (r OverlayResolver) Resolve(p string) string {
	if ref, ok := r.Overrides[p]; ok && ref != "" {
		return ref
	}
	if r.Fallback == nil {
		return p
	}
	return r.Fallback.Resolve(p)
}

// Discover enumerates gallery/* and certificates/**/* in fsys. A missing
// tree yields no sources rather than an error.
func Discover(fsys fs.FS, resolver Resolver) (Sources, error) {
	var src Sources

	entries, err := fs.ReadDir(fsys, galleryRoot)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Sources{}, fmt.Errorf("read gallery: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !hasExtension(entry.Name(), galleryExtensions) {
			continue
		}
		p := path.Join(galleryRoot, entry.Name())
		src.Gallery = append(src.Gallery, Source{Path: p, Ref: resolver.Resolve(p)})
	}

	if _, err := fs.Stat(fsys, certificatesRoot); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return src, nil
		}
		return Sources{}, fmt.Errorf("stat certificates: %w", err)
	}
	err = fs.WalkDir(fsys, certificatesRoot, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !hasExtension(d.Name(), certificateExtensions) {
			return nil
		}
		src.Certificates = append(src.Certificates, Source{Path: p, Ref: resolver.Resolve(p)})
		return nil
	})
	if err != nil {
		return Sources{}, fmt.Errorf("walk certificates: %w", err)
	}
	return src, nil
}

func hasExtension(name string, allowed []string) bool {
	ext := strings.ToLower(path.Ext(name))
	for _, candidate := range allowed {
		if ext == candidate {
			return true
		}
	}
	return false
}
