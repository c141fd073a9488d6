package assets

import (
	"regexp"
	"strings"
)

const (
	certificatesMarker  = "certificates"
	participationMarker = "participation"
	boilerplatePrefix   = "CertificateOfCompletion_"
)

var (
	extensionPattern  = regexp.MustCompile(`\.[^/.]+$`)
	separatorPattern  = regexp.MustCompile(`[-_]+`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Kind distinguishes the two discovered asset trees.
type Kind string

const (
	KindGallery     Kind = "gallery"
	KindCertificate Kind = "certificate"
)

// Record is one discovered media file. Records are created once while the
// catalog is built and never modified afterwards.
type Record struct {
	Path     string   `json:"path"`
	Title    string   `json:"title"`
	Category Category `json:"category,omitempty"`
	Ref      string   `json:"ref"`
	Kind     Kind     `json:"kind"`
}

// IsPDF reports whether the record must be embedded as a document rather
// than displayed as an image.
func (r Record) IsPDF() bool {
	return strings.HasSuffix(strings.ToLower(r.Path), ".pdf") ||
		strings.HasSuffix(strings.ToLower(r.Ref), ".pdf")
}

// Meta returns the card metadata of the record's category.
func (r Record) Meta() CategoryMeta { return r.Category.Meta() }

// Classify builds the record for a certificate file.
func Classify(path, ref string) Record {
	return Record{
		Path:     path,
		Title:    FormatTitle(fileName(path)),
		Category: DeriveCategory(path),
		Ref:      ref,
		Kind:     KindCertificate,
	}
}

// ClassifyGallery builds the record for a gallery image. Gallery items are
// not categorized.
func ClassifyGallery(path, ref string) Record {
	return Record{
		Path:  path,
		Title: FormatTitle(fileName(path)),
		Ref:   ref,
		Kind:  KindGallery,
	}
}

// FormatTitle turns a file name into a display title:
// "CertificateOfCompletion_some-file_name.png" becomes "Some File Name".
func FormatTitle(name string) string {
	name = extensionPattern.ReplaceAllString(name, "")
	name = strings.TrimPrefix(name, boilerplatePrefix)
	name = separatorPattern.ReplaceAllString(name, " ")
	name = whitespacePattern.ReplaceAllString(name, " ")
	name = strings.TrimSpace(name)
	return capitalizeWords(name)
}

// DeriveCategory finds the category token that follows the "certificates"
// segment of path, looking one level deeper under "participation". Paths
// without a recognized token are filed as CategoryOther.
func DeriveCategory(path string) Category {
	segments := strings.Split(path, "/")
	marker := -1
	for i, segment := range segments {
		if segment == certificatesMarker {
			marker = i
			break
		}
	}
	if marker < 0 {
		return CategoryOther
	}

	candidate := segmentAt(segments, marker+1)
	if candidate == participationMarker {
		candidate = segmentAt(segments, marker+2)
	}
	if category, ok := ParseCategory(candidate); ok {
		return category
	}
	return CategoryOther
}

func segmentAt(segments []string, i int) string {
	if i < len(segments) {
		return segments[i]
	}
	return ""
}

func fileName(path string) string {
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return path[i+1:]
	}
	return path
}

// capitalizeWords uppercases every ASCII word character that starts a word.
func capitalizeWords(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevWord := false
	for _, r := range s {
		word := isWordChar(r)
		if word && !prevWord && r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		prevWord = word
		b.WriteRune(r)
	}
	return b.String()
}

func isWordChar(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}
