package assets

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	fsys := fstest.MapFS{}
	for _, p := range []string{
		"gallery/b-stage.jpg",
		"gallery/a_team.PNG",
		"gallery/notes.txt",
		"gallery/nested/x.jpg",
		"certificates/linkedin/go-basics.png",
		"certificates/participation/hackathon/sih_2024.pdf",
		"certificates/participation/bowling/strike.jpg",
		"certificates/CertificateOfCompletion_loose.webp",
		"certificates/coursera/deep/CertificateOfCompletion_ml.jpg",
		"certificates/coursera/readme.md",
	} {
		fsys[p] = &fstest.MapFile{Data: []byte(p)}
	}
	return fsys
}

func TestDiscoverOrdersAndFilters(t *testing.T) {
	src, err := Discover(testFS(), PrefixResolver{Base: "/assets/"})
	require.NoError(t, err)

	require.Len(t, src.Gallery, 2)
	assert.Equal(t, "gallery/a_team.PNG", src.Gallery[0].Path)
	assert.Equal(t, "/assets/gallery/a_team.PNG", src.Gallery[0].Ref)
	assert.Equal(t, "gallery/b-stage.jpg", src.Gallery[1].Path)

	var paths []string
	for _, s := range src.Certificates {
		paths = append(paths, s.Path)
	}
	assert.Equal(t, []string{
		"certificates/CertificateOfCompletion_loose.webp",
		"certificates/coursera/deep/CertificateOfCompletion_ml.jpg",
		"certificates/linkedin/go-basics.png",
		"certificates/participation/bowling/strike.jpg",
		"certificates/participation/hackathon/sih_2024.pdf",
	}, paths)
}

func TestDiscoverMissingTrees(t *testing.T) {
	src, err := Discover(fstest.MapFS{}, PrefixResolver{Base: "/assets"})
	require.NoError(t, err)
	assert.Empty(t, src.Gallery)
	assert.Empty(t, src.Certificates)
}

func TestPrefixResolverEscapesSegments(t *testing.T) {
	r := PrefixResolver{Base: "/assets"}
	assert.Equal(t, "/assets/gallery/about%20me/winning%20.jpeg", r.Resolve("gallery/about me/winning .jpeg"))
}

func TestOverlayResolverPrefersOverrides(t *testing.T) {
	r := OverlayResolver{
		Overrides: map[string]string{"gallery/IMG_1.jpg": "https://cdn.example.com/gallery/IMG_1.jpg"},
		Fallback:  PrefixResolver{Base: "/assets"},
	}
	assert.Equal(t, "https://cdn.example.com/gallery/IMG_1.jpg", r.Resolve("gallery/IMG_1.jpg"))
	assert.Equal(t, "/assets/gallery/IMG_2.jpg", r.Resolve("gallery/IMG_2.jpg"))
	assert.Equal(t, "raw", OverlayResolver{}.Resolve("raw"))
}

func TestLoadBuildsCatalog(t *testing.T) {
	c, err := Load(testFS(), PrefixResolver{Base: "/assets"})
	require.NoError(t, err)

	assert.Len(t, c.Gallery(), 2)

	certs := c.Certificates()
	require.Len(t, certs, 5)
	assert.Equal(t, "Loose", certs[0].Title)
	assert.Equal(t, CategoryOther, certs[0].Category)
	assert.Equal(t, CategoryCoursera, certs[1].Category)
	assert.Equal(t, "Ml", certs[1].Title)
	assert.Equal(t, CategoryOther, certs[3].Category)
	assert.Equal(t, CategoryHackathon, certs[4].Category)

	counts := c.CountByCategory()
	assert.Equal(t, 2, counts[CategoryOther])
	assert.Equal(t, 1, counts[CategoryHackathon])
	assert.Zero(t, counts[CategoryMeetings])

	r, ok := c.Lookup("gallery/b-stage.jpg")
	require.True(t, ok)
	assert.Equal(t, "B Stage", r.Title)
	_, ok = c.Lookup("gallery/missing.jpg")
	assert.False(t, ok)
}

func TestCatalogReturnsCopies(t *testing.T) {
	c, err := Load(testFS(), PrefixResolver{Base: "/assets"})
	require.NoError(t, err)

	g := c.Gallery()
	g[0].Title = "mutated"
	assert.NotEqual(t, "mutated", c.Gallery()[0].Title)
}
