package upload

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/shub-dev/portfolio/internal/storage"
)

type memStore struct {
	objects map[string][]byte
	failOn  map[string]error
}

func (s *memStore) Put(_ context.Context, remote string, body []byte, _ string) error {
	if err := s.failOn[remote]; err != nil {
		return err
	}
	if s.objects == nil {
		s.objects = map[string][]byte{}
	}
	s.objects[remote] = body
	return nil
}

func (s *memStore) PublicURL(_ context.Context, remote string) (string, error) {
	return "https://cdn.example.com/" + remote, nil
}

type memLedger struct{ uploads []storage.Upload }

func (l *memLedger) RecordUpload(_ context.Context, u storage.Upload) error {
	l.uploads = append(l.uploads, u)
	return nil
}

func fakeFiles(files map[string]string) func(string) ([]byte, error) {
	return func(name string) ([]byte, error) {
		data, ok := files[name]
		if !ok {
			return nil, os.ErrNotExist
		}
		return []byte(data), nil
	}
}

func TestRunnerContinuesAfterFailures(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	store := &memStore{failOn: map[string]error{"b.jpg": errors.New("quota exceeded")}}
	ledger := &memLedger{}
	r := &Runner{
		Store:    store,
		Ledger:   ledger,
		Logger:   zap.New(core),
		ReadFile: fakeFiles(map[string]string{"a": "AAA", "b": "BB", "d": "D"}),
	}

	report := r.Run(context.Background(), []Mapping{
		{Local: "a", Remote: "a.jpg"},
		{Local: "b", Remote: "b.jpg"},
		{Local: "c", Remote: "c.jpg"},
		{Local: "d", Remote: "gallery/d.jpg"},
	})

	require.Len(t, report.Uploaded, 2)
	assert.Equal(t, "https://cdn.example.com/a.jpg", report.Uploaded[0].URL)
	assert.EqualValues(t, 3, report.Uploaded[0].Size)
	assert.Equal(t, "gallery/d.jpg", report.Uploaded[1].Remote)

	require.Len(t, report.Failed, 2)
	assert.Equal(t, "b", report.Failed[0].Local)
	assert.ErrorContains(t, report.Failed[0].Err, "quota exceeded")
	assert.ErrorIs(t, report.Failed[1].Err, os.ErrNotExist)

	require.Len(t, ledger.uploads, 2)
	assert.Equal(t, "d", ledger.uploads[1].LocalPath)
	assert.Equal(t, "https://cdn.example.com/gallery/d.jpg", ledger.uploads[1].PublicURL)

	assert.Equal(t, 2, logs.FilterMessage("Failed to upload").Len())
	assert.Equal(t, 2, logs.FilterMessage("Uploaded").Len())
}

func TestRunnerStopsWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := &Runner{Store: &memStore{}, ReadFile: fakeFiles(map[string]string{"a": "A"})}

	report := r.Run(ctx, []Mapping{{Local: "a", Remote: "a"}, {Local: "a", Remote: "b"}})
	assert.Empty(t, report.Uploaded)
	require.Len(t, report.Failed, 2)
	assert.ErrorIs(t, report.Failed[0].Err, context.Canceled)
}

func TestHTTPStore(t *testing.T) {
	var gotPath, gotAuth, gotType, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/bucket/denied.jpg" {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		body, _ := io.ReadAll(r.Body)
		gotPath, gotAuth, gotType, gotBody = r.URL.Path, r.Header.Get("Authorization"), r.Header.Get("Content-Type"), string(body)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	s := NewHTTPStore(srv.URL+"/bucket", "t0ken", "https://cdn.example.com/")
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "gallery/IMG_1.jpg", []byte("jpeg"), "image/jpeg"))
	assert.Equal(t, "/bucket/gallery/IMG_1.jpg", gotPath)
	assert.Equal(t, "Bearer t0ken", gotAuth)
	assert.Equal(t, "image/jpeg", gotType)
	assert.Equal(t, "jpeg", gotBody)

	err := s.Put(ctx, "denied.jpg", []byte("x"), "")
	assert.ErrorContains(t, err, "status 403")

	url, err := s.PublicURL(ctx, "about/winning.jpg")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/about/winning.jpg", url)

	s.PublicBase = ""
	url, err = s.PublicURL(ctx, "profile.jpg")
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/bucket/profile.jpg", url)
}

func TestDirStore(t *testing.T) {
	root := t.TempDir()
	s := DirStore{Root: root, PublicBase: "/uploads/"}
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "../../gallery/a.jpg", []byte("a"), ""))
	data, err := os.ReadFile(filepath.Join(root, "gallery", "a.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "a", string(data))

	url, err := s.PublicURL(ctx, "gallery/a.jpg")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/gallery/a.jpg", url)

	assert.Error(t, s.Put(ctx, " ", nil, ""))
}

func TestManifest(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"IMG_2.jpg", "IMG_1.jpg", "cover.png"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(name), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "IMG_dir"), 0o755))

	m, err := ParseManifest([]byte(`
files:
  - local: public/profile-pic/shub.jpeg
    remote: profile.jpg
directories:
  - dir: ` + dir + `
    prefix: IMG_
    remote: gallery
  - dir: ` + filepath.Join(dir, "missing") + `
`))
	require.NoError(t, err)

	mappings, err := m.Expand()
	assert.Error(t, err, "missing directory is reported")
	assert.Equal(t, []Mapping{
		{Local: "public/profile-pic/shub.jpeg", Remote: "profile.jpg"},
		{Local: filepath.Join(dir, "IMG_1.jpg"), Remote: "gallery/IMG_1.jpg"},
		{Local: filepath.Join(dir, "IMG_2.jpg"), Remote: "gallery/IMG_2.jpg"},
	}, mappings)
}

func TestParseManifestValidates(t *testing.T) {
	_, err := ParseManifest([]byte("files:\n  - local: a\n"))
	assert.ErrorContains(t, err, "files[0]")

	_, err = ParseManifest([]byte("directories:\n  - prefix: IMG_\n"))
	assert.ErrorContains(t, err, "directories[0]")

	_, err = ParseManifest([]byte("files: {"))
	assert.Error(t, err)
}

func TestDefaultManifest(t *testing.T) {
	m := DefaultManifest("assets/gallery")
	assert.Len(t, m.Files, 2)
	require.Len(t, m.Directories, 1)
	assert.Equal(t, "IMG_", m.Directories[0].Prefix)
}

func TestLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "upload.lock")

	unlock, err := Lock(path)
	require.NoError(t, err)

	_, err = Lock(path)
	assert.ErrorIs(t, err, ErrLocked)

	require.NoError(t, unlock())
	unlock, err = Lock(path)
	require.NoError(t, err)
	require.NoError(t, unlock())
}
