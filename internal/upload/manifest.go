package upload

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Mapping sends one local file to one remote path.
type Mapping struct {
	Local  string `yaml:"local"`
	Remote string `yaml:"remote"`
}

// DirectoryMapping sends every file in Dir whose name starts with Prefix to
// Remote/<name>.
type DirectoryMapping struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
	Remote string `yaml:"remote"`
}

// Manifest lists what the upload command publishes.
type Manifest struct {
	Files       []Mapping          `yaml:"files"`
	Directories []DirectoryMapping `yaml:"directories"`
}

// DefaultManifest is used when no manifest file is configured: the profile
// picture, the about-me image and every IMG_ photo of the gallery.
func DefaultManifest(galleryDir string) Manifest {
	return Manifest{
		Files: []Mapping{
			{Local: "public/profile-pic/shub.jpeg", Remote: "profile.jpg"},
			{Local: "public/gallery/about me/winning .jpeg", Remote: "about/winning.jpg"},
		},
		Directories: []DirectoryMapping{
			{Dir: galleryDir, Prefix: "IMG_", Remote: "gallery"},
		},
	}
}

// ParseManifest decodes a YAML manifest.
func ParseManifest(data []byte) (Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("parse manifest: %w", err)
	}
	for i, f := range m.Files {
		if strings.TrimSpace(f.Local) == "" || strings.TrimSpace(f.Remote) == "" {
			return Manifest{}, fmt.Errorf("parse manifest: files[%d] needs local and remote", i)
		}
	}
	for i, d := range m.Directories {
		if strings.TrimSpace(d.Dir) == "" {
			return Manifest{}, fmt.Errorf("parse manifest: directories[%d] needs dir", i)
		}
	}
	return m, nil
}

// LoadManifest reads and decodes the manifest at path.
func LoadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("read manifest: %w", err)
	}
	return ParseManifest(data)
}

// Expand flattens the manifest into mappings, explicit files first. An
// unreadable directory is reported in the returned error while the rest of
// the manifest is still expanded.
func (m Manifest) Expand() ([]Mapping, error) {
	out := append([]Mapping(nil), m.Files...)
	var errs []error
	for _, d := range m.Directories {
		entries, err := os.ReadDir(d.Dir)
		if err != nil {
			errs = append(errs, fmt.Errorf("read %s: %w", d.Dir, err))
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasPrefix(entry.Name(), d.Prefix) {
				continue
			}
			out = append(out, Mapping{
				Local:  filepath.Join(d.Dir, entry.Name()),
				Remote: path.Join(d.Remote, entry.Name()),
			})
		}
	}
	return out, errors.Join(errs...)
}
