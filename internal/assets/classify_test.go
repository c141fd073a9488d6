package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTitle(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"boilerplate prefix", "CertificateOfCompletion_some-file_name.png", "Some File Name"},
		{"runs of separators", "cloud--basics__part_2.jpg", "Cloud Basics Part 2"},
		{"whitespace collapsed", "  my   award .webp", "My Award"},
		{"keeps inner capitals", "IoT-weather_station.pdf", "IoT Weather Station"},
		{"only last extension", "report.final.pdf", "Report.Final"},
		{"no extension", "hackathon_winner", "Hackathon Winner"},
		{"prefix only stripped at start", "My_CertificateOfCompletion_x.png", "My CertificateOfCompletion X"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTitle(tt.in))
		})
	}
}

func TestDeriveCategoryRecognizedToken(t *testing.T) {
	for _, category := range Categories {
		path := "certificates/" + string(category) + "/cert.png"
		assert.Equal(t, category, DeriveCategory(path), path)
	}
}

func TestDeriveCategoryParticipation(t *testing.T) {
	assert.Equal(t, CategoryHackathon, DeriveCategory("certificates/participation/hackathon/smart-india.png"))
	assert.Equal(t, CategoryWorkshop, DeriveCategory("assets/certificates/participation/workshop/iot.pdf"))
	assert.Equal(t, CategoryOther, DeriveCategory("certificates/participation/sports/run.png"))
	assert.Equal(t, CategoryOther, DeriveCategory("certificates/participation"))
}

func TestDeriveCategoryMalformed(t *testing.T) {
	paths := []string{
		"",
		"gallery/photo.jpg",
		"linkedin/cert.png",
		"certificates",
		"assets/certificates",
		"certificates/unknown/cert.png",
		"certificates/LinkedIn/cert.png",
	}
	for _, p := range paths {
		require.NotPanics(t, func() { DeriveCategory(p) })
		assert.Equal(t, CategoryOther, DeriveCategory(p), p)
	}
}

func TestClassify(t *testing.T) {
	r := Classify("certificates/coursera/CertificateOfCompletion_machine-learning.pdf", "/assets/x.pdf")

	assert.Equal(t, "Machine Learning", r.Title)
	assert.Equal(t, CategoryCoursera, r.Category)
	assert.Equal(t, KindCertificate, r.Kind)
	assert.Equal(t, "/assets/x.pdf", r.Ref)
	assert.True(t, r.IsPDF())
	assert.Equal(t, "Coursera", r.Meta().Label)
}

func TestClassifyMalformedKeepsBestEffortTitle(t *testing.T) {
	r := Classify("stray_file-name.png", "ref")

	assert.Equal(t, CategoryOther, r.Category)
	assert.Equal(t, "Stray File Name", r.Title)
	assert.False(t, r.IsPDF())
}

func TestClassifyGalleryIsUntyped(t *testing.T) {
	r := ClassifyGallery("gallery/team_photo.jpg", "/assets/gallery/team_photo.jpg")

	assert.Equal(t, CategoryNone, r.Category)
	assert.Equal(t, KindGallery, r.Kind)
	assert.Equal(t, "Team Photo", r.Title)
}

func TestParseCategory(t *testing.T) {
	c, ok := ParseCategory("meetings")
	assert.True(t, ok)
	assert.Equal(t, CategoryMeetings, c)

	for _, key := range []string{"", "all", "toString", "Other"} {
		_, ok := ParseCategory(key)
		assert.False(t, ok, key)
	}
}

func TestMetaFallsBackToOther(t *testing.T) {
	assert.Equal(t, CategoryOther.Meta(), Category("nope").Meta())
	assert.Equal(t, "LinkedIn Learning", CategoryLinkedIn.Meta().Issuer)
}
