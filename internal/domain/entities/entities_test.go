package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/volatiletech/null/v8"
)

func TestProject_TechnologyList(t *testing.T) {
	p := &Project{Technologies: "HTML, CSS ,, JavaScript, "}
	assert.Equal(t, []string{"HTML", "CSS", "JavaScript"}, p.TechnologyList())
	assert.Empty(t, (&Project{}).TechnologyList())
}

func TestEducation_Period(t *testing.T) {
	assert.Equal(t, "2021 - 2025", (&Education{StartYear: 2021, EndYear: null.IntFrom(2025)}).Period())
	assert.Equal(t, "2019 - Present", (&Education{StartYear: 2019}).Period())
}

func TestAttachmentField_StorageKey(t *testing.T) {
	assert.Equal(t, "certificates/yip.jpg", FieldCertificateImage.StorageKey("yip.jpg"))
	assert.Equal(t, "resumes/cv.pdf", FieldResume.StorageKey("../../etc/cv.pdf"))
	assert.Equal(t, "project_videos/demo.mp4", FieldVideo.StorageKey("demo.mp4"))
}

func TestMediaTarget_Supports(t *testing.T) {
	assert.True(t, MediaTargetProfile.Supports(FieldResume))
	assert.False(t, MediaTargetProfile.Supports(FieldVideo))
	assert.True(t, MediaTargetSkill.Supports(FieldIcon))
}

func TestSeedReport_Counts(t *testing.T) {
	var r SeedReport
	r.Record(SeedKindProject, "a", true)
	r.Record(SeedKindProject, "b", false)
	r.Record(SeedKindSkill, "c", true)
	assert.Equal(t, 2, r.CreatedCount())
	assert.Equal(t, 1, r.ExistingCount())
	assert.Equal(t, []string{"a"}, r.CreatedKeys(SeedKindProject))
}

func TestHomepageView_HasProfile(t *testing.T) {
	var nilView *HomepageView
	assert.False(t, nilView.HasProfile())
	assert.False(t, (&HomepageView{}).HasProfile())
	assert.True(t, (&HomepageView{Profile: &Profile{}}).HasProfile())
}
