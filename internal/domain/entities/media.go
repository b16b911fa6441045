package entities

import "path"

// MediaTarget names the record type an attachment belongs to
type MediaTarget string

const (
	MediaTargetProfile       MediaTarget = "profile"
	MediaTargetProject       MediaTarget = "project"
	MediaTargetSkillCategory MediaTarget = "skill_category"
	MediaTargetSkill         MediaTarget = "skill"
	MediaTargetCertification MediaTarget = "certification"
)

// AttachmentField is the column name of an optional file attachment
type AttachmentField string

const (
	FieldProfileImage     AttachmentField = "profile_image"
	FieldBackgroundImage  AttachmentField = "background_image"
	FieldResume           AttachmentField = "resume"
	FieldVideo            AttachmentField = "video"
	FieldImage            AttachmentField = "image"
	FieldIcon             AttachmentField = "icon"
	FieldCertificateImage AttachmentField = "certificate_image"
	FieldCertificateFile  AttachmentField = "certificate_file"
)

var uploadDirs = map[AttachmentField]string{
	FieldProfileImage:     "profile",
	FieldBackgroundImage:  "backgrounds",
	FieldResume:           "resumes",
	FieldVideo:            "project_videos",
	FieldImage:            "project_images",
	FieldIcon:             "skill_icons",
	FieldCertificateImage: "certificates",
	FieldCertificateFile:  "certificates",
}

var targetFields = map[MediaTarget][]AttachmentField{
	MediaTargetProfile:       {FieldProfileImage, FieldBackgroundImage, FieldResume},
	MediaTargetProject:       {FieldVideo, FieldImage},
	MediaTargetSkillCategory: {FieldIcon},
	MediaTargetSkill:         {FieldIcon},
	MediaTargetCertification: {FieldCertificateImage, FieldCertificateFile},
}

// StorageKey returns the media-relative path a file is stored under, e.g. "certificates/yip.jpg"
func (f AttachmentField) StorageKey(filename string) string {
	return path.Join(uploadDirs[f], path.Base(filename))
}

// Supports reports whether the target type has the given attachment field
func (t MediaTarget) Supports(f AttachmentField) bool {
	for _, field := range targetFields[t] {
		if field == f {
			return true
		}
	}
	return false
}

// MediaAssignment maps one source file onto one record attachment.
// Key is the record's identity: empty for the active profile, the title for projects and
// certifications, the name for categories and "Category/Skill" for skills.
type MediaAssignment struct {
	Target   MediaTarget     `json:"target"`
	Key      string          `json:"key"`
	Field    AttachmentField `json:"field"`
	Filename string          `json:"filename"`
}

type MediaPlan []MediaAssignment

// MediaStatus is the per-assignment outcome of a media import
type MediaStatus string

const (
	MediaAttached      MediaStatus = "attached"
	MediaAlreadySet    MediaStatus = "already_set"
	MediaSourceMissing MediaStatus = "source_missing"
	MediaRecordMissing MediaStatus = "record_missing"
	MediaFailed        MediaStatus = "failed"
)

type MediaResult struct {
	Assignment MediaAssignment `json:"assignment"`
	Status     MediaStatus     `json:"status"`
	Path       string          `json:"path,omitempty"`
	Error      string          `json:"error,omitempty"`
}

type MediaReport struct {
	Results []MediaResult `json:"results"`
}

func (r *MediaReport) Count(status MediaStatus) int {
	n := 0
	for _, res := range r.Results {
		if res.Status == status {
			n++
		}
	}
	return n
}
