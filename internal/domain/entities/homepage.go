package entities

// HomepageView is the read-only aggregate rendered on the public page.
// Profile is nil when no profile exists yet.
type HomepageView struct {
	Profile         *Profile         `json:"profile"`
	Educations      []*Education     `json:"educations"`
	Projects        []*Project       `json:"projects"`
	SkillCategories []*SkillCategory `json:"skillCategories"`
	Certifications  []*Certification `json:"certifications"`
}

// HasProfile reports whether the page has a profile to show
func (v *HomepageView) HasProfile() bool {
	return v != nil && v.Profile != nil
}
