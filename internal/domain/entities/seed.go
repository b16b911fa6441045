package entities

// SeedKind names the record type a seed item belongs to
type SeedKind string

const (
	SeedKindProfile       SeedKind = "profile"
	SeedKindEducation     SeedKind = "education"
	SeedKindSkillCategory SeedKind = "skill_category"
	SeedKindSkill         SeedKind = "skill"
	SeedKindProject       SeedKind = "project"
	SeedKindCertification SeedKind = "certification"
)

// SeedItem records whether one fixture was inserted or found already present
type SeedItem struct {
	Kind    SeedKind `json:"kind"`
	Key     string   `json:"key"`
	Created bool     `json:"created"`
}

// SeedReport lists every fixture visited by a seed run
type SeedReport struct {
	Items []SeedItem `json:"items"`
}

func (r *SeedReport) Record(kind SeedKind, key string, created bool) {
	r.Items = append(r.Items, SeedItem{Kind: kind, Key: key, Created: created})
}

func (r *SeedReport) CreatedCount() int {
	n := 0
	for _, item := range r.Items {
		if item.Created {
			n++
		}
	}
	return n
}

func (r *SeedReport) ExistingCount() int {
	return len(r.Items) - r.CreatedCount()
}

// CreatedKeys returns the keys of the fixtures of one kind inserted by this run
func (r *SeedReport) CreatedKeys(kind SeedKind) []string {
	var keys []string
	for _, item := range r.Items {
		if item.Kind == kind && item.Created {
			keys = append(keys, item.Key)
		}
	}
	return keys
}

// BootstrapOutcome is the result of a bootstrap attempt
type BootstrapOutcome string

const (
	BootstrapRejected      BootstrapOutcome = "rejected"
	BootstrapAlreadySeeded BootstrapOutcome = "already_seeded"
	BootstrapSeeded        BootstrapOutcome = "seeded"
)
