package entities

import (
	"bytes"
	"cmp"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Default display orderings. Each comparator is total: the last key is always the record ID,
// which is a UUIDv7 and therefore follows insertion order.

// CompareProfiles puts the oldest profile first; that profile is the active one.
func CompareProfiles(a, b *Profile) int {
	if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
		return c
	}
	return compareIDs(a.ID, b.ID)
}

// CompareEducation orders by end year descending with a null end year after every
// concrete year, then start year descending, then insertion order.
func CompareEducation(a, b *Education) int {
	if c := compareNullIntDesc(a.EndYear, b.EndYear); c != 0 {
		return c
	}
	if c := cmp.Compare(b.StartYear, a.StartYear); c != 0 {
		return c
	}
	return compareInsertion(a.CreatedAt, b.CreatedAt, a.ID, b.ID)
}

// CompareProjects orders by order ascending, then newest first.
func CompareProjects(a, b *Project) int {
	if c := cmp.Compare(a.Order, b.Order); c != 0 {
		return c
	}
	if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
		return c
	}
	return compareIDs(b.ID, a.ID)
}

func CompareSkillCategories(a, b *SkillCategory) int {
	if c := cmp.Compare(a.Order, b.Order); c != 0 {
		return c
	}
	return compareInsertion(a.CreatedAt, b.CreatedAt, a.ID, b.ID)
}

// CompareSkills orders skills of one category: order ascending, ties by insertion order.
func CompareSkills(a, b *Skill) int {
	if c := cmp.Compare(a.Order, b.Order); c != 0 {
		return c
	}
	return compareInsertion(a.CreatedAt, b.CreatedAt, a.ID, b.ID)
}

// CompareSkillsByCategory orders a flat skill list by the rank of its category first.
// Skills whose category is missing from rank sort last.
func CompareSkillsByCategory(rank map[uuid.UUID]int) func(a, b *Skill) int {
	return func(a, b *Skill) int {
		ra, okA := rank[a.CategoryID]
		rb, okB := rank[b.CategoryID]
		switch {
		case okA && !okB:
			return -1
		case !okA && okB:
			return 1
		}
		if c := cmp.Compare(ra, rb); c != 0 {
			return c
		}
		return CompareSkills(a, b)
	}
}

// CompareCertifications orders by order ascending, then issue date descending with
// undated certifications last, then insertion order.
func CompareCertifications(a, b *Certification) int {
	if c := cmp.Compare(a.Order, b.Order); c != 0 {
		return c
	}
	if c := compareNullTimeDesc(a.IssueDate, b.IssueDate); c != 0 {
		return c
	}
	return compareInsertion(a.CreatedAt, b.CreatedAt, a.ID, b.ID)
}

// CompareContactMessages puts the newest message first.
func CompareContactMessages(a, b *ContactMessage) int {
	if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
		return c
	}
	return compareIDs(b.ID, a.ID)
}

func SortEducations(items []*Education)          { slices.SortStableFunc(items, CompareEducation) }
func SortProjects(items []*Project)              { slices.SortStableFunc(items, CompareProjects) }
func SortSkillCategories(items []*SkillCategory) { slices.SortStableFunc(items, CompareSkillCategories) }
func SortSkills(items []*Skill)                  { slices.SortStableFunc(items, CompareSkills) }
func SortCertifications(items []*Certification)  { slices.SortStableFunc(items, CompareCertifications) }
func SortContactMessages(items []*ContactMessage) {
	slices.SortStableFunc(items, CompareContactMessages)
}

func compareNullIntDesc(a, b null.Int) int {
	switch {
	case a.Valid && b.Valid:
		return cmp.Compare(b.Int, a.Int)
	case a.Valid:
		return -1
	case b.Valid:
		return 1
	}
	return 0
}

func compareNullTimeDesc(a, b null.Time) int {
	switch {
	case a.Valid && b.Valid:
		return b.Time.Compare(a.Time)
	case a.Valid:
		return -1
	case b.Valid:
		return 1
	}
	return 0
}

func compareInsertion(ta, tb time.Time, ia, ib uuid.UUID) int {
	if c := ta.Compare(tb); c != 0 {
		return c
	}
	return compareIDs(ia, ib)
}

func compareIDs(a, b uuid.UUID) int {
	return bytes.Compare(a[:], b[:])
}
