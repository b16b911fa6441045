package models

import "gorm.io/gorm"

// All returns every persisted model in dependency order
func All() []interface{} {
	return []interface{}{
		&Profile{},
		&Education{},
		&Project{},
		&SkillCategory{},
		&Skill{},
		&Certification{},
		&ContactMessage{},
	}
}

// AutoMigrate creates or updates the portfolio tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(All()...)
}
