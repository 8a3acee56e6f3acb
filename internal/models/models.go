package models

import (
	"gorm.io/gorm"
)

// Contact is a person record owned by exactly one application user.
type Contact struct {
	gorm.Model
	FirstName         string `json:"first_name" gorm:"not null"`
	LastName          string `json:"last_name" gorm:"not null"`
	Address           string `json:"address"`
	Email             string `json:"email"`
	MobilePhoneNumber string `json:"mobile_phone_number"`
	UserID            uint   `json:"user_id" gorm:"index;not null"`

	ContactSkills []ContactSkill `json:"-" gorm:"foreignKey:ContactID;constraint:OnDelete:CASCADE"`
}

// FullName is derived on read and never persisted.
func (c *Contact) FullName() string {
	return c.FirstName + " " + c.LastName
}

// Skill is a global taxonomy entry, not scoped to any user.
type Skill struct {
	gorm.Model
	SkillCode int    `json:"skill_code" gorm:"index"`
	Name      string `json:"name" gorm:"not null"`

	ContactSkills []ContactSkill `json:"-" gorm:"foreignKey:SkillID;constraint:OnDelete:CASCADE"`
}

// SkillLevel is fixed reference data describing proficiency tiers. Rows are
// seeded once and never mutated through the API.
type SkillLevel struct {
	gorm.Model
	LevelCode        int    `json:"level_code" gorm:"uniqueIndex;not null"`
	LevelDescription string `json:"level_description" gorm:"not null"`
}

// ContactSkill records that a contact has a skill at a given level. The
// composite key guarantees at most one assignment per (contact, skill) pair.
type ContactSkill struct {
	ContactID    uint  `json:"contact_id" gorm:"primaryKey;autoIncrement:false"`
	SkillID      uint  `json:"skill_id" gorm:"primaryKey;autoIncrement:false"`
	SkillLevelID *uint `json:"skill_level_id"`

	Skill      Skill       `json:"-" gorm:"foreignKey:SkillID"`
	SkillLevel *SkillLevel `json:"-" gorm:"foreignKey:SkillLevelID;constraint:OnDelete:RESTRICT"`
}
