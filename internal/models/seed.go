package models

import (
	"log"

	"gorm.io/gorm"
)

// Reference rows created at schema initialization, mirroring the level codes
// the API validates against.
var defaultSkillLevels = []SkillLevel{
	{LevelCode: 1, LevelDescription: "Beginner"},
	{LevelCode: 2, LevelDescription: "Intermediate"},
	{LevelCode: 3, LevelDescription: "Advanced"},
}

var defaultSkills = []Skill{
	{SkillCode: 1, Name: "DrinkingBeer"},
	{SkillCode: 2, Name: "RidingBike"},
	{SkillCode: 3, Name: "SingingKaraoke"},
}

// SeedReferenceData inserts the fixed SkillLevel rows and the starter skills
// if they are not present yet. Safe to run on every startup.
func SeedReferenceData(db *gorm.DB) error {
	for _, level := range defaultSkillLevels {
		var count int64
		if err := db.Model(&SkillLevel{}).Where("level_code = ?", level.LevelCode).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			if err := db.Create(&level).Error; err != nil {
				return err
			}
			log.Printf("Seeded skill level %d (%s)", level.LevelCode, level.LevelDescription)
		}
	}

	for _, skill := range defaultSkills {
		var count int64
		if err := db.Model(&Skill{}).Where("skill_code = ?", skill.SkillCode).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			if err := db.Create(&skill).Error; err != nil {
				return err
			}
			log.Printf("Seeded skill %q", skill.Name)
		}
	}

	return nil
}
