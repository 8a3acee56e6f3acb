package models

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Contact{}, &Skill{}, &SkillLevel{}, &ContactSkill{}))
	return db
}

func TestSeedReferenceData_IsIdempotent(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, SeedReferenceData(db))
	require.NoError(t, SeedReferenceData(db))

	var levels int64
	require.NoError(t, db.Model(&SkillLevel{}).Count(&levels).Error)
	assert.Equal(t, int64(3), levels)

	var skills int64
	require.NoError(t, db.Model(&Skill{}).Count(&skills).Error)
	assert.Equal(t, int64(3), skills)
}

func TestSeedReferenceData_LevelCodes(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, SeedReferenceData(db))

	var got []SkillLevel
	require.NoError(t, db.Order("level_code ASC").Find(&got).Error)
	require.Len(t, got, 3)
	assert.Equal(t, "Beginner", got[0].LevelDescription)
	assert.Equal(t, "Intermediate", got[1].LevelDescription)
	assert.Equal(t, "Advanced", got[2].LevelDescription)
}

func TestContactFullName(t *testing.T) {
	c := Contact{FirstName: "Ann", LastName: "Smith"}
	assert.Equal(t, "Ann Smith", c.FullName())
}
