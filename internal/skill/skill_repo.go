package skill

import (
	"errors"

	"gorm.io/gorm"

	"github.com/bicamihai/ContactsApi/internal/models"
)

type SkillRepository interface {
	GetAllSkills() ([]models.Skill, error)
	GetSkillByID(id uint) (*models.Skill, error)
	CreateSkill(skill *models.Skill) error
	UpdateSkill(skill *models.Skill) (int64, error)
	DeleteSkill(id uint) error

	GetAllSkillLevels() ([]models.SkillLevel, error)
	GetSkillLevelByCode(levelCode int) (*models.SkillLevel, error)

	GetContactSkill(contactID, skillID uint) (*models.ContactSkill, error)
	CreateContactSkill(contactSkill *models.ContactSkill) error
	UpdateContactSkillLevel(contactID, skillID, skillLevelID uint) (int64, error)
}

type skillRepository struct {
	db *gorm.DB
}

// NewSkillRepository creates a new instance of SkillRepository.
func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &skillRepository{db: db}
}

// --- Skill methods ---

func (r *skillRepository) GetAllSkills() ([]models.Skill, error) {
	var skills []models.Skill
	err := r.db.Order("id ASC").Find(&skills).Error
	return skills, err
}

func (r *skillRepository) GetSkillByID(id uint) (*models.Skill, error) {
	var skill models.Skill
	err := r.db.First(&skill, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &skill, nil
}

func (r *skillRepository) CreateSkill(skill *models.Skill) error {
	return r.db.Create(skill).Error
}

// UpdateSkill overwrites the editable fields and reports rows touched; zero
// rows means the skill was deleted concurrently.
func (r *skillRepository) UpdateSkill(skill *models.Skill) (int64, error) {
	res := r.db.Model(&models.Skill{}).
		Where("id = ?", skill.ID).
		Select("skill_code", "name").
		Updates(skill)
	return res.RowsAffected, res.Error
}

// DeleteSkill removes the skill and every ContactSkill row referencing it in
// one transaction.
func (r *skillRepository) DeleteSkill(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("skill_id = ?", id).Delete(&models.ContactSkill{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Skill{}, id).Error
	})
}

// --- SkillLevel methods ---

func (r *skillRepository) GetAllSkillLevels() ([]models.SkillLevel, error) {
	var levels []models.SkillLevel
	err := r.db.Order("level_code ASC").Find(&levels).Error
	return levels, err
}

func (r *skillRepository) GetSkillLevelByCode(levelCode int) (*models.SkillLevel, error) {
	var level models.SkillLevel
	err := r.db.Where("level_code = ?", levelCode).First(&level).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &level, nil
}

// --- ContactSkill methods ---

func (r *skillRepository) GetContactSkill(contactID, skillID uint) (*models.ContactSkill, error) {
	var contactSkill models.ContactSkill
	err := r.db.Where("contact_id = ? AND skill_id = ?", contactID, skillID).First(&contactSkill).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &contactSkill, nil
}

func (r *skillRepository) CreateContactSkill(contactSkill *models.ContactSkill) error {
	return r.db.Create(contactSkill).Error
}

func (r *skillRepository) UpdateContactSkillLevel(contactID, skillID, skillLevelID uint) (int64, error) {
	res := r.db.Model(&models.ContactSkill{}).
		Where("contact_id = ? AND skill_id = ?", contactID, skillID).
		Update("skill_level_id", skillLevelID)
	return res.RowsAffected, res.Error
}
