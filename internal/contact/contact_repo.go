package contact

import (
	"errors"

	"gorm.io/gorm"

	"github.com/bicamihai/ContactsApi/internal/models"
)

type ContactRepository interface {
	GetContactsByUser(userID uint) ([]models.Contact, error)
	// GetContactForUser is the ownership guard every contact-scoped operation
	// goes through: a contact owned by another user reads as absent.
	GetContactForUser(id, userID uint) (*models.Contact, error)
	CreateContact(contact *models.Contact) error
	UpdateContact(contact *models.Contact) (int64, error)
	DeleteContact(id uint) error
	GetContactSkills(contactID uint) ([]ContactSkillResponse, error)
}

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new instance of ContactRepository.
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) GetContactsByUser(userID uint) ([]models.Contact, error) {
	var contacts []models.Contact
	err := r.db.Where("user_id = ?", userID).Order("id ASC").Find(&contacts).Error
	return contacts, err
}

func (r *contactRepository) GetContactForUser(id, userID uint) (*models.Contact, error) {
	var contact models.Contact
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&contact).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &contact, nil
}

func (r *contactRepository) CreateContact(contact *models.Contact) error {
	return r.db.Create(contact).Error
}

// UpdateContact overwrites the editable fields of the row identified by
// contact.ID and reports how many rows the statement touched. Zero rows means
// the contact disappeared between the read and the write.
func (r *contactRepository) UpdateContact(contact *models.Contact) (int64, error) {
	res := r.db.Model(&models.Contact{}).
		Where("id = ?", contact.ID).
		Select("first_name", "last_name", "address", "email", "mobile_phone_number").
		Updates(contact)
	return res.RowsAffected, res.Error
}

// DeleteContact removes the contact and its ContactSkill rows in one
// transaction, reproducing the cascade the schema declares.
func (r *contactRepository) DeleteContact(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("contact_id = ?", id).Delete(&models.ContactSkill{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Contact{}, id).Error
	})
}

func (r *contactRepository) GetContactSkills(contactID uint) ([]ContactSkillResponse, error) {
	var rows []ContactSkillResponse
	err := r.db.Table("contact_skills").
		Select("contact_skills.skill_id AS skill_id, skills.name AS skill_name, skills.skill_code AS skill_code, skill_levels.level_code AS level_code, skill_levels.level_description AS level_description").
		Joins("JOIN skills ON skills.id = contact_skills.skill_id AND skills.deleted_at IS NULL").
		Joins("LEFT JOIN skill_levels ON skill_levels.id = contact_skills.skill_level_id").
		Where("contact_skills.contact_id = ?", contactID).
		Order("contact_skills.skill_id ASC").
		Scan(&rows).Error
	return rows, err
}
