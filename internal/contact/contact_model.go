package contact

import (
	"github.com/bicamihai/ContactsApi/internal/models"
)

// --- DTOs (Data Transfer Objects) for requests/responses ---

type ContactRequest struct {
	FirstName         string `json:"first_name" binding:"required,max=100"`
	LastName          string `json:"last_name" binding:"required,max=100"`
	Address           string `json:"address" binding:"required,max=255"`
	Email             string `json:"email" binding:"required,email"`
	MobilePhoneNumber string `json:"mobile_phone_number" binding:"omitempty,e164|numeric,max=20"`
}

type ContactResponse struct {
	ID                uint   `json:"id"`
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	FullName          string `json:"full_name"`
	Address           string `json:"address"`
	Email             string `json:"email"`
	MobilePhoneNumber string `json:"mobile_phone_number"`
}

// ContactSkillResponse is a ContactSkill row flattened with the skill name and
// level description it references.
type ContactSkillResponse struct {
	SkillID          uint    `json:"skill_id"`
	SkillName        string  `json:"skill_name"`
	SkillCode        int     `json:"skill_code"`
	LevelCode        *int    `json:"level_code"`
	LevelDescription *string `json:"level_description"`
}

// FilterContactRecord maps a persistence entity to its response shape.
// FullName is computed here, never stored.
func FilterContactRecord(contact *models.Contact) ContactResponse {
	return ContactResponse{
		ID:                contact.ID,
		FirstName:         contact.FirstName,
		LastName:          contact.LastName,
		FullName:          contact.FullName(),
		Address:           contact.Address,
		Email:             contact.Email,
		MobilePhoneNumber: contact.MobilePhoneNumber,
	}
}

func applyContactRequest(contact *models.Contact, req *ContactRequest) {
	contact.FirstName = req.FirstName
	contact.LastName = req.LastName
	contact.Address = req.Address
	contact.Email = req.Email
	contact.MobilePhoneNumber = req.MobilePhoneNumber
}
