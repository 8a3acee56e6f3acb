package contact

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bicamihai/ContactsApi/config"
	"github.com/bicamihai/ContactsApi/internal/middleware"
	"github.com/bicamihai/ContactsApi/internal/models"
	"github.com/bicamihai/ContactsApi/pkg/responses"
	"github.com/bicamihai/ContactsApi/pkg/validator"
)

// ContactController handles API requests related to contacts.
type ContactController struct {
	repo   ContactRepository
	config *config.Config
}

// NewContactController creates a new ContactController.
func NewContactController(repo ContactRepository, cfg *config.Config) *ContactController {
	return &ContactController{
		repo:   repo,
		config: cfg,
	}
}

// GetContacts godoc
// @Summary Get all contacts of the signed in user
// @Description Returns the contacts owned by the authenticated caller
// @Tags Contacts
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]ContactResponse}
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /contacts [get]
// @Security BearerAuth
func (cc *ContactController) GetContacts(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	contacts, err := cc.repo.GetContactsByUser(userID)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve contacts")
		return
	}

	contactList := make([]ContactResponse, 0, len(contacts))
	for i := range contacts {
		contactList = append(contactList, FilterContactRecord(&contacts[i]))
	}

	responses.SendSuccess(c, http.StatusOK, "Contacts retrieved successfully", contactList)
}

// GetContact godoc
// @Summary Get a contact by ID
// @Description Returns a single contact owned by the caller
// @Tags Contacts
// @Produce json
// @Param contact_id path int true "Contact ID"
// @Success 200 {object} responses.SuccessResponse{data=ContactResponse}
// @Failure 400 {object} responses.ErrorResponse "Invalid contact ID"
// @Failure 404 {object} responses.ErrorResponse "Contact not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /contacts/{contact_id} [get]
// @Security BearerAuth
func (cc *ContactController) GetContact(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	contactID, err := strconv.ParseUint(c.Param("contact_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid contact ID format")
		return
	}

	contact, err := cc.repo.GetContactForUser(uint(contactID), userID)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve contact")
		return
	}
	if contact == nil {
		responses.NotFound(c, "Contact")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Contact retrieved successfully", FilterContactRecord(contact))
}

// CreateContact godoc
// @Summary Add a contact for the signed in user
// @Description Creates a contact owned by the caller; any owner or id supplied in the body is ignored
// @Tags Contacts
// @Accept json
// @Produce json
// @Param contact body ContactRequest true "Contact creation request"
// @Success 201 {object} responses.SuccessResponse{data=ContactResponse}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /contacts [post]
// @Security BearerAuth
func (cc *ContactController) CreateContact(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}

	contact := models.Contact{UserID: userID}
	applyContactRequest(&contact, &req)

	if err := cc.repo.CreateContact(&contact); err != nil {
		responses.InternalServerError(c, "Failed to create contact")
		return
	}

	c.Header("Location", "/api/contacts/"+strconv.FormatUint(uint64(contact.ID), 10))
	responses.SendSuccess(c, http.StatusCreated, "Contact created successfully", FilterContactRecord(&contact))
}

// UpdateContact godoc
// @Summary Update a contact
// @Description Overwrites the editable fields of a contact owned by the caller
// @Tags Contacts
// @Accept json
// @Produce json
// @Param contact_id path int true "Contact ID"
// @Param contact body ContactRequest true "Contact update request"
// @Success 200 {object} responses.SuccessResponse{data=ContactResponse}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 404 {object} responses.ErrorResponse "Contact not found"
// @Failure 409 {object} responses.ErrorResponse "Contact modified concurrently"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /contacts/{contact_id} [put]
// @Security BearerAuth
func (cc *ContactController) UpdateContact(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	contactID, err := strconv.ParseUint(c.Param("contact_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid contact ID format")
		return
	}

	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}

	contact, err := cc.repo.GetContactForUser(uint(contactID), userID)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve contact")
		return
	}
	if contact == nil {
		responses.NotFound(c, "Contact")
		return
	}

	applyContactRequest(contact, &req)

	rows, err := cc.repo.UpdateContact(contact)
	if err != nil {
		responses.InternalServerError(c, "Failed to update contact")
		return
	}
	if rows == 0 {
		// The row changed under us; distinguish deleted from modified.
		recheck, err := cc.repo.GetContactForUser(uint(contactID), userID)
		if err != nil {
			responses.InternalServerError(c, "Failed to update contact")
			return
		}
		if recheck == nil {
			responses.NotFound(c, "Contact")
			return
		}
		responses.Conflict(c, "Contact was modified concurrently")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Contact updated successfully", FilterContactRecord(contact))
}

// DeleteContact godoc
// @Summary Delete a contact
// @Description Deletes a contact owned by the caller along with its skill assignments
// @Tags Contacts
// @Produce json
// @Param contact_id path int true "Contact ID"
// @Success 200 {object} responses.SuccessResponse "Contact deleted successfully"
// @Failure 400 {object} responses.ErrorResponse "Invalid contact ID"
// @Failure 404 {object} responses.ErrorResponse "Contact not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /contacts/{contact_id} [delete]
// @Security BearerAuth
func (cc *ContactController) DeleteContact(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	contactID, err := strconv.ParseUint(c.Param("contact_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid contact ID format")
		return
	}

	contact, err := cc.repo.GetContactForUser(uint(contactID), userID)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve contact")
		return
	}
	if contact == nil {
		responses.NotFound(c, "Contact")
		return
	}

	if err := cc.repo.DeleteContact(uint(contactID)); err != nil {
		responses.InternalServerError(c, "Failed to delete contact")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Contact deleted successfully", nil)
}

// GetContactSkills godoc
// @Summary Get all skills of a contact
// @Description Returns each skill of the contact together with its skill level
// @Tags Contacts
// @Produce json
// @Param contact_id path int true "Contact ID"
// @Success 200 {object} responses.SuccessResponse{data=[]ContactSkillResponse}
// @Failure 400 {object} responses.ErrorResponse "Invalid contact ID"
// @Failure 404 {object} responses.ErrorResponse "Contact not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /contacts/{contact_id}/skills [get]
// @Security BearerAuth
func (cc *ContactController) GetContactSkills(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	contactID, err := strconv.ParseUint(c.Param("contact_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid contact ID format")
		return
	}

	contact, err := cc.repo.GetContactForUser(uint(contactID), userID)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve contact")
		return
	}
	if contact == nil {
		responses.NotFound(c, "Contact")
		return
	}

	skills, err := cc.repo.GetContactSkills(uint(contactID))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve contact skills")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Contact skills retrieved successfully", skills)
}
