package skill

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bicamihai/ContactsApi/config"
	"github.com/bicamihai/ContactsApi/internal/contact"
	"github.com/bicamihai/ContactsApi/internal/middleware"
	"github.com/bicamihai/ContactsApi/internal/models"
	"github.com/bicamihai/ContactsApi/pkg/responses"
	"github.com/bicamihai/ContactsApi/pkg/validator"
)

// SkillController handles API requests related to skills, skill levels and
// the skill assignments of contacts.
type SkillController struct {
	repo        SkillRepository
	contactRepo contact.ContactRepository
	config      *config.Config
}

// NewSkillController creates a new SkillController. The contact repository is
// the ownership guard for the contact-facing operations.
func NewSkillController(repo SkillRepository, contactRepo contact.ContactRepository, cfg *config.Config) *SkillController {
	return &SkillController{
		repo:        repo,
		contactRepo: contactRepo,
		config:      cfg,
	}
}

// GetSkills godoc
// @Summary Get all skills
// @Description Returns every skill in the database; skills are global, not user-scoped
// @Tags Skills
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]SkillResponse}
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /skills [get]
// @Security BearerAuth
func (sc *SkillController) GetSkills(c *gin.Context) {
	skills, err := sc.repo.GetAllSkills()
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve skills")
		return
	}

	skillList := make([]SkillResponse, 0, len(skills))
	for i := range skills {
		skillList = append(skillList, FilterSkillRecord(&skills[i]))
	}

	responses.SendSuccess(c, http.StatusOK, "Skills retrieved successfully", skillList)
}

// GetSkillLevels godoc
// @Summary Get all skill levels
// @Description Returns the fixed skill level reference data
// @Tags Skills
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]SkillLevelResponse}
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /skills/levels [get]
// @Security BearerAuth
func (sc *SkillController) GetSkillLevels(c *gin.Context) {
	levels, err := sc.repo.GetAllSkillLevels()
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve skill levels")
		return
	}

	levelList := make([]SkillLevelResponse, 0, len(levels))
	for i := range levels {
		levelList = append(levelList, FilterSkillLevelRecord(&levels[i]))
	}

	responses.SendSuccess(c, http.StatusOK, "Skill levels retrieved successfully", levelList)
}

// GetSkill godoc
// @Summary Get a skill by ID
// @Tags Skills
// @Produce json
// @Param skill_id path int true "Skill ID"
// @Success 200 {object} responses.SuccessResponse{data=SkillResponse}
// @Failure 400 {object} responses.ErrorResponse "Invalid skill ID"
// @Failure 404 {object} responses.ErrorResponse "Skill not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /skills/{skill_id} [get]
// @Security BearerAuth
func (sc *SkillController) GetSkill(c *gin.Context) {
	skillID, err := strconv.ParseUint(c.Param("skill_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid skill ID format")
		return
	}

	skill, err := sc.repo.GetSkillByID(uint(skillID))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve skill")
		return
	}
	if skill == nil {
		responses.NotFound(c, "Skill")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Skill retrieved successfully", FilterSkillRecord(skill))
}

// CreateSkill godoc
// @Summary Add a skill
// @Tags Skills
// @Accept json
// @Produce json
// @Param skill body SkillRequest true "Skill creation request"
// @Success 201 {object} responses.SuccessResponse{data=SkillResponse}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /skills [post]
// @Security BearerAuth
func (sc *SkillController) CreateSkill(c *gin.Context) {
	var req SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}

	skill := models.Skill{}
	applySkillRequest(&skill, &req)

	if err := sc.repo.CreateSkill(&skill); err != nil {
		responses.InternalServerError(c, "Failed to create skill")
		return
	}

	c.Header("Location", "/api/skills/"+strconv.FormatUint(uint64(skill.ID), 10))
	responses.SendSuccess(c, http.StatusCreated, "Skill created successfully", FilterSkillRecord(&skill))
}

// UpdateSkill godoc
// @Summary Update a skill
// @Tags Skills
// @Accept json
// @Produce json
// @Param skill_id path int true "Skill ID"
// @Param skill body SkillRequest true "Skill update request"
// @Success 200 {object} responses.SuccessResponse{data=SkillResponse}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 404 {object} responses.ErrorResponse "Skill not found"
// @Failure 409 {object} responses.ErrorResponse "Skill modified concurrently"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /skills/{skill_id} [put]
// @Security BearerAuth
func (sc *SkillController) UpdateSkill(c *gin.Context) {
	skillID, err := strconv.ParseUint(c.Param("skill_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid skill ID format")
		return
	}

	var req SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}

	skill, err := sc.repo.GetSkillByID(uint(skillID))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve skill")
		return
	}
	if skill == nil {
		responses.NotFound(c, "Skill")
		return
	}

	applySkillRequest(skill, &req)

	rows, err := sc.repo.UpdateSkill(skill)
	if err != nil {
		responses.InternalServerError(c, "Failed to update skill")
		return
	}
	if rows == 0 {
		recheck, err := sc.repo.GetSkillByID(uint(skillID))
		if err != nil {
			responses.InternalServerError(c, "Failed to update skill")
			return
		}
		if recheck == nil {
			responses.NotFound(c, "Skill")
			return
		}
		responses.Conflict(c, "Skill was modified concurrently")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Skill updated successfully", FilterSkillRecord(skill))
}

// DeleteSkill godoc
// @Summary Delete a skill
// @Description Deletes a skill along with every contact assignment referencing it
// @Tags Skills
// @Produce json
// @Param skill_id path int true "Skill ID"
// @Success 200 {object} responses.SuccessResponse "Skill deleted successfully"
// @Failure 400 {object} responses.ErrorResponse "Invalid skill ID"
// @Failure 404 {object} responses.ErrorResponse "Skill not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /skills/{skill_id} [delete]
// @Security BearerAuth
func (sc *SkillController) DeleteSkill(c *gin.Context) {
	skillID, err := strconv.ParseUint(c.Param("skill_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid skill ID format")
		return
	}

	skill, err := sc.repo.GetSkillByID(uint(skillID))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve skill")
		return
	}
	if skill == nil {
		responses.NotFound(c, "Skill")
		return
	}

	if err := sc.repo.DeleteSkill(uint(skillID)); err != nil {
		responses.InternalServerError(c, "Failed to delete skill")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Skill deleted successfully", nil)
}

// attachParams reads the three query parameters shared by the contact-facing
// skill operations.
func attachParams(c *gin.Context) (skillID, contactID uint, levelCode int, ok bool) {
	sid, err := strconv.ParseUint(c.Query("skill_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid skill_id query parameter")
		return 0, 0, 0, false
	}
	cid, err := strconv.ParseUint(c.Query("contact_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid contact_id query parameter")
		return 0, 0, 0, false
	}
	code, err := strconv.Atoi(c.Query("skill_level_code"))
	if err != nil {
		responses.BadRequest(c, "Invalid skill_level_code query parameter")
		return 0, 0, 0, false
	}
	return uint(sid), uint(cid), code, true
}

// AttachSkillToContact godoc
// @Summary Add a skill with a skill level to a contact
// @Description Links a skill at a given level to a contact owned by the caller
// @Tags Skills
// @Produce json
// @Param skill_id query int true "Skill ID"
// @Param contact_id query int true "Contact ID"
// @Param skill_level_code query int true "Skill level code"
// @Success 200 {object} responses.SuccessResponse "Contact skill created successfully"
// @Failure 400 {object} responses.ErrorResponse "Invalid query parameters"
// @Failure 404 {object} responses.ErrorResponse "Skill, skill level or contact not found"
// @Failure 409 {object} responses.ErrorResponse "Contact skill already exists"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /skills/attach-to-contact [post]
// @Security BearerAuth
func (sc *SkillController) AttachSkillToContact(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	skillID, contactID, levelCode, ok := attachParams(c)
	if !ok {
		return
	}

	// Check order matters: the duplicate check comes first so a caller always
	// learns about an existing assignment before any other failure.
	existing, err := sc.repo.GetContactSkill(contactID, skillID)
	if err != nil {
		responses.InternalServerError(c, "Failed to check contact skill")
		return
	}
	if existing != nil {
		responses.Conflict(c, "Contact skill already exists")
		return
	}

	skill, err := sc.repo.GetSkillByID(skillID)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve skill")
		return
	}
	if skill == nil {
		responses.NotFound(c, "Skill")
		return
	}

	level, err := sc.repo.GetSkillLevelByCode(levelCode)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve skill level")
		return
	}
	if level == nil {
		responses.NotFound(c, "Skill level")
		return
	}

	contactRecord, err := sc.contactRepo.GetContactForUser(contactID, userID)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve contact")
		return
	}
	if contactRecord == nil {
		responses.NotFound(c, "Contact")
		return
	}

	contactSkill := models.ContactSkill{
		ContactID:    contactID,
		SkillID:      skillID,
		SkillLevelID: &level.ID,
	}
	if err := sc.repo.CreateContactSkill(&contactSkill); err != nil {
		responses.InternalServerError(c, "Failed to attach skill to contact")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Contact skill created successfully", nil)
}

// UpdateSkillForContact godoc
// @Summary Update the skill level of a contact's skill
// @Tags Skills
// @Produce json
// @Param skill_id query int true "Skill ID"
// @Param contact_id query int true "Contact ID"
// @Param skill_level_code query int true "Skill level code"
// @Success 200 {object} responses.SuccessResponse "Contact skill updated successfully"
// @Failure 400 {object} responses.ErrorResponse "Invalid query parameters"
// @Failure 404 {object} responses.ErrorResponse "Skill, contact, skill level or contact skill not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /skills/update-for-contact [put]
// @Security BearerAuth
func (sc *SkillController) UpdateSkillForContact(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	skillID, contactID, levelCode, ok := attachParams(c)
	if !ok {
		return
	}

	skill, err := sc.repo.GetSkillByID(skillID)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve skill")
		return
	}
	if skill == nil {
		responses.NotFound(c, "Skill")
		return
	}

	contactRecord, err := sc.contactRepo.GetContactForUser(contactID, userID)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve contact")
		return
	}
	if contactRecord == nil {
		responses.NotFound(c, "Contact")
		return
	}

	level, err := sc.repo.GetSkillLevelByCode(levelCode)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve skill level")
		return
	}
	if level == nil {
		responses.NotFound(c, "Skill level")
		return
	}

	existing, err := sc.repo.GetContactSkill(contactID, skillID)
	if err != nil {
		responses.InternalServerError(c, "Failed to check contact skill")
		return
	}
	if existing == nil {
		responses.NotFound(c, "Contact skill")
		return
	}

	if _, err := sc.repo.UpdateContactSkillLevel(contactID, skillID, level.ID); err != nil {
		responses.InternalServerError(c, "Failed to update contact skill")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Contact skill updated successfully", nil)
}
