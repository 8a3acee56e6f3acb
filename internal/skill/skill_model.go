package skill

import (
	"github.com/bicamihai/ContactsApi/internal/models"
)

// --- DTOs (Data Transfer Objects) for requests/responses ---

type SkillRequest struct {
	SkillCode int    `json:"skill_code" binding:"min=0"`
	Name      string `json:"name" binding:"required,max=100"`
}

type SkillResponse struct {
	ID        uint   `json:"id"`
	SkillCode int    `json:"skill_code"`
	Name      string `json:"name"`
}

type SkillLevelResponse struct {
	ID               uint   `json:"id"`
	LevelCode        int    `json:"level_code"`
	LevelDescription string `json:"level_description"`
}

func FilterSkillRecord(skill *models.Skill) SkillResponse {
	return SkillResponse{
		ID:        skill.ID,
		SkillCode: skill.SkillCode,
		Name:      skill.Name,
	}
}

func FilterSkillLevelRecord(level *models.SkillLevel) SkillLevelResponse {
	return SkillLevelResponse{
		ID:               level.ID,
		LevelCode:        level.LevelCode,
		LevelDescription: level.LevelDescription,
	}
}

func applySkillRequest(skill *models.Skill, req *SkillRequest) {
	skill.SkillCode = req.SkillCode
	skill.Name = req.Name
}
