package skill

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bicamihai/ContactsApi/config"
	"github.com/bicamihai/ContactsApi/internal/contact"
	mw "github.com/bicamihai/ContactsApi/internal/middleware"
)

func RegisterSkillRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	skillRepo := NewSkillRepository(db)
	contactRepo := contact.NewContactRepository(db)
	skillController := NewSkillController(skillRepo, contactRepo, appConfig)

	skills := router.Group("/skills")
	skills.Use(mw.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		skills.GET("", skillController.GetSkills)
		skills.POST("", skillController.CreateSkill)
		skills.GET("/levels", skillController.GetSkillLevels)
		skills.POST("/attach-to-contact", skillController.AttachSkillToContact)
		skills.PUT("/update-for-contact", skillController.UpdateSkillForContact)
		skills.GET("/:skill_id", skillController.GetSkill)
		skills.PUT("/:skill_id", skillController.UpdateSkill)
		skills.DELETE("/:skill_id", skillController.DeleteSkill)
	}
}
