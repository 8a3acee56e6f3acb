package contact

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bicamihai/ContactsApi/config"
	mw "github.com/bicamihai/ContactsApi/internal/middleware"
)

func RegisterContactRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	contactRepo := NewContactRepository(db)
	contactController := NewContactController(contactRepo, appConfig)

	contacts := router.Group("/contacts")
	contacts.Use(mw.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		contacts.GET("", contactController.GetContacts)
		contacts.POST("", contactController.CreateContact)
		contacts.GET("/:contact_id", contactController.GetContact)
		contacts.PUT("/:contact_id", contactController.UpdateContact)
		contacts.DELETE("/:contact_id", contactController.DeleteContact)
		contacts.GET("/:contact_id/skills", contactController.GetContactSkills)
	}
}
