package main

import (
	"log"

	"github.com/bicamihai/ContactsApi/config"
	_ "github.com/bicamihai/ContactsApi/docs"
	"github.com/bicamihai/ContactsApi/internal/models"
	"github.com/bicamihai/ContactsApi/internal/user"
	"github.com/bicamihai/ContactsApi/routes"
)

// @title Contacts REST API
// @version 1.0
// @description REST API managing contacts and their skills, scoped per user.
// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	err := config.DB.AutoMigrate(
		&user.User{}, &user.RefreshToken{},
		&models.Contact{}, &models.Skill{}, &models.SkillLevel{}, &models.ContactSkill{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("AutoMigrate successful")

	if err := models.SeedReferenceData(config.DB); err != nil {
		log.Fatalf("Seeding reference data failed: %v", err)
	}

	r := routes.SetupRoutes(config.DB, cfg)

	log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
