package routes

import (
	"folha-ponto-backend/internal/handler"
	"folha-ponto-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewUserRepository(db)
	hdl := handler.NewAuthHandler(repo)

	app.Post("/api/auth/login", hdl.Login)
}
