package routes

import (
	"folha-ponto-backend/internal/handler"
	"folha-ponto-backend/internal/middleware"
	"folha-ponto-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupEventRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewEventRepository(db)
	hdl := handler.NewEventHandler(repo)

	api := app.Group("/api/admin/events", middleware.Auth)
	api.Get("/", hdl.GetAll)
	api.Post("/", hdl.Create)
	api.Put("/:id", hdl.Update)
	api.Delete("/:id", hdl.Delete)
}
