package routes

import (
	"folha-ponto-backend/internal/handler"
	"folha-ponto-backend/internal/middleware"
	"folha-ponto-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupLaunchRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewLaunchRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	eventRepo := repository.NewEventRepository(db)
	hdl := handler.NewLaunchHandler(repo, employeeRepo, eventRepo)

	api := app.Group("/api/admin/launches", middleware.Auth)
	api.Get("/", hdl.GetAll)
	api.Post("/", hdl.Create)
	api.Put("/:id", hdl.Update)
	api.Delete("/:id", hdl.Delete)
}
