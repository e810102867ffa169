package routes

import (
	"folha-ponto-backend/internal/handler"
	"folha-ponto-backend/internal/middleware"
	"folha-ponto-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupLayoutRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewLayoutRepository(db)
	hdl := handler.NewLayoutHandler(repo)

	api := app.Group("/api/admin/layouts", middleware.Auth)
	api.Get("/", hdl.GetAll)
	api.Get("/:id", hdl.GetByID)
	api.Post("/", hdl.Create)
	api.Put("/:id", hdl.Update)
	api.Delete("/:id", hdl.Delete)

	api.Get("/:id/fields", hdl.GetFields)
	api.Post("/:id/fields", hdl.AddField)
	api.Put("/:id/fields/:fieldId", hdl.UpdateField)
	api.Delete("/:id/fields/:fieldId", hdl.DeleteField)
}
