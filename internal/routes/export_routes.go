package routes

import (
	"folha-ponto-backend/internal/handler"
	"folha-ponto-backend/internal/middleware"
	"folha-ponto-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupExportRoutes(app *fiber.App, db *gorm.DB) {
	layoutRepo := repository.NewLayoutRepository(db)
	launchRepo := repository.NewLaunchRepository(db)
	hdl := handler.NewExportHandler(layoutRepo, launchRepo)

	api := app.Group("/api/admin/export", middleware.Auth)
	api.Get("/preview", hdl.Preview)
	api.Get("/download", hdl.Download)
	api.Post("/email", hdl.Email)
}
