package routes

import (
	"folha-ponto-backend/internal/handler"
	"folha-ponto-backend/internal/middleware"
	"folha-ponto-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupDashboardRoutes(app *fiber.App, db *gorm.DB) {
	employeeRepo := repository.NewEmployeeRepository(db)
	layoutRepo := repository.NewLayoutRepository(db)
	launchRepo := repository.NewLaunchRepository(db)
	hdl := handler.NewDashboardHandler(employeeRepo, layoutRepo, launchRepo)

	api := app.Group("/api/admin/dashboard", middleware.Auth)
	api.Get("/summary", hdl.GetSummary)
}
