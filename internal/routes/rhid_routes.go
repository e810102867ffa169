package routes

import (
	"folha-ponto-backend/internal/handler"
	"folha-ponto-backend/internal/middleware"
	"folha-ponto-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRHiDRoutes(app *fiber.App, db *gorm.DB) {
	employeeRepo := repository.NewEmployeeRepository(db)
	syncLogRepo := repository.NewSyncLogRepository(db)
	hdl := handler.NewRHiDHandler(employeeRepo, syncLogRepo)

	api := app.Group("/api/admin/rhid", middleware.Auth)
	api.Post("/auth", hdl.Auth)
	api.Post("/sync-employees", hdl.SyncEmployees)
	api.Get("/sync-log", hdl.GetSyncLog)
}
