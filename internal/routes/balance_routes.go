package routes

import (
	"folha-ponto-backend/config"
	"folha-ponto-backend/internal/handler"
	"folha-ponto-backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupBalanceRoutes(app *fiber.App, db *gorm.DB) {
	hdl := handler.NewBalanceHandler(config.LoadCodeTable())

	api := app.Group("/api/admin/balance", middleware.Auth)
	api.Post("/calculate", hdl.Calculate)
	api.Post("/calculate.xlsx", hdl.CalculateXLSX)
}
