package main

import (
	"fmt"

	"folha-ponto-backend/config"
	"folha-ponto-backend/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Aviso: arquivo .env não encontrado, usando variáveis de ambiente do sistema.")
	}

	config.ConnectDB()

	app := fiber.New()

	// Middleware global
	app.Use(cors.New())
	app.Use(logger.New())

	routes.SetupAuthRoutes(app, config.DB)
	routes.SetupEmployeeRoutes(app, config.DB)
	routes.SetupEventRoutes(app, config.DB)
	routes.SetupLaunchRoutes(app, config.DB)
	routes.SetupLayoutRoutes(app, config.DB)
	routes.SetupExportRoutes(app, config.DB)
	routes.SetupBalanceRoutes(app, config.DB)
	routes.SetupRHiDRoutes(app, config.DB)
	routes.SetupDashboardRoutes(app, config.DB)

	port := config.GetEnv("PORT", "3000")
	fmt.Println("Servidor pronto! Aguardando requisições na porta :" + port)
	app.Listen(":" + port)
}
