package handler

import (
	"time"

	"folha-ponto-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	employeeRepo repository.EmployeeRepository
	layoutRepo   repository.LayoutRepository
	launchRepo   repository.LaunchRepository
}

func NewDashboardHandler(employeeRepo repository.EmployeeRepository, layoutRepo repository.LayoutRepository, launchRepo repository.LaunchRepository) *DashboardHandler {
	return &DashboardHandler{employeeRepo: employeeRepo, layoutRepo: layoutRepo, launchRepo: launchRepo}
}

// GetSummary backs the admin landing page: totals plus launches in the
// current month.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	employees, err := h.employeeRepo.Count()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Falha ao montar o resumo"})
	}
	layouts, err := h.layoutRepo.Count()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Falha ao montar o resumo"})
	}

	now := time.Now()
	firstDay := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local)
	lastDay := firstDay.AddDate(0, 1, -1)
	launches, err := h.launchRepo.CountByPeriod(firstDay.Format("2006-01-02"), lastDay.Format("2006-01-02"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Falha ao montar o resumo"})
	}

	return c.JSON(fiber.Map{
		"employees":       employees,
		"layouts":         layouts,
		"launches_month":  launches,
		"reference_month": now.Format("2006-01"),
	})
}
