package handler

import (
	"strconv"
	"time"

	"folha-ponto-backend/internal/model"
	"folha-ponto-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type LaunchHandler struct {
	repo         repository.LaunchRepository
	employeeRepo repository.EmployeeRepository
	eventRepo    repository.EventRepository
}

func NewLaunchHandler(repo repository.LaunchRepository, employeeRepo repository.EmployeeRepository, eventRepo repository.EventRepository) *LaunchHandler {
	return &LaunchHandler{repo: repo, employeeRepo: employeeRepo, eventRepo: eventRepo}
}

func (h *LaunchHandler) GetAll(c *fiber.Ctx) error {
	start := c.Query("start_date")
	end := c.Query("end_date")

	var launches []model.EventLaunch
	var err error
	if start != "" && end != "" {
		launches, err = h.repo.GetByPeriod(start, end)
	} else {
		launches, err = h.repo.GetAll()
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Falha ao buscar lançamentos"})
	}
	return c.JSON(fiber.Map{"data": launches})
}

func (h *LaunchHandler) Create(c *fiber.Ctx) error {
	var launch model.EventLaunch
	if err := c.BodyParser(&launch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Dados inválidos"})
	}

	if _, err := time.Parse("2006-01-02", launch.LaunchDate); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data do lançamento inválida (use YYYY-MM-DD)"})
	}
	if _, err := h.employeeRepo.GetByID(launch.EmployeeID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Funcionário não encontrado"})
	}
	if _, err := h.eventRepo.GetByID(launch.EventID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Evento não encontrado"})
	}

	// total padrão quando o cliente não calcula
	if launch.TotalValue == 0 && launch.Quantity != 0 {
		launch.TotalValue = launch.Quantity * launch.UnitValue
	}

	if err := h.repo.Create(&launch); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Falha ao criar lançamento"})
	}
	return c.JSON(fiber.Map{"message": "Lançamento criado com sucesso", "data": launch})
}

func (h *LaunchHandler) Update(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	var req model.EventLaunch
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Dados inválidos"})
	}

	launch, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Lançamento não encontrado"})
	}

	if req.LaunchDate != "" {
		if _, err := time.Parse("2006-01-02", req.LaunchDate); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data do lançamento inválida (use YYYY-MM-DD)"})
		}
		launch.LaunchDate = req.LaunchDate
	}
	if req.EmployeeID != 0 {
		launch.EmployeeID = req.EmployeeID
	}
	if req.EventID != 0 {
		launch.EventID = req.EventID
	}
	launch.Quantity = req.Quantity
	launch.UnitValue = req.UnitValue
	launch.TotalValue = req.TotalValue

	if err := h.repo.Update(launch); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Falha ao atualizar lançamento"})
	}
	return c.JSON(fiber.Map{"message": "Lançamento atualizado com sucesso", "data": launch})
}

func (h *LaunchHandler) Delete(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	if err := h.repo.Delete(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Falha ao excluir lançamento"})
	}
	return c.JSON(fiber.Map{"message": "Lançamento excluído com sucesso"})
}
