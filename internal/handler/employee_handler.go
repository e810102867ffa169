package handler

import (
	"strconv"

	"folha-ponto-backend/internal/model"
	"folha-ponto-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type EmployeeHandler struct {
	repo repository.EmployeeRepository
}

func NewEmployeeHandler(repo repository.EmployeeRepository) *EmployeeHandler {
	return &EmployeeHandler{repo: repo}
}

func (h *EmployeeHandler) GetAll(c *fiber.Ctx) error {
	employees, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Falha ao buscar funcionários"})
	}
	return c.JSON(fiber.Map{"data": employees})
}

func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var employee model.Employee
	if err := c.BodyParser(&employee); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Dados inválidos"})
	}
	if employee.EmployeeCode == "" || employee.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Código e nome são obrigatórios"})
	}

	if err := h.repo.Create(&employee); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Falha ao criar funcionário"})
	}
	return c.JSON(fiber.Map{"message": "Funcionário criado com sucesso", "data": employee})
}

func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	var req model.Employee
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Dados inválidos"})
	}

	employee, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Funcionário não encontrado"})
	}

	employee.EmployeeCode = req.EmployeeCode
	employee.Name = req.Name
	employee.Document = req.Document
	employee.CompanyPayrollNumber = req.CompanyPayrollNumber
	employee.PayrollNumber = req.PayrollNumber
	employee.Active = req.Active

	if err := h.repo.Update(employee); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Falha ao atualizar funcionário"})
	}
	return c.JSON(fiber.Map{"message": "Funcionário atualizado com sucesso", "data": employee})
}

func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	if err := h.repo.Delete(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Falha ao excluir funcionário"})
	}
	return c.JSON(fiber.Map{"message": "Funcionário excluído com sucesso"})
}
