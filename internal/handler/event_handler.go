package handler

import (
	"strconv"

	"folha-ponto-backend/internal/model"
	"folha-ponto-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type EventHandler struct {
	repo repository.EventRepository
}

func NewEventHandler(repo repository.EventRepository) *EventHandler {
	return &EventHandler{repo: repo}
}

func (h *EventHandler) GetAll(c *fiber.Ctx) error {
	events, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Falha ao buscar eventos"})
	}
	return c.JSON(fiber.Map{"data": events})
}

func (h *EventHandler) Create(c *fiber.Ctx) error {
	var event model.PayrollEvent
	if err := c.BodyParser(&event); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Dados inválidos"})
	}
	if event.Code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Código do evento é obrigatório"})
	}

	if err := h.repo.Create(&event); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Falha ao criar evento"})
	}
	return c.JSON(fiber.Map{"message": "Evento criado com sucesso", "data": event})
}

func (h *EventHandler) Update(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	var req model.PayrollEvent
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Dados inválidos"})
	}

	event, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Evento não encontrado"})
	}

	event.Code = req.Code
	event.Description = req.Description

	if err := h.repo.Update(event); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Falha ao atualizar evento"})
	}
	return c.JSON(fiber.Map{"message": "Evento atualizado com sucesso", "data": event})
}

func (h *EventHandler) Delete(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	if err := h.repo.Delete(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Falha ao excluir evento"})
	}
	return c.JSON(fiber.Map{"message": "Evento excluído com sucesso"})
}
