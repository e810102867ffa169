package handler

import (
	"strconv"

	"folha-ponto-backend/internal/model"
	"folha-ponto-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type LayoutHandler struct {
	repo repository.LayoutRepository
}

func NewLayoutHandler(repo repository.LayoutRepository) *LayoutHandler {
	return &LayoutHandler{repo: repo}
}

func (h *LayoutHandler) GetAll(c *fiber.Ctx) error {
	layouts, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Falha ao buscar layouts"})
	}
	return c.JSON(fiber.Map{"data": layouts})
}

func (h *LayoutHandler) GetByID(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	layout, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Layout não encontrado"})
	}
	fields, err := h.repo.GetFields(layout.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Falha ao buscar campos do layout"})
	}
	layout.Fields = fields
	return c.JSON(fiber.Map{"data": layout})
}

func (h *LayoutHandler) Create(c *fiber.Ctx) error {
	var layout model.ExportLayout
	if err := c.BodyParser(&layout); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Dados inválidos"})
	}
	if layout.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nome do layout é obrigatório"})
	}

	if err := h.repo.Create(&layout); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Falha ao criar layout"})
	}
	return c.JSON(fiber.Map{"message": "Layout criado com sucesso", "data": layout})
}

func (h *LayoutHandler) Update(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	var req model.ExportLayout
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Dados inválidos"})
	}

	layout, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Layout não encontrado"})
	}

	layout.Name = req.Name
	layout.Description = req.Description
	layout.HeaderText = req.HeaderText
	layout.FooterText = req.FooterText
	layout.FieldSeparator = req.FieldSeparator
	layout.DecimalSeparator = req.DecimalSeparator
	layout.ReportType = req.ReportType
	layout.MultiplyExtraFactor = req.MultiplyExtraFactor
	layout.MultiplyNightFactor = req.MultiplyNightFactor
	layout.ExtraFactor = req.ExtraFactor
	layout.NightFactor = req.NightFactor

	if err := h.repo.Update(layout); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Falha ao atualizar layout"})
	}
	return c.JSON(fiber.Map{"message": "Layout atualizado com sucesso", "data": layout})
}

func (h *LayoutHandler) Delete(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	if err := h.repo.Delete(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Falha ao excluir layout"})
	}
	return c.JSON(fiber.Map{"message": "Layout excluído com sucesso"})
}

// --- Campos do layout ---

func (h *LayoutHandler) GetFields(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	fields, err := h.repo.GetFields(uint(id))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Falha ao buscar campos"})
	}
	return c.JSON(fiber.Map{"data": fields})
}

// AddField appends a field to the end of the layout and renumbers
// positions so the line stays contiguous.
func (h *LayoutHandler) AddField(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	var field model.LayoutField
	if err := c.BodyParser(&field); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Dados inválidos"})
	}
	if field.FieldSize <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Tamanho do campo deve ser positivo"})
	}
	field.LayoutID = uint(id)

	fields, err := h.repo.GetFields(uint(id))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Falha ao buscar campos"})
	}

	fields = append(fields, field)
	model.RecalculateFieldPositions(fields)

	if err := h.repo.CreateField(&fields[len(fields)-1]); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Falha ao adicionar campo"})
	}
	return c.JSON(fiber.Map{"message": "Campo adicionado com sucesso", "data": fields[len(fields)-1]})
}

// UpdateField saves the change and recomputes every position in the
// layout: a size change shifts all the columns to its right.
func (h *LayoutHandler) UpdateField(c *fiber.Ctx) error {
	fieldID, _ := strconv.Atoi(c.Params("fieldId"))
	var req model.LayoutField
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Dados inválidos"})
	}

	field, err := h.repo.GetFieldByID(uint(fieldID))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Campo não encontrado"})
	}
	if req.FieldSize <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Tamanho do campo deve ser positivo"})
	}

	fields, err := h.repo.GetFields(field.LayoutID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Falha ao buscar campos"})
	}

	for i := range fields {
		if fields[i].ID == field.ID {
			fields[i].FieldName = req.FieldName
			fields[i].FieldSource = req.FieldSource
			fields[i].FieldSize = req.FieldSize
			fields[i].FillType = req.FillType
			fields[i].Alignment = req.Alignment
			fields[i].DateFormat = req.DateFormat
			fields[i].DecimalPlaces = req.DecimalPlaces
			fields[i].DefaultValue = req.DefaultValue
			fields[i].FormatPattern = req.FormatPattern
			fields[i].IsAggregationField = req.IsAggregationField
		}
	}
	model.RecalculateFieldPositions(fields)

	if err := h.repo.SaveFields(fields); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Falha ao atualizar campo"})
	}
	return c.JSON(fiber.Map{"message": "Campo atualizado com sucesso", "data": fields})
}

// DeleteField removes the field and reindexes the remaining ones so order
// positions stay gapless and columns contiguous.
func (h *LayoutHandler) DeleteField(c *fiber.Ctx) error {
	fieldID, _ := strconv.Atoi(c.Params("fieldId"))

	field, err := h.repo.GetFieldByID(uint(fieldID))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Campo não encontrado"})
	}

	if err := h.repo.DeleteField(field.ID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Falha ao excluir campo"})
	}

	fields, err := h.repo.GetFields(field.LayoutID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Falha ao buscar campos"})
	}
	model.RecalculateFieldPositions(fields)
	if err := h.repo.SaveFields(fields); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Falha ao reordenar campos"})
	}

	return c.JSON(fiber.Map{"message": "Campo excluído com sucesso", "data": fields})
}
