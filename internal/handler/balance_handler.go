package handler

import (
	"io"
	"time"

	"folha-ponto-backend/internal/balance"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

type BalanceHandler struct {
	codeTable balance.CodeTable
}

func NewBalanceHandler(codeTable balance.CodeTable) *BalanceHandler {
	return &BalanceHandler{codeTable: codeTable}
}

// Calculate imports the legacy fixed-width TXT (multipart "file" field or
// raw request body) and returns the reconciled balances per matrícula.
func (h *BalanceHandler) Calculate(c *fiber.Ctx) error {
	content, err := h.readContent(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Falha ao ler o arquivo enviado"})
	}
	if content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Arquivo vazio"})
	}

	events, warnings := balance.ParseFile(content)
	results := balance.Reconcile(events, h.codeTable)

	return c.JSON(fiber.Map{
		"events":   len(events),
		"results":  results,
		"warnings": warnings,
	})
}

// CalculateXLSX runs the same import but answers with a spreadsheet of
// the result table.
func (h *BalanceHandler) CalculateXLSX(c *fiber.Ctx) error {
	content, err := h.readContent(c)
	if err != nil || content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Falha ao ler o arquivo enviado"})
	}

	events, _ := balance.ParseFile(content)
	results := balance.Reconcile(events, h.codeTable)

	f := excelize.NewFile()
	defer f.Close()
	const sheet = "Saldo"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Matrícula", "Extras Restantes (h)", "Faltas Restantes (h)", "Faltas Justificadas (h)", "Atestados (h)"}
	for i, title := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, title)
	}
	for row, r := range results {
		values := []interface{}{r.Matricula, r.ExtrasRestantes, r.FaltasRestantes, r.FaltasJustificadas, r.Atestados}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Falha ao gerar planilha"})
	}

	filename := "saldo_horas_" + time.Now().Format("20060102") + ".xlsx"
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}

func (h *BalanceHandler) readContent(c *fiber.Ctx) (string, error) {
	if file, err := c.FormFile("file"); err == nil {
		src, err := file.Open()
		if err != nil {
			return "", err
		}
		defer src.Close()
		data, err := io.ReadAll(src)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	return string(c.Body()), nil
}
