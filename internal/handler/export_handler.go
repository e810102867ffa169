package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"folha-ponto-backend/config"
	"folha-ponto-backend/internal/codec"
	"folha-ponto-backend/internal/mailer"
	"folha-ponto-backend/internal/model"
	"folha-ponto-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type ExportHandler struct {
	layoutRepo repository.LayoutRepository
	launchRepo repository.LaunchRepository
}

func NewExportHandler(layoutRepo repository.LayoutRepository, launchRepo repository.LaunchRepository) *ExportHandler {
	return &ExportHandler{layoutRepo: layoutRepo, launchRepo: launchRepo}
}

// Preview generates the document and returns it as JSON together with the
// truncation warnings, for the on-screen preview.
func (h *ExportHandler) Preview(c *fiber.Ctx) error {
	layout, content, warnings, err := h.generate(c)
	if err != nil {
		return exportError(c, err)
	}
	return c.JSON(fiber.Map{
		"layout":   layout.Name,
		"content":  content,
		"lines":    len(strings.Split(content, "\n")),
		"warnings": warnings,
	})
}

// Download returns the document as a .txt attachment named the way the
// operators expect: <layout>_<start>_<end>.txt
func (h *ExportHandler) Download(c *fiber.Ctx) error {
	layout, content, _, err := h.generate(c)
	if err != nil {
		return exportError(c, err)
	}

	filename := fmt.Sprintf("%s_%s_%s.txt", layout.Name, c.Query("start_date"), c.Query("end_date"))
	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.SendString(content)
}

type emailExportRequest struct {
	To string `json:"to"`
}

// Email generates the document and mails it as an attachment.
func (h *ExportHandler) Email(c *fiber.Ctx) error {
	var req emailExportRequest
	if err := c.BodyParser(&req); err != nil || req.To == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Destinatário é obrigatório"})
	}

	layout, content, warnings, err := h.generate(c)
	if err != nil {
		return exportError(c, err)
	}

	m := mailer.New(
		config.GetEnv("SMTP_HOST", "localhost"),
		config.GetEnvAsInt("SMTP_PORT", 587),
		config.GetEnv("SMTP_USER", ""),
		config.GetEnv("SMTP_PASSWORD", ""),
		config.GetEnv("SMTP_FROM", "folha@localhost"),
	)

	start, end := c.Query("start_date"), c.Query("end_date")
	filename := fmt.Sprintf("%s_%s_%s.txt", layout.Name, start, end)
	subject := fmt.Sprintf("Exportação %s (%s a %s)", layout.Name, start, end)
	body := fmt.Sprintf("Arquivo de exportação gerado em %s.", time.Now().Format("02/01/2006 15:04"))

	if err := m.SendExport(req.To, subject, body, filename, content); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Falha ao enviar email"})
	}
	return c.JSON(fiber.Map{"message": "Arquivo enviado para " + req.To, "warnings": warnings})
}

func (h *ExportHandler) generate(c *fiber.Ctx) (*model.ExportLayout, string, []codec.Warning, error) {
	layoutID, err := strconv.Atoi(c.Query("layout_id"))
	if err != nil {
		return nil, "", nil, errBadRequest("Layout é obrigatório")
	}
	start := c.Query("start_date")
	end := c.Query("end_date")
	if start == "" || end == "" {
		return nil, "", nil, errBadRequest("Data início e data fim são obrigatórias")
	}

	layout, err := h.layoutRepo.GetByID(uint(layoutID))
	if err != nil {
		return nil, "", nil, errNotFound("Layout não encontrado")
	}
	fields, err := h.layoutRepo.GetFields(layout.ID)
	if err != nil {
		return nil, "", nil, err
	}
	launches, err := h.launchRepo.GetByPeriod(start, end)
	if err != nil {
		return nil, "", nil, err
	}

	content, warnings, err := codec.Generate(toCodecLayout(*layout), toCodecFields(fields), toCodecRecords(launches))
	if err != nil {
		return nil, "", nil, err
	}
	return layout, content, warnings, nil
}

func toCodecLayout(l model.ExportLayout) codec.Layout {
	return codec.Layout{
		Name:                l.Name,
		FieldSeparator:      l.FieldSeparator,
		DecimalSeparator:    l.DecimalSeparator,
		ReportType:          l.ReportType,
		MultiplyExtraFactor: l.MultiplyExtraFactor,
		MultiplyNightFactor: l.MultiplyNightFactor,
		ExtraFactor:         l.ExtraFactor,
		NightFactor:         l.NightFactor,
	}
}

func toCodecFields(fields []model.LayoutField) []codec.Field {
	out := make([]codec.Field, 0, len(fields))
	for _, f := range fields {
		out = append(out, codec.Field{
			Name:               f.FieldName,
			Source:             f.FieldSource,
			Size:               f.FieldSize,
			FillType:           f.FillType,
			Alignment:          f.Alignment,
			DateFormat:         f.DateFormat,
			DecimalPlaces:      f.DecimalPlaces,
			DefaultValue:       f.DefaultValue,
			FormatPattern:      f.FormatPattern,
			IsAggregationField: f.IsAggregationField,
		})
	}
	return out
}

func toCodecRecords(launches []model.EventLaunch) []codec.Record {
	out := make([]codec.Record, 0, len(launches))
	for _, l := range launches {
		date, _ := time.Parse("2006-01-02", l.LaunchDate)
		out = append(out, codec.Record{
			CompanyPayrollNumber: l.Employee.CompanyPayrollNumber,
			PayrollNumber:        l.Employee.PayrollNumber,
			EmployeeName:         l.Employee.Name,
			EmployeeCode:         l.Employee.EmployeeCode,
			EmployeeKey:          strconv.FormatUint(uint64(l.EmployeeID), 10),
			EventCode:            l.Event.Code,
			Date:                 date,
			TotalValue:           l.TotalValue,
			Quantity:             l.Quantity,
		})
	}
	return out
}

// handlerError carries an HTTP status through the generate helper.
type handlerError struct {
	status  int
	message string
}

func (e handlerError) Error() string { return e.message }

func errBadRequest(msg string) error { return handlerError{fiber.StatusBadRequest, msg} }
func errNotFound(msg string) error   { return handlerError{fiber.StatusNotFound, msg} }

func exportError(c *fiber.Ctx, err error) error {
	if errors.Is(err, codec.ErrEmptyResultSet) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	var he handlerError
	if errors.As(err, &he) {
		return c.Status(he.status).JSON(fiber.Map{"error": he.message})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Falha ao gerar exportação"})
}
