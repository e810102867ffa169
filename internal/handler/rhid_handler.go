package handler

import (
	"strconv"
	"time"

	"folha-ponto-backend/internal/model"
	"folha-ponto-backend/internal/repository"
	"folha-ponto-backend/internal/rhid"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type RHiDHandler struct {
	employeeRepo repository.EmployeeRepository
	syncLogRepo  repository.SyncLogRepository
}

func NewRHiDHandler(employeeRepo repository.EmployeeRepository, syncLogRepo repository.SyncLogRepository) *RHiDHandler {
	return &RHiDHandler{employeeRepo: employeeRepo, syncLogRepo: syncLogRepo}
}

type rhidAuthRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	APIURL   string `json:"api_url"`
}

// Auth proxies the RHiD login and hands the access token back to the
// front end, which holds it for the sync calls.
func (h *RHiDHandler) Auth(c *fiber.Ctx) error {
	var req rhidAuthRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Dados inválidos"})
	}
	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email e senha são obrigatórios"})
	}

	client := rhid.NewClient(req.APIURL)
	token, err := client.Login(req.Email, req.Password)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Falha na autenticação com o RHiD", "details": err.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "access_token": token})
}

type rhidSyncRequest struct {
	AccessToken string `json:"access_token"`
	APIURL      string `json:"api_url"`
}

// SyncEmployees pulls the person list from RHiD and upserts it into the
// local employee table, logging every row under one batch id.
func (h *RHiDHandler) SyncEmployees(c *fiber.Ctx) error {
	var req rhidSyncRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Dados inválidos"})
	}
	if req.AccessToken == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Token de acesso é obrigatório"})
	}

	client := rhid.NewClient(req.APIURL)
	persons, err := client.ListPersons(req.AccessToken, 0, 1000)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Falha ao buscar funcionários do RHiD", "details": err.Error()})
	}

	batchID := uuid.NewString()
	synced, failed := 0, 0

	for _, person := range persons {
		if err := h.upsertPerson(person, batchID); err != nil {
			failed++
			continue
		}
		synced++
	}

	return c.JSON(fiber.Map{
		"message":  "Sincronização concluída",
		"batch_id": batchID,
		"total":    len(persons),
		"synced":   synced,
		"errors":   failed,
	})
}

func (h *RHiDHandler) upsertPerson(person rhid.Person, batchID string) error {
	rhidID := personID(person)
	now := time.Now()

	payrollNumber := person.Registration
	if payrollNumber == "" {
		payrollNumber = "000000"
	}

	existing, findErr := h.employeeRepo.FindByRHiDID(rhidID)

	syncType := "insert"
	var employee *model.Employee
	if findErr == nil {
		syncType = "update"
		employee = existing
	} else {
		employee = &model.Employee{}
	}

	employee.EmployeeCode = person.Code.String()
	employee.Name = person.Name
	employee.Document = person.CPF.String()
	employee.PayrollNumber = payrollNumber
	employee.CompanyPayrollNumber = "000000"
	employee.RHiDEmployeeID = rhidID
	employee.SyncStatus = "synced"
	employee.LastSyncedAt = &now
	employee.Active = person.Status == 1

	var err error
	if syncType == "update" {
		err = h.employeeRepo.Update(employee)
	} else {
		err = h.employeeRepo.Create(employee)
	}

	entry := model.EmployeeSyncLog{
		EmployeeID:     employee.ID,
		RHiDEmployeeID: rhidID,
		BatchID:        batchID,
		SyncType:       syncType,
		SyncStatus:     "success",
	}
	if err != nil {
		entry.SyncStatus = "error"
		entry.Message = err.Error()
	}
	h.syncLogRepo.Create(&entry)

	return err
}

// GetSyncLog lists the most recent sync entries (optionally one batch).
func (h *RHiDHandler) GetSyncLog(c *fiber.Ctx) error {
	if batch := c.Query("batch_id"); batch != "" {
		entries, err := h.syncLogRepo.GetByBatch(batch)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Falha ao buscar log de sincronização"})
		}
		return c.JSON(fiber.Map{"data": entries})
	}

	entries, err := h.syncLogRepo.GetRecent(100)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Falha ao buscar log de sincronização"})
	}
	return c.JSON(fiber.Map{"data": entries})
}

func personID(person rhid.Person) string {
	return strconv.Itoa(person.ID)
}
