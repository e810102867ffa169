package database

import (
	"log"

	"folha-ponto-backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedAll(db *gorm.DB) {
	// 1. Usuário admin
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := model.User{
		Name:     "Administrador",
		Email:    "admin@folha.local",
		Password: string(hashedPassword),
	}
	result := db.FirstOrCreate(&admin, model.User{Email: admin.Email})
	if result.Error == nil {
		// mantém a senha sincronizada com "admin123" em ambiente de dev
		db.Model(&admin).Update("password", string(hashedPassword))
		log.Println("Seed do admin concluído!")
	}

	// 2. Eventos padrão da folha
	events := []model.PayrollEvent{
		{Code: "2805", Description: "Hora Extra 100%"},
		{Code: "2806", Description: "Hora Extra 50%"},
		{Code: "2807", Description: "Falta Injustificada"},
		{Code: "2808", Description: "Falta Justificada"},
		{Code: "2809", Description: "Atestado Médico"},
	}
	for _, e := range events {
		db.FirstOrCreate(&e, model.PayrollEvent{Code: e.Code})
	}

	// 3. Layout de demonstração
	layout := model.ExportLayout{
		Name:             "Folha Padrão",
		Description:      "Layout de exemplo: matrícula + evento + competência + valor",
		FieldSeparator:   "none",
		DecimalSeparator: "dot",
		ReportType:       "one_event_per_line",
		ExtraFactor:      1.5,
		NightFactor:      1.2,
	}
	db.FirstOrCreate(&layout, model.ExportLayout{Name: layout.Name})

	var count int64
	db.Model(&model.LayoutField{}).Where("layout_id = ?", layout.ID).Count(&count)
	if count == 0 {
		fields := []model.LayoutField{
			{LayoutID: layout.ID, FieldName: "Número da Folha", FieldSource: "numero_folha", FieldSize: 6, FillType: "zeros", Alignment: "right"},
			{LayoutID: layout.ID, FieldName: "Código do Evento", FieldSource: "codigo_evento", FieldSize: 4, FillType: "spaces", Alignment: "right"},
			{LayoutID: layout.ID, FieldName: "Competência", FieldSource: "mes_referencia", FieldSize: 6, FillType: "zeros", Alignment: "right", DateFormat: "aaaamm"},
			{LayoutID: layout.ID, FieldName: "Valor do Evento", FieldSource: "valor_evento", FieldSize: 10, FillType: "zeros", Alignment: "right", DecimalPlaces: 2},
		}
		model.RecalculateFieldPositions(fields)
		for i := range fields {
			db.Create(&fields[i])
		}
		log.Println("Seed do layout de demonstração concluído!")
	}
}
