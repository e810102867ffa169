package config

import (
	"fmt"

	"folha-ponto-backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	// Format: user:password@tcp(127.0.0.1:3306)/dbname?charset=utf8mb4&parseTime=True&loc=Local
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		GetEnv("DB_USER", "root"),
		GetEnv("DB_PASSWORD", ""),
		GetEnv("DB_HOST", "127.0.0.1"),
		GetEnv("DB_PORT", "3306"),
		GetEnv("DB_NAME", "folha_ponto"),
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("Falha ao conectar no banco de dados!")
	}

	fmt.Println("Conexão com o banco de dados estabelecida!")

	// Auto Migration: cria as tabelas a partir dos structs em internal/model
	db.AutoMigrate(&model.User{})
	db.AutoMigrate(&model.Employee{})
	db.AutoMigrate(&model.PayrollEvent{})
	db.AutoMigrate(&model.EventLaunch{})
	db.AutoMigrate(&model.ExportLayout{})
	db.AutoMigrate(&model.LayoutField{})
	db.AutoMigrate(&model.EmployeeSyncLog{})

	DB = db
}
