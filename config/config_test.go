package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("APP_PORT", "8080")
	assert.Equal(t, "8080", GetEnv("APP_PORT", "3000"))
	assert.Equal(t, "3000", GetEnv("APP_PORT_MISSING", "3000"))
}

func TestGetEnvAsInt(t *testing.T) {
	t.Setenv("DB_PORT", "3307")
	assert.Equal(t, 3307, GetEnvAsInt("DB_PORT", 3306))

	t.Setenv("DB_PORT", "abc")
	assert.Equal(t, 3306, GetEnvAsInt("DB_PORT", 3306))
}

func TestLoadCodeTableDefaults(t *testing.T) {
	table := LoadCodeTable()
	assert.Equal(t, []string{"2805"}, table.Overtime100)
	assert.Equal(t, []string{"2806"}, table.Overtime50)
	assert.Equal(t, []string{"2807"}, table.UnjustifiedAbsence)
	assert.Equal(t, []string{"2808"}, table.JustifiedAbsence)
	assert.Equal(t, []string{"2809"}, table.MedicalCertificate)
}

func TestLoadCodeTableOverrides(t *testing.T) {
	t.Setenv("EVENT_CODES_OVERTIME100", "2901, 2905")
	t.Setenv("EVENT_CODES_UNJUSTIFIED", "2903")
	t.Setenv("EVENT_CODES_MEDICAL", " , ") // somente separadores cai no padrão

	table := LoadCodeTable()
	assert.Equal(t, []string{"2901", "2905"}, table.Overtime100)
	assert.Equal(t, []string{"2903"}, table.UnjustifiedAbsence)
	assert.Equal(t, []string{"2806"}, table.Overtime50)
	assert.Equal(t, []string{"2809"}, table.MedicalCertificate)
}
