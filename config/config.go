package config

import (
	"os"
	"strconv"
	"strings"

	"folha-ponto-backend/internal/balance"
)

// Helper function to get environment variable with fallback default value
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper function to get environment variable as integer with fallback
func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

// JWTSecret is the HMAC key shared by the auth handler and the middleware.
func JWTSecret() []byte {
	return []byte(GetEnv("JWT_SECRET", "folha-ponto-dev-secret"))
}

// LoadCodeTable builds the event-code table for the balance engine.
// Each bucket accepts a comma separated list so a deployment can match
// whichever payroll vendor convention is in force (2805/2806 vs 2901/2902).
func LoadCodeTable() balance.CodeTable {
	def := balance.DefaultCodeTable()
	return balance.CodeTable{
		Overtime100:        envCodes("EVENT_CODES_OVERTIME100", def.Overtime100),
		Overtime50:         envCodes("EVENT_CODES_OVERTIME50", def.Overtime50),
		UnjustifiedAbsence: envCodes("EVENT_CODES_UNJUSTIFIED", def.UnjustifiedAbsence),
		JustifiedAbsence:   envCodes("EVENT_CODES_JUSTIFIED", def.JustifiedAbsence),
		MedicalCertificate: envCodes("EVENT_CODES_MEDICAL", def.MedicalCertificate),
	}
}

func envCodes(key string, fallback []string) []string {
	raw := GetEnv(key, "")
	if raw == "" {
		return fallback
	}
	var codes []string
	for _, c := range strings.Split(raw, ",") {
		if c = strings.TrimSpace(c); c != "" {
			codes = append(codes, c)
		}
	}
	if len(codes) == 0 {
		return fallback
	}
	return codes
}
