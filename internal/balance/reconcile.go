package balance

import "math"

// CodeTable maps payroll event codes to reconciliation buckets. The
// mapping differs between payroll vendors, so it is configuration, not
// code — config.LoadCodeTable reads overrides from the environment.
type CodeTable struct {
	Overtime100        []string `json:"overtime_100"`
	Overtime50         []string `json:"overtime_50"`
	UnjustifiedAbsence []string `json:"unjustified_absence"`
	JustifiedAbsence   []string `json:"justified_absence"`
	MedicalCertificate []string `json:"medical_certificate"`
}

// DefaultCodeTable is the convention the legacy importer shipped with.
func DefaultCodeTable() CodeTable {
	return CodeTable{
		Overtime100:        []string{"2805"},
		Overtime50:         []string{"2806"},
		UnjustifiedAbsence: []string{"2807"},
		JustifiedAbsence:   []string{"2808"},
		MedicalCertificate: []string{"2809"},
	}
}

// Result is the reconciled balance of one employee registration.
// FaltasJustificadas and Atestados are informational pass-throughs; the
// offsetting only consumes unjustified absences.
type Result struct {
	Matricula          string  `json:"matricula"`
	ExtrasRestantes    float64 `json:"extras_restantes"`    // horas
	FaltasRestantes    float64 `json:"faltas_restantes"`    // horas
	FaltasJustificadas float64 `json:"faltas_justificadas"` // horas
	Atestados          float64 `json:"atestados"`           // horas
}

// Reconcile groups events by matrícula (preserving encounter order), sums
// minutes per bucket, converts to hours and pays unjustified absences off
// from 100%-rate overtime first, then from 50%-rate overtime. Leftover
// absence hours after both offsets remain as a deficit.
func Reconcile(events []Event, table CodeTable) []Result {
	var order []string
	groups := make(map[string][]Event)
	for _, event := range events {
		if _, seen := groups[event.Matricula]; !seen {
			order = append(order, event.Matricula)
		}
		groups[event.Matricula] = append(groups[event.Matricula], event)
	}

	results := make([]Result, 0, len(order))
	for _, matricula := range order {
		group := groups[matricula]

		extras100 := sumHours(group, table.Overtime100)
		extras50 := sumHours(group, table.Overtime50)
		faltasInj := sumHours(group, table.UnjustifiedAbsence)
		faltasJust := sumHours(group, table.JustifiedAbsence)
		atestados := sumHours(group, table.MedicalCertificate)

		if faltasInj > 0 {
			desconto := math.Min(faltasInj, extras100)
			faltasInj -= desconto
			extras100 -= desconto
		}
		if faltasInj > 0 {
			desconto := math.Min(faltasInj, extras50)
			faltasInj -= desconto
			extras50 -= desconto
		}

		results = append(results, Result{
			Matricula:          matricula,
			ExtrasRestantes:    extras100 + extras50,
			FaltasRestantes:    faltasInj,
			FaltasJustificadas: faltasJust,
			Atestados:          atestados,
		})
	}
	return results
}

func sumHours(events []Event, codes []string) float64 {
	total := 0
	for _, event := range events {
		for _, code := range codes {
			if event.CodigoEvento == code {
				total += event.ValorEvento
				break
			}
		}
	}
	return float64(total) / 60
}
