package balance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func minutes(matricula, codigo string, valor int) Event {
	return Event{Empresa: "0001", Ano: 2025, Mes: 10, Matricula: matricula, CodigoEvento: codigo, ValorEvento: valor}
}

func TestReconcileOffsetsAbsenceFromOvertime100(t *testing.T) {
	events := []Event{
		minutes("000123", "2805", 120), // 2h extra 100%
		minutes("000123", "2807", 90),  // 1.5h falta injustificada
	}

	results := Reconcile(events, DefaultCodeTable())
	if assert.Len(t, results, 1) {
		r := results[0]
		assert.Equal(t, "000123", r.Matricula)
		assert.InDelta(t, 0.5, r.ExtrasRestantes, 1e-9)
		assert.InDelta(t, 0, r.FaltasRestantes, 1e-9)
	}
}

func TestReconcileFallsBackToOvertime50(t *testing.T) {
	events := []Event{
		minutes("000001", "2805", 60),  // 1h extra 100%
		minutes("000001", "2806", 120), // 2h extra 50%
		minutes("000001", "2807", 150), // 2.5h falta
	}

	results := Reconcile(events, DefaultCodeTable())
	r := results[0]
	// 2.5h de falta: 1h sai das extras 100%, 1.5h das extras 50%
	assert.InDelta(t, 0.5, r.ExtrasRestantes, 1e-9)
	assert.InDelta(t, 0, r.FaltasRestantes, 1e-9)
}

func TestReconcileLeavesDeficitWhenOvertimeIsNotEnough(t *testing.T) {
	events := []Event{
		minutes("000002", "2805", 30), // 0.5h
		minutes("000002", "2806", 30), // 0.5h
		minutes("000002", "2807", 90), // 1.5h falta
	}

	results := Reconcile(events, DefaultCodeTable())
	r := results[0]
	assert.InDelta(t, 0, r.ExtrasRestantes, 1e-9)
	assert.InDelta(t, 0.5, r.FaltasRestantes, 1e-9)
}

func TestReconcileConservation(t *testing.T) {
	cases := []struct {
		name                 string
		ot100, ot50, absence int // minutos
	}{
		{"sobra extra", 120, 60, 90},
		{"consome tudo", 60, 30, 200},
		{"sem faltas", 90, 45, 0},
		{"sem extras", 0, 0, 75},
	}

	for _, tc := range cases {
		events := []Event{
			minutes("000009", "2805", tc.ot100),
			minutes("000009", "2806", tc.ot50),
			minutes("000009", "2807", tc.absence),
		}
		r := Reconcile(events, DefaultCodeTable())[0]

		before := float64(tc.ot100+tc.ot50) / 60
		absence := float64(tc.absence) / 60
		expectedDecrease := absence
		if absence > before {
			expectedDecrease = before
		}
		assert.InDelta(t, before-expectedDecrease, r.ExtrasRestantes, 1e-9, tc.name)
		assert.InDelta(t, absence-expectedDecrease, r.FaltasRestantes, 1e-9, tc.name)
	}
}

func TestReconcilePassesThroughInformationalBuckets(t *testing.T) {
	events := []Event{
		minutes("000123", "2808", 120), // faltas justificadas
		minutes("000123", "2809", 480), // atestados
		minutes("000123", "2807", 60),  // falta sem extras para compensar
	}

	r := Reconcile(events, DefaultCodeTable())[0]
	assert.InDelta(t, 2, r.FaltasJustificadas, 1e-9)
	assert.InDelta(t, 8, r.Atestados, 1e-9)
	assert.InDelta(t, 1, r.FaltasRestantes, 1e-9)
}

func TestReconcileGroupsByMatriculaPreservingOrder(t *testing.T) {
	events := []Event{
		minutes("000222", "2805", 60),
		minutes("000111", "2805", 60),
		minutes("000222", "2805", 60),
	}

	results := Reconcile(events, DefaultCodeTable())
	if assert.Len(t, results, 2) {
		assert.Equal(t, "000222", results[0].Matricula)
		assert.InDelta(t, 2, results[0].ExtrasRestantes, 1e-9)
		assert.Equal(t, "000111", results[1].Matricula)
	}
}

func TestReconcileCustomCodeTable(t *testing.T) {
	table := CodeTable{
		Overtime100:        []string{"2901"},
		Overtime50:         []string{"2902"},
		UnjustifiedAbsence: []string{"2903"},
	}
	events := []Event{
		minutes("000123", "2901", 120),
		minutes("000123", "2903", 60),
		minutes("000123", "2805", 600), // código fora da tabela é ignorado
	}

	r := Reconcile(events, table)[0]
	assert.InDelta(t, 1, r.ExtrasRestantes, 1e-9)
	assert.InDelta(t, 0, r.FaltasRestantes, 1e-9)
}
