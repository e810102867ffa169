package balance

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func buildLine(empresa string, ano, mes int, matricula, codigo string, valor int) string {
	return fmt.Sprintf("%-4s%04d%02d%-6s%-4s%09d", empresa, ano, mes, matricula, codigo, valor)
}

func TestParseFileRoundTrip(t *testing.T) {
	line := buildLine("0001", 2025, 10, "000123", "2805", 120)
	assert.Len(t, line, 29)

	events, warnings := ParseFile(line)
	assert.Empty(t, warnings)
	if assert.Len(t, events, 1) {
		assert.Equal(t, Event{
			Empresa:      "0001",
			Ano:          2025,
			Mes:          10,
			Matricula:    "000123",
			CodigoEvento: "2805",
			ValorEvento:  120,
		}, events[0])
	}
}

func TestParseFileMultipleLinesInOrder(t *testing.T) {
	content := buildLine("0001", 2025, 1, "000001", "2805", 60) + "\n" +
		buildLine("0001", 2025, 1, "000002", "2807", 30)

	events, warnings := ParseFile(content)
	assert.Empty(t, warnings)
	assert.Len(t, events, 2)
	assert.Equal(t, "000001", events[0].Matricula)
	assert.Equal(t, "000002", events[1].Matricula)
}

func TestParseFileSkipsBlankLinesAndHandlesCRLF(t *testing.T) {
	content := "\r\n" + buildLine("0001", 2025, 2, "000009", "2806", 45) + "\r\n\r\n   \r\n"

	events, warnings := ParseFile(content)
	assert.Empty(t, warnings)
	if assert.Len(t, events, 1) {
		assert.Equal(t, "000009", events[0].Matricula)
		assert.Equal(t, 45, events[0].ValorEvento)
	}
}

func TestParseFileShortLineDoesNotAbort(t *testing.T) {
	short := "00012025" // termina antes da matrícula
	ok := buildLine("0001", 2025, 3, "000777", "2805", 90)

	events, warnings := ParseFile(short + "\n" + ok)
	assert.Len(t, events, 2)
	if assert.Len(t, warnings, 1) {
		assert.Equal(t, 1, warnings[0].Line)
	}

	// campos fora do alcance viram placeholders vazios/zero
	assert.Equal(t, "0001", events[0].Empresa)
	assert.Equal(t, 2025, events[0].Ano)
	assert.Equal(t, 0, events[0].Mes)
	assert.Equal(t, "", events[0].Matricula)
	assert.Equal(t, "", events[0].CodigoEvento)
	assert.Equal(t, 0, events[0].ValorEvento)

	// a linha seguinte é processada normalmente
	assert.Equal(t, "000777", events[1].Matricula)
	assert.Equal(t, 90, events[1].ValorEvento)
}

func TestParseFileNonNumericFieldsWarn(t *testing.T) {
	line := "0001XXXX10000123280500000012X"
	assert.Len(t, line, 29)

	events, warnings := ParseFile(line)
	assert.Len(t, events, 1)
	assert.Len(t, warnings, 1)
	assert.Equal(t, 0, events[0].Ano)
	assert.Equal(t, 0, events[0].ValorEvento)
}
