// Package balance decodes the legacy fixed-width time-tracking file and
// reconciles overtime balances against absence balances per employee.
package balance

import (
	"fmt"
	"strconv"
	"strings"
)

// Event is one decoded line of the legacy time file.
// Column map (0-based, end-exclusive): [0,4) empresa, [4,8) ano,
// [8,10) mês, [10,16) matrícula, [16,20) código do evento,
// [20,29) valor em minutos.
type Event struct {
	Empresa      string `json:"empresa"`
	Ano          int    `json:"ano"`
	Mes          int    `json:"mes"`
	Matricula    string `json:"matricula"`
	CodigoEvento string `json:"codigo_evento"`
	ValorEvento  int    `json:"valor_evento"` // minutos
}

// Warning marks a malformed input line. The line still produces an Event
// with zero/empty placeholders and parsing continues.
type Warning struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

const minLineLength = 29

// ParseFile decodes raw .txt content (LF or CRLF) into events, one per
// non-blank line, in input order.
func ParseFile(content string) ([]Event, []Warning) {
	var events []Event
	var warnings []Warning

	for i, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		event, ok := decodeLine(line)
		if !ok {
			msg := "registro com campos numéricos inválidos"
			if len(line) < minLineLength {
				msg = fmt.Sprintf("registro curto (%d caracteres, mínimo %d)", len(line), minLineLength)
			}
			warnings = append(warnings, Warning{Line: i + 1, Message: msg})
		}
		events = append(events, event)
	}
	return events, warnings
}

func decodeLine(line string) (Event, bool) {
	event := Event{
		Empresa:      cut(line, 0, 4),
		Matricula:    cut(line, 10, 16),
		CodigoEvento: cut(line, 16, 20),
	}

	ano, okAno := atoi(cut(line, 4, 8))
	mes, okMes := atoi(cut(line, 8, 10))
	valor, okValor := atoi(cut(line, 20, 29))
	event.Ano = ano
	event.Mes = mes
	event.ValorEvento = valor

	return event, len(line) >= minLineLength && okAno && okMes && okValor
}

// cut is a clamped substring: out-of-range slices yield "" instead of
// panicking, mirroring how the legacy importer treated short lines.
func cut(s string, start, end int) string {
	if start >= len(s) {
		return ""
	}
	if end > len(s) {
		end = len(s)
	}
	return s[start:end]
}

func atoi(s string) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return v, true
}
