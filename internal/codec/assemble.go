package codec

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrEmptyResultSet is returned when no record falls inside the requested
// window. Callers decide whether that is an error or a no-op.
var ErrEmptyResultSet = errors.New("nenhum lançamento encontrado no período selecionado")

// Warning is a non-fatal diagnostic produced while assembling a document.
// The output stays lossy on truncation for compatibility with the files
// payroll systems already accept, but every loss is reported here.
type Warning struct {
	Line    int    `json:"line"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Generate assembles the export document for one layout over a batch of
// records. Records are expected in the caller's order (the handlers order
// by employee then launch date). Lines are joined with \n and there is no
// trailing newline, header or footer.
func Generate(l Layout, fields []Field, records []Record) (string, []Warning, error) {
	if len(records) == 0 {
		return "", nil, ErrEmptyResultSet
	}

	separator := SeparatorChar(l.FieldSeparator)
	var lines []string
	var warnings []Warning

	if l.ReportType == ReportOneEmployeePerLine {
		keys, groups := groupByEmployee(records)
		for i, key := range keys {
			line, w := assembleEmployeeLine(l, fields, groups[key], i+1)
			lines = append(lines, strings.Join(line, separator))
			warnings = append(warnings, w...)
		}
	} else {
		for i, record := range records {
			parts := make([]string, 0, len(fields))
			for _, f := range fields {
				value, truncated := renderField(f, l, record)
				if truncated {
					warnings = append(warnings, truncationWarning(i+1, f))
				}
				parts = append(parts, value)
			}
			lines = append(lines, strings.Join(parts, separator))
		}
	}

	return strings.Join(lines, "\n"), warnings, nil
}

// assembleEmployeeLine renders one aggregated line. Identity and date
// fields come from the group's first record; fields named like "Valor"
// carry the factor-adjusted sum over the whole group.
func assembleEmployeeLine(l Layout, fields []Field, group []Record, lineNo int) ([]string, []Warning) {
	first := group[0]
	parts := make([]string, 0, len(fields))
	var warnings []Warning

	for _, f := range fields {
		var value string

		if strings.Contains(f.Name, "Valor") {
			total := 0.0
			for _, record := range group {
				total += ApplyFactors(record.TotalValue, l, record.EventCode)
			}
			switch f.Name {
			case "Valor (Inteiro)":
				value = strconv.FormatInt(int64(math.Floor(total)), 10)
			case "Valor (Decimal)":
				dec := int(math.Round((total - math.Floor(total)) * 100))
				value = fmt.Sprintf("%02d", dec)
			default:
				value = FormatDecimal(total, l.DecimalSeparator)
			}
		} else {
			var truncated bool
			value, truncated = renderField(f, l, first)
			if truncated {
				warnings = append(warnings, truncationWarning(lineNo, f))
			}
		}

		// masks with zero-digit tokens force a secondary zero pad up to
		// the mask length, on top of the field's own fill padding
		if strings.Contains(f.FormatPattern, "0") && value != "" {
			value = padStartZeros(value, len(f.FormatPattern))
		}

		parts = append(parts, value)
	}
	return parts, warnings
}

func groupByEmployee(records []Record) ([]string, map[string][]Record) {
	var order []string
	groups := make(map[string][]Record)
	for _, record := range records {
		if _, seen := groups[record.EmployeeKey]; !seen {
			order = append(order, record.EmployeeKey)
		}
		groups[record.EmployeeKey] = append(groups[record.EmployeeKey], record)
	}
	return order, groups
}

func padStartZeros(value string, size int) string {
	runes := []rune(value)
	if len(runes) >= size {
		return value
	}
	return strings.Repeat("0", size-len(runes)) + value
}

func truncationWarning(line int, f Field) Warning {
	return Warning{
		Line:    line,
		Field:   f.Name,
		Message: fmt.Sprintf("valor excede o tamanho do campo (%d caracteres) e foi truncado", f.Size),
	}
}
