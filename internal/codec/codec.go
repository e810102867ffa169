// Package codec renders payroll records into fixed-width text lines
// according to a user-configurable export layout. Everything here is a
// pure function over the values passed in; layouts are never ambient
// state, so distinct layouts can be rendered concurrently.
package codec

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Layout is the line-level policy of one export format.
type Layout struct {
	Name             string
	FieldSeparator   string // none/space/dash/dot/underscore/semicolon
	DecimalSeparator string // dot/comma/none
	ReportType       string

	MultiplyExtraFactor bool
	MultiplyNightFactor bool
	ExtraFactor         float64
	NightFactor         float64
}

const (
	ReportOneEventPerLine    = "one_event_per_line"
	ReportOneEmployeePerLine = "one_employee_per_line"
)

const (
	FillSpaces = "spaces"
	FillZeros  = "zeros"
	FillDash   = "dash"

	AlignRight = "right"
	AlignLeft  = "left"
)

// Field describes one fixed-width column of a layout.
type Field struct {
	Name               string
	Source             string
	Size               int
	FillType           string
	Alignment          string
	DateFormat         string
	DecimalPlaces      int
	DefaultValue       string
	FormatPattern      string
	IsAggregationField bool
}

// Record is the bundle of values one launch can supply to a field.
type Record struct {
	CompanyPayrollNumber string
	PayrollNumber        string
	EmployeeName         string
	EmployeeCode         string
	EmployeeKey          string // grouping key for one-employee-per-line layouts
	EventCode            string
	Date                 time.Time
	TotalValue           float64
	Quantity             float64
	Generic              string
}

// Event codes that carry these markers have the layout factors applied.
const (
	markerExtra = "EXTRA"
	markerNight = "NOTURNO"
)

// ApplyFactors multiplies an amount by the layout's extra and night
// factors when the event code carries the matching marker. Both can
// apply, extra first.
func ApplyFactors(value float64, l Layout, eventCode string) float64 {
	if l.MultiplyExtraFactor && strings.Contains(eventCode, markerExtra) {
		value *= l.ExtraFactor
	}
	if l.MultiplyNightFactor && strings.Contains(eventCode, markerNight) {
		value *= l.NightFactor
	}
	return value
}

// FormatDate renders a date in one of the layout date formats.
// Unrecognized formats fall back to aaaammdd.
func FormatDate(t time.Time, format string) string {
	switch format {
	case "aaaa":
		return t.Format("2006")
	case "ddmmaaaa":
		return t.Format("02012006")
	case "dd/mm/aaaa":
		return t.Format("02/01/2006")
	case "dd/mm/aa":
		return t.Format("02/01/06")
	case "aaaammdd":
		return t.Format("20060102")
	case "aaaa-mm-dd":
		return t.Format("2006-01-02")
	case "ddmmaa":
		return t.Format("020106")
	case "aaaamm":
		return t.Format("200601")
	case "mmaaaa":
		return t.Format("012006")
	case "mm":
		return t.Format("01")
	case "dd":
		return t.Format("02")
	default:
		return t.Format("20060102")
	}
}

// FormatDecimal renders a plain two-decimal value honoring the layout's
// decimal separator policy.
func FormatDecimal(value float64, decimalSeparator string) string {
	s := strconv.FormatFloat(value, 'f', 2, 64)
	switch decimalSeparator {
	case "none":
		return strings.Replace(s, ".", "", 1)
	case "comma":
		return strings.Replace(s, ".", ",", 1)
	default:
		return s
	}
}

// SeparatorChar maps the stored separator token to the literal placed
// between fields on a line.
func SeparatorChar(separator string) string {
	switch separator {
	case "space":
		return " "
	case "dash":
		return "-"
	case "dot":
		return "."
	case "underscore":
		return "_"
	case "semicolon":
		return ";"
	default:
		return ""
	}
}

// RenderField renders one field against one record. The result is always
// exactly Size characters: longer content is truncated, shorter content is
// padded with the fill character on the side opposite to the alignment.
func RenderField(f Field, l Layout, r Record) string {
	out, _ := renderField(f, l, r)
	return out
}

func renderField(f Field, l Layout, r Record) (string, bool) {
	return pad(resolveValue(f, l, r), f)
}

func resolveValue(f Field, l Layout, r Record) string {
	switch ClassifySource(f.Source) {
	case SourceCompanyPayrollNumber:
		return r.CompanyPayrollNumber
	case SourcePayrollNumber:
		return r.PayrollNumber
	case SourceEmployeeName:
		return r.EmployeeName
	case SourceEmployeeCode:
		return r.EmployeeCode
	case SourceEventCode:
		// the default value pins a fixed event code on the field
		if f.DefaultValue != "" {
			return f.DefaultValue
		}
		return r.EventCode
	case SourceDate:
		return FormatDate(r.Date, f.DateFormat)
	case SourceValue:
		v := ApplyFactors(r.TotalValue, l, r.EventCode)
		if f.DecimalPlaces > 0 {
			return strconv.FormatInt(int64(math.Round(v*math.Pow10(f.DecimalPlaces))), 10)
		}
		return strconv.FormatInt(int64(math.Floor(v)), 10)
	case SourceDuration:
		return strconv.FormatInt(int64(r.Quantity), 10)
	default:
		if r.Generic != "" {
			return r.Generic
		}
		return f.DefaultValue
	}
}

func fillChar(fillType string) string {
	switch fillType {
	case FillZeros:
		return "0"
	case FillDash:
		return "-"
	default:
		return " "
	}
}

// pad truncates or pads value to the field size. Returns true when data
// was lost to truncation so the assembler can report it.
func pad(value string, f Field) (string, bool) {
	if f.Size <= 0 {
		return value, false
	}
	runes := []rune(value)
	if len(runes) > f.Size {
		return string(runes[:f.Size]), true
	}
	if len(runes) < f.Size {
		padding := strings.Repeat(fillChar(f.FillType), f.Size-len(runes))
		if f.Alignment == AlignLeft {
			return value + padding, false
		}
		return padding + value, false
	}
	return value, false
}
