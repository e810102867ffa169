package model

import "gorm.io/gorm"

type ExportLayout struct {
	gorm.Model
	Name        string `json:"name" gorm:"unique;not null"`
	Description string `json:"description"`
	HeaderText  string `json:"header_text"` // reservado, não entra na montagem do arquivo
	FooterText  string `json:"footer_text"` // reservado, não entra na montagem do arquivo

	FieldSeparator   string `json:"field_separator" gorm:"default:none"`   // none/space/dash/dot/underscore/semicolon
	DecimalSeparator string `json:"decimal_separator" gorm:"default:dot"`  // dot/comma/none
	ReportType       string `json:"report_type" gorm:"default:one_event_per_line"` // one_event_per_line/one_employee_per_line

	MultiplyExtraFactor bool    `json:"multiply_extra_factor"`
	MultiplyNightFactor bool    `json:"multiply_night_factor"`
	ExtraFactor         float64 `json:"extra_factor" gorm:"default:1.5"`
	NightFactor         float64 `json:"night_factor" gorm:"default:1.2"`

	Fields []LayoutField `json:"fields,omitempty" gorm:"foreignKey:LayoutID"`
}

type LayoutField struct {
	gorm.Model
	LayoutID  uint   `json:"layout_id" gorm:"index;not null"`
	FieldName string `json:"field_name"`
	FieldType string `json:"field_type" gorm:"default:text"`

	FieldSource   string `json:"field_source"`
	FormatPattern string `json:"format_pattern"`
	DefaultValue  string `json:"default_value"`

	OrderPosition int `json:"order_position"`
	FieldSize     int `json:"field_size"`
	StartPosition int `json:"start_position"` // coluna inicial, base 1
	EndPosition   int `json:"end_position"`   // coluna final, inclusiva

	FillType           string `json:"fill_type" gorm:"default:spaces"`     // spaces/zeros/dash
	DateFormat         string `json:"date_format" gorm:"default:aaaammdd"` // aaaa, ddmmaaaa, dd/mm/aaaa, ...
	DecimalPlaces      int    `json:"decimal_places"`
	Alignment          string `json:"alignment" gorm:"default:right"` // right/left
	IsAggregationField bool   `json:"is_aggregation_field"`
}

// RecalculateFieldPositions rewrites order, start and end positions so the
// layout stays contiguous after any insert, delete, reorder or resize.
// Fields are laid out in order-position order; positions are 1-based and
// inclusive, so end = start + size - 1.
func RecalculateFieldPositions(fields []LayoutField) {
	cursor := 1
	for i := range fields {
		fields[i].OrderPosition = i + 1
		fields[i].StartPosition = cursor
		fields[i].EndPosition = cursor + fields[i].FieldSize - 1
		cursor += fields[i].FieldSize
	}
}
