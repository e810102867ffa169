package codec

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRenderFieldPayrollNumberZeroFilled(t *testing.T) {
	f := Field{Name: "Número da Folha", Source: "numero_folha", Size: 6, FillType: FillZeros}
	out := RenderField(f, Layout{}, Record{PayrollNumber: "42"})
	assert.Equal(t, "000042", out)
}

func TestRenderFieldEventCodePinnedByDefaultValue(t *testing.T) {
	f := Field{Name: "Código do Evento", Source: "codigo_evento", Size: 4, FillType: FillSpaces, DefaultValue: "0013"}
	out := RenderField(f, Layout{}, Record{EventCode: "2805"})
	assert.Equal(t, "0013", out)

	f.DefaultValue = ""
	out = RenderField(f, Layout{}, Record{EventCode: "2805"})
	assert.Equal(t, "2805", out)
}

func TestRenderFieldDateFormats(t *testing.T) {
	d := date(2025, time.October, 4)
	cases := map[string]string{
		"aaaa":       "2025",
		"ddmmaaaa":   "04102025",
		"dd/mm/aaaa": "04/10/2025",
		"dd/mm/aa":   "04/10/25",
		"aaaammdd":   "20251004",
		"aaaa-mm-dd": "2025-10-04",
		"ddmmaa":     "041025",
		"aaaamm":     "202510",
		"mmaaaa":     "102025",
		"mm":         "10",
		"dd":         "04",
		"qualquer":   "20251004", // formato desconhecido cai no padrão
	}
	for format, want := range cases {
		assert.Equal(t, want, FormatDate(d, format), "formato %q", format)
	}
}

func TestRenderFieldDateSource(t *testing.T) {
	f := Field{Name: "Data", Source: "data_evento", Size: 10, FillType: FillSpaces, DateFormat: "dd/mm/aaaa"}
	out := RenderField(f, Layout{}, Record{Date: date(2025, time.October, 4)})
	assert.Equal(t, "04/10/2025", out)
}

func TestRenderFieldValueWithExtraFactor(t *testing.T) {
	l := Layout{MultiplyExtraFactor: true, ExtraFactor: 1.5}
	f := Field{Name: "Valor", Source: "valor_evento", Size: 6, FillType: FillZeros, DecimalPlaces: 2}
	out := RenderField(f, l, Record{TotalValue: 21.36, EventCode: "HORA EXTRA 50"})
	assert.Equal(t, "003204", out) // 21.36 * 1.5 = 32.04 -> 3204
}

func TestRenderFieldValueWithoutDecimalPlacesFloors(t *testing.T) {
	f := Field{Name: "Valor", Source: "valor_evento", Size: 5, FillType: FillZeros}
	out := RenderField(f, Layout{}, Record{TotalValue: 123.99})
	assert.Equal(t, "00123", out)
}

func TestApplyFactorsCompound(t *testing.T) {
	l := Layout{
		MultiplyExtraFactor: true, ExtraFactor: 1.5,
		MultiplyNightFactor: true, NightFactor: 1.2,
	}
	assert.InDelta(t, 180, ApplyFactors(100, l, "EXTRA NOTURNO"), 1e-9)
	assert.InDelta(t, 150, ApplyFactors(100, l, "EXTRA DIURNA"), 1e-9)
	assert.InDelta(t, 120, ApplyFactors(100, l, "ADICIONAL NOTURNO"), 1e-9)
	assert.InDelta(t, 100, ApplyFactors(100, l, "2805"), 1e-9)
}

func TestRenderFieldDurationTruncatesToInteger(t *testing.T) {
	f := Field{Name: "Horas", Source: "qtd_horas", Size: 3, FillType: FillZeros}
	out := RenderField(f, Layout{}, Record{Quantity: 8.75})
	assert.Equal(t, "008", out)
}

func TestRenderFieldUnknownSourceFallsBack(t *testing.T) {
	f := Field{Name: "Texto fixo", Source: "texto_fixo", Size: 5, FillType: FillSpaces, DefaultValue: "ABC"}
	assert.Equal(t, "  ABC", RenderField(f, Layout{}, Record{}))

	// valor genérico fornecido pelo chamador tem prioridade
	assert.Equal(t, "  XYZ", RenderField(f, Layout{}, Record{Generic: "XYZ"}))

	f.DefaultValue = ""
	assert.Equal(t, "     ", RenderField(f, Layout{}, Record{}))
}

func TestRenderFieldSizeInvariant(t *testing.T) {
	record := Record{
		CompanyPayrollNumber: "12",
		PayrollNumber:        "123456789",
		EmployeeName:         "Maria das Dores Conceicao",
		EventCode:            "2805",
		Date:                 date(2025, time.January, 31),
		TotalValue:           987.65,
		Quantity:             8,
	}
	sources := []string{"numero_folha_empresa", "numero_folha", "nome_funcionario", "codigo_evento", "data_evento", "valor_evento", "qtd_horas", "texto_fixo"}
	for _, source := range sources {
		for _, fill := range []string{FillSpaces, FillZeros, FillDash} {
			for _, size := range []int{1, 4, 8, 30} {
				f := Field{Name: source, Source: source, Size: size, FillType: fill}
				out := RenderField(f, Layout{}, record)
				assert.Len(t, out, size, "source=%s fill=%s size=%d", source, fill, size)
			}
		}
	}
}

func TestRenderFieldTruncatesLongContent(t *testing.T) {
	f := Field{Name: "Nome", Source: "nome_funcionario", Size: 5, FillType: FillSpaces}
	out := RenderField(f, Layout{}, Record{EmployeeName: "Joaquim"})
	assert.Equal(t, "Joaqu", out)
}

func TestRenderFieldAlignment(t *testing.T) {
	f := Field{Name: "Nome", Source: "nome_funcionario", Size: 6, FillType: FillSpaces}

	// padrão (right): conteúdo à direita, preenchimento à esquerda
	assert.Equal(t, "   Ana", RenderField(f, Layout{}, Record{EmployeeName: "Ana"}))

	f.Alignment = AlignLeft
	assert.Equal(t, "Ana   ", RenderField(f, Layout{}, Record{EmployeeName: "Ana"}))

	f.Alignment = AlignRight
	f.FillType = FillDash
	assert.Equal(t, "---Ana", RenderField(f, Layout{}, Record{EmployeeName: "Ana"}))
}

func TestRenderFieldIsPure(t *testing.T) {
	f := Field{Name: "Valor", Source: "valor_evento", Size: 8, FillType: FillZeros, DecimalPlaces: 2}
	l := Layout{MultiplyExtraFactor: true, ExtraFactor: 1.5}
	r := Record{TotalValue: 21.36, EventCode: "EXTRA"}

	first := RenderField(f, l, r)
	second := RenderField(f, l, r)
	assert.Equal(t, first, second)
}

func TestFormatDecimal(t *testing.T) {
	assert.Equal(t, "12.34", FormatDecimal(12.34, "dot"))
	assert.Equal(t, "12,34", FormatDecimal(12.34, "comma"))
	assert.Equal(t, "1234", FormatDecimal(12.34, "none"))
	assert.Equal(t, "12.00", FormatDecimal(12, "dot"))
}

func TestClassifySource(t *testing.T) {
	cases := map[string]SourceKind{
		"numero_folha_empresa": SourceCompanyPayrollNumber,
		"numero_matricula":     SourcePayrollNumber,
		"numero_folha":         SourcePayrollNumber,
		"nome_funcionario":     SourceEmployeeName,
		"codigo_funcionario":   SourceEmployeeCode,
		"codigo_evento":        SourceEventCode,
		"data_evento":          SourceDate,
		"dia_inicial":          SourceDate,
		"mes_referencia":       SourceDate,
		"ano_referencia":       SourceDate,
		"valor_evento":         SourceValue,
		"qtd_horas":            SourceDuration,
		"texto_fixo":           SourceGeneric,
		"nome_evento":          SourceGeneric,
		"id_empresa":           SourceGeneric,
	}
	for source, want := range cases {
		assert.Equal(t, want, ClassifySource(source), "source %q", source)
	}
}
