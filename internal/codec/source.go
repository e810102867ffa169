package codec

import "strings"

// SourceKind classifies a field source into the value it pulls from the
// record. The legacy layouts store free-form source strings (Portuguese or
// English), so classification still accepts the historical names, but the
// rest of the codec only ever sees the closed enumeration below.
type SourceKind int

const (
	SourceGeneric SourceKind = iota
	SourceCompanyPayrollNumber
	SourcePayrollNumber
	SourceEmployeeName
	SourceEmployeeCode
	SourceEventCode
	SourceDate
	SourceValue
	SourceDuration
)

func ClassifySource(source string) SourceKind {
	switch source {
	case "numero_folha_empresa", "company_payroll_number":
		return SourceCompanyPayrollNumber
	case "numero_matricula", "numero_folha", "payroll_number":
		return SourcePayrollNumber
	case "nome_funcionario":
		return SourceEmployeeName
	case "codigo_funcionario", "employee_code":
		return SourceEmployeeCode
	case "codigo_evento":
		return SourceEventCode
	}

	switch {
	case containsAny(source, "data", "date", "dia", "mes", "ano"):
		return SourceDate
	case containsAny(source, "valor", "value"):
		return SourceValue
	case containsAny(source, "hora", "hour"):
		return SourceDuration
	}
	return SourceGeneric
}

func containsAny(s string, tokens ...string) bool {
	for _, tok := range tokens {
		if strings.Contains(s, tok) {
			return true
		}
	}
	return false
}
