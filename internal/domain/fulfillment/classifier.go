package fulfillment

// State estado discreto de avance derivado de un porcentaje.
type State string

const (
	StateNotStarted State = "not_started" // 0%
	StatePartial    State = "partial"     // 1–99%
	StateComplete   State = "complete"    // >= 100%
)

// Severity orden de énfasis visual: NotStarted < Partial < Complete.
type Severity int

const (
	SeverityNone    Severity = 0 // sin avance
	SeverityWarning Severity = 1 // avance parcial
	SeveritySuccess Severity = 2 // completo
)

// Progress clasificación de un porcentaje: estado, etiqueta legible y énfasis.
type Progress struct {
	State    State
	Label    string
	Severity Severity
}

// classify aplica los cortes 0 / 1–99 / >=100. Porcentajes negativos no
// ocurren con cantidades no negativas; se tratan como cero.
func classify(pct int, zeroLabel string) Progress {
	switch {
	case pct >= 100:
		return Progress{State: StateComplete, Label: "Complete", Severity: SeveritySuccess}
	case pct >= 1:
		return Progress{State: StatePartial, Label: "Partial", Severity: SeverityWarning}
	default:
		return Progress{State: StateNotStarted, Label: zeroLabel, Severity: SeverityNone}
	}
}

// ClassifyFulfillment clasifica un porcentaje de cumplimiento físico.
func ClassifyFulfillment(pct int) Progress {
	return classify(pct, "Not Started")
}

// ClassifyInvoiced clasifica un porcentaje de facturación. Misma escala que
// el cumplimiento pero con etiqueta propia para el estado cero.
func ClassifyInvoiced(pct int) Progress {
	return classify(pct, "Not Invoiced")
}
