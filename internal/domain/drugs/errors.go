package drugs

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingWeight y ErrUnitMismatch son los únicos fallos del cálculo.
	// Ambos envuelven ErrInvalidInput: el caller debe volver a pedir datos, no reintentar.
	ErrMissingWeight = &inputError{msg: "weight is required"}
	ErrUnitMismatch  = &inputError{msg: "concentration unit mismatch"}

	ErrDrugNotFound   = errors.New("no drug selected")
	ErrInvalidCatalog = errors.New("invalid catalog")
)

type inputError struct {
	msg string
}

func (e *inputError) Error() string { return e.msg }
func (e *inputError) Unwrap() error { return ErrInvalidInput }

// ErrorKind clasifica un error del cálculo para logs/métricas.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingWeight):
		return "missing_weight"
	case errors.Is(err, ErrUnitMismatch):
		return "unit_mismatch"
	case errors.Is(err, ErrDrugNotFound):
		return "drug_not_found"
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	default:
		return "internal"
	}
}
