package reference

// Entry es una fila de la tabla de referencia clínica (dosis en adultos, IV).
type Entry struct {
	Agent           string
	TradeName       string
	InitialDose     string
	MaintenanceDose string
	MaxDose         string // shock refractario
}

type Table struct {
	Entries       []Entry
	Notes         []string
	Abbreviations string
}
