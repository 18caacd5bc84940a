package drugs

import "strconv"

// Unit es la unidad en la que viene expresada la cantidad de droga de una preparación.
type Unit string

const (
	UnitMg    Unit = "mg"
	UnitMcg   Unit = "mcg"
	UnitUnits Unit = "units"
)

func (u Unit) Valid() bool {
	switch u {
	case UnitMg, UnitMcg, UnitUnits:
		return true
	default:
		return false
	}
}

// DoseUnit es la unidad de la dosis deseada (siempre por minuto).
type DoseUnit string

const (
	DoseMcgPerKgMin DoseUnit = "mcg/kg/min"
	DoseMcgPerMin   DoseUnit = "mcg/min"
	DoseUnitsPerMin DoseUnit = "units/min"
)

func (u DoseUnit) Valid() bool {
	switch u {
	case DoseMcgPerKgMin, DoseMcgPerMin, DoseUnitsPerMin:
		return true
	default:
		return false
	}
}

// WeightBased indica si la dosis se expresa por kg de peso.
func (u DoseUnit) WeightBased() bool { return u == DoseMcgPerKgMin }

type DoseStatus string

const (
	DoseStatusStandard DoseStatus = "standard"
	DoseStatusLow      DoseStatus = "low"
	DoseStatusHigh     DoseStatus = "high"
)

// Formulation: "Amount Unit en Volume ml".
type Formulation struct {
	Amount float64
	Unit   Unit
	Volume float64 // ml
}

func (f Formulation) String() string {
	return formatNumber(f.Amount) + string(f.Unit) + " in " + formatNumber(f.Volume) + "ml"
}

type Dosing struct {
	Min           float64
	Max           float64
	Unit          DoseUnit
	IsWeightBased bool
}

// Range devuelve el rango para mostrar, ej "0.05–0.5".
func (d Dosing) Range() string {
	return formatNumber(d.Min) + "–" + formatNumber(d.Max)
}

// Drug es dato de referencia estático; no se muta una vez construido el catálogo.
type Drug struct {
	ID   string
	Name string

	Brands                  []string
	ConcentrationsAvailable []string

	StandardFormulation Formulation
	Dosing              Dosing
}

// ExpectedUnit es la unidad de concentración que acepta la droga.
func (d Drug) ExpectedUnit() Unit {
	return d.StandardFormulation.Unit
}

type RateInput struct {
	Dose                float64
	Weight              *float64 // kg, opcional
	ConcentrationAmount float64
	ConcentrationUnit   Unit
	DilutionVolume      float64 // ml
}

type RateResult struct {
	Rate       float64 // ml/hr
	Formula    string
	DoseStatus DoseStatus
}

// PreparationCheck compara la preparación usada contra la estándar.
type PreparationCheck struct {
	Standard bool
	Message  string
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
