package drugs

import (
	"fmt"
	"strings"
)

const (
	minutesPerHour = 60
	mcgPerMg       = 1000
)

// CalculateRate convierte la dosis deseada en velocidad de bomba (ml/hr).
//
// La misma aritmética sirve para todas las drogas; lo que cambia por droga es la
// configuración (unidad esperada y si requiere peso). Todas las dosis son por minuto.
func (d Drug) CalculateRate(in RateInput) (RateResult, error) {
	weightBased := d.Dosing.IsWeightBased
	if weightBased && (in.Weight == nil || *in.Weight <= 0) {
		return RateResult{}, fmt.Errorf("%w for %s", ErrMissingWeight, d.Name)
	}

	expected := d.ExpectedUnit()
	if in.ConcentrationUnit != expected {
		return RateResult{}, fmt.Errorf("%w: concentration for %s must be in %s, got %q",
			ErrUnitMismatch, d.Name, expected, in.ConcentrationUnit)
	}

	factor := unitFactor(expected)
	perMl := in.ConcentrationAmount / in.DilutionVolume * factor

	numerator := in.Dose * minutesPerHour
	if weightBased {
		numerator *= *in.Weight
	}

	return RateResult{
		Rate:       numerator / perMl,
		Formula:    d.formula(in, factor),
		DoseStatus: d.Dosing.Classify(in.Dose),
	}, nil
}

// Classify compara la dosis cruda (en la unidad nativa de la droga) contra el rango.
// Ambos límites son inclusivos.
func (d Dosing) Classify(dose float64) DoseStatus {
	switch {
	case dose < d.Min:
		return DoseStatusLow
	case dose > d.Max:
		return DoseStatusHigh
	default:
		return DoseStatusStandard
	}
}

// CheckPreparation detecta desvíos respecto de la preparación estándar.
func (d Drug) CheckPreparation(amount float64, unit Unit, volume float64) PreparationCheck {
	std := d.StandardFormulation
	if amount == std.Amount && unit == std.Unit && volume == std.Volume {
		return PreparationCheck{Standard: true}
	}

	used := Formulation{Amount: amount, Unit: unit, Volume: volume}
	return PreparationCheck{
		Standard: false,
		Message: fmt.Sprintf("Using non-standard preparation: %s. Standard is %s. Please verify preparation.",
			used, std),
	}
}

// DoseMessage es el texto que acompaña al estado de la dosis.
func (d Drug) DoseMessage(dose float64, status DoseStatus) string {
	desired := fmt.Sprintf("%s %s", formatNumber(dose), d.Dosing.Unit)
	standard := fmt.Sprintf("%s %s", d.Dosing.Range(), d.Dosing.Unit)

	if status == DoseStatusStandard {
		return fmt.Sprintf("The desired dose (%s) is within the standard range (%s).", desired, standard)
	}
	return fmt.Sprintf("Warning: The desired dose (%s) is outside the standard range (%s). Verify order.", desired, standard)
}

func unitFactor(u Unit) float64 {
	if u == UnitMg {
		return mcgPerMg
	}
	return 1
}

func (d Drug) formula(in RateInput, factor float64) string {
	var sb strings.Builder
	sb.WriteString("Rate (ml/hr) = (Dose [")
	sb.WriteString(formatNumber(in.Dose))
	sb.WriteString(" ")
	sb.WriteString(string(d.Dosing.Unit))
	sb.WriteString("]")

	if d.Dosing.IsWeightBased {
		fmt.Fprintf(&sb, " × Weight [%s kg]", formatNumber(*in.Weight))
	}
	fmt.Fprintf(&sb, " × %d min/hr", minutesPerHour)
	sb.WriteString(") / ")

	conc := fmt.Sprintf("Concentration [%s %s / %s ml]",
		formatNumber(in.ConcentrationAmount), in.ConcentrationUnit, formatNumber(in.DilutionVolume))
	if factor != 1 {
		fmt.Fprintf(&sb, "(%s × %s mcg/%s)", conc, formatNumber(factor), in.ConcentrationUnit)
	} else {
		sb.WriteString(conc)
	}

	return sb.String()
}
