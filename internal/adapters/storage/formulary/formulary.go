package formulary

import (
	"fmt"
	"os"

	"infusion-rate-calculator/internal/domain/drugs"

	"gopkg.in/yaml.v3"
)

// File es el formato YAML de un formulario institucional:
//
//	drugs:
//	  - id: norepinephrine
//	    name: Norepinephrine (Noradrenaline)
//	    brands: [Levophed]
//	    concentrations_available: ["4 mg/4 mL ampoule (1 mg/mL)"]
//	    standard_formulation: {amount: 4, unit: mg, volume: 50}
//	    dosing: {min: 0.05, max: 0.5, unit: mcg/kg/min, weight_based: true}
type File struct {
	Drugs []DrugEntry `yaml:"drugs"`
}

type DrugEntry struct {
	ID                      string           `yaml:"id"`
	Name                    string           `yaml:"name"`
	Brands                  []string         `yaml:"brands"`
	ConcentrationsAvailable []string         `yaml:"concentrations_available"`
	StandardFormulation     FormulationEntry `yaml:"standard_formulation"`
	Dosing                  DosingEntry      `yaml:"dosing"`
}

type FormulationEntry struct {
	Amount float64 `yaml:"amount"`
	Unit   string  `yaml:"unit"`
	Volume float64 `yaml:"volume"`
}

type DosingEntry struct {
	Min         float64 `yaml:"min"`
	Max         float64 `yaml:"max"`
	Unit        string  `yaml:"unit"`
	WeightBased bool    `yaml:"weight_based"`
}

// Load lee y valida un formulario. El contenido se toma literal: marcas y
// concentraciones pueden llevar '$'.
func Load(path string) (*drugs.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*drugs.Catalog, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("formulary: parse yaml: %w", err)
	}
	if len(f.Drugs) == 0 {
		return nil, fmt.Errorf("%w: formulary has no drugs", drugs.ErrInvalidCatalog)
	}

	items := make([]drugs.Drug, 0, len(f.Drugs))
	for _, e := range f.Drugs {
		items = append(items, e.toDrug())
	}
	return drugs.NewCatalog(items)
}

// Marshal serializa un catálogo al formato del archivo. Lo usa `api -export-formulary`
// para generar un punto de partida editable desde la tabla embebida.
func Marshal(c *drugs.Catalog) ([]byte, error) {
	var f File
	for _, d := range c.All() {
		f.Drugs = append(f.Drugs, fromDrug(d))
	}
	return yaml.Marshal(f)
}

func (e DrugEntry) toDrug() drugs.Drug {
	return drugs.Drug{
		ID:                      e.ID,
		Name:                    e.Name,
		Brands:                  e.Brands,
		ConcentrationsAvailable: e.ConcentrationsAvailable,
		StandardFormulation: drugs.Formulation{
			Amount: e.StandardFormulation.Amount,
			Unit:   drugs.Unit(e.StandardFormulation.Unit),
			Volume: e.StandardFormulation.Volume,
		},
		Dosing: drugs.Dosing{
			Min:           e.Dosing.Min,
			Max:           e.Dosing.Max,
			Unit:          drugs.DoseUnit(e.Dosing.Unit),
			IsWeightBased: e.Dosing.WeightBased,
		},
	}
}

func fromDrug(d drugs.Drug) DrugEntry {
	return DrugEntry{
		ID:                      d.ID,
		Name:                    d.Name,
		Brands:                  d.Brands,
		ConcentrationsAvailable: d.ConcentrationsAvailable,
		StandardFormulation: FormulationEntry{
			Amount: d.StandardFormulation.Amount,
			Unit:   string(d.StandardFormulation.Unit),
			Volume: d.StandardFormulation.Volume,
		},
		Dosing: DosingEntry{
			Min:         d.Dosing.Min,
			Max:         d.Dosing.Max,
			Unit:        string(d.Dosing.Unit),
			WeightBased: d.Dosing.IsWeightBased,
		},
	}
}
