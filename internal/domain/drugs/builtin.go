package drugs

// builtinDrugs es la tabla por defecto. Las concentraciones corresponden a lo
// disponible habitualmente en el mercado; siempre verificar con el formulario local.
func builtinDrugs() []Drug {
	return []Drug{
		{
			ID:                      "norepinephrine",
			Name:                    "Norepinephrine (Noradrenaline)",
			Brands:                  []string{"Noradrenaline", "Levophed"},
			ConcentrationsAvailable: []string{"4 mg/4 mL ampoule (1 mg/mL)"},
			StandardFormulation:     Formulation{Amount: 4, Unit: UnitMg, Volume: 50},
			Dosing:                  Dosing{Min: 0.05, Max: 0.5, Unit: DoseMcgPerKgMin, IsWeightBased: true},
		},
		{
			ID:                      "epinephrine",
			Name:                    "Epinephrine (Adrenaline)",
			Brands:                  []string{"Adrenaline 1:1000 INJ", "Dilute Adrenaline 1:10,000"},
			ConcentrationsAvailable: []string{"1 mg/mL (1:1000)", "0.1 mg/mL (1:10,000)"},
			StandardFormulation:     Formulation{Amount: 1, Unit: UnitMg, Volume: 50},
			Dosing:                  Dosing{Min: 0.01, Max: 0.1, Unit: DoseMcgPerKgMin, IsWeightBased: true},
		},
		{
			ID:                      "dopamine",
			Name:                    "Dopamine",
			Brands:                  []string{"Dopamine Fresenius"},
			ConcentrationsAvailable: []string{"200 mg/5 mL ampoule (40 mg/mL)"},
			StandardFormulation:     Formulation{Amount: 200, Unit: UnitMg, Volume: 50},
			Dosing:                  Dosing{Min: 2, Max: 20, Unit: DoseMcgPerKgMin, IsWeightBased: true},
		},
		{
			ID:                      "dobutamine",
			Name:                    "Dobutamine",
			Brands:                  []string{"Dobutamine HCl", "Dobutrex"},
			ConcentrationsAvailable: []string{"12.5 mg/mL in 20 mL (250 mg)", "250 mg/vial"},
			StandardFormulation:     Formulation{Amount: 250, Unit: UnitMg, Volume: 50},
			Dosing:                  Dosing{Min: 2, Max: 20, Unit: DoseMcgPerKgMin, IsWeightBased: true},
		},
		{
			ID:                      "vasopressin",
			Name:                    "Vasopressin",
			Brands:                  []string{"Vasopressin Injection"},
			ConcentrationsAvailable: []string{"20 units/mL in 1 mL ampoule"},
			StandardFormulation:     Formulation{Amount: 20, Unit: UnitUnits, Volume: 50},
			Dosing:                  Dosing{Min: 0.01, Max: 0.04, Unit: DoseUnitsPerMin, IsWeightBased: false},
		},
		{
			ID:                      "milrinone",
			Name:                    "Milrinone",
			Brands:                  []string{"Milrinone Lactate Injection"},
			ConcentrationsAvailable: []string{"1 mg/mL in 10 mL ampoule (10 mg total)"},
			StandardFormulation:     Formulation{Amount: 10, Unit: UnitMg, Volume: 50},
			Dosing:                  Dosing{Min: 0.25, Max: 0.75, Unit: DoseMcgPerKgMin, IsWeightBased: true},
		},
		{
			ID:                      "nitroglycerin",
			Name:                    "Nitroglycerin (Glyceryl Trinitrate)",
			Brands:                  []string{"Nitronal", "Tridil"},
			ConcentrationsAvailable: []string{"1 mg/mL in 50 mL ampoule (50 mg total)"},
			StandardFormulation:     Formulation{Amount: 50, Unit: UnitMg, Volume: 50},
			Dosing:                  Dosing{Min: 5, Max: 200, Unit: DoseMcgPerMin, IsWeightBased: false},
		},
	}
}

// Builtin devuelve el catálogo por defecto. Entra en pánico si la tabla viola
// alguna invariante (error de programación, no de runtime).
func Builtin() *Catalog {
	c, err := NewCatalog(builtinDrugs())
	if err != nil {
		panic(err)
	}
	return c
}
