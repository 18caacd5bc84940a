package reference

// Default devuelve la tabla de referencia. Es texto para mostrar; no se usa en cálculos.
func Default() Table {
	return Table{
		Entries: []Entry{
			{
				Agent:           "Norepinephrine (noradrenaline)",
				TradeName:       "Levophed",
				InitialDose:     "5 to 15 mcg/minute (0.05 to 0.15 mcg/kg/minute)\nCardiogenic shock: 0.05 mcg/kg/minute",
				MaintenanceDose: "2 to 80 mcg/minute (0.025 to 1 mcg/kg/minute)\nCardiogenic shock: 0.05 to 0.4 mcg/kg/minute",
				MaxDose:         "80 to 250 mcg/minute (1 to 3.3 mcg/kg/minute)",
			},
			{
				Agent:           "Epinephrine (adrenaline)",
				TradeName:       "Adrenalin",
				InitialDose:     "1 to 15 mcg/minute (0.01 to 0.2 mcg/kg/minute)",
				MaintenanceDose: "1 to 40 mcg/minute (0.01 to 0.5 mcg/kg/minute)",
				MaxDose:         "40 to 160 mcg/minute (0.5 to 2 mcg/kg/minute)",
			},
			{
				Agent:           "Dopamine",
				TradeName:       "Intropin",
				InitialDose:     "2 to 5 mcg/kg/minute",
				MaintenanceDose: "2 to 20 mcg/kg/minute",
				MaxDose:         "20 mcg/kg/minute",
			},
			{
				Agent:           "Vasopressin (arginine-vasopressin)",
				TradeName:       "Pitressin, Vasostrict",
				InitialDose:     "0.03 units/minute",
				MaintenanceDose: "0.01 to 0.04 units/minute (not titrated)",
				MaxDose:         "Doses >0.04 units/minute can cause cardiac ischemia and should be reserved for salvage therapy",
			},
			{
				Agent:           "Dobutamine",
				TradeName:       "Dobutrex",
				InitialDose:     "Usual: 2 to 5 mcg/kg/minute (range: 0.5 to 5 mcg/kg/minute; lower doses for less severe cardiac decompensation)",
				MaintenanceDose: "2 to 10 mcg/kg/minute",
				MaxDose:         "20 mcg/kg/minute",
			},
			{
				Agent:           "Milrinone",
				TradeName:       "Primacor",
				InitialDose:     "0.125 to 0.25 mcg/kg/minute",
				MaintenanceDose: "0.125 to 0.75 mcg/kg/minute",
				MaxDose:         "0.75 mcg/kg/minute",
			},
			{
				Agent:           "Nitroglycerin (Glyceryl Trinitrate)",
				TradeName:       "Nitronal, Tridil",
				InitialDose:     "5 to 20 mcg/minute",
				MaintenanceDose: "10 to 200 mcg/minute",
				MaxDose:         "Up to 400 mcg/minute may be required in some cases",
			},
		},
		Notes: []string{
			"All doses shown are for intravenous (IV) administration in adult patients.",
			"Vasopressors can cause life-threatening hypotension and hypertension, dysrhythmias, and myocardial ischemia.",
			"They should be administered by use of an infusion pump adjusted by clinicians trained and experienced in dose titration of intravenous vasopressors using continuous noninvasive electronic monitoring of blood pressure, heart rate, rhythm, and function.",
			"Hypovolemia should be corrected prior to the institution of vasopressor therapy. Reduce infusion rate gradually; avoid sudden discontinuation.",
			"Vasopressors can cause severe local tissue ischemia; central line administration is preferred.",
			"Vasopressor infusions are high-risk medications requiring caution to prevent a medication error and patient harm.",
		},
		Abbreviations: "DSW: 5% dextrose water; MAP: mean arterial pressure; NS: 0.9% saline.",
	}
}
