package drugs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltin_HasSevenDrugsInOrder(t *testing.T) {
	c := Builtin()

	ids := make([]string, 0, c.Len())
	for _, d := range c.All() {
		ids = append(ids, d.ID)
	}
	assert.Equal(t, []string{
		"norepinephrine", "epinephrine", "dopamine", "dobutamine",
		"vasopressin", "milrinone", "nitroglycerin",
	}, ids)
}

func TestBuiltin_ExpectedUnits(t *testing.T) {
	c := Builtin()
	for _, d := range c.All() {
		want := UnitMg
		if d.ID == "vasopressin" {
			want = UnitUnits
		}
		assert.Equal(t, want, d.ExpectedUnit(), d.ID)
	}
}

func TestCatalog_Lookup(t *testing.T) {
	c := Builtin()

	byID, ok := c.Lookup("norepinephrine")
	require.True(t, ok)
	assert.Equal(t, "Norepinephrine (Noradrenaline)", byID.Name)

	byName, ok := c.Lookup("  norepinephrine (NORADRENALINE) ")
	require.True(t, ok)
	assert.Equal(t, byID.ID, byName.ID)

	_, ok = c.Lookup("propofol")
	assert.False(t, ok)

	_, ok = c.Lookup("")
	assert.False(t, ok)
}

func TestCatalog_ReturnsCopies(t *testing.T) {
	c := Builtin()

	d, _ := c.Lookup("dobutamine")
	d.Brands[0] = "mutated"

	again, _ := c.Lookup("dobutamine")
	assert.Equal(t, "Dobutamine HCl", again.Brands[0])
}

func TestNewCatalog_RejectsDuplicates(t *testing.T) {
	items := builtinDrugs()
	items = append(items, items[0])

	_, err := NewCatalog(items)
	assert.ErrorIs(t, err, ErrInvalidCatalog)
}

func TestValidate_Invariants(t *testing.T) {
	base := builtinDrugs()[0]

	cases := map[string]func(d *Drug){
		"missing name":       func(d *Drug) { d.Name = "" },
		"missing id":         func(d *Drug) { d.ID = " " },
		"zero amount":        func(d *Drug) { d.StandardFormulation.Amount = 0 },
		"zero volume":        func(d *Drug) { d.StandardFormulation.Volume = 0 },
		"unknown unit":       func(d *Drug) { d.StandardFormulation.Unit = "g" },
		"unknown dose unit":  func(d *Drug) { d.Dosing.Unit = "mg/hr" },
		"min greater max":    func(d *Drug) { d.Dosing.Min, d.Dosing.Max = 1, 0.5 },
		"zero min":           func(d *Drug) { d.Dosing.Min = 0 },
		"weight flag":        func(d *Drug) { d.Dosing.IsWeightBased = false },
		"units dose mg drug": func(d *Drug) { d.Dosing.Unit, d.Dosing.IsWeightBased = DoseUnitsPerMin, false },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			d := cloneDrug(base)
			mutate(&d)
			assert.ErrorIs(t, Validate(d), ErrInvalidCatalog)
		})
	}

	assert.NoError(t, Validate(base))
}

func TestValidate_MinEqualsMaxAllowed(t *testing.T) {
	d := builtinDrugs()[4] // vasopressin
	d.Dosing.Min, d.Dosing.Max = 0.03, 0.03
	assert.NoError(t, Validate(d))
}

func TestDosing_Range(t *testing.T) {
	assert.Equal(t, "0.05–0.5", mustDrug(t, "norepinephrine").Dosing.Range())
	assert.Equal(t, "5–200", mustDrug(t, "nitroglycerin").Dosing.Range())
}
