package postgres

import (
	"errors"
	"strings"
	"testing"

	"infusion-rate-calculator/internal/domain/drugs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRow imita *sql.Row / *sql.Rows asignando los valores en orden.
type fakeRow struct {
	values []any
	err    error
}

func (f fakeRow) Scan(dest ...any) error {
	if f.err != nil {
		return f.err
	}
	if len(dest) != len(f.values) {
		return errors.New("column count mismatch")
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *string:
			*p = f.values[i].(string)
		case *float64:
			*p = f.values[i].(float64)
		case *bool:
			*p = f.values[i].(bool)
		default:
			return errors.New("unsupported dest")
		}
	}
	return nil
}

func row(overrides map[int]any) fakeRow {
	v := []any{
		"dopamine", "Dopamine",
		`["Dopamine Fresenius"]`, `["200 mg/5 mL ampoule (40 mg/mL)"]`,
		200.0, "mg", 50.0,
		2.0, 20.0, "mcg/kg/min", true,
	}
	for i, o := range overrides {
		v[i] = o
	}
	return fakeRow{values: v}
}

func TestScanDrug(t *testing.T) {
	d, err := scanDrug(row(nil))
	require.NoError(t, err)

	assert.Equal(t, "dopamine", d.ID)
	assert.Equal(t, []string{"Dopamine Fresenius"}, d.Brands)
	assert.Equal(t, drugs.Formulation{Amount: 200, Unit: drugs.UnitMg, Volume: 50}, d.StandardFormulation)
	assert.Equal(t, drugs.Dosing{Min: 2, Max: 20, Unit: drugs.DoseMcgPerKgMin, IsWeightBased: true}, d.Dosing)
}

func TestScanDrug_RejectsBrokenRows(t *testing.T) {
	_, err := scanDrug(row(map[int]any{7: 30.0})) // min > max
	assert.ErrorIs(t, err, drugs.ErrInvalidCatalog)

	_, err = scanDrug(row(map[int]any{5: "units"})) // unidad no coincide con la dosis
	assert.ErrorIs(t, err, drugs.ErrInvalidCatalog)

	_, err = scanDrug(row(map[int]any{2: `not json`}))
	assert.Error(t, err)

	_, err = scanDrug(fakeRow{err: errors.New("boom")})
	assert.EqualError(t, err, "boom")
}

func TestSelectDrugByKey_PrefersIDMatch(t *testing.T) {
	q := strings.Join(strings.Fields(selectDrugByKey), " ")

	assert.Contains(t, q, "WHERE active AND (lower(id) = lower($1) OR lower(name) = lower($1))")
	assert.Contains(t, q, "ORDER BY (lower(id) = lower($1)) DESC, sort_order, name LIMIT 1")
}
