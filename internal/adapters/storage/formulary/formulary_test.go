package formulary

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"infusion-rate-calculator/internal/domain/drugs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
drugs:
  - id: norepinephrine
    name: Norepinephrine (Noradrenaline)
    brands: [Levophed]
    concentrations_available: ["4 mg/4 mL ampoule (1 mg/mL)"]
    standard_formulation: {amount: 8, unit: mg, volume: 50}
    dosing: {min: 0.05, max: 0.5, unit: mcg/kg/min, weight_based: true}
  - id: vasopressin
    name: Vasopressin
    standard_formulation: {amount: 20, unit: units, volume: 50}
    dosing: {min: 0.01, max: 0.04, unit: units/min}
`

func TestParse(t *testing.T) {
	c, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())

	d, ok := c.Lookup("norepinephrine")
	require.True(t, ok)
	assert.Equal(t, drugs.Formulation{Amount: 8, Unit: drugs.UnitMg, Volume: 50}, d.StandardFormulation)
	assert.True(t, d.Dosing.IsWeightBased)
	assert.Equal(t, []string{"Levophed"}, d.Brands)

	// 0.1 * 70 * 60 / (8/50*1000)
	res, err := d.CalculateRate(drugs.RateInput{
		Dose: 0.1, Weight: func() *float64 { w := 70.0; return &w }(),
		ConcentrationAmount: 8, ConcentrationUnit: drugs.UnitMg, DilutionVolume: 50,
	})
	require.NoError(t, err)
	assert.InDelta(t, 2.625, res.Rate, 1e-9)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte("drugs: ["))
	assert.Error(t, err)

	_, err = Parse([]byte("drugs: []"))
	assert.ErrorIs(t, err, drugs.ErrInvalidCatalog)

	_, err = Parse([]byte(`
drugs:
  - id: dopamine
    name: Dopamine
    standard_formulation: {amount: 200, unit: mg, volume: 50}
    dosing: {min: 20, max: 2, unit: mcg/kg/min, weight_based: true}
`))
	assert.ErrorIs(t, err, drugs.ErrInvalidCatalog)
}

func TestMarshal_BuiltinLoadsBack(t *testing.T) {
	b, err := Marshal(drugs.Builtin())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "formulary.yaml")
	require.NoError(t, os.WriteFile(path, b, 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, drugs.Builtin().All(), c.All())
}

func TestWatch_ReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "formulary.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan *drugs.Catalog, 16)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, nil, func(c *drugs.Catalog) {
			select {
			case got <- c:
			default:
			}
		})
	}()

	// dar tiempo a que el watcher se registre
	time.Sleep(100 * time.Millisecond)

	// una recarga inválida no llama onChange
	require.NoError(t, os.WriteFile(path, []byte("drugs: ["), 0o600))

	b, err := Marshal(drugs.Builtin())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))

	// una escritura puede generar más de un evento; esperamos el catálogo completo
	deadline := time.After(5 * time.Second)
	for reloaded := false; !reloaded; {
		select {
		case c := <-got:
			reloaded = c.Len() == 7
		case <-deadline:
			t.Fatal("formulary was not reloaded")
		}
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}

func TestWatch_ReloadsOnAtomicSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "formulary.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan *drugs.Catalog, 16)
	go func() {
		_ = Watch(ctx, path, nil, func(c *drugs.Catalog) {
			select {
			case got <- c:
			default:
			}
		})
	}()
	time.Sleep(100 * time.Millisecond)

	builtin, err := Marshal(drugs.Builtin())
	require.NoError(t, err)

	// dos guardados seguidos: el segundo prueba que el watch sobrevive al primero
	saves := []struct {
		data []byte
		want int
	}{
		{builtin, 7},
		{[]byte(sampleYAML), 2},
	}
	for i, s := range saves {
		tmp := filepath.Join(dir, "formulary.yaml.tmp")
		require.NoError(t, os.WriteFile(tmp, s.data, 0o600))
		require.NoError(t, os.Rename(tmp, path))

		deadline := time.After(5 * time.Second)
		for reloaded := false; !reloaded; {
			select {
			case c := <-got:
				reloaded = c.Len() == s.want
			case <-deadline:
				t.Fatalf("save %d: formulary was not reloaded after rename", i)
			}
		}
	}
}

func TestWatch_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "formulary.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan *drugs.Catalog, 16)
	go func() {
		_ = Watch(ctx, path, nil, func(c *drugs.Catalog) {
			select {
			case got <- c:
			default:
			}
		})
	}()
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte(sampleYAML), 0o600))

	select {
	case <-got:
		t.Fatal("reload triggered by a different file")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestParse_KeepsDollarSigns(t *testing.T) {
	t.Setenv("HOME", "/root")

	c, err := Parse([]byte(`
drugs:
  - id: milrinone
    name: Milrinone
    brands: ["Primacor $HOME", "Corotrope $5 vial"]
    standard_formulation: {amount: 10, unit: mg, volume: 50}
    dosing: {min: 0.375, max: 0.75, unit: mcg/kg/min, weight_based: true}
`))
	require.NoError(t, err)

	d, ok := c.Lookup("milrinone")
	require.True(t, ok)
	assert.Equal(t, []string{"Primacor $HOME", "Corotrope $5 vial"}, d.Brands)
}
