package drugs

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type catalogRepo struct {
	c *Catalog
}

func (r catalogRepo) List(ctx context.Context) ([]Drug, error) { return r.c.All(), nil }

func (r catalogRepo) GetByKey(ctx context.Context, key string) (Drug, error) {
	d, ok := r.c.Lookup(key)
	if !ok {
		return Drug{}, ErrDrugNotFound
	}
	return d, nil
}

type recordingObserver struct {
	ok     []string
	failed []string
	prep   []bool
}

func (o *recordingObserver) CalculationSucceeded(drugID string, status DoseStatus, standard bool) {
	o.ok = append(o.ok, drugID+":"+string(status))
	o.prep = append(o.prep, standard)
}

func (o *recordingObserver) CalculationFailed(drugID string, kind string) {
	o.failed = append(o.failed, drugID+":"+kind)
}

func newTestService(obs Observer) *Service {
	s := NewService(catalogRepo{c: Builtin()}, nil, obs)
	s.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	s.newID = func() string { return "calc-1" }
	return s
}

func TestService_Calculate(t *testing.T) {
	obs := &recordingObserver{}
	s := newTestService(obs)

	c, err := s.Calculate(context.Background(), CalculateInput{
		Drug: "Norepinephrine (Noradrenaline)",
		RateInput: RateInput{
			Dose:                0.1,
			Weight:              ptr(70),
			ConcentrationAmount: 4,
			ConcentrationUnit:   UnitMg,
			DilutionVolume:      50,
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "calc-1", c.ID)
	assert.Equal(t, "norepinephrine", c.Drug.ID)
	assert.InDelta(t, 5.25, c.Result.Rate, 1e-9)
	assert.Equal(t, DoseStatusStandard, c.Result.DoseStatus)
	assert.True(t, c.Preparation.Standard)
	assert.Contains(t, c.DoseMessage, "within the standard range")
	assert.Equal(t, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), c.CalculatedAt)

	assert.Equal(t, []string{"norepinephrine:standard"}, obs.ok)
	assert.Equal(t, []bool{true}, obs.prep)
	assert.Empty(t, obs.failed)
}

func TestService_Calculate_NonStandardPreparation(t *testing.T) {
	obs := &recordingObserver{}
	s := newTestService(obs)

	c, err := s.Calculate(context.Background(), CalculateInput{
		Drug: "vasopressin",
		RateInput: RateInput{
			Dose:                0.05,
			ConcentrationAmount: 40,
			ConcentrationUnit:   UnitUnits,
			DilutionVolume:      100,
		},
	})
	require.NoError(t, err)

	assert.InDelta(t, 7.5, c.Result.Rate, 1e-9)
	assert.Equal(t, DoseStatusHigh, c.Result.DoseStatus)
	assert.False(t, c.Preparation.Standard)
	assert.Contains(t, c.Preparation.Message, "Standard is 20units in 50ml")
	assert.Equal(t, []bool{false}, obs.prep)
}

func TestService_Calculate_UnknownDrug(t *testing.T) {
	obs := &recordingObserver{}
	s := newTestService(obs)

	_, err := s.Calculate(context.Background(), CalculateInput{Drug: "propofol"})
	assert.ErrorIs(t, err, ErrDrugNotFound)
	assert.Equal(t, []string{":drug_not_found"}, obs.failed)

	_, err = s.Get(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrDrugNotFound)
}

func TestService_Calculate_MissingWeight(t *testing.T) {
	obs := &recordingObserver{}
	s := newTestService(obs)

	_, err := s.Calculate(context.Background(), CalculateInput{
		Drug: "dobutamine",
		RateInput: RateInput{
			Dose:                5,
			ConcentrationAmount: 250,
			ConcentrationUnit:   UnitMg,
			DilutionVolume:      50,
		},
	})
	assert.ErrorIs(t, err, ErrMissingWeight)
	assert.Equal(t, []string{"dobutamine:missing_weight"}, obs.failed)
	assert.Empty(t, obs.ok)
}

func TestService_List(t *testing.T) {
	s := newTestService(nil)

	items, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 7)
}
