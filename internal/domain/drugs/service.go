package drugs

import (
	"context"
	"fmt"
	"strings"
	"time"

	"infusion-rate-calculator/internal/platform/logger"

	"github.com/google/uuid"
)

// Observer recibe el resultado de cada cálculo (métricas).
type Observer interface {
	CalculationSucceeded(drugID string, status DoseStatus, standardPreparation bool)
	CalculationFailed(drugID string, kind string)
}

type nopObserver struct{}

func (nopObserver) CalculationSucceeded(string, DoseStatus, bool) {}
func (nopObserver) CalculationFailed(string, string)              {}

type Service struct {
	repo  Repository
	log   logger.Logger
	obs   Observer
	now   func() time.Time
	newID func() string
}

// NewService: log y obs pueden ser nil.
func NewService(repo Repository, log logger.Logger, obs Observer) *Service {
	if log == nil {
		log = logger.Nop()
	}
	if obs == nil {
		obs = nopObserver{}
	}
	return &Service{
		repo:  repo,
		log:   log.With(map[string]any{"component": "drugs"}),
		obs:   obs,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

type CalculateInput struct {
	Drug string
	RateInput
}

// Calculation es el resultado completo que se muestra al usuario. No se persiste.
type Calculation struct {
	ID           string
	Drug         Drug
	Result       RateResult
	DoseMessage  string
	Preparation  PreparationCheck
	CalculatedAt time.Time
}

func (s *Service) List(ctx context.Context) ([]Drug, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, key string) (Drug, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return Drug{}, ErrDrugNotFound
	}
	return s.repo.GetByKey(ctx, key)
}

func (s *Service) Calculate(ctx context.Context, in CalculateInput) (Calculation, error) {
	d, err := s.Get(ctx, in.Drug)
	if err != nil {
		s.obs.CalculationFailed("", ErrorKind(err))
		return Calculation{}, err
	}

	res, err := d.CalculateRate(in.RateInput)
	if err != nil {
		kind := ErrorKind(err)
		s.obs.CalculationFailed(d.ID, kind)
		s.log.Info("calculation rejected", map[string]any{
			"drug":   d.ID,
			"reason": kind,
		})
		return Calculation{}, err
	}

	prep := d.CheckPreparation(in.ConcentrationAmount, in.ConcentrationUnit, in.DilutionVolume)

	c := Calculation{
		ID:           s.newID(),
		Drug:         d,
		Result:       res,
		DoseMessage:  d.DoseMessage(in.Dose, res.DoseStatus),
		Preparation:  prep,
		CalculatedAt: s.now().UTC(),
	}

	s.obs.CalculationSucceeded(d.ID, res.DoseStatus, prep.Standard)

	fields := map[string]any{
		"calculation_id": c.ID,
		"drug":           d.ID,
		"dose_status":    string(res.DoseStatus),
	}
	if !prep.Standard {
		s.log.Warn("non-standard preparation", fields)
	}
	if res.DoseStatus != DoseStatusStandard {
		s.log.Warn("dose outside standard range", fields)
	}
	s.log.Debug("calculation done", fields)

	return c, nil
}

// RateDisplay formatea la velocidad con 2 decimales, ej "5.25 ml/hr".
func RateDisplay(rate float64) string {
	return fmt.Sprintf("%.2f ml/hr", rate)
}
