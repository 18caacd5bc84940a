package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"infusion-rate-calculator/internal/domain/drugs"
)

// DrugsRepo lee el formulario institucional. Cada fila pasa por drugs.Validate:
// una fila que rompe invariantes es un error, no se sirve a medias.
type DrugsRepo struct {
	db *sql.DB
}

func NewDrugsRepo(db *sql.DB) *DrugsRepo {
	return &DrugsRepo{db: db}
}

const selectDrugs = `
	SELECT
		id, name,
		brands::text, concentrations_available::text,
		std_amount, std_unit, std_volume,
		dose_min, dose_max, dose_unit, weight_based
	FROM formulary_drugs
	WHERE active
`

// selectDrugByKey prefiere coincidencia por id sobre coincidencia por nombre:
// la tabla puede editarse en caliente y nada impide que el id de una fila sea
// el nombre de otra.
const selectDrugByKey = selectDrugs + `
	AND (lower(id) = lower($1) OR lower(name) = lower($1))
	ORDER BY (lower(id) = lower($1)) DESC, sort_order, name
	LIMIT 1
`

func (r *DrugsRepo) List(ctx context.Context) ([]drugs.Drug, error) {
	rows, err := r.db.QueryContext(ctx, selectDrugs+" ORDER BY sort_order, name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]drugs.Drug, 0)
	for rows.Next() {
		d, err := scanDrug(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *DrugsRepo) GetByKey(ctx context.Context, key string) (drugs.Drug, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return drugs.Drug{}, drugs.ErrDrugNotFound
	}

	row := r.db.QueryRowContext(ctx, selectDrugByKey, key)

	d, err := scanDrug(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return drugs.Drug{}, drugs.ErrDrugNotFound
		}
		return drugs.Drug{}, err
	}
	return d, nil
}

// Catalog carga el formulario completo como catálogo validado (para snapshot en memoria).
func (r *DrugsRepo) Catalog(ctx context.Context) (*drugs.Catalog, error) {
	items, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	return drugs.NewCatalog(items)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDrug(s scanner) (drugs.Drug, error) {
	var (
		d                 drugs.Drug
		brands, concs     string
		stdUnit, doseUnit string
	)

	if err := s.Scan(
		&d.ID,
		&d.Name,
		&brands,
		&concs,
		&d.StandardFormulation.Amount,
		&stdUnit,
		&d.StandardFormulation.Volume,
		&d.Dosing.Min,
		&d.Dosing.Max,
		&doseUnit,
		&d.Dosing.IsWeightBased,
	); err != nil {
		return drugs.Drug{}, err
	}

	d.StandardFormulation.Unit = drugs.Unit(stdUnit)
	d.Dosing.Unit = drugs.DoseUnit(doseUnit)

	if err := json.Unmarshal([]byte(brands), &d.Brands); err != nil {
		return drugs.Drug{}, fmt.Errorf("drug %s: brands: %w", d.ID, err)
	}
	if err := json.Unmarshal([]byte(concs), &d.ConcentrationsAvailable); err != nil {
		return drugs.Drug{}, fmt.Errorf("drug %s: concentrations_available: %w", d.ID, err)
	}

	if err := drugs.Validate(d); err != nil {
		return drugs.Drug{}, err
	}
	return d, nil
}
