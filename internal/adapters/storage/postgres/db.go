package postgres

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Open abre un pool a Postgres usando pgx (database/sql) y verifica la conexión.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	// el formulario es de solo lectura y chico: pocas conexiones alcanzan
	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Schema crea la tabla del formulario si no existe.
const Schema = `
CREATE TABLE IF NOT EXISTS formulary_drugs (
	id                       TEXT PRIMARY KEY,
	name                     TEXT NOT NULL UNIQUE,
	brands                   JSONB NOT NULL DEFAULT '[]',
	concentrations_available JSONB NOT NULL DEFAULT '[]',
	std_amount               DOUBLE PRECISION NOT NULL CHECK (std_amount > 0),
	std_unit                 TEXT NOT NULL,
	std_volume               DOUBLE PRECISION NOT NULL CHECK (std_volume > 0),
	dose_min                 DOUBLE PRECISION NOT NULL,
	dose_max                 DOUBLE PRECISION NOT NULL,
	dose_unit                TEXT NOT NULL,
	weight_based             BOOLEAN NOT NULL,
	sort_order               INTEGER NOT NULL DEFAULT 0,
	active                   BOOLEAN NOT NULL DEFAULT TRUE,
	CHECK (dose_min <= dose_max)
)`

func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, Schema)
	return err
}
