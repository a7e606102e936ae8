package observation

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clinrec/clinrec/internal/platform/db"
)

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

type querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

func (r *repoPG) conn(ctx context.Context) querier {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const obsCols = `id, patient_id, encounter_id, code, value, effective_datetime, created_at, updated_at`

func (r *repoPG) Create(ctx context.Context, o *Observation) error {
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO observations (patient_id, encounter_id, code, value, effective_datetime)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`,
		o.PatientID, o.EncounterID, o.Code, o.Value, o.EffectiveDateTime,
	).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
}

func (r *repoPG) GetByID(ctx context.Context, id int64) (*Observation, error) {
	return scanObs(r.conn(ctx).QueryRow(ctx,
		`SELECT `+obsCols+` FROM observations WHERE id = $1`, id))
}

func (r *repoPG) GetAll(ctx context.Context) ([]*Observation, error) {
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+obsCols+` FROM observations ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectObs(rows)
}

func (r *repoPG) GetByPatientID(ctx context.Context, patientID int64) ([]*Observation, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+obsCols+` FROM observations WHERE patient_id = $1 ORDER BY id`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectObs(rows)
}

func (r *repoPG) GetByEncounterID(ctx context.Context, encounterID int64) ([]*Observation, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+obsCols+` FROM observations WHERE encounter_id = $1 ORDER BY id`, encounterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectObs(rows)
}

func (r *repoPG) Update(ctx context.Context, o *Observation) error {
	tag, err := r.conn(ctx).Exec(ctx, `
		UPDATE observations SET
			patient_id=$2, encounter_id=$3, code=$4, value=$5, effective_datetime=$6,
			updated_at=NOW()
		WHERE id = $1`,
		o.ID, o.PatientID, o.EncounterID, o.Code, o.Value, o.EffectiveDateTime,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM observations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanObs(row pgx.Row) (*Observation, error) {
	var o Observation
	err := row.Scan(
		&o.ID, &o.PatientID, &o.EncounterID, &o.Code, &o.Value,
		&o.EffectiveDateTime, &o.CreatedAt, &o.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func collectObs(rows pgx.Rows) ([]*Observation, error) {
	var observations []*Observation
	for rows.Next() {
		var o Observation
		err := rows.Scan(
			&o.ID, &o.PatientID, &o.EncounterID, &o.Code, &o.Value,
			&o.EffectiveDateTime, &o.CreatedAt, &o.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		observations = append(observations, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return observations, nil
}
