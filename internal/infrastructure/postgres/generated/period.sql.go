package generated

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createPeriod = `-- name: CreatePeriod :one
INSERT INTO periods (start_date, end_date, kind, state)
VALUES ($1, $2, $3, $4)
RETURNING id, start_date, end_date, kind, state
`

type CreatePeriodParams struct {
	StartDate pgtype.Timestamptz `json:"start_date"`
	EndDate   pgtype.Timestamptz `json:"end_date"`
	Kind      string             `json:"kind"`
	State     string             `json:"state"`
}

func (q *Queries) CreatePeriod(ctx context.Context, arg CreatePeriodParams) (Period, error) {
	row := q.db.QueryRow(ctx, createPeriod,
		arg.StartDate,
		arg.EndDate,
		arg.Kind,
		arg.State,
	)
	var i Period
	err := row.Scan(
		&i.ID,
		&i.StartDate,
		&i.EndDate,
		&i.Kind,
		&i.State,
	)
	return i, err
}

const getPeriodByID = `-- name: GetPeriodByID :one
SELECT id, start_date, end_date, kind, state FROM periods WHERE id = $1
`

func (q *Queries) GetPeriodByID(ctx context.Context, id int64) (Period, error) {
	row := q.db.QueryRow(ctx, getPeriodByID, id)
	var i Period
	err := row.Scan(
		&i.ID,
		&i.StartDate,
		&i.EndDate,
		&i.Kind,
		&i.State,
	)
	return i, err
}

const listPeriods = `-- name: ListPeriods :many
SELECT id, start_date, end_date, kind, state FROM periods ORDER BY start_date DESC LIMIT $1 OFFSET $2
`

type ListPeriodsParams struct {
	Limit  int32 `json:"limit"`
	Offset int32 `json:"offset"`
}

func (q *Queries) ListPeriods(ctx context.Context, arg ListPeriodsParams) ([]Period, error) {
	rows, err := q.db.Query(ctx, listPeriods, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Period{}
	for rows.Next() {
		var i Period
		if err := rows.Scan(
			&i.ID,
			&i.StartDate,
			&i.EndDate,
			&i.Kind,
			&i.State,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
