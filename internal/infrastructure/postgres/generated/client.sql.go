package generated

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createClient = `-- name: CreateClient :one
INSERT INTO clients (name, tax_id, address, phone, email, kind, notes, active, registered_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id, name, tax_id, address, phone, email, kind, notes, active, registered_at
`

type CreateClientParams struct {
	Name         string             `json:"name"`
	TaxID        string             `json:"tax_id"`
	Address      string             `json:"address"`
	Phone        string             `json:"phone"`
	Email        string             `json:"email"`
	Kind         string             `json:"kind"`
	Notes        string             `json:"notes"`
	Active       bool               `json:"active"`
	RegisteredAt pgtype.Timestamptz `json:"registered_at"`
}

func (q *Queries) CreateClient(ctx context.Context, arg CreateClientParams) (Client, error) {
	row := q.db.QueryRow(ctx, createClient,
		arg.Name,
		arg.TaxID,
		arg.Address,
		arg.Phone,
		arg.Email,
		arg.Kind,
		arg.Notes,
		arg.Active,
		arg.RegisteredAt,
	)
	var i Client
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.TaxID,
		&i.Address,
		&i.Phone,
		&i.Email,
		&i.Kind,
		&i.Notes,
		&i.Active,
		&i.RegisteredAt,
	)
	return i, err
}

const deleteClient = `-- name: DeleteClient :execrows
DELETE FROM clients WHERE id = $1
`

func (q *Queries) DeleteClient(ctx context.Context, id int64) (int64, error) {
	result, err := q.db.Exec(ctx, deleteClient, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getClientByID = `-- name: GetClientByID :one
SELECT id, name, tax_id, address, phone, email, kind, notes, active, registered_at FROM clients WHERE id = $1
`

func (q *Queries) GetClientByID(ctx context.Context, id int64) (Client, error) {
	row := q.db.QueryRow(ctx, getClientByID, id)
	var i Client
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.TaxID,
		&i.Address,
		&i.Phone,
		&i.Email,
		&i.Kind,
		&i.Notes,
		&i.Active,
		&i.RegisteredAt,
	)
	return i, err
}

const listClients = `-- name: ListClients :many
SELECT id, name, tax_id, address, phone, email, kind, notes, active, registered_at FROM clients ORDER BY name LIMIT $1 OFFSET $2
`

type ListClientsParams struct {
	Limit  int32 `json:"limit"`
	Offset int32 `json:"offset"`
}

func (q *Queries) ListClients(ctx context.Context, arg ListClientsParams) ([]Client, error) {
	rows, err := q.db.Query(ctx, listClients, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Client{}
	for rows.Next() {
		var i Client
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.TaxID,
			&i.Address,
			&i.Phone,
			&i.Email,
			&i.Kind,
			&i.Notes,
			&i.Active,
			&i.RegisteredAt,
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

const updateClient = `-- name: UpdateClient :exec
UPDATE clients
SET name = $2, tax_id = $3, address = $4, phone = $5, email = $6, kind = $7, notes = $8, active = $9
WHERE id = $1
`

type UpdateClientParams struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	TaxID   string `json:"tax_id"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Kind    string `json:"kind"`
	Notes   string `json:"notes"`
	Active  bool   `json:"active"`
}

func (q *Queries) UpdateClient(ctx context.Context, arg UpdateClientParams) error {
	_, err := q.db.Exec(ctx, updateClient,
		arg.ID,
		arg.Name,
		arg.TaxID,
		arg.Address,
		arg.Phone,
		arg.Email,
		arg.Kind,
		arg.Notes,
		arg.Active,
	)
	return err
}
