package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/ledgerbook/internal/domain"
	"github.com/iho/ledgerbook/internal/infrastructure/postgres/generated"
)

// ClientRepository implements usecase.ClientRepository.
type ClientRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewClientRepository creates a new ClientRepository.
func NewClientRepository(pool *pgxpool.Pool) *ClientRepository {
	return &ClientRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create creates a new client.
func (r *ClientRepository) Create(ctx context.Context, client *domain.Client) error {
	row, err := r.queries.CreateClient(ctx, generated.CreateClientParams{
		Name:         client.Name,
		TaxID:        client.TaxID,
		Address:      client.Address,
		Phone:        client.Phone,
		Email:        client.Email,
		Kind:         string(client.Kind),
		Notes:        client.Notes,
		Active:       client.Active,
		RegisteredAt: timeToPgTimestamptz(client.RegisteredAt),
	})
	if err != nil {
		return err
	}

	client.ID = row.ID

	return nil
}

// GetByID retrieves a client by ID.
func (r *ClientRepository) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	row, err := r.queries.GetClientByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrClientNotFound
		}

		return nil, err
	}

	return rowToClient(row), nil
}

// List lists clients ordered by name.
func (r *ClientRepository) List(ctx context.Context, limit, offset int) ([]*domain.Client, error) {
	rows, err := r.queries.ListClients(ctx, generated.ListClientsParams{
		Limit:  int32(limit),
		Offset: int32(offset),
	})
	if err != nil {
		return nil, err
	}

	clients := make([]*domain.Client, 0, len(rows))
	for _, row := range rows {
		clients = append(clients, rowToClient(row))
	}

	return clients, nil
}

// Update updates a client.
func (r *ClientRepository) Update(ctx context.Context, client *domain.Client) error {
	return r.queries.UpdateClient(ctx, generated.UpdateClientParams{
		ID:      client.ID,
		Name:    client.Name,
		TaxID:   client.TaxID,
		Address: client.Address,
		Phone:   client.Phone,
		Email:   client.Email,
		Kind:    string(client.Kind),
		Notes:   client.Notes,
		Active:  client.Active,
	})
}

// Delete removes a client. Invoices keep a nullable reference, so deletion is
// not restricted; historical invoices simply lose the link.
func (r *ClientRepository) Delete(ctx context.Context, id int64) error {
	affected, err := r.queries.DeleteClient(ctx, id)
	if err != nil {
		return mapConstraintError(err)
	}
	if affected == 0 {
		return domain.ErrClientNotFound
	}

	return nil
}

func rowToClient(row generated.Client) *domain.Client {
	return &domain.Client{
		ID:           row.ID,
		Name:         row.Name,
		TaxID:        row.TaxID,
		Address:      row.Address,
		Phone:        row.Phone,
		Email:        row.Email,
		Kind:         domain.ClientKind(row.Kind),
		Notes:        row.Notes,
		Active:       row.Active,
		RegisteredAt: row.RegisteredAt.Time,
	}
}
