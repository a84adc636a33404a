package usecase

import (
	"context"
	"time"

	"github.com/iho/ledgerbook/internal/domain"
)

// ClientUseCase handles the client registry.
type ClientUseCase struct {
	clientRepo ClientRepository
}

// NewClientUseCase creates a new ClientUseCase.
func NewClientUseCase(clientRepo ClientRepository) *ClientUseCase {
	return &ClientUseCase{clientRepo: clientRepo}
}

// CreateClientInput represents input for registering a client.
type CreateClientInput struct {
	Name    string
	TaxID   string
	Address string
	Phone   string
	Email   string
	Kind    domain.ClientKind
	Notes   string
}

// CreateClient registers a client.
func (uc *ClientUseCase) CreateClient(ctx context.Context, input CreateClientInput) (*domain.Client, error) {
	if err := domain.ValidateName(input.Name); err != nil {
		return nil, err
	}

	if err := domain.ValidateEmail(input.Email); err != nil {
		return nil, err
	}

	kind := input.Kind
	if kind == "" {
		kind = domain.ClientIndividual
	}

	client := &domain.Client{
		Name:         input.Name,
		TaxID:        input.TaxID,
		Address:      input.Address,
		Phone:        input.Phone,
		Email:        input.Email,
		Kind:         kind,
		Notes:        input.Notes,
		Active:       true,
		RegisteredAt: time.Now().UTC(),
	}

	if err := uc.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}

	return client, nil
}

// GetClient retrieves a client by ID.
func (uc *ClientUseCase) GetClient(ctx context.Context, id int64) (*domain.Client, error) {
	return uc.clientRepo.GetByID(ctx, id)
}

// ListClients lists clients with pagination.
func (uc *ClientUseCase) ListClients(ctx context.Context, limit, offset int) ([]*domain.Client, error) {
	limit, offset = domain.ValidatePagination(limit, offset)
	return uc.clientRepo.List(ctx, limit, offset)
}

// UpdateClientInput represents changes to a client. Nil fields keep their
// current value.
type UpdateClientInput struct {
	Name    *string
	TaxID   *string
	Address *string
	Phone   *string
	Email   *string
	Notes   *string
	Active  *bool
}

// UpdateClient updates a client's details.
func (uc *ClientUseCase) UpdateClient(ctx context.Context, id int64, input UpdateClientInput) (*domain.Client, error) {
	client, err := uc.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if err := domain.ValidateName(*input.Name); err != nil {
			return nil, err
		}
		client.Name = *input.Name
	}
	if input.TaxID != nil {
		client.TaxID = *input.TaxID
	}
	if input.Address != nil {
		client.Address = *input.Address
	}
	if input.Phone != nil {
		client.Phone = *input.Phone
	}
	if input.Email != nil {
		if err := domain.ValidateEmail(*input.Email); err != nil {
			return nil, err
		}
		client.Email = *input.Email
	}
	if input.Notes != nil {
		client.Notes = *input.Notes
	}
	if input.Active != nil {
		client.Active = *input.Active
	}

	if err := uc.clientRepo.Update(ctx, client); err != nil {
		return nil, err
	}

	return client, nil
}

// DeleteClient removes a client.
func (uc *ClientUseCase) DeleteClient(ctx context.Context, id int64) error {
	if _, err := uc.clientRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return uc.clientRepo.Delete(ctx, id)
}
