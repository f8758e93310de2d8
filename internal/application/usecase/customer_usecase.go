package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/miinventory-api/internal/application/dto"
	"github.com/jhoicas/miinventory-api/internal/domain/entity"
	"github.com/jhoicas/miinventory-api/internal/domain/repository"
)

// CustomerUseCase casos de uso CRUD para clientes.
type CustomerUseCase struct {
	repo     repository.CustomerRepository
	userRepo repository.UserRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, userRepo repository.UserRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, userRepo: userRepo}
}

func (uc *CustomerUseCase) validate(ctx context.Context, in dto.CustomerRequest) error {
	if err := required("name", in.Name); err != nil {
		return err
	}
	if err := optionalEmail("email", in.Email); err != nil {
		return err
	}
	return optionalRef(ctx, in.UserID, uc.userRepo.GetByID)
}

// Create crea un cliente; el usuario enlazado debe existir.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	if err := uc.validate(ctx, in); err != nil {
		return nil, err
	}
	now := time.Now()
	c := &entity.Customer{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		UserID:    dto.BlankToNil(in.UserID),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toCustomerResponse(c), nil
}

// GetByID obtiene un cliente por ID.
func (uc *CustomerUseCase) GetByID(ctx context.Context, id string) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil || c == nil {
		return nil, err
	}
	return toCustomerResponse(c), nil
}

// Update reemplaza los datos del cliente.
func (uc *CustomerUseCase) Update(ctx context.Context, id string, in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	if err := uc.validate(ctx, in); err != nil {
		return nil, err
	}
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil || c == nil {
		return nil, err
	}
	c.Name, c.Email, c.Phone, c.Address = in.Name, in.Email, in.Phone, in.Address
	c.UserID = dto.BlankToNil(in.UserID)
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return toCustomerResponse(c), nil
}

// List lista clientes con paginación.
func (uc *CustomerUseCase) List(ctx context.Context, limit, offset int) (*dto.ListResponse[dto.CustomerResponse], error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCustomerResponse(c))
	}
	return dto.NewListResponse(items, limit, offset), nil
}

// Delete elimina un cliente por ID.
func (uc *CustomerUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		UserID:    c.UserID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
