package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/miinventory-api/internal/application/dto"
	"github.com/jhoicas/miinventory-api/internal/domain/entity"
	"github.com/jhoicas/miinventory-api/internal/domain/repository"
)

// LocationUseCase casos de uso CRUD para ubicaciones.
type LocationUseCase struct {
	repo repository.LocationRepository
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(repo repository.LocationRepository) *LocationUseCase {
	return &LocationUseCase{repo: repo}
}

// Create crea una ubicación.
func (uc *LocationUseCase) Create(ctx context.Context, in dto.LocationRequest) (*dto.LocationResponse, error) {
	if err := required("name", in.Name); err != nil {
		return nil, err
	}
	now := time.Now()
	l := &entity.Location{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Address:   in.Address,
		City:      in.City,
		Country:   in.Country,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	return toLocationResponse(l), nil
}

// GetByID obtiene una ubicación por ID.
func (uc *LocationUseCase) GetByID(ctx context.Context, id string) (*dto.LocationResponse, error) {
	l, err := uc.repo.GetByID(ctx, id)
	if err != nil || l == nil {
		return nil, err
	}
	return toLocationResponse(l), nil
}

// Update reemplaza los datos de la ubicación.
func (uc *LocationUseCase) Update(ctx context.Context, id string, in dto.LocationRequest) (*dto.LocationResponse, error) {
	if err := required("name", in.Name); err != nil {
		return nil, err
	}
	l, err := uc.repo.GetByID(ctx, id)
	if err != nil || l == nil {
		return nil, err
	}
	l.Name, l.Address, l.City, l.Country = in.Name, in.Address, in.City, in.Country
	l.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, l); err != nil {
		return nil, err
	}
	return toLocationResponse(l), nil
}

// List lista ubicaciones con paginación.
func (uc *LocationUseCase) List(ctx context.Context, limit, offset int) (*dto.ListResponse[dto.LocationResponse], error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LocationResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *toLocationResponse(l))
	}
	return dto.NewListResponse(items, limit, offset), nil
}

// Delete elimina una ubicación por ID.
func (uc *LocationUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toLocationResponse(l *entity.Location) *dto.LocationResponse {
	return &dto.LocationResponse{
		ID:        l.ID,
		Name:      l.Name,
		Address:   l.Address,
		City:      l.City,
		Country:   l.Country,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}
