package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/miinventory-api/internal/application/dto"
	"github.com/jhoicas/miinventory-api/internal/domain"
	"github.com/jhoicas/miinventory-api/internal/domain/entity"
	"github.com/jhoicas/miinventory-api/internal/domain/repository"
	"github.com/jhoicas/miinventory-api/pkg/slug"
)

// ProductUseCase casos de uso CRUD para productos. La existencia por bodega se maneja vía envíos.
type ProductUseCase struct {
	repo         repository.ProductRepository
	supplierRepo repository.SupplierRepository
	categoryRepo repository.CategoryRepository
	userRepo     repository.UserRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
	categoryRepo repository.CategoryRepository,
	userRepo repository.UserRepository,
) *ProductUseCase {
	return &ProductUseCase{repo: repo, supplierRepo: supplierRepo, categoryRepo: categoryRepo, userRepo: userRepo}
}

// Create crea un producto. Code es único; Slug se deriva del nombre si viene vacío; Status por defecto pending.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Slug:         in.Slug,
		Code:         strings.TrimSpace(in.Code),
		BuyingPrice:  in.BuyingPrice,
		SellingPrice: in.SellingPrice,
		MinStock:     in.MinStock,
		Tax:          in.Tax,
		TaxType:      in.TaxType,
		Notes:        in.Notes,
		ProductImage: in.ProductImage,
		Status:       in.Status,
		SupplierID:   dto.BlankToNil(in.SupplierID),
		CategoryID:   dto.BlankToNil(in.CategoryID),
		CreatedBy:    dto.BlankToNil(in.CreatedBy),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if product.Status == "" {
		product.Status = entity.ProductStatusPending
	}
	if err := uc.validate(ctx, product); err != nil {
		return nil, err
	}
	if err := optionalRef(ctx, product.CreatedBy, uc.userRepo.GetByID); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByCode(ctx, product.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto. Solo cambian los campos presentes.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Slug != nil {
		product.Slug = *in.Slug
	}
	if in.Code != nil && strings.TrimSpace(*in.Code) != product.Code {
		code := strings.TrimSpace(*in.Code)
		existing, err := uc.repo.GetByCode(ctx, code)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != product.ID {
			return nil, domain.ErrDuplicate
		}
		product.Code = code
	}
	if in.BuyingPrice != nil {
		product.BuyingPrice = *in.BuyingPrice
	}
	if in.SellingPrice != nil {
		product.SellingPrice = *in.SellingPrice
	}
	if in.MinStock != nil {
		product.MinStock = *in.MinStock
	}
	if in.Tax != nil {
		product.Tax = in.Tax
	}
	if in.TaxType != nil {
		product.TaxType = in.TaxType
	}
	if in.Notes != nil {
		product.Notes = *in.Notes
	}
	if in.ProductImage != nil {
		product.ProductImage = *in.ProductImage
	}
	if in.Status != nil {
		product.Status = *in.Status
	}
	if in.SupplierID != nil {
		product.SupplierID = dto.BlankToNil(in.SupplierID)
	}
	if in.CategoryID != nil {
		product.CategoryID = dto.BlankToNil(in.CategoryID)
	}
	if err := uc.validate(ctx, product); err != nil {
		return nil, err
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// validate completa el slug y verifica campos y referencias del producto.
func (uc *ProductUseCase) validate(ctx context.Context, p *entity.Product) error {
	if err := required("name", p.Name); err != nil {
		return err
	}
	if err := required("code", p.Code); err != nil {
		return err
	}
	if strings.TrimSpace(p.Slug) == "" {
		p.Slug = slug.Make(p.Name)
	} else {
		p.Slug = slug.Make(p.Slug)
	}
	if p.Slug == "" {
		return domain.Invalid("slug", "no se pudo generar a partir del nombre")
	}
	if err := nonNegative("buying_price", p.BuyingPrice); err != nil {
		return err
	}
	if err := nonNegative("selling_price", p.SellingPrice); err != nil {
		return err
	}
	if p.MinStock < 0 {
		return domain.Invalid("min_stock", "no puede ser negativo")
	}
	if p.Tax != nil && *p.Tax < 0 {
		return domain.Invalid("tax", "no puede ser negativo")
	}
	if p.Status != entity.ProductStatusActive && p.Status != entity.ProductStatusPending {
		return domain.Invalid("status", "debe ser active o pending")
	}
	if err := optionalRef(ctx, p.SupplierID, uc.supplierRepo.GetByID); err != nil {
		return err
	}
	return optionalRef(ctx, p.CategoryID, uc.categoryRepo.GetByID)
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(ctx context.Context, limit, offset int) (*dto.ListResponse[dto.ProductResponse], error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return dto.NewListResponse(items, limit, offset), nil
}

// Delete elimina un producto por ID. Con stock o envíos asociados el repositorio devuelve ErrConflict.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Slug:         p.Slug,
		Code:         p.Code,
		BuyingPrice:  p.BuyingPrice,
		SellingPrice: p.SellingPrice,
		MinStock:     p.MinStock,
		Tax:          p.Tax,
		TaxType:      p.TaxType,
		Notes:        p.Notes,
		ProductImage: p.ProductImage,
		Status:       p.Status,
		SupplierID:   p.SupplierID,
		CategoryID:   p.CategoryID,
		CreatedBy:    p.CreatedBy,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
