package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/miinventory-api/internal/application/dto"
	"github.com/jhoicas/miinventory-api/internal/domain"
	"github.com/jhoicas/miinventory-api/internal/domain/entity"
	"github.com/jhoicas/miinventory-api/internal/domain/repository"
)

// QuotationDocument agrupa los datos que necesita el PDF de una cotización.
type QuotationDocument struct {
	Quotation *entity.Quotation
	Customer  *entity.Customer
	Product   *entity.Product
}

// QuotationPDFGenerator puerto para renderizar una cotización (implementado con Maroto en infrastructure/pdf).
type QuotationPDFGenerator interface {
	GenerateQuotationPDF(ctx context.Context, doc QuotationDocument) ([]byte, error)
}

// QuotationUseCase casos de uso para cotizaciones.
type QuotationUseCase struct {
	repo         repository.QuotationRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	pdf          QuotationPDFGenerator
}

// NewQuotationUseCase construye el caso de uso.
func NewQuotationUseCase(
	repo repository.QuotationRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	pdf QuotationPDFGenerator,
) *QuotationUseCase {
	return &QuotationUseCase{repo: repo, customerRepo: customerRepo, productRepo: productRepo, pdf: pdf}
}

// Create crea una cotización en estado draft salvo que se indique otro.
func (uc *QuotationUseCase) Create(ctx context.Context, in dto.QuotationRequest) (*dto.QuotationResponse, error) {
	now := time.Now()
	q := &entity.Quotation{ID: uuid.New().String(), CreatedAt: now}
	if err := uc.apply(ctx, q, in, now); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, q); err != nil {
		return nil, err
	}
	return toQuotationResponse(q), nil
}

// GetByID obtiene una cotización por ID.
func (uc *QuotationUseCase) GetByID(ctx context.Context, id string) (*dto.QuotationResponse, error) {
	q, err := uc.repo.GetByID(ctx, id)
	if err != nil || q == nil {
		return nil, err
	}
	return toQuotationResponse(q), nil
}

// Update reemplaza la cotización y recalcula el total.
func (uc *QuotationUseCase) Update(ctx context.Context, id string, in dto.QuotationRequest) (*dto.QuotationResponse, error) {
	q, err := uc.repo.GetByID(ctx, id)
	if err != nil || q == nil {
		return nil, err
	}
	if err := uc.apply(ctx, q, in, time.Now()); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, q); err != nil {
		return nil, err
	}
	return toQuotationResponse(q), nil
}

// List lista cotizaciones con paginación.
func (uc *QuotationUseCase) List(ctx context.Context, limit, offset int) (*dto.ListResponse[dto.QuotationResponse], error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.QuotationResponse, 0, len(list))
	for _, q := range list {
		items = append(items, *toQuotationResponse(q))
	}
	return dto.NewListResponse(items, limit, offset), nil
}

// Delete elimina una cotización por ID.
func (uc *QuotationUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// PDF genera el documento de la cotización. ErrNotFound si no existe.
func (uc *QuotationUseCase) PDF(ctx context.Context, id string) ([]byte, error) {
	q, err := mustExist(ctx, id, uc.repo.GetByID)
	if err != nil {
		return nil, err
	}
	customer, err := mustExist(ctx, q.CustomerID, uc.customerRepo.GetByID)
	if err != nil {
		return nil, err
	}
	product, err := mustExist(ctx, q.ProductID, uc.productRepo.GetByID)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateQuotationPDF(ctx, QuotationDocument{Quotation: q, Customer: customer, Product: product})
}

func (uc *QuotationUseCase) apply(ctx context.Context, q *entity.Quotation, in dto.QuotationRequest, now time.Time) error {
	if err := required("customer", in.CustomerID); err != nil {
		return err
	}
	if err := required("product", in.ProductID); err != nil {
		return err
	}
	if err := positive("quantity", in.Quantity); err != nil {
		return err
	}
	if err := nonNegative("unit_price", in.UnitPrice); err != nil {
		return err
	}
	status := in.Status
	if status == "" {
		status = entity.QuotationStatusDraft
	}
	if !entity.IsValidQuotationStatus(status) {
		return domain.Invalid("status", "debe ser draft, sent, accepted o rejected")
	}
	validUntil, err := dto.ParseDate("valid_until", in.ValidUntil)
	if err != nil {
		return err
	}
	if _, err := mustExist(ctx, in.CustomerID, uc.customerRepo.GetByID); err != nil {
		return err
	}
	if _, err := mustExist(ctx, in.ProductID, uc.productRepo.GetByID); err != nil {
		return err
	}

	q.CustomerID = in.CustomerID
	q.ProductID = in.ProductID
	q.Quantity = in.Quantity
	q.UnitPrice = in.UnitPrice
	q.Total = in.UnitPrice.Mul(decimal.NewFromInt(in.Quantity))
	q.ValidUntil = validUntil
	q.Status = status
	q.Notes = in.Notes
	q.UpdatedAt = now
	return nil
}

func toQuotationResponse(q *entity.Quotation) *dto.QuotationResponse {
	return &dto.QuotationResponse{
		ID:         q.ID,
		CustomerID: q.CustomerID,
		ProductID:  q.ProductID,
		Quantity:   q.Quantity,
		UnitPrice:  q.UnitPrice,
		Total:      q.Total,
		ValidUntil: q.ValidUntil,
		Status:     q.Status,
		Notes:      q.Notes,
		CreatedAt:  q.CreatedAt,
		UpdatedAt:  q.UpdatedAt,
	}
}
