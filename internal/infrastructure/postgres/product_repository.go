package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/miinventory-api/internal/domain/entity"
	"github.com/jhoicas/miinventory-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, name, slug, code, buying_price, selling_price, min_stock, tax, tax_type, notes,
	product_image, status, supplier_id, category_id, created_by, created_at, updated_at`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Slug, &p.Code, &p.BuyingPrice, &p.SellingPrice, &p.MinStock, &p.Tax, &p.TaxType, &p.Notes,
		&p.ProductImage, &p.Status, &p.SupplierID, &p.CategoryID, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste un nuevo producto. Code y slug duplicados devuelven ErrDuplicate.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Name, p.Slug, p.Code, p.BuyingPrice, p.SellingPrice, p.MinStock, p.Tax, p.TaxType, p.Notes,
		p.ProductImage, p.Status, p.SupplierID, p.CategoryID, p.CreatedBy, p.CreatedAt, p.UpdatedAt,
	)
	return mapError("insert product", err)
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return queryOne(ctx, r.q, "get product", `SELECT `+productColumns+` FROM products WHERE id = $1`, scanProduct, id)
}

// GetByCode obtiene un producto por código.
func (r *ProductRepo) GetByCode(ctx context.Context, code string) (*entity.Product, error) {
	return queryOne(ctx, r.q, "get product by code", `SELECT `+productColumns+` FROM products WHERE code = $1`, scanProduct, code)
}

// Update actualiza todos los campos editables del producto.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE products SET name = $2, slug = $3, code = $4, buying_price = $5, selling_price = $6, min_stock = $7,
			tax = $8, tax_type = $9, notes = $10, product_image = $11, status = $12, supplier_id = $13,
			category_id = $14, updated_at = $15
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		p.ID, p.Name, p.Slug, p.Code, p.BuyingPrice, p.SellingPrice, p.MinStock,
		p.Tax, p.TaxType, p.Notes, p.ProductImage, p.Status, p.SupplierID,
		p.CategoryID, p.UpdatedAt,
	)
	return mustAffect(tag, err, "update product")
}

// List lista productos con paginación.
func (r *ProductRepo) List(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	return queryList(ctx, r.q, "list products",
		`SELECT `+productColumns+` FROM products ORDER BY name LIMIT $1 OFFSET $2`, scanProduct, limit, offset)
}

// ListBySupplier lista todos los productos de un proveedor.
func (r *ProductRepo) ListBySupplier(ctx context.Context, supplierID string) ([]*entity.Product, error) {
	return queryList(ctx, r.q, "list products by supplier",
		`SELECT `+productColumns+` FROM products WHERE supplier_id = $1 ORDER BY name`, scanProduct, supplierID)
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.q, "products", id)
}
