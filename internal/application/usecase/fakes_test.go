package usecase_test

import (
	"context"

	"github.com/jhoicas/miinventory-api/internal/domain"
	"github.com/jhoicas/miinventory-api/internal/domain/entity"
)

// memRepo es un repositorio CRUD en memoria; conserva el orden de inserción para List.
type memRepo[T any] struct {
	rows  map[string]T
	order []string
	id    func(*T) string
}

func newMem[T any](id func(*T) string) *memRepo[T] {
	return &memRepo[T]{rows: map[string]T{}, id: id}
}

func (m *memRepo[T]) Create(_ context.Context, v *T) error {
	key := m.id(v)
	if _, ok := m.rows[key]; ok {
		return domain.ErrDuplicate
	}
	m.rows[key] = *v
	m.order = append(m.order, key)
	return nil
}

func (m *memRepo[T]) GetByID(_ context.Context, id string) (*T, error) {
	v, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (m *memRepo[T]) Update(_ context.Context, v *T) error {
	key := m.id(v)
	if _, ok := m.rows[key]; !ok {
		return domain.ErrNotFound
	}
	m.rows[key] = *v
	return nil
}

func (m *memRepo[T]) List(_ context.Context, limit, offset int) ([]*T, error) {
	out := []*T{}
	for i, key := range m.order {
		if i < offset {
			continue
		}
		if len(out) == limit {
			break
		}
		v, ok := m.rows[key]
		if ok {
			out = append(out, &v)
		}
	}
	return out, nil
}

func (m *memRepo[T]) Delete(_ context.Context, id string) error {
	if _, ok := m.rows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

func (m *memRepo[T]) all() []T {
	out := make([]T, 0, len(m.rows))
	for _, key := range m.order {
		if v, ok := m.rows[key]; ok {
			out = append(out, v)
		}
	}
	return out
}

type memUsers struct{ *memRepo[entity.User] }

func (m memUsers) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range m.all() {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

type memProducts struct{ *memRepo[entity.Product] }

func (m memProducts) GetByCode(_ context.Context, code string) (*entity.Product, error) {
	for _, p := range m.all() {
		if p.Code == code {
			return &p, nil
		}
	}
	return nil, nil
}

func (m memProducts) ListBySupplier(_ context.Context, supplierID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range m.all() {
		if p.SupplierID != nil && *p.SupplierID == supplierID {
			out = append(out, &p)
		}
	}
	return out, nil
}

type memOrders struct{ *memRepo[entity.Order] }

func (m memOrders) List(_ context.Context, orderType string, limit, offset int) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range m.all() {
		if orderType == "" || o.Type == orderType {
			out = append(out, &o)
		}
	}
	return out, nil
}

// store agrupa todos los repositorios en memoria de un test.
type store struct {
	users      memUsers
	categories *memRepo[entity.Category]
	suppliers  *memRepo[entity.Supplier]
	locations  *memRepo[entity.Location]
	warehouses *memRepo[entity.Warehouse]
	customers  *memRepo[entity.Customer]
	products   memProducts
	orders     memOrders
	quotations *memRepo[entity.Quotation]
}

func newStore() *store {
	return &store{
		users:      memUsers{newMem(func(u *entity.User) string { return u.ID })},
		categories: newMem(func(c *entity.Category) string { return c.ID }),
		suppliers:  newMem(func(s *entity.Supplier) string { return s.ID }),
		locations:  newMem(func(l *entity.Location) string { return l.ID }),
		warehouses: newMem(func(w *entity.Warehouse) string { return w.ID }),
		customers:  newMem(func(c *entity.Customer) string { return c.ID }),
		products:   memProducts{newMem(func(p *entity.Product) string { return p.ID })},
		orders:     memOrders{newMem(func(o *entity.Order) string { return o.ID })},
		quotations: newMem(func(q *entity.Quotation) string { return q.ID }),
	}
}

// seed carga un catálogo mínimo: producto P (proveedor S), bodegas W1 y W2, cliente C, usuario U.
func (s *store) seed() {
	ctx := context.Background()
	supplier := "S"
	_ = s.suppliers.Create(ctx, &entity.Supplier{ID: "S", Name: "Proveedor"})
	_ = s.products.Create(ctx, &entity.Product{ID: "P", Name: "Tornillo", Code: "T-01", SupplierID: &supplier, Status: entity.ProductStatusActive})
	_ = s.warehouses.Create(ctx, &entity.Warehouse{ID: "W1", Name: "Central"})
	_ = s.warehouses.Create(ctx, &entity.Warehouse{ID: "W2", Name: "Norte"})
	_ = s.customers.Create(ctx, &entity.Customer{ID: "C", Name: "Cliente"})
	_ = s.users.Create(ctx, &entity.User{ID: "U", Name: "Ana", Email: "ana@example.com"})
}

func ptr[T any](v T) *T { return &v }
