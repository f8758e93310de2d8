package inventory_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/miinventory-api/internal/application/dto"
	"github.com/jhoicas/miinventory-api/internal/application/inventory"
	"github.com/jhoicas/miinventory-api/internal/domain"
	"github.com/jhoicas/miinventory-api/internal/domain/entity"
	"github.com/jhoicas/miinventory-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

// fakeDB simula la BD: cada Run trabaja sobre una copia y solo la publica en Commit.
// El mutex serializa las transacciones como lo haría el bloqueo de fila.
type fakeDB struct {
	mu           sync.Mutex
	stock        map[entity.StockKey]entity.Stock
	shipments    map[string]entity.Shipment
	failShipment error
}

func newFakeDB() *fakeDB {
	return &fakeDB{stock: map[entity.StockKey]entity.Stock{}, shipments: map[string]entity.Shipment{}}
}

func (db *fakeDB) Run(ctx context.Context, fn func(repository.StockRepository, repository.ShipmentRepository) error) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	st := &stockTx{rows: map[entity.StockKey]entity.Stock{}}
	for k, v := range db.stock {
		st.rows[k] = v
	}
	sh := &shipmentTx{failWith: db.failShipment, rows: map[string]entity.Shipment{}}
	if err := fn(st, sh); err != nil {
		return err // rollback: las copias se descartan
	}
	db.stock = st.rows
	for k, v := range sh.rows {
		db.shipments[k] = v
	}
	return nil
}

func (db *fakeDB) quantity(warehouseID, productID string) (int64, bool) {
	db.mu.Lock()
	defer db.mu.Unlock()
	s, ok := db.stock[entity.StockKey{WarehouseID: warehouseID, ProductID: productID}]
	return s.Quantity, ok
}

func (db *fakeDB) shipment(id string) (entity.Shipment, bool) {
	db.mu.Lock()
	defer db.mu.Unlock()
	s, ok := db.shipments[id]
	return s, ok
}

func (db *fakeDB) shipmentCount() int {
	db.mu.Lock()
	defer db.mu.Unlock()
	return len(db.shipments)
}

type stockTx struct {
	rows map[entity.StockKey]entity.Stock
}

func (tx *stockTx) GetForUpdate(_ context.Context, warehouseID, productID string) (*entity.Stock, error) {
	s, ok := tx.rows[entity.StockKey{WarehouseID: warehouseID, ProductID: productID}]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (tx *stockTx) GetOrCreateForUpdate(ctx context.Context, warehouseID, productID string) (*entity.Stock, error) {
	key := entity.StockKey{WarehouseID: warehouseID, ProductID: productID}
	if _, ok := tx.rows[key]; !ok {
		tx.rows[key] = entity.Stock{WarehouseID: warehouseID, ProductID: productID}
	}
	return tx.GetForUpdate(ctx, warehouseID, productID)
}

func (tx *stockTx) Save(_ context.Context, s *entity.Stock) error {
	if s.Quantity < 0 {
		return errors.New("check constraint: quantity >= 0")
	}
	tx.rows[s.Key()] = *s
	return nil
}

func (tx *stockTx) Get(ctx context.Context, warehouseID, productID string) (*entity.Stock, error) {
	return tx.GetForUpdate(ctx, warehouseID, productID)
}

func (tx *stockTx) List(context.Context, entity.StockFilter, int, int) ([]*entity.Stock, error) {
	return nil, nil
}

func (tx *stockTx) ListBelowMinimum(context.Context) ([]entity.LowStockItem, error) { return nil, nil }

type shipmentTx struct {
	failWith error
	rows     map[string]entity.Shipment
}

func (tx *shipmentTx) Create(_ context.Context, s *entity.Shipment) error {
	if tx.failWith != nil {
		return tx.failWith
	}
	// como la FK: un order_id vacío no referencia ninguna orden
	if s.OrderID != nil && *s.OrderID == "" {
		return domain.ErrConflict
	}
	tx.rows[s.ID] = *s
	return nil
}

func (tx *shipmentTx) GetByID(_ context.Context, id string) (*entity.Shipment, error) {
	s, ok := tx.rows[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (tx *shipmentTx) List(context.Context, entity.ShipmentFilter, int, int) ([]*entity.Shipment, error) {
	return nil, nil
}

// fakeCatalog implementa los lookups de producto, bodega y orden que necesita el caso de uso.
type fakeCatalog struct {
	products   map[string]bool
	warehouses map[string]bool
	orders     map[string]bool
}

type fakeProducts struct {
	repository.ProductRepository
	c *fakeCatalog
}

func (f fakeProducts) GetByID(_ context.Context, id string) (*entity.Product, error) {
	if !f.c.products[id] {
		return nil, nil
	}
	return &entity.Product{ID: id}, nil
}

type fakeWarehouses struct {
	repository.WarehouseRepository
	c *fakeCatalog
}

func (f fakeWarehouses) GetByID(_ context.Context, id string) (*entity.Warehouse, error) {
	if !f.c.warehouses[id] {
		return nil, nil
	}
	return &entity.Warehouse{ID: id}, nil
}

type fakeOrders struct {
	repository.OrderRepository
	c *fakeCatalog
}

func (f fakeOrders) GetByID(_ context.Context, id string) (*entity.Order, error) {
	if !f.c.orders[id] {
		return nil, nil
	}
	return &entity.Order{ID: id}, nil
}

func newUseCase(db *fakeDB) *inventory.RegisterShipmentUseCase {
	c := &fakeCatalog{
		products:   map[string]bool{"P": true, "Q": true},
		warehouses: map[string]bool{"W": true},
		orders:     map[string]bool{"O-1": true},
	}
	return inventory.NewRegisterShipmentUseCase(db, fakeProducts{c: c}, fakeWarehouses{c: c}, fakeOrders{c: c}, zerolog.Nop())
}

func req(kind, productID string, qty int64) dto.RegisterShipmentRequest {
	return dto.RegisterShipmentRequest{ShipmentType: kind, ProductID: productID, WarehouseID: "W", Quantity: qty}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_EscenarioEntradaSalidaRechazo(t *testing.T) {
	ctx := context.Background()
	db := newFakeDB()
	uc := newUseCase(db)

	out, err := uc.Register(ctx, req(entity.ShipmentIncoming, "P", 10))
	require.NoError(t, err)
	assert.Equal(t, int64(10), out.Stock.Quantity)
	assert.NotEmpty(t, out.Shipment.ID)

	out, err = uc.Register(ctx, req(entity.ShipmentOutgoing, "P", 4))
	require.NoError(t, err)
	assert.Equal(t, int64(6), out.Stock.Quantity)

	_, err = uc.Register(ctx, req(entity.ShipmentOutgoing, "P", 10))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	qty, _ := db.quantity("W", "P")
	assert.Equal(t, int64(6), qty)
	assert.Equal(t, 2, db.shipmentCount(), "el envío rechazado no debe persistirse")
}

func TestRegister_SalidaSinStockPrevio(t *testing.T) {
	db := newFakeDB()
	uc := newUseCase(db)

	_, err := uc.Register(context.Background(), req(entity.ShipmentOutgoing, "Q", 1))
	assert.ErrorIs(t, err, domain.ErrStockNotFound)
	assert.Zero(t, db.shipmentCount())
}

func TestRegister_ValidaEntrada(t *testing.T) {
	uc := newUseCase(newFakeDB())
	cases := map[string]dto.RegisterShipmentRequest{
		"tipo desconocido": {ShipmentType: "return", ProductID: "P", WarehouseID: "W", Quantity: 1},
		"sin producto":     {ShipmentType: entity.ShipmentIncoming, WarehouseID: "W", Quantity: 1},
		"sin bodega":       {ShipmentType: entity.ShipmentIncoming, ProductID: "P", Quantity: 1},
		"cantidad cero":    {ShipmentType: entity.ShipmentIncoming, ProductID: "P", WarehouseID: "W"},
		"cantidad negativa": {
			ShipmentType: entity.ShipmentIncoming, ProductID: "P", WarehouseID: "W", Quantity: -3,
		},
		"fecha inválida": {
			ShipmentType: entity.ShipmentIncoming, ProductID: "P", WarehouseID: "W", Quantity: 1, ShipmentDate: "ayer",
		},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := uc.Register(context.Background(), in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestRegister_ReferenciasInexistentes(t *testing.T) {
	uc := newUseCase(newFakeDB())
	ctx := context.Background()

	_, err := uc.Register(ctx, req(entity.ShipmentIncoming, "NO-EXISTE", 1))
	assert.ErrorIs(t, err, domain.ErrNotFound)

	in := req(entity.ShipmentIncoming, "P", 1)
	in.WarehouseID = "OTRA"
	_, err = uc.Register(ctx, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	in = req(entity.ShipmentIncoming, "P", 1)
	missing := "O-404"
	in.OrderID = &missing
	_, err = uc.Register(ctx, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegister_AceptaFechaYOrden(t *testing.T) {
	uc := newUseCase(newFakeDB())
	in := req(entity.ShipmentIncoming, "P", 2)
	in.ShipmentDate = "2024-03-15"
	order := "O-1"
	in.OrderID = &order

	out, err := uc.Register(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", out.Shipment.ShipmentDate.Format("2006-01-02"))
	require.NotNil(t, out.Shipment.OrderID)
	assert.Equal(t, "O-1", *out.Shipment.OrderID)
}

func TestRegister_OrdenVaciaSeGuardaSinOrden(t *testing.T) {
	for _, blank := range []string{"", "   "} {
		db := newFakeDB()
		uc := newUseCase(db)
		in := req(entity.ShipmentIncoming, "P", 4)
		order := blank
		in.OrderID = &order

		out, err := uc.Register(context.Background(), in)
		require.NoError(t, err, "order=%q", blank)
		assert.Nil(t, out.Shipment.OrderID)

		saved, ok := db.shipment(out.Shipment.ID)
		require.True(t, ok)
		assert.Nil(t, saved.OrderID)
		qty, _ := db.quantity("W", "P")
		assert.Equal(t, int64(4), qty)
	}
}

func TestRegister_FalloAlGuardarEnvioRevierteStock(t *testing.T) {
	db := newFakeDB()
	uc := newUseCase(db)
	ctx := context.Background()

	_, err := uc.Register(ctx, req(entity.ShipmentIncoming, "P", 5))
	require.NoError(t, err)

	boom := errors.New("insert shipment: timeout")
	db.failShipment = boom
	_, err = uc.Register(ctx, req(entity.ShipmentIncoming, "P", 7))
	assert.ErrorIs(t, err, boom)

	qty, _ := db.quantity("W", "P")
	assert.Equal(t, int64(5), qty, "el ajuste debe revertirse si el envío no se guarda")
}

// Las llamadas concurrentes sobre la misma clave nunca dejan stock negativo ni pierden actualizaciones.
func TestRegister_ConcurrenciaSobreMismaClave(t *testing.T) {
	ctx := context.Background()
	db := newFakeDB()
	uc := newUseCase(db)

	const initial = 20
	_, err := uc.Register(ctx, req(entity.ShipmentIncoming, "P", initial))
	require.NoError(t, err)

	const workers = 60
	var (
		wg                sync.WaitGroup
		mu                sync.Mutex
		okIn, okOut, fail int
		observed          []int64
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			kind := entity.ShipmentOutgoing
			var qty int64 = 3
			if i%3 == 0 {
				kind = entity.ShipmentIncoming
				qty = 2
			}
			out, err := uc.Register(ctx, req(kind, "P", qty))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil && kind == entity.ShipmentIncoming:
				okIn++
				observed = append(observed, out.Stock.Quantity)
			case err == nil:
				okOut++
				observed = append(observed, out.Stock.Quantity)
			default:
				assert.ErrorIs(t, err, domain.ErrInsufficientStock)
				fail++
			}
		}(i)
	}
	wg.Wait()

	final, _ := db.quantity("W", "P")
	assert.GreaterOrEqual(t, final, int64(0))
	assert.Equal(t, int64(initial+okIn*2-okOut*3), final, "no se deben perder actualizaciones")
	assert.Equal(t, workers, okIn+okOut+fail)
	assert.Equal(t, 20, okIn, "las entradas nunca fallan")

	sort.Slice(observed, func(i, j int) bool { return observed[i] < observed[j] })
	if len(observed) > 0 {
		assert.GreaterOrEqual(t, observed[0], int64(0))
	}
	assert.Equal(t, 1+okIn+okOut, db.shipmentCount())
}
