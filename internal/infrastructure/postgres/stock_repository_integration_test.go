package postgres_test

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/miinventory-api/internal/application/dto"
	"github.com/jhoicas/miinventory-api/internal/application/inventory"
	"github.com/jhoicas/miinventory-api/internal/domain"
	"github.com/jhoicas/miinventory-api/internal/domain/entity"
	"github.com/jhoicas/miinventory-api/internal/infrastructure/postgres"
	"github.com/jhoicas/miinventory-api/pkg/config"
)

// Estos tests corren contra una base real: TEST_DATABASE_URL=postgres://... go test ./internal/infrastructure/postgres/
// Sin la variable se omiten.

type seed struct {
	pool        *pgxpool.Pool
	productID   string
	warehouseID string
}

func openTestDB(t *testing.T) *seed {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL no definido")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: dsn, MaxConns: 16})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	schema, err := os.ReadFile("../../../migrations/0001_init.sql")
	require.NoError(t, err)
	_, err = pool.Exec(ctx, string(schema))
	require.NoError(t, err, "aplicar migración")

	s := &seed{pool: pool, productID: "it-p-" + uuid.NewString(), warehouseID: "it-w-" + uuid.NewString()}
	_, err = pool.Exec(ctx, `INSERT INTO products (id, name, slug, code) VALUES ($1, $1, $1, $1)`, s.productID)
	require.NoError(t, err)
	_, err = pool.Exec(ctx, `INSERT INTO warehouses (id, name) VALUES ($1, $1)`, s.warehouseID)
	require.NoError(t, err)

	t.Cleanup(func() {
		bg := context.Background()
		_, _ = pool.Exec(bg, `DELETE FROM shipments WHERE product_id = $1`, s.productID)
		_, _ = pool.Exec(bg, `DELETE FROM stock WHERE product_id = $1`, s.productID)
		_, _ = pool.Exec(bg, `DELETE FROM products WHERE id = $1`, s.productID)
		_, _ = pool.Exec(bg, `DELETE FROM warehouses WHERE id = $1`, s.warehouseID)
	})
	return s
}

func (s *seed) useCase() *inventory.RegisterShipmentUseCase {
	return inventory.NewRegisterShipmentUseCase(
		postgres.NewTxRunner(s.pool),
		postgres.NewProductRepository(s.pool),
		postgres.NewWarehouseRepository(s.pool),
		postgres.NewOrderRepository(s.pool),
		zerolog.Nop(),
	)
}

func (s *seed) req(kind string, qty int64) dto.RegisterShipmentRequest {
	return dto.RegisterShipmentRequest{ShipmentType: kind, ProductID: s.productID, WarehouseID: s.warehouseID, Quantity: qty}
}

func (s *seed) quantity(t *testing.T) int64 {
	t.Helper()
	stock, err := postgres.NewStockRepository(s.pool).Get(context.Background(), s.warehouseID, s.productID)
	require.NoError(t, err)
	require.NotNil(t, stock)
	return stock.Quantity
}

func (s *seed) shipmentCount(t *testing.T) int {
	t.Helper()
	var n int
	err := s.pool.QueryRow(context.Background(), `SELECT count(*) FROM shipments WHERE product_id = $1`, s.productID).Scan(&n)
	require.NoError(t, err)
	return n
}

// Entradas y salidas concurrentes sobre el mismo par contra filas bloqueadas de verdad.
func TestStockRepo_EnviosConcurrentesNoPierdenNiNieganStock(t *testing.T) {
	s := openTestDB(t)
	uc := s.useCase()
	ctx := context.Background()

	const initial = 20
	_, err := uc.Register(ctx, s.req(entity.ShipmentIncoming, initial))
	require.NoError(t, err)

	const workers = 60
	var (
		wg                sync.WaitGroup
		mu                sync.Mutex
		okIn, okOut, fail int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			kind, qty := entity.ShipmentOutgoing, int64(3)
			if i%3 == 0 {
				kind, qty = entity.ShipmentIncoming, 2
			}
			out, err := uc.Register(ctx, s.req(kind, qty))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil && kind == entity.ShipmentIncoming:
				okIn++
				assert.GreaterOrEqual(t, out.Stock.Quantity, int64(0))
			case err == nil:
				okOut++
				assert.GreaterOrEqual(t, out.Stock.Quantity, int64(0))
			default:
				assert.ErrorIs(t, err, domain.ErrInsufficientStock)
				fail++
			}
		}(i)
	}
	wg.Wait()

	final := s.quantity(t)
	assert.GreaterOrEqual(t, final, int64(0))
	assert.Equal(t, int64(initial+okIn*2-okOut*3), final, "no se deben perder actualizaciones")
	assert.Equal(t, workers, okIn+okOut+fail)
	assert.Equal(t, 20, okIn, "las entradas nunca fallan")
	assert.Equal(t, 1+okIn+okOut, s.shipmentCount(t), "un envío por movimiento aceptado")
}

// Las primeras entradas concurrentes sobre un par sin fila la crean una sola vez.
func TestStockRepo_PrimerasEntradasConcurrentesCreanUnaFila(t *testing.T) {
	s := openTestDB(t)
	uc := s.useCase()
	ctx := context.Background()

	const workers = 16
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Register(ctx, s.req(entity.ShipmentIncoming, 1))
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}

	assert.Equal(t, int64(workers), s.quantity(t))
	var rows int
	require.NoError(t, s.pool.QueryRow(ctx,
		`SELECT count(*) FROM stock WHERE warehouse_id = $1 AND product_id = $2`, s.warehouseID, s.productID).Scan(&rows))
	assert.Equal(t, 1, rows)
}

func TestStockRepo_OrdenVaciaSeGuardaComoNull(t *testing.T) {
	s := openTestDB(t)
	in := s.req(entity.ShipmentIncoming, 3)
	blank := ""
	in.OrderID = &blank

	out, err := s.useCase().Register(context.Background(), in)
	require.NoError(t, err)

	var orderID *string
	require.NoError(t, s.pool.QueryRow(context.Background(),
		`SELECT order_id FROM shipments WHERE id = $1`, out.Shipment.ID).Scan(&orderID))
	assert.Nil(t, orderID)
}
