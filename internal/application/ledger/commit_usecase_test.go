package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanquocpodcastne-create/PHAVI/internal/application/ledger"
	"github.com/hanquocpodcastne-create/PHAVI/internal/domain"
	"github.com/hanquocpodcastne-create/PHAVI/internal/domain/entity"
	"github.com/hanquocpodcastne-create/PHAVI/internal/infrastructure/memory"
)

func newFixture(t *testing.T) (*memory.Store, *ledger.CommitUseCase, ledger.Repos) {
	t.Helper()
	store := memory.NewStore()
	return store, ledger.NewCommitUseCase(store), store.Repos()
}

func seedProduct(t *testing.T, r ledger.Repos, code, name string) *entity.Product {
	t.Helper()
	p := &entity.Product{
		ID:        uuid.New().String(),
		Code:      code,
		Name:      name,
		Category:  "General",
		Unit:      "unidad",
		CostPrice: decimal.NewFromInt(10),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, r.Products.Create(context.Background(), p))
	return p
}

func seedWarehouse(t *testing.T, r ledger.Repos, name string) *entity.Warehouse {
	t.Helper()
	w := &entity.Warehouse{
		ID:        uuid.New().String(),
		Name:      name,
		Location:  "Zona franca",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, r.Warehouses.Create(context.Background(), w))
	return w
}

func seedLot(t *testing.T, r ledger.Repos, productID, warehouseID string, qty int64, lotNumber, expiry string) *entity.InventoryLot {
	t.Helper()
	lot := &entity.InventoryLot{
		ID:          uuid.New().String(),
		ProductID:   productID,
		WarehouseID: warehouseID,
		Quantity:    qty,
		LotNumber:   lotNumber,
		CreatedAt:   time.Now(),
	}
	if expiry != "" {
		d, err := time.Parse("2006-01-02", expiry)
		require.NoError(t, err)
		lot.ExpiryDate = &d
	}
	require.NoError(t, r.Lots.Create(context.Background(), lot))
	return lot
}

func totalQuantity(t *testing.T, r ledger.Repos, productID string) int64 {
	t.Helper()
	lots, err := r.Lots.List(context.Background())
	require.NoError(t, err)
	var total int64
	for _, l := range lots {
		if l.ProductID == productID {
			total += l.Quantity
		}
	}
	return total
}

func TestCommit_EntradaCreaTodoElGrafo(t *testing.T) {
	ctx := context.Background()
	_, uc, r := newFixture(t)

	doc := entity.ExtractedDocument{
		Type:          entity.TransactionTypeINBOUND,
		DocumentID:    "FAC-001",
		Date:          "2026-08-10",
		WarehouseName: "Bodega Central",
		SupplierName:  "Distribuidora Andina",
		Items: []entity.ExtractedItem{
			{ProductCode: "SKU-1", ProductName: "Harina de trigo", Quantity: 100, Unit: "kg", CostPrice: decimal.NewFromFloat(2.5), LotNumber: "L-01", ExpiryDate: "2027-01-15"},
			{ProductName: "Azúcar refinada", Quantity: 50},
		},
	}
	require.NoError(t, uc.Commit(ctx, doc))

	// Bodega y proveedor dados de alta automáticamente.
	warehouses, err := r.Warehouses.List(ctx)
	require.NoError(t, err)
	require.Len(t, warehouses, 1)
	assert.Equal(t, "Bodega Central", warehouses[0].Name)
	assert.Equal(t, "Sin especificar", warehouses[0].Location)

	suppliers, err := r.Suppliers.List(ctx)
	require.NoError(t, err)
	require.Len(t, suppliers, 1)
	assert.Equal(t, "Distribuidora Andina", suppliers[0].Name)

	// Un producto por renglón, con defaults donde el documento no trae datos.
	products, err := r.Products.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "SKU-1", products[0].Code)
	assert.True(t, products[0].CostPrice.Equal(decimal.NewFromFloat(2.5)))
	assert.Equal(t, "Sin categoría", products[1].Category)
	assert.Equal(t, "unidad", products[1].Unit)
	assert.NotEmpty(t, products[1].Code)

	// Un lote nuevo por renglón de entrada.
	lots, err := r.Lots.List(ctx)
	require.NoError(t, err)
	require.Len(t, lots, 2)
	assert.Equal(t, int64(100), lots[0].Quantity)
	assert.Equal(t, "L-01", lots[0].LotNumber)
	require.NotNil(t, lots[0].ExpiryDate)
	assert.Equal(t, "2027-01-15", lots[0].ExpiryDate.Format("2006-01-02"))
	assert.Nil(t, lots[1].ExpiryDate)

	// Una transacción por renglón, con la fecha del documento.
	txns, err := r.Transactions.List(ctx)
	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.Equal(t, entity.TransactionTypeINBOUND, txns[0].Type)
	assert.Equal(t, "FAC-001", txns[0].DocumentID)
	assert.Equal(t, "Distribuidora Andina", txns[0].RelatedPartyName)
	assert.Equal(t, "2026-08-10", txns[0].Date.Format("2006-01-02"))
}

func TestCommit_EntradaLuegoSalidaFEFO(t *testing.T) {
	ctx := context.Background()
	_, uc, r := newFixture(t)

	inbound := entity.ExtractedDocument{
		Type:          entity.TransactionTypeINBOUND,
		WarehouseName: "Principal",
		Items: []entity.ExtractedItem{
			{ProductCode: "CAFE-01", ProductName: "Café molido", Quantity: 100, ExpiryDate: "2027-06-30"},
		},
	}
	require.NoError(t, uc.Commit(ctx, inbound))

	outbound := entity.ExtractedDocument{
		Type:          entity.TransactionTypeOUTBOUND,
		WarehouseName: "principal", // insensible a mayúsculas
		Items: []entity.ExtractedItem{
			{ProductCode: "CAFE-01", ProductName: "Café molido", Quantity: 40},
		},
	}
	require.NoError(t, uc.Commit(ctx, outbound))

	// No se duplicó la bodega ni el producto.
	warehouses, err := r.Warehouses.List(ctx)
	require.NoError(t, err)
	require.Len(t, warehouses, 1)
	products, err := r.Products.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)

	// El lote quedó en 60, no fue podado.
	lots, err := r.Lots.List(ctx)
	require.NoError(t, err)
	require.Len(t, lots, 1)
	assert.Equal(t, int64(60), lots[0].Quantity)

	txns, err := r.Transactions.List(ctx)
	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.Equal(t, entity.TransactionTypeOUTBOUND, txns[1].Type)
	assert.Equal(t, int64(40), txns[1].Quantity)
}

func TestCommit_SalidaConsumeEnOrdenFEFOYPoda(t *testing.T) {
	ctx := context.Background()
	_, uc, r := newFixture(t)

	p := seedProduct(t, r, "SKU-9", "Leche entera")
	w := seedWarehouse(t, r, "Frío")
	proximo := seedLot(t, r, p.ID, w.ID, 30, "A", "2026-09-01")
	lejano := seedLot(t, r, p.ID, w.ID, 50, "B", "2027-09-01")

	doc := entity.ExtractedDocument{
		Type:          entity.TransactionTypeOUTBOUND,
		WarehouseName: "Frío",
		Items:         []entity.ExtractedItem{{ProductCode: "SKU-9", ProductName: "Leche entera", Quantity: 45}},
	}
	require.NoError(t, uc.Commit(ctx, doc))

	// El lote más próximo a vencer se drena primero y queda podado.
	drained, err := r.Lots.GetByID(ctx, proximo.ID)
	require.NoError(t, err)
	assert.Nil(t, drained)

	rest, err := r.Lots.GetByID(ctx, lejano.ID)
	require.NoError(t, err)
	require.NotNil(t, rest)
	assert.Equal(t, int64(35), rest.Quantity)
}

func TestCommit_SalidaInsuficienteNoMutaNada(t *testing.T) {
	ctx := context.Background()
	_, uc, r := newFixture(t)

	p1 := seedProduct(t, r, "A-1", "Arroz")
	p2 := seedProduct(t, r, "A-2", "Frijol")
	w := seedWarehouse(t, r, "Central")
	seedLot(t, r, p1.ID, w.ID, 100, "", "")
	seedLot(t, r, p2.ID, w.ID, 5, "", "")

	require.NoError(t, r.Drafts.Save(ctx, &entity.DraftDocument{FileName: "remision.pdf", UpdatedAt: time.Now()}))

	doc := entity.ExtractedDocument{
		Type:          entity.TransactionTypeOUTBOUND,
		WarehouseName: "Central",
		Items: []entity.ExtractedItem{
			{ProductCode: "A-1", ProductName: "Arroz", Quantity: 10},
			{ProductCode: "A-2", ProductName: "Frijol", Quantity: 20},
			{ProductCode: "ZZ-9", ProductName: "Inexistente", Quantity: 1},
		},
	}
	err := uc.Commit(ctx, doc)
	require.Error(t, err)

	// El error trae la lista COMPLETA de renglones problemáticos.
	insufficient, ok := domain.AsInsufficientStock(err)
	require.True(t, ok)
	require.Len(t, insufficient.Issues, 2)
	assert.Equal(t, "Frijol", insufficient.Issues[0].ProductName)
	assert.Equal(t, int64(20), insufficient.Issues[0].Requested)
	assert.Equal(t, int64(5), insufficient.Issues[0].Available)
	assert.True(t, insufficient.Issues[1].ProductNotFound)

	// Nada mutó: ni el renglón válido se aplicó, ni hay transacciones, ni se
	// tocó el borrador.
	assert.Equal(t, int64(100), totalQuantity(t, r, p1.ID))
	assert.Equal(t, int64(5), totalQuantity(t, r, p2.ID))
	txns, err := r.Transactions.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, txns)
	draft, err := r.Drafts.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, draft)
	assert.Equal(t, "remision.pdf", draft.FileName)
}

func TestCommit_SalidaPorLoteExactoInsuficiente(t *testing.T) {
	ctx := context.Background()
	_, uc, r := newFixture(t)

	p := seedProduct(t, r, "Q-1", "Queso")
	w := seedWarehouse(t, r, "Central")
	seedLot(t, r, p.ID, w.ID, 50, "L-A", "")

	// Con lote informado la disponibilidad se mide solo sobre ese lote: pedir
	// un lote inexistente se rechaza aunque haya stock de sobra en otros.
	doc := entity.ExtractedDocument{
		Type:          entity.TransactionTypeOUTBOUND,
		WarehouseName: "Central",
		Items:         []entity.ExtractedItem{{ProductCode: "Q-1", ProductName: "Queso", Quantity: 10, LotNumber: "L-B"}},
	}
	err := uc.Commit(ctx, doc)
	insufficient, ok := domain.AsInsufficientStock(err)
	require.True(t, ok)
	require.Len(t, insufficient.Issues, 1)
	assert.Equal(t, "L-B", insufficient.Issues[0].LotNumber)
	assert.Equal(t, int64(0), insufficient.Issues[0].Available)
	assert.Equal(t, int64(50), totalQuantity(t, r, p.ID))
}

func TestCommit_DeduplicaProductosNuevosDelMismoDocumento(t *testing.T) {
	ctx := context.Background()
	_, uc, r := newFixture(t)

	doc := entity.ExtractedDocument{
		Type:          entity.TransactionTypeINBOUND,
		WarehouseName: "Central",
		Items: []entity.ExtractedItem{
			{ProductCode: "NU-1", ProductName: "Aceite", Quantity: 10},
			{ProductCode: "nu-1", ProductName: "Aceite girasol", Quantity: 20},
		},
	}
	require.NoError(t, uc.Commit(ctx, doc))

	// Dos renglones con el mismo código nuevo resuelven a UN producto.
	products, err := r.Products.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)

	lots, err := r.Lots.List(ctx)
	require.NoError(t, err)
	require.Len(t, lots, 2)
	assert.Equal(t, products[0].ID, lots[0].ProductID)
	assert.Equal(t, products[0].ID, lots[1].ProductID)
	assert.Equal(t, int64(30), totalQuantity(t, r, products[0].ID))
}

func TestCommit_ResuelveProductoPorCodigoAntesQueNombre(t *testing.T) {
	ctx := context.Background()
	_, uc, r := newFixture(t)

	porCodigo := seedProduct(t, r, "X-1", "Nombre viejo")
	seedProduct(t, r, "X-2", "Sal marina")
	seedWarehouse(t, r, "Central")

	doc := entity.ExtractedDocument{
		Type:          entity.TransactionTypeINBOUND,
		WarehouseName: "Central",
		Items: []entity.ExtractedItem{
			// El código manda aunque el nombre coincida con otro producto.
			{ProductCode: "X-1", ProductName: "Sal marina", Quantity: 7},
		},
	}
	require.NoError(t, uc.Commit(ctx, doc))

	lots, err := r.Lots.List(ctx)
	require.NoError(t, err)
	require.Len(t, lots, 1)
	assert.Equal(t, porCodigo.ID, lots[0].ProductID)
}

func TestCommit_SinBodega(t *testing.T) {
	ctx := context.Background()
	_, uc, r := newFixture(t)

	doc := entity.ExtractedDocument{
		Type:  entity.TransactionTypeINBOUND,
		Items: []entity.ExtractedItem{{ProductName: "Algo", Quantity: 1}},
	}
	err := uc.Commit(ctx, doc)
	assert.ErrorIs(t, err, domain.ErrMissingWarehouse)

	warehouses, err := r.Warehouses.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, warehouses)
}

func TestCommit_DocumentoInvalido(t *testing.T) {
	ctx := context.Background()
	_, uc, _ := newFixture(t)

	cases := []struct {
		name string
		doc  entity.ExtractedDocument
	}{
		{"tipo desconocido", entity.ExtractedDocument{Type: "TRANSFER", WarehouseName: "C", Items: []entity.ExtractedItem{{ProductName: "A", Quantity: 1}}}},
		{"sin renglones", entity.ExtractedDocument{Type: entity.TransactionTypeINBOUND, WarehouseName: "C"}},
		{"renglón sin nombre", entity.ExtractedDocument{Type: entity.TransactionTypeINBOUND, WarehouseName: "C", Items: []entity.ExtractedItem{{Quantity: 1}}}},
		{"cantidad cero", entity.ExtractedDocument{Type: entity.TransactionTypeINBOUND, WarehouseName: "C", Items: []entity.ExtractedItem{{ProductName: "A", Quantity: 0}}}},
		{"cantidad negativa", entity.ExtractedDocument{Type: entity.TransactionTypeOUTBOUND, WarehouseName: "C", Items: []entity.ExtractedItem{{ProductName: "A", Quantity: -3}}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, uc.Commit(ctx, tc.doc), domain.ErrInvalidInput)
		})
	}
}

func TestCommit_FechaDeVencimientoInvalidaAbortaSinMutar(t *testing.T) {
	ctx := context.Background()
	_, uc, r := newFixture(t)

	doc := entity.ExtractedDocument{
		Type:          entity.TransactionTypeINBOUND,
		WarehouseName: "Central",
		Items: []entity.ExtractedItem{
			{ProductName: "Yogur", Quantity: 10, ExpiryDate: "31/12/2026"},
		},
	}
	err := uc.Commit(ctx, doc)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// La bodega automática tampoco quedó: el rollback cubre el documento entero.
	warehouses, err := r.Warehouses.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, warehouses)
	products, err := r.Products.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestCommit_ConservacionDeCantidades(t *testing.T) {
	ctx := context.Background()
	_, uc, r := newFixture(t)

	commit := func(docType string, qty int64) {
		t.Helper()
		require.NoError(t, uc.Commit(ctx, entity.ExtractedDocument{
			Type:          docType,
			WarehouseName: "Obra",
			Items:         []entity.ExtractedItem{{ProductCode: "C-1", ProductName: "Cemento", Quantity: qty}},
		}))
	}
	commit(entity.TransactionTypeINBOUND, 80)
	commit(entity.TransactionTypeINBOUND, 20)
	commit(entity.TransactionTypeOUTBOUND, 30)
	commit(entity.TransactionTypeOUTBOUND, 25)

	products, err := r.Products.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)

	// Stock final = entradas - salidas, y el historial lo reconstruye.
	assert.Equal(t, int64(45), totalQuantity(t, r, products[0].ID))
	txns, err := r.Transactions.List(ctx)
	require.NoError(t, err)
	var balance int64
	for _, txn := range txns {
		if txn.Type == entity.TransactionTypeINBOUND {
			balance += txn.Quantity
		} else {
			balance -= txn.Quantity
		}
	}
	assert.Equal(t, int64(45), balance)

	// Ningún lote persiste con cantidad no positiva.
	lots, err := r.Lots.List(ctx)
	require.NoError(t, err)
	for _, l := range lots {
		assert.Positive(t, l.Quantity)
	}
}

func TestCommit_LimpiaElBorradorAlConfirmar(t *testing.T) {
	ctx := context.Background()
	_, uc, r := newFixture(t)

	require.NoError(t, r.Drafts.Save(ctx, &entity.DraftDocument{FileName: "factura.pdf", UpdatedAt: time.Now()}))

	doc := entity.ExtractedDocument{
		Type:          entity.TransactionTypeINBOUND,
		WarehouseName: "Central",
		Items:         []entity.ExtractedItem{{ProductName: "Papel", Quantity: 3}},
	}
	require.NoError(t, uc.Commit(ctx, doc))

	draft, err := r.Drafts.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, draft)
}
