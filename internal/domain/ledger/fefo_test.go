package ledger_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanquocpodcastne-create/PHAVI/internal/domain/entity"
	"github.com/hanquocpodcastne-create/PHAVI/internal/domain/ledger"
)

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func testLots() []*entity.InventoryLot {
	return []*entity.InventoryLot{
		{ID: "l1", ProductID: "p1", WarehouseID: "w1", Quantity: 5, LotNumber: "A", ExpiryDate: datePtr(2025, 1, 1)},
		{ID: "l2", ProductID: "p1", WarehouseID: "w1", Quantity: 5, LotNumber: "B", ExpiryDate: datePtr(2025, 3, 1)},
		{ID: "l3", ProductID: "p1", WarehouseID: "w1", Quantity: 5, LotNumber: "C"}, // sin vencimiento
	}
}

// TestAllocate_OrdenFEFO: con vencimientos [2025-01-01:5, 2025-03-01:5, sin fecha:5]
// y un pedido de 8, se drenan 5 del primero y 3 del segundo; el stock sin fecha queda intacto.
func TestAllocate_OrdenFEFO(t *testing.T) {
	lots := testLots()

	remaining := ledger.Allocate(lots, "p1", "w1", 8, "")

	require.Zero(t, remaining, "el chequeo previo garantiza que la asignación completa")
	assert.Equal(t, int64(0), lots[0].Quantity, "el lote que vence primero se drena completo")
	assert.Equal(t, int64(2), lots[1].Quantity)
	assert.Equal(t, int64(5), lots[2].Quantity, "el stock sin vencimiento sale último")
}

// TestAllocate_LoteEspecifico: con número de lote informado solo se drena ese lote.
func TestAllocate_LoteEspecifico(t *testing.T) {
	lots := testLots()

	remaining := ledger.Allocate(lots, "p1", "w1", 3, "B")

	require.Zero(t, remaining)
	assert.Equal(t, int64(5), lots[0].Quantity)
	assert.Equal(t, int64(2), lots[1].Quantity)
	assert.Equal(t, int64(5), lots[2].Quantity)
}

// TestAllocate_FallbackLoteInexistente: un número de lote sin candidatos vuelve al
// conjunto completo en vez de fallar (comportamiento documentado, ver doc de Allocate).
func TestAllocate_FallbackLoteInexistente(t *testing.T) {
	lots := testLots()

	remaining := ledger.Allocate(lots, "p1", "w1", 4, "NO-EXISTE")

	require.Zero(t, remaining)
	assert.Equal(t, int64(1), lots[0].Quantity, "el fallback drena en orden FEFO normal")
}

// TestAllocate_CandidatosAgotados devuelve el faltante cuando no alcanza el stock.
func TestAllocate_CandidatosAgotados(t *testing.T) {
	lots := testLots()

	remaining := ledger.Allocate(lots, "p1", "w1", 20, "")

	assert.Equal(t, int64(5), remaining)
	for _, lot := range lots {
		assert.Equal(t, int64(0), lot.Quantity, "todos los lotes quedan en cero")
	}
}

// TestAllocate_IgnoraOtrosProductosYBodegas: los lotes de otro producto u otra bodega
// no participan como candidatos.
func TestAllocate_IgnoraOtrosProductosYBodegas(t *testing.T) {
	lots := append(testLots(),
		&entity.InventoryLot{ID: "x1", ProductID: "p2", WarehouseID: "w1", Quantity: 50},
		&entity.InventoryLot{ID: "x2", ProductID: "p1", WarehouseID: "w2", Quantity: 50},
	)

	remaining := ledger.Allocate(lots, "p1", "w1", 15, "")

	require.Zero(t, remaining)
	assert.Equal(t, int64(50), lots[3].Quantity)
	assert.Equal(t, int64(50), lots[4].Quantity)
}

// TestAllocate_SaltaLotesVacios: los lotes con cantidad 0 no son candidatos.
func TestAllocate_SaltaLotesVacios(t *testing.T) {
	lots := []*entity.InventoryLot{
		{ID: "l0", ProductID: "p1", WarehouseID: "w1", Quantity: 0, ExpiryDate: datePtr(2024, 1, 1)},
		{ID: "l1", ProductID: "p1", WarehouseID: "w1", Quantity: 3, ExpiryDate: datePtr(2025, 1, 1)},
	}

	remaining := ledger.Allocate(lots, "p1", "w1", 2, "")

	require.Zero(t, remaining)
	assert.Equal(t, int64(1), lots[1].Quantity)
}

func TestAvailable_AgregadoYPorLote(t *testing.T) {
	lots := testLots()

	assert.Equal(t, int64(15), ledger.Available(lots, "p1", "w1", ""))
	assert.Equal(t, int64(5), ledger.Available(lots, "p1", "w1", "B"))
	assert.Equal(t, int64(0), ledger.Available(lots, "p1", "w1", "NO-EXISTE"))
	assert.Equal(t, int64(0), ledger.Available(lots, "p9", "w1", ""))
}

func TestNormalizeKey(t *testing.T) {
	assert.Equal(t, ledger.NormalizeKey("Kho Chính"), ledger.NormalizeKey("  kho chính "))
	assert.True(t, ledger.KeysEqual("SP-001", "sp-001"))
	assert.False(t, ledger.KeysEqual("SP-001", "SP-002"))
	// forma compuesta (NFC) y descompuesta (NFD) del mismo texto
	assert.True(t, ledger.KeysEqual("café", "cafe\u0301"))
}
