// Package memory implementa el almacén completo en memoria: las cinco colecciones,
// el borrador y los usuarios, como secuencias planas ordenadas. Se usa en los tests
// del motor de inventario y como modo de desarrollo sin base de datos
// (STORE_DRIVER=memory). Sin durabilidad: el proceso es la vida del dato.
package memory

import (
	"context"
	"sync"

	"github.com/hanquocpodcastne-create/PHAVI/internal/application/ledger"
	"github.com/hanquocpodcastne-create/PHAVI/internal/domain"
	"github.com/hanquocpodcastne-create/PHAVI/internal/domain/entity"
)

// Store guarda todas las colecciones. Las operaciones sueltas toman el mutex por
// llamada; la atomicidad compuesta la da Run (snapshot + restauración), bajo el
// supuesto de escritor único compuesto que impone el caso de uso de commit.
type Store struct {
	mu           sync.RWMutex
	txMu         sync.Mutex
	products     []*entity.Product
	warehouses   []*entity.Warehouse
	suppliers    []*entity.Supplier
	lots         []*entity.InventoryLot
	transactions []*entity.Transaction
	draft        *entity.DraftDocument
	users        []*entity.User
}

// NewStore construye un almacén vacío.
func NewStore() *Store {
	return &Store{}
}

// Repos devuelve el juego de repositorios sobre este almacén.
func (s *Store) Repos() ledger.Repos {
	return ledger.Repos{
		Products:     &ProductRepo{s: s},
		Warehouses:   &WarehouseRepo{s: s},
		Suppliers:    &SupplierRepo{s: s},
		Lots:         &InventoryLotRepo{s: s},
		Transactions: &TransactionRepo{s: s},
		Drafts:       &DraftRepo{s: s},
	}
}

// Users devuelve el repositorio de usuarios.
func (s *Store) Users() *UserRepo {
	return &UserRepo{s: s}
}

// snapshot copia el estado completo. Las entidades se clonan someramente salvo los
// lotes (el committer muta Quantity en sitio sobre su copia de trabajo, nunca sobre
// las instancias guardadas, así que la copia de punteros alcanza para restaurar
// altas/bajas; los Update reemplazan el puntero completo).
type snapshot struct {
	products     []*entity.Product
	warehouses   []*entity.Warehouse
	suppliers    []*entity.Supplier
	lots         []*entity.InventoryLot
	transactions []*entity.Transaction
	draft        *entity.DraftDocument
}

// Run implementa ledger.TxRunner: toma una instantánea, ejecuta fn y si falla
// restaura el estado previo. Commit/rollback de juguete, suficiente porque el
// caso de uso de commit es el único escritor compuesto.
func (s *Store) Run(_ context.Context, fn func(r ledger.Repos) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	snap := snapshot{
		products:     append([]*entity.Product(nil), s.products...),
		warehouses:   append([]*entity.Warehouse(nil), s.warehouses...),
		suppliers:    append([]*entity.Supplier(nil), s.suppliers...),
		lots:         append([]*entity.InventoryLot(nil), s.lots...),
		transactions: append([]*entity.Transaction(nil), s.transactions...),
		draft:        s.draft,
	}
	s.mu.Unlock()

	if err := fn(s.Repos()); err != nil {
		s.mu.Lock()
		s.products = snap.products
		s.warehouses = snap.warehouses
		s.suppliers = snap.suppliers
		s.lots = snap.lots
		s.transactions = snap.transactions
		s.draft = snap.draft
		s.mu.Unlock()
		return err
	}
	return nil
}

// ── Productos ─────────────────────────────────────────────────────────────────

// ProductRepo adaptador en memoria del puerto ProductRepository.
type ProductRepo struct{ s *Store }

func (r *ProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return append([]*entity.Product(nil), r.s.products...), nil
}

func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, p := range r.s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *ProductRepo) Create(_ context.Context, product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.products = append(r.s.products, product)
	return nil
}

func (r *ProductRepo) Update(_ context.Context, product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, p := range r.s.products {
		if p.ID == product.ID {
			r.s.products[i] = product
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *ProductRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, p := range r.s.products {
		if p.ID == id {
			r.s.products = append(r.s.products[:i], r.s.products[i+1:]...)
			return nil
		}
	}
	return nil
}

// ── Bodegas ───────────────────────────────────────────────────────────────────

// WarehouseRepo adaptador en memoria del puerto WarehouseRepository.
type WarehouseRepo struct{ s *Store }

func (r *WarehouseRepo) List(_ context.Context) ([]*entity.Warehouse, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return append([]*entity.Warehouse(nil), r.s.warehouses...), nil
}

func (r *WarehouseRepo) GetByID(_ context.Context, id string) (*entity.Warehouse, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, w := range r.s.warehouses {
		if w.ID == id {
			return w, nil
		}
	}
	return nil, nil
}

func (r *WarehouseRepo) Create(_ context.Context, warehouse *entity.Warehouse) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.warehouses = append(r.s.warehouses, warehouse)
	return nil
}

func (r *WarehouseRepo) Update(_ context.Context, warehouse *entity.Warehouse) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, w := range r.s.warehouses {
		if w.ID == warehouse.ID {
			r.s.warehouses[i] = warehouse
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *WarehouseRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, w := range r.s.warehouses {
		if w.ID == id {
			r.s.warehouses = append(r.s.warehouses[:i], r.s.warehouses[i+1:]...)
			return nil
		}
	}
	return nil
}

// ── Proveedores ───────────────────────────────────────────────────────────────

// SupplierRepo adaptador en memoria del puerto SupplierRepository.
type SupplierRepo struct{ s *Store }

func (r *SupplierRepo) List(_ context.Context) ([]*entity.Supplier, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return append([]*entity.Supplier(nil), r.s.suppliers...), nil
}

func (r *SupplierRepo) GetByID(_ context.Context, id string) (*entity.Supplier, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, sp := range r.s.suppliers {
		if sp.ID == id {
			return sp, nil
		}
	}
	return nil, nil
}

func (r *SupplierRepo) Create(_ context.Context, supplier *entity.Supplier) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.suppliers = append(r.s.suppliers, supplier)
	return nil
}

func (r *SupplierRepo) Update(_ context.Context, supplier *entity.Supplier) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, sp := range r.s.suppliers {
		if sp.ID == supplier.ID {
			r.s.suppliers[i] = supplier
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *SupplierRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, sp := range r.s.suppliers {
		if sp.ID == id {
			r.s.suppliers = append(r.s.suppliers[:i], r.s.suppliers[i+1:]...)
			return nil
		}
	}
	return nil
}

// ── Lotes ─────────────────────────────────────────────────────────────────────

// InventoryLotRepo adaptador en memoria del puerto InventoryLotRepository.
type InventoryLotRepo struct{ s *Store }

func (r *InventoryLotRepo) List(_ context.Context) ([]*entity.InventoryLot, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return append([]*entity.InventoryLot(nil), r.s.lots...), nil
}

func (r *InventoryLotRepo) ListByWarehouse(_ context.Context, warehouseID string) ([]*entity.InventoryLot, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.InventoryLot
	for _, l := range r.s.lots {
		if l.WarehouseID == warehouseID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *InventoryLotRepo) GetByID(_ context.Context, id string) (*entity.InventoryLot, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, l := range r.s.lots {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, nil
}

func (r *InventoryLotRepo) ExistsByProduct(_ context.Context, productID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, l := range r.s.lots {
		if l.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}

func (r *InventoryLotRepo) Create(_ context.Context, lot *entity.InventoryLot) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.lots = append(r.s.lots, lot)
	return nil
}

func (r *InventoryLotRepo) Update(_ context.Context, lot *entity.InventoryLot) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, l := range r.s.lots {
		if l.ID == lot.ID {
			r.s.lots[i] = lot
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *InventoryLotRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, l := range r.s.lots {
		if l.ID == id {
			r.s.lots = append(r.s.lots[:i], r.s.lots[i+1:]...)
			return nil
		}
	}
	return nil
}

// ── Transacciones ─────────────────────────────────────────────────────────────

// TransactionRepo adaptador en memoria del puerto TransactionRepository.
type TransactionRepo struct{ s *Store }

func (r *TransactionRepo) List(_ context.Context) ([]*entity.Transaction, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return append([]*entity.Transaction(nil), r.s.transactions...), nil
}

func (r *TransactionRepo) GetByID(_ context.Context, id string) (*entity.Transaction, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, t := range r.s.transactions {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}

func (r *TransactionRepo) Create(_ context.Context, txn *entity.Transaction) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.transactions = append(r.s.transactions, txn)
	return nil
}

func (r *TransactionRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, t := range r.s.transactions {
		if t.ID == id {
			r.s.transactions = append(r.s.transactions[:i], r.s.transactions[i+1:]...)
			return nil
		}
	}
	return nil
}

// ── Borrador ──────────────────────────────────────────────────────────────────

// DraftRepo adaptador en memoria del puerto DraftRepository.
type DraftRepo struct{ s *Store }

func (r *DraftRepo) Get(_ context.Context) (*entity.DraftDocument, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.draft, nil
}

func (r *DraftRepo) Save(_ context.Context, draft *entity.DraftDocument) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.draft = draft
	return nil
}

func (r *DraftRepo) Clear(_ context.Context) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.draft = nil
	return nil
}

// ── Usuarios ──────────────────────────────────────────────────────────────────

// UserRepo adaptador en memoria del puerto UserRepository.
type UserRepo struct{ s *Store }

func (r *UserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) Create(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.users = append(r.s.users, user)
	return nil
}
