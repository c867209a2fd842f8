package ledger

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hanquocpodcastne-create/PHAVI/internal/domain/entity"
	domledger "github.com/hanquocpodcastne-create/PHAVI/internal/domain/ledger"
)

// FindProduct busca un producto con la prioridad documentada: primero coincidencia
// exacta (insensible a mayúsculas) por código, luego por nombre. Solo lectura.
func FindProduct(products []*entity.Product, code, name string) *entity.Product {
	if code != "" {
		key := domledger.NormalizeKey(code)
		for _, p := range products {
			if p.Code != "" && domledger.NormalizeKey(p.Code) == key {
				return p
			}
		}
	}
	if name != "" {
		key := domledger.NormalizeKey(name)
		for _, p := range products {
			if domledger.NormalizeKey(p.Name) == key {
				return p
			}
		}
	}
	return nil
}

// Catalog es la copia de trabajo del catálogo durante un commit. Registra los
// productos sintetizados aparte (created) y mantiene el mapa de códigos creados
// en el mismo lote para que varios renglones con un código nuevo repetido
// resuelvan a UN producto, no a duplicados.
type Catalog struct {
	products    []*entity.Product
	created     []*entity.Product
	batchByCode map[string]*entity.Product
	now         time.Time
}

// NewCatalog arma la copia de trabajo sobre el catálogo persistido.
func NewCatalog(products []*entity.Product, now time.Time) *Catalog {
	working := make([]*entity.Product, len(products))
	copy(working, products)
	return &Catalog{
		products:    working,
		batchByCode: make(map[string]*entity.Product),
		now:         now,
	}
}

// Resolve encuentra o sintetiza el producto de un renglón. Orden de búsqueda:
// catálogo (código y luego nombre), mapa del lote en curso, y si no hay
// coincidencia se crea uno nuevo con valores por defecto. La síntesis muta solo
// la copia de trabajo; la persistencia ocurre una vez al final del commit.
func (c *Catalog) Resolve(item entity.ExtractedItem) *entity.Product {
	if p := FindProduct(c.products, item.ProductCode, item.ProductName); p != nil {
		return p
	}
	if item.ProductCode != "" {
		if p, ok := c.batchByCode[domledger.NormalizeKey(item.ProductCode)]; ok {
			return p
		}
	}

	name := strings.TrimSpace(item.ProductName)
	if name == "" {
		name = "Producto sin nombre"
	}
	code := strings.TrimSpace(item.ProductCode)
	if code == "" {
		code = generatedCode()
	}
	unit := strings.TrimSpace(item.Unit)
	if unit == "" {
		unit = "unidad"
	}
	p := &entity.Product{
		ID:        uuid.New().String(),
		Code:      code,
		Name:      name,
		Category:  "Sin categoría",
		Unit:      unit,
		CostPrice: item.CostPrice,
		CreatedAt: c.now,
		UpdatedAt: c.now,
	}
	c.products = append(c.products, p)
	c.created = append(c.created, p)
	if item.ProductCode != "" {
		c.batchByCode[domledger.NormalizeKey(item.ProductCode)] = p
	}
	return p
}

// Created devuelve los productos sintetizados durante el commit, en orden de creación.
func (c *Catalog) Created() []*entity.Product {
	return c.created
}

// generatedCode produce un código único para productos extraídos sin código.
func generatedCode() string {
	return "SP-" + strings.ToUpper(uuid.New().String()[:8])
}
