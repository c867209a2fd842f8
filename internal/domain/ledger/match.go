// Package ledger contiene los servicios de dominio puros del motor de inventario:
// normalización de claves para búsqueda y asignación de lotes FEFO.
package ledger

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeKey normaliza un nombre o código para comparación insensible a mayúsculas.
// Se aplica NFC para que formas compuestas y descompuestas del mismo texto
// (frecuentes en nombres con diacríticos) comparen iguales.
func NormalizeKey(s string) string {
	return strings.ToLower(norm.NFC.String(strings.TrimSpace(s)))
}

// KeysEqual compara dos claves ya sin garantía de normalización.
func KeysEqual(a, b string) bool {
	return NormalizeKey(a) == NormalizeKey(b)
}
