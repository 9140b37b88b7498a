// Package search implementa el matching de texto usado en las búsquedas de
// inventario: sin distinción de mayúsculas ni de tildes, para que "tornillo
// métrico" encuentre "TORNILLO METRICO" y viceversa.
package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldTransformer = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)), // elimina marcas diacríticas
	norm.NFC,
)

// Fold normaliza un texto para comparación: minúsculas y sin diacríticos.
func Fold(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		// Entrada no normalizable: comparar tal cual en minúsculas
		return strings.ToLower(s)
	}
	return strings.ToLower(folded)
}

// Matches indica si needle aparece dentro de haystack ignorando mayúsculas y
// tildes. Un needle vacío siempre coincide.
func Matches(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(Fold(haystack), Fold(needle))
}
