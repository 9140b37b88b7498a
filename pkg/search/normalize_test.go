package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/josehoe716-wq/App-bodega-final/pkg/search"
)

func TestFold_QuitaTildesYMayusculas(t *testing.T) {
	assert.Equal(t, "tornillo metrico", search.Fold("Torníllo MÉTRICO"))
	assert.Equal(t, "niquel", search.Fold("Níquel"))
	assert.Equal(t, "sin cambios", search.Fold("sin cambios"))
}

func TestMatches_IgnoraMayusculasYTildes(t *testing.T) {
	assert.True(t, search.Matches("Tornillo métrico M6", "TORNILLO METRICO"))
	assert.True(t, search.Matches("CORREA DENTADA", "dentáda"))
	assert.False(t, search.Matches("Rodamiento", "correa"))
}

func TestMatches_NeedleVacioSiempreCoincide(t *testing.T) {
	assert.True(t, search.Matches("cualquier texto", ""))
	assert.True(t, search.Matches("", ""))
}

func TestMatches_Substring(t *testing.T) {
	assert.True(t, search.Matches("Filtro de aire B-02", "b-02"))
	assert.False(t, search.Matches("", "algo"))
}
