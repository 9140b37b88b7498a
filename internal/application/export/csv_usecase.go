// Package export genera y consume archivos tabulares compatibles con Excel
// (CSV) para el inventario y el historial de salidas.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/josehoe716-wq/App-bodega-final/internal/application/inventory"
	"github.com/josehoe716-wq/App-bodega-final/internal/domain/entity"
)

// Encabezados del archivo de materiales; el mismo orden aplica en exportación
// e importación.
var materialHeader = []string{
	"Tipo", "Nombre", "Código", "Ubicación", "Stock", "Unidad",
	"Punto Pedido", "Punto Máximo", "Categoría",
}

var movementHeader = []string{
	"Tipo Salida", "Código Registro", "Fecha", "Hora", "Solicitante", "Área",
	"CECO", "Código SAP", "OT", "Material", "Código", "Cantidad", "Stock Restante",
}

// UseCase escribe y parsea los archivos de importación/exportación.
type UseCase struct{}

// NewUseCase construye el caso de uso.
func NewUseCase() *UseCase {
	return &UseCase{}
}

// WriteMaterials exporta el listado de materiales como CSV.
func (uc *UseCase) WriteMaterials(w io.Writer, materials []*entity.Material) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(materialHeader); err != nil {
		return fmt.Errorf("write materials header: %w", err)
	}
	for _, m := range materials {
		record := []string{
			m.Type, m.Name, m.Code, m.Location,
			strconv.Itoa(m.Stock), m.Unit,
			strconv.Itoa(m.ReorderPoint), strconv.Itoa(m.MaxLevel),
			orDefault(m.Category, "Sin categoría"),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write material %q: %w", m.Code, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteMovements exporta el historial unificado como CSV: una fila por salida
// individual y una fila por línea de carrito (con el código de registro
// repetido en cada línea de su lote).
func (uc *UseCase) WriteMovements(w io.Writer, movements []entity.Movement) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(movementHeader); err != nil {
		return fmt.Errorf("write movements header: %w", err)
	}
	for _, m := range movements {
		switch m.Kind {
		case entity.MovementKindSingle:
			e := m.Single
			record := []string{
				"Individual", "", e.ExitDate, e.ExitTime,
				e.PersonName + " " + e.PersonLastName, e.Area,
				e.Ceco, e.SapCode, e.WorkOrder,
				e.MaterialName, e.MaterialCode,
				strconv.Itoa(e.Quantity), strconv.Itoa(e.RemainingStock),
			}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("write exit %d: %w", e.ID, err)
			}
		case entity.MovementKindCart:
			c := m.Cart
			for _, line := range c.Materials {
				record := []string{
					"Carrito", c.RegistryCode, c.ExitDate, c.ExitTime,
					c.PersonName + " " + c.PersonLastName, c.Area,
					c.Ceco, c.SapCode, c.WorkOrder,
					line.MaterialName, line.MaterialCode,
					strconv.Itoa(line.Quantity), strconv.Itoa(line.RemainingStock),
				}
				if err := cw.Write(record); err != nil {
					return fmt.Errorf("write cart exit %d: %w", c.ID, err)
				}
			}
		default:
			return fmt.Errorf("movimiento de tipo desconocido %q", m.Kind)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ParseMaterials lee un CSV de materiales y devuelve las filas como entradas
// de importación. El encabezado debe coincidir con el de exportación; una fila
// inválida aborta el archivo completo con el número de fila en el error.
func (uc *UseCase) ParseMaterials(r io.Reader) ([]inventory.MaterialInput, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("leer CSV de materiales: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("el CSV debe tener encabezado y al menos una fila de datos")
	}
	if !headerMatches(records[0], materialHeader) {
		return nil, fmt.Errorf("encabezado inesperado: se requiere %v", materialHeader)
	}

	inputs := make([]inventory.MaterialInput, 0, len(records)-1)
	for i, record := range records[1:] {
		if len(record) != len(materialHeader) {
			return nil, fmt.Errorf("fila %d: se esperaban %d columnas, hay %d", i+2, len(materialHeader), len(record))
		}
		input, err := parseMaterialRecord(record)
		if err != nil {
			return nil, fmt.Errorf("fila %d: %w", i+2, err)
		}
		inputs = append(inputs, input)
	}
	return inputs, nil
}

func parseMaterialRecord(record []string) (inventory.MaterialInput, error) {
	stock, err := strconv.Atoi(strings.TrimSpace(record[4]))
	if err != nil || stock < 0 {
		return inventory.MaterialInput{}, fmt.Errorf("stock inválido %q", record[4])
	}
	reorder, err := strconv.Atoi(strings.TrimSpace(record[6]))
	if err != nil || reorder < 0 {
		return inventory.MaterialInput{}, fmt.Errorf("punto de pedido inválido %q", record[6])
	}
	maxLevel, err := strconv.Atoi(strings.TrimSpace(record[7]))
	if err != nil || maxLevel < 0 {
		return inventory.MaterialInput{}, fmt.Errorf("punto máximo inválido %q", record[7])
	}
	materialType := strings.ToUpper(strings.TrimSpace(record[0]))
	if !entity.ValidMaterialType(materialType) {
		return inventory.MaterialInput{}, fmt.Errorf("tipo de material inválido %q", record[0])
	}
	return inventory.MaterialInput{
		Type:         materialType,
		Name:         strings.TrimSpace(record[1]),
		Code:         strings.TrimSpace(record[2]),
		Location:     strings.TrimSpace(record[3]),
		Stock:        stock,
		Unit:         strings.TrimSpace(record[5]),
		ReorderPoint: reorder,
		MaxLevel:     maxLevel,
		Category:     strings.TrimSpace(record[8]),
	}, nil
}

func headerMatches(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range want {
		if !strings.EqualFold(strings.TrimSpace(got[i]), want[i]) {
			return false
		}
	}
	return true
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
