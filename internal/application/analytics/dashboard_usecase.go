// Package analytics contiene el caso de uso del tablero principal de bodega.
package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/josehoe716-wq/App-bodega-final/internal/application/dto"
	"github.com/josehoe716-wq/App-bodega-final/internal/domain/entity"
	"github.com/josehoe716-wq/App-bodega-final/internal/domain/repository"
)

const dashboardRecentMovements = 5 // movimientos en el widget de actividad reciente

// DashboardUseCase arma el resumen del tablero: totales de inventario, niveles
// de stock y la actividad de retiro del día.
type DashboardUseCase struct {
	materialRepo repository.MaterialRepository
	exitRepo     repository.MaterialExitRepository
	cartRepo     repository.CartExitRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	materialRepo repository.MaterialRepository,
	exitRepo repository.MaterialExitRepository,
	cartRepo repository.CartExitRepository,
) *DashboardUseCase {
	return &DashboardUseCase{materialRepo: materialRepo, exitRepo: exitRepo, cartRepo: cartRepo}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Tres consultas en paralelo:
//  1. listado de materiales  → totales y conteos por nivel de stock
//  2. salidas individuales   → actividad del día y movimientos recientes
//  3. salidas por carrito    → ídem
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	type materialsResult struct {
		materials []*entity.Material
		err       error
	}
	type exitsResult struct {
		exits []*entity.MaterialExit
		err   error
	}
	type cartsResult struct {
		carts []*entity.CartExit
		err   error
	}

	materialsCh := make(chan materialsResult, 1)
	exitsCh := make(chan exitsResult, 1)
	cartsCh := make(chan cartsResult, 1)

	go func() {
		materials, err := uc.materialRepo.List(ctx)
		materialsCh <- materialsResult{materials, err}
	}()
	go func() {
		exits, err := uc.exitRepo.List(ctx)
		exitsCh <- exitsResult{exits, err}
	}()
	go func() {
		carts, err := uc.cartRepo.List(ctx)
		cartsCh <- cartsResult{carts, err}
	}()

	materials := <-materialsCh
	exits := <-exitsCh
	carts := <-cartsCh

	if materials.err != nil {
		return nil, fmt.Errorf("dashboard: materiales: %w", materials.err)
	}
	if exits.err != nil {
		return nil, fmt.Errorf("dashboard: salidas: %w", exits.err)
	}
	if carts.err != nil {
		return nil, fmt.Errorf("dashboard: salidas por carrito: %w", carts.err)
	}

	summary := &dto.DashboardSummaryDTO{}
	fillMaterialStats(summary, materials.materials)
	fillActivity(summary, exits.exits, carts.carts, time.Now().Format("2006-01-02"))
	return summary, nil
}

func fillMaterialStats(summary *dto.DashboardSummaryDTO, materials []*entity.Material) {
	summary.TotalMaterials = len(materials)
	for _, m := range materials {
		summary.TotalUnits += m.Stock
		reorder := m.ReorderPoint
		if reorder <= 0 {
			reorder = 5
		}
		critical := reorder / 2
		switch {
		case m.Stock == 0:
			summary.ZeroStockCount++
			summary.ZeroStockMaterials = append(summary.ZeroStockMaterials, dto.ToMaterialResponse(m))
		case m.Stock <= critical:
			summary.CriticalStockCount++
		case m.Stock <= reorder:
			summary.LowStockCount++
		}
	}
}

func fillActivity(summary *dto.DashboardSummaryDTO, exits []*entity.MaterialExit, carts []*entity.CartExit, today string) {
	movements := make([]entity.Movement, 0, len(exits)+len(carts))
	for _, e := range exits {
		if e.ExitDate == today {
			summary.ExitsToday++
			summary.UnitsWithdrawnToday += e.Quantity
		}
		movements = append(movements, entity.Movement{Kind: entity.MovementKindSingle, Single: e})
	}
	for _, c := range carts {
		if c.ExitDate == today {
			summary.ExitsToday++
			summary.UnitsWithdrawnToday += c.TotalQuantity
		}
		movements = append(movements, entity.Movement{Kind: entity.MovementKindCart, Cart: c})
	}
	sort.SliceStable(movements, func(i, j int) bool {
		return movements[i].CreatedAt().After(movements[j].CreatedAt())
	})
	if len(movements) > dashboardRecentMovements {
		movements = movements[:dashboardRecentMovements]
	}
	summary.RecentMovements = make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		summary.RecentMovements = append(summary.RecentMovements, dto.ToMovementResponse(m))
	}
}
