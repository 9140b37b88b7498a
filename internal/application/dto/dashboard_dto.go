package dto

// DashboardSummaryDTO resumen para el tablero principal.
type DashboardSummaryDTO struct {
	TotalMaterials      int                `json:"total_materials"`
	TotalUnits          int                `json:"total_units"`
	LowStockCount       int                `json:"low_stock_count"`
	CriticalStockCount  int                `json:"critical_stock_count"`
	ZeroStockCount      int                `json:"zero_stock_count"`
	ExitsToday          int                `json:"exits_today"`
	UnitsWithdrawnToday int                `json:"units_withdrawn_today"`
	RecentMovements     []MovementResponse `json:"recent_movements"`
	ZeroStockMaterials  []MaterialResponse `json:"zero_stock_materials"`
}
