package dto

// ChartPoint una barra del gráfico de stock.
type ChartPoint struct {
	Name  string `json:"name"`
	Stock int64  `json:"stock"`
}

// DashboardSummary resumen para la pantalla principal.
type DashboardSummary struct {
	TotalItems         int64                 `json:"total_items"`
	TotalStock         int64                 `json:"total_stock"`
	LowStock           []ItemResponse        `json:"low_stock"`
	RecentTransactions []TransactionResponse `json:"recent_transactions"`
	StockChart         []ChartPoint          `json:"stock_chart"`
}
