// Package analytics contiene el resumen de la pantalla principal.
package analytics

import (
	"context"

	"github.com/jhoicas/stock-ledger/internal/application/dto"
	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

const (
	dashboardLowStock = 5  // artículos con menor stock
	dashboardRecent   = 10 // últimas transacciones
	dashboardChart    = 8  // barras del gráfico
)

// DashboardUseCase arma el resumen de inventario. Solo lectura.
type DashboardUseCase struct {
	items repository.ItemRepository
	txs   repository.TransactionRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(items repository.ItemRepository, txs repository.TransactionRepository) *DashboardUseCase {
	return &DashboardUseCase{items: items, txs: txs}
}

// GetSummary lanza las cuatro consultas en paralelo:
//  1. StockSummary           → TotalItems + TotalStock
//  2. LowestStock(5)         → LowStock
//  3. List(limit 10)         → RecentTransactions
//  4. List("") primeros 8    → StockChart (por nombre)
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummary, error) {
	type totalsResult struct {
		items, stock int64
		err          error
	}
	type itemsResult struct {
		list []*entity.Item
		err  error
	}
	type txsResult struct {
		list []*entity.Transaction
		err  error
	}

	totalsCh := make(chan totalsResult, 1)
	lowCh := make(chan itemsResult, 1)
	recentCh := make(chan txsResult, 1)
	chartCh := make(chan itemsResult, 1)

	go func() {
		n, s, err := uc.items.StockSummary(ctx)
		totalsCh <- totalsResult{n, s, err}
	}()
	go func() {
		list, err := uc.items.LowestStock(ctx, dashboardLowStock)
		lowCh <- itemsResult{list, err}
	}()
	go func() {
		list, err := uc.txs.List(ctx, entity.TransactionFilter{Limit: dashboardRecent})
		recentCh <- txsResult{list, err}
	}()
	go func() {
		list, err := uc.items.List(ctx, "")
		chartCh <- itemsResult{list, err}
	}()

	totals := <-totalsCh
	low := <-lowCh
	recent := <-recentCh
	chart := <-chartCh

	if totals.err != nil {
		return nil, domain.WrapStore("dashboard totals", totals.err)
	}
	if low.err != nil {
		return nil, domain.WrapStore("dashboard low stock", low.err)
	}
	if recent.err != nil {
		return nil, domain.WrapStore("dashboard recent transactions", recent.err)
	}
	if chart.err != nil {
		return nil, domain.WrapStore("dashboard chart", chart.err)
	}

	points := make([]dto.ChartPoint, 0, dashboardChart)
	for i, it := range chart.list {
		if i == dashboardChart {
			break
		}
		points = append(points, dto.ChartPoint{Name: it.Name, Stock: it.Stock})
	}

	return &dto.DashboardSummary{
		TotalItems:         totals.items,
		TotalStock:         totals.stock,
		LowStock:           dto.NewItemResponses(low.list),
		RecentTransactions: dto.NewTransactionResponses(recent.list),
		StockChart:         points,
	}, nil
}
