// Package analytics contiene el caso de uso del dashboard de inicio:
// tarjetas de resumen, alertas de stock bajo y últimos movimientos.
package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stock-control/internal/application/dto"
	"github.com/tu-usuario/stock-control/internal/application/reporting"
	"github.com/tu-usuario/stock-control/internal/domain/entity"
	"github.com/tu-usuario/stock-control/internal/domain/repository"
)

const dashboardRecentMovements = 10 // movimientos en el widget de actividad

// DashboardUseCase genera el resumen de la pantalla de inicio a partir del
// snapshot actual de catálogo y movimientos. Igual que los reportes, se
// recalcula completo en cada petición.
type DashboardUseCase struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	movementRepo repository.MovementRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	movementRepo repository.MovementRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		movementRepo: movementRepo,
	}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Tres lecturas en paralelo:
//  1. ListAll productos   → tarjetas de stock + alertas
//  2. ListAll categorías  → contador
//  3. List movimientos    → actividad de hoy + recientes
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	type productsResult struct {
		list []*entity.Product
		err  error
	}
	type categoriesResult struct {
		list []*entity.Category
		err  error
	}
	type movementsResult struct {
		list []*entity.Movement
		err  error
	}

	productsCh := make(chan productsResult, 1)
	categoriesCh := make(chan categoriesResult, 1)
	movementsCh := make(chan movementsResult, 1)

	go func() {
		list, err := uc.productRepo.ListAll()
		productsCh <- productsResult{list, err}
	}()
	go func() {
		list, err := uc.categoryRepo.ListAll()
		categoriesCh <- categoriesResult{list, err}
	}()
	go func() {
		list, err := uc.movementRepo.ListAll()
		movementsCh <- movementsResult{list, err}
	}()

	products := <-productsCh
	categories := <-categoriesCh
	movements := <-movementsCh

	if products.err != nil {
		return nil, fmt.Errorf("dashboard: productos: %w", products.err)
	}
	if categories.err != nil {
		return nil, fmt.Errorf("dashboard: categorías: %w", categories.err)
	}
	if movements.err != nil {
		return nil, fmt.Errorf("dashboard: movimientos: %w", movements.err)
	}

	summary := &dto.DashboardSummaryDTO{
		ProductCount:    len(products.list),
		CategoryCount:   len(categories.list),
		TotalStockValue: decimal.Zero,
		LowStockAlerts:  []dto.LowStockAlertDTO{},
		RecentMovements: []dto.MovementLineDTO{},
	}

	byID := make(map[string]*entity.Product, len(products.list))
	for _, p := range products.list {
		byID[p.ID] = p
		summary.TotalStockValue = summary.TotalStockValue.Add(decimal.NewFromInt(p.Quantity).Mul(p.Price))
		if p.OutOfStock() {
			summary.OutOfStockCount++
		}
		if p.LowStock() {
			summary.LowStockCount++
			summary.LowStockAlerts = append(summary.LowStockAlerts, dto.LowStockAlertDTO{
				ProductID:   p.ID,
				ProductName: p.Name,
				Unit:        p.Unit,
				Quantity:    p.Quantity,
				MinStock:    p.MinStock,
				OutOfStock:  p.OutOfStock(),
			})
		}
	}
	// Alertas: primero los agotados, luego por menor stock.
	sort.SliceStable(summary.LowStockAlerts, func(i, j int) bool {
		return summary.LowStockAlerts[i].Quantity < summary.LowStockAlerts[j].Quantity
	})

	recent := append([]*entity.Movement(nil), movements.list...)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	for _, m := range recent {
		if !m.CreatedAt.Before(todayStart) {
			if m.Type == entity.MovementTypeEntry {
				summary.TodayEntries++
			} else {
				summary.TodayExits++
			}
		}
		if len(summary.RecentMovements) < dashboardRecentMovements {
			summary.RecentMovements = append(summary.RecentMovements, toDashboardLine(m, byID))
		}
	}

	return summary, nil
}

func toDashboardLine(m *entity.Movement, byID map[string]*entity.Product) dto.MovementLineDTO {
	line := dto.MovementLineDTO{
		ID:        m.ID,
		ProductID: m.ProductID,
		Type:      m.Type,
		Quantity:  m.Quantity,
		Note:      m.Note,
		UnitPrice: decimal.Zero,
		Value:     decimal.Zero,
		CreatedAt: m.CreatedAt,
	}
	if p, ok := byID[m.ProductID]; ok {
		line.ProductName = p.Name
		line.Unit = p.Unit
		line.UnitPrice = p.Price
		line.Value = decimal.NewFromInt(m.Quantity).Mul(p.Price)
	} else {
		line.ProductName = reporting.MissingProductLabel
	}
	return line
}
