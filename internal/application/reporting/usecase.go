// Package reporting contiene los casos de uso de reportes: carga el
// snapshot actual (movimientos + catálogo), invoca el motor puro de
// internal/domain/report y convierte el resultado en DTOs o en el documento
// imprimible.
package reporting

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tu-usuario/stock-control/internal/application/dto"
	"github.com/tu-usuario/stock-control/internal/domain"
	"github.com/tu-usuario/stock-control/internal/domain/entity"
	"github.com/tu-usuario/stock-control/internal/domain/report"
	"github.com/tu-usuario/stock-control/internal/domain/repository"
)

// MissingProductLabel etiqueta para movimientos de productos eliminados.
const MissingProductLabel = "Producto eliminado"

// UseCase genera reportes bajo demanda. Cada invocación recalcula todo
// desde el snapshot actual: no hay caché ni invalidación que mantener.
type UseCase struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	movementRepo repository.MovementRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	movementRepo repository.MovementRepository,
) *UseCase {
	return &UseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		movementRepo: movementRepo,
	}
}

// Generate carga el snapshot, arma el reporte y lo convierte a DTO.
func (uc *UseCase) Generate(ctx context.Context, in dto.ReportRequest) (*dto.ReportDTO, error) {
	params, err := parseParams(in)
	if err != nil {
		return nil, err
	}
	movements, products, categories, err := uc.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	r, err := report.Assemble(params, movements, products, categories)
	if err != nil {
		return nil, err
	}
	return toReportDTO(r), nil
}

// Assemble carga el snapshot y devuelve el reporte de dominio crudo
// (lo consume el generador de PDF).
func (uc *UseCase) Assemble(ctx context.Context, in dto.ReportRequest) (*report.Report, error) {
	params, err := parseParams(in)
	if err != nil {
		return nil, err
	}
	movements, products, categories, err := uc.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return report.Assemble(params, movements, products, categories)
}

// loadSnapshot trae movimientos, productos y categorías en paralelo.
// El motor es puro: todas las lecturas ocurren aquí, antes de calcular.
func (uc *UseCase) loadSnapshot(ctx context.Context) ([]entity.Movement, []entity.Product, []entity.Category, error) {
	type movementsResult struct {
		list []*entity.Movement
		err  error
	}
	type productsResult struct {
		list []*entity.Product
		err  error
	}
	type categoriesResult struct {
		list []*entity.Category
		err  error
	}

	movementsCh := make(chan movementsResult, 1)
	productsCh := make(chan productsResult, 1)
	categoriesCh := make(chan categoriesResult, 1)

	go func() {
		list, err := uc.movementRepo.ListAll()
		movementsCh <- movementsResult{list, err}
	}()
	go func() {
		list, err := uc.productRepo.ListAll()
		productsCh <- productsResult{list, err}
	}()
	go func() {
		list, err := uc.categoryRepo.ListAll()
		categoriesCh <- categoriesResult{list, err}
	}()

	movements := <-movementsCh
	products := <-productsCh
	categories := <-categoriesCh

	if movements.err != nil {
		return nil, nil, nil, fmt.Errorf("reporte: cargar movimientos: %w", movements.err)
	}
	if products.err != nil {
		return nil, nil, nil, fmt.Errorf("reporte: cargar productos: %w", products.err)
	}
	if categories.err != nil {
		return nil, nil, nil, fmt.Errorf("reporte: cargar categorías: %w", categories.err)
	}

	return deref(movements.list), deref(products.list), deref(categories.list), nil
}

// parseParams valida y convierte los parámetros del request. El motor
// vuelve a validar kind y period; aquí solo se separa el filtro de productos.
func parseParams(in dto.ReportRequest) (report.Params, error) {
	kind := report.Kind(in.Kind)
	period := report.Period(in.Period)
	if !kind.Valid() || !period.Valid() {
		return report.Params{}, domain.ErrInvalidInput
	}
	var productIDs []string
	for _, id := range strings.Split(in.ProductIDs, ",") {
		if id = strings.TrimSpace(id); id != "" {
			productIDs = append(productIDs, id)
		}
	}
	return report.Params{
		Kind:       kind,
		Period:     period,
		ProductIDs: productIDs,
		Now:        time.Now(),
	}, nil
}

func deref[T any](list []*T) []T {
	out := make([]T, 0, len(list))
	for _, item := range list {
		if item != nil {
			out = append(out, *item)
		}
	}
	return out
}

// ── Conversión a DTOs ─────────────────────────────────────────────────────────

func toReportDTO(r *report.Report) *dto.ReportDTO {
	out := &dto.ReportDTO{
		Kind:        string(r.Kind),
		Period:      string(r.Period),
		GeneratedAt: r.GeneratedAt,
		ProductIDs:  r.ProductIDs,
		Totals: dto.ReportTotalsDTO{
			EntryQuantity: r.Totals.EntryQuantity,
			ExitQuantity:  r.Totals.ExitQuantity,
			EntryValue:    r.Totals.EntryValue,
			ExitValue:     r.Totals.ExitValue,
			NetQuantity:   r.Totals.NetQuantity,
			NetValue:      r.Totals.NetValue,
			EntryCount:    r.Totals.EntryCount,
			ExitCount:     r.Totals.ExitCount,
		},
		ByCategory: toCategoryBreakdownDTOs(r.ByCategory),
	}

	if len(r.Ranking) > 0 {
		out.Ranking = make([]dto.ProductTotalDTO, 0, len(r.Ranking))
		for i, pt := range r.Ranking {
			out.Ranking = append(out.Ranking, dto.ProductTotalDTO{
				Rank:          i + 1,
				ProductID:     pt.ProductID,
				ProductName:   pt.ProductName,
				Unit:          pt.Unit,
				Quantity:      pt.Quantity,
				MovementCount: pt.MovementCount,
				Value:         pt.Value,
			})
		}
	}
	if len(r.Movements) > 0 {
		out.Movements = toMovementLineDTOs(r.Movements)
	}
	if r.Stock != nil {
		out.Stock = &dto.StockSummaryDTO{
			ProductCount:    r.Stock.ProductCount,
			TotalStockValue: r.Stock.TotalStockValue,
			AveragePrice:    r.Stock.AveragePrice,
			LowStockCount:   r.Stock.LowStockCount,
			OutOfStockCount: r.Stock.OutOfStockCount,
		}
	}
	if len(r.Consumption) > 0 {
		out.Consumption = make([]dto.ConsumptionEntryDTO, 0, len(r.Consumption))
		for _, e := range r.Consumption {
			out.Consumption = append(out.Consumption, dto.ConsumptionEntryDTO{
				ProductID:         e.ProductID,
				ProductName:       e.ProductName,
				Unit:              e.Unit,
				CategoryID:        e.CategoryID,
				CategoryName:      e.CategoryName,
				CategoryColor:     e.CategoryColor,
				TotalConsumed:     e.TotalConsumed,
				MovementCount:     e.MovementCount,
				DailyAverage:      e.DailyAverage,
				MonthlyProjection: e.MonthlyProjection,
				DaysUntilEmpty:    e.DaysUntilEmpty,
				CostProjection:    e.CostProjection,
				Urgency:           e.Urgency,
			})
		}
	}
	if r.ConsumptionSummary != nil {
		out.ConsumptionSummary = &dto.ConsumptionSummaryDTO{
			CriticalCount:    r.ConsumptionSummary.CriticalCount,
			WarningCount:     r.ConsumptionSummary.WarningCount,
			OKCount:          r.ConsumptionSummary.OKCount,
			TotalMonthlyCost: r.ConsumptionSummary.TotalMonthlyCost,
		}
	}
	return out
}

func toCategoryBreakdownDTOs(breakdown []report.CategoryBreakdown) []dto.CategoryBreakdownDTO {
	out := make([]dto.CategoryBreakdownDTO, 0, len(breakdown))
	for _, b := range breakdown {
		out = append(out, dto.CategoryBreakdownDTO{
			CategoryID:    b.CategoryID,
			CategoryName:  b.CategoryName,
			Color:         b.Color,
			ProductCount:  b.ProductCount,
			TotalQuantity: b.TotalQuantity,
			TotalValue:    b.TotalValue,
		})
	}
	return out
}

func toMovementLineDTOs(lines []report.MovementLine) []dto.MovementLineDTO {
	out := make([]dto.MovementLineDTO, 0, len(lines))
	for _, line := range lines {
		name := line.ProductName
		if line.ProductMissing {
			name = MissingProductLabel
		}
		out = append(out, dto.MovementLineDTO{
			ID:          line.ID,
			ProductID:   line.ProductID,
			ProductName: name,
			Unit:        line.Unit,
			Type:        line.Type,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			Value:       line.Value,
			Note:        line.Note,
			CreatedAt:   line.CreatedAt,
		})
	}
	return out
}
