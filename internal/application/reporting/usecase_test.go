package reporting_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stock-control/internal/application/dto"
	"github.com/tu-usuario/stock-control/internal/application/reporting"
	"github.com/tu-usuario/stock-control/internal/domain"
	"github.com/tu-usuario/stock-control/internal/domain/entity"
	"github.com/tu-usuario/stock-control/internal/domain/report"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: solo el snapshot ListAll que consume el caso de uso.
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct{ list []*entity.Product }

func (r *fakeProductRepo) Create(*entity.Product) error                  { return nil }
func (r *fakeProductRepo) GetByID(string) (*entity.Product, error)       { return nil, nil }
func (r *fakeProductRepo) GetForUpdate(string) (*entity.Product, error)  { return nil, nil }
func (r *fakeProductRepo) Update(*entity.Product) error                  { return nil }
func (r *fakeProductRepo) UpdateQuantity(string, int64) error            { return nil }
func (r *fakeProductRepo) List(int, int) ([]*entity.Product, error)      { return nil, nil }
func (r *fakeProductRepo) ListAll() ([]*entity.Product, error)           { return r.list, nil }
func (r *fakeProductRepo) Delete(string) error                           { return nil }

type fakeCategoryRepo struct{ list []*entity.Category }

func (r *fakeCategoryRepo) Create(*entity.Category) error             { return nil }
func (r *fakeCategoryRepo) GetByID(string) (*entity.Category, error)  { return nil, nil }
func (r *fakeCategoryRepo) Update(*entity.Category) error             { return nil }
func (r *fakeCategoryRepo) List(int, int) ([]*entity.Category, error) { return nil, nil }
func (r *fakeCategoryRepo) ListAll() ([]*entity.Category, error)      { return r.list, nil }
func (r *fakeCategoryRepo) Delete(string) error                       { return nil }

type fakeMovementRepo struct{ list []*entity.Movement }

func (r *fakeMovementRepo) Create(*entity.Movement) error            { return nil }
func (r *fakeMovementRepo) GetByID(string) (*entity.Movement, error) { return nil, nil }
func (r *fakeMovementRepo) ListByProduct(string, int, int) ([]*entity.Movement, error) {
	return nil, nil
}
func (r *fakeMovementRepo) List(int, int) ([]*entity.Movement, error) { return nil, nil }
func (r *fakeMovementRepo) ListAll() ([]*entity.Movement, error)      { return r.list, nil }
func (r *fakeMovementRepo) Delete(string) error                       { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Fixture: un catálogo chico con historial reciente.
// ──────────────────────────────────────────────────────────────────────────────

func buildUseCase() *reporting.UseCase {
	now := time.Now()
	products := []*entity.Product{
		{ID: "cafe", CategoryID: "bebidas", Name: "Café molido", Quantity: 40,
			MinStock: 10, Price: decimal.NewFromInt(50), Unit: "kg",
			CreatedAt: now, UpdatedAt: now},
		{ID: "azucar", CategoryID: "bebidas", Name: "Azúcar", Quantity: 100,
			MinStock: 20, Price: decimal.NewFromInt(10), Unit: "kg",
			CreatedAt: now, UpdatedAt: now},
	}
	categories := []*entity.Category{
		{ID: "bebidas", Name: "Bebidas", Color: "#8822aa", CreatedAt: now, UpdatedAt: now},
	}
	movements := []*entity.Movement{
		{ID: "m1", ProductID: "cafe", Type: entity.MovementTypeEntry, Quantity: 50,
			CreatedAt: now.AddDate(0, 0, -5)},
		{ID: "m2", ProductID: "cafe", Type: entity.MovementTypeExit, Quantity: 10,
			CreatedAt: now.AddDate(0, 0, -2)},
		// Movimiento huérfano: el producto ya no está en el catálogo.
		{ID: "m3", ProductID: "borrado", Type: entity.MovementTypeExit, Quantity: 3,
			CreatedAt: now.AddDate(0, 0, -1)},
	}
	return reporting.NewUseCase(
		&fakeProductRepo{list: products},
		&fakeCategoryRepo{list: categories},
		&fakeMovementRepo{list: movements},
	)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestGenerate_Entradas(t *testing.T) {
	uc := buildUseCase()

	out, err := uc.Generate(context.Background(), dto.ReportRequest{Kind: "entries", Period: "7d"})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "entries", out.Kind)
	assert.Equal(t, "7d", out.Period)
	assert.Equal(t, int64(50), out.Totals.EntryQuantity)
	assert.True(t, decimal.NewFromInt(2500).Equal(out.Totals.EntryValue), "50 kg * $50")

	require.Len(t, out.Ranking, 1)
	assert.Equal(t, 1, out.Ranking[0].Rank, "el ranking arranca en 1")
	assert.Equal(t, "Café molido", out.Ranking[0].ProductName)

	require.Len(t, out.Movements, 1)
	assert.Equal(t, "entry", out.Movements[0].Type)
}

// Los movimientos de productos eliminados salen con la etiqueta genérica.
func TestGenerate_ProductoEliminadoLlevaEtiqueta(t *testing.T) {
	uc := buildUseCase()

	out, err := uc.Generate(context.Background(), dto.ReportRequest{Kind: "exits", Period: "7d"})
	require.NoError(t, err)

	var labels []string
	for _, m := range out.Movements {
		labels = append(labels, m.ProductName)
	}
	assert.Contains(t, labels, reporting.MissingProductLabel)
	assert.Contains(t, labels, "Café molido")

	// El huérfano cuenta pero no suma cantidad ni valor.
	assert.Equal(t, 2, out.Totals.ExitCount)
	assert.Equal(t, int64(10), out.Totals.ExitQuantity)
}

func TestGenerate_General(t *testing.T) {
	uc := buildUseCase()

	out, err := uc.Generate(context.Background(), dto.ReportRequest{Kind: "general", Period: "30d"})
	require.NoError(t, err)

	require.NotNil(t, out.Stock)
	assert.Equal(t, 2, out.Stock.ProductCount)
	// 40*50 + 100*10 = 3000
	assert.True(t, decimal.NewFromInt(3000).Equal(out.Stock.TotalStockValue))

	require.Len(t, out.ByCategory, 1)
	assert.Equal(t, "Bebidas", out.ByCategory[0].CategoryName)
	assert.Equal(t, 2, out.ByCategory[0].ProductCount)

	assert.Empty(t, out.Ranking, "el reporte general no lleva ranking")
	assert.Empty(t, out.Movements)
}

func TestGenerate_Consumo(t *testing.T) {
	uc := buildUseCase()

	out, err := uc.Generate(context.Background(), dto.ReportRequest{Kind: "consumption", Period: "30d"})
	require.NoError(t, err)

	// Solo el café tiene salidas con producto vigente.
	require.Len(t, out.Consumption, 1)
	e := out.Consumption[0]
	assert.Equal(t, "cafe", e.ProductID)
	assert.Equal(t, int64(10), e.TotalConsumed)
	require.NotNil(t, e.DaysUntilEmpty)
	require.NotNil(t, out.ConsumptionSummary)
	assert.Equal(t, 1, out.ConsumptionSummary.CriticalCount+
		out.ConsumptionSummary.WarningCount+out.ConsumptionSummary.OKCount)
}

// El filtro product_ids acepta una lista separada por comas con espacios.
func TestGenerate_FiltroPorProductos(t *testing.T) {
	uc := buildUseCase()

	out, err := uc.Generate(context.Background(), dto.ReportRequest{
		Kind: "exits", Period: "7d", ProductIDs: " azucar , borrado ",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"azucar", "borrado"}, out.ProductIDs)
	assert.Equal(t, int64(0), out.Totals.ExitQuantity, "azúcar no tiene salidas")
	assert.Equal(t, 1, out.Totals.ExitCount, "la salida huérfana de 'borrado' cuenta como registro")
}

func TestGenerate_ParametrosInvalidos(t *testing.T) {
	uc := buildUseCase()
	ctx := context.Background()

	cases := []dto.ReportRequest{
		{Kind: "", Period: "7d"},
		{Kind: "entries", Period: ""},
		{Kind: "weekly", Period: "7d"},
		{Kind: "entries", Period: "14d"},
	}
	for _, in := range cases {
		_, err := uc.Generate(ctx, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "kind=%q period=%q", in.Kind, in.Period)
	}
}

// El PDF del reporte sale del mismo armado que el JSON.
func TestPDFUseCase_GeneraDocumento(t *testing.T) {
	uc := buildUseCase()

	captured := &capturingGenerator{}
	pdfUC := reporting.NewPDFUseCase(uc, captured)

	doc, err := pdfUC.Generate(context.Background(), dto.ReportRequest{Kind: "general", Period: "all"})
	require.NoError(t, err)
	assert.Equal(t, []byte("pdf-bytes"), doc)

	require.NotNil(t, captured.last)
	assert.Equal(t, report.KindGeneral, captured.last.Kind)
	assert.NotNil(t, captured.last.Stock, "el generador debe recibir el reporte ya armado")
}

type capturingGenerator struct {
	last *report.Report
}

func (g *capturingGenerator) GenerateReportPDF(_ context.Context, r *report.Report) ([]byte, error) {
	g.last = r
	return []byte("pdf-bytes"), nil
}
