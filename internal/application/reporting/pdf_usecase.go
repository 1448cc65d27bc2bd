package reporting

import (
	"context"
	"fmt"

	"github.com/tu-usuario/stock-control/internal/application/dto"
	"github.com/tu-usuario/stock-control/internal/domain/report"
)

// ReportPDFGenerator puerto del renderer de documentos: recibe el reporte
// armado y devuelve los bytes del documento imprimible.
type ReportPDFGenerator interface {
	GenerateReportPDF(ctx context.Context, r *report.Report) ([]byte, error)
}

// PDFUseCase arma un reporte y lo convierte en documento imprimible.
type PDFUseCase struct {
	reports   *UseCase
	generator ReportPDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(reports *UseCase, generator ReportPDFGenerator) *PDFUseCase {
	return &PDFUseCase{reports: reports, generator: generator}
}

// Generate arma el reporte pedido y lo renderiza a PDF.
func (uc *PDFUseCase) Generate(ctx context.Context, in dto.ReportRequest) ([]byte, error) {
	r, err := uc.reports.Assemble(ctx, in)
	if err != nil {
		return nil, err
	}
	doc, err := uc.generator.GenerateReportPDF(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("reporte: generar PDF: %w", err)
	}
	return doc, nil
}
