package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stock-control/internal/application/dto"
	"github.com/tu-usuario/stock-control/internal/application/reporting"
	"github.com/tu-usuario/stock-control/internal/domain"
)

// ReportHandler expone el motor de reportes (protegido).
type ReportHandler struct {
	reports *reporting.UseCase
	pdf     *reporting.PDFUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(reports *reporting.UseCase, pdf *reporting.PDFUseCase) *ReportHandler {
	return &ReportHandler{reports: reports, pdf: pdf}
}

// Generate godoc
// @Summary      Generar reporte
// @Description  Arma un reporte de entradas, salidas, general o consumo sobre el período pedido
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        kind         query  string  true   "entries | exits | general | consumption"
// @Param        period       query  string  true   "7d | 30d | 90d | all"
// @Param        product_ids  query  string  false  "IDs de producto separados por coma"
// @Success      200  {object}  dto.ReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports [get]
func (h *ReportHandler) Generate(c *fiber.Ctx) error {
	var in dto.ReportRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query string inválida"})
	}
	out, err := h.reports.Generate(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "kind (entries|exits|general|consumption) y period (7d|30d|90d|all) son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GeneratePDF godoc
// @Summary      Descargar reporte en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        kind         query  string  true   "entries | exits | general | consumption"
// @Param        period       query  string  true   "7d | 30d | 90d | all"
// @Param        product_ids  query  string  false  "IDs de producto separados por coma"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/pdf [get]
func (h *ReportHandler) GeneratePDF(c *fiber.Ctx) error {
	var in dto.ReportRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query string inválida"})
	}
	doc, err := h.pdf.Generate(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "kind (entries|exits|general|consumption) y period (7d|30d|90d|all) son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	filename := fmt.Sprintf("reporte-%s-%s-%s.pdf", in.Kind, in.Period, time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(doc)
}
