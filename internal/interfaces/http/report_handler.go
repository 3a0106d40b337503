package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/hotel-inventory/internal/application/dto"
	"github.com/jhoicas/hotel-inventory/internal/application/export"
)

// ReportService reportes de la API (implementado por report.ReportUseCase).
type ReportService interface {
	export.ReportSource
	Dashboard(ctx context.Context) (*dto.DashboardDTO, error)
}

// Exporter genera archivos de reporte (implementado por export.Service).
type Exporter interface {
	Render(ctx context.Context, kind string, q dto.ReportQuery) (*export.File, error)
}

// ReportHandler maneja los reportes y sus exportaciones.
type ReportHandler struct {
	uc       ReportService
	exporter Exporter
}

// NewReportHandler construye el handler.
func NewReportHandler(uc ReportService, exporter Exporter) *ReportHandler {
	return &ReportHandler{uc: uc, exporter: exporter}
}

// reportQuery parsea los filtros comunes (start_date, end_date, category, subcategory, period, format).
func reportQuery(c *fiber.Ctx) (dto.ReportQuery, error) {
	var q dto.ReportQuery
	err := c.QueryParser(&q)
	return q, err
}

// run ejecuta un reporte con los filtros de la query y envuelve la respuesta.
func run[T any](c *fiber.Ctx, fn func(context.Context, dto.ReportQuery) (T, error)) error {
	q, err := reportQuery(c)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", "parámetros de consulta inválidos")
	}
	out, err := fn(c.UserContext(), q)
	if err != nil {
		return writeError(c, err)
	}
	return respond(c, fiber.StatusOK, out)
}

// Variance godoc
// @Summary      Variación diaria por ítem
// @Tags         reports
// @Produce      json
// @Param        start_date  query  string  false  "YYYY-MM-DD (por defecto hoy − REPORT_DEFAULT_DAYS)"
// @Param        end_date    query  string  false  "YYYY-MM-DD (por defecto hoy)"
// @Param        category    query  string  false  "Categoría"
// @Param        subcategory query  string  false  "Subcategoría"
// @Success      200  {object}  dto.VarianceReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/variance [get]
func (h *ReportHandler) Variance(c *fiber.Ctx) error { return run(c, h.uc.Variance) }

// Turnover godoc
// @Summary      Rotación de inventario
// @Tags         reports
// @Produce      json
// @Param        period    query  string  false  "month | quarter | year" default(month)
// @Param        category  query  string  false  "Categoría"
// @Success      200  {object}  dto.TurnoverReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/turnover [get]
func (h *ReportHandler) Turnover(c *fiber.Ctx) error { return run(c, h.uc.Turnover) }

// Waste godoc
// @Summary      Merma (salidas con motivo waste)
// @Tags         reports
// @Produce      json
// @Param        start_date  query  string  false  "YYYY-MM-DD"
// @Param        end_date    query  string  false  "YYYY-MM-DD"
// @Param        category    query  string  false  "Categoría"
// @Success      200  {object}  dto.WasteReportDTO
// @Router       /api/reports/waste [get]
func (h *ReportHandler) Waste(c *fiber.Ctx) error { return run(c, h.uc.Waste) }

// Stock godoc
// @Summary      Existencias: stock inicial, ventas, merma y saldo
// @Tags         reports
// @Produce      json
// @Param        start_date  query  string  false  "YYYY-MM-DD"
// @Param        end_date    query  string  false  "YYYY-MM-DD"
// @Param        category    query  string  false  "Categoría"
// @Param        subcategory query  string  false  "Subcategoría"
// @Success      200  {object}  dto.StockReportDTO
// @Router       /api/reports/stock [get]
func (h *ReportHandler) Stock(c *fiber.Ctx) error { return run(c, h.uc.Stock) }

// Sales godoc
// @Summary      Ventas por ítem (salidas con motivo sale)
// @Tags         reports
// @Produce      json
// @Param        start_date  query  string  false  "YYYY-MM-DD"
// @Param        end_date    query  string  false  "YYYY-MM-DD"
// @Param        category    query  string  false  "Categoría"
// @Param        subcategory query  string  false  "Subcategoría"
// @Success      200  {object}  dto.SalesReportDTO
// @Router       /api/reports/sales [get]
func (h *ReportHandler) Sales(c *fiber.Ctx) error { return run(c, h.uc.Sales) }

// Profit godoc
// @Summary      Utilidad realizada (costo según el ledger)
// @Tags         reports
// @Produce      json
// @Param        start_date  query  string  false  "YYYY-MM-DD"
// @Param        end_date    query  string  false  "YYYY-MM-DD"
// @Param        category    query  string  false  "Categoría"
// @Param        subcategory query  string  false  "Subcategoría"
// @Success      200  {object}  dto.SalesReportDTO
// @Router       /api/reports/profit [get]
func (h *ReportHandler) Profit(c *fiber.Ctx) error { return run(c, h.uc.Profit) }

// Dashboard godoc
// @Summary      Resumen del inventario del día
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.DashboardDTO
// @Router       /api/reports/dashboard [get]
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return respond(c, fiber.StatusOK, out)
}

// Export godoc
// @Summary      Exportar reporte
// @Tags         reports
// @Produce      text/csv
// @Produce      application/vnd.ms-excel
// @Produce      application/pdf
// @Param        kind        path   string  true   "variance | turnover | waste | stock | sales | profit"
// @Param        format      query  string  false  "csv | xls | pdf" default(csv)
// @Param        start_date  query  string  false  "YYYY-MM-DD"
// @Param        end_date    query  string  false  "YYYY-MM-DD"
// @Param        category    query  string  false  "Categoría"
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/{kind}/export [get]
func (h *ReportHandler) Export(c *fiber.Ctx) error {
	q, err := reportQuery(c)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", "parámetros de consulta inválidos")
	}
	f, err := h.exporter.Render(c.UserContext(), c.Params("kind"), q)
	if err != nil {
		return writeError(c, err)
	}
	c.Attachment(f.Name)
	c.Set(fiber.HeaderContentType, f.ContentType)
	return c.Status(fiber.StatusOK).Send(f.Body)
}
