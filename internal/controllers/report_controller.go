package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"project-dashboard/internal/dto"
	"project-dashboard/internal/services"
	"project-dashboard/pkg/middleware"
	"project-dashboard/pkg/utils"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

func (ctrl *ReportController) GetProjectReport(c echo.Context) error {
	reqCtx := c.Request().Context()
	logger := middleware.LoggerFromCtx(reqCtx, ctrl.logger)

	var q dto.ReportQueryDTO
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &q); err != nil {
		return utils.ErrorResponse(c, err, logger)
	}
	if err := c.Validate(&q); err != nil {
		return utils.ErrorResponse(c, err, logger)
	}

	role := utils.GetRoleFromCtx(reqCtx)
	userID, _ := utils.GetUserIDFromCtx(reqCtx)
	logger.Debug("Запрос на отчет по проектам", zap.String("format", q.Format), zap.String("role", role), zap.Uint64("userID", userID))

	rows, err := ctrl.reportService.ProjectReport(reqCtx, role)
	if err != nil {
		return utils.ErrorResponse(c, err, logger)
	}

	if q.Format == "xlsx" {
		return ctrl.respondWithXLSX(c, rows)
	}
	return utils.SuccessResponse(c, rows, "Отчет успешно сформирован", http.StatusOK)
}

var reportHeaders = []string{
	"№", "المشروع", "العميل", "الحالة", "نسبة الإنجاز %", "الوحدات",
	"عدادات الكهرباء", "عدادات المياه", "الطلبات الفنية", "طلبات مفتوحة", "طلبات الإفراغ",
}

func reportRowToSlice(n int, row dto.ProjectReportRowDTO) []interface{} {
	clearance := "-"
	if row.ClearanceTotal != nil {
		clearance = fmt.Sprint(*row.ClearanceTotal)
	}
	return []interface{}{
		n, row.Name, row.Client, row.Status, row.Percent, row.Units,
		row.ElectricityMeters, row.WaterMeters, row.TechnicalTotal, row.TechnicalOpen, clearance,
	}
}

func (ctrl *ReportController) respondWithXLSX(c echo.Context, rows []dto.ProjectReportRowDTO) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "تقرير المشاريع"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	f.SetSheetView(sheet, 0, &excelize.ViewOptions{RightToLeft: boolPtr(true)})
	f.SetSheetRow(sheet, "A1", &reportHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "K1", style)

	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		values := reportRowToSlice(i+1, row)
		f.SetSheetRow(sheet, cell, &values)
	}
	f.SetColWidth(sheet, "B", "C", 30)
	f.SetColWidth(sheet, "D", "D", 18)
	f.SetColWidth(sheet, "E", "K", 14)

	fileName := fmt.Sprintf("projects_report_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename="+fileName)
	c.Response().WriteHeader(http.StatusOK)
	return f.Write(c.Response().Writer)
}

func boolPtr(b bool) *bool { return &b }
