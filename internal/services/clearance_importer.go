package services

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/aarondl/null/v8"
	"github.com/xuri/excelize/v2"

	"project-dashboard/internal/dto"
	"project-dashboard/internal/entities"
	"project-dashboard/pkg/constants"
	apperrors "project-dashboard/pkg/errors"
)

type clearanceColumn int

const (
	colNationalID clearanceColumn = iota
	colPhone
	colUnit
	colStatus
	colAssigned
	colProject
	colClient
	colCount
)

// Порядок важен: "رقم هوية العميل" должен стать национальным ID, а не клиентом.
var clearanceHeaderKeywords = [colCount][]string{
	colNationalID: {"national id", "id number", "هوية", "السجل المدني"},
	colPhone:      {"phone", "mobile", "جوال", "هاتف"},
	colUnit:       {"unit", "وحدة", "الوحدة"},
	colStatus:     {"status", "الحالة", "حالة"},
	colAssigned:   {"assigned", "responsible", "المسؤول", "مسؤول"},
	colProject:    {"project", "مشروع", "المشروع"},
	colClient:     {"client", "customer", "عميل", "العميل"},
}

// ClearanceWorkbook - результат разбора файла: валидные строки и ошибки по строкам.
type ClearanceWorkbook struct {
	Sheet  string
	Rows   []entities.ClearanceRequest
	Errors []dto.ImportRowError
}

func classifyHeader(cell string) (clearanceColumn, bool) {
	h := strings.ToLower(strings.TrimSpace(cell))
	if h == "" {
		return 0, false
	}
	for col := clearanceColumn(0); col < colCount; col++ {
		for _, kw := range clearanceHeaderKeywords[col] {
			if strings.Contains(h, kw) {
				return col, true
			}
		}
	}
	return 0, false
}

// headerIndex возвращает индексы колонок или nil, если строка не шапка.
func headerIndex(row []string) []int {
	idx := make([]int, colCount)
	for i := range idx {
		idx[i] = -1
	}
	for c, cell := range row {
		if col, ok := classifyHeader(cell); ok && idx[col] == -1 {
			idx[col] = c
		}
	}
	if idx[colProject] == -1 || idx[colClient] == -1 {
		return nil
	}
	return idx
}

func cellAt(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func isBlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// ParseClearanceWorkbook ищет первый лист с шапкой (колонки проекта и клиента,
// по-арабски или по-английски) и читает строки под ней.
func ParseClearanceWorkbook(r io.Reader) (*ClearanceWorkbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, apperrors.NewHttpError(http.StatusBadRequest, "Не удалось прочитать файл xlsx", err, nil)
	}
	defer f.Close()

	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("чтение листа %q: %w", sheet, err)
		}
		for h, row := range rows {
			idx := headerIndex(row)
			if idx == nil {
				continue
			}
			wb := &ClearanceWorkbook{
				Sheet:  sheet,
				Rows:   make([]entities.ClearanceRequest, 0, len(rows)-h-1),
				Errors: make([]dto.ImportRowError, 0),
			}
			for i := h + 1; i < len(rows); i++ {
				parseClearanceRow(wb, rows[i], i+1, idx)
			}
			return wb, nil
		}
	}
	return nil, apperrors.NewBadRequestError("Не найдена шапка таблицы: нужны колонки проекта и клиента")
}

func parseClearanceRow(wb *ClearanceWorkbook, row []string, rowNum int, idx []int) {
	if isBlankRow(row) {
		return
	}
	c := entities.ClearanceRequest{
		ProjectName:      cellAt(row, idx[colProject]),
		ClientName:       cellAt(row, idx[colClient]),
		ClientNationalID: cellAt(row, idx[colNationalID]),
		ClientPhone:      cellAt(row, idx[colPhone]),
		UnitNumber:       cellAt(row, idx[colUnit]),
		Status:           cellAt(row, idx[colStatus]),
	}
	switch {
	case c.ProjectName == "":
		wb.Errors = append(wb.Errors, dto.ImportRowError{Row: rowNum, Message: "не указан проект"})
		return
	case c.ClientName == "":
		wb.Errors = append(wb.Errors, dto.ImportRowError{Row: rowNum, Message: "не указан клиент"})
		return
	}
	if c.Status == "" {
		c.Status = constants.DefaultClearanceStatus
	}
	if a := cellAt(row, idx[colAssigned]); a != "" {
		c.AssignedTo = null.StringFrom(a)
	}
	wb.Rows = append(wb.Rows, c)
}
