package report

import (
	"encoding/csv"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hardikidentixweb/inquiry-master/internal/modules/settings"
	"github.com/hardikidentixweb/inquiry-master/internal/pkg/response"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Inquiries"

type Handler struct {
	svc   *Service
	prefs *settings.Service
}

func NewHandler(svc *Service, prefs *settings.Service) *Handler {
	return &Handler{svc: svc, prefs: prefs}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("", authMW)
	g.GET("/export", h.export)
	g.GET("/stats", h.stats)
}

// GET /export?status=&startDate=&endDate=&format=xlsx|csv&columns=all|visible
func (h *Handler) export(c *gin.Context) {
	f := Filter{
		Status:    c.Query("status"),
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
	}
	inquiries, fields, values, err := h.svc.Export(f)
	if err != nil {
		_ = c.Error(err)
		response.InternalError(c)
		return
	}

	// columns=visible narrows the field columns to the admin-configured
	// preference document instead of every active field.
	if c.Query("columns") == "visible" {
		prefs, err := h.prefs.GetPreferences()
		if err != nil {
			_ = c.Error(err)
			response.InternalError(c)
			return
		}
		fields = settings.ResolveFieldColumns(fields, prefs)
	}

	rows := BuildRows(inquiries, fields, values)
	filename := fmt.Sprintf("inquiries_%s", time.Now().Format("2006-01-02"))

	if c.Query("format") == "csv" {
		h.writeCSV(c, filename, rows)
		return
	}
	h.writeXLSX(c, filename, rows)
}

func (h *Handler) writeCSV(c *gin.Context, filename string, rows [][]string) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.csv", filename))
	w := csv.NewWriter(c.Writer)
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			_ = c.Error(err)
			return
		}
	}
	w.Flush()
}

func (h *Handler) writeXLSX(c *gin.Context, filename string, rows [][]string) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		_ = c.Error(err)
		response.InternalError(c)
		return
	}
	f.SetActiveSheet(index)
	_ = f.DeleteSheet("Sheet1")

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			_ = c.Error(err)
			response.InternalError(c)
			return
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			_ = c.Error(err)
			response.InternalError(c)
			return
		}
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.xlsx", filename))
	if _, err := f.WriteTo(c.Writer); err != nil {
		_ = c.Error(err)
	}
}

// GET /stats?startDate=&endDate=
func (h *Handler) stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		_ = c.Error(err)
		response.InternalError(c)
		return
	}
	response.OK(c, stats)
}
