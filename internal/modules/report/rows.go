package report

import (
	"strconv"
	"time"

	"github.com/hardikidentixweb/inquiry-master/internal/models"
)

const exportTimeLayout = "2006-01-02 15:04:05"

var fixedHeaders = []string{
	"ID", "Client Name", "Client Email", "Client Phone",
	"Inquiry Text", "Status", "Created At", "Updated At",
}

// BuildRows renders the export table: a header row of the fixed columns plus
// one labeled column per field definition, then one row per inquiry with the
// resolved value or an empty string per cell.
func BuildRows(inquiries []models.InquiryModel, fields []models.CustomFieldModel, values map[uint]map[uint]string) [][]string {
	header := append([]string(nil), fixedHeaders...)
	for _, f := range fields {
		header = append(header, f.FieldLabel)
	}

	rows := make([][]string, 0, len(inquiries)+1)
	rows = append(rows, header)
	for _, inq := range inquiries {
		row := []string{
			strconv.FormatUint(uint64(inq.ID), 10),
			inq.ClientName,
			inq.ClientEmail,
			derefOrEmpty(inq.ClientPhone),
			derefOrEmpty(inq.InquiryText),
			string(inq.Status),
			formatExportTime(inq.CreatedAt),
			formatExportTime(inq.UpdatedAt),
		}
		for _, f := range fields {
			row = append(row, values[inq.ID][f.ID])
		}
		rows = append(rows, row)
	}
	return rows
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatExportTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(exportTimeLayout)
}
