package report

import (
	"testing"
	"time"

	"github.com/hardikidentixweb/inquiry-master/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRows(t *testing.T) {
	phone := "+31 6 1234 5678"
	text := "Need a quote for a kitchen remodel"
	created := time.Date(2024, 3, 9, 14, 30, 0, 0, time.UTC)

	budget := models.CustomFieldModel{FieldName: "budget", FieldType: models.FieldTypeNumber, FieldLabel: "Budget"}
	budget.ID = 7
	city := models.CustomFieldModel{FieldName: "city", FieldType: models.FieldTypeText, FieldLabel: "City"}
	city.ID = 9

	first := models.InquiryModel{
		ClientName:  "Ada Lovelace",
		ClientEmail: "ada@example.com",
		ClientPhone: &phone,
		InquiryText: &text,
		Status:      models.StatusQuoted,
	}
	first.ID = 1
	first.CreatedAt = created
	first.UpdatedAt = created

	second := models.InquiryModel{
		ClientName:  "Grace Hopper",
		ClientEmail: "grace@example.com",
		Status:      models.StatusNew,
	}
	second.ID = 2

	values := map[uint]map[uint]string{
		1: {7: "1500", 9: "Delft"},
	}

	rows := BuildRows(
		[]models.InquiryModel{first, second},
		[]models.CustomFieldModel{budget, city},
		values,
	)

	require.Len(t, rows, 3)
	assert.Equal(t, []string{
		"ID", "Client Name", "Client Email", "Client Phone",
		"Inquiry Text", "Status", "Created At", "Updated At",
		"Budget", "City",
	}, rows[0])

	assert.Equal(t, []string{
		"1", "Ada Lovelace", "ada@example.com", phone, text,
		"quoted", "2024-03-09 14:30:00", "2024-03-09 14:30:00",
		"1500", "Delft",
	}, rows[1])

	// Missing optionals and unset field values render as empty cells.
	assert.Equal(t, []string{
		"2", "Grace Hopper", "grace@example.com", "", "",
		"new", "", "",
		"", "",
	}, rows[2])
}

func TestBuildRowsNoInquiries(t *testing.T) {
	rows := BuildRows(nil, nil, nil)
	require.Len(t, rows, 1)
	assert.Equal(t, fixedHeaders, rows[0])
}
