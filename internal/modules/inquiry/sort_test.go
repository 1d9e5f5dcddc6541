package inquiry

import (
	"testing"
	"time"

	"github.com/hardikidentixweb/inquiry-master/internal/models"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func makeItem(id uint, values map[uint]string) ListItem {
	it := ListItem{CustomFieldValues: values}
	it.ID = id
	if it.CustomFieldValues == nil {
		it.CustomFieldValues = map[uint]string{}
	}
	return it
}

func itemIDs(items []ListItem) []uint {
	ids := make([]uint, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}

func TestSortItemsNumericField(t *testing.T) {
	fields := []models.CustomFieldModel{
		{Base: models.Base{ID: 7}, FieldName: "budget", FieldType: models.FieldTypeNumber, FieldLabel: "Budget"},
	}

	items := []ListItem{
		makeItem(1, map[uint]string{7: "1500"}),
		makeItem(2, map[uint]string{7: "99.5"}),
		makeItem(3, nil),                          // absent → 0
		makeItem(4, map[uint]string{7: "potato"}), // unparsable → 0
	}

	SortItems(items, fields, "7", "asc")
	assert.Equal(t, []uint{3, 4, 2, 1}, itemIDs(items), "absent and unparsable sort as zero, stably")

	SortItems(items, fields, "7", "desc")
	assert.Equal(t, []uint{1, 2, 3, 4}, itemIDs(items), "toggling direction reverses the order")
}

func TestSortItemsDateFieldMissingValue(t *testing.T) {
	fields := []models.CustomFieldModel{
		{Base: models.Base{ID: 3}, FieldName: "follow_up", FieldType: models.FieldTypeDate, FieldLabel: "Follow Up"},
	}

	items := []ListItem{
		makeItem(1, map[uint]string{3: "2024-06-01"}),
		makeItem(2, nil), // missing → timestamp 0, sorts first ascending
		makeItem(3, map[uint]string{3: "2023-01-15"}),
	}

	SortItems(items, fields, "3", "asc")
	assert.Equal(t, []uint{2, 3, 1}, itemIDs(items))
}

func TestSortItemsTextFieldCaseInsensitive(t *testing.T) {
	fields := []models.CustomFieldModel{
		{Base: models.Base{ID: 5}, FieldName: "city", FieldType: models.FieldTypeText, FieldLabel: "City"},
	}

	items := []ListItem{
		makeItem(1, map[uint]string{5: "berlin"}),
		makeItem(2, map[uint]string{5: "Amsterdam"}),
		makeItem(3, map[uint]string{5: "ZURICH"}),
	}

	SortItems(items, fields, "5", "asc")
	assert.Equal(t, []uint{2, 1, 3}, itemIDs(items))
}

func TestSortItemsFixedColumns(t *testing.T) {
	a := makeItem(1, nil)
	a.ClientName = "zeta"
	b := makeItem(2, nil)
	b.ClientName = "Alpha"

	items := []ListItem{a, b}
	SortItems(items, nil, "client_name", "asc")
	assert.Equal(t, []uint{2, 1}, itemIDs(items))

	SortItems(items, nil, "id", "desc")
	assert.Equal(t, []uint{2, 1}, itemIDs(items))
}

func TestSortItemsInquiryDateFallsBackToCreatedAt(t *testing.T) {
	old := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	recent := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	a := makeItem(1, nil)
	a.InquiryDate = &recent
	b := makeItem(2, nil)
	b.CreatedAt = old // no inquiry date: creation time stands in

	items := []ListItem{a, b}
	SortItems(items, nil, "inquiry_date", "asc")
	assert.Equal(t, []uint{2, 1}, itemIDs(items))
}

func TestSortItemsUnknownColumnKeepsOrder(t *testing.T) {
	items := []ListItem{makeItem(3, nil), makeItem(1, nil), makeItem(2, nil)}
	SortItems(items, nil, "no_such_column", "asc")
	assert.Equal(t, []uint{3, 1, 2}, itemIDs(items))

	SortItems(items, nil, "", "asc")
	assert.Equal(t, []uint{3, 1, 2}, itemIDs(items))
}

func TestKeepEntry(t *testing.T) {
	tests := []struct {
		name         string
		entry        CustomFieldEntry
		keepOnCreate bool
		keepOnUpdate bool
	}{
		{
			name:         "value present",
			entry:        CustomFieldEntry{FieldID: 7, Value: strPtr("1500")},
			keepOnCreate: true,
			keepOnUpdate: true,
		},
		{
			name:         "empty string dropped on create only",
			entry:        CustomFieldEntry{FieldID: 7, Value: strPtr("")},
			keepOnCreate: false,
			keepOnUpdate: true,
		},
		{
			name:         "nil value dropped everywhere",
			entry:        CustomFieldEntry{FieldID: 7},
			keepOnCreate: false,
			keepOnUpdate: false,
		},
		{
			name:         "missing field id dropped everywhere",
			entry:        CustomFieldEntry{Value: strPtr("x")},
			keepOnCreate: false,
			keepOnUpdate: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.keepOnCreate, keepEntry(tt.entry, false), "create")
			assert.Equal(t, tt.keepOnUpdate, keepEntry(tt.entry, true), "update")
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		input *string
		want  *time.Time
	}{
		{"nil input", nil, nil},
		{"empty string", strPtr(""), nil},
		{"garbage", strPtr("not-a-date"), nil},
		{"valid date", strPtr("2024-03-09"), func() *time.Time {
			d := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
			return &d
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseDate(tt.input)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			assert.NotNil(t, got)
			assert.True(t, tt.want.Equal(*got))
		})
	}
}
