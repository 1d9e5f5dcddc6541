package inquiry

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/hardikidentixweb/inquiry-master/internal/models"
)

// A sort key is either a fixed inquiry attribute name or a field definition
// id in decimal form; the integer parse is what tells the two apart. One
// comparator covers both column kinds by resolving every inquiry to either a
// number or a lowercased string per key.

type sortValue struct {
	num     float64
	str     string
	numeric bool
}

// SortItems stable-sorts the list in place by a single key. Direction is
// "asc" or "desc"; anything else means ascending. An unknown column resolves
// every row to the same value and leaves the order untouched.
func SortItems(items []ListItem, fields []models.CustomFieldModel, column, direction string) {
	if column == "" {
		return
	}
	desc := direction == "desc"
	sort.SliceStable(items, func(i, j int) bool {
		a := resolveSortValue(&items[i], column, fields)
		b := resolveSortValue(&items[j], column, fields)
		if desc {
			return b.less(a)
		}
		return a.less(b)
	})
}

func (v sortValue) less(o sortValue) bool {
	if v.numeric && o.numeric {
		return v.num < o.num
	}
	return v.str < o.str
}

func resolveSortValue(it *ListItem, column string, fields []models.CustomFieldModel) sortValue {
	switch column {
	case "id":
		return sortValue{num: float64(it.ID), numeric: true}
	case "client_name":
		return sortValue{str: strings.ToLower(it.ClientName)}
	case "client_email":
		return sortValue{str: strings.ToLower(it.ClientEmail)}
	case "client_phone":
		if it.ClientPhone != nil {
			return sortValue{str: *it.ClientPhone}
		}
		return sortValue{}
	case "status":
		return sortValue{str: string(it.Status)}
	case "inquiry_date":
		date := it.InquiryDate
		if date == nil {
			date = &it.CreatedAt
		}
		return sortValue{num: float64(date.UnixMilli()), numeric: true}
	}

	fieldID, err := strconv.ParseUint(column, 10, 64)
	if err != nil {
		return sortValue{}
	}
	var def *models.CustomFieldModel
	for i := range fields {
		if fields[i].ID == uint(fieldID) {
			def = &fields[i]
			break
		}
	}
	if def == nil {
		return sortValue{}
	}

	raw := it.CustomFieldValues[uint(fieldID)]
	switch def.FieldType {
	case models.FieldTypeNumber:
		n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			n = 0
		}
		return sortValue{num: n, numeric: true}
	case models.FieldTypeDate:
		return sortValue{num: float64(parseValueTimestamp(raw)), numeric: true}
	default:
		return sortValue{str: strings.ToLower(raw)}
	}
}

// parseValueTimestamp turns a stored date value into epoch milliseconds,
// defaulting to 0 when absent or unparsable.
func parseValueTimestamp(raw string) int64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	for _, layout := range []string{dateLayout, time.RFC3339, "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UnixMilli()
		}
	}
	return 0
}
