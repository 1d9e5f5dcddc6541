package field

import (
	"encoding/json"
	"errors"

	"github.com/hardikidentixweb/inquiry-master/internal/models"
)

type CreateFieldDTO struct {
	FieldName    string           `json:"field_name"`
	FieldType    models.FieldType `json:"field_type"`
	FieldLabel   string           `json:"field_label"`
	IsRequired   bool             `json:"is_required"`
	IsActive     *bool            `json:"is_active"`
	FieldOptions []string         `json:"field_options"`
}

// UpdateFieldDTO applies only the provided subset of attributes. FieldOptions
// is a raw message so an explicit null can be told apart from an absent key:
// only type=select with literal null options is rejected.
type UpdateFieldDTO struct {
	FieldName    *string           `json:"field_name"`
	FieldType    *models.FieldType `json:"field_type"`
	FieldLabel   *string           `json:"field_label"`
	IsRequired   *bool             `json:"is_required"`
	IsActive     *bool             `json:"is_active"`
	DisplayOrder *int              `json:"display_order"`
	FieldOptions json.RawMessage   `json:"field_options"`
}

type ReorderDTO struct {
	FieldOrders []FieldOrderEntry `json:"fieldOrders"`
}

type FieldOrderEntry struct {
	ID           uint `json:"id"`
	DisplayOrder int  `json:"display_order"`
}

var (
	errMissingRequired = errors.New("field name, type, and label are required")
	errUnknownType     = errors.New("unknown field type")
	errOptionsRequired = errors.New("dropdown options are required for select field type")
)
