package models

// FieldType enumerates the supported custom field input types.
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeNumber   FieldType = "number"
	FieldTypeEmail    FieldType = "email"
	FieldTypeDate     FieldType = "date"
	FieldTypeTextarea FieldType = "textarea"
	FieldTypeSelect   FieldType = "select"
)

// IsValid reports whether t is one of the enumerated field types.
func (t FieldType) IsValid() bool {
	switch t {
	case FieldTypeText, FieldTypeNumber, FieldTypeEmail, FieldTypeDate,
		FieldTypeTextarea, FieldTypeSelect:
		return true
	}
	return false
}

// CustomFieldModel is an admin-authored definition of one dynamic inquiry
// attribute. FieldName is the internal key and never changes meaning once
// values reference it; FieldOptions is only meaningful for select fields.
type CustomFieldModel struct {
	Base
	FieldName    string      `json:"field_name"    gorm:"uniqueIndex;not null"`
	FieldType    FieldType   `json:"field_type"    gorm:"not null"`
	FieldLabel   string      `json:"field_label"   gorm:"not null"`
	IsRequired   bool        `json:"is_required"   gorm:"default:false"`
	IsActive     bool        `json:"is_active"     gorm:"default:true;index"`
	DisplayOrder int         `json:"display_order" gorm:"default:0;index"`
	FieldOptions StringArray `json:"field_options" gorm:"type:longtext"`
}

func (CustomFieldModel) TableName() string { return "custom_fields" }
