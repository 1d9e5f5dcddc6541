package field

import (
	"encoding/json"
	"strings"

	"github.com/hardikidentixweb/inquiry-master/internal/models"
	"gorm.io/gorm"
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// List returns all field definitions ordered by display order.
func (s *Service) List() ([]models.CustomFieldModel, error) {
	var fields []models.CustomFieldModel
	err := s.db.Order("display_order ASC").Find(&fields).Error
	return fields, err
}

// ListActive returns active field definitions ordered by display order.
func (s *Service) ListActive() ([]models.CustomFieldModel, error) {
	var fields []models.CustomFieldModel
	err := s.db.Where("is_active = ?", true).Order("display_order ASC").Find(&fields).Error
	return fields, err
}

// Create validates and stores a new field definition. The new field is
// appended at the end of the display order.
func (s *Service) Create(dto *CreateFieldDTO) (*models.CustomFieldModel, error) {
	if strings.TrimSpace(dto.FieldName) == "" || dto.FieldType == "" || strings.TrimSpace(dto.FieldLabel) == "" {
		return nil, errMissingRequired
	}
	if !dto.FieldType.IsValid() {
		return nil, errUnknownType
	}
	if dto.FieldType == models.FieldTypeSelect && len(dto.FieldOptions) == 0 {
		return nil, errOptionsRequired
	}

	var maxOrder struct{ MaxOrder int }
	if err := s.db.Model(&models.CustomFieldModel{}).
		Select("COALESCE(MAX(display_order), 0) as max_order").
		Scan(&maxOrder).Error; err != nil {
		return nil, err
	}

	active := true
	if dto.IsActive != nil {
		active = *dto.IsActive
	}

	f := models.CustomFieldModel{
		FieldName:    dto.FieldName,
		FieldType:    dto.FieldType,
		FieldLabel:   dto.FieldLabel,
		IsRequired:   dto.IsRequired,
		IsActive:     active,
		DisplayOrder: maxOrder.MaxOrder + 1,
		FieldOptions: models.StringArray(dto.FieldOptions),
	}
	if dto.FieldType != models.FieldTypeSelect {
		f.FieldOptions = nil
	}
	return &f, s.db.Create(&f).Error
}

// Update applies the provided subset of attributes. Field name uniqueness is
// not re-checked here; only creation enforces it.
func (s *Service) Update(id uint, dto *UpdateFieldDTO) (*models.CustomFieldModel, error) {
	var f models.CustomFieldModel
	if err := s.db.First(&f, id).Error; err != nil {
		return nil, err
	}

	optionsExplicitNull := len(dto.FieldOptions) > 0 && string(dto.FieldOptions) == "null"
	if dto.FieldType != nil && *dto.FieldType == models.FieldTypeSelect && optionsExplicitNull {
		return nil, errOptionsRequired
	}
	if dto.FieldType != nil && !dto.FieldType.IsValid() {
		return nil, errUnknownType
	}

	updates := map[string]interface{}{}
	if dto.FieldName != nil {
		updates["field_name"] = *dto.FieldName
	}
	if dto.FieldType != nil {
		updates["field_type"] = *dto.FieldType
	}
	if dto.FieldLabel != nil {
		updates["field_label"] = *dto.FieldLabel
	}
	if dto.IsRequired != nil {
		updates["is_required"] = *dto.IsRequired
	}
	if dto.IsActive != nil {
		updates["is_active"] = *dto.IsActive
	}
	if dto.DisplayOrder != nil {
		updates["display_order"] = *dto.DisplayOrder
	}
	if len(dto.FieldOptions) > 0 {
		if optionsExplicitNull {
			updates["field_options"] = nil
		} else {
			var opts models.StringArray
			if err := json.Unmarshal(dto.FieldOptions, &opts); err != nil {
				return nil, errOptionsRequired
			}
			updates["field_options"] = opts
		}
	}
	if len(updates) == 0 {
		return &f, nil
	}
	return &f, s.db.Model(&f).Updates(updates).Error
}

// Delete removes a field definition and all its stored values. The value
// rows go first; there is no store-enforced cascade. Deleting an id that does
// not exist is not an error.
func (s *Service) Delete(id uint) error {
	if err := s.db.Where("field_id = ?", id).Delete(&models.FieldValueModel{}).Error; err != nil {
		return err
	}
	return s.db.Delete(&models.CustomFieldModel{}, id).Error
}

// Reorder applies each (id, display_order) pair literally. No permutation
// check: duplicates and gaps are stored as given.
func (s *Service) Reorder(orders []FieldOrderEntry) error {
	for _, entry := range orders {
		if err := s.db.Model(&models.CustomFieldModel{}).
			Where("id = ?", entry.ID).
			Update("display_order", entry.DisplayOrder).Error; err != nil {
			return err
		}
	}
	return nil
}
