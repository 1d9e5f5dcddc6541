package inquiry

import (
	"strings"
	"time"

	"github.com/hardikidentixweb/inquiry-master/internal/models"
	"gorm.io/gorm"
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

const dateLayout = "2006-01-02"

// Create stores a new inquiry and its submitted custom field values.
// Entries with an empty value are dropped, not stored as empty rows: at
// create time "no value" and "empty string" collapse to the same thing.
func (s *Service) Create(dto *CreateInquiryDTO) (*models.InquiryModel, error) {
	if strings.TrimSpace(dto.ClientName) == "" || strings.TrimSpace(dto.ClientEmail) == "" {
		return nil, errMissingClient
	}

	status := dto.Status
	if status == "" {
		status = models.StatusNew
	}

	inquiryDate := parseDate(dto.InquiryDate)
	if inquiryDate == nil {
		now := time.Now()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		inquiryDate = &today
	}

	inq := models.InquiryModel{
		ClientName:  dto.ClientName,
		ClientEmail: dto.ClientEmail,
		ClientPhone: dto.ClientPhone,
		InquiryText: dto.InquiryText,
		Status:      status,
		InquiryDate: inquiryDate,
	}
	if err := s.db.Create(&inq).Error; err != nil {
		return nil, err
	}

	for _, entry := range dto.CustomFields {
		if !keepEntry(entry, false) {
			continue
		}
		row := models.FieldValueModel{InquiryID: inq.ID, FieldID: entry.FieldID, Value: *entry.Value}
		if err := s.db.Create(&row).Error; err != nil {
			return nil, err
		}
	}
	return &inq, nil
}

// Update overwrites all scalar columns unconditionally. When custom field
// entries are given, stored values are deleted and reinserted wholesale (a
// full replace, not a diff), and unlike Create an explicit empty string is
// kept as an empty row.
func (s *Service) Update(id uint, dto *UpdateInquiryDTO) error {
	updates := map[string]interface{}{
		"client_name":  dto.ClientName,
		"client_email": dto.ClientEmail,
		"client_phone": dto.ClientPhone,
		"inquiry_text": dto.InquiryText,
		"status":       dto.Status,
		"inquiry_date": parseDate(dto.InquiryDate),
	}
	if err := s.db.Model(&models.InquiryModel{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return err
	}

	if dto.CustomFields == nil {
		return nil
	}
	if err := s.db.Where("inquiry_id = ?", id).Delete(&models.FieldValueModel{}).Error; err != nil {
		return err
	}
	for _, entry := range *dto.CustomFields {
		if !keepEntry(entry, true) {
			continue
		}
		row := models.FieldValueModel{InquiryID: id, FieldID: entry.FieldID, Value: *entry.Value}
		if err := s.db.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

// Delete removes an inquiry and its value rows. Deleting an absent id is
// not an error.
func (s *Service) Delete(id uint) error {
	if err := s.db.Where("inquiry_id = ?", id).Delete(&models.FieldValueModel{}).Error; err != nil {
		return err
	}
	return s.db.Delete(&models.InquiryModel{}, id).Error
}

// Get returns one inquiry with its raw value rows.
func (s *Service) Get(id uint) (*Detail, error) {
	var inq models.InquiryModel
	if err := s.db.First(&inq, id).Error; err != nil {
		return nil, err
	}
	var values []models.FieldValueModel
	if err := s.db.Where("inquiry_id = ?", id).Find(&values).Error; err != nil {
		return nil, err
	}
	return &Detail{InquiryModel: inq, CustomFields: values}, nil
}

// List returns the filtered inquiries newest-first, each with its custom
// field values distributed into a per-field map, plus the active field
// definitions the caller needs to interpret them. Values for all matched
// inquiries are fetched in one batch.
func (s *Service) List(f Filter) ([]ListItem, []models.CustomFieldModel, error) {
	tx := s.db.Model(&models.InquiryModel{})
	if f.Status != "" {
		tx = tx.Where("status = ?", f.Status)
	}
	if f.StartDate != "" {
		tx = tx.Where("DATE(COALESCE(inquiry_date, created_at)) >= ?", f.StartDate)
	}
	if f.EndDate != "" {
		tx = tx.Where("DATE(COALESCE(inquiry_date, created_at)) <= ?", f.EndDate)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		tx = tx.Where("client_name LIKE ? OR client_email LIKE ? OR inquiry_text LIKE ?", like, like, like)
	}

	var inquiries []models.InquiryModel
	if err := tx.Order("COALESCE(inquiry_date, created_at) DESC").Find(&inquiries).Error; err != nil {
		return nil, nil, err
	}

	var fields []models.CustomFieldModel
	if err := s.db.Where("is_active = ?", true).Order("display_order ASC").Find(&fields).Error; err != nil {
		return nil, nil, err
	}

	items := make([]ListItem, len(inquiries))
	byInquiry := map[uint]map[uint]string{}
	if len(inquiries) > 0 {
		ids := make([]uint, len(inquiries))
		for i, inq := range inquiries {
			ids[i] = inq.ID
		}
		var values []models.FieldValueModel
		if err := s.db.Where("inquiry_id IN ?", ids).Find(&values).Error; err != nil {
			return nil, nil, err
		}
		for _, v := range values {
			if byInquiry[v.InquiryID] == nil {
				byInquiry[v.InquiryID] = map[uint]string{}
			}
			byInquiry[v.InquiryID][v.FieldID] = v.Value
		}
	}
	for i, inq := range inquiries {
		vals := byInquiry[inq.ID]
		if vals == nil {
			vals = map[uint]string{}
		}
		items[i] = ListItem{InquiryModel: inq, CustomFieldValues: vals}
	}
	return items, fields, nil
}

// keepEntry reports whether a submitted entry becomes a stored value row.
// An entry without a field id or value is never stored. An explicit empty
// string is dropped at create time but kept as an empty row on update.
func keepEntry(entry CustomFieldEntry, keepEmpty bool) bool {
	if entry.FieldID == 0 || entry.Value == nil {
		return false
	}
	return keepEmpty || *entry.Value != ""
}

// parseDate accepts a YYYY-MM-DD string, returning nil for absent or
// unparsable input.
func parseDate(raw *string) *time.Time {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, strings.TrimSpace(*raw))
	if err != nil {
		return nil
	}
	return &t
}
