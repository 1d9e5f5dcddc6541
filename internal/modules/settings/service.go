package settings

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/hardikidentixweb/inquiry-master/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Service manages the preference document and generic app settings. Reads
// always hit the store, so every client sees the latest saved document.
type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// GetPreferences returns the stored preference document, or synthesizes the
// default one (all active fields visible in definition order, all standard
// columns visible) without persisting it. Legacy documents that still track
// the "created date" column get that key translated to the inquiry date
// column on the way out; storage is never rewritten here.
func (s *Service) GetPreferences() (*Preferences, error) {
	var row models.AppSettingModel
	err := s.db.Where("setting_key = ?", preferencesKey).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.defaultPreferences()
	}
	if err != nil {
		return nil, err
	}

	return decodePreferences(row.SettingValue)
}

// decodePreferences parses a stored preference document. A blank stored
// value means an empty document, not a malformed one.
func decodePreferences(raw string) (*Preferences, error) {
	if strings.TrimSpace(raw) == "" {
		raw = "{}"
	}
	prefs := &Preferences{}
	if err := json.Unmarshal([]byte(raw), prefs); err != nil {
		return nil, err
	}
	migrateLegacyColumns(prefs)
	return prefs, nil
}

// SavePreferences replaces the whole document. No partial merge: the caller
// sends the complete configuration every time.
func (s *Service) SavePreferences(dto *SavePreferencesDTO) error {
	data, err := json.Marshal(Preferences{
		VisibleFields:       dto.VisibleFields,
		FieldOrder:          dto.FieldOrder,
		StandardColumns:     dto.StandardColumns,
		StandardColumnOrder: dto.StandardColumnOrder,
	})
	if err != nil {
		return err
	}
	row := models.AppSettingModel{SettingKey: preferencesKey, SettingValue: string(data)}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "setting_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"setting_value"}),
	}).Create(&row).Error
}

func (s *Service) defaultPreferences() (*Preferences, error) {
	var fields []models.CustomFieldModel
	if err := s.db.Where("is_active = ?", true).Order("display_order ASC").Find(&fields).Error; err != nil {
		return nil, err
	}
	ids := make([]uint, len(fields))
	for i, f := range fields {
		ids[i] = f.ID
	}
	columns := make(map[string]bool, len(standardColumnKeys))
	for _, key := range standardColumnKeys {
		columns[key] = true
	}
	return &Preferences{
		VisibleFields:       ids,
		FieldOrder:          append([]uint(nil), ids...),
		StandardColumns:     columns,
		StandardColumnOrder: append([]string(nil), standardColumnKeys...),
	}, nil
}

// migrateLegacyColumns moves the legacy created-date visibility flag into
// the inquiry-date slot. Documents that already carry the new key are left
// exactly as stored, legacy key included.
func migrateLegacyColumns(p *Preferences) {
	if p.StandardColumns == nil {
		return
	}
	legacy, hasLegacy := p.StandardColumns[legacyDateColumn]
	if !hasLegacy {
		return
	}
	if _, hasNew := p.StandardColumns[dateColumn]; hasNew {
		return
	}
	p.StandardColumns[dateColumn] = legacy
	delete(p.StandardColumns, legacyDateColumn)
}

// ResolveFieldColumns filters the field list to the visible set and orders
// it by position in the preference document's field order. Fields missing
// from the order sort after the ordered ones, keeping their relative order.
func ResolveFieldColumns(fields []models.CustomFieldModel, prefs *Preferences) []models.CustomFieldModel {
	visible := make(map[uint]bool, len(prefs.VisibleFields))
	for _, id := range prefs.VisibleFields {
		visible[id] = true
	}
	position := make(map[uint]int, len(prefs.FieldOrder))
	for i, id := range prefs.FieldOrder {
		position[id] = i
	}

	out := make([]models.CustomFieldModel, 0, len(fields))
	for _, f := range fields {
		if visible[f.ID] {
			out = append(out, f)
		}
	}
	// Insertion sort keeps the filter order stable for unknown ids.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && columnBefore(position, out[j].ID, out[j-1].ID); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

func columnBefore(position map[uint]int, a, b uint) bool {
	pa, okA := position[a]
	pb, okB := position[b]
	if !okA {
		return false
	}
	if !okB {
		return true
	}
	return pa < pb
}

// GetAppSettings returns all settings as a key → value map.
func (s *Service) GetAppSettings() (map[string]string, error) {
	var rows []models.AppSettingModel
	if err := s.db.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]string, len(rows))
	for _, row := range rows {
		out[row.SettingKey] = row.SettingValue
	}
	return out, nil
}

// SetAppSettings upserts each given key.
func (s *Service) SetAppSettings(settings map[string]string) error {
	for key, value := range settings {
		row := models.AppSettingModel{SettingKey: key, SettingValue: value}
		if err := s.db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "setting_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"setting_value"}),
		}).Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}
