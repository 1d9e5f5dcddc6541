package report

import (
	"github.com/hardikidentixweb/inquiry-master/internal/models"
	"gorm.io/gorm"
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// Export materializes everything one export run needs: the filtered
// inquiries newest-first, the active field definitions, and every matching
// field value fetched in one batch and keyed by (inquiry, field).
func (s *Service) Export(f Filter) ([]models.InquiryModel, []models.CustomFieldModel, map[uint]map[uint]string, error) {
	tx := s.db.Model(&models.InquiryModel{})
	if f.Status != "" {
		tx = tx.Where("status = ?", f.Status)
	}
	if f.StartDate != "" {
		tx = tx.Where("DATE(created_at) >= ?", f.StartDate)
	}
	if f.EndDate != "" {
		tx = tx.Where("DATE(created_at) <= ?", f.EndDate)
	}

	var inquiries []models.InquiryModel
	if err := tx.Order("created_at DESC").Find(&inquiries).Error; err != nil {
		return nil, nil, nil, err
	}

	var fields []models.CustomFieldModel
	if err := s.db.Where("is_active = ?", true).Order("display_order ASC").Find(&fields).Error; err != nil {
		return nil, nil, nil, err
	}

	values := map[uint]map[uint]string{}
	if len(inquiries) > 0 {
		ids := make([]uint, len(inquiries))
		for i, inq := range inquiries {
			ids[i] = inq.ID
		}
		var rows []models.FieldValueModel
		if err := s.db.Where("inquiry_id IN ?", ids).Find(&rows).Error; err != nil {
			return nil, nil, nil, err
		}
		for _, row := range rows {
			if values[row.InquiryID] == nil {
				values[row.InquiryID] = map[uint]string{}
			}
			values[row.InquiryID][row.FieldID] = row.Value
		}
	}
	return inquiries, fields, values, nil
}

// Stats returns total, per-status and per-calendar-date inquiry counts,
// optionally cut to a creation date range.
func (s *Service) Stats(startDate, endDate string) (*Stats, error) {
	scoped := func() *gorm.DB {
		tx := s.db.Model(&models.InquiryModel{})
		if startDate != "" {
			tx = tx.Where("DATE(created_at) >= ?", startDate)
		}
		if endDate != "" {
			tx = tx.Where("DATE(created_at) <= ?", endDate)
		}
		return tx
	}

	out := &Stats{StatusCounts: []StatusCount{}, DateCounts: []DateCount{}}
	if err := scoped().Count(&out.Total).Error; err != nil {
		return nil, err
	}
	if err := scoped().
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&out.StatusCounts).Error; err != nil {
		return nil, err
	}
	if err := scoped().
		Select("DATE_FORMAT(created_at, '%Y-%m-%d') as date, COUNT(*) as count").
		Group("DATE_FORMAT(created_at, '%Y-%m-%d')").
		Order("date DESC").
		Scan(&out.DateCounts).Error; err != nil {
		return nil, err
	}
	return out, nil
}
