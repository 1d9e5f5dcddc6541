package models

import "time"

// InquiryStatus tracks an inquiry through the sales pipeline.
type InquiryStatus string

const (
	StatusNew       InquiryStatus = "new"
	StatusContacted InquiryStatus = "contacted"
	StatusQuoted    InquiryStatus = "quoted"
	StatusWon       InquiryStatus = "won"
	StatusLost      InquiryStatus = "lost"
	StatusCancelled InquiryStatus = "cancelled"
)

// InquiryModel is one client inquiry. Phone, text and inquiry date are
// nullable; filtering and ordering fall back to CreatedAt when InquiryDate
// is null.
type InquiryModel struct {
	Base
	ClientName  string        `json:"client_name"  gorm:"not null"`
	ClientEmail string        `json:"client_email" gorm:"not null"`
	ClientPhone *string       `json:"client_phone"`
	InquiryText *string       `json:"inquiry_text" gorm:"type:longtext"`
	Status      InquiryStatus `json:"status"       gorm:"default:'new';index"`
	InquiryDate *time.Time    `json:"inquiry_date" gorm:"type:date"`
}

func (InquiryModel) TableName() string { return "inquiries" }

// FieldValueModel is one stored (inquiry, field) datum. The value is always
// text; typing is interpretive, applied at read time from the referenced
// field's FieldType. The (inquiry_id, field_id) pair is at-most-one by
// convention, not by constraint, and there is no store-enforced cascade:
// dependent rows are deleted by the application before their parent.
type FieldValueModel struct {
	ID        uint   `json:"id"          gorm:"primaryKey;autoIncrement"`
	InquiryID uint   `json:"inquiry_id"  gorm:"index;not null"`
	FieldID   uint   `json:"field_id"    gorm:"index;not null"`
	Value     string `json:"field_value" gorm:"column:field_value;type:text"`
}

func (FieldValueModel) TableName() string { return "inquiry_field_values" }
