package inquiry

import (
	"errors"

	"github.com/hardikidentixweb/inquiry-master/internal/models"
)

// CustomFieldEntry is one submitted (field, value) pair. Value is a pointer
// so an entry carrying an explicit empty string can be told apart from one
// carrying no value at all; create and update treat the two differently.
type CustomFieldEntry struct {
	FieldID uint    `json:"field_id"`
	Value   *string `json:"value"`
}

type CreateInquiryDTO struct {
	ClientName   string               `json:"client_name"`
	ClientEmail  string               `json:"client_email"`
	ClientPhone  *string              `json:"client_phone"`
	InquiryText  *string              `json:"inquiry_text"`
	Status       models.InquiryStatus `json:"status"`
	InquiryDate  *string              `json:"inquiry_date"` // YYYY-MM-DD
	CustomFields []CustomFieldEntry   `json:"customFields"`
}

// UpdateInquiryDTO overwrites every scalar column with the given values;
// omitted optional fields become null. A nil CustomFields leaves stored
// values untouched, a non-nil one replaces them wholesale.
type UpdateInquiryDTO struct {
	ClientName   string               `json:"client_name"`
	ClientEmail  string               `json:"client_email"`
	ClientPhone  *string              `json:"client_phone"`
	InquiryText  *string              `json:"inquiry_text"`
	Status       models.InquiryStatus `json:"status"`
	InquiryDate  *string              `json:"inquiry_date"`
	CustomFields *[]CustomFieldEntry  `json:"customFields"`
}

// Filter narrows the inquiry list. Date bounds are inclusive and compare
// against the inquiry date, falling back to the creation date.
type Filter struct {
	Status    string
	StartDate string
	EndDate   string
	Search    string
}

// ListItem is one inquiry in a list result, with its custom field values
// distributed into a field-id keyed map.
type ListItem struct {
	models.InquiryModel
	CustomFieldValues map[uint]string `json:"customFieldValues"`
}

// Detail is one inquiry with its raw value rows, not pre-joined with labels.
type Detail struct {
	models.InquiryModel
	CustomFields []models.FieldValueModel `json:"customFields"`
}

var errMissingClient = errors.New("client name and email are required")
