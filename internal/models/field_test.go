package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldTypeIsValid(t *testing.T) {
	for _, ft := range []FieldType{
		FieldTypeText, FieldTypeNumber, FieldTypeEmail,
		FieldTypeDate, FieldTypeTextarea, FieldTypeSelect,
	} {
		assert.True(t, ft.IsValid(), string(ft))
	}

	for _, ft := range []FieldType{"", "radio", "checkbox", "TEXT"} {
		assert.False(t, ft.IsValid(), string(ft))
	}
}
