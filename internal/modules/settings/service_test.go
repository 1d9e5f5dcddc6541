package settings

import (
	"testing"

	"github.com/hardikidentixweb/inquiry-master/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func field(id uint, name string) models.CustomFieldModel {
	f := models.CustomFieldModel{FieldName: name, FieldType: models.FieldTypeText, FieldLabel: name}
	f.ID = id
	return f
}

func fieldIDs(fields []models.CustomFieldModel) []uint {
	ids := make([]uint, len(fields))
	for i, f := range fields {
		ids[i] = f.ID
	}
	return ids
}

func TestMigrateLegacyColumns(t *testing.T) {
	tests := []struct {
		name    string
		columns map[string]bool
		want    map[string]bool
	}{
		{
			name:    "legacy key only",
			columns: map[string]bool{"created_at": false, "status": true},
			want:    map[string]bool{"inquiry_date": false, "status": true},
		},
		{
			name:    "both keys present leaves the document untouched",
			columns: map[string]bool{"created_at": false, "inquiry_date": true},
			want:    map[string]bool{"created_at": false, "inquiry_date": true},
		},
		{
			name:    "no legacy key",
			columns: map[string]bool{"inquiry_date": true},
			want:    map[string]bool{"inquiry_date": true},
		},
		{
			name:    "nil map",
			columns: nil,
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Preferences{StandardColumns: tt.columns}
			migrateLegacyColumns(p)
			assert.Equal(t, tt.want, p.StandardColumns)
		})
	}
}

func TestDecodePreferences(t *testing.T) {
	t.Run("blank stored value is an empty document", func(t *testing.T) {
		for _, raw := range []string{"", "   "} {
			prefs, err := decodePreferences(raw)
			require.NoError(t, err)
			assert.Equal(t, &Preferences{}, prefs)
		}
	})

	t.Run("legacy column key is translated", func(t *testing.T) {
		prefs, err := decodePreferences(`{"standardColumns":{"created_at":false}}`)
		require.NoError(t, err)
		assert.Equal(t, map[string]bool{"inquiry_date": false}, prefs.StandardColumns)
	})

	t.Run("full document round-trips", func(t *testing.T) {
		prefs, err := decodePreferences(`{"visibleFields":[2,1],"fieldOrder":[1,2]}`)
		require.NoError(t, err)
		assert.Equal(t, []uint{2, 1}, prefs.VisibleFields)
		assert.Equal(t, []uint{1, 2}, prefs.FieldOrder)
	})

	t.Run("malformed document errors", func(t *testing.T) {
		_, err := decodePreferences("{not json")
		assert.Error(t, err)
	})
}

func TestResolveFieldColumns(t *testing.T) {
	fields := []models.CustomFieldModel{
		field(1, "budget"),
		field(2, "city"),
		field(3, "source"),
		field(4, "notes"),
	}

	t.Run("filters to visible set", func(t *testing.T) {
		prefs := &Preferences{VisibleFields: []uint{1, 3}}
		got := ResolveFieldColumns(fields, prefs)
		assert.Equal(t, []uint{1, 3}, fieldIDs(got))
	})

	t.Run("orders by field order", func(t *testing.T) {
		prefs := &Preferences{
			VisibleFields: []uint{1, 2, 3},
			FieldOrder:    []uint{3, 1, 2},
		}
		got := ResolveFieldColumns(fields, prefs)
		assert.Equal(t, []uint{3, 1, 2}, fieldIDs(got))
	})

	t.Run("ids missing from order come last in original order", func(t *testing.T) {
		prefs := &Preferences{
			VisibleFields: []uint{1, 2, 3, 4},
			FieldOrder:    []uint{4},
		}
		got := ResolveFieldColumns(fields, prefs)
		assert.Equal(t, []uint{4, 1, 2, 3}, fieldIDs(got))
	})

	t.Run("empty preferences hide everything", func(t *testing.T) {
		prefs := &Preferences{}
		got := ResolveFieldColumns(fields, prefs)
		assert.Empty(t, got)
	})
}
