package settings

// preferencesKey is the app_settings row holding the single live preference
// document.
const preferencesKey = "column_preferences"

// Standard column keys. "created_at" is the legacy name for the inquiry date
// column; persisted documents still carrying it are translated at read time.
const (
	legacyDateColumn = "created_at"
	dateColumn       = "inquiry_date"
)

var standardColumnKeys = []string{
	"id", "client_name", "client_email", "client_phone", "status", dateColumn, "actions",
}

// Preferences is the global column configuration document: admin-written,
// read by every user. There is exactly one live instance.
type Preferences struct {
	VisibleFields       []uint          `json:"visibleFields"`
	FieldOrder          []uint          `json:"fieldOrder"`
	StandardColumns     map[string]bool `json:"standardColumns"`
	StandardColumnOrder []string        `json:"standardColumnOrder,omitempty"`
}

type SavePreferencesDTO struct {
	VisibleFields       []uint          `json:"visibleFields"`
	FieldOrder          []uint          `json:"fieldOrder"`
	StandardColumns     map[string]bool `json:"standardColumns"`
	StandardColumnOrder []string        `json:"standardColumnOrder"`
}

type SaveAppSettingsDTO struct {
	Settings map[string]string `json:"settings"`
}
