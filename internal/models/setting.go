package models

// AppSettingModel is a generic key-value store for global application
// settings. The column preference document lives here under a single key.
type AppSettingModel struct {
	ID           uint   `json:"-"             gorm:"primaryKey;autoIncrement"`
	SettingKey   string `json:"setting_key"   gorm:"uniqueIndex;not null"`
	SettingValue string `json:"setting_value" gorm:"type:longtext"` // JSON-encoded value
}

func (AppSettingModel) TableName() string { return "app_settings" }
