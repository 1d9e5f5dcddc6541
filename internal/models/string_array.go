package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// StringArray stores dropdown option lists as JSON text. Older rows may hold
// a bare or quoted single string instead of an array; Scan folds those into
// a one-element list rather than failing the row.
type StringArray []string

func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(a))
	return string(b), err
}

func (a *StringArray) Scan(src interface{}) error {
	if a == nil {
		return fmt.Errorf("models.StringArray: Scan on nil pointer")
	}

	var text string
	switch v := src.(type) {
	case nil:
		*a = StringArray{}
		return nil
	case []byte:
		text = string(v)
	case string:
		text = v
	default:
		return fmt.Errorf("models.StringArray: cannot scan %T", src)
	}

	text = strings.TrimSpace(text)
	if text == "" || text == "null" {
		*a = StringArray{}
		return nil
	}

	if strings.HasPrefix(text, "[") {
		var list []string
		if err := json.Unmarshal([]byte(text), &list); err == nil {
			*a = list
			return nil
		}
	}
	if strings.HasPrefix(text, `"`) {
		var one string
		if err := json.Unmarshal([]byte(text), &one); err == nil {
			if one == "" {
				*a = StringArray{}
			} else {
				*a = StringArray{one}
			}
			return nil
		}
	}

	*a = StringArray{text}
	return nil
}
