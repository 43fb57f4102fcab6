package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// TemplateSection is one entry of a template's ordered content skeleton.
type TemplateSection struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// TemplateContent is stored as a jsonb document.
type TemplateContent struct {
	Sections []TemplateSection `json:"sections"`
}

func (c TemplateContent) Value() (driver.Value, error) {
	b, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (c *TemplateContent) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*c = TemplateContent{}
		return nil
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	default:
		return fmt.Errorf("unsupported template content type %T", src)
	}
}

type Template struct {
	ID          int64           `json:"id" db:"id"`
	Name        string          `json:"name" db:"name"`
	Description *string         `json:"description,omitempty" db:"description"`
	Category    string          `json:"category" db:"category"`
	Content     TemplateContent `json:"content" db:"content"`
	IsDefault   bool            `json:"is_default" db:"is_default"`
}

type CreateTemplateInput struct {
	Name        string          `json:"name" validate:"required"`
	Description *string         `json:"description,omitempty"`
	Category    string          `json:"category" validate:"required"`
	Content     TemplateContent `json:"content" validate:"required"`
	IsDefault   bool            `json:"is_default"`
}
