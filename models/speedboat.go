package models

import (
	"sort"
	"strings"
	"time"
)

type Speedboat struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Brand          string    `json:"brand" gorm:"size:100"`
	ModelNumber    string    `json:"model_number" gorm:"not null;size:100"`
	ImageURL       string    `json:"image_url" gorm:"size:500"`
	WholesalePrice float64   `json:"wholesale_price"`
	RetailPrice    float64   `json:"retail_price"`
	InStock        bool      `json:"in_stock"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ValidationErrors maps an attribute name to the messages it failed with.
// It is serialized verbatim as the body of a 422 response.
type ValidationErrors map[string][]string

func (ve ValidationErrors) Add(field, message string) {
	ve[field] = append(ve[field], message)
}

func (ve ValidationErrors) Error() string {
	parts := make([]string, 0, len(ve))
	for field, messages := range ve {
		for _, msg := range messages {
			parts = append(parts, field+" "+msg)
		}
	}
	sort.Strings(parts)
	return "validation failed: " + strings.Join(parts, ", ")
}

const blankMessage = "can't be blank"

// SpeedboatParams carries the client-supplied attributes of a create request.
type SpeedboatParams struct {
	Brand          string  `json:"brand"`
	ModelNumber    string  `json:"model_number"`
	ImageURL       string  `json:"image_url"`
	WholesalePrice float64 `json:"wholesale_price"`
	RetailPrice    float64 `json:"retail_price"`
	InStock        bool    `json:"in_stock"`
}

func (p SpeedboatParams) Validate() ValidationErrors {
	errs := ValidationErrors{}
	if strings.TrimSpace(p.ModelNumber) == "" {
		errs.Add("model_number", blankMessage)
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Record builds a new Speedboat from the params. The ID is left zero so the
// database assigns it.
func (p SpeedboatParams) Record() Speedboat {
	return Speedboat{
		Brand:          p.Brand,
		ModelNumber:    p.ModelNumber,
		ImageURL:       p.ImageURL,
		WholesalePrice: p.WholesalePrice,
		RetailPrice:    p.RetailPrice,
		InStock:        p.InStock,
	}
}

// updatableFields is the allow-list of attributes a client may change.
// The id and the timestamps are never writable.
var updatableFields = map[string]bool{
	"brand":           true,
	"model_number":    true,
	"image_url":       true,
	"wholesale_price": true,
	"retail_price":    true,
	"in_stock":        true,
}

// FilterSpeedboatFields keeps only the updatable attributes of a decoded
// JSON object. A raw map is used instead of a struct so that an absent key
// and an explicit null stay distinguishable for partial updates.
func FilterSpeedboatFields(raw map[string]interface{}) map[string]interface{} {
	fields := make(map[string]interface{}, len(raw))
	for key, value := range raw {
		if updatableFields[key] {
			fields[key] = value
		}
	}
	return fields
}

// ValidateSpeedboatFields checks a partial field set. model_number may be
// omitted entirely, but when provided it must be a non-blank string.
func ValidateSpeedboatFields(fields map[string]interface{}) ValidationErrors {
	errs := ValidationErrors{}
	if value, ok := fields["model_number"]; ok {
		s, isString := value.(string)
		if value == nil || (isString && strings.TrimSpace(s) == "") {
			errs.Add("model_number", blankMessage)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
