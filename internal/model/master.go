package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pgvector/pgvector-go"
)

// Master represents a tradesperson profile row
type Master struct {
	ID                string          `json:"id" db:"id"`
	Name              string          `json:"name" db:"name"`
	Profession        string          `json:"profession" db:"profession"`
	Location          *string         `json:"location,omitempty" db:"location"`
	Description       *string         `json:"description,omitempty" db:"description"`
	Rating            float64         `json:"rating" db:"rating"`
	ReviewCount       int             `json:"review_count" db:"review_count"`
	Available         bool            `json:"available" db:"available"`
	ServiceCategories JSONArray       `json:"service_categories,omitempty" db:"service_categories"`
	Specialisations   JSONArray       `json:"specialisations,omitempty" db:"specialisations"`
	HourlyRate        *float64        `json:"hourly_rate,omitempty" db:"hourly_rate"`
	IsActive          bool            `json:"is_active" db:"is_active"`
	Embedding         pgvector.Vector `json:"-" db:"embedding"`
	CreatedAt         time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at" db:"updated_at"`
}

// JSONArray represents a JSON array field
type JSONArray []string

// Value implements driver.Valuer interface
func (j JSONArray) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan implements sql.Scanner interface
func (j *JSONArray) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, j)
	case string:
		return json.Unmarshal([]byte(v), j)
	}
	return fmt.Errorf("unsupported type %T for JSONArray", value)
}

// Contains reports whether the array holds v
func (j JSONArray) Contains(v string) bool {
	for _, s := range j {
		if s == v {
			return true
		}
	}
	return false
}

// MasterFilters narrows a master search
type MasterFilters struct {
	Category   string
	City       string
	Profession string
	Domain     string
}
