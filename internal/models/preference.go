package models

import "time"

// Preference is a durable scalar key-value pair.
//
// Preferences have no expiry, they live until they are overwritten.
type Preference struct {
	Key       string    `json:"key" gorm:"column:name;primaryKey"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}
