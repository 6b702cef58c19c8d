package model

import "time"

// Setting is one configuration value in the operational settings store.
type Setting struct {
	Category  string    `json:"category" bson:"category"`
	Key       string    `json:"key" bson:"key"`
	Value     any       `json:"value" bson:"value"`
	Type      string    `json:"type" bson:"type"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}
