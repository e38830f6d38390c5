package models

import "time"

type Category struct {
	ID             int        `json:"id"`
	NameOfCategory string     `json:"name_of_category"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}
