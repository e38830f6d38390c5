package models

type Image struct {
	ID        int    `json:"id"`
	ServiceID int    `json:"service_id"`
	Image     string `json:"image"`
}
