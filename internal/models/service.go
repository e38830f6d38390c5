package models

import (
	"time"
)

const (
	ServiceStatusPending = "pending"
	ServiceStatusAccept  = "accept"
	ServiceStatusDecline = "decline"
)

type Service struct {
	ID            int        `json:"id"`
	UserID        int        `json:"user_id"`
	CategoryID    int        `json:"category_id"`
	NameOfService string     `json:"name_of_service"`
	Description   string     `json:"description"`
	MinPrice      int        `json:"min_price"`
	MaxPrice      int        `json:"max_price"`
	Status        string     `json:"status"`
	LikeCount     int        `json:"like_count"`
	BookmarkCount int        `json:"bookmark_count"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

// ServiceInput carries the raw multipart form fields of a create/update
// request. Prices stay strings here because clients send formatted currency
// values ("Rp 10.000"); parsing happens after validation.
type ServiceInput struct {
	NameOfService string
	CategoryID    string
	Description   string
	MinPrice      string
	MaxPrice      string
}

// ServiceDetail is the denormalized record for a single listing: the service
// row merged with its image paths and boost summary.
type ServiceDetail struct {
	Service
	Images       []string           `json:"images"`
	Subscription SubscriptionDetail `json:"subscription"`
}

// OwnedServiceDetail extends ServiceDetail with the owner's phone number. The
// list/create/update responses carry it; the single-get response does not.
type OwnedServiceDetail struct {
	Service
	Phone        *string            `json:"phone"`
	Images       []string           `json:"images"`
	Subscription SubscriptionDetail `json:"subscription"`
}
