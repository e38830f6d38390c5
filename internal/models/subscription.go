package models

import "time"

const (
	BoostStatusPending  = "pending"
	BoostStatusActive   = "active"
	BoostStatusExpired  = "expired"
	BoostStatusRejected = "rejected"
)

// Subscription is a time-bounded boost attached to one service. There is no
// stored expiry column: a boost is active while updated_at + duration days is
// still in the future, so activation (which bumps updated_at) restarts the
// clock.
type Subscription struct {
	ID        int       `json:"id"`
	ServiceID int       `json:"service_id"`
	BoostName string    `json:"boost_name"`
	Duration  int       `json:"duration"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SubscriptionDetail is the boundary shape of the boost summary on a service
// record. The object is always present; absence is signalled by sentinel
// values ("Tidak ada" / null), not by omitting fields. Duration is an int
// when a boost is active and the literal "Tidak ada" otherwise, matching the
// API contract clients already depend on.
type SubscriptionDetail struct {
	IsSubscription bool        `json:"isSubscription"`
	BoostName      string      `json:"boost_name"`
	Duration       interface{} `json:"duration"`
	ExpiredAt      *string     `json:"expired_at"`
}

type BoostOrderRequest struct {
	BoostName string `json:"boost_name"`
	Duration  int    `json:"duration"`
}
