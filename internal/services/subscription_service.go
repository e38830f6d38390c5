package services

import (
	"context"
	"errors"
	"time"

	"beresinBack/internal/models"
)

const boostAbsent = "Tidak ada"

// isoMillis matches the timestamp format clients already parse
// (UTC, millisecond precision, trailing Z).
const isoMillis = "2006-01-02T15:04:05.000Z"

// BoostResolution is the tagged result of looking up a service's boost:
// either an active subscription or nothing. The sentinel-laden JSON shape is
// produced only at the boundary by Detail.
type BoostResolution struct {
	Active bool
	Boost  models.Subscription
}

// Detail maps the resolution onto the wire shape. The subscription object is
// always present on a service record; absence is carried by the sentinel
// values, never by omitting the field.
func (b BoostResolution) Detail() models.SubscriptionDetail {
	if !b.Active {
		return models.SubscriptionDetail{
			IsSubscription: false,
			BoostName:      boostAbsent,
			Duration:       boostAbsent,
			ExpiredAt:      nil,
		}
	}

	expiredAt := b.Boost.UpdatedAt.Add(time.Duration(b.Boost.Duration) * 24 * time.Hour).UTC().Format(isoMillis)
	return models.SubscriptionDetail{
		IsSubscription: true,
		BoostName:      b.Boost.BoostName,
		Duration:       b.Boost.Duration,
		ExpiredAt:      &expiredAt,
	}
}

type SubscriptionService struct {
	SubscriptionRepo SubscriptionStore
	ServiceRepo      ServiceStore
}

// ResolveBoost looks up the active boost for a service and returns the tagged
// result. A missing subscription is not an error here.
func (s *SubscriptionService) ResolveBoost(ctx context.Context, serviceID int) (BoostResolution, error) {
	sub, err := s.SubscriptionRepo.FindActiveByServiceID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, models.ErrSubscriptionNotFound) {
			return BoostResolution{}, nil
		}
		return BoostResolution{}, err
	}
	return BoostResolution{Active: true, Boost: sub}, nil
}

// OrderBoost creates a pending boost order for a service owned by the
// caller. Ownership and existence failures are merged into one error, same
// as the service mutation paths.
func (s *SubscriptionService) OrderBoost(ctx context.Context, serviceID, userID int, req models.BoostOrderRequest) (models.Subscription, error) {
	service, err := s.ServiceRepo.FindByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, models.ErrServiceNotFound) {
			return models.Subscription{}, models.ErrServiceForbidden
		}
		return models.Subscription{}, err
	}
	if service.UserID != userID {
		return models.Subscription{}, models.ErrServiceForbidden
	}

	var msgs []string
	if req.BoostName == "" {
		msgs = append(msgs, "Nama boost wajib diisi.")
	}
	if req.Duration <= 0 {
		msgs = append(msgs, "Durasi boost harus lebih dari nol hari.")
	}
	if len(msgs) > 0 {
		return models.Subscription{}, &models.ValidationError{Messages: msgs}
	}

	return s.SubscriptionRepo.Create(ctx, models.Subscription{
		ServiceID: serviceID,
		BoostName: req.BoostName,
		Duration:  req.Duration,
		Status:    models.BoostStatusPending,
	})
}

func (s *SubscriptionService) ListOrders(ctx context.Context, status string) ([]models.Subscription, error) {
	if status == "" {
		status = models.BoostStatusPending
	}
	return s.SubscriptionRepo.ListByStatus(ctx, status)
}

// Moderate resolves a pending order to active or rejected. Activation bumps
// updated_at in the store, which anchors the computed expiry.
func (s *SubscriptionService) Moderate(ctx context.Context, id int, status string) (models.Subscription, error) {
	if status != models.BoostStatusActive && status != models.BoostStatusRejected {
		return models.Subscription{}, &models.ValidationError{Messages: []string{"Status boost tidak valid."}}
	}
	return s.SubscriptionRepo.UpdateStatus(ctx, id, status)
}
