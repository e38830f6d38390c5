package services

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"beresinBack/internal/models"
)

func TestBoostResolutionDetail(t *testing.T) {
	t.Run("absent boost yields placeholders", func(t *testing.T) {
		got := BoostResolution{}.Detail()
		want := models.SubscriptionDetail{
			IsSubscription: false,
			BoostName:      "Tidak ada",
			Duration:       "Tidak ada",
			ExpiredAt:      nil,
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("expected %+v got %+v", want, got)
		}
	})

	t.Run("active boost computes expiry from activation", func(t *testing.T) {
		activatedAt := time.Date(2025, 3, 1, 8, 30, 0, 0, time.UTC)
		got := BoostResolution{
			Active: true,
			Boost: models.Subscription{
				BoostName: "Premium",
				Duration:  30,
				Status:    models.BoostStatusActive,
				UpdatedAt: activatedAt,
			},
		}.Detail()

		if !got.IsSubscription {
			t.Fatal("expected isSubscription true")
		}
		if got.BoostName != "Premium" {
			t.Fatalf("expected boost name Premium got %q", got.BoostName)
		}
		if d, ok := got.Duration.(int); !ok || d != 30 {
			t.Fatalf("expected duration 30 got %v", got.Duration)
		}
		want := "2025-03-31T08:30:00.000Z"
		if got.ExpiredAt == nil || *got.ExpiredAt != want {
			t.Fatalf("expected expiry %q got %v", want, got.ExpiredAt)
		}
	})

	t.Run("expiry is rendered in UTC", func(t *testing.T) {
		jakarta := time.FixedZone("WIB", 7*60*60)
		activatedAt := time.Date(2025, 3, 1, 8, 30, 0, 0, jakarta)
		got := BoostResolution{
			Active: true,
			Boost:  models.Subscription{Duration: 1, UpdatedAt: activatedAt},
		}.Detail()

		want := "2025-03-02T01:30:00.000Z"
		if got.ExpiredAt == nil || *got.ExpiredAt != want {
			t.Fatalf("expected expiry %q got %v", want, got.ExpiredAt)
		}
	})
}

func TestOrderBoost(t *testing.T) {
	newSvc := func() (*SubscriptionService, *memSubscriptionStore) {
		subStore := newMemSubscriptionStore()
		svcStore := newMemServiceStore(models.Service{ID: 4, UserID: 7})
		return &SubscriptionService{SubscriptionRepo: subStore, ServiceRepo: svcStore}, subStore
	}

	t.Run("creates a pending order", func(t *testing.T) {
		s, subStore := newSvc()
		got, err := s.OrderBoost(context.Background(), 4, 7, models.BoostOrderRequest{BoostName: "Premium", Duration: 7})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != models.BoostStatusPending {
			t.Fatalf("expected status pending got %q", got.Status)
		}
		if got.ServiceID != 4 {
			t.Fatalf("expected service id 4 got %d", got.ServiceID)
		}
		if len(subStore.created) != 1 {
			t.Fatalf("expected 1 created order got %d", len(subStore.created))
		}
	})

	t.Run("not owner is forbidden", func(t *testing.T) {
		s, subStore := newSvc()
		_, err := s.OrderBoost(context.Background(), 4, 9, models.BoostOrderRequest{BoostName: "Premium", Duration: 7})
		if !errors.Is(err, models.ErrServiceForbidden) {
			t.Fatalf("expected ErrServiceForbidden got %v", err)
		}
		if len(subStore.created) != 0 {
			t.Fatal("forbidden order must not be persisted")
		}
	})

	t.Run("missing service is forbidden", func(t *testing.T) {
		s, _ := newSvc()
		_, err := s.OrderBoost(context.Background(), 99, 7, models.BoostOrderRequest{BoostName: "Premium", Duration: 7})
		if !errors.Is(err, models.ErrServiceForbidden) {
			t.Fatalf("expected ErrServiceForbidden got %v", err)
		}
	})

	t.Run("invalid request collects all messages", func(t *testing.T) {
		s, _ := newSvc()
		_, err := s.OrderBoost(context.Background(), 4, 7, models.BoostOrderRequest{})
		var vErr *models.ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError got %v", err)
		}
		msg := vErr.Error()
		if !strings.Contains(msg, "Nama boost wajib diisi.") || !strings.Contains(msg, "Durasi boost harus lebih dari nol hari.") {
			t.Fatalf("unexpected messages: %q", msg)
		}
	})
}

func TestModerateBoost(t *testing.T) {
	newSvc := func() (*SubscriptionService, *memSubscriptionStore) {
		subStore := newMemSubscriptionStore()
		_, _ = subStore.Create(context.Background(), models.Subscription{ServiceID: 4, BoostName: "Premium", Duration: 7, Status: models.BoostStatusPending})
		return &SubscriptionService{SubscriptionRepo: subStore, ServiceRepo: newMemServiceStore()}, subStore
	}

	t.Run("activation bumps updated_at", func(t *testing.T) {
		s, subStore := newSvc()
		before := subStore.byID[1].UpdatedAt

		got, err := s.Moderate(context.Background(), 1, models.BoostStatusActive)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != models.BoostStatusActive {
			t.Fatalf("expected status active got %q", got.Status)
		}
		if got.UpdatedAt.Before(before) {
			t.Fatal("activation must not move updated_at backwards")
		}
	})

	t.Run("rejection", func(t *testing.T) {
		s, _ := newSvc()
		got, err := s.Moderate(context.Background(), 1, models.BoostStatusRejected)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != models.BoostStatusRejected {
			t.Fatalf("expected status rejected got %q", got.Status)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		s, _ := newSvc()
		_, err := s.Moderate(context.Background(), 1, models.BoostStatusExpired)
		var vErr *models.ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError got %v", err)
		}
	})
}

func TestListOrdersDefaultsToPending(t *testing.T) {
	subStore := newMemSubscriptionStore()
	_, _ = subStore.Create(context.Background(), models.Subscription{ServiceID: 1, BoostName: "A", Duration: 7, Status: models.BoostStatusPending})
	s := &SubscriptionService{SubscriptionRepo: subStore, ServiceRepo: newMemServiceStore()}

	got, err := s.ListOrders(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 pending order got %d", len(got))
	}
}
