package repositories

import (
	"context"
	"database/sql"
	"time"

	"beresinBack/internal/models"
)

type SubscriptionRepository struct {
	DB *sql.DB
}

const subscriptionColumns = `id, service_id, boost_name, duration, status, created_at, updated_at`

func scanSubscription(scanner interface{ Scan(dest ...any) error }) (models.Subscription, error) {
	var sub models.Subscription
	err := scanner.Scan(
		&sub.ID, &sub.ServiceID, &sub.BoostName, &sub.Duration, &sub.Status,
		&sub.CreatedAt, &sub.UpdatedAt,
	)
	if err != nil {
		return models.Subscription{}, err
	}
	return sub, nil
}

// FindActiveByServiceID resolves the boost currently running for a service.
// Active means status 'active' and the computed expiry (updated_at plus
// duration days) still in the future; the cleaner job uses the inverse of the
// same condition.
func (r *SubscriptionRepository) FindActiveByServiceID(ctx context.Context, serviceID int) (models.Subscription, error) {
	query := `
        SELECT ` + subscriptionColumns + `
        FROM subscriptions
        WHERE service_id = ? AND status = 'active' AND DATE_ADD(updated_at, INTERVAL duration DAY) > NOW()
        ORDER BY updated_at DESC
        LIMIT 1
    `
	row := r.DB.QueryRowContext(ctx, query, serviceID)
	sub, err := scanSubscription(row)
	if err == sql.ErrNoRows {
		return models.Subscription{}, models.ErrSubscriptionNotFound
	}
	return sub, err
}

func (r *SubscriptionRepository) Create(ctx context.Context, sub models.Subscription) (models.Subscription, error) {
	query := `
        INSERT INTO subscriptions (service_id, boost_name, duration, status, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?)
    `
	now := time.Now()
	sub.CreatedAt = now
	sub.UpdatedAt = now
	result, err := r.DB.ExecContext(ctx, query, sub.ServiceID, sub.BoostName, sub.Duration, sub.Status, sub.CreatedAt, sub.UpdatedAt)
	if err != nil {
		return models.Subscription{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.Subscription{}, err
	}
	sub.ID = int(id)
	return sub, nil
}

func (r *SubscriptionRepository) FindByID(ctx context.Context, id int) (models.Subscription, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+subscriptionColumns+` FROM subscriptions WHERE id = ?`, id)
	sub, err := scanSubscription(row)
	if err == sql.ErrNoRows {
		return models.Subscription{}, models.ErrSubscriptionNotFound
	}
	return sub, err
}

func (r *SubscriptionRepository) ListByStatus(ctx context.Context, status string) ([]models.Subscription, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+subscriptionColumns+` FROM subscriptions WHERE status = ? ORDER BY id`, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []models.Subscription
	for rows.Next() {
		sub, err := scanSubscription(rows)
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return subs, nil
}

// UpdateStatus moves a boost order through moderation. Bumping updated_at on
// activation anchors the computed expiry at the moment of approval, not at
// the moment the order was placed.
func (r *SubscriptionRepository) UpdateStatus(ctx context.Context, id int, status string) (models.Subscription, error) {
	result, err := r.DB.ExecContext(ctx, `UPDATE subscriptions SET status = ?, updated_at = ? WHERE id = ?`, status, time.Now(), id)
	if err != nil {
		return models.Subscription{}, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.Subscription{}, err
	}
	if rowsAffected == 0 {
		return models.Subscription{}, models.ErrSubscriptionNotFound
	}
	return r.FindByID(ctx, id)
}

// ExpireOverdue marks active boosts whose computed expiry has passed the
// provided moment. It returns the number of rows transitioned.
func (r *SubscriptionRepository) ExpireOverdue(ctx context.Context, now time.Time) (int, error) {
	query := `
        UPDATE subscriptions
        SET status = 'expired'
        WHERE status = 'active' AND DATE_ADD(updated_at, INTERVAL duration DAY) <= ?
    `
	result, err := r.DB.ExecContext(ctx, query, now)
	if err != nil {
		return 0, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(affected), nil
}
