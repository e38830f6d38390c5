package repositories

import (
	"context"
	"database/sql"
	"time"

	"beresinBack/internal/models"
)

type ServiceRepository struct {
	DB *sql.DB
}

const serviceColumns = `id, user_id, category_id, name_of_service, description, min_price, max_price, status, like_count, bookmark_count, created_at, updated_at`

func scanService(scanner interface{ Scan(dest ...any) error }) (models.Service, error) {
	var s models.Service
	var updated sql.NullTime
	err := scanner.Scan(
		&s.ID, &s.UserID, &s.CategoryID, &s.NameOfService, &s.Description,
		&s.MinPrice, &s.MaxPrice, &s.Status, &s.LikeCount, &s.BookmarkCount,
		&s.CreatedAt, &updated,
	)
	if err != nil {
		return models.Service{}, err
	}
	if updated.Valid {
		t := updated.Time
		s.UpdatedAt = &t
	}
	return s, nil
}

func (r *ServiceRepository) FindByUserID(ctx context.Context, userID int) ([]models.Service, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+serviceColumns+` FROM services WHERE user_id = ?`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var services []models.Service
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		services = append(services, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return services, nil
}

func (r *ServiceRepository) FindByID(ctx context.Context, id int) (models.Service, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+serviceColumns+` FROM services WHERE id = ?`, id)
	s, err := scanService(row)
	if err == sql.ErrNoRows {
		return models.Service{}, models.ErrServiceNotFound
	}
	return s, err
}

func (r *ServiceRepository) Create(ctx context.Context, s models.Service) (models.Service, error) {
	query := `
        INSERT INTO services (user_id, category_id, name_of_service, description, min_price, max_price, status, like_count, bookmark_count, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `
	s.CreatedAt = time.Now()
	result, err := r.DB.ExecContext(ctx, query,
		s.UserID, s.CategoryID, s.NameOfService, s.Description,
		s.MinPrice, s.MaxPrice, s.Status, s.LikeCount, s.BookmarkCount, s.CreatedAt,
	)
	if err != nil {
		return models.Service{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.Service{}, err
	}
	s.ID = int(id)
	return s, nil
}

func (r *ServiceRepository) UpdateByID(ctx context.Context, s models.Service) (models.Service, error) {
	query := `
        UPDATE services
        SET category_id = ?, name_of_service = ?, description = ?, min_price = ?, max_price = ?, updated_at = ?
        WHERE id = ?
    `
	updatedAt := time.Now()
	result, err := r.DB.ExecContext(ctx, query,
		s.CategoryID, s.NameOfService, s.Description, s.MinPrice, s.MaxPrice, updatedAt, s.ID,
	)
	if err != nil {
		return models.Service{}, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.Service{}, err
	}
	if rowsAffected == 0 {
		return models.Service{}, models.ErrServiceNotFound
	}
	return r.FindByID(ctx, s.ID)
}

func (r *ServiceRepository) DeleteByID(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM services WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrServiceNotFound
	}
	return nil
}

func (r *ServiceRepository) ListByStatus(ctx context.Context, status string) ([]models.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services`
	args := []any{}
	if status != "" {
		query += ` WHERE status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY id`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var services []models.Service
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		services = append(services, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return services, nil
}

func (r *ServiceRepository) UpdateStatus(ctx context.Context, id int, status string) error {
	result, err := r.DB.ExecContext(ctx, `UPDATE services SET status = ?, updated_at = ? WHERE id = ?`, status, time.Now(), id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrServiceNotFound
	}
	return nil
}
