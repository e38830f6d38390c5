package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"beresinBack/internal/models"
)

type ImageRepository struct {
	DB *sql.DB
}

func (r *ImageRepository) FindByServiceID(ctx context.Context, serviceID int) ([]models.Image, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, service_id, image FROM images WHERE service_id = ?`, serviceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectImages(rows)
}

func (r *ImageRepository) FindByServiceIDs(ctx context.Context, serviceIDs []int) ([]models.Image, error) {
	if len(serviceIDs) == 0 {
		return nil, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(serviceIDs)), ",")
	query := fmt.Sprintf(`SELECT id, service_id, image FROM images WHERE service_id IN (%s)`, placeholders)
	args := make([]any, 0, len(serviceIDs))
	for _, id := range serviceIDs {
		args = append(args, id)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectImages(rows)
}

func collectImages(rows *sql.Rows) ([]models.Image, error) {
	var images []models.Image
	for rows.Next() {
		var img models.Image
		if err := rows.Scan(&img.ID, &img.ServiceID, &img.Image); err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return images, nil
}

func (r *ImageRepository) Create(ctx context.Context, img models.Image) (models.Image, error) {
	result, err := r.DB.ExecContext(ctx, `INSERT INTO images (service_id, image) VALUES (?, ?)`, img.ServiceID, img.Image)
	if err != nil {
		return models.Image{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.Image{}, err
	}
	img.ID = int(id)
	return img, nil
}

func (r *ImageRepository) DeleteByServiceID(ctx context.Context, serviceID int) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM images WHERE service_id = ?`, serviceID)
	return err
}
