package repositories

import (
	"context"
	"database/sql"
	"time"

	"beresinBack/internal/models"
)

type CategoryRepository struct {
	DB *sql.DB
}

func (r *CategoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, name_of_category, created_at, updated_at FROM categories ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		var updated sql.NullTime
		if err := rows.Scan(&c.ID, &c.NameOfCategory, &c.CreatedAt, &updated); err != nil {
			return nil, err
		}
		if updated.Valid {
			t := updated.Time
			c.UpdatedAt = &t
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoryRepository) Create(ctx context.Context, c models.Category) (models.Category, error) {
	c.CreatedAt = time.Now()
	result, err := r.DB.ExecContext(ctx, `INSERT INTO categories (name_of_category, created_at) VALUES (?, ?)`, c.NameOfCategory, c.CreatedAt)
	if err != nil {
		return models.Category{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.Category{}, err
	}
	c.ID = int(id)
	return c, nil
}

func (r *CategoryRepository) UpdateByID(ctx context.Context, c models.Category) (models.Category, error) {
	updatedAt := time.Now()
	result, err := r.DB.ExecContext(ctx, `UPDATE categories SET name_of_category = ?, updated_at = ? WHERE id = ?`, c.NameOfCategory, updatedAt, c.ID)
	if err != nil {
		return models.Category{}, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.Category{}, err
	}
	if rowsAffected == 0 {
		return models.Category{}, models.ErrCategoryNotFound
	}
	c.UpdatedAt = &updatedAt
	return c, nil
}

func (r *CategoryRepository) DeleteByID(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrCategoryNotFound
	}
	return nil
}
