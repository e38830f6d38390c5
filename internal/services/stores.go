package services

import (
	"context"
	"mime/multipart"
	"time"

	"beresinBack/internal/models"
)

// Store interfaces are declared on the consumer side so the aggregation and
// moderation paths can be exercised without a database. The concrete
// implementations live in internal/repositories.

type ServiceStore interface {
	FindByUserID(ctx context.Context, userID int) ([]models.Service, error)
	FindByID(ctx context.Context, id int) (models.Service, error)
	Create(ctx context.Context, s models.Service) (models.Service, error)
	UpdateByID(ctx context.Context, s models.Service) (models.Service, error)
	DeleteByID(ctx context.Context, id int) error
	ListByStatus(ctx context.Context, status string) ([]models.Service, error)
	UpdateStatus(ctx context.Context, id int, status string) error
}

type ImageStore interface {
	FindByServiceID(ctx context.Context, serviceID int) ([]models.Image, error)
	FindByServiceIDs(ctx context.Context, serviceIDs []int) ([]models.Image, error)
	Create(ctx context.Context, img models.Image) (models.Image, error)
	DeleteByServiceID(ctx context.Context, serviceID int) error
}

type SubscriptionStore interface {
	FindActiveByServiceID(ctx context.Context, serviceID int) (models.Subscription, error)
	Create(ctx context.Context, sub models.Subscription) (models.Subscription, error)
	FindByID(ctx context.Context, id int) (models.Subscription, error)
	ListByStatus(ctx context.Context, status string) ([]models.Subscription, error)
	UpdateStatus(ctx context.Context, id int, status string) (models.Subscription, error)
	ExpireOverdue(ctx context.Context, now time.Time) (int, error)
}

type UserStore interface {
	Create(ctx context.Context, user models.User) (models.User, error)
	FindByID(ctx context.Context, id int) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	UpdatePassword(ctx context.Context, userID int, hashed string) error
	CreateSession(ctx context.Context, session models.Session) error
	GetSessionByToken(ctx context.Context, refreshToken string) (models.Session, error)
}

type CategoryStore interface {
	GetAll(ctx context.Context) ([]models.Category, error)
	Create(ctx context.Context, c models.Category) (models.Category, error)
	UpdateByID(ctx context.Context, c models.Category) (models.Category, error)
	DeleteByID(ctx context.Context, id int) error
}

// FileSaver maps uploaded files plus the owning service id onto persisted
// image rows. The default implementation is utils.Storage.
type FileSaver interface {
	SaveServiceImages(files []*multipart.FileHeader, serviceID int) ([]models.Image, error)
}
