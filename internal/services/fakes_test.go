package services

import (
	"context"
	"mime/multipart"
	"time"

	"beresinBack/internal/models"
)

// In-memory stores for exercising the aggregation and moderation paths
// without a database.

type memServiceStore struct {
	rows     map[int]models.Service
	nextID   int
	deleted  []int
	statuses map[int]string
}

func newMemServiceStore(rows ...models.Service) *memServiceStore {
	s := &memServiceStore{rows: map[int]models.Service{}, nextID: 1, statuses: map[int]string{}}
	for _, row := range rows {
		s.rows[row.ID] = row
		if row.ID >= s.nextID {
			s.nextID = row.ID + 1
		}
	}
	return s
}

func (s *memServiceStore) FindByUserID(_ context.Context, userID int) ([]models.Service, error) {
	var out []models.Service
	for _, row := range s.rows {
		if row.UserID == userID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (s *memServiceStore) FindByID(_ context.Context, id int) (models.Service, error) {
	row, ok := s.rows[id]
	if !ok {
		return models.Service{}, models.ErrServiceNotFound
	}
	return row, nil
}

func (s *memServiceStore) Create(_ context.Context, svc models.Service) (models.Service, error) {
	svc.ID = s.nextID
	s.nextID++
	svc.CreatedAt = time.Now()
	s.rows[svc.ID] = svc
	return svc, nil
}

func (s *memServiceStore) UpdateByID(_ context.Context, svc models.Service) (models.Service, error) {
	if _, ok := s.rows[svc.ID]; !ok {
		return models.Service{}, models.ErrServiceNotFound
	}
	s.rows[svc.ID] = svc
	return svc, nil
}

func (s *memServiceStore) DeleteByID(_ context.Context, id int) error {
	delete(s.rows, id)
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *memServiceStore) ListByStatus(_ context.Context, status string) ([]models.Service, error) {
	var out []models.Service
	for _, row := range s.rows {
		if status == "" || row.Status == status {
			out = append(out, row)
		}
	}
	return out, nil
}

func (s *memServiceStore) UpdateStatus(_ context.Context, id int, status string) error {
	row, ok := s.rows[id]
	if !ok {
		return models.ErrServiceNotFound
	}
	row.Status = status
	s.rows[id] = row
	s.statuses[id] = status
	return nil
}

type memImageStore struct {
	rows    map[int][]models.Image
	nextID  int
	deleted []int
}

func newMemImageStore(rows ...models.Image) *memImageStore {
	s := &memImageStore{rows: map[int][]models.Image{}, nextID: 1}
	for _, row := range rows {
		s.rows[row.ServiceID] = append(s.rows[row.ServiceID], row)
		if row.ID >= s.nextID {
			s.nextID = row.ID + 1
		}
	}
	return s
}

func (s *memImageStore) FindByServiceID(_ context.Context, serviceID int) ([]models.Image, error) {
	return s.rows[serviceID], nil
}

func (s *memImageStore) FindByServiceIDs(_ context.Context, serviceIDs []int) ([]models.Image, error) {
	var out []models.Image
	for _, id := range serviceIDs {
		out = append(out, s.rows[id]...)
	}
	return out, nil
}

func (s *memImageStore) Create(_ context.Context, img models.Image) (models.Image, error) {
	img.ID = s.nextID
	s.nextID++
	s.rows[img.ServiceID] = append(s.rows[img.ServiceID], img)
	return img, nil
}

func (s *memImageStore) DeleteByServiceID(_ context.Context, serviceID int) error {
	delete(s.rows, serviceID)
	s.deleted = append(s.deleted, serviceID)
	return nil
}

type memSubscriptionStore struct {
	active  map[int]models.Subscription
	byID    map[int]models.Subscription
	nextID  int
	created []models.Subscription
}

func newMemSubscriptionStore(active ...models.Subscription) *memSubscriptionStore {
	s := &memSubscriptionStore{active: map[int]models.Subscription{}, byID: map[int]models.Subscription{}, nextID: 1}
	for _, sub := range active {
		s.active[sub.ServiceID] = sub
		s.byID[sub.ID] = sub
		if sub.ID >= s.nextID {
			s.nextID = sub.ID + 1
		}
	}
	return s
}

func (s *memSubscriptionStore) FindActiveByServiceID(_ context.Context, serviceID int) (models.Subscription, error) {
	sub, ok := s.active[serviceID]
	if !ok {
		return models.Subscription{}, models.ErrSubscriptionNotFound
	}
	return sub, nil
}

func (s *memSubscriptionStore) Create(_ context.Context, sub models.Subscription) (models.Subscription, error) {
	sub.ID = s.nextID
	s.nextID++
	sub.CreatedAt = time.Now()
	sub.UpdatedAt = sub.CreatedAt
	s.byID[sub.ID] = sub
	s.created = append(s.created, sub)
	return sub, nil
}

func (s *memSubscriptionStore) FindByID(_ context.Context, id int) (models.Subscription, error) {
	sub, ok := s.byID[id]
	if !ok {
		return models.Subscription{}, models.ErrSubscriptionNotFound
	}
	return sub, nil
}

func (s *memSubscriptionStore) ListByStatus(_ context.Context, status string) ([]models.Subscription, error) {
	var out []models.Subscription
	for _, sub := range s.byID {
		if sub.Status == status {
			out = append(out, sub)
		}
	}
	return out, nil
}

func (s *memSubscriptionStore) UpdateStatus(_ context.Context, id int, status string) (models.Subscription, error) {
	sub, ok := s.byID[id]
	if !ok {
		return models.Subscription{}, models.ErrSubscriptionNotFound
	}
	sub.Status = status
	sub.UpdatedAt = time.Now()
	s.byID[id] = sub
	if status == models.BoostStatusActive {
		s.active[sub.ServiceID] = sub
	}
	return sub, nil
}

func (s *memSubscriptionStore) ExpireOverdue(_ context.Context, _ time.Time) (int, error) {
	return 0, nil
}

type memUserStore struct {
	users map[int]models.User
}

func newMemUserStore(users ...models.User) *memUserStore {
	s := &memUserStore{users: map[int]models.User{}}
	for _, u := range users {
		s.users[u.ID] = u
	}
	return s
}

func (s *memUserStore) Create(_ context.Context, user models.User) (models.User, error) {
	s.users[user.ID] = user
	return user, nil
}

func (s *memUserStore) FindByID(_ context.Context, id int) (models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return models.User{}, models.ErrUserNotFound
	}
	return u, nil
}

func (s *memUserStore) FindByEmail(_ context.Context, email string) (models.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, models.ErrUserNotFound
}

func (s *memUserStore) UpdatePassword(_ context.Context, _ int, _ string) error { return nil }

func (s *memUserStore) CreateSession(_ context.Context, _ models.Session) error { return nil }

func (s *memUserStore) GetSessionByToken(_ context.Context, _ string) (models.Session, error) {
	return models.Session{}, models.ErrSessionNotFound
}

// memFileSaver hands back a pre-configured set of image rows instead of
// touching the filesystem.
type memFileSaver struct {
	paths []string
	calls int
}

func (s *memFileSaver) SaveServiceImages(files []*multipart.FileHeader, serviceID int) ([]models.Image, error) {
	s.calls++
	out := make([]models.Image, 0, len(s.paths))
	for _, p := range s.paths {
		out = append(out, models.Image{ServiceID: serviceID, Image: p})
	}
	return out, nil
}
