package services

import (
	"context"
	"errors"
	"mime/multipart"
	"sort"
	"strconv"
	"sync"

	"beresinBack/internal/models"
	"beresinBack/internal/validation"
	"beresinBack/utils"
)

// ServiceService assembles the denormalized listing records: a service row
// joined in memory with its image paths, owner phone and boost summary.
type ServiceService struct {
	ServiceRepo      ServiceStore
	ImageRepo        ImageStore
	SubscriptionRepo SubscriptionStore
	UserRepo         UserStore
	Files            FileSaver
}

// ListUserServices returns every listing owned by the caller, ascending by
// id, each merged with its images, the caller's phone and the boost summary.
// An empty slice (not nil) signals "no listings yet" to the handler.
func (s *ServiceService) ListUserServices(ctx context.Context, userID int) ([]models.OwnedServiceDetail, error) {
	services, err := s.ServiceRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(services) == 0 {
		return []models.OwnedServiceDetail{}, nil
	}

	sort.Slice(services, func(i, j int) bool { return services[i].ID < services[j].ID })

	serviceIDs := make([]int, len(services))
	for i, svc := range services {
		serviceIDs[i] = svc.ID
	}

	images, err := s.ImageRepo.FindByServiceIDs(ctx, serviceIDs)
	if err != nil {
		return nil, err
	}
	imagesByService := make(map[int][]string, len(services))
	for _, img := range images {
		imagesByService[img.ServiceID] = append(imagesByService[img.ServiceID], img.Image)
	}

	// Boost lookups are independent reads: issue them all at once and wait
	// for the full set before assembling the response.
	boosts := make([]BoostResolution, len(serviceIDs))
	boostErrs := make([]error, len(serviceIDs))
	var wg sync.WaitGroup
	for i, id := range serviceIDs {
		wg.Add(1)
		go func(i, id int) {
			defer wg.Done()
			boosts[i], boostErrs[i] = s.resolveBoost(ctx, id)
		}(i, id)
	}
	wg.Wait()
	for _, err := range boostErrs {
		if err != nil {
			return nil, err
		}
	}

	user, err := s.UserRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	details := make([]models.OwnedServiceDetail, len(services))
	for i, svc := range services {
		details[i] = models.OwnedServiceDetail{
			Service:      svc,
			Phone:        phoneOrNil(user),
			Images:       imagePaths(imagesByService[svc.ID]),
			Subscription: boosts[i].Detail(),
		}
	}
	return details, nil
}

// GetUserServiceByID returns the denormalized record for one listing. A
// missing row and a row owned by someone else both come back as
// ErrServiceNotFound so the response does not reveal which check failed.
func (s *ServiceService) GetUserServiceByID(ctx context.Context, id, userID int) (models.ServiceDetail, error) {
	service, err := s.ServiceRepo.FindByID(ctx, id)
	if err != nil {
		return models.ServiceDetail{}, err
	}
	if service.UserID != userID {
		return models.ServiceDetail{}, models.ErrServiceNotFound
	}

	images, err := s.ImageRepo.FindByServiceID(ctx, id)
	if err != nil {
		return models.ServiceDetail{}, err
	}

	boost, err := s.resolveBoost(ctx, id)
	if err != nil {
		return models.ServiceDetail{}, err
	}

	paths := make([]string, 0, len(images))
	for _, img := range images {
		paths = append(paths, img.Image)
	}

	return models.ServiceDetail{
		Service:      service,
		Images:       paths,
		Subscription: boost.Detail(),
	}, nil
}

// CreateServiceWithImages validates and formats the input, persists the new
// listing with status "pending" and zero counters, stores the uploaded files
// against the new id and returns the fresh denormalized record.
func (s *ServiceService) CreateServiceWithImages(ctx context.Context, userID int, input models.ServiceInput, files []*multipart.FileHeader) (models.OwnedServiceDetail, error) {
	if errs := validation.ValidateServiceInput(input); len(errs) > 0 {
		return models.OwnedServiceDetail{}, &models.ValidationError{Messages: errs}
	}

	categoryID, _ := strconv.Atoi(input.CategoryID)
	service := models.Service{
		UserID:        userID,
		CategoryID:    categoryID,
		NameOfService: "Jasa " + utils.Capitalize(input.NameOfService),
		Description:   utils.CapitalizeFirstWord(input.Description),
		MinPrice:      validation.ParseCurrency(input.MinPrice),
		MaxPrice:      validation.ParseCurrency(input.MaxPrice),
		Status:        models.ServiceStatusPending,
	}

	created, err := s.ServiceRepo.Create(ctx, service)
	if err != nil {
		return models.OwnedServiceDetail{}, err
	}

	paths, err := s.storeImages(ctx, files, created.ID)
	if err != nil {
		return models.OwnedServiceDetail{}, err
	}

	return s.ownedDetail(ctx, created, paths)
}

// UpdateUserService re-validates the input, updates the mutable fields and
// replaces the listing's images wholesale: the previous rows are deleted and
// the uploaded files become the complete new set.
func (s *ServiceService) UpdateUserService(ctx context.Context, id, userID int, input models.ServiceInput, files []*multipart.FileHeader) (models.OwnedServiceDetail, error) {
	service, err := s.ServiceRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrServiceNotFound) {
			return models.OwnedServiceDetail{}, models.ErrServiceForbidden
		}
		return models.OwnedServiceDetail{}, err
	}
	if service.UserID != userID {
		return models.OwnedServiceDetail{}, models.ErrServiceForbidden
	}

	if errs := validation.ValidateServiceInput(input); len(errs) > 0 {
		return models.OwnedServiceDetail{}, &models.ValidationError{Messages: errs}
	}

	categoryID, _ := strconv.Atoi(input.CategoryID)
	service.CategoryID = categoryID
	service.NameOfService = "Jasa " + utils.Capitalize(input.NameOfService)
	service.Description = utils.CapitalizeFirstWord(input.Description)
	service.MinPrice = validation.ParseCurrency(input.MinPrice)
	service.MaxPrice = validation.ParseCurrency(input.MaxPrice)

	updated, err := s.ServiceRepo.UpdateByID(ctx, service)
	if err != nil {
		return models.OwnedServiceDetail{}, err
	}

	if err := s.ImageRepo.DeleteByServiceID(ctx, id); err != nil {
		return models.OwnedServiceDetail{}, err
	}
	paths, err := s.storeImages(ctx, files, id)
	if err != nil {
		return models.OwnedServiceDetail{}, err
	}

	return s.ownedDetail(ctx, updated, paths)
}

// DeleteUserService removes a listing and its child images under the same
// ownership rule as update.
func (s *ServiceService) DeleteUserService(ctx context.Context, id, userID int) error {
	service, err := s.ServiceRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrServiceNotFound) {
			return models.ErrServiceForbidden
		}
		return err
	}
	if service.UserID != userID {
		return models.ErrServiceForbidden
	}

	if err := s.ImageRepo.DeleteByServiceID(ctx, id); err != nil {
		return err
	}
	return s.ServiceRepo.DeleteByID(ctx, id)
}

func (s *ServiceService) ListByStatus(ctx context.Context, status string) ([]models.Service, error) {
	return s.ServiceRepo.ListByStatus(ctx, status)
}

// ModerateService is the admin accept/decline transition for a listing.
func (s *ServiceService) ModerateService(ctx context.Context, id int, status string) error {
	if status != models.ServiceStatusAccept && status != models.ServiceStatusDecline {
		return &models.ValidationError{Messages: []string{"Status layanan tidak valid."}}
	}
	return s.ServiceRepo.UpdateStatus(ctx, id, status)
}

func (s *ServiceService) storeImages(ctx context.Context, files []*multipart.FileHeader, serviceID int) ([]string, error) {
	saved, err := s.Files.SaveServiceImages(files, serviceID)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(saved))
	for _, img := range saved {
		created, err := s.ImageRepo.Create(ctx, img)
		if err != nil {
			return nil, err
		}
		paths = append(paths, created.Image)
	}
	return paths, nil
}

func (s *ServiceService) ownedDetail(ctx context.Context, service models.Service, imagePaths []string) (models.OwnedServiceDetail, error) {
	user, err := s.UserRepo.FindByID(ctx, service.UserID)
	if err != nil {
		return models.OwnedServiceDetail{}, err
	}

	boost, err := s.resolveBoost(ctx, service.ID)
	if err != nil {
		return models.OwnedServiceDetail{}, err
	}

	if imagePaths == nil {
		imagePaths = []string{}
	}
	return models.OwnedServiceDetail{
		Service:      service,
		Phone:        phoneOrNil(user),
		Images:       imagePaths,
		Subscription: boost.Detail(),
	}, nil
}

func (s *ServiceService) resolveBoost(ctx context.Context, serviceID int) (BoostResolution, error) {
	sub, err := s.SubscriptionRepo.FindActiveByServiceID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, models.ErrSubscriptionNotFound) {
			return BoostResolution{}, nil
		}
		return BoostResolution{}, err
	}
	return BoostResolution{Active: true, Boost: sub}, nil
}

func phoneOrNil(user models.User) *string {
	if user.Phone == "" {
		return nil
	}
	phone := user.Phone
	return &phone
}

func imagePaths(paths []string) []string {
	if paths == nil {
		return []string{}
	}
	return paths
}
