package main

import (
	"database/sql"
	"log"
	"os"

	"github.com/redis/go-redis/v9"

	"beresinBack/internal/handlers"
	"beresinBack/internal/repositories"
	"beresinBack/internal/services"
	"beresinBack/utils"
)

type application struct {
	errorLog            *log.Logger
	infoLog             *log.Logger
	db                  *sql.DB
	userRepo            *repositories.UserRepository
	subscriptionRepo    *repositories.SubscriptionRepository
	userHandler         *handlers.UserHandler
	serviceHandler      *handlers.ServiceHandler
	categoryHandler     *handlers.CategoryHandler
	subscriptionHandler *handlers.SubscriptionHandler
}

func initializeApp(db *sql.DB, rdb *redis.Client, errorLog, infoLog *log.Logger) (*application, error) {
	// Repositories
	userRepo := repositories.UserRepository{DB: db}
	serviceRepo := repositories.ServiceRepository{DB: db}
	imageRepo := repositories.ImageRepository{DB: db}
	subscriptionRepo := repositories.SubscriptionRepository{DB: db}
	categoryRepo := repositories.CategoryRepository{DB: db}

	tokenManager, err := utils.NewManager(jwtSigningKey())
	if err != nil {
		return nil, err
	}

	// Services
	serviceService := &services.ServiceService{
		ServiceRepo:      &serviceRepo,
		ImageRepo:        &imageRepo,
		SubscriptionRepo: &subscriptionRepo,
		UserRepo:         &userRepo,
		Files:            utils.NewStorageFromEnv(),
	}
	subscriptionService := &services.SubscriptionService{
		SubscriptionRepo: &subscriptionRepo,
		ServiceRepo:      &serviceRepo,
	}
	userService := &services.UserService{
		UserRepo: &userRepo,
		Tokens:   tokenManager,
		Redis:    rdb,
	}
	categoryService := &services.CategoryService{CategoryRepo: &categoryRepo}

	// Handlers
	serviceHandler := &handlers.ServiceHandler{Service: serviceService}
	subscriptionHandler := &handlers.SubscriptionHandler{Service: subscriptionService}
	userHandler := &handlers.UserHandler{Service: userService}
	categoryHandler := &handlers.CategoryHandler{Service: categoryService}

	return &application{
		errorLog:            errorLog,
		infoLog:             infoLog,
		db:                  db,
		userRepo:            &userRepo,
		subscriptionRepo:    &subscriptionRepo,
		userHandler:         userHandler,
		serviceHandler:      serviceHandler,
		categoryHandler:     categoryHandler,
		subscriptionHandler: subscriptionHandler,
	}, nil
}

func jwtSigningKey() string {
	if key := os.Getenv("JWT_SECRET"); key != "" {
		return key
	}
	return "beresin-dev-secret"
}
