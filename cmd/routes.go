package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"

	"beresinBack/internal/models"
)

func (app *application) JWTMiddlewareWithRole(requiredRole string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return app.JWTMiddleware(next, requiredRole)
	}
}

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	authMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole(models.RoleUser))
	adminMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole(models.RoleAdmin))

	mux := pat.New()

	// Auth
	mux.Post("/api/v1/auth/register", standardMiddleware.ThenFunc(app.userHandler.Register))
	mux.Post("/api/v1/auth/login", standardMiddleware.ThenFunc(app.userHandler.Login))
	mux.Post("/api/v1/auth/forgot_password", standardMiddleware.ThenFunc(app.userHandler.ForgotPassword))
	mux.Post("/api/v1/auth/reset_password", standardMiddleware.ThenFunc(app.userHandler.ResetPassword))
	mux.Get("/api/v1/user/profile", authMiddleware.ThenFunc(app.userHandler.Profile))

	// Services
	mux.Get("/api/v1/user/services", authMiddleware.ThenFunc(app.serviceHandler.GetUserServices))
	mux.Post("/api/v1/user/services", authMiddleware.ThenFunc(app.serviceHandler.CreateService))
	mux.Get("/api/v1/user/services/:id", authMiddleware.ThenFunc(app.serviceHandler.GetServiceByID))
	mux.Put("/api/v1/user/services/:id", authMiddleware.ThenFunc(app.serviceHandler.UpdateService))
	mux.Add("PATCH", "/api/v1/user/services/:id", authMiddleware.ThenFunc(app.serviceHandler.UpdateService))
	mux.Del("/api/v1/user/services/:id", authMiddleware.ThenFunc(app.serviceHandler.DeleteService))

	// Boosts
	mux.Post("/api/v1/user/services/:id/boost", authMiddleware.ThenFunc(app.subscriptionHandler.OrderBoost))
	mux.Get("/api/v1/admin/subscriptions", adminMiddleware.ThenFunc(app.subscriptionHandler.ListBoostOrders))
	mux.Put("/api/v1/admin/subscriptions/:id", adminMiddleware.ThenFunc(app.subscriptionHandler.ModerateBoost))

	// Admin moderation of listings
	mux.Get("/api/v1/admin/services", adminMiddleware.ThenFunc(app.serviceHandler.ListAllServices))
	mux.Put("/api/v1/admin/services/:id/status", adminMiddleware.ThenFunc(app.serviceHandler.UpdateServiceStatus))

	// Categories
	mux.Get("/api/v1/categories", standardMiddleware.ThenFunc(app.categoryHandler.GetAllCategories))
	mux.Post("/api/v1/admin/categories", adminMiddleware.ThenFunc(app.categoryHandler.CreateCategory))
	mux.Put("/api/v1/admin/categories/:id", adminMiddleware.ThenFunc(app.categoryHandler.UpdateCategory))
	mux.Del("/api/v1/admin/categories/:id", adminMiddleware.ThenFunc(app.categoryHandler.DeleteCategory))

	// Uploaded images
	mux.Get("/uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir("./uploads"))))

	return standardMiddleware.Then(mux)
}
