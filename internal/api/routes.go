package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/hbnb-platform/hbnb-api/internal/api/middleware"
	"github.com/hbnb-platform/hbnb-api/internal/service"
	"github.com/hbnb-platform/hbnb-api/internal/service/auth"
)

// RegisterRoutes mounts every resource endpoint on r. Reads are public;
// writes require a bearer token, except user creation where the token is
// optional and the facade decides.
func RegisterRoutes(r chi.Router, facade service.Facade, jwtService auth.JWTService) {
	authMiddleware := middleware.NewAuthMiddleware(jwtService)

	authHandler := NewAuthHandler(facade, jwtService)
	users := NewUserHandler(facade)
	amenities := NewAmenityHandler(facade)
	places := NewPlaceHandler(facade)
	reviews := NewReviewHandler(facade)

	r.Post("/auth/login", authHandler.Login)

	// Public reads
	r.Get("/users", users.ListUsers)
	r.Get("/users/{id}", users.GetUser)
	r.Get("/users/{id}/places", users.ListUserPlaces)
	r.Get("/users/{id}/reviews", users.ListUserReviews)
	r.Get("/amenities", amenities.ListAmenities)
	r.Get("/amenities/{id}", amenities.GetAmenity)
	r.Get("/places", places.ListPlaces)
	r.Get("/places/{id}", places.GetPlace)
	r.Get("/places/{id}/reviews", places.ListPlaceReviews)
	r.Get("/reviews", reviews.ListReviews)
	r.Get("/reviews/{id}", reviews.GetReview)

	r.With(authMiddleware.OptionalAuthenticate).Post("/users", users.CreateUser)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Put("/users/{id}", users.UpdateUser)

		r.Post("/amenities", amenities.CreateAmenity)
		r.Put("/amenities/{id}", amenities.UpdateAmenity)

		r.Post("/places", places.CreatePlace)
		r.Put("/places/{id}", places.UpdatePlace)
		r.Delete("/places/{id}", places.DeletePlace)

		r.Post("/reviews", reviews.CreateReview)
		r.Put("/reviews/{id}", reviews.UpdateReview)
		r.Delete("/reviews/{id}", reviews.DeleteReview)
	})
}
