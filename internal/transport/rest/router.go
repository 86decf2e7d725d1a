package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"pacs/internal/auth"
	"pacs/internal/department"
	"pacs/internal/device"
	"pacs/internal/employee"
	"pacs/internal/event"
	"pacs/internal/transport/middleware"
	"pacs/internal/transport/swagger"
	"pacs/internal/user"
)

// RegisterAllRoutes wires the HTTP surface. The door-entry path is
// anonymous; entity administration requires a valid token, and user
// management additionally requires a superuser.
func RegisterAllRoutes(
	router *chi.Mux,
	healthHandler *HealthHandler,
	authHandler *auth.Handler,
	departmentHandler *department.Handler,
	employeeHandler *employee.Handler,
	deviceHandler *device.Handler,
	eventHandler *event.Handler,
	userHandler *user.Handler,
	logger *slog.Logger,
) {
	router.Use(middleware.RequestID)
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.Recovery(logger))

	router.Get("/", healthHandler.Health)

	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Post("/token", authHandler.Login)

	// Door entry: device-authenticated by imei, no bearer token.
	router.Get("/drop_in/{cardID}/{imei}", eventHandler.DropIn)

	router.Group(func(pr chi.Router) {
		pr.Use(authHandler.AuthMiddleware)

		pr.Route("/departments", func(dr chi.Router) {
			dr.Get("/", departmentHandler.List)
			dr.Post("/", departmentHandler.Create)
			dr.Get("/{departmentID}", departmentHandler.Get)
			dr.Patch("/{departmentID}", departmentHandler.Update)
			dr.Delete("/{departmentID}", departmentHandler.Delete)
		})

		pr.Route("/employees", func(er chi.Router) {
			er.Get("/", employeeHandler.List)
			er.Post("/", employeeHandler.Create)
			er.Get("/{employeeID}", employeeHandler.Get)
			er.Patch("/{employeeID}", employeeHandler.Update)
			er.Delete("/{employeeID}", employeeHandler.Delete)
			er.Get("/{employeeID}/devices", employeeHandler.GetDevices)
		})

		pr.Route("/devices", func(dr chi.Router) {
			dr.Get("/", deviceHandler.List)
			dr.Post("/", deviceHandler.Create)
			dr.Post("/access", deviceHandler.GrantAccess)
			dr.Get("/{deviceID}", deviceHandler.Get)
			dr.Patch("/{deviceID}", deviceHandler.Update)
			dr.Delete("/{deviceID}", deviceHandler.Delete)
			dr.Get("/{deviceID}/employees", deviceHandler.GetEmployees)
			dr.Delete("/{deviceID}/employees/{employeeID}", deviceHandler.RevokeAccess)
		})

		pr.Get("/events", eventHandler.List)

		pr.Group(func(sr chi.Router) {
			sr.Use(authHandler.RequireSuperuser)
			sr.Route("/users", func(ur chi.Router) {
				ur.Get("/", userHandler.List)
				ur.Post("/", userHandler.Create)
				ur.Get("/{userID}", userHandler.Get)
				ur.Patch("/{userID}", userHandler.Update)
				ur.Delete("/{userID}", userHandler.Delete)
			})
		})
	})
}
