// Package api — HTTP-интерфейс сервиса калькулятора: регистрация и вход,
// создание сессий и доставка нажатий клавиш.
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"deskcalc/internal/auth"
	"deskcalc/internal/session"
)

// SetupRouter настраивает маршруты сервиса.
func SetupRouter(mgr *session.Manager) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	authHandler := NewAuthHandler()
	sessionHandler := NewSessionHandler(mgr)

	// Публичные маршруты (без аутентификации)
	r.Group(func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Get("/token-info", TokenInfoHandler)
	})

	// Защищённые маршруты (с аутентификацией)
	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware)
		r.Post("/sessions", sessionHandler.Create)
		r.Get("/sessions/{id}", sessionHandler.Render)
		r.Post("/sessions/{id}/keys", sessionHandler.PressKey)
		r.Delete("/sessions/{id}", sessionHandler.Remove)
	})

	return r
}
