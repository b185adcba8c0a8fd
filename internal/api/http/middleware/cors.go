package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS answers preflight requests and tags responses for allowed origins.
// An origin of "*" allows every origin.
type CORS struct {
	cors *cors.Cors
}

func NewCORS(origins []string) *CORS {
	return &CORS{cors: cors.New(cors.Options{
		AllowedOrigins:       origins,
		AllowedMethods:       []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:       []string{"Authorization", "Content-Type"},
		OptionsSuccessStatus: http.StatusNoContent,
	})}
}

func (c *CORS) Handle(next http.Handler) http.Handler {
	return c.cors.Handler(next)
}
