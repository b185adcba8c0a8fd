package handler

import (
	"net/http"
	"slices"
	"strings"

	apiErrors "github.com/dtroode/flashgen-server/internal/api/errors"
	"github.com/dtroode/flashgen-server/internal/api/http/middleware"
	"github.com/dtroode/flashgen-server/internal/api/http/response"
	"github.com/dtroode/flashgen-server/internal/model"
)

// Methods dispatches an authenticated request by HTTP method. Other methods
// get 405 with an Allow header.
type Methods map[string]middleware.AuthenticatedHandlerFunc

func (m Methods) ServeAuthenticated(w http.ResponseWriter, r *http.Request, identity model.Identity) {
	if h, ok := m[r.Method]; ok {
		h(w, r, identity)
		return
	}

	allowed := make([]string, 0, len(m))
	for method := range m {
		allowed = append(allowed, method)
	}
	slices.Sort(allowed)

	w.Header().Set("Allow", strings.Join(allowed, ", "))
	response.Error(w, apiErrors.NewErrMethodNotAllowed(r.Method))
}
