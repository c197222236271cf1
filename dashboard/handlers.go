package dashboard

import (
	"net/http"

	"github.com/user/taskall-go/apperror"
	"github.com/user/taskall-go/auth"
)

// Handlers provides the HTTP handler for the dashboard view.
type Handlers struct {
	service *Service
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(service *Service) *Handlers {
	return &Handlers{service: service}
}

// HandleGetSummary godoc
// @Summary Aggregated dashboard view
// @Description Returns the caller's todos and books plus derived statistics.
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dashboard.SummaryResponse
// @Failure 401 {object} apperror.ErrorResponse
// @Failure 500 {object} apperror.ErrorResponse
// @Router /dashboard [get]
func (h *Handlers) HandleGetSummary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("user id not found in context", nil))
			return
		}

		summary, err := h.service.GetSummary(r.Context(), ownerID)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteJSON(w, http.StatusOK, summary)
	}
}
