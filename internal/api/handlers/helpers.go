package handlers

import (
	"net/http"
	"strconv"

	"github.com/aaravmahajanofficial/digital-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/digital-storefront/internal/errors"
	"github.com/aaravmahajanofficial/digital-storefront/internal/models"
	"github.com/aaravmahajanofficial/digital-storefront/internal/utils/response"
)

// productID parses the {id} path value, writing a 400 on failure.
func productID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(w, errors.BadRequestError("Invalid product id"))
		return 0, false
	}

	return id, true
}

// sessionID writes a 400 when the session middleware did not run.
func sessionID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := middleware.SessionIDFromContext(r.Context())
	if id == "" {
		response.Error(w, errors.BadRequestError("Session is required"))
		return "", false
	}

	return id, true
}

func currentUser(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		middleware.LoggerFromContext(r.Context()).Warn("Unauthorized access attempt")
		response.Error(w, errors.UnauthorizedError("Authentication required"))
		return nil, false
	}

	return user, true
}
