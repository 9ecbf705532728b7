package testutils

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/aaravmahajanofficial/digital-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/digital-storefront/internal/models"
	"github.com/aaravmahajanofficial/digital-storefront/internal/utils/response"
)

const TestSessionID = "9b2f4c1e-5d7a-4e8b-a1c3-2f6d8e0b4a71"

// CreateTestRequestWithContext builds a request as seen behind the session and
// auth middleware. A nil user leaves the request unauthenticated.
func CreateTestRequestWithContext(method, target string, body io.Reader, user *models.User, pathParams map[string]string) *http.Request {
	req := CreateTestRequestWithoutContext(method, target, body, pathParams)

	ctx := middleware.WithSessionID(req.Context(), TestSessionID)
	if user != nil {
		ctx = middleware.WithUser(ctx, user)
	}

	return req.WithContext(ctx)
}

func CreateTestRequestWithoutContext(method, target string, body io.Reader, pathParams map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, body)

	for key, value := range pathParams {
		req.SetPathValue(key, value)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.WithValue(req.Context(), middleware.LoggerKey, logger)

	return req.WithContext(ctx)
}

// DecodeData unmarshals the envelope of rr and re-decodes its data field into dest.
func DecodeData(rr *httptest.ResponseRecorder, dest any) (*response.APIResponse, error) {
	var resp response.APIResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		return nil, err
	}

	if dest == nil || resp.Data == nil {
		return &resp, nil
	}

	raw, err := json.Marshal(resp.Data)
	if err != nil {
		return nil, err
	}

	return &resp, json.Unmarshal(raw, dest)
}
