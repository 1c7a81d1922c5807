package rest

import (
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/six-cities/internal/utils"
	"github.com/MKhiriev/six-cities/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSignKey = "test-sign-key"

func TestGetTokenFromAuthHeader_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{name: "valid Bearer token", header: "Bearer my-jwt-token", wantToken: "my-jwt-token"},
		{name: "missing token part", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "only spaces", header: "   ", wantErr: ErrInvalidAuthorizationHeader},
		{name: "other scheme still parses second part", header: "Basic dXNlcjpwYXNz", wantToken: "dXNlcjpwYXNz"},
		{name: "repeated whitespace", header: "Bearer \t token", wantToken: "token"},
		{name: "extra parts", header: "Bearer token extra-part", wantToken: "token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestParseTokenMiddleware_TableTest(t *testing.T) {
	payload := models.TokenPayload{ID: "5f8d0d55b54764421b7156c9", Mail: "keks@mail.ru", Name: "Keks", IsPro: true}

	validToken, err := utils.GenerateJWTToken(payload, time.Hour, testSignKey)
	require.NoError(t, err)
	foreignToken, err := utils.GenerateJWTToken(payload, time.Hour, "another-key")
	require.NoError(t, err)

	tests := []struct {
		name        string
		authHeader  string
		wantNext    bool
		wantPayload *models.TokenPayload
		wantStatus  int
	}{
		{name: "no header is anonymous", wantNext: true},
		{name: "header without token is anonymous", authHeader: "Bearer", wantNext: true},
		{name: "valid token attaches identity", authHeader: "Bearer " + validToken, wantNext: true, wantPayload: &payload},
		{name: "token signed with another key", authHeader: "Bearer " + foreignToken, wantStatus: http.StatusUnauthorized},
		{name: "garbage token", authHeader: "Bearer not.a.jwt", wantStatus: http.StatusUnauthorized},
	}

	m := NewParseTokenMiddleware(testSignKey)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := newTestRequest(http.MethodGet, "/offers", "")
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			_, nextCalled, err := execute(m, req)

			assert.Equal(t, tt.wantNext, nextCalled)
			assert.Equal(t, tt.wantPayload, req.TokenPayload)
			if tt.wantStatus == 0 {
				require.NoError(t, err)
				return
			}

			var httpErr *HTTPError
			require.ErrorAs(t, err, &httpErr)
			assert.Equal(t, tt.wantStatus, httpErr.StatusCode)
			assert.Equal(t, "Invalid token", httpErr.Message)
		})
	}
}

func TestPrivateRouteMiddleware(t *testing.T) {
	m := NewPrivateRouteMiddleware()

	anonymous := newTestRequest(http.MethodGet, "/offers/favorite", "")
	_, nextCalled, err := execute(m, anonymous)
	assert.False(t, nextCalled)
	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.StatusCode)

	authenticated := newTestRequest(http.MethodGet, "/offers/favorite", "")
	authenticated.TokenPayload = &models.TokenPayload{ID: "5f8d0d55b54764421b7156c9"}
	_, nextCalled, err = execute(m, authenticated)
	require.NoError(t, err)
	assert.True(t, nextCalled)
	assert.Equal(t, "5f8d0d55b54764421b7156c9", authenticated.UserID())
}
