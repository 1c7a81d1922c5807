package http

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/six-cities/internal/config"
	"github.com/MKhiriev/six-cities/internal/logger"
	"github.com/MKhiriev/six-cities/internal/mock"
	"github.com/MKhiriev/six-cities/internal/rest"
	"github.com/MKhiriev/six-cities/internal/service"
	"github.com/MKhiriev/six-cities/internal/utils"
	"github.com/MKhiriev/six-cities/models"
	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testSignKey = "test-sign-key"

	testUserID  = "65f1c0de0000000000000001"
	otherUserID = "65f1c0de0000000000000002"
	testOfferID = "65f1c0de00000000000000a1"
)

var testUser = models.User{
	ID:     testUserID,
	Name:   "Keks",
	Email:  "keks@example.com",
	Avatar: "keks.png",
	Type:   models.UserTypeRegular,
}

// testEnv is a running server whose services are gomock mocks.
type testEnv struct {
	offers   *mock.MockOfferService
	users    *mock.MockUserService
	auth     *mock.MockAuthService
	comments *mock.MockCommentService
	appInfo  *mock.MockAppInfoService
	files    *mock.MockFileStorage

	cfg    config.StructuredConfig
	server *httptest.Server
	client *utils.HTTPClient
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)

	env := &testEnv{
		offers:   mock.NewMockOfferService(ctrl),
		users:    mock.NewMockUserService(ctrl),
		auth:     mock.NewMockAuthService(ctrl),
		comments: mock.NewMockCommentService(ctrl),
		appInfo:  mock.NewMockAppInfoService(ctrl),
		files:    mock.NewMockFileStorage(ctrl),
		cfg: config.StructuredConfig{
			App: config.App{
				TokenSignKey:  testSignKey,
				TokenDuration: time.Hour,
			},
			Server: config.Server{
				RequestTimeout:     5 * time.Second,
				CORSAllowedOrigins: []string{"*"},
				MaxUploadSize:      1 << 20,
			},
			Storage: config.Storage{
				Files: config.Files{
					UploadDir: t.TempDir(),
					StaticDir: t.TempDir(),
				},
			},
		},
	}

	services := &service.Services{
		OfferService:   env.offers,
		UserService:    env.users,
		AuthService:    env.auth,
		CommentService: env.comments,
		AppInfoService: env.appInfo,
	}

	h := NewHandler(services, env.files, env.cfg, logger.Nop())
	env.server = httptest.NewServer(h.Init())
	t.Cleanup(env.server.Close)

	env.client = utils.NewHTTPClient(env.server.URL)
	return env
}

// as returns a request authorized as user.
func (e *testEnv) as(t *testing.T, user models.User) *resty.Request {
	t.Helper()
	token, err := utils.GenerateJWTToken(models.NewTokenPayload(user), time.Hour, testSignKey)
	require.NoError(t, err)
	return e.client.Authorized(token)
}

func decodeError(t *testing.T, resp *resty.Response) rest.ErrorResponse {
	t.Helper()
	var body rest.ErrorResponse
	require.NoError(t, json.Unmarshal(resp.Body(), &body), "body: %s", resp.String())
	return body
}

func validCreateOfferBody() map[string]any {
	return map[string]any{
		"name":         "Canal View Prinsengracht",
		"description":  "Nice, cozy, warm big bed apartment near the canal.",
		"date":         "2026-10-01T12:00:00Z",
		"city":         "Amsterdam",
		"previewImage": "preview.jpg",
		"photo":        []string{"1.jpg", "2.jpg", "3.jpg", "4.jpg", "5.jpg", "6.jpg"},
		"isPremium":    false,
		"type":         "apartment",
		"rooms":        2,
		"guests":       4,
		"price":        350,
		"amenities":    []string{"Breakfast", "Fridge"},
		"coordinates":  map[string]any{"latitude": 52.370216, "longitude": 4.895168},
	}
}

func testOffer() models.Offer {
	return models.Offer{
		ID:           testOfferID,
		Name:         "Canal View Prinsengracht",
		Description:  "Nice, cozy, warm big bed apartment near the canal.",
		PostDate:     time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC),
		City:         models.CityAmsterdam,
		PreviewImage: "preview.jpg",
		Photos:       []string{"1.jpg", "2.jpg", "3.jpg", "4.jpg", "5.jpg", "6.jpg"},
		Rating:       4.5,
		CommentCount: 2,
		Type:         models.OfferTypeApartment,
		Rooms:        2,
		Guests:       4,
		Price:        350,
		Amenities:    []models.Amenity{models.AmenityBreakfast},
		UserID:       testUserID,
		User:         testUser,
	}
}
