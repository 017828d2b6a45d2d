package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	apiMiddleware "github.com/tenantry/contacts-api/internal/api/middleware"
	"github.com/tenantry/contacts-api/internal/mocks"
	"github.com/tenantry/contacts-api/internal/service"
	"github.com/tenantry/contacts-api/internal/service/auth"
	"golang.org/x/crypto/bcrypt"
)

// testEnv bundles the router and backing stores for handler tests. The
// router carries the same routes and middleware as the production server,
// wired over in-memory stores.
type testEnv struct {
	router   *chi.Mux
	users    *mocks.MockUserStore
	sessions *mocks.MockSessionStore
	contacts *mocks.MockContactStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	users := mocks.NewMockUserStore()
	sessions := mocks.NewMockSessionStore()
	contacts := mocks.NewMockContactStore()
	addresses := mocks.NewMockAddressStore(contacts)

	sessionService := auth.NewSessionService(sessions, users, auth.NewRandomTokenGenerator(), nil)
	userService := service.NewUserService(
		users,
		auth.NewBcryptHasher(bcrypt.MinCost),
		auth.NewBcryptVerifier(),
		nil,
		nil,
	)
	contactService := service.NewContactService(contacts, nil)
	addressService := service.NewAddressService(addresses, nil)

	userHandler := NewUserHandler(userService, sessionService, nil)
	contactHandler := NewContactHandler(contactService, nil)
	addressHandler := NewAddressHandler(addressService, nil)
	authMiddleware := apiMiddleware.NewAuthMiddleware(sessionService)

	router := chi.NewRouter()
	router.Route("/api", func(r chi.Router) {
		r.Post("/users", userHandler.Register)
		r.Post("/users/login", userHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/users/current", userHandler.Current)
			r.Patch("/users/current", userHandler.Update)
			r.Delete("/users/current", userHandler.Logout)

			r.Post("/contacts", contactHandler.Create)
			r.Get("/contacts", contactHandler.Search)
			r.Get("/contacts/{contactId}", contactHandler.Get)
			r.Put("/contacts/{contactId}", contactHandler.Update)
			r.Delete("/contacts/{contactId}", contactHandler.Delete)

			r.Post("/contacts/{contactId}/addresses", addressHandler.Create)
			r.Get("/contacts/{contactId}/addresses", addressHandler.List)
			r.Get("/contacts/{contactId}/addresses/{addressId}", addressHandler.Get)
			r.Put("/contacts/{contactId}/addresses/{addressId}", addressHandler.Update)
			r.Delete("/contacts/{contactId}/addresses/{addressId}", addressHandler.Delete)
		})
	})

	return &testEnv{
		router:   router,
		users:    users,
		sessions: sessions,
		contacts: contacts,
	}
}

// doRequest issues a request against the test router. A non-empty token
// goes into the Authorization header as the bare value.
func (env *testEnv) doRequest(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	recorder := httptest.NewRecorder()
	env.router.ServeHTTP(recorder, req)
	return recorder
}

// decodeEnvelope unmarshals a response body into the generic envelope
// shape so tests can inspect data, errors and paging uniformly.
type envelope struct {
	Data   json.RawMessage `json:"data"`
	Errors string          `json:"errors"`
	Paging *struct {
		CurrentPage int `json:"current_page"`
		Size        int `json:"size"`
		TotalPage   int `json:"total_page"`
	} `json:"paging"`
}

func decodeEnvelope(t *testing.T, recorder *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &env))
	return env
}

// registerAndLogin creates an account and returns its session token.
func (env *testEnv) registerAndLogin(t *testing.T, username, name, password string) string {
	t.Helper()

	recorder := env.doRequest(t, http.MethodPost, "/api/users", "", map[string]string{
		"username": username,
		"name":     name,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	recorder = env.doRequest(t, http.MethodPost, "/api/users/login", "", map[string]string{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var login LoginResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, recorder).Data, &login))
	require.NotEmpty(t, login.Token)
	return login.Token
}

// createContact creates a contact through the API and returns its response shape.
func (env *testEnv) createContact(t *testing.T, token string, body map[string]any) ContactResponse {
	t.Helper()

	recorder := env.doRequest(t, http.MethodPost, "/api/contacts", token, body)
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	var contact ContactResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, recorder).Data, &contact))
	return contact
}
