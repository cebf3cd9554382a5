package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	userdomain "diet-profile-go/internal/domain/user"
	"github.com/go-chi/chi/v5"
)

type fakeResolver struct {
	users map[string]userdomain.User
	err   error
}

func (f fakeResolver) Resolve(ctx context.Context, token string) (*userdomain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	user, ok := f.users[token]
	if !ok {
		return nil, userdomain.ErrUnauthenticated
	}
	return &user, nil
}

func echoUser(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusTeapot)
		return
	}
	_, _ = w.Write([]byte(user.Email))
}

func TestBearerAuth(t *testing.T) {
	resolver := fakeResolver{users: map[string]userdomain.User{"good": {ID: 1, Email: "a@x.com"}}}
	handler := NewBearerAuth(resolver, nil).Middleware(http.HandlerFunc(echoUser))

	cases := []struct {
		name   string
		header string
		status int
	}{
		{"valid", "Bearer good", http.StatusOK},
		{"lowercase scheme", "bearer good", http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic good", http.StatusUnauthorized},
		{"unknown token", "Bearer bad", http.StatusUnauthorized},
		{"extra parts", "Bearer good extra", http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/user/allergies", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tc.status {
				t.Fatalf("expected %d, got %d (%s)", tc.status, rec.Code, rec.Body.String())
			}
			if tc.status == http.StatusOK && rec.Body.String() != "a@x.com" {
				t.Fatalf("expected user in context, got %q", rec.Body.String())
			}
		})
	}
}

func TestBearerAuthResolverFailures(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{userdomain.ErrUserNotFound, http.StatusNotFound},
		{errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		handler := NewBearerAuth(fakeResolver{err: tc.err}, nil).Middleware(http.HandlerFunc(echoUser))
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer anything")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != tc.status {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.status, rec.Code)
		}
	}
}

func TestRequireOwner(t *testing.T) {
	resolver := fakeResolver{users: map[string]userdomain.User{"good": {ID: 7, Email: "a@x.com"}}}
	r := chi.NewRouter()
	r.With(NewBearerAuth(resolver, nil).Middleware, RequireOwner("id")).
		Get("/user_info/{id}", echoUser)

	cases := []struct {
		path   string
		status int
	}{
		{"/user_info/7", http.StatusOK},
		{"/user_info/8", http.StatusForbidden},
		{"/user_info/abc", http.StatusBadRequest},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, tc.path, nil)
		req.Header.Set("Authorization", "Bearer good")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != tc.status {
			t.Fatalf("%s: expected %d, got %d", tc.path, tc.status, rec.Code)
		}
	}
}

func TestAuthFailuresUseErrorEnvelope(t *testing.T) {
	cases := []struct {
		resolver fakeResolver
		header   string
		code     string
	}{
		{fakeResolver{}, "", "unauthenticated"},
		{fakeResolver{err: userdomain.ErrUserNotFound}, "Bearer anything", "user_not_found"},
		{fakeResolver{err: errors.New("db down")}, "Bearer anything", "internal_error"},
	}

	for _, tc := range cases {
		handler := NewBearerAuth(tc.resolver, nil).Middleware(http.HandlerFunc(echoUser))
		req := httptest.NewRequest(http.MethodGet, "/user/allergies", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		var body struct {
			Error struct {
				Code    string `json:"code"`
				Message string `json:"message"`
			} `json:"error"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("%s: decode body: %v (%s)", tc.code, err, rec.Body.String())
		}
		if body.Error.Code != tc.code || body.Error.Message == "" {
			t.Fatalf("expected code %q with message, got %+v", tc.code, body.Error)
		}
		if ct := rec.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
			t.Fatalf("%s: unexpected content type %q", tc.code, ct)
		}
	}
}
