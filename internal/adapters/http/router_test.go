package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/bistrolabs/ordering-service/internal/adapters/security"
	"github.com/bistrolabs/ordering-service/internal/application"
	"github.com/bistrolabs/ordering-service/internal/domain"
	"github.com/bistrolabs/ordering-service/internal/ports"
)

type memUsers struct {
	mu    sync.Mutex
	users map[string]domain.User
}

func newMemUsers() *memUsers {
	return &memUsers{users: map[string]domain.User{}}
}

func (m *memUsers) Create(_ context.Context, user domain.User) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[user.Email]; ok {
		return domain.User{}, domain.ErrConflict
	}
	m.users[user.Email] = user
	return user, nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[email]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return user, nil
}

func (m *memUsers) GetByID(_ context.Context, userID uuid.UUID) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.users {
		if user.UserID == userID {
			return user, nil
		}
	}
	return domain.User{}, domain.ErrNotFound
}

func (m *memUsers) List(_ context.Context) ([]domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.User, 0, len(m.users))
	for _, user := range m.users {
		out = append(out, user)
	}
	return out, nil
}

func (m *memUsers) Update(_ context.Context, userID uuid.UUID, fields ports.UserUpdate) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for email, user := range m.users {
		if user.UserID != userID {
			continue
		}
		if fields.Name != nil {
			user.Name = *fields.Name
		}
		if fields.Role != nil {
			user.Role = *fields.Role
		}
		m.users[email] = user
		return 1, nil
	}
	return 0, nil
}

func (m *memUsers) Delete(_ context.Context, userID uuid.UUID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for email, user := range m.users {
		if user.UserID == userID {
			delete(m.users, email)
			return 1, nil
		}
	}
	return 0, nil
}

func (m *memUsers) setRole(email, role string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user := m.users[email]
	user.Role = role
	m.users[email] = user
}

type memCarts struct {
	mu      sync.Mutex
	entries map[uuid.UUID]domain.CartEntry
}

func newMemCarts() *memCarts {
	return &memCarts{entries: map[uuid.UUID]domain.CartEntry{}}
}

func (m *memCarts) Insert(_ context.Context, entry domain.CartEntry) (domain.CartEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[entry.EntryID] = entry
	return entry, nil
}

func (m *memCarts) ListByEmail(_ context.Context, email string) ([]domain.CartEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.CartEntry{}
	for _, entry := range m.entries {
		if entry.Email == email {
			out = append(out, entry)
		}
	}
	return out, nil
}

func (m *memCarts) DeleteByID(_ context.Context, entryID uuid.UUID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[entryID]; !ok {
		return 0, nil
	}
	delete(m.entries, entryID)
	return 1, nil
}

func (m *memCarts) DeleteByIDs(_ context.Context, entryIDs []uuid.UUID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var deleted int64
	for _, id := range entryIDs {
		if _, ok := m.entries[id]; ok {
			delete(m.entries, id)
			deleted++
		}
	}
	return deleted, nil
}

type routerFixture struct {
	router http.Handler
	svc    *application.Service
	users  *memUsers
	carts  *memCarts
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()
	signer, err := security.NewHMACSigner("router-test-secret")
	if err != nil {
		t.Fatalf("new signer: %v", err)
	}

	users := newMemUsers()
	carts := newMemCarts()
	svc := application.NewService(application.Dependencies{
		Config: application.Config{
			ServiceName: "ordering-service-test",
			TokenTTL:    time.Hour,
		},
		Users:  users,
		Carts:  carts,
		Tokens: signer,
	})
	return &routerFixture{
		router: NewRouter(NewHandler(svc)),
		svc:    svc,
		users:  users,
		carts:  carts,
	}
}

func (f *routerFixture) issueToken(t *testing.T, email string) string {
	t.Helper()
	res, err := f.svc.IssueToken(context.Background(), application.IssueTokenRequest{Email: email})
	if err != nil {
		t.Fatalf("issue token for %s: %v", email, err)
	}
	return res.Token
}

func (f *routerFixture) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var payload *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		payload = bytes.NewBuffer(raw)
	} else {
		payload = &bytes.Buffer{}
	}

	req := httptest.NewRequest(method, path, payload)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Status  string          `json:"status"`
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return env
}

func TestAuthGateRequiresBearerCredential(t *testing.T) {
	t.Parallel()
	f := newRouterFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/carts", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("no header: status = %d, want 401", rec.Code)
	}
	if env := decodeEnvelope(t, rec); env.Code != "MISSING_CREDENTIAL" {
		t.Fatalf("no header: code = %q", env.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/carts", nil)
	req.Header.Set("Authorization", "Token abc123")
	rec = httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("wrong scheme: status = %d, want 401", rec.Code)
	}
	if env := decodeEnvelope(t, rec); env.Code != "MISSING_CREDENTIAL" {
		t.Fatalf("wrong scheme: code = %q", env.Code)
	}

	rec = f.do(t, http.MethodGet, "/api/v1/carts", "not.a.token", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("bad token: status = %d, want 401", rec.Code)
	}
	if env := decodeEnvelope(t, rec); env.Code != "INVALID_TOKEN" {
		t.Fatalf("bad token: code = %q", env.Code)
	}
}

func TestAdminGateIgnoresTokenRoleClaim(t *testing.T) {
	t.Parallel()
	f := newRouterFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/users", "", map[string]string{"email": "chef@example.com", "name": "Chef"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: status = %d, want 201", rec.Code)
	}

	// Token claims admin, the store says user: the store wins.
	res, err := f.svc.IssueToken(context.Background(), application.IssueTokenRequest{Email: "chef@example.com", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	rec = f.do(t, http.MethodGet, "/api/v1/users", res.Token, nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("non-admin: status = %d, want 403", rec.Code)
	}
	if env := decodeEnvelope(t, rec); env.Code != "INSUFFICIENT_ROLE" {
		t.Fatalf("non-admin: code = %q", env.Code)
	}

	// Promotion is visible on the next request with the same token.
	f.users.setRole("chef@example.com", domain.RoleAdmin)
	rec = f.do(t, http.MethodGet, "/api/v1/users", res.Token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("promoted: status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	env := decodeEnvelope(t, rec)
	var listed []domain.User
	if err := json.Unmarshal(env.Data, &listed); err != nil {
		t.Fatalf("decode user list: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("listed %d users, want 1", len(listed))
	}
}

func TestRegisterEndpointIsIdempotent(t *testing.T) {
	t.Parallel()
	f := newRouterFixture(t)
	body := map[string]string{"email": "diner@example.com"}

	rec := f.do(t, http.MethodPost, "/api/v1/users", "", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("first register: status = %d, want 201", rec.Code)
	}

	rec = f.do(t, http.MethodPost, "/api/v1/users", "", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("duplicate register: status = %d, want 200", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	var res application.RegisterUserResponse
	if err := json.Unmarshal(env.Data, &res); err != nil {
		t.Fatalf("decode register response: %v", err)
	}
	if res.Created {
		t.Fatal("duplicate register reported as created")
	}
}

func TestAdminStatusEndpointOwnEmailOnly(t *testing.T) {
	t.Parallel()
	f := newRouterFixture(t)

	f.do(t, http.MethodPost, "/api/v1/users", "", map[string]string{"email": "diner@example.com"})
	token := f.issueToken(t, "diner@example.com")

	rec := f.do(t, http.MethodGet, "/api/v1/users/admin/diner@example.com", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("own status: status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	env := decodeEnvelope(t, rec)
	var res application.AdminStatusResponse
	if err := json.Unmarshal(env.Data, &res); err != nil {
		t.Fatalf("decode status response: %v", err)
	}
	if res.Admin {
		t.Fatal("plain user reported as admin")
	}

	rec = f.do(t, http.MethodGet, "/api/v1/users/admin/other@example.com", token, nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("foreign status: status = %d, want 403", rec.Code)
	}
}

func TestBodyDecodingRejectsUnknownFields(t *testing.T) {
	t.Parallel()
	f := newRouterFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/auth/token", "", map[string]any{
		"email":   "diner@example.com",
		"isAdmin": true,
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unknown field: status = %d, want 400", rec.Code)
	}
	if env := decodeEnvelope(t, rec); env.Code != "VALIDATION_ERROR" {
		t.Fatalf("unknown field: code = %q", env.Code)
	}
}

func TestHealthEndpoints(t *testing.T) {
	t.Parallel()
	f := newRouterFixture(t)

	for _, path := range []string{"/healthz", "/readyz"} {
		rec := f.do(t, http.MethodGet, path, "", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: status = %d, want 200", path, rec.Code)
		}
	}
}
