package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/corporate-ask/internal/entity"
	"github.com/xavierca1/corporate-ask/internal/infra/auth"
	"github.com/xavierca1/corporate-ask/internal/infra/http/handlers"
	"github.com/xavierca1/corporate-ask/internal/infra/http/middleware"
	"github.com/xavierca1/corporate-ask/internal/infra/session"
	"github.com/xavierca1/corporate-ask/internal/usecase"
)

const testSecret = "test-secret"

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	return m.Called(ctx, lead).Error(0)
}

func (m *MockLeadRepository) List(ctx context.Context) ([]*entity.Lead, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockPaidCustomerRepository
type MockPaidCustomerRepository struct {
	mock.Mock
}

func (m *MockPaidCustomerRepository) Create(ctx context.Context, c *entity.PaidCustomer) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockPaidCustomerRepository) List(ctx context.Context) ([]*entity.PaidCustomer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.PaidCustomer), args.Error(1)
}

func (m *MockPaidCustomerRepository) Update(ctx context.Context, id string, u entity.PaidCustomerUpdate) (*entity.PaidCustomer, error) {
	args := m.Called(ctx, id, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PaidCustomer), args.Error(1)
}

func (m *MockPaidCustomerRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockCouponRepository
type MockCouponRepository struct {
	mock.Mock
}

func (m *MockCouponRepository) Create(ctx context.Context, c *entity.Coupon) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCouponRepository) FindByCode(ctx context.Context, code string) (*entity.Coupon, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Coupon), args.Error(1)
}

func (m *MockCouponRepository) List(ctx context.Context) ([]*entity.Coupon, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Coupon), args.Error(1)
}

func (m *MockCouponRepository) Update(ctx context.Context, id string, u entity.CouponUpdate) (*entity.Coupon, error) {
	args := m.Called(ctx, id, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Coupon), args.Error(1)
}

func (m *MockCouponRepository) Redeem(ctx context.Context, id string) (*entity.Coupon, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Coupon), args.Error(1)
}

func (m *MockCouponRepository) DeactivateExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockUserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *entity.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, id string, u entity.UserUpdate) (*entity.User, error) {
	args := m.Called(ctx, id, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

// MockRowDeleter
type MockRowDeleter struct {
	mock.Mock
}

func (m *MockRowDeleter) DeleteRow(ctx context.Context, table entity.Table, id string) error {
	return m.Called(ctx, table, id).Error(0)
}

type testServer struct {
	handler   http.Handler
	leads     *MockLeadRepository
	customers *MockPaidCustomerRepository
	coupons   *MockCouponRepository
	users     *MockUserRepository
	deleter   *MockRowDeleter
	sessions  *session.MemoryStore
	tokens    *auth.JWTManager
	admin     *handlers.AdminHandler
}

// newTestServer wires the full router over mocked repositories and an
// in-memory session store. The bootstrap admin is admin/secret.
func newTestServer(t *testing.T) *testServer {
	t.Helper()

	s := &testServer{
		leads:     new(MockLeadRepository),
		customers: new(MockPaidCustomerRepository),
		coupons:   new(MockCouponRepository),
		users:     new(MockUserRepository),
		deleter:   new(MockRowDeleter),
		sessions:  session.NewMemoryStore(),
		tokens:    auth.NewJWTManager(testSecret, time.Hour),
	}

	bookingUC := usecase.NewBookingUseCase(s.sessions, s.leads, s.customers, s.coupons, nil, "01681742043")
	authUC := usecase.NewAuthUseCase(s.users, &auth.BcryptHasher{Cost: 4}, s.tokens, s.sessions,
		usecase.BootstrapAdmin{Username: "admin", Password: "secret"})
	adminUC := usecase.NewAdminUseCase(s.leads, s.customers, s.users, s.coupons, s.deleter)
	s.admin = handlers.NewAdminHandler(adminUC, authUC)

	rt := &handlers.Router{
		Landing:        handlers.NewLandingHandler("01681742043"),
		Health:         handlers.NewHealthHandler(nil, s.sessions, nil, "test"),
		Booking:        handlers.NewBookingHandler(bookingUC),
		Auth:           handlers.NewAuthHandler(authUC),
		Admin:          s.admin,
		Authenticator:  middleware.NewAuthenticator(s.tokens, s.sessions),
		Limiter:        handlers.NewRateLimiter(1000, time.Minute),
		AllowedOrigins: []string{"*"},
	}
	s.handler = rt.Handler()
	return s
}

func (s *testServer) token(t *testing.T, role entity.Role) string {
	t.Helper()
	token, _, err := s.tokens.Issue("someone", role)
	require.NoError(t, err)
	return token
}

func (s *testServer) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}
