package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/corporate-ask/internal/entity"
	"github.com/xavierca1/corporate-ask/internal/infra/queue"
)

var fixedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) List(ctx context.Context) ([]*entity.Lead, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPaidCustomerRepository
type MockPaidCustomerRepository struct {
	mock.Mock
}

func (m *MockPaidCustomerRepository) Create(ctx context.Context, c *entity.PaidCustomer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
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
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCouponRepository
type MockCouponRepository struct {
	mock.Mock
}

func (m *MockCouponRepository) Create(ctx context.Context, c *entity.Coupon) error {
	args := m.Called(ctx, c)
	return args.Error(0)
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
	args := m.Called(ctx, u)
	return args.Error(0)
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

// MockQueueProducer
type MockQueueProducer struct {
	mock.Mock
}

func (m *MockQueueProducer) PublishPaymentSubmitted(ctx context.Context, payload queue.PaymentSubmittedPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

// MockRowDeleter
type MockRowDeleter struct {
	mock.Mock
}

func (m *MockRowDeleter) DeleteRow(ctx context.Context, table entity.Table, id string) error {
	args := m.Called(ctx, table, id)
	return args.Error(0)
}

// fakeWizardStore keeps wizards in memory for use-case tests.
type fakeWizardStore struct {
	mu      sync.Mutex
	wizards map[string]BookingWizard
}

func newFakeWizardStore() *fakeWizardStore {
	return &fakeWizardStore{wizards: map[string]BookingWizard{}}
}

func (s *fakeWizardStore) SaveWizard(_ context.Context, w *BookingWizard) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wizards[w.ID] = *w
	return nil
}

func (s *fakeWizardStore) LoadWizard(_ context.Context, id string) (*BookingWizard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.wizards[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	return &w, nil
}

func (s *fakeWizardStore) DeleteWizard(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.wizards, id)
	return nil
}
