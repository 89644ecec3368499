package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fixxo/internal/core/application/usecases/commands"
	"fixxo/internal/core/application/usecases/queries"
	"fixxo/internal/core/domain/model/kernel"
	"fixxo/internal/core/domain/model/request"
	"fixxo/internal/core/domain/model/rider"
	"fixxo/internal/core/ports"
	"fixxo/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRiderRepository struct{ mock.Mock }

func (m *MockRiderRepository) Add(ctx context.Context, r *rider.Rider) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRiderRepository) Update(ctx context.Context, r *rider.Rider) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRiderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRiderRepository) Get(ctx context.Context, id kernel.UUID) (*rider.Rider, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rider.Rider), args.Error(1)
}

func (m *MockRiderRepository) GetByUsername(ctx context.Context, username string) (*rider.Rider, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rider.Rider), args.Error(1)
}

func (m *MockRiderRepository) GetAll(ctx context.Context, filter ports.RiderFilter) ([]*rider.Rider, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*rider.Rider), args.Error(1)
}

type MockRequestRepository struct{ mock.Mock }

func (m *MockRequestRepository) Add(ctx context.Context, r *request.Request) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRequestRepository) Update(ctx context.Context, r *request.Request) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRequestRepository) Get(ctx context.Context, id kernel.UUID) (*request.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*request.Request), args.Error(1)
}

func (m *MockRequestRepository) GetAll(ctx context.Context, filter ports.RequestFilter) ([]*request.Request, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*request.Request), args.Error(1)
}

func (m *MockRequestRepository) GetAllByRider(ctx context.Context, riderID kernel.UUID) ([]*request.Request, error) {
	args := m.Called(ctx, riderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*request.Request), args.Error(1)
}

func (m *MockRequestRepository) CompleteAllActive(ctx context.Context, riderID kernel.UUID) (int64, error) {
	args := m.Called(ctx, riderID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRequestRepository) CountActiveByRider(ctx context.Context, riderID kernel.UUID) (int64, error) {
	args := m.Called(ctx, riderID)
	return args.Get(0).(int64), args.Error(1)
}

// MockUnitOfWork satisfies both ports.UnitOfWork and the commands package
// unit of work interfaces.
type MockUnitOfWork struct {
	mock.Mock
	riderRepo   *MockRiderRepository
	requestRepo *MockRequestRepository
}

func (m *MockUnitOfWork) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUnitOfWork) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUnitOfWork) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUnitOfWork) RiderRepository() ports.RiderRepository     { return m.riderRepo }
func (m *MockUnitOfWork) RequestRepository() ports.RequestRepository { return m.requestRepo }

type MockUnitOfWorkFactory struct{ uow *MockUnitOfWork }

func (f *MockUnitOfWorkFactory) Create() ports.UnitOfWork { return f.uow }

type MockUoWFactory struct{ uow *MockUnitOfWork }

func (f *MockUoWFactory) Create() commands.UoW { return f.uow }

func newMockUnitOfWork() *MockUnitOfWork {
	return &MockUnitOfWork{
		riderRepo:   new(MockRiderRepository),
		requestRepo: new(MockRequestRepository),
	}
}

func newTestRider(t *testing.T) (*rider.Rider, string) {
	t.Helper()

	credentials, token, err := rider.GenerateCredentials("Asha Patel")
	require.NoError(t, err)

	riderEntity, err := rider.NewRider(
		kernel.NewUUID(),
		"Asha Patel",
		"+15550000001",
		kernel.ServiceIroning,
		"12 High Street",
		nil,
		credentials,
	)
	require.NoError(t, err)
	return riderEntity, token
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewRequestValidator()
	return e
}

func TestRiderLogin(t *testing.T) {
	riderEntity, token := newTestRider(t)

	newLoginContext := func(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/rider/login", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		return e.NewContext(req, rec), rec
	}

	newLoginServer := func(uow *MockUnitOfWork) *Server {
		return NewServer(
			commands.CreateRiderCommandHandler{},
			commands.UpdateRiderCommandHandler{},
			commands.DeleteRiderCommandHandler{},
			commands.SetRiderAvailabilityCommandHandler{},
			commands.CreateRequestCommandHandler{},
			commands.AssignRiderCommandHandler{},
			commands.OverrideRequestStatusCommandHandler{},
			commands.AdvanceRequestCommandHandler{},
			commands.CompleteAllRequestsCommandHandler{},
			queries.ListRidersQueryHandler{},
			queries.ListRequestsQueryHandler{},
			queries.RiderTasksQueryHandler{},
			queries.DashboardStatsQueryHandler{},
			&MockUnitOfWorkFactory{uow: uow},
			NewTokenIssuer("test-secret"),
		)
	}

	t.Run("should issue verifiable token for valid credentials", func(t *testing.T) {
		uow := newMockUnitOfWork()
		uow.riderRepo.On("GetByUsername", mock.Anything, riderEntity.Credentials().Username()).
			Return(riderEntity, nil).Once()

		server := newLoginServer(uow)
		e := newEcho()
		body, err := json.Marshal(LoginRequest{
			Username: riderEntity.Credentials().Username(),
			Token:    token,
		})
		require.NoError(t, err)
		ctx, rec := newLoginContext(e, string(body))

		require.NoError(t, server.RiderLogin(ctx))
		require.Equal(t, http.StatusOK, rec.Code)

		var response LoginResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, riderEntity.ID().String(), response.RiderID)
		assert.Equal(t, "Asha Patel", response.Name)

		parsed, err := NewTokenIssuer("test-secret").Verify(response.AccessToken)
		require.NoError(t, err)
		assert.True(t, riderEntity.ID().IsEqual(parsed))

		uow.riderRepo.AssertExpectations(t)
	})

	t.Run("should reject wrong token", func(t *testing.T) {
		uow := newMockUnitOfWork()
		uow.riderRepo.On("GetByUsername", mock.Anything, riderEntity.Credentials().Username()).
			Return(riderEntity, nil).Once()

		server := newLoginServer(uow)
		e := newEcho()
		body, err := json.Marshal(LoginRequest{
			Username: riderEntity.Credentials().Username(),
			Token:    "wrong-token-1",
		})
		require.NoError(t, err)
		ctx, rec := newLoginContext(e, string(body))

		require.NoError(t, server.RiderLogin(ctx))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("should reject unknown username identically", func(t *testing.T) {
		uow := newMockUnitOfWork()
		uow.riderRepo.On("GetByUsername", mock.Anything, "nobody_x1y2z").
			Return(nil, errs.NewObjectNotFoundError("username", "nobody_x1y2z")).Once()

		server := newLoginServer(uow)
		e := newEcho()
		body, err := json.Marshal(LoginRequest{Username: "nobody_x1y2z", Token: "whatever-123"})
		require.NoError(t, err)
		ctx, rec := newLoginContext(e, string(body))

		require.NoError(t, server.RiderLogin(ctx))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAdvanceRequestEndpoint(t *testing.T) {
	riderEntity, _ := newTestRider(t)
	riderEntity.SetAvailability(false)

	point, err := kernel.NewGeoPoint(40.7128, -74.006)
	require.NoError(t, err)
	requestedAt := time.Now().UTC().Add(2 * time.Hour)
	details, err := request.NewDetails("Brooklyn Heights", &point, &requestedAt, "2h")
	require.NoError(t, err)

	requestEntity, err := request.NewRequest(
		kernel.NewUUID(), "user-42", "+15550000042", kernel.ServiceIroning, details,
	)
	require.NoError(t, err)
	require.NoError(t, requestEntity.AssignTo(riderEntity.ID()))

	uow := newMockUnitOfWork()
	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("Commit", mock.Anything).Return(nil).Once()
	uow.On("Rollback", mock.Anything).Return(nil).Once()
	uow.requestRepo.On("Get", mock.Anything, requestEntity.ID()).Return(requestEntity, nil).Once()
	uow.riderRepo.On("Get", mock.Anything, riderEntity.ID()).Return(riderEntity, nil).Once()
	uow.requestRepo.On("Update", mock.Anything, requestEntity).Return(nil).Once()
	uow.riderRepo.On("Update", mock.Anything, riderEntity).Return(nil).Once()

	advanceHandler := commands.NewAdvanceRequestCommandHandler(&MockUoWFactory{uow: uow})

	server := NewServer(
		commands.CreateRiderCommandHandler{},
		commands.UpdateRiderCommandHandler{},
		commands.DeleteRiderCommandHandler{},
		commands.SetRiderAvailabilityCommandHandler{},
		commands.CreateRequestCommandHandler{},
		commands.AssignRiderCommandHandler{},
		commands.OverrideRequestStatusCommandHandler{},
		advanceHandler,
		commands.CompleteAllRequestsCommandHandler{},
		queries.ListRidersQueryHandler{},
		queries.ListRequestsQueryHandler{},
		queries.RiderTasksQueryHandler{},
		queries.DashboardStatsQueryHandler{},
		&MockUnitOfWorkFactory{uow: uow},
		NewTokenIssuer("test-secret"),
	)

	e := newEcho()
	req := httptest.NewRequest(
		http.MethodPost,
		"/api/v1/rider/requests/"+requestEntity.ID().String()+"/advance",
		strings.NewReader(`{"status":"en_route"}`),
	)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.SetParamNames("id")
	ctx.SetParamValues(requestEntity.ID().String())
	ctx.Set(riderIDContextKey, riderEntity.ID())

	require.NoError(t, server.AdvanceRequest(ctx))
	require.Equal(t, http.StatusOK, rec.Code)

	var response AdvanceRequestResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "en_route", response.Status)
	require.NotNil(t, response.Notification)
	assert.Contains(t, response.Notification.Text, requestEntity.ID().String()[:8])
	assert.Equal(t, "+15550000042", response.Notification.CustomerPhone)

	uow.AssertExpectations(t)
	uow.requestRepo.AssertExpectations(t)
	uow.riderRepo.AssertExpectations(t)
}
