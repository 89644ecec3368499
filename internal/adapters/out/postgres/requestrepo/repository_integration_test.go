package requestrepo_test

import (
	"context"
	"testing"
	"time"

	"fixxo/internal/adapters/out/postgres/requestrepo"
	"fixxo/internal/core/domain/model/kernel"
	"fixxo/internal/core/domain/model/request"
	"fixxo/internal/core/ports"
	"fixxo/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// RequestRepositoryIntegrationTestSuite provides integration tests for RequestRepository
// using PostgreSQL containers to verify database persistence behavior.
type RequestRepositoryIntegrationTestSuite struct {
	suite.Suite
	container         *postgres.PostgresContainer
	db                *gorm.DB
	requestRepository *requestrepo.GormRequestRepository
	tracker           *MockAggregateTracker
}

func (suite *RequestRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&requestrepo.RequestDTO{}))
}

func (suite *RequestRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE requests").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.requestRepository = requestrepo.NewGormRequestRepository(suite.db, suite.tracker)
}

func (suite *RequestRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *RequestRepositoryIntegrationTestSuite) TestAdd_ValidRequest_Success() {
	ctx := context.Background()

	aggregate := suite.createTestRequest(kernel.ServiceIroning)

	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Once()

	err := suite.requestRepository.Add(ctx, aggregate)
	suite.Require().NoError(err)

	suite.assertRequestCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *RequestRepositoryIntegrationTestSuite) TestGet_ExistingRequest_RoundTrips() {
	ctx := context.Background()

	original := suite.createTestRequest(kernel.ServiceNanny)
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.requestRepository.Add(ctx, original))

	retrieved, err := suite.requestRepository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(original.UserID(), retrieved.UserID())
	suite.Equal(original.UserPhone(), retrieved.UserPhone())
	suite.Equal(original.Service(), retrieved.Service())
	suite.Equal(original.Status(), retrieved.Status())
	suite.Nil(retrieved.AssignedRider())
	suite.Equal(original.Details().Area(), retrieved.Details().Area())
	suite.Equal(original.Details().Duration(), retrieved.Details().Duration())
	suite.Require().NotNil(retrieved.Details().Point())
	suite.Equal(original.Details().Point().Latitude(), retrieved.Details().Point().Latitude())
	suite.Equal(original.Details().Point().Longitude(), retrieved.Details().Point().Longitude())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *RequestRepositoryIntegrationTestSuite) TestGet_NonExistentRequest_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.requestRepository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *RequestRepositoryIntegrationTestSuite) TestUpdate_AssignmentAndStatus_Persisted() {
	ctx := context.Background()

	aggregate := suite.createTestRequest(kernel.ServiceGardener)
	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Twice()
	suite.Require().NoError(suite.requestRepository.Add(ctx, aggregate))

	riderID := kernel.NewUUID()
	suite.Require().NoError(aggregate.AssignTo(riderID))
	suite.Require().NoError(suite.requestRepository.Update(ctx, aggregate))

	retrieved, err := suite.requestRepository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(request.Assigned, retrieved.Status())
	suite.Require().NotNil(retrieved.AssignedRider())
	suite.Equal(riderID, *retrieved.AssignedRider())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *RequestRepositoryIntegrationTestSuite) TestGetAll_AssignmentFilter() {
	ctx := context.Background()

	unassigned := suite.createTestRequest(kernel.ServiceIroning)
	assigned := suite.createTestRequest(kernel.ServiceIroning)
	suite.Require().NoError(assigned.AssignTo(kernel.NewUUID()))

	for _, aggregate := range []*request.Request{unassigned, assigned} {
		suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Once()
		suite.Require().NoError(suite.requestRepository.Add(ctx, aggregate))
	}

	all, err := suite.requestRepository.GetAll(ctx, ports.RequestFilter{})
	suite.Require().NoError(err)
	suite.Len(all, 2)

	onlyUnassigned, err := suite.requestRepository.GetAll(ctx, ports.RequestFilter{Assignment: ports.AssignmentUnassigned})
	suite.Require().NoError(err)
	suite.Require().Len(onlyUnassigned, 1)
	suite.Equal(unassigned.ID(), onlyUnassigned[0].ID())

	onlyAssigned, err := suite.requestRepository.GetAll(ctx, ports.RequestFilter{Assignment: ports.AssignmentAssigned})
	suite.Require().NoError(err)
	suite.Require().Len(onlyAssigned, 1)
	suite.Equal(assigned.ID(), onlyAssigned[0].ID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *RequestRepositoryIntegrationTestSuite) TestGetAllByRider_ActiveSortedBeforeTerminal() {
	ctx := context.Background()
	riderID := kernel.NewUUID()

	done := suite.createTestRequest(kernel.ServiceDogWalker)
	suite.Require().NoError(done.AssignTo(riderID))
	suite.Require().NoError(done.OverrideStatus(request.Completed))

	active := suite.createTestRequest(kernel.ServiceDogWalker)
	suite.Require().NoError(active.AssignTo(riderID))

	other := suite.createTestRequest(kernel.ServiceDogWalker)
	suite.Require().NoError(other.AssignTo(kernel.NewUUID()))

	for _, aggregate := range []*request.Request{done, active, other} {
		suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Once()
		suite.Require().NoError(suite.requestRepository.Add(ctx, aggregate))
	}

	tasks, err := suite.requestRepository.GetAllByRider(ctx, riderID)
	suite.Require().NoError(err)
	suite.Require().Len(tasks, 2)
	suite.Equal(active.ID(), tasks[0].ID())
	suite.Equal(done.ID(), tasks[1].ID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *RequestRepositoryIntegrationTestSuite) TestCompleteAllActive_OnlyActiveRowsTouched() {
	ctx := context.Background()
	riderID := kernel.NewUUID()

	first := suite.createTestRequest(kernel.ServiceIroning)
	suite.Require().NoError(first.AssignTo(riderID))

	second := suite.createTestRequest(kernel.ServiceIroning)
	suite.Require().NoError(second.AssignTo(riderID))
	suite.Require().NoError(second.AdvanceTo(request.EnRoute))

	cancelled := suite.createTestRequest(kernel.ServiceIroning)
	suite.Require().NoError(cancelled.AssignTo(riderID))
	suite.Require().NoError(cancelled.AdvanceTo(request.Cancelled))

	for _, aggregate := range []*request.Request{first, second, cancelled} {
		suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Once()
		suite.Require().NoError(suite.requestRepository.Add(ctx, aggregate))
	}

	affected, err := suite.requestRepository.CompleteAllActive(ctx, riderID)
	suite.Require().NoError(err)
	suite.Equal(int64(2), affected)

	count, err := suite.requestRepository.CountActiveByRider(ctx, riderID)
	suite.Require().NoError(err)
	suite.Equal(int64(0), count)

	retrieved, err := suite.requestRepository.Get(ctx, cancelled.ID())
	suite.Require().NoError(err)
	suite.Equal(request.Cancelled, retrieved.Status())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *RequestRepositoryIntegrationTestSuite) TestCountActiveByRider_CountsOnlyNonTerminal() {
	ctx := context.Background()
	riderID := kernel.NewUUID()

	active := suite.createTestRequest(kernel.ServiceNanny)
	suite.Require().NoError(active.AssignTo(riderID))

	done := suite.createTestRequest(kernel.ServiceNanny)
	suite.Require().NoError(done.AssignTo(riderID))
	suite.Require().NoError(done.OverrideStatus(request.Completed))

	for _, aggregate := range []*request.Request{active, done} {
		suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Once()
		suite.Require().NoError(suite.requestRepository.Add(ctx, aggregate))
	}

	count, err := suite.requestRepository.CountActiveByRider(ctx, riderID)
	suite.Require().NoError(err)
	suite.Equal(int64(1), count)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *RequestRepositoryIntegrationTestSuite) createTestRequest(service kernel.ServiceKind) *request.Request {
	point, err := kernel.NewGeoPoint(40.7128, -74.006)
	suite.Require().NoError(err)

	requestedAt := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Second)
	details, err := request.NewDetails("Brooklyn Heights", &point, &requestedAt, "2h")
	suite.Require().NoError(err)

	aggregate, err := request.NewRequest(
		kernel.NewUUID(),
		"user-42",
		"+15550000042",
		service,
		details,
	)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *RequestRepositoryIntegrationTestSuite) assertRequestCount(expected int) {
	var count int64
	suite.Require().NoError(suite.db.Model(&requestrepo.RequestDTO{}).Count(&count).Error)
	suite.Equal(int64(expected), count)
}

func TestRequestRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(RequestRepositoryIntegrationTestSuite))
}
