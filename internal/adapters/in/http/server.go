package http

import (
	"errors"
	"net/http"

	"fixxo/internal/core/application/usecases/commands"
	"fixxo/internal/core/application/usecases/queries"
	"fixxo/internal/core/domain/model/kernel"
	"fixxo/internal/core/domain/model/request"
	"fixxo/internal/core/domain/services"
	"fixxo/internal/core/ports"
	"fixxo/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
// Admin routes require an allow-listed principal; rider routes require a
// bearer token issued by the login endpoint.
type Server struct {
	// Command handlers
	createRiderHandler          commands.CreateRiderCommandHandler
	updateRiderHandler          commands.UpdateRiderCommandHandler
	deleteRiderHandler          commands.DeleteRiderCommandHandler
	setRiderAvailabilityHandler commands.SetRiderAvailabilityCommandHandler
	createRequestHandler        commands.CreateRequestCommandHandler
	assignRiderHandler          commands.AssignRiderCommandHandler
	overrideStatusHandler       commands.OverrideRequestStatusCommandHandler
	advanceRequestHandler       commands.AdvanceRequestCommandHandler
	completeAllHandler          commands.CompleteAllRequestsCommandHandler

	// Query handlers
	listRidersHandler     queries.ListRidersQueryHandler
	listRequestsHandler   queries.ListRequestsQueryHandler
	riderTasksHandler     queries.RiderTasksQueryHandler
	dashboardStatsHandler queries.DashboardStatsQueryHandler

	// Login needs direct rider lookup outside a command
	uowFactory ports.UnitOfWorkFactory
	tokens     *TokenIssuer
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	createRiderHandler commands.CreateRiderCommandHandler,
	updateRiderHandler commands.UpdateRiderCommandHandler,
	deleteRiderHandler commands.DeleteRiderCommandHandler,
	setRiderAvailabilityHandler commands.SetRiderAvailabilityCommandHandler,
	createRequestHandler commands.CreateRequestCommandHandler,
	assignRiderHandler commands.AssignRiderCommandHandler,
	overrideStatusHandler commands.OverrideRequestStatusCommandHandler,
	advanceRequestHandler commands.AdvanceRequestCommandHandler,
	completeAllHandler commands.CompleteAllRequestsCommandHandler,
	listRidersHandler queries.ListRidersQueryHandler,
	listRequestsHandler queries.ListRequestsQueryHandler,
	riderTasksHandler queries.RiderTasksQueryHandler,
	dashboardStatsHandler queries.DashboardStatsQueryHandler,
	uowFactory ports.UnitOfWorkFactory,
	tokens *TokenIssuer,
) *Server {
	return &Server{
		createRiderHandler:          createRiderHandler,
		updateRiderHandler:          updateRiderHandler,
		deleteRiderHandler:          deleteRiderHandler,
		setRiderAvailabilityHandler: setRiderAvailabilityHandler,
		createRequestHandler:        createRequestHandler,
		assignRiderHandler:          assignRiderHandler,
		overrideStatusHandler:       overrideStatusHandler,
		advanceRequestHandler:       advanceRequestHandler,
		completeAllHandler:          completeAllHandler,
		listRidersHandler:           listRidersHandler,
		listRequestsHandler:         listRequestsHandler,
		riderTasksHandler:           riderTasksHandler,
		dashboardStatsHandler:       dashboardStatsHandler,
		uowFactory:                  uowFactory,
		tokens:                      tokens,
	}
}

// RegisterRoutes wires every route onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo, adminGuard *AdminGuard, riderAuth *RiderAuth) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	admin := api.Group("", adminGuard.Middleware)
	admin.POST("/riders", s.CreateRider)
	admin.GET("/riders", s.GetRiders)
	admin.PUT("/riders/:id", s.UpdateRider)
	admin.DELETE("/riders/:id", s.DeleteRider)
	admin.POST("/riders/:id/availability", s.SetRiderAvailability)
	admin.POST("/requests", s.CreateRequest)
	admin.GET("/requests", s.GetRequests)
	admin.POST("/requests/:id/assign", s.AssignRider)
	admin.POST("/requests/:id/override-status", s.OverrideRequestStatus)
	admin.GET("/dashboard/stats", s.GetDashboardStats)

	api.POST("/rider/login", s.RiderLogin)

	portal := api.Group("/rider", riderAuth.Middleware)
	portal.GET("/tasks", s.GetRiderTasks)
	portal.POST("/requests/:id/advance", s.AdvanceRequest)
	portal.POST("/requests/complete-all", s.CompleteAllRequests)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateRider handles POST /api/v1/riders - registers a rider and returns
// the generated portal credentials.
func (s *Server) CreateRider(ctx echo.Context) error {
	var body CreateRiderRequest
	if !bindBody(ctx, &body) {
		return nil
	}

	service, err := kernel.ServiceKindFromString(body.Service)
	if err != nil {
		return badRequest(ctx, err)
	}

	location, err := toGeoPoint(body.Location)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCreateRiderCommand(body.Name, body.Phone, service, body.Address, location)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.createRiderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapCommandError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateRiderResponse{
		ID:           cmd.RiderID().String(),
		Username:     cmd.Username(),
		OneTimeToken: cmd.OneTimeToken(),
	})
}

// GetRiders handles GET /api/v1/riders with optional service, available,
// and search filters.
func (s *Server) GetRiders(ctx echo.Context) error {
	service := kernel.ServiceUnknown
	if raw := ctx.QueryParam("service"); raw != "" {
		parsed, err := kernel.ServiceKindFromString(raw)
		if err != nil {
			return badRequest(ctx, err)
		}
		service = parsed
	}
	availableOnly := ctx.QueryParam("available") == "true"

	query, err := queries.NewListRidersQuery(service, availableOnly, ctx.QueryParam("search"))
	if err != nil {
		return badRequest(ctx, err)
	}

	rows, err := s.listRidersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve riders")
	}

	response := make([]RiderResponse, len(rows))
	for i, row := range rows {
		response[i] = RiderResponse{
			ID:          row.ID.String(),
			Name:        row.Name,
			Phone:       row.Phone,
			Service:     row.Service,
			IsAvailable: row.IsAvailable,
			Address:     row.Address,
			Rating:      row.Rating,
			Username:    row.Username,
			CreatedAt:   row.CreatedAt,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// UpdateRider handles PUT /api/v1/riders/:id.
func (s *Server) UpdateRider(ctx echo.Context) error {
	riderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	var body UpdateRiderRequest
	if !bindBody(ctx, &body) {
		return nil
	}

	service, err := kernel.ServiceKindFromString(body.Service)
	if err != nil {
		return badRequest(ctx, err)
	}

	location, err := toGeoPoint(body.Location)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewUpdateRiderCommand(riderID, body.Name, body.Phone, service, body.Address, location)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.updateRiderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapCommandError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// DeleteRider handles DELETE /api/v1/riders/:id. Riders with active
// requests are refused with 409.
func (s *Server) DeleteRider(ctx echo.Context) error {
	riderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewDeleteRiderCommand(riderID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.deleteRiderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, commands.ErrRiderHasActiveRequests) {
			return conflict(ctx, "Rider still has active requests")
		}
		return mapCommandError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// SetRiderAvailability handles POST /api/v1/riders/:id/availability.
func (s *Server) SetRiderAvailability(ctx echo.Context) error {
	riderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	var body SetAvailabilityRequest
	if !bindBody(ctx, &body) {
		return nil
	}

	cmd, err := commands.NewSetRiderAvailabilityCommand(riderID, *body.IsAvailable)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.setRiderAvailabilityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapCommandError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CreateRequest handles POST /api/v1/requests - customer intake.
func (s *Server) CreateRequest(ctx echo.Context) error {
	var body CreateRequestRequest
	if !bindBody(ctx, &body) {
		return nil
	}

	service, err := kernel.ServiceKindFromString(body.Service)
	if err != nil {
		return badRequest(ctx, err)
	}

	location, err := toGeoPoint(body.Location)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCreateRequestCommand(
		body.UserID, body.UserPhone, service,
		body.Area, location, body.RequestedAt, body.Duration,
	)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.createRequestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapCommandError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateRequestResponse{ID: cmd.RequestID().String()})
}

// GetRequests handles GET /api/v1/requests with service, assignment,
// rider, and search filters.
func (s *Server) GetRequests(ctx echo.Context) error {
	service := kernel.ServiceUnknown
	if raw := ctx.QueryParam("service"); raw != "" {
		parsed, err := kernel.ServiceKindFromString(raw)
		if err != nil {
			return badRequest(ctx, err)
		}
		service = parsed
	}

	assignment := queries.FilterAssignmentAny
	switch ctx.QueryParam("assignment") {
	case "":
	case "assigned":
		assignment = queries.FilterAssignmentAssigned
	case "unassigned":
		assignment = queries.FilterAssignmentUnassigned
	default:
		return badRequest(ctx, errs.NewValueIsInvalidError("assignment"))
	}

	var riderID *kernel.UUID
	if raw := ctx.QueryParam("riderId"); raw != "" {
		parsed, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, err)
		}
		riderID = &parsed
	}

	query, err := queries.NewListRequestsQuery(service, assignment, riderID, ctx.QueryParam("search"))
	if err != nil {
		return badRequest(ctx, err)
	}

	rows, err := s.listRequestsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve requests")
	}

	response := make([]RequestResponse, len(rows))
	for i, row := range rows {
		response[i] = toRequestResponse(row)
	}
	return ctx.JSON(http.StatusOK, response)
}

// AssignRider handles POST /api/v1/requests/:id/assign - dispatches a
// rider and marks them busy.
func (s *Server) AssignRider(ctx echo.Context) error {
	requestID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	var body AssignRiderRequest
	if !bindBody(ctx, &body) {
		return nil
	}

	riderID, err := kernel.UUIDFromString(body.RiderID)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewAssignRiderCommand(requestID, riderID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.assignRiderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, request.ErrIllegalTransition) {
			return conflict(ctx, "Request cannot be assigned in its current status")
		}
		return mapCommandError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// OverrideRequestStatus handles POST /api/v1/requests/:id/override-status.
// The admin override skips the transition allow-list.
func (s *Server) OverrideRequestStatus(ctx echo.Context) error {
	requestID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	var body OverrideStatusRequest
	if !bindBody(ctx, &body) {
		return nil
	}

	target, err := request.StatusFromString(body.Status)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewOverrideRequestStatusCommand(requestID, target)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.overrideStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapCommandError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetDashboardStats handles GET /api/v1/dashboard/stats.
func (s *Server) GetDashboardStats(ctx echo.Context) error {
	stats, err := s.dashboardStatsHandler.Handle(ctx.Request().Context(), queries.NewDashboardStatsQuery())
	if err != nil {
		return internalError(ctx, "Failed to retrieve dashboard stats")
	}

	return ctx.JSON(http.StatusOK, DashboardStatsResponse{
		TotalRequests:     stats.TotalRequests,
		PendingRequests:   stats.PendingRequests,
		CompletedRequests: stats.CompletedRequests,
		AvailableRiders:   stats.AvailableRiders,
	})
}

// RiderLogin handles POST /api/v1/rider/login - exchanges portal
// credentials for a bearer token. Unknown usernames and bad tokens fail
// identically.
func (s *Server) RiderLogin(ctx echo.Context) error {
	var body LoginRequest
	if !bindBody(ctx, &body) {
		return nil
	}

	riderRepository := s.uowFactory.Create().RiderRepository()
	riderEntity, err := riderRepository.GetByUsername(ctx.Request().Context(), body.Username)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return unauthorized(ctx, "Invalid credentials")
		}
		return internalError(ctx, "Failed to sign in")
	}

	matches, err := riderEntity.Credentials().VerifyToken(body.Token)
	if err != nil || !matches {
		return unauthorized(ctx, "Invalid credentials")
	}

	accessToken, err := s.tokens.Issue(riderEntity.ID())
	if err != nil {
		return internalError(ctx, "Failed to sign in")
	}

	return ctx.JSON(http.StatusOK, LoginResponse{
		AccessToken: accessToken,
		RiderID:     riderEntity.ID().String(),
		Name:        riderEntity.Name(),
	})
}

// GetRiderTasks handles GET /api/v1/rider/tasks - the authenticated
// rider's assignments, active first.
func (s *Server) GetRiderTasks(ctx echo.Context) error {
	riderID, ok := riderIDFromContext(ctx)
	if !ok {
		return unauthorized(ctx, "Missing rider identity")
	}

	query, err := queries.NewRiderTasksQuery(riderID)
	if err != nil {
		return badRequest(ctx, err)
	}

	rows, err := s.riderTasksHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve tasks")
	}

	response := make([]RequestResponse, len(rows))
	for i, row := range rows {
		response[i] = toRequestResponse(row)
	}
	return ctx.JSON(http.StatusOK, response)
}

// AdvanceRequest handles POST /api/v1/rider/requests/:id/advance - moves a
// request along the allowed transitions and returns the composed customer
// notification when the target status notifies.
func (s *Server) AdvanceRequest(ctx echo.Context) error {
	riderID, ok := riderIDFromContext(ctx)
	if !ok {
		return unauthorized(ctx, "Missing rider identity")
	}

	requestID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	var body AdvanceRequestRequest
	if !bindBody(ctx, &body) {
		return nil
	}

	target, err := request.StatusFromString(body.Status)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewAdvanceRequestCommand(requestID, riderID, target)
	if err != nil {
		return badRequest(ctx, err)
	}

	notification, err := s.advanceRequestHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, request.ErrIllegalTransition) {
			return conflict(ctx, "Status transition is not allowed")
		}
		return mapCommandError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, AdvanceRequestResponse{
		Status:       target.String(),
		Notification: toNotificationResponse(notification),
	})
}

// CompleteAllRequests handles POST /api/v1/rider/requests/complete-all -
// bulk-closes the rider's active requests and frees them.
func (s *Server) CompleteAllRequests(ctx echo.Context) error {
	riderID, ok := riderIDFromContext(ctx)
	if !ok {
		return unauthorized(ctx, "Missing rider identity")
	}

	cmd, err := commands.NewCompleteAllRequestsCommand(riderID)
	if err != nil {
		return badRequest(ctx, err)
	}

	completed, err := s.completeAllHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapCommandError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, CompleteAllResponse{Completed: completed})
}

func toNotificationResponse(notification *services.Notification) *NotificationResponse {
	if notification == nil {
		return nil
	}
	return &NotificationResponse{
		Text:          notification.Text,
		CustomerPhone: notification.CustomerPhone,
	}
}

func toGeoPoint(dto *GeoPointDTO) (*kernel.GeoPoint, error) {
	if dto == nil {
		return nil, nil
	}
	point, err := kernel.NewGeoPoint(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}
	return &point, nil
}

func pathUUID(ctx echo.Context, param string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(param))
}

// bindBody binds and validates the request body. On failure it writes the
// 400 response itself and returns false so the handler stops.
func bindBody(ctx echo.Context, body interface{}) bool {
	if err := ctx.Bind(body); err != nil {
		_ = ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
		return false
	}
	if err := ctx.Validate(body); err != nil {
		_ = badRequest(ctx, err)
		return false
	}
	return true
}

// mapCommandError translates application errors into HTTP responses:
// not-found as 404, validation failures as 400, everything else as 500.
func mapCommandError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return badRequest(ctx, err)
	default:
		return internalError(ctx, "Operation failed")
	}
}

func badRequest(ctx echo.Context, err error) error {
	message := "Invalid request"
	if err != nil {
		message = err.Error()
	}
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func conflict(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusConflict, ErrorResponse{
		Code:    http.StatusConflict,
		Message: message,
	})
}

func unauthorized(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
		Code:    http.StatusUnauthorized,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
