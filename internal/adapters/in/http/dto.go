package http

import (
	"time"

	"fixxo/internal/core/application/usecases/queries"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// GeoPointDTO carries optional coordinates in request and response bodies.
type GeoPointDTO struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

// CreateRiderRequest is the body for registering a new rider.
type CreateRiderRequest struct {
	Name     string       `json:"name" validate:"required"`
	Phone    string       `json:"phone" validate:"required"`
	Service  string       `json:"service" validate:"required"`
	Address  string       `json:"address"`
	Location *GeoPointDTO `json:"location"`
}

// CreateRiderResponse returns the new rider's id together with the portal
// credentials. The one-time token is shown here and never again.
type CreateRiderResponse struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	OneTimeToken string `json:"oneTimeToken"`
}

// UpdateRiderRequest is the body for editing a rider profile.
type UpdateRiderRequest struct {
	Name     string       `json:"name" validate:"required"`
	Phone    string       `json:"phone" validate:"required"`
	Service  string       `json:"service" validate:"required"`
	Address  string       `json:"address"`
	Location *GeoPointDTO `json:"location"`
}

// SetAvailabilityRequest toggles a rider's availability flag.
type SetAvailabilityRequest struct {
	IsAvailable *bool `json:"isAvailable" validate:"required"`
}

// RiderResponse is one rider row in admin listings.
type RiderResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	Service     string    `json:"service"`
	IsAvailable bool      `json:"isAvailable"`
	Address     string    `json:"address,omitempty"`
	Rating      float64   `json:"rating"`
	Username    string    `json:"username"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CreateRequestRequest is the body for customer intake of a service request.
type CreateRequestRequest struct {
	UserID      string       `json:"userId" validate:"required"`
	UserPhone   string       `json:"userPhone" validate:"required"`
	Service     string       `json:"service" validate:"required"`
	Area        string       `json:"area"`
	Location    *GeoPointDTO `json:"location"`
	RequestedAt *time.Time   `json:"requestedAt"`
	Duration    string       `json:"duration"`
}

// CreateRequestResponse returns the generated request id.
type CreateRequestResponse struct {
	ID string `json:"id"`
}

// AssignRiderRequest names the rider to dispatch.
type AssignRiderRequest struct {
	RiderID string `json:"riderId" validate:"required,uuid"`
}

// OverrideStatusRequest forces a request into the given status.
type OverrideStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// AdvanceRequestRequest carries the rider's desired next status.
type AdvanceRequestRequest struct {
	Status string `json:"status" validate:"required"`
}

// NotificationResponse is the customer message composed for a transition.
type NotificationResponse struct {
	Text          string `json:"text"`
	CustomerPhone string `json:"customerPhone"`
}

// AdvanceRequestResponse reports the new status and, for notifying
// transitions, the composed customer message.
type AdvanceRequestResponse struct {
	Status       string                `json:"status"`
	Notification *NotificationResponse `json:"notification,omitempty"`
}

// CompleteAllResponse reports how many requests were closed in bulk.
type CompleteAllResponse struct {
	Completed int64 `json:"completed"`
}

// RiderSummaryResponse is the assigned rider block inside a request row.
type RiderSummaryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// RequestResponse is one service request row in listings.
type RequestResponse struct {
	ID          string                `json:"id"`
	UserID      string                `json:"userId"`
	UserPhone   string                `json:"userPhone"`
	Service     string                `json:"service"`
	Area        string                `json:"area,omitempty"`
	Status      string                `json:"status"`
	RequestedAt *time.Time            `json:"requestedAt,omitempty"`
	Duration    string                `json:"duration,omitempty"`
	Rider       *RiderSummaryResponse `json:"rider,omitempty"`
	CreatedAt   time.Time             `json:"createdAt"`
	UpdatedAt   time.Time             `json:"updatedAt"`
}

// DashboardStatsResponse carries the console's headline counters.
type DashboardStatsResponse struct {
	TotalRequests     int64 `json:"totalRequests"`
	PendingRequests   int64 `json:"pendingRequests"`
	CompletedRequests int64 `json:"completedRequests"`
	AvailableRiders   int64 `json:"availableRiders"`
}

// LoginRequest is the rider portal sign-in body.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Token    string `json:"token" validate:"required"`
}

// LoginResponse returns the signed bearer token for rider routes.
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	RiderID     string `json:"riderId"`
	Name        string `json:"name"`
}

func toRequestResponse(row queries.ListRequestsQueryResponse) RequestResponse {
	resp := RequestResponse{
		ID:          row.ID.String(),
		UserID:      row.UserID,
		UserPhone:   row.UserPhone,
		Service:     row.Service,
		Area:        row.Area,
		Status:      row.Status,
		RequestedAt: row.RequestedAt,
		Duration:    row.Duration,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
	if row.Rider != nil {
		resp.Rider = &RiderSummaryResponse{
			ID:    row.Rider.ID.String(),
			Name:  row.Rider.Name,
			Phone: row.Rider.Phone,
		}
	}
	return resp
}
