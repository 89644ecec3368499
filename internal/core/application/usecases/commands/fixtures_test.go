package commands_test

import (
	"testing"

	"fixxo/internal/core/domain/model/kernel"
	"fixxo/internal/core/domain/model/request"
	"fixxo/internal/core/domain/model/rider"

	"github.com/stretchr/testify/require"
)

func newFixtureRider(t *testing.T) *rider.Rider {
	t.Helper()
	creds, _, err := rider.GenerateCredentials("Asha Patel")
	require.NoError(t, err)
	r, err := rider.NewRider(
		kernel.NewUUID(), "Asha Patel", "+91 98200 11111",
		kernel.ServiceDogWalker, "Powai, Mumbai", nil, creds)
	require.NoError(t, err)
	return r
}

func newFixtureRequest(t *testing.T) *request.Request {
	t.Helper()
	details, err := request.NewDetails("Powai, Mumbai", nil, nil, "2 hours")
	require.NoError(t, err)
	req, err := request.NewRequest(
		kernel.NewUUID(), "user-42", "+91 98200 00042", kernel.ServiceDogWalker, details)
	require.NoError(t, err)
	return req
}

func newAssignedFixtureRequest(t *testing.T, riderID kernel.UUID) *request.Request {
	t.Helper()
	req := newFixtureRequest(t)
	require.NoError(t, req.AssignTo(riderID))
	return req
}
