package portcall

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/laydays/laydays/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_CreateAssignsUidAndCreationTime(t *testing.T) {
	now := time.Date(2026, 3, 12, 8, 0, 0, 0, time.UTC)
	service := NewService(NewStubRepository())
	service.clock = &utils.MockClock{FixedNow: now}

	created, err := service.Create(context.Background(), PortCall{VesselName: "MV Aurora", PortName: "Rotterdam"})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.Uid)
	assert.Equal(t, now, created.CreatedAt)

	stored, err := service.Get(context.Background(), created.Uid.String())
	require.NoError(t, err)
	assert.Equal(t, "MV Aurora", stored.VesselName)
}

func TestService_GetUnknownUid(t *testing.T) {
	service := NewService(NewStubRepository())

	_, err := service.Get(context.Background(), uuid.NewString())

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_GetMalformedUid(t *testing.T) {
	service := NewService(NewStubRepository())

	_, err := service.Get(context.Background(), "not-a-uuid")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Delete(t *testing.T) {
	service := NewService(NewStubRepository())
	created, err := service.Create(context.Background(), PortCall{VesselName: "MV Aurora", PortName: "Rotterdam"})
	require.NoError(t, err)

	require.NoError(t, service.Delete(context.Background(), created.Uid.String()))

	_, err = service.Get(context.Background(), created.Uid.String())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_DeleteUnknownUid(t *testing.T) {
	service := NewService(NewStubRepository())

	err := service.Delete(context.Background(), uuid.NewString())

	assert.ErrorIs(t, err, ErrNotFound)
}
