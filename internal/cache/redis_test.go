package cache

import (
	"context"
	"testing"
	"time"

	"github.com/Domenick1991/journeys/config"
	"github.com/Domenick1991/journeys/internal/domain"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisCache_SnapshotRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	store := NewRedisCache(config.RedisConfig{Addr: mr.Addr()}, "journeys:flight-events")

	events := []domain.FlightEvent{
		{
			FlightNumber:  "IB1234",
			From:          "BUE",
			To:            "MAD",
			DepartureTime: time.Date(2021, 12, 31, 23, 59, 0, 0, time.UTC),
			ArrivalTime:   time.Date(2022, 1, 1, 12, 0, 0, 0, time.UTC),
		},
	}

	require.NoError(t, store.SetSnapshot(context.Background(), events))

	got, err := store.GetSnapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, events, got)
}

func TestRedisCache_MissingSnapshotIsNotAnError(t *testing.T) {
	mr := miniredis.RunT(t)
	store := NewRedisCache(config.RedisConfig{Addr: mr.Addr()}, "journeys:flight-events")

	got, err := store.GetSnapshot(context.Background())

	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisCache_SnapshotReplacedWholesale(t *testing.T) {
	mr := miniredis.RunT(t)
	store := NewRedisCache(config.RedisConfig{Addr: mr.Addr()}, "journeys:flight-events")

	first := []domain.FlightEvent{{FlightNumber: "IB1111", From: "BUE", To: "MAD"}}
	second := []domain.FlightEvent{{FlightNumber: "AF2222", From: "PAR", To: "ROM"}}

	require.NoError(t, store.SetSnapshot(context.Background(), first))
	require.NoError(t, store.SetSnapshot(context.Background(), second))

	got, err := store.GetSnapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, second, got)
}
