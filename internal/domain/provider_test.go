package domain

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func registerNamed(ctrl *gomock.Controller, registry *ProviderRegistry, names ...string) {
	for _, name := range names {
		p := NewMockAircraftProvider(ctrl)
		p.EXPECT().Name().Return(name).AnyTimes()
		registry.Register(p)
	}
}

func TestProviderRegistry_RegisterAndGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := NewProviderRegistry()
	registerNamed(ctrl, registry, "flightaware", "aerodatabox")

	assert.NotNil(t, registry.Get("flightaware"))
	assert.NotNil(t, registry.Get("aerodatabox"))
	assert.Nil(t, registry.Get("teleport"))

	assert.Len(t, registry.GetAll(), 2)
	assert.ElementsMatch(t, []string{"flightaware", "aerodatabox"}, registry.Names())
}

func TestProviderRegistry_ReRegisterReplaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := NewProviderRegistry()

	first := NewMockAircraftProvider(ctrl)
	first.EXPECT().Name().Return("flightaware").AnyTimes()
	registry.Register(first)

	second := NewMockAircraftProvider(ctrl)
	second.EXPECT().Name().Return("flightaware").AnyTimes()
	registry.Register(second)

	assert.Len(t, registry.GetAll(), 1)
	assert.Same(t, second, registry.Get("flightaware").(*MockAircraftProvider))
}

func TestProviderRegistry_EmptyRegistry(t *testing.T) {
	registry := NewProviderRegistry()

	assert.Nil(t, registry.Get("flightaware"))
	assert.Empty(t, registry.GetAll())
	assert.Empty(t, registry.Names())
}

func TestMockAircraftProvider_Lookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	mock := NewMockAircraftProvider(ctrl)
	mock.EXPECT().
		Lookup(gomock.Any(), "UA100", date).
		Return(&AircraftDetails{FlightNumber: "UA100"}, nil)

	details, err := mock.Lookup(context.Background(), "UA100", date)
	require.NoError(t, err)
	assert.Equal(t, "UA100", details.FlightNumber)
}

func TestAircraftProvider_Interface(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Compile-level check that the generated mock satisfies the interface.
	var _ AircraftProvider = NewMockAircraftProvider(ctrl)
}
