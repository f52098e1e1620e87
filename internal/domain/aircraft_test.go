package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-lookup/aircraft-lookup-service/test/testutil"
)

func TestNumber_MarshalsSentinelWhenUnset(t *testing.T) {
	payload := struct {
		Altitude Number `json:"altitude"`
		Speed    Number `json:"speed"`
	}{
		Altitude: N(35000),
	}

	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	assert.JSONEq(t, `{"altitude":35000,"speed":"Not available"}`, string(raw))
}

func TestNumber_UnmarshalAcceptsBothShapes(t *testing.T) {
	var payload struct {
		Altitude Number `json:"altitude"`
		Speed    Number `json:"speed"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"altitude":35000,"speed":"Not available"}`), &payload))

	assert.True(t, payload.Altitude.Valid)
	assert.Equal(t, float64(35000), payload.Altitude.Value)
	assert.False(t, payload.Speed.Valid, "sentinel round-trips back to unset")
}

func TestNumberFromPtr(t *testing.T) {
	assert.Equal(t, N(42.5), NumberFromPtr(testutil.Ptr(42.5)))
	assert.False(t, NumberFromPtr(nil).Valid)

	assert.Equal(t, N(7), NumberFromIntPtr(testutil.Ptr(7)))
	assert.False(t, NumberFromIntPtr(nil).Valid)
}

func TestStringOr(t *testing.T) {
	assert.Equal(t, "first", StringOr("first", "second"))
	assert.Equal(t, "second", StringOr("", "second"))
	assert.Equal(t, NotAvailable, StringOr("", ""))
	assert.Equal(t, NotAvailable, StringOr())
}

func TestEmptyMovement_AllFieldsSentinel(t *testing.T) {
	m := EmptyMovement()

	assert.Equal(t, NotAvailable, m.Airport)
	assert.Equal(t, NotAvailable, m.Terminal)
	assert.Equal(t, NotAvailable, m.Gate)
	assert.Equal(t, NotAvailable, m.ScheduledTime)
	assert.Equal(t, NotAvailable, m.ActualTime)
	assert.Equal(t, NotAvailable, m.ICAO)
	assert.Equal(t, NotAvailable, m.IATA)
}

func TestAircraftDetails_PositionNullWhenAbsent(t *testing.T) {
	details := AircraftDetails{
		FlightNumber: "UA100",
		Departure:    EmptyMovement(),
		Arrival:      EmptyMovement(),
	}

	raw, err := json.Marshal(details)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Contains(t, body, "position")
	assert.Nil(t, body["position"], "no live fix serializes as null")
}
