package flightaware

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-lookup/aircraft-lookup-service/internal/domain"
)

func TestDeriveStatus_PriorityOrder(t *testing.T) {
	tests := []struct {
		name   string
		record flightRecord
		want   string
	}{
		{
			name: "cancelled wins over completed arrival",
			record: flightRecord{
				Cancelled:    true,
				ActualIn:     "2025-06-02T20:00:00Z",
				ActualOff:    "2025-06-02T14:18:00Z",
				ActualOut:    "2025-06-02T14:05:00Z",
				ScheduledOut: "2025-06-02T14:00:00Z",
			},
			want: domain.StatusCancelled,
		},
		{
			name: "arrived wins over in air",
			record: flightRecord{
				ActualIn:  "2025-06-02T20:00:00Z",
				ActualOff: "2025-06-02T14:18:00Z",
			},
			want: domain.StatusArrived,
		},
		{
			name: "in air wins over departed",
			record: flightRecord{
				ActualOff: "2025-06-02T14:18:00Z",
				ActualOut: "2025-06-02T14:05:00Z",
			},
			want: domain.StatusInAir,
		},
		{
			name: "departed after pushback only",
			record: flightRecord{
				ActualOut:    "2025-06-02T14:05:00Z",
				ScheduledOut: "2025-06-02T14:00:00Z",
			},
			want: domain.StatusDeparted,
		},
		{
			name: "scheduled with no actuals",
			record: flightRecord{
				ScheduledOut: "2025-06-02T14:00:00Z",
			},
			want: domain.StatusScheduled,
		},
		{
			name:   "unknown when nothing is set",
			record: flightRecord{},
			want:   domain.StatusUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, deriveStatus(&tt.record))
		})
	}
}

func TestNormalizeFlight_SentinelsForEmptyRecord(t *testing.T) {
	details := normalizeFlight(&flightRecord{}, "UA100", sourceIdent, altitudeFeet)

	// Every string field that cannot be resolved carries the sentinel.
	assert.Equal(t, "UA100", details.FlightNumber)
	assert.Equal(t, domain.NotAvailable, details.Airline)
	assert.Equal(t, domain.NotAvailable, details.Registration)
	assert.Equal(t, domain.NotAvailable, details.Model)
	assert.Equal(t, domain.NotAvailable, details.Departure.Airport)
	assert.Equal(t, domain.NotAvailable, details.Departure.Gate)
	assert.Equal(t, domain.NotAvailable, details.Arrival.ScheduledTime)
	assert.Equal(t, domain.NotAvailable, details.BaggageClaim)
	assert.Equal(t, domain.NotAvailable, details.LastUpdated)
	assert.Equal(t, domain.NotAvailable, details.FiledRoute)
	assert.Equal(t, domain.NotAvailable, details.AircraftOwner)
	assert.Equal(t, domain.NotAvailable, details.OperatorIcao)

	// Numerics without data are invalid and marshal to the sentinel.
	assert.False(t, details.AircraftAge.Valid)
	assert.False(t, details.Speed.Valid)
	assert.False(t, details.Altitude.Valid)
	assert.False(t, details.Progress.Valid)
	assert.False(t, details.Distance.Kilometers.Valid)
	assert.False(t, details.FlightDuration.Scheduled.Valid)
	assert.False(t, details.DelayInfo.Departure.Valid)

	assert.Nil(t, details.Position)
	assert.Equal(t, domain.StatusUnknown, details.Status)
}

func TestNormalizeAltitude(t *testing.T) {
	alt := 350.0

	hundreds := normalizeAltitude(&alt, altitudeHundredsOfFeet)
	require.True(t, hundreds.Valid)
	assert.Equal(t, float64(35000), hundreds.Value)

	feet := normalizeAltitude(&alt, altitudeFeet)
	require.True(t, feet.Valid)
	assert.Equal(t, float64(350), feet.Value)

	assert.False(t, normalizeAltitude(nil, altitudeFeet).Valid)
}

func TestNormalizeDistance_MilesDerivedFromKilometers(t *testing.T) {
	km := 1000.0
	d := normalizeDistance(&routeDistance{Kilometers: &km})

	require.True(t, d.Miles.Valid)
	assert.Equal(t, float64(621), d.Miles.Value)

	// Vendor-supplied miles win over derivation.
	miles := 620.0
	d = normalizeDistance(&routeDistance{Kilometers: &km, Miles: &miles})
	assert.Equal(t, float64(620), d.Miles.Value)

	assert.False(t, normalizeDistance(nil).Kilometers.Valid)
}

func TestScheduledDepartureDate(t *testing.T) {
	tests := []struct {
		name   string
		record scheduleRecord
		want   string
	}{
		{
			name:   "flat scheduled_out",
			record: scheduleRecord{ScheduledOut: "2025-06-02T14:00:00Z"},
			want:   "2025-06-02",
		},
		{
			name:   "nested scheduled_departure",
			record: scheduleRecord{ScheduledDeparture: &dateTimeRef{DateTime: "2025-06-02T14:00:00Z"}},
			want:   "2025-06-02",
		},
		{
			name:   "offset timestamp converts to utc date",
			record: scheduleRecord{ScheduledOut: "2025-06-03T01:00:00+09:00"},
			want:   "2025-06-02",
		},
		{
			name:   "no scheduled time",
			record: scheduleRecord{},
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scheduledDepartureDate(&tt.record))
		})
	}
}

func TestNormalizeSchedule_FlightNumberFallbacks(t *testing.T) {
	details := normalizeSchedule(&scheduleRecord{FlightNumber: "UA100"}, "ignored")
	assert.Equal(t, "UA100", details.FlightNumber)

	details = normalizeSchedule(&scheduleRecord{}, "UA100")
	assert.Equal(t, "UA100", details.FlightNumber)
}
