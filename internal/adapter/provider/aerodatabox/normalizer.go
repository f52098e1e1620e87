package aerodatabox

import (
	"math"
	"strings"

	"github.com/flight-lookup/aircraft-lookup-service/internal/domain"
)

// ProviderName is the unique identifier for the AeroDataBox provider.
const ProviderName = "aerodatabox"

// source tags every record produced by this adapter.
const source = "AeroDataBox API"

// kmPerMile converts kilometers to statute miles.
const kmPerMile = 0.621371

// normalize maps one AeroDataBox flight into the common output shape.
// The base schema carries no live position and no delay figures, so those
// fields stay at their sentinels.
func normalize(f *adbFlight, fallbackNumber string) *domain.AircraftDetails {
	aircraft := f.Aircraft
	if aircraft == nil {
		aircraft = &adbAircraft{}
	}

	var airlineName string
	if f.Airline != nil {
		airlineName = f.Airline.Name
	}

	return &domain.AircraftDetails{
		FlightNumber:  domain.StringOr(f.Number, fallbackNumber),
		Airline:       domain.StringOr(airlineName),
		Registration:  domain.StringOr(aircraft.Reg),
		Model:         domain.StringOr(aircraft.Model),
		Status:        normalizeStatus(f.Status),
		Departure:     normalizeMovement(f.Departure),
		Arrival:       normalizeMovement(f.Arrival),
		DataSource:    source,
		AircraftAge:   domain.NumberFromIntPtr(aircraft.Age),
		Distance:      normalizeDistance(f.Distance),
		BaggageClaim:  domain.NotAvailable,
		LastUpdated:   domain.NotAvailable,
		FiledRoute:    domain.NotAvailable,
		AircraftOwner: domain.NotAvailable,
		OperatorIcao:  domain.NotAvailable,
	}
}

func normalizeMovement(m *adbMovement) domain.Movement {
	if m == nil {
		return domain.EmptyMovement()
	}

	airport := m.Airport
	if airport == nil {
		airport = &adbAirport{}
	}
	return domain.Movement{
		Airport:       domain.StringOr(airport.Name),
		Terminal:      domain.StringOr(m.Terminal),
		Gate:          domain.StringOr(m.Gate),
		ScheduledTime: domain.StringOr(m.ScheduledTime),
		ActualTime:    domain.StringOr(m.ActualTime),
		ICAO:          domain.StringOr(airport.ICAO),
		IATA:          domain.StringOr(airport.IATA),
	}
}

func normalizeDistance(d *adbDistance) domain.Distance {
	if d == nil {
		return domain.Distance{}
	}
	out := domain.Distance{
		Kilometers: domain.NumberFromPtr(d.Km),
		Miles:      domain.NumberFromPtr(d.Mile),
	}
	if !out.Miles.Valid && d.Km != nil {
		out.Miles = domain.N(math.Round(*d.Km * kmPerMile))
	}
	return out
}

// normalizeStatus maps AeroDataBox status strings onto the shared enum.
// Pre-departure states all collapse to Scheduled; anything unrecognized is
// Unknown rather than a passthrough, so clients see a closed set.
func normalizeStatus(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "canceled", "cancelled", "canceleduncertain":
		return domain.StatusCancelled
	case "arrived":
		return domain.StatusArrived
	case "enroute", "en route", "approaching":
		return domain.StatusInAir
	case "departed":
		return domain.StatusDeparted
	case "expected", "checkin", "check in", "boarding", "gateclosed", "gate closed", "delayed", "scheduled":
		return domain.StatusScheduled
	default:
		return domain.StatusUnknown
	}
}
