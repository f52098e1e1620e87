package flightaware

import (
	"math"
	"time"

	"github.com/flight-lookup/aircraft-lookup-service/internal/domain"
)

// ProviderName is the unique identifier for the FlightAware provider.
const ProviderName = "flightaware"

// dataSource tags identify which endpoint a record came from, so clients
// can tell a coarse schedule entry from a rich flight record.
const (
	sourceScheduled  = "FlightAware AeroAPI (Scheduled)"
	sourceFaFlightID = "FlightAware AeroAPI (fa_flight_id)"
	sourceIdent      = "FlightAware AeroAPI (ident)"
)

// kmPerMile converts kilometers to statute miles.
const kmPerMile = 0.621371

// altitudeUnit records which unit a flight record's altitude arrived in.
// Records fetched through the fa_flight_id shortcut report hundreds of
// feet; the direct flights endpoint reports raw feet. Normalized output is
// always feet.
type altitudeUnit int

const (
	altitudeFeet altitudeUnit = iota
	altitudeHundredsOfFeet
)

// deriveStatus resolves the flight status from upstream flags, checked in
// strict priority order. Cancellation wins over everything, including a
// completed arrival.
func deriveStatus(f *flightRecord) string {
	switch {
	case f.Cancelled:
		return domain.StatusCancelled
	case f.ActualIn != "":
		return domain.StatusArrived
	case f.ActualOff != "":
		return domain.StatusInAir
	case f.ActualOut != "":
		return domain.StatusDeparted
	case f.ScheduledOut != "":
		return domain.StatusScheduled
	default:
		return domain.StatusUnknown
	}
}

// normalizeFlight maps a rich flight record into the common output shape.
func normalizeFlight(f *flightRecord, fallbackIdent, source string, unit altitudeUnit) *domain.AircraftDetails {
	origin := f.Origin
	if origin == nil {
		origin = &airportDetail{}
	}
	destination := f.Destination
	if destination == nil {
		destination = &airportDetail{}
	}

	details := &domain.AircraftDetails{
		FlightNumber: domain.StringOr(f.Ident, fallbackIdent),
		Airline:      domain.StringOr(f.Operator),
		Registration: domain.StringOr(f.Registration),
		Model:        domain.StringOr(f.AircraftType),
		Status:       deriveStatus(f),
		Departure: domain.Movement{
			Airport:       domain.StringOr(origin.Name),
			Terminal:      domain.StringOr(origin.Terminal),
			Gate:          domain.StringOr(origin.Gate),
			ScheduledTime: domain.StringOr(f.ScheduledOut),
			ActualTime:    domain.StringOr(f.ActualOut),
			ICAO:          domain.StringOr(origin.CodeICAO),
			IATA:          domain.StringOr(origin.CodeIATA),
		},
		Arrival: domain.Movement{
			Airport:       domain.StringOr(destination.Name),
			Terminal:      domain.StringOr(destination.Terminal),
			Gate:          domain.StringOr(destination.Gate),
			ScheduledTime: domain.StringOr(f.ScheduledIn),
			ActualTime:    domain.StringOr(f.ActualIn),
			ICAO:          domain.StringOr(destination.CodeICAO),
			IATA:          domain.StringOr(destination.CodeIATA),
		},
		DataSource:  source,
		AircraftAge: domain.NumberFromIntPtr(f.AircraftAge),
		Distance:    normalizeDistance(f.RouteDistance),
		FlightDuration: domain.FlightDuration{
			Scheduled: domain.NumberFromIntPtr(f.ScheduledElapsed),
			Actual:    domain.NumberFromIntPtr(f.ActualElapsed),
		},
		DelayInfo: domain.DelayInfo{
			Departure: domain.NumberFromIntPtr(f.DepartureDelay),
			Arrival:   domain.NumberFromIntPtr(f.ArrivalDelay),
		},
		BaggageClaim:  domain.StringOr(destination.BaggageClaim),
		Progress:      domain.NumberFromIntPtr(f.ProgressPercent),
		LastUpdated:   domain.NotAvailable,
		FiledRoute:    domain.StringOr(f.Route),
		AircraftOwner: domain.StringOr(f.Owner),
		OperatorIcao:  domain.StringOr(f.OperatorIcao),
	}

	if pos := f.LastPosition; pos != nil {
		details.Speed = domain.NumberFromPtr(pos.Groundspeed)
		details.Altitude = normalizeAltitude(pos.Altitude, unit)
		details.Position = &domain.Position{
			Latitude:  domain.NumberFromPtr(pos.Latitude),
			Longitude: domain.NumberFromPtr(pos.Longitude),
			Heading:   domain.NumberFromPtr(pos.Heading),
		}
		if pos.Timestamp != nil {
			details.LastUpdated = time.Unix(*pos.Timestamp, 0).UTC().Format(time.RFC3339)
		}
	}

	return details
}

// normalizeSchedule maps a coarse schedule entry into the common output
// shape. Status is always Scheduled: the endpoint only lists flights that
// have not yet operated.
func normalizeSchedule(s *scheduleRecord, fallbackIdent string) *domain.AircraftDetails {
	return &domain.AircraftDetails{
		FlightNumber: domain.StringOr(s.Ident, s.FlightNumber, fallbackIdent),
		Airline:      domain.StringOr(s.Operator, s.OperatorName),
		Registration: domain.StringOr(s.Registration),
		Model:        domain.StringOr(s.AircraftType),
		Status:       domain.StatusScheduled,
		Departure: domain.Movement{
			Airport:       domain.StringOr(s.Origin.Name),
			Terminal:      domain.StringOr(s.OriginTerminal),
			Gate:          domain.StringOr(s.OriginGate),
			ScheduledTime: domain.StringOr(s.ScheduledOut, nestedDateTime(s.ScheduledDeparture)),
			ActualTime:    domain.NotAvailable,
			ICAO:          domain.StringOr(s.Origin.CodeICAO),
			IATA:          domain.StringOr(s.OriginIata, s.Origin.CodeIATA),
		},
		Arrival: domain.Movement{
			Airport:       domain.StringOr(s.Destination.Name),
			Terminal:      domain.StringOr(s.DestinationTerminal),
			Gate:          domain.StringOr(s.DestinationGate),
			ScheduledTime: domain.StringOr(s.ScheduledIn, nestedDateTime(s.ScheduledArrival)),
			ActualTime:    domain.NotAvailable,
			ICAO:          domain.StringOr(s.Destination.CodeICAO),
			IATA:          domain.StringOr(s.DestinationIata, s.Destination.CodeIATA),
		},
		DataSource: sourceScheduled,
		Distance:   normalizeDistance(s.RouteDistance),
		FlightDuration: domain.FlightDuration{
			Scheduled: domain.NumberFromIntPtr(s.ScheduledElapsed),
		},
		DelayInfo: domain.DelayInfo{
			Departure: domain.NumberFromIntPtr(s.DepartureDelay),
			Arrival:   domain.NumberFromIntPtr(s.ArrivalDelay),
		},
		BaggageClaim:  domain.NotAvailable,
		LastUpdated:   domain.NotAvailable,
		FiledRoute:    domain.StringOr(s.Route),
		AircraftOwner: domain.StringOr(s.Owner),
		OperatorIcao:  domain.StringOr(s.OperatorIcao),
	}
}

// normalizeAltitude converts a raw altitude to feet.
func normalizeAltitude(alt *float64, unit altitudeUnit) domain.Number {
	if alt == nil {
		return domain.Number{}
	}
	if unit == altitudeHundredsOfFeet {
		return domain.N(*alt * 100)
	}
	return domain.N(*alt)
}

// normalizeDistance maps the route distance, deriving miles from kilometers
// when the vendor omits them.
func normalizeDistance(rd *routeDistance) domain.Distance {
	if rd == nil {
		return domain.Distance{}
	}
	d := domain.Distance{
		Kilometers: domain.NumberFromPtr(rd.Kilometers),
		Miles:      domain.NumberFromPtr(rd.Miles),
	}
	if !d.Miles.Valid && rd.Kilometers != nil {
		d.Miles = domain.N(math.Round(*rd.Kilometers * kmPerMile))
	}
	return d
}

// nestedDateTime extracts the timestamp from the nested date_time shape.
func nestedDateTime(ref *dateTimeRef) string {
	if ref == nil {
		return ""
	}
	return ref.DateTime
}

// scheduledDepartureDate returns the departure date (YYYY-MM-DD, UTC) of a
// schedule entry, or "" when the entry carries no scheduled time.
func scheduledDepartureDate(s *scheduleRecord) string {
	raw := s.ScheduledOut
	if raw == "" {
		raw = nestedDateTime(s.ScheduledDeparture)
	}
	if raw == "" {
		return ""
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC().Format("2006-01-02")
	}
	// Vendor timestamps are RFC3339 in practice; fall back to the date
	// prefix for anything else.
	if len(raw) >= 10 {
		return raw[:10]
	}
	return ""
}
