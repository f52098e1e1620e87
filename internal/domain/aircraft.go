// Package domain contains the core business entities and rules for the aircraft lookup system.
// These entities are provider-agnostic and form the foundation upon which all other components are built.
package domain

import "encoding/json"

// NotAvailable is the sentinel value emitted for every field that cannot be
// resolved from an upstream payload. The UI renders it verbatim, so records
// must carry it explicitly instead of omitting the field.
const NotAvailable = "Not available"

// AircraftDetails is the normalized output of every provider adapter.
// Regardless of which upstream endpoint produced the record, all documented
// fields are present; unresolved ones hold the NotAvailable sentinel.
type AircraftDetails struct {
	// FlightNumber is the airline flight identifier (e.g., "UA100")
	FlightNumber string `json:"flightNumber"`

	// Airline is the operating airline name or code
	Airline string `json:"airline"`

	// Registration is the airframe tail number
	Registration string `json:"registration"`

	// Model is the aircraft type designator (e.g., "B77W")
	Model string `json:"model"`

	// Status is the derived flight status (see Status constants)
	Status string `json:"status"`

	// Departure describes the origin airport and times
	Departure Movement `json:"departure"`

	// Arrival describes the destination airport and times
	Arrival Movement `json:"arrival"`

	// DataSource tags which upstream endpoint produced this record
	DataSource string `json:"dataSource"`

	// AircraftAge is the airframe age in years, when the vendor reports it
	AircraftAge Number `json:"aircraftAge"`

	// Distance is the great-circle route distance
	Distance Distance `json:"distance"`

	// Speed is the last reported groundspeed in knots
	Speed Number `json:"speed"`

	// Altitude is the last reported altitude, always in feet
	Altitude Number `json:"altitude"`

	// Position is the last live position fix, nil when the record has none
	Position *Position `json:"position"`

	// FlightDuration holds scheduled and actual elapsed times in minutes
	FlightDuration FlightDuration `json:"flightDuration"`

	// DelayInfo holds departure and arrival delays in seconds
	DelayInfo DelayInfo `json:"delayInfo"`

	// BaggageClaim is the destination baggage claim area
	BaggageClaim string `json:"baggageClaim"`

	// Progress is the flight completion percentage (0-100)
	Progress Number `json:"progress"`

	// LastUpdated is the RFC3339 timestamp of the last position report
	LastUpdated string `json:"lastUpdated"`

	// FiledRoute is the filed ATC route string
	FiledRoute string `json:"filedRoute"`

	// AircraftOwner is the registered owner of the airframe
	AircraftOwner string `json:"aircraftOwner"`

	// OperatorIcao is the ICAO code of the operator
	OperatorIcao string `json:"operatorIcao"`
}

// Flight status values, from highest to lowest derivation priority.
// A cancelled flight stays Cancelled even when actual times are present.
const (
	StatusCancelled = "Cancelled"
	StatusArrived   = "Arrived"
	StatusInAir     = "In Air"
	StatusDeparted  = "Departed"
	StatusScheduled = "Scheduled"
	StatusUnknown   = "Unknown"
)

// Movement represents one side of a flight (departure or arrival).
type Movement struct {
	// Airport is the airport display name
	Airport string `json:"airport"`

	// Terminal is the terminal identifier
	Terminal string `json:"terminal"`

	// Gate is the gate identifier
	Gate string `json:"gate"`

	// ScheduledTime is the scheduled time in the vendor's timestamp format
	ScheduledTime string `json:"scheduledTime"`

	// ActualTime is the actual time, NotAvailable until the event happens
	ActualTime string `json:"actualTime"`

	// ICAO is the four-letter airport code
	ICAO string `json:"icao"`

	// IATA is the three-letter airport code
	IATA string `json:"iata"`
}

// Distance is the route distance in both unit systems.
type Distance struct {
	Kilometers Number `json:"kilometers"`
	Miles      Number `json:"miles"`
}

// Position is a live position fix from the vendor's last report.
type Position struct {
	Latitude  Number `json:"latitude"`
	Longitude Number `json:"longitude"`
	Heading   Number `json:"heading"`
}

// FlightDuration holds elapsed-time figures in minutes.
type FlightDuration struct {
	Scheduled Number `json:"scheduled"`
	Actual    Number `json:"actual"`
}

// DelayInfo holds delay figures in seconds. Negative values mean early.
type DelayInfo struct {
	Departure Number `json:"departure"`
	Arrival   Number `json:"arrival"`
}

// Number is an optional numeric field. It marshals to its value when set and
// to the NotAvailable sentinel when unset, matching the uniform-rendering
// invariant without forcing every numeric field to be a string.
type Number struct {
	Value float64
	Valid bool
}

// N wraps a value in a valid Number.
func N(v float64) Number {
	return Number{Value: v, Valid: true}
}

// NumberFromPtr converts an optional vendor value to a Number.
func NumberFromPtr(p *float64) Number {
	if p == nil {
		return Number{}
	}
	return N(*p)
}

// NumberFromIntPtr converts an optional integer vendor value to a Number.
func NumberFromIntPtr(p *int) Number {
	if p == nil {
		return Number{}
	}
	return N(float64(*p))
}

// MarshalJSON emits the numeric value, or the sentinel when unset.
func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return json.Marshal(NotAvailable)
	}
	return json.Marshal(n.Value)
}

// UnmarshalJSON accepts either a number or the sentinel string. Needed so
// cached records round-trip through the Redis JSON codec.
func (n *Number) UnmarshalJSON(data []byte) error {
	var v float64
	if err := json.Unmarshal(data, &v); err == nil {
		*n = N(v)
		return nil
	}
	// Any string (the sentinel) means the value was never set.
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*n = Number{}
	return nil
}

// StringOr returns the first non-empty candidate, or NotAvailable.
// Adapters use it to collapse the varying field names of upstream payloads
// into a single populated field.
func StringOr(candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return NotAvailable
}

// EmptyMovement returns a Movement with every field set to the sentinel.
func EmptyMovement() Movement {
	return Movement{
		Airport:       NotAvailable,
		Terminal:      NotAvailable,
		Gate:          NotAvailable,
		ScheduledTime: NotAvailable,
		ActualTime:    NotAvailable,
		ICAO:          NotAvailable,
		IATA:          NotAvailable,
	}
}
