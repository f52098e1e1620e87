package flightaware

import "encoding/json"

// Raw AeroAPI response shapes. The schedules and flights endpoints disagree
// on field names and nesting for the same concepts, so each endpoint gets
// its own record type with an explicit mapping into domain.AircraftDetails.

// schedulesResponse is the envelope of GET /schedules/{ident}.
type schedulesResponse struct {
	Scheduled []scheduleRecord `json:"scheduled"`
}

// scheduleRecord is a forward-looking, lower-detail flight entry.
// Airport references may be bare ICAO strings here; terminals and gates
// live in flat origin_*/destination_* fields rather than nested objects.
type scheduleRecord struct {
	Ident               string       `json:"ident"`
	FlightNumber        string       `json:"flight_number"`
	FaFlightID          string       `json:"fa_flight_id"`
	Operator            string       `json:"operator"`
	OperatorName        string       `json:"operator_name"`
	OperatorIcao        string       `json:"operator_icao"`
	Registration        string       `json:"registration"`
	AircraftType        string       `json:"aircraft_type"`
	ScheduledOut        string       `json:"scheduled_out"`
	ScheduledDeparture  *dateTimeRef `json:"scheduled_departure"`
	ScheduledIn         string       `json:"scheduled_in"`
	ScheduledArrival    *dateTimeRef `json:"scheduled_arrival"`
	Origin              airportRef   `json:"origin"`
	Destination         airportRef   `json:"destination"`
	OriginTerminal      string       `json:"origin_terminal"`
	OriginGate          string       `json:"origin_gate"`
	OriginIata          string       `json:"origin_iata"`
	DestinationTerminal string       `json:"destination_terminal"`
	DestinationGate     string       `json:"destination_gate"`
	DestinationIata     string       `json:"destination_iata"`
	Route               string       `json:"route"`
	Owner               string       `json:"owner"`
	RouteDistance       *routeDistance `json:"route_distance"`
	ScheduledElapsed    *int         `json:"scheduled_elapsed_time"`
	DepartureDelay      *int         `json:"departure_delay"`
	ArrivalDelay        *int         `json:"arrival_delay"`
}

// dateTimeRef wraps the nested {"date_time": ...} shape some schedule
// fields use instead of a flat timestamp.
type dateTimeRef struct {
	DateTime string `json:"date_time"`
}

// airportRef is an airport reference that the schedules endpoint encodes
// either as a bare ICAO string or as an object with name and codes.
type airportRef struct {
	Name     string
	CodeICAO string
	CodeIATA string
}

// UnmarshalJSON accepts both encodings. A bare string is treated as the
// ICAO code, matching how the vendor abbreviates schedule entries.
func (a *airportRef) UnmarshalJSON(data []byte) error {
	var code string
	if err := json.Unmarshal(data, &code); err == nil {
		*a = airportRef{Name: code, CodeICAO: code}
		return nil
	}

	var obj struct {
		Name     string `json:"name"`
		CodeICAO string `json:"code_icao"`
		CodeIATA string `json:"code_iata"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*a = airportRef{Name: obj.Name, CodeICAO: obj.CodeICAO, CodeIATA: obj.CodeIATA}
	return nil
}

// flightsResponse is the envelope of GET /flights/{ident} and
// GET /flights/{fa_flight_id}.
type flightsResponse struct {
	Flights []flightRecord `json:"flights"`
}

// flightRecord is a confirmed flight with rich fields, including actual
// times and a live position when the flight is airborne.
type flightRecord struct {
	Ident            string         `json:"ident"`
	FaFlightID       string         `json:"fa_flight_id"`
	Operator         string         `json:"operator"`
	OperatorIcao     string         `json:"operator_icao"`
	Registration     string         `json:"registration"`
	AircraftType     string         `json:"aircraft_type"`
	Owner            string         `json:"owner"`
	Route            string         `json:"route"`
	Cancelled        bool           `json:"cancelled"`
	ScheduledOut     string         `json:"scheduled_out"`
	ScheduledIn      string         `json:"scheduled_in"`
	ActualOut        string         `json:"actual_out"`
	ActualOff        string         `json:"actual_off"`
	ActualOn         string         `json:"actual_on"`
	ActualIn         string         `json:"actual_in"`
	Origin           *airportDetail `json:"origin"`
	Destination      *airportDetail `json:"destination"`
	RouteDistance    *routeDistance `json:"route_distance"`
	LastPosition     *lastPosition  `json:"last_position"`
	AircraftAge      *int           `json:"aircraft_age"`
	ScheduledElapsed *int           `json:"scheduled_elapsed_time"`
	ActualElapsed    *int           `json:"actual_elapsed_time"`
	DepartureDelay   *int           `json:"departure_delay"`
	ArrivalDelay     *int           `json:"arrival_delay"`
	ProgressPercent  *int           `json:"progress_percent"`
}

// airportDetail is the full airport object the flights endpoint returns.
type airportDetail struct {
	Name         string `json:"name"`
	CodeICAO     string `json:"code_icao"`
	CodeIATA     string `json:"code_iata"`
	Terminal     string `json:"terminal"`
	Gate         string `json:"gate"`
	BaggageClaim string `json:"baggage_claim"`
}

// routeDistance carries the great-circle distance; the vendor often omits miles.
type routeDistance struct {
	Kilometers *float64 `json:"kilometers"`
	Miles      *float64 `json:"miles"`
}

// lastPosition is the most recent live position report.
type lastPosition struct {
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Heading     *float64 `json:"heading"`
	Groundspeed *float64 `json:"groundspeed"`
	Altitude    *float64 `json:"altitude"`
	Timestamp   *int64   `json:"timestamp"`
}
