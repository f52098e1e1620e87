package aerodatabox

// Raw AeroDataBox response shapes. The flights-by-number endpoint returns a
// bare JSON array of flight objects; only the fields we map are declared.

type adbFlight struct {
	Number    string       `json:"number"`
	Status    string       `json:"status"`
	Airline   *adbAirline  `json:"airline"`
	Aircraft  *adbAircraft `json:"aircraft"`
	Departure *adbMovement `json:"departure"`
	Arrival   *adbMovement `json:"arrival"`
	Distance  *adbDistance `json:"greatCircleDistance"`
}

type adbAirline struct {
	Name string `json:"name"`
}

type adbAircraft struct {
	Reg   string `json:"reg"`
	Model string `json:"model"`
	Age   *int   `json:"age"`
}

type adbMovement struct {
	Airport       *adbAirport `json:"airport"`
	ScheduledTime string      `json:"scheduledTime"`
	ActualTime    string      `json:"actualTime"`
	Terminal      string      `json:"terminal"`
	Gate          string      `json:"gate"`
}

type adbAirport struct {
	Name string `json:"name"`
	ICAO string `json:"icao"`
	IATA string `json:"iata"`
}

type adbDistance struct {
	Km   *float64 `json:"km"`
	Mile *float64 `json:"mile"`
}
