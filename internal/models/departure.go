package models

import (
	"strconv"
	"strings"
)

// LineColor is the route color the API attaches to an estimate
type LineColor string

// Route colors reported by the etd endpoint
const (
	LineNone   LineColor = ""
	LineRed    LineColor = "RED"
	LineOrange LineColor = "ORANGE"
	LineYellow LineColor = "YELLOW"
	LineGreen  LineColor = "GREEN"
	LineBlue   LineColor = "BLUE"
	LineWhite  LineColor = "WHITE"
)

// ParseLineColor normalizes a color name from the API. Unknown names map to LineNone.
func ParseLineColor(s string) LineColor {
	switch c := LineColor(strings.ToUpper(strings.TrimSpace(s))); c {
	case LineRed, LineOrange, LineYellow, LineGreen, LineBlue, LineWhite:
		return c
	}
	return LineNone
}

// Estimate is one upcoming train for a destination
type Estimate struct {
	Minutes   string    `json:"minutes"` // numeric countdown or a literal such as "Leaving"
	Length    int       `json:"length"`  // number of cars
	Color     LineColor `json:"color"`
	Platform  string    `json:"platform,omitempty"`
	Direction string    `json:"direction,omitempty"`
	Delay     int       `json:"delay,omitempty"` // seconds
	BikeFlag  bool      `json:"bikeFlag"`
}

// Countdown returns the minutes until arrival and whether the value is numeric
func (e Estimate) Countdown() (int, bool) {
	return ParseMinutes(e.Minutes)
}

// ParseMinutes parses a minutes value from the etd endpoint.
// Only the first whitespace-separated field is considered, so "3 min" parses as 3.
func ParseMinutes(s string) (int, bool) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, false
	}
	return n, true
}

// Departure groups the estimates for one destination, in arrival order
type Departure struct {
	Destination  string     `json:"destination"`
	Abbreviation string     `json:"abbreviation,omitempty"`
	Limited      bool       `json:"limited,omitempty"`
	Estimates    []Estimate `json:"estimates"`
}

// StationSnapshot is the departure board of one station at fetch time
type StationSnapshot struct {
	Name       string      `json:"name"`
	Abbr       string      `json:"abbr"`
	Departures []Departure `json:"departures"`
}

// EstimateResponse represents the raw XML for a single estimate
type EstimateResponse struct {
	Minutes   string `xml:"minutes"`
	Platform  string `xml:"platform"`
	Direction string `xml:"direction"`
	Length    string `xml:"length"`
	Color     string `xml:"color"`
	HexColor  string `xml:"hexcolor"`
	BikeFlag  string `xml:"bikeflag"`
	Delay     string `xml:"delay"`
}

// DepartureResponse represents the raw XML for one <etd> element
type DepartureResponse struct {
	Destination  string             `xml:"destination"`
	Abbreviation string             `xml:"abbreviation"`
	Limited      string             `xml:"limited"`
	Estimates    []EstimateResponse `xml:"estimate"`
}

// StationResponseETD represents a <station> element of the etd response
type StationResponseETD struct {
	Name       string              `xml:"name"`
	Abbr       string              `xml:"abbr"`
	Departures []DepartureResponse `xml:"etd"`
}

// DeparturesResponse represents the full etd API response
type DeparturesResponse struct {
	Date     string               `xml:"date"`
	Time     string               `xml:"time"`
	Stations []StationResponseETD `xml:"station"`
	Message  MessageResponse      `xml:"message"`
}

// ToEstimate converts the raw response to an Estimate
func (r *EstimateResponse) ToEstimate() Estimate {
	return Estimate{
		Minutes:   strings.TrimSpace(r.Minutes),
		Length:    atoiOrZero(r.Length),
		Color:     ParseLineColor(r.Color),
		Platform:  r.Platform,
		Direction: r.Direction,
		Delay:     atoiOrZero(r.Delay),
		BikeFlag:  r.BikeFlag == "1",
	}
}

// ToDeparture converts the raw response to a Departure
func (r *DepartureResponse) ToDeparture() Departure {
	dep := Departure{
		Destination:  r.Destination,
		Abbreviation: r.Abbreviation,
		Limited:      r.Limited == "1",
		Estimates:    make([]Estimate, 0, len(r.Estimates)),
	}
	for i := range r.Estimates {
		dep.Estimates = append(dep.Estimates, r.Estimates[i].ToEstimate())
	}
	return dep
}

// ToSnapshot converts the response to a StationSnapshot. The etd endpoint answers
// with no <station> element when nothing is scheduled, in which case fallbackAbbr is
// used for both the name and the code.
func (r *DeparturesResponse) ToSnapshot(fallbackAbbr string) StationSnapshot {
	if len(r.Stations) == 0 {
		return StationSnapshot{Name: fallbackAbbr, Abbr: fallbackAbbr, Departures: []Departure{}}
	}

	st := r.Stations[0]
	snap := StationSnapshot{
		Name:       st.Name,
		Abbr:       st.Abbr,
		Departures: make([]Departure, 0, len(st.Departures)),
	}
	for i := range st.Departures {
		snap.Departures = append(snap.Departures, st.Departures[i].ToDeparture())
	}
	return snap
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
