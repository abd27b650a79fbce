package models

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	lev "github.com/agnivade/levenshtein"
)

// Station is an entry of the station list
type Station struct {
	Abbr    string  `json:"abbr"`
	Name    string  `json:"name"`
	City    string  `json:"city,omitempty"`
	County  string  `json:"county,omitempty"`
	Address string  `json:"address,omitempty"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// StationResponse represents the raw XML for one <station> of the stns command
type StationResponse struct {
	Name      string `xml:"name"`
	Abbr      string `xml:"abbr"`
	Latitude  string `xml:"gtfs_latitude"`
	Longitude string `xml:"gtfs_longitude"`
	Address   string `xml:"address"`
	City      string `xml:"city"`
	County    string `xml:"county"`
	State     string `xml:"state"`
	Zipcode   string `xml:"zipcode"`
}

// StationsResponse represents the full stns API response
type StationsResponse struct {
	Stations []StationResponse `xml:"stations>station"`
	Message  MessageResponse   `xml:"message"`
}

// ToStation converts the raw response to a Station
func (r *StationResponse) ToStation() Station {
	st := Station{
		Abbr:    strings.ToUpper(strings.TrimSpace(r.Abbr)),
		Name:    strings.TrimSpace(r.Name),
		City:    r.City,
		County:  r.County,
		Address: r.Address,
	}
	if lat, err := strconv.ParseFloat(strings.TrimSpace(r.Latitude), 64); err == nil {
		st.Lat = lat
	}
	if lon, err := strconv.ParseFloat(strings.TrimSpace(r.Longitude), 64); err == nil {
		st.Lon = lon
	}
	return st
}

// ToStations converts the station list, preserving API order
func (r *StationsResponse) ToStations() []Station {
	stations := make([]Station, 0, len(r.Stations))
	for i := range r.Stations {
		stations = append(stations, r.Stations[i].ToStation())
	}
	return stations
}

// FilterStations returns the stations matching query, case-insensitively. Stations
// whose code or name contains the query come first in list order, followed by near
// misses ranked by edit distance against the code and each word of the name.
func FilterStations(stations []Station, query string) []Station {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return stations
	}

	type nearMiss struct {
		station Station
		dist    int
	}

	var matches []Station
	var near []nearMiss
	allowed := allowedTypos(q)
	for _, st := range stations {
		if strings.Contains(strings.ToLower(st.Abbr), q) || strings.Contains(strings.ToLower(st.Name), q) {
			matches = append(matches, st)
			continue
		}
		if allowed == 0 {
			continue
		}
		if d := typoDistance(st, q); d <= allowed {
			near = append(near, nearMiss{station: st, dist: d})
		}
	}

	slices.SortStableFunc(near, func(a, b nearMiss) int { return cmp.Compare(a.dist, b.dist) })
	for _, n := range near {
		matches = append(matches, n.station)
	}
	return matches
}

func allowedTypos(q string) int {
	switch n := utf8.RuneCountInString(q); {
	case n < 4:
		return 0
	case n <= 6:
		return 1
	default:
		return 2
	}
}

func typoDistance(st Station, q string) int {
	best := lev.ComputeDistance(q, strings.ToLower(st.Abbr))
	words := strings.FieldsFunc(strings.ToLower(st.Name), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, w := range words {
		best = min(best, lev.ComputeDistance(q, w))
	}
	return best
}
