package models

import (
	"strconv"
	"strings"
)

// Fare is the price of a trip between two stations
type Fare struct {
	Origin      string      `json:"origin"`
	Destination string      `json:"destination"`
	Classes     []FareClass `json:"classes"`
}

// FareClass is the fare for one rider category (clipper, senior, youth, ...)
type FareClass struct {
	Class  string  `json:"class"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// Lowest returns the cheapest fare class, if any
func (f *Fare) Lowest() (FareClass, bool) {
	if len(f.Classes) == 0 {
		return FareClass{}, false
	}
	lowest := f.Classes[0]
	for _, c := range f.Classes[1:] {
		if c.Amount < lowest.Amount {
			lowest = c
		}
	}
	return lowest, true
}

// FareResponse represents the raw XML of the fare command
type FareResponse struct {
	Origin      string `xml:"origin"`
	Destination string `xml:"destination"`
	Trip        struct {
		Fare string `xml:"fare"`
	} `xml:"trip"`
	Fares []struct {
		Amount string `xml:"amount,attr"`
		Class  string `xml:"class,attr"`
		Name   string `xml:"name"`
	} `xml:"fares>fare"`
	Message MessageResponse `xml:"message"`
}

// ToFare converts the raw response to a Fare. Older responses only carry the
// single <trip><fare> amount, which becomes a "standard" class.
func (r *FareResponse) ToFare() *Fare {
	fare := &Fare{
		Origin:      strings.ToUpper(strings.TrimSpace(r.Origin)),
		Destination: strings.ToUpper(strings.TrimSpace(r.Destination)),
	}

	for _, f := range r.Fares {
		amount, err := strconv.ParseFloat(strings.TrimSpace(f.Amount), 64)
		if err != nil {
			continue
		}
		name := strings.TrimSpace(f.Name)
		if name == "" {
			name = f.Class
		}
		fare.Classes = append(fare.Classes, FareClass{Class: f.Class, Name: name, Amount: amount})
	}

	if len(fare.Classes) == 0 {
		if amount, err := strconv.ParseFloat(strings.TrimSpace(r.Trip.Fare), 64); err == nil {
			fare.Classes = append(fare.Classes, FareClass{Class: "standard", Name: "Standard", Amount: amount})
		}
	}

	return fare
}
