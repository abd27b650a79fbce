package models

import (
	"fmt"
	"strings"
	"time"
)

// PostedLayout is the timestamp format of advisory posted/expires fields
const PostedLayout = "Mon Jan 02 2006 03:04 PM MST"

// Advisory is a service advisory (BSA) from the transit agency
type Advisory struct {
	ID          string `json:"id,omitempty"`
	Station     string `json:"station,omitempty"`
	Type        string `json:"type"`
	Posted      string `json:"posted"`
	Expires     string `json:"expires,omitempty"`
	Message     string `json:"message"`
	Description string `json:"description,omitempty"`
}

// Reportable reports whether the advisory carries a type, a posted time and a message.
// The service answers "no delays reported" with an advisory missing these fields.
func (a Advisory) Reportable() bool {
	return a.Type != "" && a.Posted != "" && a.Message != ""
}

// Text formats the advisory as a single line: "TYPE (posted) - message"
func (a Advisory) Text() string {
	return fmt.Sprintf("%s (%s) - %s", a.Type, a.Posted, a.Message)
}

// PostedTime parses the posted timestamp
func (a Advisory) PostedTime() (time.Time, bool) {
	t, err := time.Parse(PostedLayout, a.Posted)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// AdvisoryResponse represents the raw XML for one <bsa> element
type AdvisoryResponse struct {
	ID          string `xml:"id,attr"`
	Station     string `xml:"station"`
	Type        string `xml:"type"`
	Description string `xml:"description"`
	SMSText     string `xml:"sms_text"`
	Posted      string `xml:"posted"`
	Expires     string `xml:"expires"`
}

// AdvisoriesResponse represents the full bsa API response
type AdvisoriesResponse struct {
	Date       string             `xml:"date"`
	Time       string             `xml:"time"`
	Advisories []AdvisoryResponse `xml:"bsa"`
	Message    MessageResponse    `xml:"message"`
}

// ToAdvisory converts the raw response to an Advisory
func (r *AdvisoryResponse) ToAdvisory() Advisory {
	return Advisory{
		ID:          r.ID,
		Station:     strings.TrimSpace(r.Station),
		Type:        strings.TrimSpace(r.Type),
		Posted:      strings.TrimSpace(r.Posted),
		Expires:     strings.TrimSpace(r.Expires),
		Message:     strings.TrimSpace(r.SMSText),
		Description: strings.TrimSpace(r.Description),
	}
}

// ToAdvisories converts every <bsa> element in fetch order
func (r *AdvisoriesResponse) ToAdvisories() []Advisory {
	advisories := make([]Advisory, 0, len(r.Advisories))
	for i := range r.Advisories {
		advisories = append(advisories, r.Advisories[i].ToAdvisory())
	}
	return advisories
}
