package models

import "strings"

// MessageResponse is the <message> block every BART API response carries
type MessageResponse struct {
	Error   *ErrorResponse `xml:"error"`
	Warning string         `xml:"warning"`
}

// ErrorResponse describes a service-side failure reported inside a 200 response
type ErrorResponse struct {
	Text    string `xml:"text"`
	Details string `xml:"details"`
}

// Failure returns the service error text, if the response reports one
func (m MessageResponse) Failure() (text, details string, failed bool) {
	if m.Error == nil {
		return "", "", false
	}
	return strings.TrimSpace(m.Error.Text), strings.TrimSpace(m.Error.Details), true
}
