package output

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/mobil-koeln/bart-cli/internal/models"
	"github.com/mobil-koeln/bart-cli/internal/testutil"
)

func TestRenderStations_Empty(t *testing.T) {
	var buf bytes.Buffer
	RenderStations(&buf, nil, TableOptions{Colors: NewColors(ColorNever)})

	testutil.AssertContains(t, buf.String(), "No stations found")
}

func TestRenderStations(t *testing.T) {
	stations := []models.Station{
		{Abbr: "12TH", Name: "12th St. Oakland City Center"},
		{Abbr: "EMBR", Name: "Embarcadero"},
	}

	var buf bytes.Buffer
	RenderStations(&buf, stations, TableOptions{Colors: NewColors(ColorNever)})

	testutil.AssertEqual(t, buf.String(), "12TH - 12th St. Oakland City Center\nEMBR - Embarcadero\n")
}

func TestRenderStations_CacheAge(t *testing.T) {
	stations := []models.Station{{Abbr: "EMBR", Name: "Embarcadero"}}

	var buf bytes.Buffer
	RenderStations(&buf, stations, TableOptions{
		Colors:   NewColors(ColorNever),
		Now:      time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC),
		CacheAge: 3 * time.Hour,
	})

	testutil.AssertContains(t, buf.String(), "(station list cached 3 hours ago)")
}

func TestRenderAdvisories(t *testing.T) {
	advisories := []models.Advisory{{
		Type:        "DELAY",
		Posted:      "Fri Oct 16 2026 09:35 AM PDT",
		Message:     "10-min delay at EMBR EB dir due to equip prob.",
		Description: "There is a 10-minute delay at Embarcadero.",
	}}
	posted, ok := advisories[0].PostedTime()
	testutil.AssertTrue(t, ok)

	var buf bytes.Buffer
	RenderAdvisories(&buf, advisories, TableOptions{
		Colors: NewColors(ColorNever),
		Now:    posted.Add(16 * time.Minute),
	})

	output := buf.String()
	testutil.AssertContains(t, output, "DELAY (Fri Oct 16 2026 09:35 AM PDT) - 10-min delay at EMBR EB dir due to equip prob.")
	testutil.AssertContains(t, output, "posted 16 minutes ago")
	testutil.AssertContains(t, output, "There is a 10-minute delay at Embarcadero.")
}

func TestRenderAdvisories_NoDelays(t *testing.T) {
	var buf bytes.Buffer
	RenderAdvisories(&buf, []models.Advisory{{Message: "No delays reported."}}, TableOptions{})

	testutil.AssertEqual(t, strings.TrimSpace(buf.String()), "No delays reported.")
}

func TestRenderAdvisories_StopsAtPlaceholder(t *testing.T) {
	advisories := []models.Advisory{
		{Type: "DELAY", Posted: "unparsable", Message: "first"},
		{Message: "No delays reported."},
		{Type: "DELAY", Posted: "unparsable", Message: "hidden"},
	}

	var buf bytes.Buffer
	RenderAdvisories(&buf, advisories, TableOptions{Colors: NewColors(ColorNever)})

	output := buf.String()
	testutil.AssertContains(t, output, "DELAY (unparsable) - first")
	testutil.AssertNotContains(t, output, "hidden")
	testutil.AssertNotContains(t, output, "posted")
}

func TestRenderFare(t *testing.T) {
	fare := &models.Fare{
		Origin:      "12TH",
		Destination: "EMBR",
		Classes: []models.FareClass{
			{Class: "clipper", Name: "Clipper", Amount: 3.30},
			{Class: "senior", Name: "Senior/Disabled Clipper", Amount: 1.20},
			{Class: "standard", Amount: 3.30},
		},
	}

	var buf bytes.Buffer
	RenderFare(&buf, fare, TableOptions{Colors: NewColors(ColorNever)})

	output := buf.String()
	testutil.AssertContains(t, output, "Fares from 12TH to EMBR")
	testutil.AssertContains(t, output, "  Clipper                  $3.30")
	testutil.AssertContains(t, output, "  Senior/Disabled Clipper  $1.20")
	testutil.AssertContains(t, output, "  standard                 $3.30")
}

func TestRenderFare_HighlightsLowest(t *testing.T) {
	fare := &models.Fare{
		Origin:      "12TH",
		Destination: "EMBR",
		Classes: []models.FareClass{
			{Class: "clipper", Name: "Clipper", Amount: 3.30},
			{Class: "senior", Name: "Senior", Amount: 1.20},
		},
	}
	c := NewColors(ColorAlways)

	var buf bytes.Buffer
	RenderFare(&buf, fare, TableOptions{Colors: c})

	output := buf.String()
	testutil.AssertContains(t, output, c.Best("$%.2f", 1.20))
	testutil.AssertContains(t, output, c.Amount("$%.2f", 3.30))
	testutil.AssertContains(t, ansi.Strip(output), "Senior   $1.20")
}

func TestRenderFare_Empty(t *testing.T) {
	var buf bytes.Buffer
	RenderFare(&buf, nil, TableOptions{})

	testutil.AssertContains(t, buf.String(), "No fares found")
}
