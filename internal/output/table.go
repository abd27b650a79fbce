package output

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/mobil-koeln/bart-cli/internal/models"
)

// TableOptions configures the listing output
type TableOptions struct {
	Colors *Colors
	// Now is the reference time for relative timestamps; zero means time.Now
	Now time.Time
	// CacheAge is how old the listed data is when it came from the cache
	CacheAge time.Duration
}

func (o TableOptions) colors() *Colors {
	if o.Colors == nil {
		return NewColors(ColorNever)
	}
	return o.Colors
}

func (o TableOptions) now() time.Time {
	if o.Now.IsZero() {
		return time.Now()
	}
	return o.Now
}

// RenderStations prints one "ABBR - Name" line per station
func RenderStations(w io.Writer, stations []models.Station, opts TableOptions) {
	if len(stations) == 0 {
		_, _ = fmt.Fprintln(w, "No stations found.")
		return
	}

	c := opts.colors()
	for _, st := range stations {
		_, _ = fmt.Fprintf(w, "%s - %s\n", c.Code(st.Abbr), c.Name(st.Name))
	}

	if opts.CacheAge > 0 {
		now := opts.now()
		_, _ = fmt.Fprintln(w, c.Muted("(station list cached %s)", humanize.RelTime(now.Add(-opts.CacheAge), now, "ago", "from now")))
	}
}

// RenderAdvisories prints the reportable advisories with their relative posting time
func RenderAdvisories(w io.Writer, advisories []models.Advisory, opts TableOptions) {
	c := opts.colors()
	now := opts.now()

	shown := 0
	for _, adv := range advisories {
		if !adv.Reportable() {
			break
		}
		shown++

		_, _ = fmt.Fprintf(w, "%s (%s) - %s\n", c.Alert(adv.Type), adv.Posted, adv.Message)
		if posted, ok := adv.PostedTime(); ok {
			_, _ = fmt.Fprintf(w, "    %s\n", c.Muted("posted %s", humanize.RelTime(posted, now, "ago", "from now")))
		}
		if adv.Description != "" && adv.Description != adv.Message {
			_, _ = fmt.Fprintf(w, "    %s\n", adv.Description)
		}
	}

	if shown == 0 {
		_, _ = fmt.Fprintln(w, "No delays reported.")
	}
}

// RenderFare prints the fares of a trip, highlighting the lowest
func RenderFare(w io.Writer, fare *models.Fare, opts TableOptions) {
	if fare == nil || len(fare.Classes) == 0 {
		_, _ = fmt.Fprintln(w, "No fares found.")
		return
	}

	c := opts.colors()
	_, _ = fmt.Fprintf(w, "%s %s %s %s\n",
		c.Header("Fares from"), c.Code(fare.Origin), c.Header("to"), c.Code(fare.Destination))
	_, _ = fmt.Fprintln(w)

	width := 0
	for _, fc := range fare.Classes {
		width = max(width, runewidth.StringWidth(className(fc)))
	}

	lowest, hasLowest := fare.Lowest()
	for _, fc := range fare.Classes {
		amount := c.Amount("$%.2f", fc.Amount)
		if hasLowest && fc.Amount == lowest.Amount {
			amount = c.Best("$%.2f", fc.Amount)
		}
		_, _ = fmt.Fprintf(w, "  %s  %s\n", runewidth.FillRight(className(fc), width), amount)
	}
}

func className(fc models.FareClass) string {
	if fc.Name != "" {
		return fc.Name
	}
	return fc.Class
}
