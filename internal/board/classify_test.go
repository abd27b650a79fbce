package board

import (
	"fmt"
	"testing"

	"github.com/mobil-koeln/bart-cli/internal/models"
	"github.com/mobil-koeln/bart-cli/internal/testutil"
)

func TestMinutesColor(t *testing.T) {
	tests := []struct {
		minutes string
		want    Color
	}{
		{"0", Urgent},
		{"1", Urgent},
		{"5", Urgent},
		{"6", Warning},
		{"10", Warning},
		{"11", ColorNone},
		{"45", ColorNone},
		{"3 min", Urgent},
		{"Leaving", Urgent},
		{"Arriving", Urgent},
		{"", Urgent},
	}

	for _, tt := range tests {
		t.Run(tt.minutes, func(t *testing.T) {
			testutil.AssertEqual(t, MinutesColor(tt.minutes), tt.want)
		})
	}
}

func TestMinutesColor_AllValues(t *testing.T) {
	for m := -5; m <= 120; m++ {
		got := MinutesColor(fmt.Sprint(m))
		switch {
		case m <= 5:
			testutil.AssertEqual(t, got, Urgent)
		case m <= 10:
			testutil.AssertEqual(t, got, Warning)
		default:
			testutil.AssertEqual(t, got, ColorNone)
		}
	}
}

func TestLengthColor(t *testing.T) {
	for cars := 0; cars <= 12; cars++ {
		got := LengthColor(cars)
		switch {
		case cars < 6:
			testutil.AssertEqual(t, got, Warning)
		case cars >= 8:
			testutil.AssertEqual(t, got, Good)
		default:
			testutil.AssertEqual(t, got, ColorNone)
		}
	}
}

func TestLineColor(t *testing.T) {
	tests := []struct {
		in   models.LineColor
		want Color
	}{
		{models.LineRed, ColorRed},
		{models.LineOrange, ColorOrange},
		{models.LineYellow, ColorYellow},
		{models.LineGreen, ColorGreen},
		{models.LineBlue, ColorBlue},
		{models.LineWhite, ColorWhite},
		{models.LineNone, ColorNone},
		{models.LineColor("PURPLE"), ColorNone},
	}

	for _, tt := range tests {
		testutil.AssertEqual(t, LineColor(tt.in), tt.want)
	}
}
