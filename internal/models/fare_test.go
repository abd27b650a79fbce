package models

import (
	"encoding/xml"
	"testing"

	"github.com/mobil-koeln/bart-cli/internal/testutil"
)

func TestFareResponse_ToFare(t *testing.T) {
	var resp FareResponse
	if err := xml.Unmarshal([]byte(testutil.SampleFareResponse), &resp); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}

	fare := resp.ToFare()
	testutil.AssertEqual(t, fare.Origin, "12TH")
	testutil.AssertEqual(t, fare.Destination, "EMBR")
	testutil.AssertLen(t, fare.Classes, 4)
	testutil.AssertEqual(t, fare.Classes[0].Class, "clipper")
	testutil.AssertEqual(t, fare.Classes[0].Name, "Clipper")
	testutil.AssertFloatEqual(t, fare.Classes[0].Amount, 3.30, 0.001)

	lowest, ok := fare.Lowest()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, lowest.Class, "rtcclipper")
}

func TestFareResponse_ToFare_TripOnly(t *testing.T) {
	body := `<root><origin>mcar</origin><destination>rich</destination><trip><fare>2.45</fare></trip></root>`
	var resp FareResponse
	if err := xml.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}

	fare := resp.ToFare()
	testutil.AssertLen(t, fare.Classes, 1)
	testutil.AssertEqual(t, fare.Classes[0].Class, "standard")
	testutil.AssertFloatEqual(t, fare.Classes[0].Amount, 2.45, 0.001)
}

func TestFare_Lowest_Empty(t *testing.T) {
	fare := &Fare{}
	_, ok := fare.Lowest()
	testutil.AssertFalse(t, ok)
}
