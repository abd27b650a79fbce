package testutil

import (
	"errors"
	"fmt"
	"testing"
)

func TestAssertEqual(t *testing.T) {
	AssertEqual(t, "MCAR", "MCAR")
	AssertEqual(t, 10, 10)
}

func TestAssertNil(t *testing.T) {
	AssertNil(t, nil)
}

func TestAssertError(t *testing.T) {
	AssertError(t, errors.New("no internet connection"))
}

func TestAssertErrorIs(t *testing.T) {
	errBase := errors.New("interrupted")
	AssertErrorIs(t, fmt.Errorf("MCAR: %w", errBase), errBase)
}

func TestAssertContains(t *testing.T) {
	AssertContains(t, "BART departures as of 09:51:12 AM", "09:51:12")
	AssertContains(t, "Antioch", "")
	AssertNotContains(t, "Press 'q' to quit.", "Ctrl")
}

func TestAssertFloatEqual(t *testing.T) {
	AssertFloatEqual(t, 3.30, 3.3, 0.001)
	AssertFloatEqual(t, -122.271450, -122.27, 0.01)
}

func TestAssertTrueFalse(t *testing.T) {
	AssertTrue(t, len("EMBR") == 4)
	AssertFalse(t, len("MC") == 4)
}

func TestAssertLen(t *testing.T) {
	AssertLen(t, []string{"MCAR", "EMBR"}, 2)
	AssertLen(t, []int(nil), 0)
}
