//go:build integration

package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mobil-koeln/bart-cli/internal/api"
	"github.com/mobil-koeln/bart-cli/internal/config"
	"github.com/mobil-koeln/bart-cli/internal/testutil"
)

var (
	binaryPath string
	server     *testutil.MockServer
)

// TestMain builds the binary and starts a mock API before running tests
func TestMain(m *testing.M) {
	binaryPath = filepath.Join(os.TempDir(), "bart-test")
	build := exec.Command("go", "build", "-o", binaryPath, ".")
	if err := build.Run(); err != nil {
		os.Exit(1)
	}

	server = testutil.NewMockServer(testutil.CommandHandler(map[string]string{
		api.CmdStations:   testutil.SampleStationsResponse,
		api.CmdAdvisories: testutil.SampleAdvisoriesResponse,
		api.CmdFare:       testutil.SampleFareResponse,
		api.CmdEstimates:  testutil.SampleDeparturesResponse,
	}))

	code := m.Run()

	server.Close()
	_ = os.Remove(binaryPath)
	os.Exit(code)
}

func runCommand(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	return runCommandEnv(t, nil, args...)
}

// runCommandEnv runs the binary against the mock API with extra environment variables
func runCommandEnv(t *testing.T, env []string, args ...string) (string, string, int) {
	t.Helper()
	cmd := exec.Command(binaryPath, append([]string{"--no-cache", "--color", "never"}, args...)...)
	cmd.Dir = t.TempDir()
	cmd.Env = append(os.Environ(),
		"XDG_CONFIG_HOME="+t.TempDir(),
		config.EnvAPIURL+"="+server.URL,
		config.EnvStations+"=",
		config.EnvColumns+"=",
	)
	cmd.Env = append(cmd.Env, env...)

	stdout, err := cmd.Output()
	stderr := ""
	exitCode := 0

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
			stderr = string(exitErr.Stderr)
		}
	}

	return string(stdout), stderr, exitCode
}

func TestCLI_Version(t *testing.T) {
	stdout, _, exitCode := runCommand(t, "--version")

	testutil.AssertEqual(t, exitCode, 0)
	testutil.AssertContains(t, stdout, "bart version")
}

func TestCLI_Help(t *testing.T) {
	stdout, _, exitCode := runCommand(t, "--help")

	testutil.AssertEqual(t, exitCode, 0)
	for _, want := range []string{"stations", "advisories", "fare", "pick", "--columns", "--refresh"} {
		testutil.AssertContains(t, stdout, want)
	}
}

func TestCLI_NoStations(t *testing.T) {
	stdout, stderr, exitCode := runCommand(t)

	testutil.AssertEqual(t, exitCode, 1)
	testutil.AssertContains(t, stdout, "Usage:")
	testutil.AssertContains(t, stderr, "no stations given")
}

func TestCLI_InvalidStation(t *testing.T) {
	_, stderr, exitCode := runCommand(t, "mc")

	testutil.AssertEqual(t, exitCode, 1)
	testutil.AssertContains(t, stderr, "4-character station abbreviation")
}

func TestCLI_InvalidColumns(t *testing.T) {
	_, stderr, exitCode := runCommand(t, "--columns", "0", "mcar")

	testutil.AssertEqual(t, exitCode, 1)
	testutil.AssertContains(t, stderr, "columns")
}

func TestCLI_FlagRepairsEnvironment(t *testing.T) {
	env := []string{config.EnvColumns + "=0"}

	_, stderr, exitCode := runCommandEnv(t, env, "stations")
	testutil.AssertEqual(t, exitCode, 1)
	testutil.AssertContains(t, stderr, "columns: must be between 1 and 16")

	stdout, stderr, exitCode := runCommandEnv(t, env, "--columns", "4", "stations")
	if exitCode != 0 {
		t.Fatalf("exit code %d, stderr: %s", exitCode, stderr)
	}
	testutil.AssertContains(t, stdout, "MCAR - MacArthur")
}

func TestCLI_List(t *testing.T) {
	for _, args := range [][]string{{"--list"}, {"-l"}, {"stations"}} {
		stdout, stderr, exitCode := runCommand(t, args...)

		if exitCode != 0 {
			t.Fatalf("%v: exit code %d, stderr: %s", args, exitCode, stderr)
		}
		testutil.AssertContains(t, stdout, "12TH - 12th St. Oakland City Center")
		testutil.AssertContains(t, stdout, "EMBR - Embarcadero")
		testutil.AssertContains(t, stdout, "MCAR - MacArthur")
	}
}

func TestCLI_StationsQuery(t *testing.T) {
	stdout, _, exitCode := runCommand(t, "stations", "embarcadro")

	testutil.AssertEqual(t, exitCode, 0)
	testutil.AssertContains(t, stdout, "EMBR - Embarcadero")
	testutil.AssertNotContains(t, stdout, "MCAR")
}

func TestCLI_StationsJSON(t *testing.T) {
	stdout, _, exitCode := runCommand(t, "stations", "--json")

	testutil.AssertEqual(t, exitCode, 0)

	var stations []map[string]any
	if err := json.Unmarshal([]byte(stdout), &stations); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	testutil.AssertLen(t, stations, 3)
	testutil.AssertEqual(t, stations[1]["abbr"], any("EMBR"))
}

func TestCLI_Advisories(t *testing.T) {
	stdout, _, exitCode := runCommand(t, "advisories")

	testutil.AssertEqual(t, exitCode, 0)
	testutil.AssertContains(t, stdout, "10-minute delay at Embarcadero")
	testutil.AssertContains(t, stdout, "DELAY (")
}

func TestCLI_Fare(t *testing.T) {
	stdout, _, exitCode := runCommand(t, "fare", "12th", "embr")

	testutil.AssertEqual(t, exitCode, 0)
	testutil.AssertContains(t, stdout, "Clipper")
	testutil.AssertContains(t, stdout, "$3.30")
}

func TestCLI_FareMissingArgument(t *testing.T) {
	_, stderr, exitCode := runCommand(t, "fare", "12th")

	testutil.AssertEqual(t, exitCode, 1)
	if !strings.Contains(stderr, "accepts 2 arg(s)") {
		t.Errorf("Expected argument count error, got: %s", stderr)
	}
}
