package api

const (
	// BaseURL is the base URL for the BART API
	BaseURL = "https://api.bart.gov/api"

	// DefaultAPIKey is the public demo key published by BART
	DefaultAPIKey = "MW9S-E7SL-26DU-VV8V"

	// EndpointAdvisories serves service advisories
	// Commands: bsa (optional orig), count, elev
	EndpointAdvisories = "/bsa.aspx"

	// EndpointEstimates serves real-time departure estimates
	// Commands: etd (required orig, optional plat, dir)
	EndpointEstimates = "/etd.aspx"

	// EndpointStations serves station information
	// Commands: stns, stninfo (orig), stnaccess (orig)
	EndpointStations = "/stn.aspx"

	// EndpointSchedule serves schedules and fares
	// Commands: fare (orig, dest), arrive, depart, stnsched, ...
	EndpointSchedule = "/sched.aspx"
)

// Commands sent in the "cmd" query parameter
const (
	CmdAdvisories = "bsa"
	CmdEstimates  = "etd"
	CmdStations   = "stns"
	CmdFare       = "fare"
)
