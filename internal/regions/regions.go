package regions

import "strings"

// All is the canonical enumeration of region codes used for aggregation
// and mapping: the fifty states plus the District of Columbia and Puerto
// Rico. Forecast output always covers this list exactly.
var All = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL",
	"GA", "HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME",
	"MD", "MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV", "NH",
	"NJ", "NM", "NY", "NC", "ND", "OH", "OK", "OR", "PA", "RI",
	"SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI",
	"WY", "PR",
}

// aliases maps raw free-text locality strings, as they appear in scraped
// postings, to canonical region codes. Lookup is exact-string; anything
// unmapped passes through unchanged.
var aliases = map[string]string{
	"New York City Metropolitan Area":         "NY",
	"Greater New York City Area":              "NY",
	"San Francisco Bay Area":                  "CA",
	"Greater Los Angeles Area":                "CA",
	"Los Angeles Metropolitan Area":           "CA",
	"Greater San Diego Area":                  "CA",
	"Greater Seattle Area":                    "WA",
	"Greater Chicago Area":                    "IL",
	"Chicagoland Area":                        "IL",
	"Greater Boston":                          "MA",
	"Greater Boston Area":                     "MA",
	"Washington DC-Baltimore Area":            "DC",
	"Greater Washington DC Area":              "DC",
	"Dallas-Fort Worth Metroplex":             "TX",
	"Greater Houston":                         "TX",
	"Austin, Texas Metropolitan Area":         "TX",
	"Greater Austin Area":                     "TX",
	"Atlanta Metropolitan Area":               "GA",
	"Greater Atlanta Area":                    "GA",
	"Miami-Fort Lauderdale Area":              "FL",
	"Greater Tampa Bay Area":                  "FL",
	"Greater Orlando":                         "FL",
	"Greater Philadelphia":                    "PA",
	"Greater Pittsburgh Region":               "PA",
	"Greater Phoenix Area":                    "AZ",
	"Denver Metropolitan Area":                "CO",
	"Greater Denver Area":                     "CO",
	"Greater Minneapolis-St. Paul Area":       "MN",
	"Greater St. Louis":                       "MO",
	"Kansas City Metropolitan Area":           "MO",
	"Greater Cleveland":                       "OH",
	"Cincinnati Metropolitan Area":            "OH",
	"Columbus, Ohio Metropolitan Area":        "OH",
	"Detroit Metropolitan Area":               "MI",
	"Greater Detroit Area":                    "MI",
	"Nashville Metropolitan Area":             "TN",
	"Greater Memphis Area":                    "TN",
	"Charlotte Metro":                         "NC",
	"Raleigh-Durham-Chapel Hill Area":         "NC",
	"Greater Richmond Region":                 "VA",
	"Hampton Roads, Virginia Metro Area":      "VA",
	"Portland, Oregon Metropolitan Area":      "OR",
	"Greater Portland Area":                   "OR",
	"Salt Lake City Metropolitan Area":        "UT",
	"Las Vegas Metropolitan Area":             "NV",
	"Greater Milwaukee":                       "WI",
	"Greater Indianapolis":                    "IN",
	"Louisville Metropolitan Area":            "KY",
	"Oklahoma City Metropolitan Area":         "OK",
	"Greater New Orleans Region":              "LA",
	"Greater Birmingham, Alabama Area":        "AL",
	"Omaha Metropolitan Area":                 "NE",
	"Greater Hartford":                        "CT",
	"Buffalo-Niagara Falls Area":              "NY",
	"Albany, New York Metropolitan Area":      "NY",
	"Greater Sacramento":                      "CA",
	"San Juan, Puerto Rico Metropolitan Area": "PR",
	"United States":                           "US",
	"California":                              "CA",
	"Texas":                                   "TX",
	"New York":                                "NY",
	"Florida":                                 "FL",
	"Illinois":                                "IL",
	"Washington":                              "WA",
	"District of Columbia":                    "DC",
	"Puerto Rico":                             "PR",
}

// Resolve maps a raw region string to its canonical code. Unmapped
// strings pass through unchanged, which may leave them without a
// boundary match downstream.
func Resolve(raw string) string {
	if code, ok := aliases[raw]; ok {
		return code
	}
	return raw
}

// Contains reports whether code is part of the canonical enumeration.
func Contains(code string) bool {
	for _, c := range All {
		if c == code {
			return true
		}
	}
	return false
}

// SplitLocation splits a free-text "City, State" location on ", ",
// taking the last segment as the region and the first as the city. A
// string with no comma is treated as a bare region with no city.
func SplitLocation(location string) (city, state string) {
	if strings.Contains(location, ",") {
		parts := strings.Split(location, ", ")
		state = strings.TrimSpace(parts[len(parts)-1])
		city = strings.TrimSpace(parts[0])
		return city, state
	}
	return "", location
}
