package router

// Resolver names used across the default capability and decomposition tables.
const (
	ResolverHistorical  = "historical_patterns"
	ResolverCampus      = "campus_conflicts"
	ResolverTravel      = "travel"
	ResolverVenueData   = "venue_data"
	ResolverGameManager = "game_manager"
)

// sharedVenueSchools are schools whose primary arena hosts several sports, so
// venue-conflict requests naming them score higher and decompose into a
// dedicated high-priority check. Natural-language and code variants both
// match.
var sharedVenueSchools = []string{
	"arizona_state", "arizona state", "asu",
	"iowa_state", "iowa state", "isu",
	"west_virginia", "west virginia", "wvu",
}

// outdoorSports trigger a supplementary weather-risk assessment during
// decomposition.
var outdoorSports = []string{"football", "baseball", "softball", "soccer", "track"}

// DefaultCapabilities returns the standard resolver capability table. Order
// matters: it is the scoring tie-break and the decomposition discovery order.
func DefaultCapabilities() []Capability {
	return []Capability{
		{
			Name:        ResolverHistorical,
			Description: "Analyzes historical scheduling patterns, traditions and rivalries",
			Keywords:    []string{"history", "tradition", "pattern", "historical", "rivalry", "past", "previous", "season", "precedent"},
		},
		{
			Name:        ResolverCampus,
			Description: "Detects and resolves venue sharing conflicts across sports",
			Keywords:    []string{"venue", "conflict", "facility", "arena", "stadium", "shared", "doubleheader", "overlap"},
			Boosts:      []Boost{{Terms: sharedVenueSchools, Confidence: boostConfidence}},
		},
		{
			Name:        ResolverTravel,
			Description: "Incorporates travel distance, geography and weather into scheduling",
			Keywords:    []string{"travel", "distance", "geography", "weather", "location", "miles", "trip", "journey", "climate"},
		},
		{
			Name:        ResolverVenueData,
			Description: "Provides facility data for conference venues",
			Keywords:    []string{"venue", "facility", "capacity", "specs", "dimensions", "surface", "location", "address"},
			Boosts:      []Boost{{Terms: []string{"capacity", "dimensions", "surface"}, Confidence: boostConfidence}},
		},
		{
			Name:        ResolverGameManager,
			Description: "Plans game operations, staffing and weather risk",
			Keywords:    []string{"operations", "logistics", "game day", "staffing", "setup", "weather", "availability", "personnel"},
			Boosts:      []Boost{{Terms: []string{"operations", "game day", "weather"}, Confidence: boostConfidence}},
		},
	}
}

// decomposeRule maps request keywords to one sub-task. Rules with a non-empty
// also list fire only when both keyword sets match, covering the
// school-specific and outdoor-sport add-on checks.
type decomposeRule struct {
	resolver    string
	priority    int
	description string
	inputPrefix string
	match       []string
	also        []string
}

var decomposeRules = []decomposeRule{
	{
		resolver:    ResolverHistorical,
		priority:    1,
		description: "Analyze historical scheduling patterns and traditions",
		inputPrefix: "Analyze patterns for scheduling related to: ",
		match:       []string{"history", "tradition", "pattern", "rivalry"},
	},
	{
		resolver:    ResolverCampus,
		priority:    2,
		description: "Identify and resolve potential venue conflicts",
		inputPrefix: "Identify venue sharing conflicts for: ",
		match:       []string{"venue", "conflict", "facility", "arena", "stadium", "shared"},
	},
	{
		resolver:    ResolverCampus,
		priority:    1,
		description: "Special venue conflict analysis for shared facilities",
		inputPrefix: "Check for venue conflicts at shared facilities for: ",
		match:       []string{"venue", "conflict", "facility", "arena", "stadium", "shared"},
		also:        sharedVenueSchools,
	},
	{
		resolver:    ResolverTravel,
		priority:    3,
		description: "Optimize for travel and geographical considerations",
		inputPrefix: "Optimize travel and geography for: ",
		match:       []string{"travel", "distance", "geography", "weather"},
	},
	{
		resolver:    ResolverVenueData,
		priority:    2,
		description: "Retrieve venue specifications and data",
		inputPrefix: "Get venue data relevant to: ",
		match:       []string{"venue", "facility", "capacity", "specs"},
	},
	{
		resolver:    ResolverGameManager,
		priority:    2,
		description: "Plan game operations and logistics",
		inputPrefix: "Create operations plan for: ",
		match:       []string{"operations", "logistics", "game day", "staffing", "setup", "weather"},
	},
	{
		resolver:    ResolverGameManager,
		priority:    3,
		description: "Analyze weather risks and create contingency plans",
		inputPrefix: "Assess weather risks for: ",
		match:       []string{"operations", "logistics", "game day", "staffing", "setup", "weather"},
		also:        outdoorSports,
	},
}
