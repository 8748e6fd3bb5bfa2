package profiler

// GlobalRegion is the region code used for applications whose public server
// addresses are not split by geography.
const GlobalRegion = "Global"

// BuiltinProfiles returns the compiled-in server profiles. Configuration
// may replace or extend this list.
func BuiltinProfiles() []Profile {
	return []Profile{
		LeagueOfLegends(),
		{App: "Valorant", Regions: map[string][]string{
			GlobalRegion: {"104.18.0.0", "104.18.1.0"},
		}},
		{App: "CS2", Regions: map[string][]string{
			GlobalRegion: {"162.254.196.0", "162.254.197.0"},
		}},
		{App: "Fortnite", Regions: map[string][]string{
			GlobalRegion: {"3.208.0.0", "3.208.1.0"},
		}},
		{App: "Apex Legends", Regions: map[string][]string{
			GlobalRegion: {"13.107.42.14", "13.107.42.15"},
		}},
	}
}

// LeagueOfLegends returns the per-region Riot server profile.
func LeagueOfLegends() Profile {
	return Profile{
		App: "League of Legends",
		Regions: map[string][]string{
			"NA":   {"104.160.131.1", "104.160.131.2", "104.160.131.3", "104.160.131.6"},
			"EUW":  {"104.160.141.3"},
			"EUNE": {"104.160.142.3"},
			"KR":   {"104.160.156.1"},
			"BR":   {"104.160.152.3"},
			"SG":   {"104.160.136.3"},
		},
	}
}

// ProfileByApp returns the named profile from the given list, or nil.
func ProfileByApp(profiles []Profile, app string) *Profile {
	for i := range profiles {
		if profiles[i].App == app {
			return &profiles[i]
		}
	}
	return nil
}
