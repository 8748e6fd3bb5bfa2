package profiler

import "testing"

func TestBuiltinProfiles(t *testing.T) {
	profiles := BuiltinProfiles()

	if len(profiles) != 5 {
		t.Fatalf("got %d profiles, want 5", len(profiles))
	}

	seen := make(map[string]bool)
	for _, p := range profiles {
		if p.App == "" {
			t.Error("profile with empty App name")
		}
		if seen[p.App] {
			t.Errorf("duplicate profile %q", p.App)
		}
		seen[p.App] = true

		if len(p.Regions) == 0 {
			t.Errorf("profile %q has no regions", p.App)
		}
		for region, hosts := range p.Regions {
			if len(hosts) == 0 {
				t.Errorf("profile %q region %q has no hosts", p.App, region)
			}
		}
	}
}

func TestLeagueOfLegendsRegions(t *testing.T) {
	lol := LeagueOfLegends()

	for _, region := range []string{"NA", "EUW", "EUNE", "KR", "BR", "SG"} {
		if _, ok := lol.Regions[region]; !ok {
			t.Errorf("missing region %q", region)
		}
	}
	if len(lol.Regions["NA"]) != 4 {
		t.Errorf("NA has %d hosts, want 4", len(lol.Regions["NA"]))
	}
}

func TestProfileByApp(t *testing.T) {
	profiles := BuiltinProfiles()

	if p := ProfileByApp(profiles, "CS2"); p == nil || p.App != "CS2" {
		t.Errorf("ProfileByApp(CS2) = %+v, want the CS2 profile", p)
	}
	if p := ProfileByApp(profiles, "NoSuchGame"); p != nil {
		t.Errorf("ProfileByApp(NoSuchGame) = %+v, want nil", p)
	}
	if p := ProfileByApp(nil, "CS2"); p != nil {
		t.Errorf("ProfileByApp on empty list = %+v, want nil", p)
	}
}
