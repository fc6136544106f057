// Package recommend matches opportunities against a volunteer's stated
// preferences with a tiered, deterministic narrowing and a fallback that
// guarantees a non-empty result whenever opportunities exist.
package recommend

import (
	"volunteerhub/pkg/types"
)

// Filter applies the preference tiers in priority order and returns the
// matching subset in the original order:
//
//  1. Type: when the preference carries volunteering types, keep only
//     opportunities whose type is among them.
//  2. Days: preferred days never narrow results. Opportunities carry no
//     day-of-week attribute, so the preference is stored and displayed only.
//  3. Location: when a location preference is set, keep opportunities at that
//     location; hybrid always passes.
//
// If the tiers eliminate everything, the full unfiltered list is returned
// instead and fellBack reports true: a volunteer with preferences never sees
// an empty page while opportunities exist. No relevance ranking is computed.
func Filter(all []types.Opportunity, prefs types.VolunteerPreferences) (matched []types.Opportunity, fellBack bool) {
	filtered := all

	if len(prefs.VolunteeringTypes) > 0 {
		wanted := make(map[types.OpportunityType]bool, len(prefs.VolunteeringTypes))
		for _, t := range prefs.VolunteeringTypes {
			wanted[t] = true
		}

		filtered = keep(filtered, func(opp types.Opportunity) bool {
			return wanted[opp.Type]
		})
	}

	if len(filtered) > 0 && prefs.LocationPreference != "" {
		filtered = keep(filtered, func(opp types.Opportunity) bool {
			return opp.Location == prefs.LocationPreference || opp.Location == types.LocationHybrid
		})
	}

	if len(filtered) == 0 {
		return all, len(all) > 0
	}

	return filtered, false
}

func keep(opps []types.Opportunity, match func(types.Opportunity) bool) []types.Opportunity {
	kept := make([]types.Opportunity, 0, len(opps))
	for _, opp := range opps {
		if match(opp) {
			kept = append(kept, opp)
		}
	}
	return kept
}
