package reactions

import "churchfeed-app/internal/domain/reactions"

// typeOrder fixes the display order of aggregate rows.
var typeOrder = []reactions.Type{
	reactions.TypeHeart,
	reactions.TypeLike,
	reactions.TypePrayer,
	reactions.TypePraise,
	reactions.TypeHeartHands,
}

// ApplyToggle computes the next summary after the viewer toggles t. The
// optimistic UI transition and the persisted transition share this one
// function, so they cannot drift apart.
func ApplyToggle(current []Summary, t reactions.Type) []Summary {
	counts := map[reactions.Type]int{}
	var active reactions.Type
	for _, s := range current {
		counts[s.Type] = s.Count
		if s.UserReacted {
			active = s.Type
		}
	}

	if active == t {
		// Tapping the active reaction clears it.
		counts[t]--
		active = ""
	} else {
		if active != "" {
			counts[active]--
		}
		counts[t]++
		active = t
	}

	out := make([]Summary, 0, len(counts))
	for _, typ := range typeOrder {
		if counts[typ] > 0 {
			out = append(out, Summary{
				Type:        typ,
				Count:       counts[typ],
				UserReacted: typ == active,
			})
		}
	}
	return out
}
