package plans

// Tier identifies one of the four fixed subscription price points.
type Tier string

const (
	Tier1 Tier = "tier1" // New Church, 0-50 members
	Tier2 Tier = "tier2" // Growing Church, 51-150 members
	Tier3 Tier = "tier3" // Established Church, 151-499 members
	Tier4 Tier = "tier4" // Mega Church, 500+ members
)

type TierInfo struct {
	Name        string
	MemberRange string
	PriceUSD    float64
	MaxMembers  int // 0 means unbounded
}

var tierInfo = map[Tier]TierInfo{
	Tier1: {Name: "New Church", MemberRange: "0-50 members", PriceUSD: 10, MaxMembers: 50},
	Tier2: {Name: "Growing Church", MemberRange: "51-150 members", PriceUSD: 15, MaxMembers: 150},
	Tier3: {Name: "Established Church", MemberRange: "151-499 members", PriceUSD: 20, MaxMembers: 499},
	Tier4: {Name: "Mega Church", MemberRange: "500+ members", PriceUSD: 50, MaxMembers: 0},
}

func Valid(t Tier) bool {
	_, ok := tierInfo[t]
	return ok
}

func Info(t Tier) (TierInfo, bool) {
	info, ok := tierInfo[t]
	return info, ok
}

// All returns the tiers in ascending price order.
func All() []Tier {
	return []Tier{Tier1, Tier2, Tier3, Tier4}
}
