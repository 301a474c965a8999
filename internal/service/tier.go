package service

// Customer tiers derived from lifetime order count. The tier is never stored;
// it is recomputed from users.total_orders wherever it is needed.
const (
	TierNew    = "New"
	TierBronze = "Bronze"
	TierSilver = "Silver"
	TierGold   = "Gold"
	TierVIP    = "VIP"
)

// ComputeTier maps a lifetime order count to a tier name and its discount
// percentage. Threshold values belong to the higher tier.
func ComputeTier(totalOrders int) (string, int) {
	switch {
	case totalOrders >= 50:
		return TierVIP, 20
	case totalOrders >= 30:
		return TierGold, 15
	case totalOrders >= 15:
		return TierSilver, 10
	case totalOrders >= 5:
		return TierBronze, 5
	default:
		return TierNew, 0
	}
}
