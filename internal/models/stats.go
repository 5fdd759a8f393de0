package models

// SellerStats summarizes one seller's listings for the dashboard cards.
type SellerStats struct {
	ActiveListings int     `json:"activeListings"`
	SoldItems      int     `json:"soldItems"`
	TotalEarnings  float64 `json:"totalEarnings"` // Sum of sold listing prices
}

// MarketStats summarizes the whole marketplace for the admin overview.
type MarketStats struct {
	TotalUsers     int     `json:"totalUsers"`
	ActiveListings int     `json:"activeListings"`
	SoldItems      int     `json:"soldItems"`
	TotalRevenue   float64 `json:"totalRevenue"` // Sum of sold listing prices
}
