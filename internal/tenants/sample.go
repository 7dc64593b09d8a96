package tenants

import "netlease/internal/models"

// SampleTenants returns the built-in demo directory served when the
// upstream fetch cannot be completed. A fresh copy is built on every call
// so callers can never mutate the canonical data.
func SampleTenants() []models.Tenant {
	return []models.Tenant{
		{
			ID:           "1",
			Name:         "Wendy's",
			Logo:         "https://netleaseadvisor.com/wp-content/uploads/2016/09/t25logo.png",
			Industry:     "Food & Beverage",
			Category:     "Quick Serve Restaurant",
			Headquarters: "Dublin, Ohio",
			Founded:      "1969",
			Employees:    "6,711 locations",
			Revenue:      "$1.96B",
			Locations:    6711,
			Description:  "As a famous name in fast food, Wendy's/Arby's Group, Inc. is an industry-leading QSR (quick serve restaurant) and developer of all new Wendy's and Arby's locations throughout the United States.",
			Website:      "https://www.wendys.com",
			KeyStats: models.KeyStats{
				Stock:            "WEN",
				SnP:              "B+",
				Moodys:           "B3",
				AverageSalePrice: "$2,122,610",
				PriceSF:          "$590-$965",
				AverageNOI:       "$120,430",
				RBA:              "2,200-3,600",
				Lot:              "0.5 - 1.0 Acres",
				LeaseLength:      "20 Years",
				Escalations:      "10% Every 5 Years",
				KeyPrincipal:     "Todd A. Penegor",
				LowestCap:        "3.95%",
				AverageCap:       "4.85% - 5.72%",
			},
			Pros: []string{
				"NNN leases with healthy rent increases",
				"Branding and marketing boosts revenues",
				"Availability of higher capitalization",
			},
			Cons: []string{
				"Lack of sales figures in some cases",
				"Performance reviews required on franchises",
				"Credit non-investor graded",
			},
			Overview:    "With an ever-delightful assortment of fast food burgers, fries, chicken sandwiches, salads, and wraps ready made for customers.",
			Earnings:    "Wendy's reported total revenues of $570.7 million for Q2 2024, marking a 1.6% increase from $561.6 million in the same quarter last year.",
			QSRNews:     "https://www.qsrmagazine.com/chains/wendys/",
			TradingView: "https://www.tradingview.com/symbols/WEN/",
			RecentNews: []models.NewsItem{
				{
					Title:  "Wendy's Launches New 2 For $6 Deal",
					Date:   "2023-02-06",
					Source: "chewboom",
					URL:    "https://www.chewboom.com/2023/02/06/wendys-launches-new-2-for-6-deal/",
				},
			},
		},
	}
}
