package models

import "strings"

// KeyStats groups the financial and lease metrics shown on a tenant
// profile. Every value is a display-formatted string straight from the
// source sheet; nothing here is parsed or computed on.
type KeyStats struct {
	MarketCap        string `json:"marketCap,omitempty"`
	CreditRating     string `json:"creditRating,omitempty"`
	LeaseLength      string `json:"leaseLength,omitempty"`
	AvgUnitSize      string `json:"avgUnitSize,omitempty"`
	Stock            string `json:"stock,omitempty"`
	SnP              string `json:"snp,omitempty"`
	Moodys           string `json:"moodys,omitempty"`
	AverageSalePrice string `json:"averageSalePrice,omitempty"`
	PriceSF          string `json:"priceSF,omitempty"`
	AverageNOI       string `json:"averageNOI,omitempty"`
	RBA              string `json:"rba,omitempty"`
	Lot              string `json:"lot,omitempty"`
	Escalations      string `json:"escalations,omitempty"`
	KeyPrincipal     string `json:"keyPrincipal,omitempty"`
	LowestCap        string `json:"lowestCap,omitempty"`
	AverageCap       string `json:"averageCap,omitempty"`
}

// NewsItem is one entry of a tenant's curated news list.
type NewsItem struct {
	Title  string `json:"title"`
	Date   string `json:"date"`
	Source string `json:"source"`
	URL    string `json:"url,omitempty"`
}

// Tenant is a commercial entity profiled by the directory. Tenants are
// immutable value objects rebuilt wholesale on every fetch cycle. JSON
// field names follow the upstream app's contract, quirks included.
type Tenant struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Logo         string     `json:"logo"`
	Industry     string     `json:"industry"`
	Category     string     `json:"category"`
	Headquarters string     `json:"headquarters"`
	Founded      string     `json:"founded"`
	Employees    string     `json:"employees"`
	Revenue      string     `json:"revenue"`
	Locations    int        `json:"locations"`
	Description  string     `json:"description"`
	Website      string     `json:"website"`
	ImageURL     string     `json:"Image_URL,omitempty"`
	KeyStats     KeyStats   `json:"keyStats"`
	RecentNews   []NewsItem `json:"recentNews"`
	Pros         []string   `json:"pros"`
	Cons         []string   `json:"cons"`
	Overview     string     `json:"overview,omitempty"`
	Earnings     string     `json:"earnings,omitempty"`
	QSRNews      string     `json:"qsrNews,omitempty"`
	TradingView  string     `json:"tradingView,omitempty"`
	AboutUs      string     `json:"about_Us,omitempty"`
	Extra        string     `json:"extra,omitempty"`
	News         string     `json:"news,omitempty"`
	GNews        string     `json:"gNews,omitempty"`
}

// IsPublic reports whether the tenant trades publicly. It is recomputed
// from the stock field on every call so it can never go stale: true iff a
// ticker is present and is not the literal "Private".
func (t Tenant) IsPublic() bool {
	stock := strings.TrimSpace(t.KeyStats.Stock)
	return stock != "" && !strings.EqualFold(stock, "Private")
}
