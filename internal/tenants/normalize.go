package tenants

import (
	"encoding/json"
	"strconv"
	"strings"

	"netlease/internal/models"
	"netlease/internal/pkg/grist"
)

// Normalize converts one raw directory record into a Tenant. It is a pure
// transform and cannot fail: missing or malformed fields degrade to zero
// values instead of producing an error, so a bad row can never take down
// a fetch cycle.
func Normalize(rec grist.Record) models.Tenant {
	f := rec.Fields

	return models.Tenant{
		ID:           strconv.FormatInt(rec.ID, 10),
		Name:         str(f, "Tenant"),
		Logo:         str(f, "Logo_URL"),
		Industry:     str(f, "Category"),
		Category:     str(f, "Category"),
		Headquarters: str(f, "Headquarters"),
		Founded:      yearText(f["Founded"]),
		Employees:    str(f, "Locations2"),
		Revenue:      str(f, "Revenue"),
		Locations:    locationCount(str(f, "Locations2")),
		Description:  str(f, "Description"),
		Website:      str(f, "Website"),
		ImageURL:     str(f, "ExamplePropertyImage"),
		KeyStats: models.KeyStats{
			MarketCap:        str(f, "Market_Cap"),
			CreditRating:     str(f, "Tenant_Future_Outlook_Rating"),
			LeaseLength:      str(f, "LeaseTerm"),
			AvgUnitSize:      str(f, "RBA"),
			Stock:            str(f, "Stock"),
			SnP:              str(f, "SnP"),
			Moodys:           str(f, "Moodys"),
			AverageSalePrice: str(f, "AverageSalePrice"),
			PriceSF:          str(f, "PriceSF"),
			AverageNOI:       str(f, "Average_NOI"),
			RBA:              str(f, "RBA"),
			Lot:              str(f, "Lot"),
			Escalations:      str(f, "Escalations"),
			KeyPrincipal:     str(f, "KeyPrincipal"),
			LowestCap:        str(f, "LowestCap"),
			AverageCap:       str(f, "Average_Cap"),
		},
		RecentNews:  parseNews(str(f, "News")),
		Pros:        splitLines(str(f, "Pros")),
		Cons:        splitLines(str(f, "Cons")),
		Overview:    str(f, "Overview"),
		Earnings:    str(f, "Earnings"),
		QSRNews:     str(f, "QSR_News"),
		TradingView: str(f, "TradingView"),
		AboutUs:     str(f, "About_Us"),
		Extra:       str(f, "Extra"),
		News:        str(f, "News"),
		GNews:       str(f, "G_News"),
	}
}

// parseNews derives the structured news list from the raw News cell. The
// cell holds either a JSON array of entries, a single JSON entry, or free
// text. The shape is sniffed before any parse is attempted; anything that
// does not look like JSON, or looks like it but fails to parse, collapses
// into one synthetic entry carrying the raw text as its title.
func parseNews(raw string) []models.NewsItem {
	if raw == "" {
		return []models.NewsItem{}
	}

	trimmed := strings.TrimSpace(raw)

	switch {
	case strings.HasPrefix(trimmed, "[{") && strings.HasSuffix(trimmed, "}]"):
		var items []models.NewsItem
		if err := json.Unmarshal([]byte(trimmed), &items); err == nil {
			return items
		}
	case strings.HasPrefix(trimmed, "{") && strings.HasSuffix(trimmed, "}"):
		var item models.NewsItem
		if err := json.Unmarshal([]byte(trimmed), &item); err == nil {
			return []models.NewsItem{item}
		}
	}

	return []models.NewsItem{{Title: raw, Date: "", Source: ""}}
}

// splitLines turns a newline-delimited text block into a list, discarding
// empty lines. Absent input yields an empty list, not nil.
func splitLines(s string) []string {
	out := make([]string, 0)
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}
