package tenants

import (
	"strings"

	"netlease/internal/models"
)

// CategoryAll is the sentinel category that matches everything.
const CategoryAll = "all"

// Categories is the closed set offered by the directory's category
// filter, "all" first. Records may carry categories outside this set and
// still filter correctly; the set is a UI convention, not a validation.
var Categories = []string{
	CategoryAll,
	"🏋️ Gyms 🏋️",
	"🚗 Auto 🚗",
	"📦 Big Box 📦",
	"🛒 Supermarket 🛒",
	"🍟 Fast Food 🍟",
	"🏥 Medical 🏥",
	"☕ Coffee ☕",
	"🏫 School 🏫",
	"🍽️ Restaurant 🍽️",
	"🫧 Car Wash 🫧",
	"💊 Pharmacy 💊",
	"🏦 Bank 🏦",
	"🐶 Vet 🐶",
	"🐟 Swim School 🐟",
}

// Filter reduces tenants to the subsequence matching a free-text query, a
// category and an ownership toggle. Order is preserved and the input is
// never mutated. Entries missing a name or an industry are dropped
// outright so a malformed row can never reach a view.
func Filter(ts []models.Tenant, query, category string, publicOnly bool) []models.Tenant {
	query = strings.ToLower(strings.TrimSpace(query))

	out := make([]models.Tenant, 0, len(ts))
	for _, t := range ts {
		if t.Name == "" || t.Industry == "" {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(t.Name), query) &&
			!strings.Contains(strings.ToLower(t.Industry), query) {
			continue
		}
		if category != CategoryAll && category != t.Category {
			continue
		}
		if publicOnly && !t.IsPublic() {
			continue
		}
		out = append(out, t)
	}
	return out
}
