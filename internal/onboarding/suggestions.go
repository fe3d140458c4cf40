package onboarding

import "strings"

// MaxShownSuggestions caps how many suggestions the welcome dialog lists.
const MaxShownSuggestions = 5

// Suggestions are example goals offered while the user types.
var Suggestions = [...]string{
	"Add Buy Now button to my website",
	"Set up subscription payments",
	"Accept one-time payments",
	"Sell digital downloads",
	"Create a donation page",
	"Launch a monthly subscription box",
	"Accept payments in my mobile app",
	"Send invoices to customers",
	"Offer annual subscription plans",
	"Set up a checkout page for my online store",
	"Collect payments for event tickets",
	"Accept recurring donations",
	"Add a pay-what-you-want button",
	"Test payments before going live",
	"Track transactions and refunds",
}

// FilterSuggestions returns the suggestions containing input
// (case-insensitive), at most [MaxShownSuggestions] of them, and how many
// further matches were left out. Blank input matches everything.
func FilterSuggestions(input string) (shown []string, overflow int) {
	query := strings.ToLower(strings.TrimSpace(input))

	var matches []string
	for _, s := range Suggestions {
		if strings.Contains(strings.ToLower(s), query) {
			matches = append(matches, s)
		}
	}

	if len(matches) > MaxShownSuggestions {
		return matches[:MaxShownSuggestions], len(matches) - MaxShownSuggestions
	}
	return matches, 0
}
