package domain

// FoodItem is one donated entry in the shared inventory. Expiration is kept
// as a YYYY-MM-DD string; lexicographic order on that form matches
// chronological order. Owner is an informational copy of the donor's
// username, not an enforced relation.
type FoodItem struct {
	ID         int64
	Name       string
	Area       string
	Expiration string
	Quantity   int
	Owner      string
}

// SearchField selects which inventory attribute a search matches against.
type SearchField string

const (
	// SearchByArea matches items whose area contains the search value.
	SearchByArea SearchField = "area"
	// SearchByExpiration matches items expiring exactly on the given date.
	SearchByExpiration SearchField = "expiration"
	// SearchByDonor matches items whose owner contains the search value.
	SearchByDonor SearchField = "donor"
)
