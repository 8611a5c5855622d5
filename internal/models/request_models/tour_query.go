package request_models

// FilterState is the client-side filter surface of the tour list. The
// sentinel value "all" (or empty) disables the category and location
// predicates; a blank search disables the text predicate.
type FilterState struct {
	Search   string
	Category string
	Location string
	MinPrice float64
	MaxPrice float64
}

const (
	FilterAll       = "all"
	DefaultMinPrice = 0
	DefaultMaxPrice = 1000
)

func DefaultFilterState() FilterState {
	return FilterState{
		Search:   "",
		Category: FilterAll,
		Location: FilterAll,
		MinPrice: DefaultMinPrice,
		MaxPrice: DefaultMaxPrice,
	}
}

// Sort values forwarded to the CMS. A sort change is a fresh fetch, never a
// local re-sort.
const (
	SortPriceAsc  = "price:asc"
	SortPriceDesc = "price:desc"
)
