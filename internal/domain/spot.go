package domain

// Category is the fixed palette a spot is tagged with. Categories drive
// marker colors only; no business logic branches on them.
type Category string

const (
	CategorySightseeing Category = "sightseeing"
	CategoryFood        Category = "food"
	CategoryShopping    Category = "shopping"
	CategoryHotel       Category = "hotel"
	CategoryTransport   Category = "transport"
	CategoryOther       Category = "other"
)

// DefaultCategory is applied when a draft omits the category.
const DefaultCategory = CategorySightseeing

func (c Category) Valid() bool {
	switch c {
	case CategorySightseeing, CategoryFood, CategoryShopping,
		CategoryHotel, CategoryTransport, CategoryOther:
		return true
	}
	return false
}

// Spot is a single place the user intends to visit.
//
// VisitDate "" puts the spot in the undecided bucket, which always sorts
// last among day groups. VisitTime "" sorts after all timed spots within
// the same day.
type Spot struct {
	ID        string
	Name      string
	Category  Category
	Memo      string
	VisitDate string
	VisitTime string
}
