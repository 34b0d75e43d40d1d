package shared

type HTTPMethod string
type EnumContentRating string
type Genre string
type SortKey string

const (
	GET     HTTPMethod = "GET"
	OPTIONS HTTPMethod = "OPTIONS"
)

const (
	Everyone     EnumContentRating = "Everyone"
	Everyone10   EnumContentRating = "Everyone 10+"
	Teen         EnumContentRating = "Teen"
	Mature17     EnumContentRating = "Mature 17+"
	AdultsOnly18 EnumContentRating = "Adults only 18+"
)

const (
	Action   Genre = "Action"
	Puzzle   Genre = "Puzzle"
	Strategy Genre = "Strategy"
	Casual   Genre = "Casual"
	Arcade   Genre = "Arcade"
	Card     Genre = "Card"
)

// Genres lists the genres accepted by the genres filter, in message order.
var Genres = []Genre{Action, Puzzle, Strategy, Casual, Arcade, Card}

const (
	SortByAppKey    SortKey = "App"
	SortByRatingKey SortKey = "Rating"
)

// GenreDelimiter separates genre names inside AppRecord.Genres.
const GenreDelimiter = ";"
