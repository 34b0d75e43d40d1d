// Package apps filters and sorts the app catalog for GET /apps.
package apps

import (
	"net/url"
	"sort"
	"strings"

	"playstore/cerror"
	"playstore/shared"

	"github.com/asaskevich/govalidator"
)

// Params are the optional query parameters of GET /apps. Empty means absent.
type Params struct {
	Genres string
	Sort   string
}

func ParseParams(q url.Values) Params {
	return Params{
		Genres: q.Get("genres"),
		Sort:   q.Get("sort"),
	}
}

var genreValues = func() []string {
	out := make([]string, 0, len(shared.Genres))
	for _, g := range shared.Genres {
		out = append(out, strings.ToLower(string(g)))
	}
	return out
}()

// Validate checks genres before sort; the first failure is returned.
func (p Params) Validate() error {
	if p.Genres != "" && !govalidator.IsIn(strings.ToLower(p.Genres), genreValues...) {
		return cerror.NewInvalidGenre(p.Genres)
	}
	// sort stays case-sensitive, unlike genres
	if p.Sort != "" && !govalidator.IsIn(p.Sort, string(shared.SortByAppKey), string(shared.SortByRatingKey)) {
		return cerror.NewInvalidSort(p.Sort)
	}
	return nil
}

// Query returns the records matching p, in the order p asks for. records is
// never modified. The result is non-nil even when nothing matches.
func Query(records []shared.AppRecord, p Params) ([]shared.AppRecord, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	result := make([]shared.AppRecord, 0, len(records))
	for _, r := range records {
		if p.Genres == "" || r.HasGenre(p.Genres) {
			result = append(result, r)
		}
	}

	switch shared.SortKey(p.Sort) {
	case shared.SortByAppKey:
		sort.Stable(shared.SortByApp(result))
	case shared.SortByRatingKey:
		sort.Stable(shared.SortByRating(result))
	}

	return result, nil
}
