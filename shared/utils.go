package shared

import "strings"

type SortByApp []AppRecord

func (a SortByApp) Len() int      { return len(a) }
func (a SortByApp) Swap(i, j int) { a[i], a[j] = a[j], a[i] }
func (a SortByApp) Less(i, j int) bool {
	return strings.ToLower(a[i].App) < strings.ToLower(a[j].App)
}

type SortByRating []AppRecord

func (a SortByRating) Len() int           { return len(a) }
func (a SortByRating) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a SortByRating) Less(i, j int) bool { return a[i].Rating < a[j].Rating }

// HasGenre reports whether the record's Genres field mentions genre,
// ignoring case.
func (r AppRecord) HasGenre(genre string) bool {
	return strings.Contains(strings.ToLower(r.Genres), strings.ToLower(genre))
}

// SplitGenres returns the individual genre names of a Genres field.
func SplitGenres(genres string) []string {
	return NormalizeSlice(strings.Split(genres, GenreDelimiter))
}

func NormalizeSlice(s []string) []string {
	var result []string
	for _, v := range s {
		v = strings.TrimSpace(v)
		if v != "" {
			result = append(result, v)
		}
	}
	return result
}
