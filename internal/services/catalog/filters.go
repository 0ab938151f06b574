package catalog

import (
	"sort"
	"strings"
	"time"

	"goflix/internal/models"
)

// The filter and sort functions below are pure: they never mutate their
// input and always return a fresh slice, so results can be chained through
// further filters. An empty result is a valid answer, not an error.

// SortByReleaseDateAsc returns the list ordered oldest first. The sort is
// stable: ties keep their relative input order.
func SortByReleaseDateAsc(list []models.Media) []models.Media {
	out := make([]models.Media, len(list))
	copy(out, list)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Info().ReleaseDate.Before(out[j].Info().ReleaseDate)
	})
	return out
}

// SortByReleaseDateDesc returns the list ordered newest first, stable on
// ties.
func SortByReleaseDateDesc(list []models.Media) []models.Media {
	out := make([]models.Media, len(list))
	copy(out, list)
	sort.SliceStable(out, func(i, j int) bool {
		return out[j].Info().ReleaseDate.Before(out[i].Info().ReleaseDate)
	})
	return out
}

// FilterByReleaseDate keeps entries with start <= date <= end, both bounds
// inclusive. Bound ordering is the caller's concern.
func FilterByReleaseDate(list []models.Media, start, end time.Time) []models.Media {
	out := make([]models.Media, 0, len(list))
	for _, m := range list {
		date := m.Info().ReleaseDate
		if !date.Before(start) && !date.After(end) {
			out = append(out, m)
		}
	}
	return out
}

// FilterByYearAndRating keeps entries released in the exact calendar year
// with rating >= minRating.
func FilterByYearAndRating(list []models.Media, year int, minRating float64) []models.Media {
	out := make([]models.Media, 0, len(list))
	for _, m := range list {
		if m.Info().ReleaseDate.Year() == year && m.Info().Rating >= minRating {
			out = append(out, m)
		}
	}
	return out
}

// FilterByCategory keeps entries whose genre equals the given category.
func FilterByCategory(list []models.Media, category models.Category) []models.Media {
	out := make([]models.Media, 0, len(list))
	for _, m := range list {
		if m.Info().Category == category {
			out = append(out, m)
		}
	}
	return out
}

// FilterByTitle keeps entries whose title equals the given one, ignoring
// case. This is an exact match, not a substring search.
func FilterByTitle(list []models.Media, title string) []models.Media {
	out := make([]models.Media, 0, len(list))
	for _, m := range list {
		if strings.EqualFold(m.Info().Title, title) {
			out = append(out, m)
		}
	}
	return out
}

// FilterByRating keeps entries with rating >= minRating.
func FilterByRating(list []models.Media, minRating float64) []models.Media {
	out := make([]models.Media, 0, len(list))
	for _, m := range list {
		if m.Info().Rating >= minRating {
			out = append(out, m)
		}
	}
	return out
}

// FilterByDirector keeps entries whose director equals the given name,
// ignoring case. Exact match, not substring.
func FilterByDirector(list []models.Media, director string) []models.Media {
	out := make([]models.Media, 0, len(list))
	for _, m := range list {
		if strings.EqualFold(m.Info().Director, director) {
			out = append(out, m)
		}
	}
	return out
}

// FilterByType keeps entries of one variant, movies or tv shows.
func FilterByType(list []models.Media, mediaType models.MediaType) []models.Media {
	out := make([]models.Media, 0, len(list))
	for _, m := range list {
		if m.Type() == mediaType {
			out = append(out, m)
		}
	}
	return out
}
