package models

import (
	"fmt"
	"strings"
)

// MediaType discriminates the two catalog entry variants
type MediaType string

const (
	MediaTypeMovie  MediaType = "movie"
	MediaTypeTvShow MediaType = "tvshow"
)

// Category is one of the eight fixed catalog genres
type Category string

const (
	CategoryAdventure      Category = "Adventure"
	CategoryComedy         Category = "Comedy"
	CategoryFantasy        Category = "Fantasy"
	CategoryTerror         Category = "Terror"
	CategoryAnimation      Category = "Animation"
	CategoryScienceFiction Category = "Science-Fiction"
	CategoryDrama          Category = "Drama"
	CategoryRomance        Category = "Romance"
)

// Categories returns the closed set of genres in display order
func Categories() []Category {
	return []Category{
		CategoryAdventure,
		CategoryComedy,
		CategoryFantasy,
		CategoryTerror,
		CategoryAnimation,
		CategoryScienceFiction,
		CategoryDrama,
		CategoryRomance,
	}
}

// ParseCategory resolves a case-insensitive genre name to its Category value
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if strings.EqualFold(string(c), s) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}
