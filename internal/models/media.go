package models

import (
	"sort"
	"time"
)

// Media is a catalog entry. A Media value is always a *Movie or a *TvShow;
// callers discriminate with Type or a type switch.
type Media interface {
	GetID() int
	SetID(id int)
	Type() MediaType
	Info() *MediaInfo
}

// MediaInfo holds the fields shared by both media variants. The id is
// assigned by the repository on save and is stable for the entity's
// lifetime.
type MediaInfo struct {
	ID          int
	Title       string
	Description string
	Director    string
	ReleaseDate time.Time
	Category    Category
	Rating      float64 // 0.0 to 5.0 by convention
}

func (i *MediaInfo) GetID() int { return i.ID }

func (i *MediaInfo) SetID(id int) { i.ID = id }

func (i *MediaInfo) Info() *MediaInfo { return i }

// Movie is a single feature with a running time
type Movie struct {
	MediaInfo
	DurationMinutes int
}

func (m *Movie) Type() MediaType { return MediaTypeMovie }

// Episode is one entry of a season. Position within the season matters:
// display and selection both index episodes by their order.
type Episode struct {
	Title           string
	DurationMinutes int
}

// TvShow groups episodes by season number. Season numbers need not be
// contiguous; episode order within a season is preserved as inserted.
type TvShow struct {
	MediaInfo
	Seasons map[int][]Episode
}

func (s *TvShow) Type() MediaType { return MediaTypeTvShow }

// AddEpisode appends an episode to the given season, creating the season
// when it does not exist yet.
func (s *TvShow) AddEpisode(season int, ep Episode) {
	if s.Seasons == nil {
		s.Seasons = make(map[int][]Episode)
	}
	s.Seasons[season] = append(s.Seasons[season], ep)
}

// SeasonNumbers returns the season keys in ascending order for display.
func (s *TvShow) SeasonNumbers() []int {
	numbers := make([]int, 0, len(s.Seasons))
	for n := range s.Seasons {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)
	return numbers
}
