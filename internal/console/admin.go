package console

import (
	"errors"
	"fmt"

	"goflix/internal/models"
)

// adminMenu is the catalog management loop for the seeded administrator.
func (a *App) adminMenu(user *models.User) {
	for {
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "--- Catalog management ---")
		fmt.Fprintln(a.out, "1) List catalog")
		fmt.Fprintln(a.out, "2) Add movie")
		fmt.Fprintln(a.out, "3) Add TV show")
		fmt.Fprintln(a.out, "4) Edit title")
		fmt.Fprintln(a.out, "5) Delete title")
		fmt.Fprintln(a.out, "6) List users")
		fmt.Fprintln(a.out, "0) Logout")
		choice, ok := a.readInt("Choice")
		if !ok {
			return
		}
		switch choice {
		case 1:
			a.renderMediaList(a.catalog.GetAllMedia())
		case 2:
			a.addMovie()
		case 3:
			a.addTvShow()
		case 4:
			a.editMedia()
		case 5:
			a.deleteMedia()
		case 6:
			a.renderUsers(a.accounts.GetAllUsers())
		case 0:
			return
		default:
			fmt.Fprintln(a.out, "Invalid option.")
		}
	}
}

// readMediaInfo gathers the fields shared by both variants.
func (a *App) readMediaInfo() (models.MediaInfo, bool) {
	var info models.MediaInfo
	var ok bool
	if info.Title, ok = a.readLine("Title"); !ok || info.Title == "" {
		return info, false
	}
	if info.Description, ok = a.readLine("Description"); !ok {
		return info, false
	}
	if info.Director, ok = a.readLine("Director"); !ok {
		return info, false
	}
	if info.ReleaseDate, ok = a.readDate("Release date"); !ok {
		return info, false
	}
	if info.Category, ok = a.readCategory(); !ok {
		return info, false
	}
	if info.Rating, ok = a.readFloat("Rating (0.0-5.0)"); !ok {
		return info, false
	}
	return info, true
}

func (a *App) addMovie() {
	info, ok := a.readMediaInfo()
	if !ok {
		fmt.Fprintln(a.out, "Cancelled.")
		return
	}
	duration, ok := a.readInt("Duration in minutes")
	if !ok || duration <= 0 {
		fmt.Fprintln(a.out, "Duration must be positive.")
		return
	}
	movie := &models.Movie{MediaInfo: info, DurationMinutes: duration}
	saved := a.catalog.AddMedia(movie)
	fmt.Fprintf(a.out, "Movie added with id %d.\n", saved.GetID())
}

func (a *App) addTvShow() {
	info, ok := a.readMediaInfo()
	if !ok {
		fmt.Fprintln(a.out, "Cancelled.")
		return
	}
	show := &models.TvShow{MediaInfo: info}
	for {
		season, ok := a.readInt("Season number (0 to finish)")
		if !ok || season == 0 {
			break
		}
		if season < 0 {
			fmt.Fprintln(a.out, "Season number must be positive.")
			continue
		}
		episodes, ok := a.readInt("Number of episodes")
		if !ok {
			break
		}
		for i := 1; i <= episodes; i++ {
			title, ok := a.readLine(fmt.Sprintf("Episode %d title", i))
			if !ok {
				break
			}
			duration, ok := a.readInt(fmt.Sprintf("Episode %d duration in minutes", i))
			if !ok {
				break
			}
			show.AddEpisode(season, models.Episode{Title: title, DurationMinutes: duration})
		}
	}
	saved := a.catalog.AddMedia(show)
	fmt.Fprintf(a.out, "TV show added with id %d.\n", saved.GetID())
}

func (a *App) editMedia() {
	id, ok := a.readInt("Title id")
	if !ok {
		return
	}
	media, found := a.catalog.GetMediaByID(id)
	if !found {
		fmt.Fprintln(a.out, "Title not found.")
		return
	}
	a.renderMediaDetails(media)

	// Blank answers keep the current value.
	info := media.Info()
	if title, ok := a.readLine("New title (blank keeps current)"); ok && title != "" {
		info.Title = title
	}
	if desc, ok := a.readLine("New description (blank keeps current)"); ok && desc != "" {
		info.Description = desc
	}
	if director, ok := a.readLine("New director (blank keeps current)"); ok && director != "" {
		info.Director = director
	}
	if line, ok := a.readLine("New rating (blank keeps current)"); ok && line != "" {
		var rating float64
		if _, err := fmt.Sscanf(line, "%f", &rating); err == nil {
			info.Rating = rating
		}
	}
	if err := a.catalog.UpdateMedia(media); err != nil {
		fmt.Fprintln(a.out, "Title not found.")
		return
	}
	fmt.Fprintln(a.out, "Title updated.")
}

func (a *App) deleteMedia() {
	id, ok := a.readInt("Title id")
	if !ok {
		return
	}
	if err := a.catalog.DeleteMedia(id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			fmt.Fprintln(a.out, "Title not found.")
			return
		}
		fmt.Fprintf(a.out, "Could not delete title: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "Title deleted.")
}
