package console

import (
	"fmt"

	"goflix/internal/models"
	"goflix/internal/services/catalog"
)

// userMenu manages the profiles of a regular account.
func (a *App) userMenu(user *models.User) {
	for {
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "--- Profiles ---")
		a.renderProfiles(user.Profiles)
		fmt.Fprintln(a.out, "1) Use profile")
		fmt.Fprintln(a.out, "2) Create profile")
		fmt.Fprintln(a.out, "3) Delete profile")
		fmt.Fprintln(a.out, "0) Logout")
		choice, ok := a.readInt("Choice")
		if !ok {
			return
		}
		switch choice {
		case 1:
			id, ok := a.readInt("Profile id")
			if !ok {
				return
			}
			profile, err := a.accounts.GetProfileByID(user.ID, id)
			if err != nil {
				fmt.Fprintln(a.out, "Profile not found.")
				continue
			}
			a.profileMenu(user, profile)
		case 2:
			a.createProfile(user)
		case 3:
			id, ok := a.readInt("Profile id")
			if !ok {
				return
			}
			if err := a.accounts.RemoveProfile(user.ID, id); err != nil {
				fmt.Fprintln(a.out, "Profile not found.")
				continue
			}
			fmt.Fprintln(a.out, "Profile deleted.")
		case 0:
			return
		default:
			fmt.Fprintln(a.out, "Invalid option.")
		}
	}
}

func (a *App) createProfile(user *models.User) {
	name, ok := a.readLine("Profile name")
	if !ok || name == "" {
		fmt.Fprintln(a.out, "Profile name must not be empty.")
		return
	}
	nextID, err := a.accounts.GetNextProfileID(user.ID)
	if err != nil {
		fmt.Fprintf(a.out, "Could not create profile: %v\n", err)
		return
	}
	profile := models.NewProfile(nextID, name, user.ID)
	if err := a.accounts.AddProfileToUser(user.ID, profile); err != nil {
		fmt.Fprintf(a.out, "Could not create profile: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "Profile %q created with id %d.\n", name, nextID)
}

// profileMenu is the browsing loop for one selected profile.
func (a *App) profileMenu(user *models.User, profile *models.Profile) {
	for {
		fmt.Fprintln(a.out)
		fmt.Fprintf(a.out, "--- Profile: %s ---\n", profile.Name)
		fmt.Fprintln(a.out, "1) Browse catalog")
		fmt.Fprintln(a.out, "2) Browse movies")
		fmt.Fprintln(a.out, "3) Browse TV shows")
		fmt.Fprintln(a.out, "4) Search and filter")
		fmt.Fprintln(a.out, "5) My List")
		fmt.Fprintln(a.out, "6) Add title to My List")
		fmt.Fprintln(a.out, "7) Remove title from My List")
		fmt.Fprintln(a.out, "8) Watch a title")
		fmt.Fprintln(a.out, "0) Back")
		choice, ok := a.readInt("Choice")
		if !ok {
			return
		}
		switch choice {
		case 1:
			a.renderMediaList(a.catalog.GetAllMedia())
		case 2:
			a.renderMediaList(a.catalog.GetAllMovies())
		case 3:
			a.renderMediaList(a.catalog.GetAllTvShows())
		case 4:
			a.filterMenu()
		case 5:
			list, err := a.accounts.GetProfileMyList(user.ID, profile.ID)
			if err != nil {
				fmt.Fprintf(a.out, "Could not load My List: %v\n", err)
				continue
			}
			a.renderMediaList(list)
		case 6:
			a.myListAdd(user, profile)
		case 7:
			id, ok := a.readInt("Title id")
			if !ok {
				return
			}
			if err := a.accounts.RemoveFromProfileMyList(user.ID, profile.ID, id); err != nil {
				fmt.Fprintf(a.out, "Could not update My List: %v\n", err)
				continue
			}
			fmt.Fprintln(a.out, "Removed from My List.")
		case 8:
			a.watch(user)
		case 0:
			return
		default:
			fmt.Fprintln(a.out, "Invalid option.")
		}
	}
}

func (a *App) myListAdd(user *models.User, profile *models.Profile) {
	id, ok := a.readInt("Title id")
	if !ok {
		return
	}
	if _, found := a.catalog.GetMediaByID(id); !found {
		fmt.Fprintln(a.out, "Title not found.")
		return
	}
	if err := a.accounts.AddToProfileMyList(user.ID, profile.ID, id); err != nil {
		fmt.Fprintf(a.out, "Could not update My List: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "Added to My List.")
}

func (a *App) watch(user *models.User) {
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
	fmt.Fprintf(a.out, "Now playing %q...\n", media.Info().Title)
	user.AddWatchedTitle(media.Info().Title)
	if err := a.accounts.UpdateUser(user); err != nil {
		a.logger.WithError(err).Warn("Failed to record watched title")
	}
}

// filterMenu applies filters over a working result set. Each filter runs on
// the previous result, so criteria can be stacked before displaying.
func (a *App) filterMenu() {
	list := a.catalog.GetAllMedia()
	for {
		fmt.Fprintln(a.out)
		fmt.Fprintf(a.out, "--- Filters (%d titles in result) ---\n", len(list))
		fmt.Fprintln(a.out, "1) By category")
		fmt.Fprintln(a.out, "2) By title")
		fmt.Fprintln(a.out, "3) By director")
		fmt.Fprintln(a.out, "4) By minimum rating")
		fmt.Fprintln(a.out, "5) By year and minimum rating")
		fmt.Fprintln(a.out, "6) By release date range")
		fmt.Fprintln(a.out, "7) Only movies")
		fmt.Fprintln(a.out, "8) Only TV shows")
		fmt.Fprintln(a.out, "9) Sort newest first")
		fmt.Fprintln(a.out, "10) Sort oldest first")
		fmt.Fprintln(a.out, "11) Show result")
		fmt.Fprintln(a.out, "12) Reset")
		fmt.Fprintln(a.out, "0) Back")
		choice, ok := a.readInt("Choice")
		if !ok {
			return
		}
		switch choice {
		case 1:
			category, ok := a.readCategory()
			if !ok {
				return
			}
			list = catalog.FilterByCategory(list, category)
		case 2:
			title, ok := a.readLine("Title")
			if !ok {
				return
			}
			list = catalog.FilterByTitle(list, title)
		case 3:
			director, ok := a.readLine("Director")
			if !ok {
				return
			}
			list = catalog.FilterByDirector(list, director)
		case 4:
			rating, ok := a.readFloat("Minimum rating")
			if !ok {
				return
			}
			list = catalog.FilterByRating(list, rating)
		case 5:
			year, ok := a.readInt("Year")
			if !ok {
				return
			}
			rating, ok := a.readFloat("Minimum rating")
			if !ok {
				return
			}
			list = catalog.FilterByYearAndRating(list, year, rating)
		case 6:
			start, ok := a.readDate("Start date")
			if !ok {
				return
			}
			end, ok := a.readDate("End date")
			if !ok {
				return
			}
			if end.Before(start) {
				fmt.Fprintln(a.out, "End date must not be before start date.")
				continue
			}
			list = catalog.FilterByReleaseDate(list, start, end)
		case 7:
			list = catalog.FilterByType(list, models.MediaTypeMovie)
		case 8:
			list = catalog.FilterByType(list, models.MediaTypeTvShow)
		case 9:
			list = catalog.SortByReleaseDateDesc(list)
		case 10:
			list = catalog.SortByReleaseDateAsc(list)
		case 11:
			a.renderMediaList(list)
		case 12:
			list = a.catalog.GetAllMedia()
		case 0:
			return
		default:
			fmt.Fprintln(a.out, "Invalid option.")
		}
	}
}
