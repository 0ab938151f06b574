package console

import (
	"fmt"

	"goflix/internal/models"
)

// renderMediaList prints one line per entry, or a no-results notice.
func (a *App) renderMediaList(list []models.Media) {
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No titles found.")
		return
	}
	for _, m := range list {
		info := m.Info()
		fmt.Fprintf(a.out, "[%d] %-8s %-30s %-16s %.1f  %s\n",
			info.ID, m.Type(), info.Title, info.Category, info.Rating,
			info.ReleaseDate.Format(dateLayout))
	}
}

// renderMediaDetails prints the full record of one catalog entry.
func (a *App) renderMediaDetails(m models.Media) {
	info := m.Info()
	fmt.Fprintf(a.out, "--------- %s ---------\n", info.Title)
	fmt.Fprintf(a.out, "%q\n", info.Description)
	fmt.Fprintf(a.out, "Category: %s\n", info.Category)
	fmt.Fprintf(a.out, "Director: %s\n", info.Director)
	fmt.Fprintf(a.out, "Rating: %.1f\n", info.Rating)
	fmt.Fprintf(a.out, "Release date: %s\n", info.ReleaseDate.Format(dateLayout))

	switch v := m.(type) {
	case *models.Movie:
		fmt.Fprintf(a.out, "Duration: %dmin\n", v.DurationMinutes)
	case *models.TvShow:
		for _, season := range v.SeasonNumbers() {
			fmt.Fprintf(a.out, "Season %d:\n", season)
			for i, ep := range v.Seasons[season] {
				fmt.Fprintf(a.out, "  %d. %s (%dmin)\n", i+1, ep.Title, ep.DurationMinutes)
			}
		}
	}
}

// renderProfiles prints the user's profiles in creation order.
func (a *App) renderProfiles(profiles []*models.Profile) {
	if len(profiles) == 0 {
		fmt.Fprintln(a.out, "No profiles yet.")
		return
	}
	for _, p := range profiles {
		fmt.Fprintf(a.out, "[%d] %s\n", p.ID, p.Name)
	}
}

// renderUsers prints the registered accounts for the admin listing.
func (a *App) renderUsers(users []*models.User) {
	for _, u := range users {
		role := "user"
		if u.Admin {
			role = "admin"
		}
		fmt.Fprintf(a.out, "[%d] %-25s %-30s %s (%d profiles)\n",
			u.ID, u.Name, u.Email, role, len(u.Profiles))
	}
}
