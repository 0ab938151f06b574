package console

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"goflix/internal/models"
)

const dateLayout = "2006-01-02"

// readLine prompts and returns one trimmed input line. The bool is false
// once stdin is exhausted.
func (a *App) readLine(label string) (string, bool) {
	fmt.Fprintf(a.out, "%s: ", label)
	if !a.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(a.in.Text()), true
}

// readInt re-prompts until the line parses as an integer.
func (a *App) readInt(label string) (int, bool) {
	for {
		line, ok := a.readLine(label)
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(a.out, "Please enter a number.")
			continue
		}
		return n, true
	}
}

// readFloat re-prompts until the line parses as a decimal number.
func (a *App) readFloat(label string) (float64, bool) {
	for {
		line, ok := a.readLine(label)
		if !ok {
			return 0, false
		}
		f, err := strconv.ParseFloat(line, 64)
		if err != nil {
			fmt.Fprintln(a.out, "Please enter a number, e.g. 4.5.")
			continue
		}
		return f, true
	}
}

// readDate re-prompts until the line parses as a YYYY-MM-DD date.
func (a *App) readDate(label string) (time.Time, bool) {
	for {
		line, ok := a.readLine(label + " (YYYY-MM-DD)")
		if !ok {
			return time.Time{}, false
		}
		t, err := time.Parse(dateLayout, line)
		if err != nil {
			fmt.Fprintln(a.out, "Please use the YYYY-MM-DD format.")
			continue
		}
		return t, true
	}
}

// readCategory lists the genres and re-prompts until one is chosen.
func (a *App) readCategory() (models.Category, bool) {
	categories := models.Categories()
	for i, c := range categories {
		fmt.Fprintf(a.out, "%d) %s\n", i+1, c)
	}
	for {
		n, ok := a.readInt("Category")
		if !ok {
			return "", false
		}
		if n < 1 || n > len(categories) {
			fmt.Fprintln(a.out, "Invalid category.")
			continue
		}
		return categories[n-1], true
	}
}
