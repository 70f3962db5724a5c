// Package gallery composes repository queries into view-ready
// groupings for the HTML pages.
package gallery

import (
	"time"

	"photovault/models"
	"photovault/utils"
)

type DateGroup struct {
	Date   string // YYYY-MM-DD
	Photos []models.Photo
}

// DateGroups returns the user's active photos grouped by upload date.
// Photos arrive ordered by upload time descending, so groups appear in
// descending date order and keep that order within each date.
func DateGroups(userID uint64) ([]DateGroup, error) {
	photos, err := models.ActivePhotos(userID)
	if err != nil {
		return nil, err
	}
	groups := []DateGroup{}
	index := map[string]int{}
	for _, photo := range photos {
		day := utils.DayString(photo.UploadedAt)
		i, ok := index[day]
		if !ok {
			groups = append(groups, DateGroup{Date: day})
			i = len(groups) - 1
			index[day] = i
		}
		groups[i].Photos = append(groups[i].Photos, photo)
	}
	return groups, nil
}

type SearchState int

const (
	SearchNone    SearchState = iota // no query submitted yet
	SearchInvalid                    // query present but not a valid date
	SearchDone                       // valid query, possibly zero matches
)

type SearchResult struct {
	State  SearchState
	Query  string
	Photos []models.Photo
}

// Search filters the user's photos by upload date. The query must be a
// valid YYYY-MM-DD calendar date; a malformed or impossible date yields
// the invalid state rather than an error, so the page can say so.
func Search(userID uint64, query string) (SearchResult, error) {
	if query == "" {
		return SearchResult{State: SearchNone}, nil
	}
	day, err := time.ParseInLocation("2006-01-02", query, time.Local)
	if err != nil {
		return SearchResult{State: SearchInvalid, Query: query}, nil
	}
	photos, err := models.PhotosBetween(userID, day.Unix(), day.AddDate(0, 0, 1).Unix())
	if err != nil {
		return SearchResult{}, err
	}
	return SearchResult{State: SearchDone, Query: query, Photos: photos}, nil
}
