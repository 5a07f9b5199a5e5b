package query

import (
	"fmt"
	"strings"
)

// Genre is one of the movie categories Rotten Tomatoes keeps a top 100 list for.
type Genre string

const (
	ActionAdventure       Genre = "Action & Adventure"
	Animation             Genre = "Animation"
	ArtHouseInternational Genre = "Art House & International"
	Classics              Genre = "Classics"
	Comedy                Genre = "Comedy"
	Drama                 Genre = "Drama"
	KidsFamily            Genre = "Kids & Family"
	MusicalPerformingArts Genre = "Musical & Performing Arts"
	MysterySuspense       Genre = "Mystery & Suspense"
	Romance               Genre = "Romance"
	ScienceFictionFantasy Genre = "Science Fiction & Fantasy"
	SpecialInterest       Genre = "Special Interest"
	SportsFitness         Genre = "Sports & Fitness"
	Television            Genre = "Television"
	Western               Genre = "Western"
)

// Genres lists all known genres in the order the site shows them.
var Genres = []Genre{
	ActionAdventure,
	Animation,
	ArtHouseInternational,
	Classics,
	Comedy,
	Drama,
	KidsFamily,
	MusicalPerformingArts,
	MysterySuspense,
	Romance,
	ScienceFictionFantasy,
	SpecialInterest,
	SportsFitness,
	Television,
	Western,
}

// GenreList returns all genres as a comma separated string, for help and error texts.
func GenreList() string {
	names := make([]string, 0, len(Genres))
	for _, g := range Genres {
		names = append(names, string(g))
	}
	return strings.Join(names, ", ")
}

// ParseGenre resolves the words of a (possibly multi-word) genre to a known Genre.
// The words are compared case-insensitively and "&" separators are optional,
// so "Action Adventure", "action & adventure" and "Action & Adventure" all match.
func ParseGenre(words []string) (Genre, error) {
	joined := strings.Join(words, " ")
	key := matchKey(joined)
	if key != "" {
		for _, g := range Genres {
			if matchKey(string(g)) == key {
				return g, nil
			}
		}
	}
	msg := fmt.Sprintf("%v is not a valid genre. Please select one of the following: %v. "+
		"For genres of multiple words, type each word of genre with space in between", displayGenre(words), GenreList())
	return "", &ArgumentError{Err: ErrUnknownGenre, Message: msg}
}

// Slug is the genre's URL path segment, e.g. "action__adventure" for "Action & Adventure".
func (g Genre) Slug() string {
	parts := strings.Split(string(g), "&")
	slugParts := make([]string, 0, len(parts))
	for _, part := range parts {
		words := strings.Fields(strings.ToLower(part))
		if len(words) == 0 {
			continue
		}
		slugParts = append(slugParts, strings.Join(words, "_"))
	}
	return strings.Join(slugParts, "__")
}

func matchKey(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.ReplaceAll(s, "&", " "))), " ")
}

// displayGenre renders user input for error messages the way the genre would be written if valid.
func displayGenre(words []string) string {
	sep := " & "
	var kept []string
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "&" {
			sep = " "
		}
		if w != "" {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, sep)
}
