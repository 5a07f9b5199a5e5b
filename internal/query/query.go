// Package query validates the user's list request and turns it into the URL of a Rotten Tomatoes top list.
package query

import (
	"errors"
	"strconv"
)

const (
	MinLength = 1
	MaxLength = 100
	// DefaultLength is used when no length is given.
	DefaultLength = 10
)

var (
	ErrLengthOutOfRange = errors.New("length out of range")
	ErrUnknownGenre     = errors.New("unknown genre")
	ErrInvalidYear      = errors.New("invalid year")
	ErrGenreAndYear     = errors.New("genre and year are mutually exclusive")
)

// ArgumentError is returned for any invalid user input.
// Message is meant to be shown to the user as is.
type ArgumentError struct {
	Err     error
	Message string
}

func (e *ArgumentError) Error() string {
	return e.Message
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// IsArgumentError reports whether err was caused by invalid user input.
func IsArgumentError(err error) bool {
	var argErr *ArgumentError
	return errors.As(err, &argErr)
}

// Query is a validated request for a top list.
// Genre and Year are never both set.
type Query struct {
	Length int
	Genre  Genre
	// Year is 0 when no year filter applies.
	Year int
}

// New validates the raw arguments and builds a Query.
// genreWords may be empty for "no genre". yearSet distinguishes an explicit year from none.
func New(length int, genreWords []string, year int, yearSet bool) (Query, error) {
	if length < MinLength || length > MaxLength {
		return Query{}, &ArgumentError{
			Err:     ErrLengthOutOfRange,
			Message: "Please specify a number of movies from 1-100",
		}
	}

	q := Query{Length: length}

	if len(genreWords) > 0 {
		g, err := ParseGenre(genreWords)
		if err != nil {
			return Query{}, err
		}
		q.Genre = g
	}

	if yearSet {
		if q.Genre != "" {
			return Query{}, &ArgumentError{
				Err:     ErrGenreAndYear,
				Message: "You cannot select a year and a genre. Please select only one",
			}
		}
		if year <= 0 {
			return Query{}, &ArgumentError{
				Err:     ErrInvalidYear,
				Message: "Please specify a year greater than 0, got " + strconv.Itoa(year),
			}
		}
		q.Year = year
	}

	return q, nil
}

// URL returns the address of the list the query asks for.
// base is the all-time top list URL and must end with a slash.
func (q Query) URL(base string) string {
	switch {
	case q.Genre != "":
		return base + "top_100_" + q.Genre.Slug() + "_movies/"
	case q.Year != 0:
		return base + "?year=" + strconv.Itoa(q.Year)
	default:
		return base
	}
}
