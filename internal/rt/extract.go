package rt

import (
	"errors"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	resultsTableSelector = "body div.col-left-center"
	scoreSelector        = "span.tMeterScore"
)

// ErrNoEntries means the page didn't contain any movies where they were expected.
// Usually the page layout changed.
var ErrNoEntries = errors.New("no movies found on page")

// Entry is one ranked movie. Score is empty when the page lists no score for it.
type Entry struct {
	Movie string
	Score string
}

// PageResult is everything extracted from a list page.
// Scores can be shorter than Movies because not every movie has a score;
// use Entries for scores aligned to their movies.
type PageResult struct {
	Title   string
	Movies  []string
	Scores  []string
	Entries []Entry
}

// Extract pulls the title and the ranked movies out of a list page.
// If the results table is missing, the page's JSON-LD item list is used instead.
func Extract(doc *goquery.Document) (PageResult, error) {
	res := PageResult{
		Title:   ExtractTitle(doc),
		Movies:  ExtractMovies(doc),
		Scores:  ExtractScores(doc),
		Entries: ExtractEntries(doc),
	}
	if len(res.Entries) == 0 {
		res.Entries = ExtractJSONLD(doc)
		res.Movies, res.Scores = nil, nil
		for _, e := range res.Entries {
			res.Movies = append(res.Movies, e.Movie)
			if e.Score != "" {
				res.Scores = append(res.Scores, e.Score)
			}
		}
	}
	if len(res.Entries) == 0 {
		return res, ErrNoEntries
	}
	return res, nil
}

// ExtractTitle returns the text of the page's <title>.
func ExtractTitle(doc *goquery.Document) string {
	return strings.TrimSpace(doc.Find("title").First().Text())
}

// ExtractMovies returns the text of the first link of each results table cell.
// Cells without a link are skipped.
func ExtractMovies(doc *goquery.Document) []string {
	var movies []string
	resultCells(doc).Each(func(i int, s *goquery.Selection) {
		if movie := firstText(s, "a"); movie != "" {
			movies = append(movies, movie)
		}
	})
	return movies
}

// ExtractScores returns the first score of each results table cell.
// Cells without a score contribute nothing, so the result can be shorter than ExtractMovies'.
func ExtractScores(doc *goquery.Document) []string {
	var scores []string
	resultCells(doc).Each(func(i int, s *goquery.Selection) {
		if score := firstText(s, scoreSelector); score != "" {
			scores = append(scores, score)
		}
	})
	return scores
}

// ExtractEntries returns one entry per results table row that links a movie,
// with the score of that same row.
func ExtractEntries(doc *goquery.Document) []Entry {
	var entries []Entry
	resultsTable(doc).Find("tr").Each(func(i int, row *goquery.Selection) {
		var entry Entry
		row.Children().Filter("td").Each(func(i int, cell *goquery.Selection) {
			if entry.Movie == "" {
				entry.Movie = firstText(cell, "a")
			}
			if entry.Score == "" {
				entry.Score = firstText(cell, scoreSelector)
			}
		})
		if entry.Movie == "" {
			return
		}
		entries = append(entries, entry)
	})
	return entries
}

func resultsTable(doc *goquery.Document) *goquery.Selection {
	return doc.Find(resultsTableSelector).First().Find("table").First()
}

func resultCells(doc *goquery.Document) *goquery.Selection {
	return resultsTable(doc).Find("td")
}

// firstText returns the trimmed text of the first non-empty match of selector within s.
func firstText(s *goquery.Selection, selector string) string {
	var text string
	s.Find(selector).EachWithBreak(func(i int, m *goquery.Selection) bool {
		text = strings.TrimSpace(m.Text())
		return text == ""
	})
	return text
}
