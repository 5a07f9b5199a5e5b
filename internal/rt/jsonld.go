package rt

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/tidwall/gjson"
)

// ExtractJSONLD returns the entries of the first JSON-LD ItemList embedded in the page.
// Some list pages only render the table via JavaScript, but still carry the list as structured data.
func ExtractJSONLD(doc *goquery.Document) []Entry {
	var entries []Entry
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(i int, s *goquery.Selection) bool {
		data := strings.TrimSpace(s.Text())
		if !gjson.Valid(data) {
			return true
		}
		entries = itemListEntries(gjson.Parse(data))
		return len(entries) == 0
	})
	return entries
}

func itemListEntries(doc gjson.Result) []Entry {
	list := findItemList(doc)
	if !list.IsArray() {
		return nil
	}

	var entries []Entry
	for _, item := range list.Array() {
		name := item.Get("name")
		if !name.Exists() {
			name = item.Get("item.name")
		}
		movie := strings.TrimSpace(name.String())
		if movie == "" {
			continue
		}
		score := item.Get("aggregateRating.ratingValue")
		if !score.Exists() {
			score = item.Get("item.aggregateRating.ratingValue")
		}
		entries = append(entries, Entry{
			Movie: movie,
			Score: strings.TrimSpace(score.String()),
		})
	}
	return entries
}

// findItemList looks for an itemListElement at the top level,
// in the main entity or in any node of a @graph or top level array.
func findItemList(doc gjson.Result) gjson.Result {
	if doc.IsArray() {
		for _, node := range doc.Array() {
			if list := findItemList(node); list.Exists() {
				return list
			}
		}
		return gjson.Result{}
	}
	if list := doc.Get("itemListElement"); list.Exists() {
		return list
	}
	if list := doc.Get("mainEntity.itemListElement"); list.Exists() {
		return list
	}
	var found gjson.Result
	doc.ForEach(func(key, value gjson.Result) bool {
		if key.String() != "@graph" {
			return true
		}
		for _, node := range value.Array() {
			if found = findItemList(node); found.Exists() {
				break
			}
		}
		return false
	})
	return found
}
