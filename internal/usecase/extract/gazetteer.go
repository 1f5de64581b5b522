package extract

import (
	"sort"
	"strings"
)

// defaultCities is the fixed gazetteer of known city names.
var defaultCities = []string{
	"Shanghai", "Beijing", "Guangzhou", "Shenzhen", "Chengdu", "Hong Kong",
	"Boston", "New York", "London", "Paris", "Singapore", "Tokyo",
}

// mention is a gazetteer hit at a position in the utterance.
type mention struct {
	city  string
	index int
}

// gazetteer matches known city names case-insensitively as substrings.
type gazetteer struct {
	cities  []string
	lowered []string
}

func newGazetteer(cities []string) *gazetteer {
	g := &gazetteer{cities: cities, lowered: make([]string, len(cities))}
	for i, c := range cities {
		g.lowered[i] = strings.ToLower(c)
	}
	return g
}

// find returns one mention per city present in the lowercased text,
// ordered by position.
func (g *gazetteer) find(lower string) []mention {
	var found []mention
	for i, lc := range g.lowered {
		if idx := strings.Index(lower, lc); idx >= 0 {
			found = append(found, mention{city: g.cities[i], index: idx})
		}
	}
	sort.Slice(found, func(i, j int) bool { return found[i].index < found[j].index })
	return found
}

// resolveRoute assigns city mentions to origin and destination. A
// "from"/"to" marker directly before a city wins; remaining mentions
// fill unassigned slots in textual order (first = origin, second =
// destination).
func resolveRoute(lower string, mentions []mention) (origin, dest string) {
	for _, m := range mentions {
		switch precedingWord(lower, m.index) {
		case "from":
			if origin == "" {
				origin = m.city
			}
		case "to":
			if dest == "" {
				dest = m.city
			}
		}
	}
	for _, m := range mentions {
		if m.city == origin || m.city == dest {
			continue
		}
		if origin == "" {
			origin = m.city
		} else if dest == "" {
			dest = m.city
		}
	}
	return origin, dest
}

// precedingWord returns the word immediately before position idx.
func precedingWord(lower string, idx int) string {
	end := idx
	for end > 0 && lower[end-1] == ' ' {
		end--
	}
	start := end
	for start > 0 && lower[start-1] != ' ' {
		start--
	}
	return lower[start:end]
}
