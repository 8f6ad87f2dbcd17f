package trivia

import "strings"

// Filter keeps the questions whose text contains term, ignoring case.
// An empty term matches everything and returns pool as is. Whitespace is
// matched literally like any other text.
func Filter(pool []Question, term string) []Question {
	if term == "" {
		return pool
	}
	needle := strings.ToLower(term)
	out := make([]Question, 0, len(pool))
	for _, q := range pool {
		if strings.Contains(strings.ToLower(q.Question), needle) {
			out = append(out, q)
		}
	}
	return out
}
