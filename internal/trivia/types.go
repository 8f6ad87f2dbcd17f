package trivia

import "github.com/gokatarajesh/trivia-api/internal/db"

// QuestionsPerPage is the fixed page size of the listing endpoints.
const QuestionsPerPage = 10

// Question is the wire shape of a stored question.
type Question struct {
	ID         int64  `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int64  `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// Category is a read-only question category.
type Category struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

// IDSet holds the ids of previously served questions.
type IDSet map[int64]struct{}

func NewIDSet(ids ...int64) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s IDSet) Has(id int64) bool {
	_, ok := s[id]
	return ok
}

// CategorySelector scopes a quiz either to all categories or to one category.
// The zero value selects all categories.
type CategorySelector struct {
	id       int64
	specific bool
}

func AllCategories() CategorySelector {
	return CategorySelector{}
}

func SpecificCategory(id int64) CategorySelector {
	return CategorySelector{id: id, specific: true}
}

// Specific reports the selected category id, if one was chosen.
func (c CategorySelector) Specific() (int64, bool) {
	return c.id, c.specific
}

func (c CategorySelector) String() string {
	if !c.specific {
		return "all"
	}
	return "category"
}

func questionFromRow(row db.Question) Question {
	return Question{
		ID:         row.ID,
		Question:   row.Question,
		Answer:     row.Answer,
		Category:   row.Category,
		Difficulty: int(row.Difficulty),
	}
}

func questionsFromRows(rows []db.Question) []Question {
	out := make([]Question, len(rows))
	for i, row := range rows {
		out[i] = questionFromRow(row)
	}
	return out
}

func categoriesFromRows(rows []db.Category) []Category {
	out := make([]Category, len(rows))
	for i, row := range rows {
		out[i] = Category{ID: row.ID, Type: row.Type}
	}
	return out
}
