package trivia

// MessageNoQuestions is returned instead of a question once a quiz is exhausted.
const MessageNoQuestions = "no questions to return"

// CategoryMap maps category ids to their type labels. JSON renders the ids as object keys.
type CategoryMap map[int64]string

func NewCategoryMap(categories []Category) CategoryMap {
	m := make(CategoryMap, len(categories))
	for _, c := range categories {
		m[c.ID] = c.Type
	}
	return m
}

type CategoriesPayload struct {
	Success         bool        `json:"success"`
	TotalCategories int         `json:"total_categories"`
	Categories      CategoryMap `json:"categories"`
}

type QuestionPage struct {
	Questions      []Question  `json:"questions"`
	TotalQuestions int         `json:"total_questions"`
	Categories     CategoryMap `json:"categories"`
}

type CategoryQuestionPage struct {
	QuestionPage
	CurrentCategory string `json:"current_category"`
}

type SearchResult struct {
	Questions      []Question `json:"questions"`
	TotalQuestions int        `json:"total_questions"`
}

type QuestionPayload struct {
	Success  bool     `json:"success"`
	Question Question `json:"question"`
}

// QuizResult holds either the next question or the exhaustion message.
type QuizResult struct {
	Question *Question `json:"question,omitempty"`
	Message  string    `json:"message,omitempty"`
}

// Exhausted reports whether the quiz ran out of questions.
func (r QuizResult) Exhausted() bool {
	return r.Question == nil
}

type SuccessPayload struct {
	Success bool `json:"success"`
}

func newCategoriesPayload(categories []Category) CategoriesPayload {
	return CategoriesPayload{
		Success:         true,
		TotalCategories: len(categories),
		Categories:      NewCategoryMap(categories),
	}
}

func newQuestionPage(all []Question, page, pageSize int, categories []Category) QuestionPage {
	return QuestionPage{
		Questions:      Paginate(all, page, pageSize),
		TotalQuestions: len(all),
		Categories:     NewCategoryMap(categories),
	}
}

func newSearchResult(matches []Question) SearchResult {
	if matches == nil {
		matches = []Question{}
	}
	return SearchResult{Questions: matches, TotalQuestions: len(matches)}
}

func newQuizResult(q Question, ok bool) QuizResult {
	if !ok {
		return QuizResult{Message: MessageNoQuestions}
	}
	return QuizResult{Question: &q}
}
