package trivia

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	errEmptyBody       = errors.New("empty request body")
	errMissingCategory = errors.New("quiz_category.id is required")
	errNegativeID      = errors.New("quiz_category.id must not be negative")
)

// flexInt accepts a JSON number or a string holding one, as the web client sends both.
type flexInt struct {
	value int64
	set   bool
}

func (f *flexInt) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	if bytes.Equal(raw, []byte("null")) {
		*f = flexInt{}
		return nil
	}
	num := json.Number(raw)
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*f = flexInt{}
			return nil
		}
		num = json.Number(s)
	}
	v, err := num.Int64()
	if err != nil {
		return fmt.Errorf("expected an integer, got %s", raw)
	}
	*f = flexInt{value: v, set: true}
	return nil
}

type createQuestionBody struct {
	Question   string  `json:"question"`
	Answer     string  `json:"answer"`
	Category   flexInt `json:"category"`
	Difficulty flexInt `json:"difficulty"`
}

type searchBody struct {
	SearchTerm string `json:"searchTerm"`
}

type quizBody struct {
	QuizCategory *struct {
		ID flexInt `json:"id"`
	} `json:"quiz_category"`
	PreviousQuestions []flexInt `json:"previous_questions"`
}

// DecodeCreateQuestion reads a question insert. An empty body decodes to an empty request,
// which validation then rejects.
func DecodeCreateQuestion(r io.Reader) (CreateQuestionRequest, error) {
	var body createQuestionBody
	if err := json.NewDecoder(r).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		return CreateQuestionRequest{}, newError(KindBadRequest, "decode question", err)
	}
	return CreateQuestionRequest{
		Question:   body.Question,
		Answer:     body.Answer,
		Category:   body.Category.value,
		Difficulty: int(body.Difficulty.value),
	}, nil
}

// DecodeSearchTerm reads the search term. A missing term means "match everything".
func DecodeSearchTerm(r io.Reader) (string, error) {
	var body searchBody
	if err := json.NewDecoder(r).Decode(&body); err != nil {
		if errors.Is(err, io.EOF) {
			err = errEmptyBody
		}
		return "", newError(KindUnprocessable, "decode search", err)
	}
	return body.SearchTerm, nil
}

// DecodeQuizRequest reads the quiz state. Category id 0 selects all categories.
func DecodeQuizRequest(r io.Reader) (QuizRequest, error) {
	var body quizBody
	if err := json.NewDecoder(r).Decode(&body); err != nil {
		if errors.Is(err, io.EOF) {
			err = errEmptyBody
		}
		return QuizRequest{}, newError(KindUnprocessable, "decode quiz", err)
	}
	if body.QuizCategory == nil || !body.QuizCategory.ID.set {
		return QuizRequest{}, newError(KindUnprocessable, "decode quiz", errMissingCategory)
	}

	var selector CategorySelector
	switch id := body.QuizCategory.ID.value; {
	case id < 0:
		return QuizRequest{}, newError(KindUnprocessable, "decode quiz", errNegativeID)
	case id == 0:
		selector = AllCategories()
	default:
		selector = SpecificCategory(id)
	}

	previous := make(IDSet, len(body.PreviousQuestions))
	for _, id := range body.PreviousQuestions {
		if id.set {
			previous[id.value] = struct{}{}
		}
	}
	return QuizRequest{Category: selector, Previous: previous}, nil
}
