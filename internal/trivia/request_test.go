package trivia

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeQuizRequest(t *testing.T) {
	t.Run("all categories with numeric strings", func(t *testing.T) {
		req, err := DecodeQuizRequest(strings.NewReader(`{"previous_questions":["4", 9, 12],"quiz_category":{"type":"click","id":"0"}}`))
		require.NoError(t, err)
		_, specific := req.Category.Specific()
		assert.False(t, specific)
		assert.Equal(t, NewIDSet(4, 9, 12), req.Previous)
	})

	t.Run("specific category", func(t *testing.T) {
		req, err := DecodeQuizRequest(strings.NewReader(`{"previous_questions":[],"quiz_category":{"type":"Science","id":1}}`))
		require.NoError(t, err)
		id, specific := req.Category.Specific()
		assert.True(t, specific)
		assert.Equal(t, int64(1), id)
		assert.Empty(t, req.Previous)
	})

	t.Run("previous questions may be omitted", func(t *testing.T) {
		req, err := DecodeQuizRequest(strings.NewReader(`{"quiz_category":{"id":2}}`))
		require.NoError(t, err)
		assert.Empty(t, req.Previous)
	})

	rejected := map[string]string{
		"empty body":        ``,
		"malformed json":    `{"quiz_category":`,
		"missing category":  `{"previous_questions":[1]}`,
		"missing id":        `{"quiz_category":{"type":"Art"}}`,
		"non numeric id":    `{"quiz_category":{"id":"art"}}`,
		"negative id":       `{"quiz_category":{"id":-1}}`,
		"bad previous list": `{"quiz_category":{"id":1},"previous_questions":"1,2"}`,
	}
	for name, body := range rejected {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeQuizRequest(strings.NewReader(body))
			require.Error(t, err)
			assert.Equal(t, KindUnprocessable, KindOf(err))
		})
	}
}

func TestDecodeCreateQuestion(t *testing.T) {
	req, err := DecodeCreateQuestion(strings.NewReader(`{"question":"Heres a new question string","answer":"Heres a new answer string","difficulty":"1","category":"1"}`))
	require.NoError(t, err)
	assert.Equal(t, CreateQuestionRequest{
		Question:   "Heres a new question string",
		Answer:     "Heres a new answer string",
		Category:   1,
		Difficulty: 1,
	}, req)

	req, err = DecodeCreateQuestion(strings.NewReader(""))
	require.NoError(t, err)
	assert.Zero(t, req)

	_, err = DecodeCreateQuestion(strings.NewReader(`{"question":`))
	require.Error(t, err)
	assert.Equal(t, KindBadRequest, KindOf(err))
}

func TestDecodeSearchTerm(t *testing.T) {
	term, err := DecodeSearchTerm(strings.NewReader(`{"searchTerm":"title"}`))
	require.NoError(t, err)
	assert.Equal(t, "title", term)

	term, err = DecodeSearchTerm(strings.NewReader(`{}`))
	require.NoError(t, err)
	assert.Empty(t, term)

	_, err = DecodeSearchTerm(strings.NewReader(""))
	assert.Equal(t, KindUnprocessable, KindOf(err))
}
