package trivia

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	pool := []Question{
		{ID: 1, Question: "What is the title of the 1990 fantasy directed by Tim Burton?"},
		{ID: 2, Question: "Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?"},
		{ID: 3, Question: "Which is the only team to play in every soccer World Cup tournament?"},
	}

	t.Run("case insensitive substring", func(t *testing.T) {
		got := Filter(pool, "TITLE")
		assert.Len(t, got, 2)
		assert.Equal(t, int64(1), got[0].ID)
		assert.Equal(t, int64(2), got[1].ID)
	})

	t.Run("no match", func(t *testing.T) {
		got := Filter(pool, "zebra")
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("empty term returns the pool", func(t *testing.T) {
		assert.Equal(t, pool, Filter(pool, ""))
	})

	t.Run("whitespace is matched literally", func(t *testing.T) {
		assert.Empty(t, Filter(pool, "   "))
		assert.Len(t, Filter(pool, " "), 3)
	})
}
