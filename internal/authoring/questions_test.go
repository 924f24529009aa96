package authoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schedlink/internal/domain"
)

func orders(items []domain.EventQuestion) []int {
	out := make([]int, len(items))
	for i, q := range items {
		out[i] = q.QuestionOrder
	}
	return out
}

func texts(items []domain.EventQuestion) []string {
	out := make([]string, len(items))
	for i, q := range items {
		out[i] = q.Question
	}
	return out
}

func listOf(questions ...string) *QuestionDraftList {
	l := &QuestionDraftList{}
	for _, q := range questions {
		l.Add()
		l.SetQuestion(l.Len()-1, q)
	}
	return l
}

func TestQuestionDraftListAdd(t *testing.T) {
	l := &QuestionDraftList{}

	l.Add()
	l.Add()
	l.Add()

	assert.Equal(t, 3, l.Len())
	assert.Equal(t, []int{1, 2, 3}, orders(l.Items()))
}

func TestQuestionDraftListSetters(t *testing.T) {
	l := listOf("What company are you with?")

	assert.True(t, l.SetRequired(0, true))
	items := l.Items()
	assert.Equal(t, "What company are you with?", items[0].Question)
	assert.True(t, items[0].IsRequired)
	assert.Equal(t, []int{1}, orders(items))

	assert.False(t, l.SetQuestion(5, "x"))
	assert.False(t, l.SetRequired(-1, true))
}

func TestQuestionDraftListDelete(t *testing.T) {
	l := listOf("first", "second", "third")

	require.True(t, l.Delete(1))

	items := l.Items()
	assert.Equal(t, []string{"first", "third"}, texts(items))
	assert.Equal(t, []int{1, 2}, orders(items))

	assert.False(t, l.Delete(5))
	assert.False(t, l.Delete(-1))
}

func TestQuestionDraftListMove(t *testing.T) {
	l := listOf("first", "second", "third")

	require.True(t, l.Move(2, -1))
	items := l.Items()
	assert.Equal(t, []string{"first", "third", "second"}, texts(items))
	assert.Equal(t, []int{1, 2, 3}, orders(items))

	require.True(t, l.Move(0, 1))
	assert.Equal(t, []string{"third", "first", "second"}, texts(l.Items()))
	assert.Equal(t, []int{1, 2, 3}, orders(l.Items()))
}

func TestQuestionDraftListMoveBoundaries(t *testing.T) {
	l := listOf("first", "second")

	assert.False(t, l.Move(0, -1), "moving the first item up is a no-op")
	assert.False(t, l.Move(1, 1), "moving the last item down is a no-op")
	assert.False(t, l.Move(0, 2), "only single-step moves are allowed")

	assert.Equal(t, []string{"first", "second"}, texts(l.Items()))
	assert.Equal(t, []int{1, 2}, orders(l.Items()))
}

func TestQuestionDraftListDrafts(t *testing.T) {
	l := listOf("first", "   ", "third", "")

	drafts := l.Drafts()

	require.Len(t, drafts, 2)
	assert.Equal(t, "first", drafts[0].Question)
	assert.Equal(t, 1, drafts[0].QuestionOrder)
	assert.Equal(t, "third", drafts[1].Question)
	assert.Equal(t, 2, drafts[1].QuestionOrder)

	// The displayed list keeps the blanks.
	assert.Equal(t, 4, l.Len())
}

func TestQuestionDraftListOrderInvariant(t *testing.T) {
	l := listOf("a", "b", "c", "d")
	l.Delete(0)
	l.Move(1, 1)
	l.Add()
	l.Delete(2)

	got := orders(l.Items())
	for i, o := range got {
		assert.Equal(t, i+1, o, "order must equal position+1 after every edit")
	}
}
