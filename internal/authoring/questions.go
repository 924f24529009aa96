package authoring

import (
	"strings"

	"schedlink/internal/domain"
)

// QuestionDraftList maintains the host-editable, ordered list of custom
// question drafts prior to event creation. After every operation the
// question orders are exactly the contiguous sequence 1..N matching list
// position; server-side persistence relies on that invariant.
type QuestionDraftList struct {
	items []domain.EventQuestion
}

// Len returns the number of drafts, including blank ones.
func (l *QuestionDraftList) Len() int { return len(l.items) }

// Items returns a copy of the drafts in display order.
func (l *QuestionDraftList) Items() []domain.EventQuestion {
	out := make([]domain.EventQuestion, len(l.items))
	copy(out, l.items)
	return out
}

// Add appends a new empty draft at the end of the list.
func (l *QuestionDraftList) Add() {
	l.items = append(l.items, domain.EventQuestion{QuestionOrder: len(l.items) + 1})
}

// SetQuestion updates the question text in place; ordering is unaffected.
func (l *QuestionDraftList) SetQuestion(index int, text string) bool {
	if index < 0 || index >= len(l.items) {
		return false
	}
	l.items[index].Question = text
	return true
}

// SetRequired updates the required flag in place; ordering is unaffected.
func (l *QuestionDraftList) SetRequired(index int, required bool) bool {
	if index < 0 || index >= len(l.items) {
		return false
	}
	l.items[index].IsRequired = required
	return true
}

// Delete removes the draft at index and renumbers the survivors to 1..N,
// preserving their relative order.
func (l *QuestionDraftList) Delete(index int) bool {
	if index < 0 || index >= len(l.items) {
		return false
	}
	l.items = append(l.items[:index], l.items[index+1:]...)
	l.renumber()
	return true
}

// Move swaps the draft at index with its neighbor in the given direction
// (-1 up, +1 down) and renumbers both. Moves past either boundary are no-ops.
func (l *QuestionDraftList) Move(index, direction int) bool {
	if direction != -1 && direction != 1 {
		return false
	}
	j := index + direction
	if index < 0 || index >= len(l.items) || j < 0 || j >= len(l.items) {
		return false
	}
	l.items[index], l.items[j] = l.items[j], l.items[index]
	l.items[index].QuestionOrder = index + 1
	l.items[j].QuestionOrder = j + 1
	return true
}

func (l *QuestionDraftList) renumber() {
	for i := range l.items {
		l.items[i].QuestionOrder = i + 1
	}
}

// Drafts returns the drafts to persist: blank questions are filtered out and
// the survivors renumbered to a contiguous 1..N in their display order.
func (l *QuestionDraftList) Drafts() []*domain.EventQuestion {
	out := make([]*domain.EventQuestion, 0, len(l.items))
	for _, it := range l.items {
		if strings.TrimSpace(it.Question) == "" {
			continue
		}
		q := it
		q.QuestionOrder = len(out) + 1
		out = append(out, &q)
	}
	return out
}
