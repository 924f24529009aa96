package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schedlink/internal/domain"
)

type mockQuestionRepo struct {
	created     []*domain.EventQuestion
	failAtCall  int // 1-based index of the Create call that fails, 0 for never
	createCalls int

	deleteCalls int
	deleteErr   error

	listItems []*domain.EventQuestion
	listErr   error
}

func (m *mockQuestionRepo) Create(ctx context.Context, q *domain.EventQuestion) error {
	m.createCalls++
	if m.failAtCall > 0 && m.createCalls == m.failAtCall {
		return errors.New("insert failed")
	}
	q.ID = int64(m.createCalls)
	m.created = append(m.created, q)
	return nil
}

func (m *mockQuestionRepo) ListByEventTypeID(ctx context.Context, eventTypeID int64) ([]*domain.EventQuestion, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.listItems, nil
}

func (m *mockQuestionRepo) DeleteByEventTypeID(ctx context.Context, eventTypeID int64) error {
	m.deleteCalls++
	return m.deleteErr
}

func newQuestionService(qr *mockQuestionRepo, etr *mockEventTypeRepo) *eventQuestionService {
	return &eventQuestionService{
		questionRepo:   qr,
		eventTypeRepo:  etr,
		logger:         testLogger(),
		contextTimeout: time.Second,
	}
}

func ownedEventRepo() *mockEventTypeRepo {
	return &mockEventTypeRepo{byID: map[int64]*domain.EventType{7: {ID: 7, OwnerID: "u1"}}}
}

func drafts(texts ...string) []*domain.EventQuestion {
	out := make([]*domain.EventQuestion, len(texts))
	for i, s := range texts {
		out[i] = &domain.EventQuestion{Question: s}
	}
	return out
}

func TestQuestionServiceReplaceForEventType(t *testing.T) {
	repo := &mockQuestionRepo{}
	svc := newQuestionService(repo, ownedEventRepo())

	saved, err := svc.ReplaceForEventType(context.Background(), 7, "u1",
		drafts("What company?", "  ", "Dietary needs?"))

	require.NoError(t, err)
	assert.Equal(t, 1, repo.deleteCalls, "old questions are cleared first")
	require.Len(t, saved, 2)
	assert.Equal(t, "What company?", saved[0].Question)
	assert.Equal(t, 1, saved[0].QuestionOrder)
	assert.Equal(t, "Dietary needs?", saved[1].Question)
	assert.Equal(t, 2, saved[1].QuestionOrder, "blanks are skipped without leaving order gaps")
}

func TestQuestionServiceReplaceForbidden(t *testing.T) {
	repo := &mockQuestionRepo{}
	svc := newQuestionService(repo, ownedEventRepo())

	_, err := svc.ReplaceForEventType(context.Background(), 7, "intruder", drafts("q"))

	require.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, 0, repo.deleteCalls)
	assert.Equal(t, 0, repo.createCalls)
}

func TestQuestionServiceReplaceUnknownEvent(t *testing.T) {
	svc := newQuestionService(&mockQuestionRepo{}, &mockEventTypeRepo{})

	_, err := svc.ReplaceForEventType(context.Background(), 99, "u1", drafts("q"))

	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestQuestionServiceReplaceKeepsPrefixOnFailure(t *testing.T) {
	repo := &mockQuestionRepo{failAtCall: 3}
	svc := newQuestionService(repo, ownedEventRepo())

	saved, err := svc.ReplaceForEventType(context.Background(), 7, "u1",
		drafts("first", "second", "third", "fourth"))

	require.NoError(t, err, "partial persistence is reported as success for the created prefix")
	require.Len(t, saved, 2)
	assert.Equal(t, "first", saved[0].Question)
	assert.Equal(t, "second", saved[1].Question)
	assert.Equal(t, 3, repo.createCalls, "creation stops at the first failure")
}

func TestQuestionServiceReplaceEmptyList(t *testing.T) {
	repo := &mockQuestionRepo{}
	svc := newQuestionService(repo, ownedEventRepo())

	saved, err := svc.ReplaceForEventType(context.Background(), 7, "u1", nil)

	require.NoError(t, err)
	assert.Empty(t, saved)
	assert.Equal(t, 1, repo.deleteCalls, "clearing all questions is a valid replace")
}

func TestQuestionServiceListByEventTypeID(t *testing.T) {
	t.Run("unknown event", func(t *testing.T) {
		svc := newQuestionService(&mockQuestionRepo{}, &mockEventTypeRepo{})

		_, err := svc.ListByEventTypeID(context.Background(), 99)

		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("nil result becomes empty slice", func(t *testing.T) {
		svc := newQuestionService(&mockQuestionRepo{}, ownedEventRepo())

		questions, err := svc.ListByEventTypeID(context.Background(), 7)

		require.NoError(t, err)
		assert.NotNil(t, questions)
		assert.Empty(t, questions)
	})
}
