package postgres

import (
	"context"
	"database/sql"

	"schedlink/internal/domain"
)

type eventQuestionRepository struct {
	DB *sql.DB
}

func NewEventQuestionRepository(db *sql.DB) domain.EventQuestionRepository {
	return &eventQuestionRepository{DB: db}
}

func (r *eventQuestionRepository) Create(ctx context.Context, q *domain.EventQuestion) error {
	query := `
		INSERT INTO event_questions (event_type_id, question, is_required, question_order)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, q.EventTypeID, q.Question, q.IsRequired, q.QuestionOrder).Scan(&q.ID)
}

func (r *eventQuestionRepository) ListByEventTypeID(ctx context.Context, eventTypeID int64) ([]*domain.EventQuestion, error) {
	query := `
		SELECT id, event_type_id, question, is_required, question_order
		FROM event_questions
		WHERE event_type_id = $1
		ORDER BY question_order ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventTypeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	questions := make([]*domain.EventQuestion, 0)
	for rows.Next() {
		q := &domain.EventQuestion{}
		if err := rows.Scan(&q.ID, &q.EventTypeID, &q.Question, &q.IsRequired, &q.QuestionOrder); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

func (r *eventQuestionRepository) DeleteByEventTypeID(ctx context.Context, eventTypeID int64) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM event_questions WHERE event_type_id = $1`, eventTypeID)
	return err
}
