package postgres

import (
	"context"
	"database/sql"
	"encoding/json"

	"quiz-analytics-service/internal/platform/sqldb"
	"quiz-analytics-service/internal/results/core/domain"
	"quiz-analytics-service/internal/results/core/ports"
)

type RowScanner = sqldb.RowScanner

type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

type ResultRepository struct {
	db DB
}

func NewResultRepository(db DB) *ResultRepository {
	return &ResultRepository{db: db}
}

var _ ports.ResultReaderPort = (*ResultRepository)(nil)

const selectCandidatesSQL = `
SELECT
    id,
    test_id,
    title,
    sort_order,
    condition_type,
    match_condition
FROM test_results
WHERE test_id = $1
ORDER BY sort_order`

const selectSessionAnswersSQL = `
SELECT
    a.question_id,
    c.code,
    a.score,
    a.is_correct
FROM session_answers a
LEFT JOIN question_choices c ON c.id = a.choice_id
WHERE a.session_id = $1`

func (r *ResultRepository) FetchCandidateResults(ctx context.Context, testID string) ([]domain.TestResult, error) {
	rows, err := r.db.QueryContext(ctx, selectCandidatesSQL, testID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.TestResult
	for rows.Next() {
		var (
			res       domain.TestResult
			condType  string
			condition []byte
		)
		if err := rows.Scan(&res.ID, &res.TestID, &res.Title, &res.Order, &condType, &condition); err != nil {
			return nil, err
		}
		res.ConditionType = domain.ConditionType(condType)
		res.MatchCondition = json.RawMessage(condition)
		out = append(out, res)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

func (r *ResultRepository) FetchSessionFacts(ctx context.Context, sessionID string) (domain.SessionFacts, error) {
	rows, err := r.db.QueryContext(ctx, selectSessionAnswersSQL, sessionID)
	if err != nil {
		return domain.SessionFacts{}, err
	}
	defer rows.Close()

	var answers []domain.Answer
	for rows.Next() {
		var (
			questionID string
			code       sql.NullString
			score      sql.NullFloat64
			correct    sql.NullBool
		)
		if err := rows.Scan(&questionID, &code, &score, &correct); err != nil {
			return domain.SessionFacts{}, err
		}

		a := domain.Answer{QuestionID: questionID, ChoiceCode: code.String}
		if score.Valid {
			v := score.Float64
			a.Score = &v
		}
		if correct.Valid {
			v := correct.Bool
			a.Correct = &v
		}
		answers = append(answers, a)
	}

	if err := rows.Err(); err != nil {
		return domain.SessionFacts{}, err
	}

	return domain.DeriveFacts(answers), nil
}
