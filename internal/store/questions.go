package store

import (
	"context"
	"database/sql"
	"fmt"
)

// QuestionRepo archives generated question/answer pairs. The archive
// pre-warms the in-memory fallback bank at startup so a fresh process
// can serve stored questions before its first successful generation.
type QuestionRepo struct {
	db *sql.DB
}

// ArchiveQuestion appends a generated pair. Duplicate question text is
// ignored, mirroring the in-memory bank's dedup rule.
func (r *QuestionRepo) ArchiveQuestion(ctx context.Context, question, answer string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO question_archive (question, answer) VALUES (?, ?)`,
		question, answer)
	if err != nil {
		return fmt.Errorf("archive question: %w", err)
	}
	return nil
}

// RecentQuestions returns up to limit archived pairs, oldest first, so
// re-inserting them into a bounded bank keeps the newest ones.
func (r *QuestionRepo) RecentQuestions(ctx context.Context, limit int) ([]ArchivedQuestion, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT question, answer FROM question_archive
		 WHERE id > (SELECT COALESCE(MAX(id), 0) - ? FROM question_archive)
		 ORDER BY id`, limit)
	if err != nil {
		return nil, fmt.Errorf("load archived questions: %w", err)
	}
	defer rows.Close()

	var out []ArchivedQuestion
	for rows.Next() {
		var q ArchivedQuestion
		if err := rows.Scan(&q.Question, &q.Answer); err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

// ArchivedQuestion is one stored pair.
type ArchivedQuestion struct {
	Question string
	Answer   string
}
