package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/types"
)

const taskColumns = `id, user_id, application_id, title, description, to_char(due_date, 'YYYY-MM-DD'),
	priority, status, category, completed, completed_at, created_at`

func scanTask(row scanner) (*types.Task, error) {
	var t types.Task
	var priority, status, category string
	err := row.Scan(&t.ID, &t.UserID, &t.ApplicationID, &t.Title, &t.Description, &t.DueDate,
		&priority, &status, &category, &t.Completed, &t.CompletedAt, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	t.Priority = types.Priority(priority)
	t.Status = types.TaskStatus(status)
	t.Category = types.TaskCategory(category)
	return &t, nil
}

// taskApplicationOwned holds when the task's application ($2) is unset or belongs to its user ($1).
const taskApplicationOwned = `($2::uuid IS NULL OR EXISTS (
		SELECT 1 FROM applications a WHERE a.id = $2::uuid AND a.user_id = $1::uuid))`

// CreateTask inserts a task. Completion fields are stored as set by Task.SetStatus.
// A linked application must belong to the same user.
func (db *DB) CreateTask(ctx context.Context, t *types.Task) error {
	err := db.pool.QueryRow(ctx,
		`INSERT INTO tasks (user_id, application_id, title, description, due_date, priority, status,
		        category, completed, completed_at)
		 SELECT $1::uuid, $2::uuid, $3::text, $4::text, $5::text::date, $6::text, $7::text,
		        $8::text, $9::bool, $10::timestamptz
		 WHERE `+taskApplicationOwned+`
		 RETURNING id, created_at`,
		t.UserID, t.ApplicationID, t.Title, t.Description, t.DueDate, string(t.Priority),
		string(t.Status), string(t.Category), t.Completed, t.CompletedAt,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("application %s: %w", t.ApplicationID, ErrNotFound)
		}
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

// GetTask retrieves a task of userID. Returns nil, nil when not found.
func (db *DB) GetTask(ctx context.Context, userID, id uuid.UUID) (*types.Task, error) {
	t, err := scanTask(db.pool.QueryRow(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = $1 AND user_id = $2`, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return t, nil
}

// ListTasks returns the tasks of userID, open ones first, by due date
func (db *DB) ListTasks(ctx context.Context, userID uuid.UUID) ([]types.Task, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+taskColumns+` FROM tasks
		 WHERE user_id = $1
		 ORDER BY completed, due_date NULLS LAST, created_at`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	tasks := []types.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}
	return tasks, nil
}

// UpdateTask overwrites every editable field of t, completion fields included.
// A linked application must belong to the same user.
func (db *DB) UpdateTask(ctx context.Context, t *types.Task) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE tasks SET application_id = $2::uuid, title = $3, description = $4,
		        due_date = $5::text::date, priority = $6, status = $7, category = $8, completed = $9,
		        completed_at = $10
		 WHERE id = $11 AND user_id = $1::uuid AND `+taskApplicationOwned,
		t.UserID, t.ApplicationID, t.Title, t.Description, t.DueDate, string(t.Priority),
		string(t.Status), string(t.Category), t.Completed, t.CompletedAt, t.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	if result.RowsAffected() == 0 {
		if t.ApplicationID != nil {
			return fmt.Errorf("task %s or application %s: %w", t.ID, *t.ApplicationID, ErrNotFound)
		}
		return fmt.Errorf("task %s: %w", t.ID, ErrNotFound)
	}
	return nil
}

// DeleteTask deletes a task of userID
func (db *DB) DeleteTask(ctx context.Context, userID, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("task %s: %w", id, ErrNotFound)
	}
	return nil
}
