package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"zenith-planner/internal/model"
	repo "zenith-planner/internal/task/repository"
)

const taskColumns = `id, user_id, title, due_time, category, is_completed, is_recurring, repeat_pattern, user_notes, created_at`

func scanTask(row interface{ Scan(...any) error }) (model.Task, error) {
	var (
		t   model.Task
		due sql.NullTime
	)
	err := row.Scan(
		&t.ID, &t.UserID, &t.Title, &due, &t.Category,
		&t.IsCompleted, &t.IsRecurring, &t.RepeatPattern, &t.UserNotes, &t.CreatedAt,
	)
	if err != nil {
		return model.Task{}, err
	}
	if due.Valid {
		d := due.Time
		t.DueTime = &d
	}
	return t, nil
}

// CreateTask inserts a new task row and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, sc model.Scope, opt repo.CreateTaskOptions) (model.Task, error) {
	query := fmt.Sprintf(`
		INSERT INTO tasks (user_id, title, due_time, category, is_recurring, repeat_pattern, user_notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING %s`, taskColumns)

	var due sql.NullTime
	if opt.DueTime != nil {
		due = sql.NullTime{Time: *opt.DueTime, Valid: true}
	}

	t, err := scanTask(r.db.QueryRowContext(ctx, query,
		sc.UserID, opt.Title, due, opt.Category, opt.IsRecurring, opt.RepeatPattern, opt.UserNotes,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// GetTask retrieves a single task owned by the scoped user.
// Returns zero-value Task (ID == 0) when not found — do NOT return error for not-found.
func (r *implRepository) GetTask(ctx context.Context, sc model.Scope, id int64) (model.Task, error) {
	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE id = $1 AND user_id = $2`, taskColumns)

	t, err := scanTask(r.db.QueryRowContext(ctx, query, id, sc.UserID))
	if err == sql.ErrNoRows {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTasks returns the scoped user's tasks, newest first.
func (r *implRepository) ListTasks(ctx context.Context, sc model.Scope, opt repo.ListTasksOptions) ([]model.Task, error) {
	query, args := buildListQuery(sc, opt)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// UpdateStatus sets the completion flag of a task.
func (r *implRepository) UpdateStatus(ctx context.Context, sc model.Scope, id int64, completed bool) error {
	const query = `UPDATE tasks SET is_completed = $1 WHERE id = $2 AND user_id = $3`
	if _, err := r.db.ExecContext(ctx, query, completed, id, sc.UserID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateStatus"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

// UpdateDueTime reschedules a task without touching its completion flag.
func (r *implRepository) UpdateDueTime(ctx context.Context, sc model.Scope, id int64, opt repo.UpdateDueTimeOptions) error {
	const query = `UPDATE tasks SET due_time = $1 WHERE id = $2 AND user_id = $3`
	if _, err := r.db.ExecContext(ctx, query, opt.DueTime, id, sc.UserID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateDueTime"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

// ResetRecurring reopens a recurring task at its next due time.
// Single statement so a crash cannot leave the task rescheduled but
// still marked complete.
func (r *implRepository) ResetRecurring(ctx context.Context, sc model.Scope, id int64, opt repo.UpdateDueTimeOptions) error {
	const query = `UPDATE tasks SET due_time = $1, is_completed = FALSE WHERE id = $2 AND user_id = $3`
	if _, err := r.db.ExecContext(ctx, query, opt.DueTime, id, sc.UserID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ResetRecurring"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

// DeleteTask removes a task owned by the scoped user.
func (r *implRepository) DeleteTask(ctx context.Context, sc model.Scope, id int64) error {
	const query = `DELETE FROM tasks WHERE id = $1 AND user_id = $2`
	if _, err := r.db.ExecContext(ctx, query, id, sc.UserID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
