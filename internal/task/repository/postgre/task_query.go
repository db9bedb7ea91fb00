package postgre

import (
	"fmt"
	"strings"

	"zenith-planner/internal/model"
	repo "zenith-planner/internal/task/repository"
)

// buildListQuery assembles the SELECT for ListTasks with its ordered args.
func buildListQuery(sc model.Scope, opt repo.ListTasksOptions) (string, []any) {
	conds := []string{"user_id = $1"}
	args := []any{sc.UserID}

	if opt.Completed != nil {
		args = append(args, *opt.Completed)
		conds = append(conds, fmt.Sprintf("is_completed = $%d", len(args)))
	}

	query := fmt.Sprintf(
		"SELECT %s FROM tasks WHERE %s ORDER BY created_at DESC",
		taskColumns, strings.Join(conds, " AND "),
	)
	return query, args
}
