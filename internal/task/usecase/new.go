package usecase

import (
	"time"

	"zenith-planner/internal/task/extraction"
	"zenith-planner/internal/task/repository"
	"zenith-planner/pkg/datemath"
	pkgLog "zenith-planner/pkg/log"
)

type implUseCase struct {
	l         pkgLog.Logger
	extractor extraction.Extractor
	repo      repository.TaskRepository
	dateMath  *datemath.Parser
	loc       *time.Location
}

// New creates a new task UseCase instance.
func New(
	l pkgLog.Logger,
	extractor extraction.Extractor,
	repo repository.TaskRepository,
	dateMath *datemath.Parser,
) *implUseCase {
	return &implUseCase{
		l:         l,
		extractor: extractor,
		repo:      repo,
		dateMath:  dateMath,
		loc:       dateMath.Location(),
	}
}
