package middleware

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	"zenith-planner/internal/model"
	"zenith-planner/internal/task/repository"
	"zenith-planner/pkg/log"
)

const userCacheSize = 1024

type Middleware struct {
	l          log.Logger
	users      repository.UserRepository
	secret     string
	ratePerMin int

	userCache *lru.Cache[string, model.User]
	limiters  *lru.Cache[int64, *rate.Limiter]
}

func New(l log.Logger, users repository.UserRepository, secret string, ratePerMin int) Middleware {
	userCache, _ := lru.New[string, model.User](userCacheSize)
	limiters, _ := lru.New[int64, *rate.Limiter](userCacheSize)
	return Middleware{
		l:          l,
		users:      users,
		secret:     secret,
		ratePerMin: ratePerMin,
		userCache:  userCache,
		limiters:   limiters,
	}
}
