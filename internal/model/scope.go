package model

// Scope carries the authenticated user identity through usecases.
// Every repository call is filtered by Scope.UserID.
type Scope struct {
	UserID int64
	Email  string
}

// Environment names the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
