package model

// Scope carries the per-request caller identity through the use case layer.
type Scope struct {
	UserID string
}

// Environment identifies the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
