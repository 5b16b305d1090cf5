package domain

import "context"

// ServicePort defines the service contract for strings
type ServicePort interface {
	Create(ctx context.Context, in CreateInput) (AnalyzedString, error)
	Get(ctx context.Context, value string) (AnalyzedString, error)
	GetByID(ctx context.Context, id string) (AnalyzedString, error)
	List(ctx context.Context, in ListInput) (ListResult, error)
	Query(ctx context.Context, query string) (QueryResult, error)
	Delete(ctx context.Context, value string) (AnalyzedString, error)
	Count(ctx context.Context) int
}

// CounterPort is the narrow cross-module view used by meta health
type CounterPort interface {
	Count(ctx context.Context) int
}
