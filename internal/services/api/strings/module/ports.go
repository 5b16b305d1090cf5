package module

import (
	"context"

	stringsdom "lexis/internal/services/api/strings/domain"
	stringssvc "lexis/internal/services/api/strings/service"
)

// Ports bundles what other modules may borrow from strings
type Ports struct {
	// Strings is the full service contract
	Strings stringsdom.ServicePort

	// Counter is the narrow stored-count view used by meta health
	Counter stringsdom.CounterPort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptStringsPort adapts the strings service to the domain port interfaces
type adaptStringsPort struct{ svc stringssvc.Service }

func (a adaptStringsPort) Create(ctx context.Context, in stringsdom.CreateInput) (stringsdom.AnalyzedString, error) {
	return a.svc.Create(ctx, in)
}

func (a adaptStringsPort) Get(ctx context.Context, value string) (stringsdom.AnalyzedString, error) {
	return a.svc.Get(ctx, value)
}

func (a adaptStringsPort) GetByID(ctx context.Context, id string) (stringsdom.AnalyzedString, error) {
	return a.svc.GetByID(ctx, id)
}

func (a adaptStringsPort) List(ctx context.Context, in stringsdom.ListInput) (stringsdom.ListResult, error) {
	return a.svc.List(ctx, in)
}

func (a adaptStringsPort) Query(ctx context.Context, query string) (stringsdom.QueryResult, error) {
	return a.svc.Query(ctx, query)
}

func (a adaptStringsPort) Delete(ctx context.Context, value string) (stringsdom.AnalyzedString, error) {
	return a.svc.Delete(ctx, value)
}

func (a adaptStringsPort) Count(ctx context.Context) int { return a.svc.Count(ctx) }
