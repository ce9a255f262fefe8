//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"campaign-lab/domain"
	"campaign-lab/observability"
	"context"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
	Wait()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// FlushAdapter writes the delta of one session to durable storage.
// It receives a detached copy and must not expect the session to wait for it.
type FlushAdapter interface {
	Save(ctx context.Context, batch domain.SaveBatch) (domain.SaveResult, error)
}

// Saver is the part of the session manager the autosave worker needs.
type Saver interface {
	Autosave(ctx context.Context, sessionID string) (bool, error)
}

// GaugeSource exposes the live session gauges sampled by the stats reporter.
type GaugeSource interface {
	Stats() observability.SessionGauges
}

// ISessionManager is the registry of cached sessions used by the campaign service.
type ISessionManager interface {
	CreateSession(ctx context.Context, sessionID string, content domain.ContentSnapshot) error
	Join(sessionID, characterID string, stats map[string]string) (domain.PlayerState, error)
	Dispatch(sessionID, characterID string, action domain.Action) (domain.ActionResult, error)
	CurrentState(sessionID, characterID string, inventory domain.Inventory) (domain.ActionResult, error)
	Save(ctx context.Context, sessionID string, force bool) (domain.SaveReport, error)
	EndSession(ctx context.Context, sessionID, reason string) (domain.EndReport, error)
	Stats() observability.SessionGauges
}
