package services_test

import (
	"context"
	"errors"
	"time"

	"github.com/SscSPs/bukukas_app/internal/adapters/kvstore/memstore"
	"github.com/SscSPs/bukukas_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bukukas_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bukukas_app/internal/core/ports/services"
	"github.com/SscSPs/bukukas_app/internal/core/services"
	"github.com/SscSPs/bukukas_app/internal/middleware"
	"github.com/SscSPs/bukukas_app/internal/notify"
	"github.com/SscSPs/bukukas_app/internal/platform/config"
	"github.com/SscSPs/bukukas_app/internal/repositories/kv"
)

var (
	testAdmin = domain.SessionUser{Username: "admin", FullName: "Administrator", Role: domain.RoleAdmin}
	testStaff = domain.SessionUser{Username: "sari", FullName: "Sari Dewi", Role: domain.RoleStaff}

	fixedNow = time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "bukukas-test",
		ActivityLogLimit:  domain.DefaultActivityLogLimit,
		AdminUsername:     "admin",
		AdminPassword:     "admin123",
		AdminFullName:     "Administrator",
	}
}

// testEnv wires every service against an in-memory store.
type testEnv struct {
	store     *memstore.Store
	repos     portsrepo.RepositoryProvider
	svc       *portssvc.ServiceContainer
	ctx       context.Context
	collector *notify.Collector
	events    *recordingSink
}

func newTestEnv() *testEnv {
	mem := memstore.New()
	return newTestEnvOn(mem, mem)
}

// newTestEnvOn wires the services to store; mem is the memory store behind it.
func newTestEnvOn(store portsrepo.KeyValueStore, mem *memstore.Store) *testEnv {
	repos := kv.NewRepositoryProvider(store)
	events := &recordingSink{}
	svc := services.NewServiceContainer(testConfig(), repos, events,
		services.WithNotifier(notify.NewNotifier()),
		services.WithClock(func() time.Time { return fixedNow }),
	)
	ctx, collector := notify.WithCollector(middleware.WithUser(context.Background(), testAdmin))
	return &testEnv{store: mem, repos: repos, svc: svc, ctx: ctx, collector: collector, events: events}
}

func (e *testEnv) messages() []string {
	items := e.collector.Items()
	out := make([]string, 0, len(items))
	for _, n := range items {
		out = append(out, n.Message)
	}
	return out
}

// recordingSink captures mirrored activity events.
type recordingSink struct {
	events []string
}

func (r *recordingSink) Enqueue(distinctId string, event string, properties map[string]any) {
	r.events = append(r.events, distinctId+":"+event)
}

var errStoreDown = errors.New("store unavailable")

// failingBatchStore accepts single writes but fails every batch flush, so an
// operation can run to completion and still not be persisted.
type failingBatchStore struct {
	*memstore.Store
}

func (f failingBatchStore) SetItems(ctx context.Context, items map[string]*string) error {
	return errStoreDown
}
