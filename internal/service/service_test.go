package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/auth"
	"github.com/mmynk/splitledger/internal/metrics"
	"github.com/mmynk/splitledger/internal/middleware"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/money"
	"github.com/mmynk/splitledger/internal/storage"
	"github.com/mmynk/splitledger/internal/storage/sqlstore"
	"github.com/mmynk/splitledger/pkg/api/apiconnect"
)

const testUserHeader = "X-Test-User"

// testAuthInterceptor returns a Connect interceptor that puts the session of
// the user named in the X-Test-User header into the context. Requests
// without the header stay anonymous.
func testAuthInterceptor(users map[string]*models.User) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if u, ok := users[req.Header().Get(testUserHeader)]; ok {
				ctx = middleware.WithSession(ctx, auth.Session{UserID: u.ID, Email: u.Email, Name: u.Name})
			}
			return next(ctx, req)
		}
	}
}

type testServer struct {
	store    *sqlstore.Store
	metrics  *metrics.Metrics
	currency money.Currency

	ledgers  apiconnect.LedgerServiceClient
	persons  apiconnect.PersonServiceClient
	groups   apiconnect.GroupServiceClient
	projects apiconnect.ProjectServiceClient

	alice *models.User
	bob   *models.User
}

// setupTestServer creates a test server on a temporary SQLite database with
// two registered users, alice and bob.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()
	return setupTestServerWithStore(t, nil)
}

// setupTestServerWithStore is setupTestServer with an optional wrapper around
// the SQLite store.
func setupTestServerWithStore(t *testing.T, wrap func(*sqlstore.Store) storage.Store) *testServer {
	t.Helper()

	store, err := sqlstore.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	ts := &testServer{
		store:    store,
		metrics:  metrics.Discard(),
		currency: money.MustCurrency("EUR"),
		alice:    models.NewUser("alice@example.com", "Alice", "x"),
		bob:      models.NewUser("bob@example.com", "Bob", "x"),
	}
	for _, u := range []*models.User{ts.alice, ts.bob} {
		if err := store.CreateUser(context.Background(), u); err != nil {
			t.Fatalf("failed to create user: %v", err)
		}
	}

	var svcStore storage.Store = store
	if wrap != nil {
		svcStore = wrap(store)
	}

	interceptors := connect.WithInterceptors(
		testAuthInterceptor(map[string]*models.User{"alice": ts.alice, "bob": ts.bob}),
		middleware.MetricsInterceptor(ts.metrics),
	)

	mux := http.NewServeMux()
	mux.Handle(apiconnect.NewLedgerServiceHandler(NewLedgerService(svcStore, ts.currency, ts.metrics), interceptors))
	mux.Handle(apiconnect.NewPersonServiceHandler(NewPersonService(svcStore), interceptors))
	mux.Handle(apiconnect.NewGroupServiceHandler(NewGroupService(svcStore), interceptors))
	mux.Handle(apiconnect.NewProjectServiceHandler(NewProjectService(svcStore, ts.currency, ts.metrics), interceptors))

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	ts.ledgers = apiconnect.NewLedgerServiceClient(http.DefaultClient, server.URL)
	ts.persons = apiconnect.NewPersonServiceClient(http.DefaultClient, server.URL)
	ts.groups = apiconnect.NewGroupServiceClient(http.DefaultClient, server.URL)
	ts.projects = apiconnect.NewProjectServiceClient(http.DefaultClient, server.URL)
	return ts
}

// as builds a request sent on behalf of the named test user.
func as[T any](user string, msg *T) *connect.Request[T] {
	req := connect.NewRequest(msg)
	req.Header().Set(testUserHeader, user)
	return req
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertCode(t *testing.T, err error, want connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", want)
	}
	var connectErr *connect.Error
	if !errors.As(err, &connectErr) {
		t.Fatalf("expected connect error, got %T: %v", err, err)
	}
	if connectErr.Code() != want {
		t.Errorf("code = %v, want %v (%v)", connectErr.Code(), want, err)
	}
}

func assertAmount(t *testing.T, what string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(dec(want)) {
		t.Errorf("%s = %s, want %s", what, got, want)
	}
}

// sessionContext returns a context carrying user's session, for calling
// services directly.
func sessionContext(user *models.User) context.Context {
	return middleware.WithSession(context.Background(), auth.Session{UserID: user.ID, Email: user.Email, Name: user.Name})
}
