package sqlstore

import (
	"context"
	"errors"
	"math"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/mmynk/splitledger/internal/apperr"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/money"
	"github.com/mmynk/splitledger/internal/settlement"
)

func newSQLiteStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore(t *testing.T) {
	runStoreTests(t, newSQLiteStore)
}

func TestMigrationsRunOnce(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	first, err := NewSQLite(dbPath)
	if err != nil {
		t.Fatalf("first open failed: %v", err)
	}
	user := createUser(t, first)
	first.Close()

	second, err := NewSQLite(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer second.Close()

	got, err := second.GetUserByID(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("GetUserByID failed: %v", err)
	}
	if got == nil || got.Email != user.Email {
		t.Errorf("user did not survive reopen: %+v", got)
	}

	var applied int
	if err := second.db.QueryRow("SELECT COUNT(*) FROM " + migrationTable).Scan(&applied); err != nil {
		t.Fatalf("count migrations: %v", err)
	}
	if applied != 2 {
		t.Errorf("applied migrations = %d, want 2", applied)
	}
}

func TestSplitStatements(t *testing.T) {
	stmts := splitStatements(`
-- leading comment
CREATE TABLE a (id TEXT);

-- between
CREATE INDEX idx ON a(id);
`)
	if len(stmts) != 2 {
		t.Fatalf("got %d statements, want 2: %q", len(stmts), stmts)
	}
	if stmts[0] != "CREATE TABLE a (id TEXT)" {
		t.Errorf("stmts[0] = %q", stmts[0])
	}
}

func TestRebindPlaceholders(t *testing.T) {
	pg := &Store{dialect: Postgres}
	if got := pg.q("SELECT * FROM t WHERE a = ? AND b IN (?, ?)"); got != "SELECT * FROM t WHERE a = $1 AND b IN ($2, $3)" {
		t.Errorf("postgres rebind = %q", got)
	}
	lite := &Store{dialect: SQLite}
	if got := lite.q("a = ?"); got != "a = ?" {
		t.Errorf("sqlite rebind = %q", got)
	}
}

// runStoreTests exercises the store contract against any backend.
// Each subtest creates its own users and records.
func runStoreTests(t *testing.T, newStore func(t *testing.T) *Store) {
	ctx := context.Background()

	t.Run("users", func(t *testing.T) {
		store := newStore(t)
		user := createUser(t, store)

		got, err := store.GetUserByEmail(ctx, user.Email)
		if err != nil {
			t.Fatalf("GetUserByEmail failed: %v", err)
		}
		if got == nil || got.ID != user.ID || got.Name != user.Name {
			t.Errorf("GetUserByEmail = %+v, want %+v", got, user)
		}

		missing, err := store.GetUserByID(ctx, uuid.New().String())
		if err != nil {
			t.Fatalf("GetUserByID failed: %v", err)
		}
		if missing != nil {
			t.Errorf("expected nil for unknown user, got %+v", missing)
		}
	})

	t.Run("ledger crud and ownership", func(t *testing.T) {
		store := newStore(t)
		owner := createUser(t, store)
		other := createUser(t, store)

		ledger := &models.Ledger{OwnerID: owner.ID, Name: "Band account", Description: "rehearsal room"}
		if err := store.CreateLedger(ctx, ledger); err != nil {
			t.Fatalf("CreateLedger failed: %v", err)
		}
		if ledger.ID == "" {
			t.Fatal("Expected ledger ID to be generated")
		}

		got, err := store.GetLedger(ctx, ledger.ID)
		if err != nil {
			t.Fatalf("GetLedger failed: %v", err)
		}
		if got.Amount != 0 || got.OwnerName != owner.Name {
			t.Errorf("GetLedger = %+v, want zero balance owned by %s", got, owner.Name)
		}

		name := "Renamed"
		if _, err := store.UpdateLedger(ctx, ledger.ID, other.ID, models.LedgerUpdate{Name: &name}); !errors.Is(err, apperr.ErrOwnership) {
			t.Errorf("UpdateLedger by non-owner: err = %v, want ownership", err)
		}
		updated, err := store.UpdateLedger(ctx, ledger.ID, owner.ID, models.LedgerUpdate{Name: &name})
		if err != nil {
			t.Fatalf("UpdateLedger failed: %v", err)
		}
		if updated.Name != name || updated.Description != "rehearsal room" {
			t.Errorf("UpdateLedger = %+v", updated)
		}

		ledgers, err := store.ListLedgers(ctx)
		if err != nil {
			t.Fatalf("ListLedgers failed: %v", err)
		}
		if !containsLedger(ledgers, ledger.ID) {
			t.Error("ListLedgers is missing the created ledger")
		}

		if err := store.DeleteLedger(ctx, ledger.ID, other.ID); !errors.Is(err, apperr.ErrOwnership) {
			t.Errorf("DeleteLedger by non-owner: err = %v, want ownership", err)
		}
		if err := store.DeleteLedger(ctx, ledger.ID, owner.ID); err != nil {
			t.Fatalf("DeleteLedger failed: %v", err)
		}
		if _, err := store.GetLedger(ctx, ledger.ID); !errors.Is(err, apperr.ErrNotFound) {
			t.Errorf("GetLedger after delete: err = %v, want not found", err)
		}
		if err := store.DeleteLedger(ctx, ledger.ID, owner.ID); !errors.Is(err, apperr.ErrNotFound) {
			t.Errorf("DeleteLedger twice: err = %v, want not found", err)
		}
	})

	t.Run("person update unlinks user", func(t *testing.T) {
		store := newStore(t)
		owner := createUser(t, store)

		person := &models.Person{OwnerID: owner.ID, Name: "Alice", UserID: owner.ID}
		if err := store.CreatePerson(ctx, person); err != nil {
			t.Fatalf("CreatePerson failed: %v", err)
		}

		empty := ""
		updated, err := store.UpdatePerson(ctx, person.ID, owner.ID, models.PersonUpdate{UserID: &empty})
		if err != nil {
			t.Fatalf("UpdatePerson failed: %v", err)
		}
		if updated.UserID != "" || updated.Name != "Alice" {
			t.Errorf("UpdatePerson = %+v", updated)
		}
	})

	t.Run("group members replace and skip unknown", func(t *testing.T) {
		store := newStore(t)
		owner := createUser(t, store)
		alice := createPerson(t, store, owner, "Alice")
		bob := createPerson(t, store, owner, "Bob")
		carol := createPerson(t, store, owner, "Carol")

		group := &models.Group{OwnerID: owner.ID, Name: "Roommates"}
		err := store.CreateGroup(ctx, group, []string{bob.ID, alice.ID, bob.ID, uuid.New().String()})
		if err != nil {
			t.Fatalf("CreateGroup failed: %v", err)
		}
		if got := group.MemberIDs(); !equalIDs(got, []string{alice.ID, bob.ID}) {
			t.Errorf("members = %v, want [alice bob]", got)
		}

		updated, err := store.UpdateGroup(ctx, group.ID, owner.ID, models.GroupUpdate{
			MemberIDs:      []string{carol.ID},
			ReplaceMembers: true,
		})
		if err != nil {
			t.Fatalf("UpdateGroup failed: %v", err)
		}
		if got := updated.MemberIDs(); !equalIDs(got, []string{carol.ID}) {
			t.Errorf("members after replace = %v, want [carol]", got)
		}
		if updated.Name != "Roommates" {
			t.Errorf("name changed unexpectedly: %q", updated.Name)
		}

		if err := store.DeletePerson(ctx, carol.ID, owner.ID); err != nil {
			t.Fatalf("DeletePerson failed: %v", err)
		}
		got, err := store.GetGroup(ctx, group.ID)
		if err != nil {
			t.Fatalf("GetGroup failed: %v", err)
		}
		if len(got.Members) != 0 {
			t.Errorf("expected deleted person to leave the group, got %v", got.MemberIDs())
		}
	})

	t.Run("balance follows transactions", func(t *testing.T) {
		store := newStore(t)
		owner := createUser(t, store)
		ledger := createLedger(t, store, owner)

		for _, amount := range []money.Amount{10000, -4000} {
			tx := &models.Transaction{LedgerID: ledger.ID, Amount: amount}
			if err := store.CreateTransaction(ctx, tx, false); err != nil {
				t.Fatalf("CreateTransaction(%d) failed: %v", amount, err)
			}
		}

		got, err := store.GetLedger(ctx, ledger.ID)
		if err != nil {
			t.Fatalf("GetLedger failed: %v", err)
		}
		if got.Amount != 6000 {
			t.Errorf("balance = %d, want 6000", got.Amount)
		}

		stored, amounts, err := store.LedgerBalance(ctx, ledger.ID)
		if err != nil {
			t.Fatalf("LedgerBalance failed: %v", err)
		}
		if v := settlement.Verify(stored, amounts); !v.OK() {
			t.Errorf("verification drift %d", v.Drift())
		}

		txs, err := store.ListTransactions(ctx, ledger.ID)
		if err != nil {
			t.Fatalf("ListTransactions failed: %v", err)
		}
		if len(txs) != 2 {
			t.Errorf("ListTransactions returned %d, want 2", len(txs))
		}
	})

	t.Run("out of range amounts are rejected", func(t *testing.T) {
		store := newStore(t)
		owner := createUser(t, store)
		ledger := createLedger(t, store, owner)

		for _, amount := range []money.Amount{math.MaxInt64, math.MaxInt64, money.MaxAmount + 1, -money.MaxAmount - 1} {
			tx := &models.Transaction{LedgerID: ledger.ID, Amount: amount}
			if err := store.CreateTransaction(ctx, tx, false); !errors.Is(err, apperr.ErrValidation) {
				t.Errorf("CreateTransaction(%d) err = %v, want validation error", amount, err)
			}
		}

		got, err := store.GetLedger(ctx, ledger.ID)
		if err != nil {
			t.Fatalf("GetLedger failed: %v", err)
		}
		if got.Amount != 0 {
			t.Errorf("balance = %d, want 0", got.Amount)
		}
		if _, amounts, err := store.LedgerBalance(ctx, ledger.ID); err != nil || len(amounts) != 0 {
			t.Errorf("LedgerBalance = %v, %v, want no transactions", amounts, err)
		}
	})

	t.Run("balance overflow is rejected", func(t *testing.T) {
		store := newStore(t)
		owner := createUser(t, store)
		ledger := createLedger(t, store, owner)

		near := money.Amount(math.MaxInt64 - 10)
		if _, err := store.db.ExecContext(ctx, store.q("UPDATE ledgers SET amount = ? WHERE id = ?"), int64(near), ledger.ID); err != nil {
			t.Fatalf("seed balance: %v", err)
		}

		for _, amount := range []money.Amount{100, money.MaxAmount} {
			tx := &models.Transaction{LedgerID: ledger.ID, Amount: amount}
			if err := store.CreateTransaction(ctx, tx, false); !errors.Is(err, apperr.ErrValidation) {
				t.Errorf("CreateTransaction(%d) err = %v, want validation error", amount, err)
			}
		}
		if err := store.CreateTransaction(ctx, &models.Transaction{LedgerID: ledger.ID, Amount: 10}, false); err != nil {
			t.Fatalf("CreateTransaction up to the limit failed: %v", err)
		}
		if err := store.CreateTransaction(ctx, &models.Transaction{LedgerID: ledger.ID, Amount: -100}, false); err != nil {
			t.Fatalf("CreateTransaction away from the limit failed: %v", err)
		}

		got, err := store.GetLedger(ctx, ledger.ID)
		if err != nil {
			t.Fatalf("GetLedger failed after overflow attempts: %v", err)
		}
		if want := near + 10 - 100; got.Amount != want {
			t.Errorf("balance = %d, want %d", got.Amount, want)
		}
		if _, amounts, err := store.LedgerBalance(ctx, ledger.ID); err != nil || len(amounts) != 2 {
			t.Errorf("LedgerBalance = %v, %v, want the two accepted amounts", amounts, err)
		}
	})

	t.Run("same second transactions list newest first", func(t *testing.T) {
		store := newStore(t)
		owner := createUser(t, store)
		ledger := createLedger(t, store, owner)

		var want []string
		for i := 0; i < 5; i++ {
			tx := &models.Transaction{LedgerID: ledger.ID, Amount: money.Amount(i + 1), CreatedAt: 1700000000}
			if err := store.CreateTransaction(ctx, tx, false); err != nil {
				t.Fatalf("CreateTransaction failed: %v", err)
			}
			want = append([]string{tx.ID}, want...)
		}
		later := &models.Transaction{LedgerID: ledger.ID, Amount: 6, CreatedAt: 1700000001}
		if err := store.CreateTransaction(ctx, later, false); err != nil {
			t.Fatalf("CreateTransaction failed: %v", err)
		}
		want = append([]string{later.ID}, want...)

		txs, err := store.ListTransactions(ctx, ledger.ID)
		if err != nil {
			t.Fatalf("ListTransactions failed: %v", err)
		}
		got := make([]string, len(txs))
		for i, tx := range txs {
			got[i] = tx.ID
		}
		if !equalIDs(got, want) {
			t.Errorf("order = %v, want %v", got, want)
		}
	})

	t.Run("missing ledger records nothing", func(t *testing.T) {
		store := newStore(t)
		tx := &models.Transaction{LedgerID: uuid.New().String(), Amount: 500}
		if err := store.CreateTransaction(ctx, tx, false); !errors.Is(err, apperr.ErrNotFound) {
			t.Fatalf("err = %v, want not found", err)
		}
		if _, err := store.GetTransaction(ctx, tx.ID); !errors.Is(err, apperr.ErrNotFound) {
			t.Errorf("transaction was persisted despite the failure: %v", err)
		}
	})

	t.Run("project participants and payment markers", func(t *testing.T) {
		store := newStore(t)
		owner := createUser(t, store)
		ledger := createLedger(t, store, owner)
		p1 := createPerson(t, store, owner, "Alice")
		p2 := createPerson(t, store, owner, "Bob")

		group := &models.Group{OwnerID: owner.ID, Name: "Band"}
		if err := store.CreateGroup(ctx, group, []string{p1.ID, p2.ID}); err != nil {
			t.Fatalf("CreateGroup failed: %v", err)
		}

		project := &models.Project{OwnerID: owner.ID, Name: "Gig", Amount: 2500, Refundable: true}
		if err := store.CreateProject(ctx, project, []string{p1.ID}, []string{group.ID}); err != nil {
			t.Fatalf("CreateProject failed: %v", err)
		}

		participants, err := store.ListParticipants(ctx, project.ID)
		if err != nil {
			t.Fatalf("ListParticipants failed: %v", err)
		}
		if len(participants) != 2 {
			t.Fatalf("got %d participants, want 2", len(participants))
		}
		for _, p := range participants {
			if settlement.StatusOf(&p) != settlement.StatusUnpaid {
				t.Errorf("participant %s starts %v, want unpaid", p.Name, settlement.StatusOf(&p))
			}
		}

		payment := &models.Transaction{LedgerID: ledger.ID, Amount: 2500, CorrespondentID: p2.ID, ProjectID: project.ID}
		if err := store.CreateTransaction(ctx, payment, false); err != nil {
			t.Fatalf("payment failed: %v", err)
		}

		participants, err = store.ListParticipants(ctx, project.ID)
		if err != nil {
			t.Fatalf("ListParticipants failed: %v", err)
		}
		first := participants[0]
		if first.PersonID != p2.ID || first.PaidTransactionID != payment.ID || first.PaidAmount != 2500 {
			t.Errorf("first participant = %+v, want Bob paid by %s", first, payment.ID)
		}
		if participants[1].Paid() {
			t.Errorf("Alice should still be unpaid: %+v", participants[1])
		}

		refund := &models.Transaction{LedgerID: ledger.ID, Amount: -2500, CorrespondentID: p2.ID, ProjectID: project.ID}
		if err := store.CreateTransaction(ctx, refund, true); err != nil {
			t.Fatalf("refund failed: %v", err)
		}
		participants, _ = store.ListParticipants(ctx, project.ID)
		for _, p := range participants {
			if p.PersonID == p2.ID && settlement.StatusOf(&p) != settlement.StatusRefunded {
				t.Errorf("Bob status = %v, want refunded", settlement.StatusOf(&p))
			}
		}

		// Group changes after creation do not add participants.
		p3 := createPerson(t, store, owner, "Carol")
		if _, err := store.UpdateGroup(ctx, group.ID, owner.ID, models.GroupUpdate{
			MemberIDs: []string{p1.ID, p2.ID, p3.ID}, ReplaceMembers: true,
		}); err != nil {
			t.Fatalf("UpdateGroup failed: %v", err)
		}
		participants, _ = store.ListParticipants(ctx, project.ID)
		if len(participants) != 2 {
			t.Errorf("participants = %d after group change, want 2", len(participants))
		}
	})

	t.Run("missing participant rolls back", func(t *testing.T) {
		store := newStore(t)
		owner := createUser(t, store)
		ledger := createLedger(t, store, owner)
		outsider := createPerson(t, store, owner, "Mallory")

		project := &models.Project{OwnerID: owner.ID, Name: "Trip", Amount: 1000}
		if err := store.CreateProject(ctx, project, nil, nil); err != nil {
			t.Fatalf("CreateProject failed: %v", err)
		}

		tx := &models.Transaction{LedgerID: ledger.ID, Amount: 1000, CorrespondentID: outsider.ID, ProjectID: project.ID}
		if err := store.CreateTransaction(ctx, tx, false); !errors.Is(err, apperr.ErrNotFound) {
			t.Fatalf("err = %v, want not found", err)
		}

		got, err := store.GetLedger(ctx, ledger.ID)
		if err != nil {
			t.Fatalf("GetLedger failed: %v", err)
		}
		if got.Amount != 0 {
			t.Errorf("balance = %d after rollback, want 0", got.Amount)
		}
		txs, _ := store.ListTransactions(ctx, ledger.ID)
		if len(txs) != 0 {
			t.Errorf("transactions = %d after rollback, want 0", len(txs))
		}
	})

	t.Run("payout", func(t *testing.T) {
		store := newStore(t)
		owner := createUser(t, store)
		ledger := createLedger(t, store, owner)
		organizer := createPerson(t, store, owner, "Organizer")

		var ids []string
		for _, name := range []string{"A", "B", "C"} {
			ids = append(ids, createPerson(t, store, owner, name).ID)
		}
		project := &models.Project{OwnerID: owner.ID, Name: "Dinner", Amount: 2500}
		if err := store.CreateProject(ctx, project, ids, nil); err != nil {
			t.Fatalf("CreateProject failed: %v", err)
		}
		for _, id := range ids {
			tx := &models.Transaction{LedgerID: ledger.ID, Amount: 2500, CorrespondentID: id, ProjectID: project.ID}
			if err := store.CreateTransaction(ctx, tx, false); err != nil {
				t.Fatalf("payment failed: %v", err)
			}
		}

		participants, _ := store.ListParticipants(ctx, project.ID)
		suggestion, err := settlement.SuggestPayout(project, participants)
		if err != nil || suggestion.Amount != -7500 {
			t.Fatalf("suggested payout = %d, want -7500", suggestion.Amount)
		}

		payout := &models.Transaction{
			LedgerID:        ledger.ID,
			Amount:          suggestion.Amount,
			CorrespondentID: organizer.ID,
			ProjectID:       project.ID,
		}
		if err := store.PayoutProject(ctx, payout); err != nil {
			t.Fatalf("PayoutProject failed: %v", err)
		}

		got, err := store.GetProject(ctx, project.ID)
		if err != nil {
			t.Fatalf("GetProject failed: %v", err)
		}
		if !got.PaidOut() {
			t.Error("expected paidOutAt to be set")
		}
		tx, err := store.GetTransaction(ctx, payout.ID)
		if err != nil {
			t.Fatalf("GetTransaction failed: %v", err)
		}
		if tx.Amount != -7500 || tx.ProjectName != "Dinner" || tx.CorrespondentName != "Organizer" {
			t.Errorf("payout transaction = %+v", tx)
		}
		balance, _ := store.GetLedger(ctx, ledger.ID)
		if balance.Amount != 0 {
			t.Errorf("balance = %d after payout, want 0", balance.Amount)
		}
	})

	t.Run("concurrent transactions lose no updates", func(t *testing.T) {
		store := newStore(t)
		owner := createUser(t, store)
		ledger := createLedger(t, store, owner)

		const workers = 20
		var wg sync.WaitGroup
		errs := make(chan error, workers)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				tx := &models.Transaction{LedgerID: ledger.ID, Amount: money.Amount(100 + i)}
				errs <- store.CreateTransaction(ctx, tx, false)
			}(i)
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			if err != nil {
				t.Fatalf("CreateTransaction failed: %v", err)
			}
		}

		var want money.Amount
		for i := 0; i < workers; i++ {
			want += money.Amount(100 + i)
		}
		stored, amounts, err := store.LedgerBalance(ctx, ledger.ID)
		if err != nil {
			t.Fatalf("LedgerBalance failed: %v", err)
		}
		if stored != want || len(amounts) != workers {
			t.Errorf("balance = %d over %d transactions, want %d over %d", stored, len(amounts), want, workers)
		}
	})

	t.Run("deletes cascade", func(t *testing.T) {
		store := newStore(t)
		owner := createUser(t, store)
		ledger := createLedger(t, store, owner)
		person := createPerson(t, store, owner, "Dave")

		project := &models.Project{OwnerID: owner.ID, Name: "Festival", Amount: 4000}
		if err := store.CreateProject(ctx, project, []string{person.ID}, nil); err != nil {
			t.Fatalf("CreateProject failed: %v", err)
		}
		tx := &models.Transaction{LedgerID: ledger.ID, Amount: 4000, CorrespondentID: person.ID, ProjectID: project.ID}
		if err := store.CreateTransaction(ctx, tx, false); err != nil {
			t.Fatalf("CreateTransaction failed: %v", err)
		}

		if err := store.DeleteProject(ctx, project.ID, owner.ID); err != nil {
			t.Fatalf("DeleteProject failed: %v", err)
		}
		got, err := store.GetTransaction(ctx, tx.ID)
		if err != nil {
			t.Fatalf("GetTransaction failed: %v", err)
		}
		if got.ProjectID != "" {
			t.Errorf("project id = %q after project delete, want empty", got.ProjectID)
		}

		if err := store.DeletePerson(ctx, person.ID, owner.ID); err != nil {
			t.Fatalf("DeletePerson failed: %v", err)
		}
		got, _ = store.GetTransaction(ctx, tx.ID)
		if got.CorrespondentID != "" {
			t.Errorf("correspondent = %q after person delete, want empty", got.CorrespondentID)
		}

		if err := store.DeleteLedger(ctx, ledger.ID, owner.ID); err != nil {
			t.Fatalf("DeleteLedger failed: %v", err)
		}
		if _, err := store.GetTransaction(ctx, tx.ID); !errors.Is(err, apperr.ErrNotFound) {
			t.Errorf("transaction survived ledger delete: %v", err)
		}
	})

	t.Run("completion toggles", func(t *testing.T) {
		store := newStore(t)
		owner := createUser(t, store)
		other := createUser(t, store)

		project := &models.Project{OwnerID: owner.ID, Name: "Retreat", Amount: 100, Deadline: 1700000000}
		if err := store.CreateProject(ctx, project, nil, nil); err != nil {
			t.Fatalf("CreateProject failed: %v", err)
		}

		if _, err := store.SetProjectCompleted(ctx, project.ID, other.ID, 1); !errors.Is(err, apperr.ErrOwnership) {
			t.Errorf("non-owner completion: err = %v, want ownership", err)
		}
		done, err := store.SetProjectCompleted(ctx, project.ID, owner.ID, 1700000500)
		if err != nil {
			t.Fatalf("SetProjectCompleted failed: %v", err)
		}
		if done.CompletedAt != 1700000500 || done.Deadline != 1700000000 {
			t.Errorf("project = %+v", done)
		}
		reopened, err := store.SetProjectCompleted(ctx, project.ID, owner.ID, 0)
		if err != nil {
			t.Fatalf("SetProjectCompleted(0) failed: %v", err)
		}
		if reopened.Completed() {
			t.Error("expected completedAt cleared")
		}
	})
}

func createUser(t *testing.T, store *Store) *models.User {
	t.Helper()
	id := uuid.New().String()
	user := models.NewUser(id+"@example.com", "User "+id[:8], "hash")
	if err := store.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	return user
}

func createLedger(t *testing.T, store *Store, owner *models.User) *models.Ledger {
	t.Helper()
	ledger := &models.Ledger{OwnerID: owner.ID, Name: "Ledger"}
	if err := store.CreateLedger(context.Background(), ledger); err != nil {
		t.Fatalf("CreateLedger failed: %v", err)
	}
	return ledger
}

func createPerson(t *testing.T, store *Store, owner *models.User, name string) *models.Person {
	t.Helper()
	person := &models.Person{OwnerID: owner.ID, Name: name}
	if err := store.CreatePerson(context.Background(), person); err != nil {
		t.Fatalf("CreatePerson failed: %v", err)
	}
	return person
}

func containsLedger(ledgers []*models.Ledger, id string) bool {
	for _, l := range ledgers {
		if l.ID == id {
			return true
		}
	}
	return false
}

func equalIDs(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
