package store

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/chatmux-tools/chatmux/internal/domain"
	"github.com/chatmux-tools/chatmux/internal/store/migrations"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = db.Close()
	})

	err = migrations.Run(db)
	require.NoError(t, err)

	return NewWithDB(db)
}

func TestStore_Grant(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Grant("room.yaml", "alice", "chat.say"))

	grants, err := s.Grants("room.yaml")
	require.NoError(t, err)
	require.Len(t, grants, 1)
	require.Equal(t, "room.yaml", grants[0].Scenario)
	require.Equal(t, "alice", grants[0].Persona)
	require.Equal(t, "chat.say", grants[0].Permission)
	require.False(t, grants[0].GrantedAt.IsZero())
}

func TestStore_Grant_Idempotent(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Grant("room.yaml", "alice", "chat.say"))
	require.NoError(t, s.Grant("room.yaml", "alice", "chat.say"))

	grants, err := s.Grants("room.yaml")
	require.NoError(t, err)
	require.Len(t, grants, 1)
}

func TestStore_Revoke(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Grant("room.yaml", "alice", "chat.say"))

	removed, err := s.Revoke("room.yaml", "alice", "chat.say")
	require.NoError(t, err)
	require.True(t, removed)

	grants, err := s.Grants("room.yaml")
	require.NoError(t, err)
	require.Empty(t, grants)
}

func TestStore_Revoke_MissingGrant(t *testing.T) {
	s := newTestStore(t)

	removed, err := s.Revoke("room.yaml", "alice", "chat.say")
	require.NoError(t, err)
	require.False(t, removed)
}

func TestStore_Grants_ScopedToScenario(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Grant("room.yaml", "alice", "chat.say"))
	require.NoError(t, s.Grant("ops.yaml", "alice", "mod.kick"))

	grants, err := s.Grants("room.yaml")
	require.NoError(t, err)
	require.Len(t, grants, 1)
	require.Equal(t, "chat.say", grants[0].Permission)
}

func TestStore_Grants_Ordering(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Grant("room.yaml", "bob", "mod.kick"))
	require.NoError(t, s.Grant("room.yaml", "alice", "chat.say"))
	require.NoError(t, s.Grant("room.yaml", "alice", "chat.shout"))

	grants, err := s.Grants("room.yaml")
	require.NoError(t, err)
	require.Len(t, grants, 3)

	// Same-second grants fall back to persona then permission order.
	require.Equal(t, "alice", grants[0].Persona)
	require.Equal(t, "chat.say", grants[0].Permission)
	require.Equal(t, "alice", grants[1].Persona)
	require.Equal(t, "chat.shout", grants[1].Permission)
	require.Equal(t, "bob", grants[2].Persona)
}

func TestStore_HasGrant(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Grant("room.yaml", "alice", "chat.say"))

	held, err := s.HasGrant("room.yaml", "alice", "chat.say")
	require.NoError(t, err)
	require.True(t, held)

	held, err = s.HasGrant("room.yaml", "alice", "mod.kick")
	require.NoError(t, err)
	require.False(t, held)

	_, err = s.Revoke("room.yaml", "alice", "chat.say")
	require.NoError(t, err)

	held, err = s.HasGrant("room.yaml", "alice", "chat.say")
	require.NoError(t, err)
	require.False(t, held)
}

func TestStore_Permissions(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Grant("room.yaml", "alice", "mod.kick"))
	require.NoError(t, s.Grant("room.yaml", "alice", "chat.say"))
	require.NoError(t, s.Grant("room.yaml", "bob", "chat.say"))

	perms, err := s.Permissions("room.yaml", "alice")
	require.NoError(t, err)
	require.Equal(t, []string{"chat.say", "mod.kick"}, perms)
}

func TestStore_Permissions_Empty(t *testing.T) {
	s := newTestStore(t)

	perms, err := s.Permissions("room.yaml", "nobody")
	require.NoError(t, err)
	require.Empty(t, perms)
}

func TestStore_Record(t *testing.T) {
	s := newTestStore(t)

	event := domain.AuditEvent{
		OccurredAt: time.Now().UTC().Truncate(time.Second),
		Scenario:   "room.yaml",
		Persona:    "alice",
		Input:      "say hello",
		Outcome:    domain.OutcomeInvoked,
		Target:     "say",
	}

	require.NoError(t, s.Record(event))

	events, err := s.Recent(0)
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.NotEmpty(t, events[0].ID, "missing id should be filled in")
	require.Equal(t, event.OccurredAt, events[0].OccurredAt)
	require.Equal(t, domain.OutcomeInvoked, events[0].Outcome)
	require.Equal(t, "say", events[0].Target)
}

func TestStore_Record_KeepsProvidedID(t *testing.T) {
	s := newTestStore(t)

	event := domain.AuditEvent{
		ID:      "fixed-id",
		Input:   "ping",
		Outcome: domain.OutcomeInvoked,
	}

	require.NoError(t, s.Record(event))

	events, err := s.Recent(1)
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, "fixed-id", events[0].ID)
	require.False(t, events[0].OccurredAt.IsZero(), "zero timestamp should be filled in")
}

func TestStore_Recent_NewestFirstWithLimit(t *testing.T) {
	s := newTestStore(t)

	base := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
	for i, input := range []string{"first", "second", "third"} {
		require.NoError(t, s.Record(domain.AuditEvent{
			OccurredAt: base.Add(time.Duration(i) * time.Minute),
			Input:      input,
			Outcome:    domain.OutcomeInvoked,
		}))
	}

	events, err := s.Recent(2)
	require.NoError(t, err)
	require.Len(t, events, 2)
	require.Equal(t, "third", events[0].Input)
	require.Equal(t, "second", events[1].Input)
}

func TestStore_Recent_SameSecondUsesInsertionOrder(t *testing.T) {
	s := newTestStore(t)

	at := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
	require.NoError(t, s.Record(domain.AuditEvent{OccurredAt: at, Input: "older", Outcome: domain.OutcomeEmpty}))
	require.NoError(t, s.Record(domain.AuditEvent{OccurredAt: at, Input: "newer", Outcome: domain.OutcomeEmpty}))

	events, err := s.Recent(0)
	require.NoError(t, err)
	require.Len(t, events, 2)
	require.Equal(t, "newer", events[0].Input)
	require.Equal(t, "older", events[1].Input)
}

func TestStore_Close(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Close())
}

func TestNew_CreatesDatabaseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.db")

	s, err := New(path)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Grant("room.yaml", "alice", "chat.say"))

	version, err := migrations.CurrentVersion(s.DB())
	require.NoError(t, err)
	require.GreaterOrEqual(t, version, 2)
}
