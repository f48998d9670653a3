package memory

import (
	"errors"
	"testing"
	"time"

	"github.com/espocity/league/internal/domain/bet"
	"github.com/espocity/league/internal/domain/scoring"
	"github.com/espocity/league/internal/domain/user"
)

func seedSettlementStore(t *testing.T) *Store {
	t.Helper()

	store := NewStore()
	store.Seed()

	users := NewUserRepository(store)
	bets := NewBetRepository(store)
	for i, item := range []struct {
		userID   string
		username string
		home     int
		away     int
	}{
		{"u1", "alice", 2, 1},
		{"u2", "bob", 1, 0},
		{"u3", "carol", 0, 2},
	} {
		if _, err := users.Create(t.Context(), user.User{ID: item.userID, Username: item.username, IsActive: true}); err != nil {
			t.Fatalf("seed user: %v", err)
		}
		if _, err := bets.Create(t.Context(), bet.Bet{
			ID:            "b" + item.userID,
			UserID:        item.userID,
			MatchID:       "match-ger-sco",
			PredictedHome: item.home,
			PredictedAway: item.away,
			CreatedAt:     time.Date(2026, 6, 12, 10, 0, 0, 0, time.UTC).Add(time.Duration(i) * time.Minute),
		}); err != nil {
			t.Fatalf("seed bet: %v", err)
		}
	}
	return store
}

func TestSettlementRepository_SettleMatch(t *testing.T) {
	store := seedSettlementStore(t)
	repo := NewSettlementRepository(store)

	settlement, err := repo.SettleMatch(t.Context(), "match-ger-sco", 2, 1)
	if err != nil {
		t.Fatalf("settle: %v", err)
	}
	if !settlement.FirstTime || !settlement.Rescored {
		t.Fatalf("expected first-time rescoring settlement, got %+v", settlement)
	}

	want := map[string]int{"u1": 3, "u2": 1, "u3": 0}
	for userID, points := range want {
		if settlement.PointsByUser[userID] != points {
			t.Fatalf("user %s: expected %d points, got %d", userID, points, settlement.PointsByUser[userID])
		}
	}

	users := NewUserRepository(store)
	for userID, points := range want {
		u, _, err := users.GetByID(t.Context(), userID)
		if err != nil {
			t.Fatalf("get user: %v", err)
		}
		if u.Score != points {
			t.Fatalf("user %s: expected total %d, got %d", userID, points, u.Score)
		}
	}
}

func TestSettlementRepository_SameResultIsNoop(t *testing.T) {
	store := seedSettlementStore(t)
	repo := NewSettlementRepository(store)

	if _, err := repo.SettleMatch(t.Context(), "match-ger-sco", 2, 1); err != nil {
		t.Fatalf("first settle: %v", err)
	}

	settlement, err := repo.SettleMatch(t.Context(), "match-ger-sco", 2, 1)
	if err != nil {
		t.Fatalf("repeat settle: %v", err)
	}
	if settlement.Rescored || settlement.FirstTime {
		t.Fatalf("expected no-op settlement, got %+v", settlement)
	}

	u, _, _ := NewUserRepository(store).GetByID(t.Context(), "u1")
	if u.Score != 3 {
		t.Fatalf("expected total to stay 3, got %d", u.Score)
	}
}

func TestSettlementRepository_CorrectionRederives(t *testing.T) {
	store := seedSettlementStore(t)
	repo := NewSettlementRepository(store)

	if _, err := repo.SettleMatch(t.Context(), "match-ger-sco", 2, 1); err != nil {
		t.Fatalf("first settle: %v", err)
	}

	settlement, err := repo.SettleMatch(t.Context(), "match-ger-sco", 1, 0)
	if err != nil {
		t.Fatalf("corrected settle: %v", err)
	}
	if settlement.FirstTime || !settlement.Rescored {
		t.Fatalf("expected rescoring correction, got %+v", settlement)
	}

	users := NewUserRepository(store)
	// Under the corrected 1-0 result bob is now exact, alice outcome-only.
	for userID, points := range map[string]int{"u1": 1, "u2": 3, "u3": 0} {
		u, _, _ := users.GetByID(t.Context(), userID)
		if u.Score != points {
			t.Fatalf("user %s: expected %d after correction, got %d", userID, points, u.Score)
		}
	}
}

func TestSettlementRepository_UnknownMatch(t *testing.T) {
	repo := NewSettlementRepository(NewStore())

	_, err := repo.SettleMatch(t.Context(), "missing", 1, 0)
	if !errors.Is(err, scoring.ErrMatchNotFound) {
		t.Fatalf("expected ErrMatchNotFound, got %v", err)
	}
}
