package session

import (
	"errors"
	"testing"
	"time"

	"github.com/mgagliardo91/yard-simulator/game/engine"
	"github.com/mgagliardo91/yard-simulator/game/progress"
)

// quickDayConfig ends the working day after one second of real time.
func quickDayConfig() *engine.YardConfig {
	cfg := engine.DefaultYardConfig()
	cfg.DayStartHour = 9
	cfg.DayEndHour = 10
	cfg.MinutesPerTick = 60
	cfg.ClockTickSecs = 0.5
	return cfg
}

func endDay(t *testing.T, yard *engine.Yard) {
	t.Helper()
	yard.Step(engine.InputState{}, 0.5)
	yard.Step(engine.InputState{}, 0.5)
	if yard.Phase() != engine.PhaseEnding {
		t.Fatal("setup: day did not end")
	}
}

func TestCreateGeneratesID(t *testing.T) {
	manager := NewManager()

	sess, err := manager.Create("", engine.DefaultYardConfig())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(sess.ID) != 4 {
		t.Errorf("id = %q, want 4 characters", sess.ID)
	}
	if sess.Yard == nil || sess.Registry == nil {
		t.Fatal("session missing yard or registry")
	}
	if sess.Registry.Day() != 1 {
		t.Errorf("fresh session day = %d, want 1", sess.Registry.Day())
	}
}

func TestCreateDuplicate(t *testing.T) {
	manager := NewManager()
	if _, err := manager.Create("abcd", engine.DefaultYardConfig()); err != nil {
		t.Fatal(err)
	}
	if _, err := manager.Create("ABCD", engine.DefaultYardConfig()); !errors.Is(err, ErrSessionAlreadyExists) {
		t.Errorf("err = %v, want ErrSessionAlreadyExists", err)
	}
}

func TestGetCaseInsensitive(t *testing.T) {
	manager := NewManager()
	if _, err := manager.Create("AbCd", engine.DefaultYardConfig()); err != nil {
		t.Fatal(err)
	}

	if _, err := manager.Get("abcd"); err != nil {
		t.Errorf("lowercase lookup failed: %v", err)
	}
	if _, err := manager.Get("ABCD"); err != nil {
		t.Errorf("uppercase lookup failed: %v", err)
	}
	if _, err := manager.Get("missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("err = %v, want ErrSessionNotFound", err)
	}
}

func TestGetOrCreate(t *testing.T) {
	manager := NewManager()

	first, err := manager.GetOrCreate("wxyz", engine.DefaultYardConfig())
	if err != nil {
		t.Fatal(err)
	}
	second, err := manager.GetOrCreate("wxyz", engine.DefaultYardConfig())
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("GetOrCreate created a second session for the same id")
	}
}

func TestNextDay(t *testing.T) {
	manager := NewManager()
	sess, err := manager.Create("", quickDayConfig())
	if err != nil {
		t.Fatal(err)
	}

	if _, err := manager.NextDay(sess.ID); !errors.Is(err, ErrDayInProgress) {
		t.Fatalf("err = %v, want ErrDayInProgress", err)
	}

	endDay(t, sess.Yard)
	oldYard := sess.Yard

	rolled, err := manager.NextDay(sess.ID)
	if err != nil {
		t.Fatalf("NextDay: %v", err)
	}
	if rolled.Yard == oldYard {
		t.Error("yard was not replaced")
	}
	if rolled.Yard.Phase() != engine.PhaseRunning {
		t.Errorf("new yard phase = %q, want running", rolled.Yard.Phase())
	}
	if rolled.Registry.Day() != 2 {
		t.Errorf("day = %d, want 2", rolled.Registry.Day())
	}
	if rolled.Registry != sess.Registry {
		t.Error("progression registry was replaced on rollover")
	}
}

func TestDelete(t *testing.T) {
	manager := NewManager()
	sess, err := manager.Create("", engine.DefaultYardConfig())
	if err != nil {
		t.Fatal(err)
	}

	if err := manager.Delete(sess.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := manager.Get(sess.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Error("session still retrievable after delete")
	}
	if err := manager.Delete(sess.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("second delete err = %v, want ErrSessionNotFound", err)
	}
}

func TestUpdateLastAccessed(t *testing.T) {
	manager := NewManager()
	sess, err := manager.Create("", engine.DefaultYardConfig())
	if err != nil {
		t.Fatal(err)
	}

	before := sess.LastAccessedAt
	time.Sleep(5 * time.Millisecond)
	if err := manager.UpdateLastAccessed(sess.ID); err != nil {
		t.Fatalf("UpdateLastAccessed: %v", err)
	}
	if !sess.LastAccessedAt.After(before) {
		t.Error("last accessed time not advanced")
	}
}

func TestCleanupExpiredSessions(t *testing.T) {
	manager := NewManager()
	stale, err := manager.Create("", engine.DefaultYardConfig())
	if err != nil {
		t.Fatal(err)
	}
	fresh, err := manager.Create("", engine.DefaultYardConfig())
	if err != nil {
		t.Fatal(err)
	}

	stale.LastAccessedAt = time.Now().Add(-2 * time.Hour)

	removed := manager.CleanupExpiredSessions(time.Hour)
	if removed != 1 {
		t.Errorf("removed = %d, want 1", removed)
	}
	if manager.Count() != 1 {
		t.Errorf("count = %d, want 1", manager.Count())
	}
	if _, err := manager.Get(fresh.ID); err != nil {
		t.Errorf("fresh session was removed: %v", err)
	}
}

func TestPersistenceRestoresProgression(t *testing.T) {
	store, err := progress.NewFilePersistence(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	// A previous run left progression behind.
	reg := progress.NewRegistry()
	reg.AddCoins(75)
	reg.SetDay(3)
	if err := store.Save("ab12", reg); err != nil {
		t.Fatal(err)
	}

	manager := NewManagerWithPersistence(store)
	sess, err := manager.Create("ab12", engine.DefaultYardConfig())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if sess.Registry.Coins() != 75 || sess.Registry.Day() != 3 {
		t.Errorf("restored coins=%d day=%d, want 75/3",
			sess.Registry.Coins(), sess.Registry.Day())
	}
}

func TestPersistenceSaveAndDelete(t *testing.T) {
	store, err := progress.NewFilePersistence(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	manager := NewManagerWithPersistence(store)

	sess, err := manager.Create("cd34", engine.DefaultYardConfig())
	if err != nil {
		t.Fatal(err)
	}
	if !store.Exists("cd34") {
		t.Fatal("progression not written at creation")
	}

	sess.Registry.AddCoins(40)
	if err := manager.Save(sess.ID); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := store.Load("cd34")
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Coins() != 40 {
		t.Errorf("persisted coins = %d, want 40", loaded.Coins())
	}

	if err := manager.Delete(sess.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if store.Exists("cd34") {
		t.Error("persisted progression survived delete")
	}
}
