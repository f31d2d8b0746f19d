package progress

import (
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-timewaster/internal/state"
	"github.com/vovakirdan/tui-timewaster/internal/storage"
)

func sampleState() state.State {
	s := state.Default(epoch.Add(-48 * time.Hour))
	s.CurrentLevel = 4
	s.UnlockedLevels = 5
	s.CompletedLevels = []int{1, 2, 3, 3}
	s.Badges = []string{"slider_enthusiast", "first_level"}
	s.TotalTimeWasted = 321
	s.TotalClicks = 150
	s.TotalSpacebars = 12
	s.SessionStartTime = epoch
	s.LastActiveTime = epoch.Add(time.Minute)
	return s
}

func sameProgress(t *testing.T, got, want state.State) {
	t.Helper()
	if got.CurrentLevel != want.CurrentLevel ||
		got.UnlockedLevels != want.UnlockedLevels ||
		!slices.Equal(got.CompletedLevels, want.CompletedLevels) ||
		!slices.Equal(got.Badges, want.Badges) ||
		got.TotalTimeWasted != want.TotalTimeWasted ||
		got.TotalClicks != want.TotalClicks ||
		got.TotalSpacebars != want.TotalSpacebars ||
		!got.GameStartTime.Equal(want.GameStartTime) {
		t.Errorf("Progress mismatch:\n got  %+v\n want %+v", got, want)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	want := sampleState()

	blob, err := Encode(want)
	if err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}
	got, err := Decode(blob)
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}

	sameProgress(t, got, want)
	if !got.LastActiveTime.Equal(want.LastActiveTime) || !got.SessionStartTime.Equal(want.SessionStartTime) {
		t.Error("Decode should keep stored timestamps; only Load re-stamps them")
	}
}

func TestDecodeDropsRepeatedBadges(t *testing.T) {
	blob := []byte(`{"unlockedLevels":2,"completedLevels":[1],` +
		`"badges":["first_level","five_minutes_gone","first_level","first_level"]}`)

	got, err := Decode(blob)
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}
	want := []string{"first_level", "five_minutes_gone"}
	if !slices.Equal(got.Badges, want) {
		t.Errorf("Badges = %v, want %v", got.Badges, want)
	}
}

func TestEncodeUsesOriginalKeys(t *testing.T) {
	blob, err := Encode(state.Default(epoch))
	if err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}
	for _, key := range []string{
		`"unlockedLevels":1`, `"completedLevels":[]`, `"badges":[]`,
		`"totalTimeWasted":0`, `"totalClicks":0`, `"totalSpacebars":0`,
		`"sessionStartTime":`, `"lastActiveTime":`, `"gameStartTime":`,
	} {
		if !strings.Contains(string(blob), key) {
			t.Errorf("Encoded blob %s is missing %s", blob, key)
		}
	}
}

func TestDecodeRejectsMalformed(t *testing.T) {
	tests := []string{
		``,
		`not json`,
		`[1,2,3]`,
		`{"unlockedLevels":0}`,
		`{"unlockedLevels":1,"totalClicks":-5}`,
		`{"unlockedLevels":"two"}`,
	}
	for _, blob := range tests {
		if _, err := Decode([]byte(blob)); err == nil {
			t.Errorf("Decode(%q) should fail", blob)
		}
	}
}

func TestGatewayLoadRestampsSession(t *testing.T) {
	store := newMemStore()
	gw := NewGateway(store, "p", "s", quietLogger())
	gw.Save(sampleState())

	now := epoch.Add(24 * time.Hour)
	got := gw.Load(now)

	sameProgress(t, got, sampleState())
	if !got.SessionStartTime.Equal(now) || !got.LastActiveTime.Equal(now) {
		t.Errorf("Load should re-stamp session times to now, got %v / %v", got.SessionStartTime, got.LastActiveTime)
	}
}

func TestGatewayFallsBackToDefaults(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*memStore)
	}{
		{"missing", func(*memStore) {}},
		{"malformed", func(m *memStore) { m.blobs["p"] = []byte("{{{") }},
		{"io error", func(m *memStore) { m.failGet = true }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemStore()
			tt.setup(store)
			gw := NewGateway(store, "p", "s", quietLogger())

			got := gw.Load(epoch)
			sameProgress(t, got, state.Default(epoch))
		})
	}
}

func TestGatewayWithoutStore(t *testing.T) {
	gw := NewGateway(nil, "", "", quietLogger())
	if gw.Name() != DefaultSaveName {
		t.Errorf("Expected default save name, got %q", gw.Name())
	}
	gw.Save(sampleState())
	gw.RecordBadges([]string{"first_level"})
	sameProgress(t, gw.Load(epoch), state.Default(epoch))
}

func TestGatewayWithSQLite(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "saves.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	gw := NewGateway(store, "player:alice", "session-1", quietLogger())
	gw.Save(sampleState())
	gw.RecordBadges([]string{"first_level"})

	sameProgress(t, gw.Load(epoch), sampleState())

	history, err := store.BadgeHistory("player:alice")
	if err != nil {
		t.Fatalf("BadgeHistory() failed: %v", err)
	}
	if len(history) != 1 || history[0].SessionID != "session-1" {
		t.Errorf("Unexpected badge history: %+v", history)
	}
}
