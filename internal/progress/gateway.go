package progress

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-timewaster/internal/state"
	"github.com/vovakirdan/tui-timewaster/internal/storage"
)

// DefaultSaveName is the blob name used for the local player.
const DefaultSaveName = "ultimate-time-waster-state"

// BlobStore is the durable key/value surface a Gateway writes through.
// *storage.Store implements it.
type BlobStore interface {
	LoadSave(name string) ([]byte, error)
	PutSave(name string, blob []byte) error
	RecordBadge(saveName, sessionID, badgeID string) (int64, error)
}

var _ BlobStore = (*storage.Store)(nil)

// record is the persisted layout. Timestamps are Unix milliseconds.
type record struct {
	CurrentLevel     int      `json:"currentLevel"`
	UnlockedLevels   int      `json:"unlockedLevels"`
	CompletedLevels  []int    `json:"completedLevels"`
	Badges           []string `json:"badges"`
	TotalTimeWasted  int64    `json:"totalTimeWasted"`
	TotalClicks      int      `json:"totalClicks"`
	TotalSpacebars   int      `json:"totalSpacebars"`
	GameStartTime    int64    `json:"gameStartTime"`
	LastActiveTime   int64    `json:"lastActiveTime"`
	SessionStartTime int64    `json:"sessionStartTime"`
}

// Encode serializes s into the save blob format.
func Encode(s state.State) ([]byte, error) {
	s = s.Clone()
	return json.Marshal(record{
		CurrentLevel:     s.CurrentLevel,
		UnlockedLevels:   s.UnlockedLevels,
		CompletedLevels:  s.CompletedLevels,
		Badges:           s.Badges,
		TotalTimeWasted:  s.TotalTimeWasted,
		TotalClicks:      s.TotalClicks,
		TotalSpacebars:   s.TotalSpacebars,
		GameStartTime:    s.GameStartTime.UnixMilli(),
		LastActiveTime:   s.LastActiveTime.UnixMilli(),
		SessionStartTime: s.SessionStartTime.UnixMilli(),
	})
}

var errMalformed = errors.New("progress: malformed save")

// Decode parses a save blob. Anything that is not a JSON object with sane
// counters is rejected as malformed.
func Decode(blob []byte) (state.State, error) {
	var r record
	if err := json.Unmarshal(blob, &r); err != nil {
		return state.State{}, errors.Join(errMalformed, err)
	}
	if r.UnlockedLevels < 1 || r.TotalTimeWasted < 0 || r.TotalClicks < 0 || r.TotalSpacebars < 0 {
		return state.State{}, errMalformed
	}
	if r.CurrentLevel < 1 {
		r.CurrentLevel = 1
	}

	s := state.State{
		CurrentLevel:     r.CurrentLevel,
		UnlockedLevels:   r.UnlockedLevels,
		CompletedLevels:  r.CompletedLevels,
		TotalTimeWasted:  r.TotalTimeWasted,
		TotalClicks:      r.TotalClicks,
		TotalSpacebars:   r.TotalSpacebars,
		GameStartTime:    time.UnixMilli(r.GameStartTime),
		LastActiveTime:   time.UnixMilli(r.LastActiveTime),
		SessionStartTime: time.UnixMilli(r.SessionStartTime),
	}
	// Badges are unique even if the blob repeats them
	return s.WithBadges(r.Badges...), nil
}

// Gateway loads and saves one player's progress, best effort.
// Errors are logged and swallowed; callers never see them.
type Gateway struct {
	store     BlobStore
	name      string
	sessionID string
	logger    *log.Logger
}

// NewGateway creates a gateway writing under name. store may be nil,
// in which case progress lives only in memory.
func NewGateway(store BlobStore, name, sessionID string, logger *log.Logger) *Gateway {
	if name == "" {
		name = DefaultSaveName
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Gateway{
		store:     store,
		name:      name,
		sessionID: sessionID,
		logger:    logger,
	}
}

// Name returns the save name this gateway writes to.
func (g *Gateway) Name() string {
	return g.name
}

// Load returns the saved progress with a fresh session starting at now,
// or the default state if nothing usable is stored.
func (g *Gateway) Load(now time.Time) state.State {
	if g.store == nil {
		return state.Default(now)
	}

	blob, err := g.store.LoadSave(g.name)
	if errors.Is(err, storage.ErrNoSave) {
		return state.Default(now)
	}
	if err != nil {
		g.logger.Warn("could not load progress", "save", g.name, "error", err)
		return state.Default(now)
	}

	s, err := Decode(blob)
	if err != nil {
		g.logger.Warn("discarding unreadable save", "save", g.name, "error", err)
		return state.Default(now)
	}

	s.SessionStartTime = now
	s.LastActiveTime = now
	if s.GameStartTime.UnixMilli() == 0 {
		s.GameStartTime = now
	}
	return s
}

// Save writes s. Failures are logged and otherwise ignored.
func (g *Gateway) Save(s state.State) {
	if g.store == nil {
		return
	}

	blob, err := Encode(s)
	if err != nil {
		g.logger.Error("could not encode progress", "save", g.name, "error", err)
		return
	}
	if err := g.store.PutSave(g.name, blob); err != nil {
		g.logger.Warn("could not save progress", "save", g.name, "error", err)
	}
}

// RecordBadges appends newly earned badges to the unlock log, best effort.
func (g *Gateway) RecordBadges(ids []string) {
	if g.store == nil {
		return
	}
	for _, id := range ids {
		if _, err := g.store.RecordBadge(g.name, g.sessionID, id); err != nil {
			g.logger.Warn("could not record badge", "save", g.name, "badge", id, "error", err)
		}
	}
}
