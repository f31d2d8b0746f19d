package levels

import (
	"errors"
	"testing"
	"time"
)

func TestCatalogShape(t *testing.T) {
	if Count() != TotalCount {
		t.Fatalf("Expected %d levels, got %d", TotalCount, Count())
	}

	for i, lvl := range All() {
		if lvl.ID != i+1 {
			t.Errorf("Level at index %d has id %d, want %d", i, lvl.ID, i+1)
		}
		playable := lvl.ID <= PlayableCount
		if lvl.Playable() != playable {
			t.Errorf("Level %d: Playable() = %v, want %v", lvl.ID, lvl.Playable(), playable)
		}
	}
}

func TestGeneratedParameters(t *testing.T) {
	tests := []struct {
		id            int
		kind          Kind
		target        int
		duration      time.Duration
		sliderRepeats int
	}{
		{id: 11, kind: KindClick, target: 160},
		{id: 12, kind: KindWait, duration: 27 * time.Second},
		{id: 13, kind: KindSlider, sliderRepeats: 11},
		{id: 14, kind: KindPixel},
		{id: 15, kind: KindSpacebar, target: 400},
		{id: 16, kind: KindClick, target: 210},
		{id: 48, kind: KindSlider, sliderRepeats: 29},
		{id: 50, kind: KindSpacebar, target: 1100},
	}

	for _, tt := range tests {
		lvl, ok := Get(tt.id)
		if !ok {
			t.Fatalf("Get(%d) not found", tt.id)
		}
		if lvl.Kind != tt.kind {
			t.Errorf("Level %d: kind = %v, want %v", tt.id, lvl.Kind, tt.kind)
		}
		if lvl.Target != tt.target {
			t.Errorf("Level %d: target = %d, want %d", tt.id, lvl.Target, tt.target)
		}
		if lvl.Duration != tt.duration {
			t.Errorf("Level %d: duration = %v, want %v", tt.id, lvl.Duration, tt.duration)
		}
		if lvl.SliderRepeats != tt.sliderRepeats {
			t.Errorf("Level %d: slider repeats = %d, want %d", tt.id, lvl.SliderRepeats, tt.sliderRepeats)
		}
	}
}

func TestHandmadeLevels(t *testing.T) {
	lvl, _ := Get(1)
	if lvl.Kind != KindClick || lvl.Target != 100 {
		t.Errorf("Level 1 should be a 100 click level, got %v/%d", lvl.Kind, lvl.Target)
	}
	lvl, _ = Get(7)
	if lvl.Kind != KindWait || lvl.Duration != 45*time.Second {
		t.Errorf("Level 7 should be a 45s wait level, got %v/%v", lvl.Kind, lvl.Duration)
	}
	lvl, _ = Get(3)
	if lvl.Kind != KindSlider || lvl.SliderRepeats != 10 {
		t.Errorf("Level 3 should be a 10 repeat slider, got %v/%d", lvl.Kind, lvl.SliderRepeats)
	}
}

func TestPlaceholders(t *testing.T) {
	for id := PlayableCount + 1; id <= TotalCount; id++ {
		lvl, ok := Get(id)
		if !ok {
			t.Fatalf("Get(%d) not found", id)
		}
		if lvl.Kind != KindPlaceholder {
			t.Errorf("Level %d should be a placeholder, got %v", id, lvl.Kind)
		}
		if lvl.Target != 0 || lvl.Duration != 0 || lvl.SliderRepeats != 0 {
			t.Errorf("Placeholder %d should have no parameters", id)
		}
	}
}

func TestGetOutOfRange(t *testing.T) {
	for _, id := range []int{-1, 0, TotalCount + 1} {
		if _, ok := Get(id); ok {
			t.Errorf("Get(%d) should not find a level", id)
		}
	}
}

func TestCheckPlayable(t *testing.T) {
	if err := CheckPlayable(1); err != nil {
		t.Errorf("CheckPlayable(1) = %v, want nil", err)
	}
	if err := CheckPlayable(51); !errors.Is(err, ErrNotPlayable) {
		t.Errorf("CheckPlayable(51) = %v, want ErrNotPlayable", err)
	}
	if err := CheckPlayable(101); !errors.Is(err, ErrUnknownLevel) {
		t.Errorf("CheckPlayable(101) = %v, want ErrUnknownLevel", err)
	}
}

func TestAllReturnsCopy(t *testing.T) {
	all := All()
	all[0].Title = "changed"

	lvl, _ := Get(1)
	if lvl.Title == "changed" {
		t.Error("All() should not expose the catalog backing array")
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range []Kind{KindClick, KindWait, KindSlider, KindPixel, KindSpacebar, KindPlaceholder} {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if _, err := ParseKind("tetris"); err == nil {
		t.Error("ParseKind should reject unknown names")
	}
}
