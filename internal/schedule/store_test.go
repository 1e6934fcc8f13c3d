package schedule

import (
	"reflect"
	"testing"

	"github.com/julianstephens/levos/internal/catalog"
	"github.com/julianstephens/levos/internal/models"
)

func newStore() *Store {
	return NewStore(catalog.Default())
}

func snapshot(days models.Days, key string) []models.ScheduleBlock {
	return append([]models.ScheduleBlock{}, days[key]...)
}

func kinds(blocks []models.ScheduleBlock) []string {
	var out []string
	for _, b := range blocks {
		out = append(out, b.BlockID)
	}
	return out
}

func assertNoOverlap(t *testing.T, blocks []models.ScheduleBlock) {
	t.Helper()
	for i, a := range blocks {
		for j, b := range blocks {
			if i >= j {
				continue
			}
			if a.StartHour < b.EndHour() && a.EndHour() > b.StartHour {
				t.Errorf("overlap between %s@%v and %s@%v", a.BlockID, a.StartHour, b.BlockID, b.StartHour)
			}
		}
	}
}

func TestHasCollision(t *testing.T) {
	blocks := []models.ScheduleBlock{
		{ID: "a", BlockID: "FREE", StartHour: 10.0, Duration: 60},
	}

	if !HasCollision(blocks, 10.5, 60) {
		t.Error("expected collision with overlapping interval")
	}
	// Half-open intervals: back-to-back blocks do not collide.
	if HasCollision(blocks, 11.0, 60) {
		t.Error("adjacent intervals should not collide")
	}
	if HasCollision(blocks, 9.0, 60) {
		t.Error("interval ending at block start should not collide")
	}
	if HasCollision(blocks, 10.0, 30, "a") {
		t.Error("excluded block should be ignored")
	}
}

func TestPlaceAppendsAnchorDependents(t *testing.T) {
	s := newStore()
	days := models.Days{}

	placed, err := s.Place(days, "2025-01-06", "OP_1", 8.5)
	if err != nil {
		t.Fatalf("place failed: %v", err)
	}
	if placed.Duration != 180 || placed.Auto {
		t.Errorf("unexpected placed block: %+v", placed)
	}

	got := kinds(days["2025-01-06"])
	want := []string{"ROAD", "OP_1", "BUFFER", "FAM"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("day kinds = %v, want %v", got, want)
	}

	for _, b := range days["2025-01-06"] {
		if b.Auto && b.AnchorID != placed.ID {
			t.Errorf("auto block %s not owned by anchor", b.BlockID)
		}
	}
	assertNoOverlap(t, days["2025-01-06"])
}

func TestPlaceRejections(t *testing.T) {
	s := newStore()
	days := models.Days{
		"d": {{ID: "x", BlockID: "FREE", StartHour: 10.0, Duration: 60}},
	}
	before := snapshot(days, "d")

	cases := []struct {
		name string
		kind string
		hour float64
		want Reason
	}{
		{"unknown kind", "NOPE", 10.0, ReasonUnknownBlockKind},
		{"out of bounds low", "FREE", 5.0, ReasonOutOfBounds},
		{"out of bounds high", "FREE", 30.0, ReasonOutOfBounds},
		{"anchor too late", "OP_1", 21.0, ReasonTooLateForAnchor},
		{"collision", "FREE", 10.5, ReasonCollision},
	}

	for _, c := range cases {
		_, err := s.Place(days, "d", c.kind, c.hour)
		reason, ok := ReasonOf(err)
		if !ok || reason != c.want {
			t.Errorf("%s: got %v, want reason %s", c.name, err, c.want)
		}
		if !reflect.DeepEqual(days["d"], before) {
			t.Fatalf("%s: rejection mutated state", c.name)
		}
	}

	// 20.5 is the last allowed anchor start.
	if _, err := s.Place(days, "empty", "OP_1", 20.5); err != nil {
		t.Errorf("anchor at 20.5 should be accepted: %v", err)
	}
}

func TestMoveAnchorRegeneratesDependents(t *testing.T) {
	s := newStore()
	days := models.Days{}

	placed, err := s.Place(days, "d", "OP_1", 8.5)
	if err != nil {
		t.Fatalf("place failed: %v", err)
	}

	if err := s.Move(days, "d", placed.ID, "d", 10.0); err != nil {
		t.Fatalf("move failed: %v", err)
	}

	got := kinds(days["d"])
	want := []string{"ROAD", "OP_1", "BUFFER", "FAM"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("day kinds = %v, want %v", got, want)
	}

	_, op, _ := models.Find(days["d"], placed.ID)
	if op.StartHour != 10.0 {
		t.Errorf("anchor start = %v, want 10.0", op.StartHour)
	}
	for _, b := range days["d"] {
		if b.BlockID == "ROAD" && b.StartHour != 9.5 {
			t.Errorf("ROAD start = %v, want 9.5", b.StartHour)
		}
		if b.BlockID == "BUFFER" && b.StartHour != 13.0 {
			t.Errorf("BUFFER start = %v, want 13.0", b.StartHour)
		}
	}
	assertNoOverlap(t, days["d"])
}

func TestMoveAcrossDays(t *testing.T) {
	s := newStore()
	days := models.Days{}

	placed, _ := s.Place(days, "mon", "OP_1", 8.5)
	if err := s.Move(days, "mon", placed.ID, "tue", 9.0); err != nil {
		t.Fatalf("cross-day move failed: %v", err)
	}

	if len(days["mon"]) != 0 {
		t.Errorf("source day should be empty, got %v", kinds(days["mon"]))
	}
	got := kinds(days["tue"])
	want := []string{"ROAD", "OP_1", "BUFFER", "FAM"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("destination kinds = %v, want %v", got, want)
	}
}

func TestMoveRejectsCollisionUnchanged(t *testing.T) {
	s := newStore()
	days := models.Days{}

	s.Place(days, "d", "FREE", 10.0)
	placed, _ := s.Place(days, "d", "NAP", 12.0)
	before := snapshot(days, "d")

	err := s.Move(days, "d", placed.ID, "d", 10.0)
	if reason, _ := ReasonOf(err); reason != ReasonCollision {
		t.Fatalf("expected collision, got %v", err)
	}
	if !reflect.DeepEqual(days["d"], before) {
		t.Fatal("rejected move mutated state")
	}

	if err := s.Move(days, "d", "missing", "d", 10.0); err == nil {
		t.Error("moving a missing block should be rejected")
	}
}

func TestShiftBoundsAndCollision(t *testing.T) {
	s := newStore()
	days := models.Days{}

	placed, _ := s.Place(days, "d", "FREE", 6.0)
	if err := s.Shift(days, "d", placed.ID, -0.5); err == nil {
		t.Error("shift below 6.0 should be rejected")
	}
	if err := s.Shift(days, "d", placed.ID, 0.5); err != nil {
		t.Errorf("shift to 6.5 should succeed: %v", err)
	}

	late, _ := s.Place(days, "d", "FREE", 29.5)
	if err := s.Shift(days, "d", late.ID, 0.5); err == nil {
		t.Error("shift to 30.0 should be rejected")
	}

	other, _ := s.Place(days, "d", "NAP", 8.0)
	if err := s.Shift(days, "d", other.ID, -0.5); err != nil {
		t.Errorf("shift beside neighbour should succeed: %v", err)
	}
	if err := s.Shift(days, "d", other.ID, -0.5); err == nil {
		t.Error("shift into neighbour should be rejected")
	}
	assertNoOverlap(t, days["d"])
}

func TestResize(t *testing.T) {
	s := newStore()
	days := models.Days{}

	placed, _ := s.Place(days, "d", "FREE", 10.0) // 60 min, bounds 30..180
	if err := s.Resize(days, "d", placed.ID, -45); err == nil {
		t.Error("resize below minDur should be rejected")
	}
	if err := s.Resize(days, "d", placed.ID, 150); err == nil {
		t.Error("resize above maxDur should be rejected")
	}
	if err := s.Resize(days, "d", placed.ID, 30); err != nil {
		t.Fatalf("valid resize failed: %v", err)
	}
	_, b, _ := models.Find(days["d"], placed.ID)
	if b.Duration != 90 {
		t.Errorf("duration = %d, want 90", b.Duration)
	}
}

func TestResizeAnchorRegeneratesAtNewDuration(t *testing.T) {
	s := newStore()
	days := models.Days{}

	placed, _ := s.Place(days, "d", "OP_1", 8.5)
	if err := s.Resize(days, "d", placed.ID, 60); err != nil {
		t.Fatalf("resize failed: %v", err)
	}

	// Anchor now ends at 12.5: BUFFER follows at 12.5, FAM at 13.0.
	for _, b := range days["d"] {
		switch b.BlockID {
		case "BUFFER":
			if b.StartHour != 12.5 {
				t.Errorf("BUFFER start = %v, want 12.5", b.StartHour)
			}
		case "FAM":
			if b.StartHour != 13.0 {
				t.Errorf("FAM start = %v, want 13.0", b.StartHour)
			}
		}
	}
	assertNoOverlap(t, days["d"])
}

func TestRemoveAnchorRemovesDependents(t *testing.T) {
	s := newStore()
	days := models.Days{}

	keep, _ := s.Place(days, "d", "FREE", 18.0)
	placed, _ := s.Place(days, "d", "OP_1", 8.5)

	if err := s.Remove(days, "d", placed.ID); err != nil {
		t.Fatalf("remove failed: %v", err)
	}

	if len(days["d"]) != 1 || days["d"][0].ID != keep.ID {
		t.Errorf("expected only the FREE block to survive, got %v", kinds(days["d"]))
	}

	if err := s.Remove(days, "d", "missing"); err == nil {
		t.Error("removing a missing block should be rejected")
	}
}

func TestRemoveScopedToOwningAnchor(t *testing.T) {
	s := newStore()
	days := models.Days{}

	first, _ := s.Place(days, "d", "OP_1", 8.5)
	second, err := s.Place(days, "d", "OP_1", 15.0)
	if err != nil {
		t.Fatalf("second anchor placement failed: %v", err)
	}

	if err := s.Remove(days, "d", first.ID); err != nil {
		t.Fatalf("remove failed: %v", err)
	}

	// The second anchor and its dependents survive.
	var autos int
	for _, b := range days["d"] {
		if b.Auto {
			autos++
			if b.AnchorID != second.ID {
				t.Errorf("surviving auto block %s owned by %q, want %q", b.BlockID, b.AnchorID, second.ID)
			}
		}
	}
	if autos == 0 {
		t.Error("second anchor's dependents should survive")
	}
}

func TestRegenerationIdempotent(t *testing.T) {
	s := newStore()
	days := models.Days{}

	placed, _ := s.Place(days, "d", "OP_1", 8.5)
	firstTiming := map[string][2]float64{}
	for _, b := range days["d"] {
		if b.Auto {
			firstTiming[b.BlockID] = [2]float64{b.StartHour, float64(b.Duration)}
		}
	}

	s.Remove(days, "d", placed.ID)
	s.Place(days, "d", "OP_1", 8.5)

	for _, b := range days["d"] {
		if !b.Auto {
			continue
		}
		want, ok := firstTiming[b.BlockID]
		if !ok {
			t.Errorf("unexpected auto block %s after re-place", b.BlockID)
			continue
		}
		if b.StartHour != want[0] || float64(b.Duration) != want[1] {
			t.Errorf("%s timing = %v/%d, want %v/%v", b.BlockID, b.StartHour, b.Duration, want[0], want[1])
		}
	}
}

func TestLegacyAutoBlocksSweptWithAnchor(t *testing.T) {
	s := newStore()
	// Data persisted before anchor tracking: auto flag only.
	days := models.Days{
		"d": {
			{ID: "op", BlockID: "OP_1", StartHour: 8.5, Duration: 180},
			{ID: "road", BlockID: "ROAD", StartHour: 8.0, Duration: 25, Auto: true},
			{ID: "buf", BlockID: "BUFFER", StartHour: 11.5, Duration: 30, Auto: true},
		},
	}

	if err := s.Remove(days, "d", "op"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if len(days["d"]) != 0 {
		t.Errorf("legacy auto blocks should be swept, got %v", kinds(days["d"]))
	}
}
