package cli

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/levos/internal/catalog"
	"github.com/julianstephens/levos/internal/config"
	"github.com/julianstephens/levos/internal/constants"
	"github.com/julianstephens/levos/internal/scenario"
	"github.com/julianstephens/levos/internal/schedule"
	"github.com/julianstephens/levos/internal/storage"
)

func setupTestContext(t *testing.T) *Context {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	store := storage.NewSQLiteStore(dbPath)
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})

	if err := store.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	cat := catalog.Default()
	return &Context{
		Store:    store,
		Catalog:  cat,
		Engine:   schedule.NewStore(cat),
		Expander: scenario.NewExpander(cat),
		Config:   config.Default(),
	}
}

func TestResolveDate(t *testing.T) {
	today := time.Now().Format(constants.DateFormat)

	for _, tc := range []struct {
		in, want string
		wantErr  bool
	}{
		{"", today, false},
		{"today", today, false},
		{"2026-03-15", "2026-03-15", false},
		{"15/03/2026", "", true},
		{"tomorrow", "", true},
	} {
		got, err := ResolveDate(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ResolveDate(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ResolveDate(%q): %v", tc.in, err)
		} else if got != tc.want {
			t.Errorf("ResolveDate(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestPlaceCmdPersistsBlockAndDependents(t *testing.T) {
	ctx := setupTestContext(t)

	cmd := &PlaceCmd{Block: "OP_1", Start: 8.5, Date: "2026-03-16"}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("place failed: %v", err)
	}

	blocks, err := ctx.Store.GetDay("2026-03-16")
	if err != nil {
		t.Fatal(err)
	}
	if len(blocks) != 4 {
		t.Fatalf("expected anchor plus 3 dependents, got %d blocks", len(blocks))
	}
	if blocks[0].BlockID != "ROAD" {
		t.Errorf("expected leading ROAD, got %s", blocks[0].BlockID)
	}
}

func TestPlaceCmdRejectionLeavesDayEmpty(t *testing.T) {
	ctx := setupTestContext(t)

	cmd := &PlaceCmd{Block: "OP_1", Start: 22.0, Date: "2026-03-16"}
	if err := cmd.Run(ctx); err == nil {
		t.Fatal("expected rejection for a late anchor")
	}

	blocks, err := ctx.Store.GetDay("2026-03-16")
	if err != nil {
		t.Fatal(err)
	}
	if len(blocks) != 0 {
		t.Errorf("rejected place should not persist, got %d blocks", len(blocks))
	}
}

func TestRemoveCmdDropsDependents(t *testing.T) {
	ctx := setupTestContext(t)

	place := &PlaceCmd{Block: "OP_1", Start: 8.5, Date: "2026-03-16"}
	if err := place.Run(ctx); err != nil {
		t.Fatalf("place failed: %v", err)
	}
	blocks, _ := ctx.Store.GetDay("2026-03-16")
	var anchorID string
	for _, b := range blocks {
		if b.BlockID == "OP_1" {
			anchorID = b.ID
		}
	}
	if anchorID == "" {
		t.Fatal("anchor not found")
	}

	remove := &RemoveCmd{ID: anchorID, Date: "2026-03-16"}
	if err := remove.Run(ctx); err != nil {
		t.Fatalf("remove failed: %v", err)
	}

	blocks, _ = ctx.Store.GetDay("2026-03-16")
	if len(blocks) != 0 {
		t.Errorf("expected empty day after anchor removal, got %d blocks", len(blocks))
	}
}

func TestApplyCmdTagsScenario(t *testing.T) {
	ctx := setupTestContext(t)

	cmd := &ApplyCmd{Scenario: "w", Ops: 1, Date: "2026-03-21", Force: true}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	blocks, err := ctx.Store.GetDay("2026-03-21")
	if err != nil {
		t.Fatal(err)
	}
	if len(blocks) != 5 {
		t.Errorf("expected 5 weekend blocks, got %d", len(blocks))
	}

	tag, err := ctx.Store.GetDayScenario("2026-03-21")
	if err != nil {
		t.Fatal(err)
	}
	if tag != "w" {
		t.Errorf("scenario tag = %q, want w", tag)
	}
}

func TestApplyCmdUnknownScenario(t *testing.T) {
	ctx := setupTestContext(t)

	cmd := &ApplyCmd{Scenario: "zz", Ops: 1, Date: "2026-03-21", Force: true}
	if err := cmd.Run(ctx); err == nil {
		t.Error("expected error for unknown scenario key")
	}
}
