// Package schedule maintains the no-overlap invariant over a caller-held
// day-to-blocks mapping. Mutations either fully apply or fully reject with a
// typed reason; partial application is never observable.
package schedule

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/julianstephens/levos/internal/autoblock"
	"github.com/julianstephens/levos/internal/catalog"
	"github.com/julianstephens/levos/internal/models"
	"github.com/julianstephens/levos/internal/timegrid"
)

// AnchorCutoff is the latest grid hour an operation block may start at.
// Anything later would push the generated dependents past reasonable hours.
const AnchorCutoff = 21.0

// Store applies the five schedule mutations. It holds only the catalog
// reference; all schedule state lives in the mapping passed to each call.
type Store struct {
	catalog *catalog.Catalog
}

func NewStore(c *catalog.Catalog) *Store {
	return &Store{catalog: c}
}

// HasCollision reports whether a candidate interval overlaps any block in
// the schedule, ignoring blocks whose id is in excludeIDs. Intervals are
// half-open: [start, start+duration/60).
func HasCollision(blocks []models.ScheduleBlock, start float64, durationMinutes int, excludeIDs ...string) bool {
	end := start + float64(durationMinutes)/60
	excluded := make(map[string]bool, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = true
	}
	for _, b := range blocks {
		if excluded[b.ID] {
			continue
		}
		if start < b.EndHour() && end > b.StartHour {
			return true
		}
	}
	return false
}

// Place adds a new block of the given kind at startHour. The start is
// snapped to the half-hour grid. For anchor kinds the generated dependent
// blocks are appended alongside, stamped with the anchor's id.
func (s *Store) Place(days models.Days, dateKey, blockKind string, startHour float64) (models.ScheduleBlock, error) {
	def, ok := s.catalog.Block(blockKind)
	if !ok {
		return models.ScheduleBlock{}, reject("place", ReasonUnknownBlockKind)
	}

	hour := timegrid.RoundToHalfHour(startHour)
	if !timegrid.InBounds(hour) {
		return models.ScheduleBlock{}, reject("place", ReasonOutOfBounds)
	}

	anchor := s.catalog.IsOperation(blockKind)
	if anchor && hour >= AnchorCutoff {
		return models.ScheduleBlock{}, reject("place", ReasonTooLateForAnchor)
	}

	blocks := days[dateKey]
	if HasCollision(blocks, hour, def.Duration) {
		return models.ScheduleBlock{}, reject("place", ReasonCollision)
	}

	placed := models.ScheduleBlock{
		ID:        fmt.Sprintf("%s-%s", blockKind, uuid.NewString()),
		BlockID:   blockKind,
		StartHour: hour,
		Duration:  def.Duration,
	}

	next := append(append([]models.ScheduleBlock{}, blocks...), placed)
	if anchor {
		next = append(next, autoblock.ForAnchor(placed)...)
	}

	days[dateKey] = sorted(next)
	return placed, nil
}

// Move relocates a block, possibly across days. Anchors drop their
// dependents from the source day and regenerate them at the destination.
func (s *Store) Move(days models.Days, fromDay, blockID, toDay string, newStart float64) error {
	from := days[fromDay]
	_, block, ok := models.Find(from, blockID)
	if !ok {
		return reject("move", ReasonBlockNotFound)
	}

	hour := timegrid.RoundToHalfHour(newStart)
	anchor := s.catalog.IsOperation(block.BlockID)
	if anchor && hour >= AnchorCutoff {
		return reject("move", ReasonTooLateForAnchor)
	}

	exclude := []string{blockID}
	if anchor {
		exclude = append(exclude, ownedAutoIDs(from, blockID)...)
	}

	sameDay := fromDay == toDay
	var target []models.ScheduleBlock
	if sameDay {
		target = without(from, exclude)
	} else {
		target = days[toDay]
	}
	if HasCollision(target, hour, block.Duration) {
		return reject("move", ReasonCollision)
	}

	newFrom := without(from, []string{blockID})
	if anchor {
		newFrom = without(newFrom, ownedAutoIDs(newFrom, blockID))
	}

	moved := block
	moved.StartHour = hour

	var newTo []models.ScheduleBlock
	if sameDay {
		newTo = newFrom
	} else {
		newTo = append([]models.ScheduleBlock{}, days[toDay]...)
	}
	newTo = append(newTo, moved)
	if anchor {
		newTo = append(newTo, autoblock.ForAnchor(moved)...)
	}

	if !sameDay {
		days[fromDay] = sorted(newFrom)
	}
	days[toDay] = sorted(newTo)
	return nil
}

// Shift moves a block within its day by deltaHours (typically ±0.5).
func (s *Store) Shift(days models.Days, dateKey, blockID string, deltaHours float64) error {
	blocks := days[dateKey]
	_, block, ok := models.Find(blocks, blockID)
	if !ok {
		return reject("shift", ReasonBlockNotFound)
	}

	newHour := block.StartHour + deltaHours
	if !timegrid.InBounds(newHour) {
		return reject("shift", ReasonOutOfBounds)
	}

	anchor := s.catalog.IsOperation(block.BlockID)
	if anchor && newHour >= AnchorCutoff {
		return reject("shift", ReasonTooLateForAnchor)
	}

	exclude := []string{blockID}
	if anchor {
		exclude = append(exclude, ownedAutoIDs(blocks, blockID)...)
	}
	if HasCollision(blocks, newHour, block.Duration, exclude...) {
		return reject("shift", ReasonCollision)
	}

	next := make([]models.ScheduleBlock, 0, len(blocks))
	var moved models.ScheduleBlock
	for _, b := range blocks {
		if b.ID == blockID {
			b.StartHour = newHour
			moved = b
		}
		next = append(next, b)
	}
	if anchor {
		next = without(next, ownedAutoIDs(next, blockID))
		next = append(next, autoblock.ForAnchor(moved)...)
	}

	days[dateKey] = sorted(next)
	return nil
}

// Resize changes a block's duration by deltaMinutes, within the catalog's
// bounds for its kind. Anchors regenerate dependents for the new duration.
func (s *Store) Resize(days models.Days, dateKey, blockID string, deltaMinutes int) error {
	blocks := days[dateKey]
	_, block, ok := models.Find(blocks, blockID)
	if !ok {
		return reject("resize", ReasonBlockNotFound)
	}

	def, ok := s.catalog.Block(block.BlockID)
	if !ok {
		return reject("resize", ReasonUnknownBlockKind)
	}

	newDuration := block.Duration + deltaMinutes
	if newDuration < def.MinDur || newDuration > def.MaxDur {
		return reject("resize", ReasonDurationOutOfRange)
	}

	anchor := s.catalog.IsOperation(block.BlockID)
	exclude := []string{blockID}
	if anchor {
		exclude = append(exclude, ownedAutoIDs(blocks, blockID)...)
	}
	if HasCollision(blocks, block.StartHour, newDuration, exclude...) {
		return reject("resize", ReasonCollision)
	}

	next := make([]models.ScheduleBlock, 0, len(blocks))
	var resized models.ScheduleBlock
	for _, b := range blocks {
		if b.ID == blockID {
			b.Duration = newDuration
			resized = b
		}
		next = append(next, b)
	}
	if anchor {
		next = without(next, ownedAutoIDs(next, blockID))
		next = append(next, autoblock.ForAnchor(resized)...)
	}

	days[dateKey] = sorted(next)
	return nil
}

// Remove deletes a block. Removing an anchor also deletes its dependents;
// they are meaningless without it.
func (s *Store) Remove(days models.Days, dateKey, blockID string) error {
	blocks := days[dateKey]
	_, block, ok := models.Find(blocks, blockID)
	if !ok {
		return reject("remove", ReasonBlockNotFound)
	}

	next := without(blocks, []string{blockID})
	if s.catalog.IsOperation(block.BlockID) {
		next = without(next, ownedAutoIDs(next, blockID))
	}

	days[dateKey] = next
	return nil
}

// ownedAutoIDs returns the ids of auto blocks owned by the given anchor.
// Auto blocks persisted without an anchor reference are treated as owned,
// which reproduces the historical whole-day sweep for legacy data.
func ownedAutoIDs(blocks []models.ScheduleBlock, anchorID string) []string {
	var ids []string
	for _, b := range blocks {
		if b.Auto && (b.AnchorID == anchorID || b.AnchorID == "") {
			ids = append(ids, b.ID)
		}
	}
	return ids
}

func without(blocks []models.ScheduleBlock, ids []string) []models.ScheduleBlock {
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	out := make([]models.ScheduleBlock, 0, len(blocks))
	for _, b := range blocks {
		if !drop[b.ID] {
			out = append(out, b)
		}
	}
	return out
}

func sorted(blocks []models.ScheduleBlock) []models.ScheduleBlock {
	sort.SliceStable(blocks, func(i, j int) bool {
		return blocks[i].StartHour < blocks[j].StartHour
	})
	return blocks
}
