// Package catalog holds the static block-kind, scenario and work-context
// registries. Catalogs are built once at startup and never mutated; engine
// components receive them by reference.
package catalog

import (
	"strings"

	"github.com/julianstephens/levos/internal/models"
)

// Catalog is the read-only lookup surface the engine consults for block
// kinds, scenarios and work contexts.
type Catalog struct {
	blocks    map[string]models.BlockDefinition
	scenarios map[string]models.Scenario
	contexts  map[string]models.WorkContext
}

// New builds a catalog from explicit registries. Entries are copied so later
// mutation of the input maps cannot leak into the catalog.
func New(blocks map[string]models.BlockDefinition, scenarios map[string]models.Scenario, contexts map[string]models.WorkContext) *Catalog {
	c := &Catalog{
		blocks:    make(map[string]models.BlockDefinition, len(blocks)),
		scenarios: make(map[string]models.Scenario, len(scenarios)),
		contexts:  make(map[string]models.WorkContext, len(contexts)),
	}
	for k, v := range blocks {
		c.blocks[k] = v
	}
	for k, v := range scenarios {
		c.scenarios[k] = v
	}
	for k, v := range contexts {
		c.contexts[k] = v
	}
	return c
}

// Default returns the catalog with the shipped block kinds, the five stock
// scenarios and the three work contexts.
func Default() *Catalog {
	return New(defaultBlocks(), defaultScenarios(), defaultContexts())
}

// Block looks up a block kind. Not-found is a normal outcome: callers are
// expected to skip unknown kinds rather than fail.
func (c *Catalog) Block(id string) (models.BlockDefinition, bool) {
	def, ok := c.blocks[id]
	return def, ok
}

// Blocks returns a copy of the block registry.
func (c *Catalog) Blocks() map[string]models.BlockDefinition {
	out := make(map[string]models.BlockDefinition, len(c.blocks))
	for k, v := range c.blocks {
		out[k] = v
	}
	return out
}

// Scenario looks up a scenario by its short code.
func (c *Catalog) Scenario(key string) (models.Scenario, bool) {
	s, ok := c.scenarios[key]
	return s, ok
}

// ScenarioKeys returns the registered scenario codes, weekday codes first.
func (c *Catalog) ScenarioKeys() []string {
	keys := make([]string, 0, len(c.scenarios))
	for _, k := range []string{"1", "2", "3", "4", "w"} {
		if _, ok := c.scenarios[k]; ok {
			keys = append(keys, k)
		}
	}
	for k := range c.scenarios {
		if _, known := map[string]bool{"1": true, "2": true, "3": true, "4": true, "w": true}[k]; !known {
			keys = append(keys, k)
		}
	}
	return keys
}

// Context looks up a work context by key.
func (c *Catalog) Context(key string) (models.WorkContext, bool) {
	ctx, ok := c.contexts[key]
	return ctx, ok
}

// ContextKeys returns the registered work-context keys.
func (c *Catalog) ContextKeys() []string {
	keys := make([]string, 0, len(c.contexts))
	for k := range c.contexts {
		keys = append(keys, k)
	}
	return keys
}

// IsOperation reports whether a block kind is an anchor (operation) kind.
// Unknown kinds fall back to the OP_ naming convention so that blocks whose
// custom definitions have been deleted still carry their dependents.
func (c *Catalog) IsOperation(blockID string) bool {
	if def, ok := c.blocks[blockID]; ok {
		return def.Category == models.CategoryOperation
	}
	return strings.HasPrefix(blockID, "OP_")
}
