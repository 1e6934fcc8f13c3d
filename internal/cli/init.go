package cli

import (
	"fmt"
	"os"
)

type InitCmd struct {
	Force bool `help:"Reinitialize even if storage already exists." default:"false"`
}

func (c *InitCmd) Run(ctx *Context) error {
	if c.Force {
		if err := os.Remove(ctx.Store.GetConfigPath()); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove existing storage: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}

	fmt.Printf("Initialized levos storage at: %s\n", ctx.Store.GetConfigPath())
	return nil
}
