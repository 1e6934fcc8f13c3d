package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/levos/internal/scenario"
)

type ApplyCmd struct {
	Scenario string `arg:"" help:"Scenario key (1-4 or w). Prompts when omitted." optional:""`
	Ops      int    `help:"Number of operations already done today before this one." default:"1"`
	Context  string `help:"Work context key for home/evening work blocks."`
	Date     string `help:"Target date (YYYY-MM-DD or 'today')." default:"today"`
	Force    bool   `help:"Replace an existing schedule without asking." default:"false"`
}

func (c *ApplyCmd) Run(ctx *Context) error {
	date, err := ResolveDate(c.Date)
	if err != nil {
		return err
	}

	if c.Scenario == "" {
		if err := c.prompt(ctx); err != nil {
			return err
		}
	}
	if _, ok := ctx.Catalog.Scenario(c.Scenario); !ok {
		return fmt.Errorf("unknown scenario %q (known: %v)", c.Scenario, ctx.Catalog.ScenarioKeys())
	}
	if c.Context != "" {
		if _, ok := ctx.Catalog.Context(c.Context); !ok {
			return fmt.Errorf("unknown work context %q (known: %v)", c.Context, ctx.Catalog.ContextKeys())
		}
	}

	existing, err := ctx.Store.GetDay(date)
	if err != nil {
		return fmt.Errorf("failed to load day %s: %w", date, err)
	}
	if len(existing) > 0 && !c.Force {
		var replace bool
		form := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("%s already has %d blocks. Replace them?", date, len(existing))).
				Value(&replace),
		))
		if err := form.Run(); err != nil {
			return fmt.Errorf("interactive form error: %w", err)
		}
		if !replace {
			fmt.Println("Apply cancelled.")
			return nil
		}
	}

	blocks := ctx.Expander.Apply(c.Scenario, c.Ops, c.Context)
	if err := ctx.Store.SaveDay(date, blocks); err != nil {
		return fmt.Errorf("failed to save day %s: %w", date, err)
	}
	if err := ctx.Store.SetDayScenario(date, c.Scenario); err != nil {
		return fmt.Errorf("failed to tag scenario: %w", err)
	}

	fmt.Printf("Applied scenario %s to %s\n", c.Scenario, date)
	ctx.PrintDay(date, blocks)
	return nil
}

// prompt collects the scenario, operation count and context interactively.
func (c *ApplyCmd) prompt(ctx *Context) error {
	var scenarioOpts []huh.Option[string]
	for _, key := range ctx.Catalog.ScenarioKeys() {
		sc, _ := ctx.Catalog.Scenario(key)
		scenarioOpts = append(scenarioOpts, huh.NewOption(fmt.Sprintf("%s - %s", key, sc.Name), key))
	}

	contextOpts := []huh.Option[string]{huh.NewOption("none", "")}
	for _, key := range ctx.Catalog.ContextKeys() {
		wc, _ := ctx.Catalog.Context(key)
		contextOpts = append(contextOpts, huh.NewOption(fmt.Sprintf("%s %s", wc.Emoji, wc.Name), key))
	}

	ops := strconv.Itoa(c.Ops)
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Scenario").
				Options(scenarioOpts...).
				Value(&c.Scenario),
			huh.NewSelect[string]().
				Title("Work context").
				Options(contextOpts...).
				Value(&c.Context),
			huh.NewInput().
				Title("Operation count").
				Value(&ops).
				Validate(func(s string) error {
					n, err := strconv.Atoi(s)
					if err != nil || n < 1 {
						return fmt.Errorf("enter a positive number")
					}
					return nil
				}),
		),
	)
	if err := form.Run(); err != nil {
		return fmt.Errorf("interactive form error: %w", err)
	}

	c.Ops, _ = strconv.Atoi(ops)
	return nil
}

type DetectCmd struct {
	Date string `arg:"" help:"Date to analyze (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *DetectCmd) Run(ctx *Context) error {
	date, err := ResolveDate(c.Date)
	if err != nil {
		return err
	}

	blocks, err := ctx.Store.GetDay(date)
	if err != nil {
		return fmt.Errorf("failed to load day %s: %w", date, err)
	}

	d := scenario.Detect(blocks)
	fmt.Printf("%s: scenario %s (%s confidence)\n", date, d.Scenario, d.Confidence)
	fmt.Printf("  %s\n", d.Reason)

	if tag, err := ctx.Store.GetDayScenario(date); err == nil && tag != "" && tag != d.Scenario {
		fmt.Printf("  stored tag disagrees: %s\n", tag)
	}
	return nil
}
