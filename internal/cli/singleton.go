package cli

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/sghaida/patterns/singleton"
	"github.com/spf13/cobra"
)

func newSingletonCmd(a *app) *cobra.Command {
	var callers int

	cmd := &cobra.Command{
		Use:   "singleton",
		Short: "Race goroutines for the shared greeter",
		Long: `singleton starts --callers goroutines that all ask for the greeter at once
and reports how many distinct instances they received (always 1).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n := a.cfg.SingletonCallers
			if cmd.Flags().Changed("callers") {
				n = callers
			}
			if n < 1 {
				return fmt.Errorf("singleton: --callers must be > 0, got %d", n)
			}
			return a.runSingleton(n)
		},
	}
	cmd.Flags().IntVar(&callers, "callers", 0, "number of concurrent callers (default from config)")
	return cmd
}

func (a *app) runSingleton(n int) error {
	start := make(chan struct{})
	got := make([]*singleton.Greeter, n)
	errs := make([]error, n)

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			<-start
			got[i], errs[i] = a.greeter.Get()
		}(i)
	}
	close(start)
	wg.Wait()

	distinct := make(map[*singleton.Greeter]struct{}, 1)
	for i := 0; i < n; i++ {
		if errs[i] != nil {
			a.printer.Failure(errs[i].Error())
			return fmt.Errorf("singleton: %w", errs[i])
		}
		distinct[got[i]] = struct{}{}
	}

	g := got[0]
	a.logger.Debug("singleton resolved",
		slog.String("instance", g.ID().String()),
		slog.Int("callers", n),
		slog.Int64("attempts", a.greeter.Attempts()))

	a.printer.Title("Singleton")
	a.printer.Line(g.Message())
	a.printer.Field("instance", g.ID())
	a.printer.Field("callers", n)
	a.printer.Field("distinct instances", len(distinct))
	a.printer.Field("construction attempts", a.greeter.Attempts())
	return nil
}
