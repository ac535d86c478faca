package cli

import (
	"fmt"
	"log/slog"

	"github.com/sghaida/patterns/lazy"
	"github.com/sghaida/patterns/structural/adapter"
	"github.com/sghaida/patterns/structural/composite"
	"github.com/sghaida/patterns/structural/decorator"
	"github.com/sghaida/patterns/structural/facade"
	"github.com/sghaida/patterns/structural/proxy"
	"github.com/spf13/cobra"
)

const groupStructural = "structural"

func newStructuralCmds(a *app) []*cobra.Command {
	return inGroup(groupStructural,
		&cobra.Command{
			Use:   "adapter",
			Short: "Serve a REST document through a SOAP interface",
			Args:  cobra.NoArgs,
			RunE: func(_ *cobra.Command, _ []string) error {
				a.printer.Title("Adapter:")
				return adapter.Process(a.printer.Writer(), adapter.NewRESTToSOAP(adapter.NewStaticClient()))
			},
		},
		&cobra.Command{
			Use:   "composite",
			Short: "Draw a tree of shapes through one interface",
			Args:  cobra.NoArgs,
			RunE: func(_ *cobra.Command, _ []string) error {
				inner := composite.NewGroup(composite.NewCircle("circle1"), composite.NewSquare("square1"))
				outer := composite.NewGroup(composite.NewCircle("circle2"), inner)

				a.printer.Title("Drawing composite2:")
				outer.Draw(a.printer.Writer())
				a.printer.Field("leaves", outer.Leaves())
				return nil
			},
		},
		newDecoratorCmd(a),
		&cobra.Command{
			Use:   "facade",
			Short: "Boot a computer through a single call",
			Args:  cobra.NoArgs,
			RunE: func(_ *cobra.Command, _ []string) error {
				a.printer.Title("Facade:")
				facade.NewComputer(a.printer.Writer()).Start()
				return nil
			},
		},
		newProxyCmd(a),
	)
}

func newDecoratorCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "decorator [addon...]",
		Short: "Price a coffee wrapped in addons",
		Long: fmt.Sprintf(`decorator wraps a simple coffee with each addon in order and prints the cost.
With no addons, the plain, milk and milk+sugar coffees are priced.

Addons: %v`, decorator.Addons()),
		RunE: func(_ *cobra.Command, args []string) error {
			orders := [][]string{nil, {"milk"}, {"milk", "sugar"}}
			if len(args) > 0 {
				orders = [][]string{args}
			}

			a.printer.Title("Decorator:")
			for _, tags := range orders {
				c, err := decorator.Decorate(decorator.Simple{}, tags...)
				if err != nil {
					return err
				}
				a.printer.Field(c.Description(), c.Cost())
			}
			return nil
		},
	}
}

func newProxyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "proxy [file...]",
		Short: "Load images lazily behind a proxy",
		Long: `proxy creates an image proxy per file and displays it twice; the file is
loaded on the first display only.`,
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"photo1.jpg", "photo2.png"}
			}

			a.printer.Title("Proxy:")
			for _, file := range args {
				img := proxy.New(a.printer.Writer(), file, lazy.WithLogger(a.logger))
				for i := 0; i < 2; i++ {
					if err := img.Display(); err != nil {
						return err
					}
				}
				a.logger.Debug("image displayed",
					slog.String("file", file),
					slog.Int64("loads", img.Loads()))
			}
			return nil
		},
	}
}

// inGroup assigns every command to the help group id.
func inGroup(id string, cmds ...*cobra.Command) []*cobra.Command {
	for _, c := range cmds {
		c.GroupID = id
	}
	return cmds
}
