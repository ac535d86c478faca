package cli

import (
	"log/slog"

	"github.com/sghaida/patterns/factory"
	"github.com/spf13/cobra"
)

func newFactoryCmd(a *app) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "factory [kind...]",
		Short: "Draw shapes picked by tag",
		Long: `factory asks a shape factory for each kind and draws it.
With no kinds, every kind the factory knows is drawn.

Factories: shape (simple factory, all kinds), edge (square, rectangle), round (circle).`,
		RunE: func(_ *cobra.Command, args []string) error {
			f, err := factory.Lookup(name)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				for _, k := range f.Kinds() {
					args = append(args, k.String())
				}
			}

			a.printer.Title("Factory: %s", f.Name())
			for _, tag := range args {
				shape, err := f.Shape(tag)
				if err != nil {
					a.logger.Warn("shape not produced",
						slog.String("factory", f.Name()),
						slog.String("tag", tag))
					return err
				}
				a.printer.Line(shape.Draw())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "factory", factory.ShapeFactoryName, "factory to use: shape, edge or round")
	return cmd
}
