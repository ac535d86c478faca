package cli

import (
	"strings"

	"github.com/sghaida/patterns/furniture"
	"github.com/spf13/cobra"
)

func newFurnitureCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "furniture [style...]",
		Short: "Furnish a room from one product family",
		Long: `furniture uses the abstract factory of each style to build a chair,
a sofa and a table from the same family. With no styles, every style is used.`,
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				for _, s := range furniture.Styles() {
					args = append(args, string(s))
				}
			}

			for i, tag := range args {
				f, err := furniture.ForStyle(tag)
				if err != nil {
					return err
				}
				set := furniture.Furnish(f)

				if i > 0 {
					a.printer.Blank()
				}
				a.printer.Title("%s furniture:", titleCase(string(set.Style)))
				for _, line := range set.Lines() {
					a.printer.Line(line)
				}
			}
			return nil
		},
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
