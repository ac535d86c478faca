package cli

import (
	"fmt"

	"github.com/sghaida/patterns/factory"
	"github.com/sghaida/patterns/furniture"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// catalog is the YAML document printed by `patterns catalog`.
type catalog struct {
	Singleton  singletonEntry      `yaml:"singleton"`
	Factories  map[string][]string `yaml:"factories"`
	Furniture  []string            `yaml:"furniture"`
	Structural []string            `yaml:"structural"`
	Behavioral []string            `yaml:"behavioral"`
}

type singletonEntry struct {
	Provider string `yaml:"provider"`
	Ready    bool   `yaml:"ready"`
}

func buildCatalog(a *app, root *cobra.Command) (catalog, error) {
	c := catalog{
		Singleton: singletonEntry{Provider: a.greeter.Name(), Ready: a.greeter.Ready()},
		Factories: map[string][]string{},
	}
	for _, name := range factory.Names() {
		f, err := factory.Lookup(name)
		if err != nil {
			return catalog{}, err
		}
		kinds := make([]string, 0, len(f.Kinds()))
		for _, k := range f.Kinds() {
			kinds = append(kinds, k.String())
		}
		c.Factories[name] = kinds
	}
	for _, s := range furniture.Styles() {
		c.Furniture = append(c.Furniture, string(s))
	}
	for _, cmd := range root.Commands() {
		switch cmd.GroupID {
		case groupStructural:
			c.Structural = append(c.Structural, cmd.Name())
		case groupBehavioral:
			c.Behavioral = append(c.Behavioral, cmd.Name())
		}
	}
	return c, nil
}

func newCatalogCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List every factory, tag, style and pattern demo as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := buildCatalog(a, cmd.Root())
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(c); err != nil {
				return fmt.Errorf("catalog: encode: %w", err)
			}
			return enc.Close()
		},
	}
}
