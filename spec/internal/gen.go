// gen is a codegen cmd for generating the modifier and kind tables from
// internal/modifiers.yaml.
package main

import (
	"log"
	"os"
	"strings"

	"github.com/dave/jennifer/jen"
	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

type table struct {
	Modifiers []struct {
		Name  string `yaml:"name"`
		Group string `yaml:"group"`
	} `yaml:"modifiers"`
	Kinds []struct {
		Keyword string   `yaml:"keyword"`
		Implies []string `yaml:"implies"`
	} `yaml:"kinds"`
}

func main() {
	buf, err := os.ReadFile("internal/modifiers.yaml")
	if err != nil {
		log.Fatal("reading table file:", err)
	}
	var t table
	if err := yaml.Unmarshal(buf, &t); err != nil {
		log.Fatal("decoding table file:", err)
	}
	titleCaser := cases.Title(language.English)
	modID := func(name string) string { return "Mod" + titleCaser.String(name) }
	groupID := func(group string) string {
		if group == "" {
			return "GroupOther"
		}
		return "Group" + titleCaser.String(group)
	}
	kindID := func(keyword string) string {
		return "Kind" + inflect.Camelize(strings.ReplaceAll(keyword, " ", "_"))
	}

	f := jen.NewFile("spec")
	f.HeaderComment("Code generated by internal/gen.go, DO NOT EDIT.")

	f.Const().DefsFunc(func(g *jen.Group) {
		for i, m := range t.Modifiers {
			if i == 0 {
				g.Id(modID(m.Name)).Id("Modifier").Op("=").Iota().Op("+").Lit(1)
				continue
			}
			g.Id(modID(m.Name))
		}
	})
	f.Var().Id("modifierNames").Op("=").Index(jen.Op("...")).String().Values(jen.DictFunc(func(d jen.Dict) {
		for _, m := range t.Modifiers {
			d[jen.Id(modID(m.Name))] = jen.Lit(m.Name)
		}
	}))
	f.Var().Id("modifierGroups").Op("=").Index(jen.Op("...")).Id("Group").Values(jen.DictFunc(func(d jen.Dict) {
		for _, m := range t.Modifiers {
			d[jen.Id(modID(m.Name))] = jen.Id(groupID(m.Group))
		}
	}))

	f.Const().DefsFunc(func(g *jen.Group) {
		for i, k := range t.Kinds {
			if i == 0 {
				g.Id(kindID(k.Keyword)).Id("Kind").Op("=").Iota().Op("+").Lit(1)
				continue
			}
			g.Id(kindID(k.Keyword))
		}
	})
	f.Var().Id("kindKeywords").Op("=").Index(jen.Op("...")).String().Values(jen.DictFunc(func(d jen.Dict) {
		for _, k := range t.Kinds {
			d[jen.Id(kindID(k.Keyword))] = jen.Lit(k.Keyword)
		}
	}))
	f.Var().Id("kindImplied").Op("=").Index(jen.Op("...")).Index().Id("Modifier").Values(jen.DictFunc(func(d jen.Dict) {
		for _, k := range t.Kinds {
			if len(k.Implies) == 0 {
				continue
			}
			d[jen.Id(kindID(k.Keyword))] = jen.ValuesFunc(func(g *jen.Group) {
				for _, m := range k.Implies {
					g.Id(modID(m))
				}
			})
		}
	}))

	if err := f.Save("modifier_table.go"); err != nil {
		log.Fatal("writing go file:", err)
	}
}
