package spec

import (
	"fmt"
	"slices"

	"github.com/syssam/kpoet/code"
	"github.com/syssam/kpoet/typename"
)

// common holds the parts every declaration builder shares.
type common struct {
	mods        []Modifier
	annotations []*AnnotationBuilder
	doc         []*code.Code
	err         error
}

func (c *common) setErr(err error) {
	if c.err == nil {
		c.err = err
	}
}

func (c *common) addModifiers(mods []Modifier) {
	for _, m := range mods {
		if !m.Valid() {
			c.setErr(fmt.Errorf("unknown modifier %d", m))
			return
		}
	}
	c.mods = append(c.mods, mods...)
}

func (c *common) addDoc(format string, args []any) {
	if c.err != nil {
		return
	}
	d, err := code.Of(format, args...)
	if err != nil {
		c.setErr(err)
		return
	}
	c.doc = append(c.doc, d)
}

// build returns the sorted modifiers, the built annotations and the doc.
func (c *common) build() ([]Modifier, []*Annotation, *code.Code, error) {
	if c.err != nil {
		return nil, nil, nil, c.err
	}
	annotations, err := buildAnnotations(c.annotations)
	if err != nil {
		return nil, nil, nil, err
	}
	mods := SortModifiers(c.mods)
	if err := checkGroups(mods); err != nil {
		return nil, nil, nil, err
	}
	var doc *code.Code
	if len(c.doc) > 0 {
		doc = code.Concat(c.doc...)
	}
	return mods, annotations, doc, nil
}

// checkGroups rejects conflicting visibility or modality modifiers.
func checkGroups(mods []Modifier) error {
	var seen [GroupOther + 1]Modifier
	for _, m := range mods {
		g := m.Group()
		if g != GroupVisibility && g != GroupModality {
			continue
		}
		if seen[g] != 0 {
			return fmt.Errorf("conflicting modifiers %s and %s", seen[g], m)
		}
		seen[g] = m
	}
	return nil
}

// Has reports whether mods contains m.
func Has(mods []Modifier, m Modifier) bool {
	return slices.Contains(mods, m)
}

func cloneVars(vars []typename.TypeVariable) []typename.TypeVariable {
	return slices.Clone(vars)
}
