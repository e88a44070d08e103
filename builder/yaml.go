package builder

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlcube/cube"
)

// Document is the YAML description of a whole multiset: its dimensions,
// their subset hierarchies, and the non-zero measure cells.
type Document struct {
	// Name is the multiset's name.
	Name string `yaml:"name"`

	// Sets lists the dimensions in position order.
	Sets []SetDocument `yaml:"sets"`

	// Cells lists the non-zero measure cells.
	Cells []CellDocument `yaml:"cells"`
}

// SetDocument describes one dimension.
type SetDocument struct {
	// Name is the dimension's name.
	Name string `yaml:"name"`

	// Elements lists the atomic values in insertion order.
	Elements []string `yaml:"elements"`

	// Subsets lists the admissible subsets in insertion order. An
	// entry repeated under the same name adds an alternative partition.
	Subsets []SubsetDocument `yaml:"subsets"`
}

// SubsetDocument describes one subset record.
type SubsetDocument struct {
	// Name is the subset's name.
	Name string `yaml:"name"`

	// Element, when set, makes the subset atomic over that element.
	Element string `yaml:"element,omitempty"`

	// Parts, when set, attaches one admissible partition over
	// previously declared subsets.
	Parts []string `yaml:"parts,omitempty"`

	// Top marks the dimension's top subset. Without any Top entry the
	// last subset of the dimension is promoted.
	Top bool `yaml:"top,omitempty"`
}

// CellDocument describes one measure cell.
type CellDocument struct {
	// At holds one element name per dimension, in position order.
	At []string `yaml:"at"`

	// Value is the cell's non-negative measure.
	Value float64 `yaml:"value"`
}

// ReadYAML decodes a Document from r, builds the multiset it describes,
// freezes it, and fills its measure tensor.
//
// Decode failures and structurally unusable documents (no dimension, no
// promotable top) are hard errors wrapping ErrBadYAML. Record-level
// problems follow the same report-and-skip policy as the whitespace
// adapters.
func ReadYAML(r io.Reader, opts ...Option) (*cube.MultiSet, *Report, error) {
	if r == nil {
		return nil, nil, ErrNilReader
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrBadYAML, err)
	}

	rep := &Report{}
	ms := cube.NewMultiSet(doc.Name)

	for si := range doc.Sets {
		if err := readYAMLSet(ms, &doc.Sets[si], rep, &o); err != nil {
			return nil, rep, err
		}
	}

	if err := ms.Freeze(); err != nil {
		return nil, rep, fmt.Errorf("%w: %v", ErrBadYAML, err)
	}

	for ci := range doc.Cells {
		cell := &doc.Cells[ci]
		rep.Records++
		if err := ms.SetValue(cell.At, cell.Value); err != nil {
			if werr := rep.warnf(&o, ci+1, "cell %v: %v", cell.At, err); werr != nil {
				return nil, rep, werr
			}

			continue
		}
		rep.Applied++
	}

	return ms, rep, nil
}

// readYAMLSet builds one dimension from its document.
func readYAMLSet(ms *cube.MultiSet, sd *SetDocument, rep *Report, o *options) error {
	set, err := ms.AddSet(sd.Name)
	if err != nil {
		return fmt.Errorf("%w: set %q: %v", ErrBadYAML, sd.Name, err)
	}

	for ei, en := range sd.Elements {
		rep.Records++
		if _, err = set.AddElement(en); err != nil {
			if werr := rep.warnf(o, ei+1, "element %q in set %q: %v", en, sd.Name, err); werr != nil {
				return werr
			}

			continue
		}
		rep.Applied++
	}

	// With an explicit top flag the flagged subset wins; otherwise the
	// last applied subset is promoted, as in the whitespace format.
	flagged := hasTopFlag(sd.Subsets)
	top := ""
	for si := range sd.Subsets {
		sub := &sd.Subsets[si]
		rep.Records++

		name, err := readYAMLSubset(set, sub, si+1, rep, o)
		if err != nil {
			return err
		}
		if name == "" {
			continue
		}
		rep.Applied++
		if sub.Top || !flagged {
			top = name
		}
	}

	if top == "" {
		return fmt.Errorf("%w: set %q has no subset to promote", ErrBadYAML, sd.Name)
	}
	if err = set.PromoteTop(top); err != nil {
		return fmt.Errorf("%w: set %q: %v", ErrBadYAML, sd.Name, err)
	}

	return nil
}

// readYAMLSubset applies one subset record and returns the subset name,
// or "" when the record was skipped.
func readYAMLSubset(set *cube.Set, sub *SubsetDocument, line int, rep *Report, o *options) (string, error) {
	if sub.Element != "" {
		if _, err := set.AddAtomicSubset(sub.Name, sub.Element); err != nil {
			return "", rep.warnf(o, line, "atomic subset %q: %v", sub.Name, err)
		}

		return sub.Name, nil
	}

	if !set.HasSubset(sub.Name) {
		if _, err := set.AddSubset(sub.Name); err != nil {
			return "", rep.warnf(o, line, "subset %q: %v", sub.Name, err)
		}
	}

	parts := make([]string, 0, len(sub.Parts))
	for _, pn := range sub.Parts {
		if !set.HasSubset(pn) {
			if err := rep.warnf(o, line, "unknown part %q in subset %q", pn, sub.Name); err != nil {
				return "", err
			}

			continue
		}
		parts = append(parts, pn)
	}

	if _, err := set.AddPartition(sub.Name, parts...); err != nil {
		return "", rep.warnf(o, line, "partition of %q: %v", sub.Name, err)
	}

	return sub.Name, nil
}

// hasTopFlag reports whether any subset record carries an explicit top.
func hasTopFlag(subs []SubsetDocument) bool {
	for i := range subs {
		if subs[i].Top {
			return true
		}
	}

	return false
}
