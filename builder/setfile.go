package builder

import (
	"bufio"
	"io"
	"strings"

	"github.com/katalvlaran/lvlcube/cube"
)

// ReadSetFile populates one dimension's elements and subset hierarchy
// from a whitespace-delimited record stream (see doc.go for the
// grammar). The last subset declared is promoted to the dimension's
// top. Record-level problems are collected in the Report and the read
// continues; under WithStrict the first one aborts the read.
//
// Complexity: O(records · tokens).
func ReadSetFile(set *cube.Set, r io.Reader, opts ...Option) (*Report, error) {
	if set == nil {
		return nil, ErrNilTarget
	}
	if r == nil {
		return nil, ErrNilReader
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	rep := &Report{}
	lastSubset := ""

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		rep.Records++

		name, err := readSetRecord(set, fields, line, rep, &o)
		if err != nil {
			return rep, err
		}
		if name != "" {
			lastSubset = name
			rep.Applied++
		}
	}
	if err := sc.Err(); err != nil {
		return rep, err
	}

	if lastSubset == "" {
		if err := rep.warnf(&o, line, "no subset declared in set %q", set.Name()); err != nil {
			return rep, err
		}

		return rep, nil
	}
	if err := set.PromoteTop(lastSubset); err != nil {
		if werr := rep.warnf(&o, line, "cannot promote %q to top: %v", lastSubset, err); werr != nil {
			return rep, werr
		}
	}

	return rep, nil
}

// readSetRecord applies one record and returns the name of the subset
// it declared or extended, or "" when the record was skipped.
func readSetRecord(set *cube.Set, fields []string, line int, rep *Report, o *options) (string, error) {
	name := fields[0]

	// Single token: element plus its singleton atomic subset.
	if len(fields) == 1 {
		if _, err := set.AddElement(name); err != nil {
			return "", rep.warnf(o, line, "element %q: %v", name, err)
		}
		if _, err := set.AddAtomicSubset(name, name); err != nil {
			return "", rep.warnf(o, line, "atomic subset %q: %v", name, err)
		}

		return name, nil
	}

	// Two tokens with a known element: an aliased atomic subset.
	if len(fields) == 2 && set.HasElement(fields[1]) {
		if _, err := set.AddAtomicSubset(name, fields[1]); err != nil {
			return "", rep.warnf(o, line, "atomic subset %q: %v", name, err)
		}

		return name, nil
	}

	// Otherwise: an intermediate subset plus one partition record.
	if !set.HasSubset(name) {
		if _, err := set.AddSubset(name); err != nil {
			return "", rep.warnf(o, line, "subset %q: %v", name, err)
		}
	}

	parts := make([]string, 0, len(fields)-1)
	for _, pn := range fields[1:] {
		if !set.HasSubset(pn) {
			if err := rep.warnf(o, line, "unknown part %q in subset %q", pn, name); err != nil {
				return "", err
			}

			continue
		}
		parts = append(parts, pn)
	}

	if _, err := set.AddPartition(name, parts...); err != nil {
		return "", rep.warnf(o, line, "partition of %q: %v", name, err)
	}

	return name, nil
}
