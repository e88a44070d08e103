package builder

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlcube/cube"
)

// ReadMeasureFile fills the measure tensor of a frozen multiset from a
// whitespace-delimited record stream: one record per non-zero cell,
// D element names followed by a real value. Repeated cells overwrite.
//
// Domain problems — wrong arity, unknown element names, malformed or
// negative values — are collected in the Report and the read continues;
// under WithStrict the first one aborts the read. Passing an unfrozen
// multiset is a hard error (cube.ErrNotFrozen).
//
// Complexity: O(records · D).
func ReadMeasureFile(ms *cube.MultiSet, r io.Reader, opts ...Option) (*Report, error) {
	if ms == nil {
		return nil, ErrNilTarget
	}
	if r == nil {
		return nil, ErrNilReader
	}
	if !ms.Frozen() {
		return nil, cube.ErrNotFrozen
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	rep := &Report{}
	dim := ms.Dim()

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		rep.Records++

		if len(fields) != dim+1 {
			if err := rep.warnf(&o, line, "got %d tokens, want %d names and a value", len(fields), dim); err != nil {
				return rep, err
			}

			continue
		}

		v, err := strconv.ParseFloat(fields[dim], 64)
		if err != nil {
			if werr := rep.warnf(&o, line, "bad value %q", fields[dim]); werr != nil {
				return rep, werr
			}

			continue
		}

		if err = ms.SetValue(fields[:dim], v); err != nil {
			if werr := rep.warnf(&o, line, "cell %v: %v", fields[:dim], err); werr != nil {
				return rep, werr
			}

			continue
		}
		rep.Applied++
	}
	if err := sc.Err(); err != nil {
		return rep, err
	}

	return rep, nil
}
