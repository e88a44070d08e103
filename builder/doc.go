// Package builder reads subset hierarchies and measure values from
// plain-text files and YAML documents into the cube data model.
//
// Whitespace format (one record per line, blank lines ignored):
//
// Per-dimension subset file — each record is one of:
//
//	elementName                    an atomic element plus its singleton
//	                               atomic subset of the same name
//	subsetName elementName         an atomic subset aliasing an existing
//	                               element
//	subsetName part1 part2 … partK an intermediate subset (created on
//	                               first sight) with one admissible
//	                               partition over previously declared
//	                               parts (K ≥ 2)
//
// The last subset declared in a file is promoted to the dimension's
// top. Unknown part names are warned about and skipped; the record is
// still applied to the recognised parts.
//
// Measure file — one record per non-zero cell:
//
//	name_0 name_1 … name_{D-1} value
//
// Repeated cells overwrite. Unknown element names, negative values, and
// malformed numbers are warned about and skipped.
//
// Diagnostics: input-shape and domain errors never stop a read. Each
// adapter returns a Report with line-numbered warnings and counts of
// records seen and applied; with WithStrict the first warning aborts
// the read instead. Hard errors (nil arguments, I/O failure, structural
// misuse such as an unfrozen multiset for measures) are returned as
// errors.
//
// YAML format: ReadYAML builds, freezes, and fills a whole multiset
// from one document:
//
//	name: ABC
//	sets:
//	  - name: A
//	    elements: [a1, a2]
//	    subsets:
//	      - {name: A1, element: a1}
//	      - {name: A2, element: a2}
//	      - {name: A12, parts: [A1, A2], top: true}
//	cells:
//	  - {at: [a1, …], value: 2}
//
// A subset entry repeated under the same name adds an alternative
// partition. Without an explicit top flag, the last subset of a set is
// promoted.
//
// Errors:
//
//	ErrNilTarget - a nil Set or MultiSet was passed.
//	ErrNilReader - a nil io.Reader was passed.
//	ErrBadYAML   - the YAML document failed to decode.
//	ErrStrict    - a warning occurred under WithStrict.
package builder
