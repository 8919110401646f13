package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/colonyops/multipaste/internal/core/clip"
)

// Object is a parsed top-level document object whose values are decoded
// lazily, so wrongly typed fields can fall back to defaults.
type Object map[string]json.RawMessage

// Result is the outcome of reading a document.
type Result struct {
	Author string
	// DeclaredTabs is the "Total Tabs" value, or -1 when absent.
	DeclaredTabs int
	Events       []clip.Event
	// Warnings lists non-fatal inconsistencies such as count mismatches.
	Warnings []string
}

// TabCount returns the number of tab events.
func (r Result) TabCount() int {
	n := 0
	for _, ev := range r.Events {
		if ev.Kind == clip.EventTab {
			n++
		}
	}
	return n
}

// CellCount returns the number of cell events.
func (r Result) CellCount() int {
	return len(r.Events) - r.TabCount()
}

// Parse validates data as JSON and returns its top-level object.
//
// Invalid JSON yields a *SyntaxError (errors.Is ErrJSONSyntax). Valid JSON that
// is not an object yields ErrMalformedDocument.
func Parse(data []byte) (Object, error) {
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		var se *json.SyntaxError
		if errors.As(err, &se) {
			return nil, &SyntaxError{Offset: se.Offset, Err: err}
		}
		return nil, &SyntaxError{Err: err}
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return nil, ErrMalformedDocument
	}

	var obj Object
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}
	return obj, nil
}

// Read turns a parsed document into tab and cell creation events, in array
// order. Missing or wrongly typed fields default to empty values.
func Read(obj Object) Result {
	res := Result{
		Author:       stringField(obj, KeyAuthor),
		DeclaredTabs: -1,
	}

	if n, ok := intField(obj, KeyTotalTabs); ok {
		res.DeclaredTabs = n
	}

	tabs := arrayField(obj, KeyData)
	for i, rawTab := range tabs {
		tab := objectOf(rawTab)
		res.Events = append(res.Events, clip.TabEvent(stringField(tab, KeyTabName)))

		cells := arrayField(tab, KeyTabData)
		for _, rawCell := range cells {
			cell := objectOf(rawCell)
			res.Events = append(res.Events, clip.CellEvent(
				stringField(cell, KeyCellName),
				stringField(cell, KeyTextData),
			))
		}

		if n, ok := intField(tab, KeyTotalCells); ok && n != len(cells) {
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("tab %d declares %d cells but holds %d", i, n, len(cells)))
		}
	}

	if res.DeclaredTabs >= 0 && res.DeclaredTabs != len(tabs) {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("document declares %d tabs but holds %d", res.DeclaredTabs, len(tabs)))
	}

	return res
}

// Decode is Parse followed by Read.
func Decode(data []byte) (Result, error) {
	obj, err := Parse(data)
	if err != nil {
		return Result{}, err
	}
	return Read(obj), nil
}

func stringField(obj Object, key string) string {
	raw, ok := obj[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

func intField(obj Object, key string) (int, bool) {
	raw, ok := obj[key]
	if !ok {
		return 0, false
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, false
	}
	if f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return int(f), true
}

func arrayField(obj Object, key string) []json.RawMessage {
	raw, ok := obj[key]
	if !ok {
		return nil
	}
	var arr []json.RawMessage
	if err := json.Unmarshal(raw, &arr); err != nil {
		return nil
	}
	return arr
}

func objectOf(raw json.RawMessage) Object {
	var obj Object
	if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
		return Object{}
	}
	return obj
}
