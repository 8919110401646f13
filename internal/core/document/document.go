// Package document converts between the live clip model and the persisted
// JSON document format.
//
// The format is a single object:
//
//	{
//	  "Author Name": "<string>",
//	  "Total Tabs": <int>,
//	  "Data": [
//	    {
//	      "Tab Name": "<string>",
//	      "Total Cells": <int>,
//	      "Tab Data": [{"Text Data": "<string>", "Cell Name": "<string>"}]
//	    }
//	  ]
//	}
//
// The counts are informational. Readers tolerate missing fields.
package document

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/colonyops/multipaste/internal/core/clip"
)

// DefaultAuthor is written to "Author Name" when no author is configured.
const DefaultAuthor = "multipaste"

// JSON keys of the persisted format.
const (
	KeyAuthor     = "Author Name"
	KeyTotalTabs  = "Total Tabs"
	KeyData       = "Data"
	KeyTabName    = "Tab Name"
	KeyTotalCells = "Total Cells"
	KeyTabData    = "Tab Data"
	KeyTextData   = "Text Data"
	KeyCellName   = "Cell Name"
)

// Document is the serialization view of a workspace. Field order fixes the
// key order of the encoded output.
type Document struct {
	Author    string      `json:"Author Name"`
	TotalTabs int         `json:"Total Tabs"`
	Data      []TabRecord `json:"Data"`
}

// TabRecord is one element of "Data".
type TabRecord struct {
	TabName    string       `json:"Tab Name"`
	TotalCells int          `json:"Total Cells"`
	TabData    []CellRecord `json:"Tab Data"`
}

// CellRecord is one element of "Tab Data".
type CellRecord struct {
	TextData string `json:"Text Data"`
	CellName string `json:"Cell Name"`
}

// Write builds the document for the given tabs. It never fails.
func Write(author string, tabs []*clip.Tab) Document {
	doc := Document{
		Author:    author,
		TotalTabs: len(tabs),
		Data:      make([]TabRecord, 0, len(tabs)),
	}

	for _, t := range tabs {
		rec := TabRecord{
			TabName:    t.Name,
			TotalCells: len(t.Cells),
			TabData:    make([]CellRecord, 0, len(t.Cells)),
		}
		for _, c := range t.Cells {
			rec.TabData = append(rec.TabData, CellRecord{
				TextData: c.Text,
				CellName: c.Name,
			})
		}
		doc.Data = append(doc.Data, rec)
	}

	return doc
}

// Encode writes doc as indented JSON followed by a newline. The output is
// deterministic for a given document.
func Encode(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	return enc.Encode(doc)
}

// Marshal is Encode into a byte slice.
func Marshal(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
