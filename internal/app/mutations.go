package app

import (
	"strings"
	"unicode/utf8"

	"github.com/colonyops/multipaste/internal/core/clip"
)

// validText replaces invalid UTF-8 so the workspace holds exactly what a save
// writes. JSON encoding would otherwise substitute U+FFFD silently.
func (s *Service) validText(field, text string) string {
	if utf8.ValidString(text) {
		return text
	}
	s.log.Warn().Str("field", field).Msg("replaced invalid UTF-8 in cell or tab text")
	return strings.ToValidUTF8(text, string(utf8.RuneError))
}

// AddTab appends a tab named name, or "Tab N" when name is empty, and returns
// its index.
func (s *Service) AddTab(name string) int {
	name = s.validText("tab name", name)
	if name == "" {
		s.ws.NewTab()
	} else {
		s.ws.AddTab(name)
	}
	s.touch()
	return s.ws.Len() - 1
}

// RenameTab renames the tab at index i.
func (s *Service) RenameTab(i int, name string) error {
	name = s.validText("tab name", name)
	if err := s.ws.RenameTab(i, name); err != nil {
		return err
	}
	s.touch()
	return nil
}

// RemoveTab removes the tab at index i. addedDefault reports that the last
// tab was removed and replaced by an empty Default tab.
func (s *Service) RemoveTab(i int) (addedDefault bool, err error) {
	addedDefault, err = s.ws.RemoveTab(i)
	if err != nil {
		return false, err
	}
	s.touch()
	if addedDefault {
		s.log.Info().Msg("last tab closed, added Default tab")
	}
	return addedDefault, nil
}

// MoveTab moves a tab to a new position.
func (s *Service) MoveTab(from, to int) error {
	if err := s.ws.MoveTab(from, to); err != nil {
		return err
	}
	if from != to {
		s.touch()
	}
	return nil
}

// AddCell appends a cell to the tab at tabIdx and returns the cell index.
func (s *Service) AddCell(tabIdx int, name, text string) (int, error) {
	t, err := s.ws.Tab(tabIdx)
	if err != nil {
		return 0, err
	}
	s.touch()
	return t.AddCell(s.validText("cell name", name), s.validText("cell text", text)), nil
}

// UpdateCell replaces a cell's name and text.
func (s *Service) UpdateCell(tabIdx, cellIdx int, name, text string) error {
	t, err := s.ws.Tab(tabIdx)
	if err != nil {
		return err
	}
	if err := t.UpdateCell(cellIdx, clip.Cell{Name: s.validText("cell name", name), Text: s.validText("cell text", text)}); err != nil {
		return err
	}
	s.touch()
	return nil
}

// RemoveCell deletes a cell.
func (s *Service) RemoveCell(tabIdx, cellIdx int) error {
	t, err := s.ws.Tab(tabIdx)
	if err != nil {
		return err
	}
	if err := t.RemoveCell(cellIdx); err != nil {
		return err
	}
	s.touch()
	return nil
}

// MoveCell moves a cell within its tab.
func (s *Service) MoveCell(tabIdx, from, to int) error {
	t, err := s.ws.Tab(tabIdx)
	if err != nil {
		return err
	}
	if err := t.MoveCell(from, to); err != nil {
		return err
	}
	if from != to {
		s.touch()
	}
	return nil
}
