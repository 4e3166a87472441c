package ui

import (
	tea "charm.land/bubbletea/v2"
)

// Run drives m with a bubbletea program until the user quits. The returned
// error is either a program failure or the fatal error that ended the
// session.
func Run(m *Model, opts ...tea.ProgramOption) error {
	prog := tea.NewProgram(m, opts...)
	final, err := prog.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(*Model); ok && fm != nil {
		return fm.Err()
	}
	return nil
}
