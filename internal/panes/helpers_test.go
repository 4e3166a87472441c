package panes

import (
	tea "charm.land/bubbletea/v2"
)

func typed(s string) []tea.KeyPressMsg {
	var out []tea.KeyPressMsg
	for _, r := range s {
		out = append(out, tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	return out
}

func special(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func ctrl(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}
}

func feed(p Pane, msgs ...tea.KeyPressMsg) Signal {
	sig := Nop
	for _, m := range msgs {
		sig = p.HandleKey(m)
	}
	return sig
}

type memStore struct {
	items   []string
	saves   int
	saveErr error
}

func (s *memStore) Load() ([]string, error) { return append([]string(nil), s.items...), nil }

func (s *memStore) Save(items []string) error {
	s.saves++
	if s.saveErr != nil {
		return s.saveErr
	}
	s.items = append([]string(nil), items...)
	return nil
}
