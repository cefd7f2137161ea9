package settings

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/mvoronov/mathmage/internal/profile"
)

type memStore struct {
	profiles map[string]*profile.UserProfile
	puts     int
}

func newMemStore() *memStore {
	return &memStore{profiles: make(map[string]*profile.UserProfile)}
}

func (m *memStore) Get(name string) (*profile.UserProfile, error) {
	return m.profiles[name], nil
}

func (m *memStore) Put(p *profile.UserProfile) error {
	m.puts++
	m.profiles[p.Name] = p
	return nil
}

func (m *memStore) Delete(name string) error {
	delete(m.profiles, name)
	return nil
}

func (m *memStore) ListAll() ([]*profile.UserProfile, error) { return nil, nil }

func (m *memStore) Close() error { return nil }

func press(s *SettingsScreen, code rune) {
	msg := tea.KeyPressMsg{Code: code}
	if code < 0x80 && code >= ' ' {
		msg.Text = string(code)
	}
	s.Update(msg)
}

func TestToggleInputModePersists(t *testing.T) {
	st := newMemStore()
	p := profile.New("Test")
	s := New(st, p)

	press(s, ' ')
	if p.Settings.InputMode != profile.InputKeyboard {
		t.Errorf("input mode = %q, want keyboard", p.Settings.InputMode)
	}
	press(s, ' ')
	if p.Settings.InputMode != profile.InputChoices {
		t.Errorf("input mode = %q, want choices", p.Settings.InputMode)
	}
	if st.puts != 2 {
		t.Errorf("store.Put called %d times, want 2", st.puts)
	}
}

func TestToggleNegativeNumbers(t *testing.T) {
	st := newMemStore()
	p := profile.New("Test")
	s := New(st, p)

	for i := 0; i < 3; i++ {
		press(s, 'j')
	}
	press(s, ' ')
	if !p.Settings.NegativeNumbers {
		t.Error("negative numbers should be enabled")
	}
}

func TestToggleSoundAndMusic(t *testing.T) {
	st := newMemStore()
	p := profile.New("Test")
	s := New(st, p)

	press(s, 'j')
	press(s, ' ')
	if p.Settings.SoundEnabled {
		t.Error("sound should be off")
	}

	press(s, 'j')
	press(s, ' ')
	if p.Settings.MusicEnabled {
		t.Error("music should be off")
	}
}
