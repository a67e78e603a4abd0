package client

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Session is what survives between CLI invocations: where the server is
// and who we are. The token itself expires server-side.
type Session struct {
	BaseURL string `json:"base_url"`
	Token   string `json:"token"`
	UserID  uint   `json:"user_id"`
}

func sessionPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cal-tracker.json"), nil
}

func LoadSession() (*Session, error) {
	path, err := sessionPath()
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Session{}, nil
		}
		return nil, err
	}
	defer f.Close()

	var s Session
	if err := json.NewDecoder(f).Decode(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Session) Save() error {
	path, err := sessionPath()
	if err != nil {
		return err
	}
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o600)
}

// Resume builds a Client from a saved session.
func (s *Session) Resume() *Client {
	c := New(s.BaseURL)
	c.Token = s.Token
	c.UserID = s.UserID
	return c
}
