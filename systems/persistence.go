package systems

import (
	"encoding/json"
	"fmt"

	"github.com/automoto/floe/session"
	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"
)

const saveSlotKey = "session"

// ItemStore is the part of gdata.Manager the save slot uses.
type ItemStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

var saveStore ItemStore

// InitPersistence opens the gdata save location for the app.
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Warn("could not initialize persistence", "err", err)
		return err
	}
	saveStore = m
	return nil
}

// UseStore replaces the save location; nil disables saving.
func UseStore(store ItemStore) {
	saveStore = store
}

// savedSession is the on-disk form of the session between levels.
type savedSession struct {
	Version int            `json:"version"`
	State   *session.State `json:"state"`
}

const saveVersion = 1

// LoadSession returns the saved session, or nil when there is none. A save
// that cannot be read is logged and ignored.
func LoadSession() (*session.State, error) {
	if saveStore == nil {
		return nil, nil
	}

	data, err := saveStore.LoadItem(saveSlotKey)
	if err != nil {
		log.Warn("could not load session", "err", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var saved savedSession
	if err := json.Unmarshal(data, &saved); err != nil {
		log.Warn("could not parse saved session", "err", err)
		return nil, err
	}
	if saved.Version != saveVersion || saved.State == nil {
		return nil, fmt.Errorf("saved session version %d: unsupported", saved.Version)
	}

	s := saved.State
	s.ResetMultiplier()
	s.ScrollX = 0
	return s, nil
}

// SaveSession writes the session between levels.
func SaveSession(s *session.State) error {
	if saveStore == nil || s == nil {
		return nil
	}

	data, err := json.Marshal(savedSession{Version: saveVersion, State: s})
	if err != nil {
		log.Warn("could not serialize session", "err", err)
		return err
	}
	if err := saveStore.SaveItem(saveSlotKey, data); err != nil {
		log.Warn("could not save session", "err", err)
		return err
	}
	return nil
}

// HasSavedSession reports whether a save slot exists.
func HasSavedSession() bool {
	if saveStore == nil {
		return false
	}
	data, err := saveStore.LoadItem(saveSlotKey)
	return err == nil && len(data) > 0
}

// ClearSession empties the save slot, used at game over.
func ClearSession() error {
	if saveStore == nil {
		return nil
	}
	if err := saveStore.SaveItem(saveSlotKey, nil); err != nil {
		log.Warn("could not clear session", "err", err)
		return err
	}
	return nil
}
