package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/keshon/datastore"
)

const commandHistoryLimit = 20

// Storage persists per-guild settings on a JSON-file datastore keyed by
// guild ID. A nil Prefixes slice means "use the global defaults"; an empty
// non-nil slice means mention-only invocation.
type Storage struct {
	ds *datastore.DataStore
}

// CommandHistoryRecord is one dispatched command, kept for diagnostics.
type CommandHistoryRecord struct {
	ChannelID string    `json:"channel_id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Command   string    `json:"command"`
	Args      string    `json:"args"`
	Datetime  time.Time `json:"datetime"`
}

// Record is the stored shape of a guild's settings.
type Record struct {
	Prefixes         []string               `json:"prefixes"`
	CommandsDisabled []string               `json:"commands_disabled"`
	CommandsHistory  []CommandHistoryRecord `json:"cmd_history"`
}

// New opens (or creates) the datastore file at filePath.
func New(filePath string) (*Storage, error) {
	ds, err := datastore.New(filePath)
	if err != nil {
		return nil, err
	}
	return &Storage{ds: ds}, nil
}

// Close flushes and closes the underlying datastore.
func (s *Storage) Close() error {
	return s.ds.Close()
}

func (s *Storage) getOrCreateGuildRecord(guildID string) (*Record, error) {
	data, exists := s.ds.Get(guildID)
	if !exists {
		record := &Record{}
		s.ds.Add(guildID, record)
		return record, nil
	}

	// The datastore hands back generic JSON values; round-trip into Record.
	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("error marshalling data: %w", err)
	}
	var record Record
	if err := json.Unmarshal(jsonData, &record); err != nil {
		return nil, fmt.Errorf("error unmarshalling to *Record: %w", err)
	}

	if len(record.CommandsHistory) > commandHistoryLimit {
		record.CommandsHistory = record.CommandsHistory[len(record.CommandsHistory)-commandHistoryLimit:]
	}
	return &record, nil
}

// GetPrefixes returns the guild's configured prefixes. nil means the guild
// never configured any and the caller should use the defaults.
func (s *Storage) GetPrefixes(guildID string) ([]string, error) {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return nil, err
	}
	return record.Prefixes, nil
}

// SetPrefixes replaces the guild's prefix list. An empty (non-nil) list
// configures mention-only invocation.
func (s *Storage) SetPrefixes(guildID string, prefixes []string) error {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return err
	}
	if prefixes == nil {
		prefixes = []string{}
	}
	record.Prefixes = prefixes
	s.ds.Add(guildID, record)
	return nil
}

// ClearPrefixes removes the guild's custom prefixes, restoring defaults.
func (s *Storage) ClearPrefixes(guildID string) error {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return err
	}
	record.Prefixes = nil
	s.ds.Add(guildID, record)
	return nil
}

// DisableCommand marks a command disabled for a guild.
func (s *Storage) DisableCommand(guildID, name string) error {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return err
	}
	for _, c := range record.CommandsDisabled {
		if c == name {
			return nil
		}
	}
	record.CommandsDisabled = append(record.CommandsDisabled, name)
	s.ds.Add(guildID, record)
	return nil
}

// EnableCommand removes a command from the guild's disabled set.
func (s *Storage) EnableCommand(guildID, name string) error {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return err
	}
	updated := make([]string, 0, len(record.CommandsDisabled))
	for _, c := range record.CommandsDisabled {
		if c != name {
			updated = append(updated, c)
		}
	}
	record.CommandsDisabled = updated
	s.ds.Add(guildID, record)
	return nil
}

// IsCommandDisabled reports whether a guild disabled a command.
func (s *Storage) IsCommandDisabled(guildID, name string) (bool, error) {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return false, err
	}
	for _, c := range record.CommandsDisabled {
		if c == name {
			return true, nil
		}
	}
	return false, nil
}

// AppendCommandHistory records a dispatched command for a guild.
func (s *Storage) AppendCommandHistory(guildID string, rec CommandHistoryRecord) error {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return err
	}
	record.CommandsHistory = append(record.CommandsHistory, rec)
	if len(record.CommandsHistory) > commandHistoryLimit {
		record.CommandsHistory = record.CommandsHistory[len(record.CommandsHistory)-commandHistoryLimit:]
	}
	s.ds.Add(guildID, record)
	return nil
}

// GetCommandHistory returns a guild's recent command history.
func (s *Storage) GetCommandHistory(guildID string) ([]CommandHistoryRecord, error) {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return nil, err
	}
	return record.CommandsHistory, nil
}
