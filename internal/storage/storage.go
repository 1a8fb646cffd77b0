package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/keshon/datastore"
)

const commandHistoryLimit = 20

// Storage holds per-guild settings and bookkeeping on top of a JSON-file
// datastore. Command and cooldown state never goes here: it is in-memory by
// design and does not survive restarts.
type Storage struct {
	ds *datastore.DataStore
}

// CommandHistoryRecord is one executed command in a guild's history.
type CommandHistoryRecord struct {
	ChannelID string    `json:"channel_id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Command   string    `json:"command"`
	Datetime  time.Time `json:"datetime"`
}

// Record is everything stored for one guild.
type Record struct {
	Prefix              string                 `json:"prefix,omitempty"`
	CommandsHistoryList []CommandHistoryRecord `json:"cmd_history"`
}

func New(filePath string) (*Storage, error) {
	ds, err := datastore.New(filePath)
	if err != nil {
		return nil, err
	}
	return &Storage{ds: ds}, nil
}

func (s *Storage) Close() error {
	return s.ds.Close()
}

func (s *Storage) getOrCreateGuildRecord(guildID string) (*Record, error) {
	data, exists := s.ds.Get(guildID)
	if !exists {
		rec := &Record{CommandsHistoryList: []CommandHistoryRecord{}}
		s.ds.Add(guildID, rec)
		return rec, nil
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("error marshalling data: %w", err)
	}

	var record Record
	if err := json.Unmarshal(jsonData, &record); err != nil {
		return nil, fmt.Errorf("error unmarshalling to *Record: %w", err)
	}

	if len(record.CommandsHistoryList) > commandHistoryLimit {
		record.CommandsHistoryList = record.CommandsHistoryList[len(record.CommandsHistoryList)-commandHistoryLimit:]
	}
	return &record, nil
}
