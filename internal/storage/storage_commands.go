package storage

// AppendCommandLog appends one executed command to the guild's bounded
// history.
func (s *Storage) AppendCommandLog(guildID string, rec CommandHistoryRecord) error {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return err
	}

	record.CommandsHistoryList = append(record.CommandsHistoryList, rec)
	if len(record.CommandsHistoryList) > commandHistoryLimit {
		record.CommandsHistoryList = record.CommandsHistoryList[len(record.CommandsHistoryList)-commandHistoryLimit:]
	}

	s.ds.Add(guildID, record)
	return nil
}

// CommandLog returns the guild's command history, oldest first.
func (s *Storage) CommandLog(guildID string) ([]CommandHistoryRecord, error) {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return nil, err
	}
	return record.CommandsHistoryList, nil
}
