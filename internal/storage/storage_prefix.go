package storage

// GetPrefix returns the guild's prefix override, if one is set.
func (s *Storage) GetPrefix(guildID string) (string, bool) {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil || record.Prefix == "" {
		return "", false
	}
	return record.Prefix, true
}

// SetPrefix stores a prefix override for the guild.
func (s *Storage) SetPrefix(guildID, prefix string) error {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return err
	}
	record.Prefix = prefix
	s.ds.Add(guildID, record)
	return nil
}

// ClearPrefix removes the guild's prefix override, falling back to the
// global default.
func (s *Storage) ClearPrefix(guildID string) error {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return err
	}
	record.Prefix = ""
	s.ds.Add(guildID, record)
	return nil
}
