package migrations

import "gorm.io/gorm"

// migration002Up creates lookup indexes beyond what AutoMigrate declares.
// The attendance pair index backs the (user, event) uniqueness rule.
func migration002Up(db *gorm.DB) error {
	indexes := []string{
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_attendance_user_event ON attendance (user_id, event_id)",
		"CREATE INDEX IF NOT EXISTS idx_events_owner ON events (owner_id)",
		"CREATE INDEX IF NOT EXISTS idx_surveys_owner ON surveys (owner_id)",
		"CREATE INDEX IF NOT EXISTS idx_surveys_event ON surveys (event_id)",
		"CREATE INDEX IF NOT EXISTS idx_questions_owner ON questions (owner_id)",
		"CREATE INDEX IF NOT EXISTS idx_questions_survey ON questions (survey_id)",
	}

	for _, index := range indexes {
		if err := db.Exec(index).Error; err != nil {
			return err
		}
	}

	return nil
}

// migration002Down drops the indexes created by migration002Up
func migration002Down(db *gorm.DB) error {
	indexes := []string{
		"DROP INDEX IF EXISTS idx_attendance_user_event",
		"DROP INDEX IF EXISTS idx_events_owner",
		"DROP INDEX IF EXISTS idx_surveys_owner",
		"DROP INDEX IF EXISTS idx_surveys_event",
		"DROP INDEX IF EXISTS idx_questions_owner",
		"DROP INDEX IF EXISTS idx_questions_survey",
	}

	for _, index := range indexes {
		if err := db.Exec(index).Error; err != nil {
			return err
		}
	}

	return nil
}
