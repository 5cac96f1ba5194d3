package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"eventLottery/internal/config"
	"eventLottery/internal/models"
	"eventLottery/internal/storage"

	"github.com/lib/pq"
)

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) Event(id string) (*models.Event, error) {
	query := `
		SELECT id, title, capacity, waitlist_limit, geo_required
		FROM events
		WHERE id = $1`

	var event models.Event
	err := s.DB.QueryRow(query, id).Scan(
		&event.ID,
		&event.Title,
		&event.Capacity,
		&event.WaitlistLimit,
		&event.GeoRequired,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return &event, nil
}

func (s *Storage) OpenEvents(now time.Time) ([]models.Event, error) {
	query := `
		SELECT id, title, capacity, waitlist_limit, geo_required
		FROM events
		WHERE registration_opens_at <= $1 AND registration_closes_at > $1
		ORDER BY registration_closes_at ASC`

	rows, err := s.DB.Query(query, now)
	if err != nil {
		return nil, fmt.Errorf("failed to get open events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var event models.Event
		err = rows.Scan(
			&event.ID,
			&event.Title,
			&event.Capacity,
			&event.WaitlistLimit,
			&event.GeoRequired,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	return events, nil
}

func (s *Storage) IsRegistrationOpen(eventID string, now time.Time) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM events
			WHERE id = $1
			AND registration_opens_at <= $2
			AND registration_closes_at > $2
		)`

	var open bool
	if err := s.DB.QueryRow(query, eventID, now).Scan(&open); err != nil {
		return false, fmt.Errorf("failed to check registration window: %w", err)
	}

	return open, nil
}

func (s *Storage) IsGeolocationRequired(eventID string) (bool, error) {
	query := `SELECT geo_required FROM events WHERE id = $1`

	var required bool
	err := s.DB.QueryRow(query, eventID).Scan(&required)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, storage.ErrEventNotFound
		}
		return false, fmt.Errorf("failed to check geolocation requirement: %w", err)
	}

	return required, nil
}

func (s *Storage) IsOnWaitlist(eventID, userID string) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM waitlist
			WHERE event_id = $1 AND user_id = $2
		)`

	var onList bool
	if err := s.DB.QueryRow(query, eventID, userID).Scan(&onList); err != nil {
		return false, fmt.Errorf("failed to check waitlist membership: %w", err)
	}

	return onList, nil
}

// AddToWaitlist inserts a waitlist entry, enforcing the event's optional
// waitlist cap inside one transaction. Re-adding an existing entry is a
// no-op thanks to the conflict clause.
func (s *Storage) AddToWaitlist(eventID, userID string, joinedAt time.Time) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var limit, size int
	countQuery := `
		SELECT e.waitlist_limit, COUNT(w.user_id)
		FROM events e
		LEFT JOIN waitlist w ON e.id = w.event_id
		WHERE e.id = $1
		GROUP BY e.id, e.waitlist_limit`

	err = tx.QueryRow(countQuery, eventID).Scan(&limit, &size)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.ErrEventNotFound
		}
		return fmt.Errorf("failed to get waitlist size: %w", err)
	}

	if limit > 0 && size >= limit {
		var onList bool
		checkQuery := `
			SELECT EXISTS(
				SELECT 1 FROM waitlist
				WHERE event_id = $1 AND user_id = $2
			)`

		if err = tx.QueryRow(checkQuery, eventID, userID).Scan(&onList); err != nil {
			return fmt.Errorf("failed to check waitlist membership: %w", err)
		}

		if !onList {
			return storage.ErrWaitlistFull
		}
	}

	insertQuery := `
		INSERT INTO waitlist (event_id, user_id, joined_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (event_id, user_id) DO NOTHING`

	if _, err = tx.Exec(insertQuery, eventID, userID, joinedAt); err != nil {
		return fmt.Errorf("failed to add waitlist entry: %w", err)
	}

	return tx.Commit()
}

func (s *Storage) RemoveFromWaitlist(eventID, userID string) (bool, error) {
	query := `DELETE FROM waitlist WHERE event_id = $1 AND user_id = $2`

	result, err := s.DB.Exec(query, eventID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to remove waitlist entry: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

func (s *Storage) WaitlistCount(eventID string) (int, error) {
	query := `SELECT COUNT(*) FROM waitlist WHERE event_id = $1`

	var count int
	if err := s.DB.QueryRow(query, eventID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count waitlist: %w", err)
	}

	return count, nil
}

func (s *Storage) WaitlistSnapshot(eventID string) ([]models.WaitlistEntry, error) {
	query := `
		SELECT event_id, user_id, joined_at
		FROM waitlist
		WHERE event_id = $1
		ORDER BY joined_at ASC`

	rows, err := s.DB.Query(query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot waitlist: %w", err)
	}
	defer rows.Close()

	var entries []models.WaitlistEntry
	for rows.Next() {
		var entry models.WaitlistEntry
		err = rows.Scan(&entry.EventID, &entry.UserID, &entry.JoinedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan waitlist entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating waitlist: %w", err)
	}

	return entries, nil
}

func (s *Storage) RegistrationExists(eventID, userID string) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM registrations
			WHERE event_id = $1 AND user_id = $2
		)`

	var exists bool
	if err := s.DB.QueryRow(query, eventID, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check registration: %w", err)
	}

	return exists, nil
}

// UpsertRegistration creates a registration keyed by (event_id, user_id).
// An existing row is left untouched so a repeated direct registration
// never clobbers lottery state.
func (s *Storage) UpsertRegistration(eventID, userID string, status models.Status, now time.Time) error {
	query := `
		INSERT INTO registrations (event_id, user_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		ON CONFLICT (event_id, user_id) DO NOTHING`

	if _, err := s.DB.Exec(query, eventID, userID, string(status), now); err != nil {
		return fmt.Errorf("failed to upsert registration: %w", err)
	}

	return nil
}

func (s *Storage) GetRegistration(eventID, userID string) (*models.Registration, error) {
	query := `
		SELECT event_id, user_id, status, created_at, selected_at, updated_at
		FROM registrations
		WHERE event_id = $1 AND user_id = $2`

	var reg models.Registration
	var selectedAt sql.NullTime

	err := s.DB.QueryRow(query, eventID, userID).Scan(
		&reg.EventID,
		&reg.UserID,
		&reg.Status,
		&reg.CreatedAt,
		&selectedAt,
		&reg.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("failed to get registration: %w", err)
	}

	if selectedAt.Valid {
		reg.SelectedAt = selectedAt.Time
	}

	return &reg, nil
}

// UpdateRegistrationStatus flips status only when the row still holds the
// expected current status, so concurrent transitions cannot overwrite
// each other. Reports whether a row changed.
func (s *Storage) UpdateRegistrationStatus(eventID, userID string, from, to models.Status) (bool, error) {
	query := `
		UPDATE registrations
		SET status = $4, updated_at = NOW()
		WHERE event_id = $1 AND user_id = $2 AND status = $3`

	result, err := s.DB.Exec(query, eventID, userID, string(from), string(to))
	if err != nil {
		return false, fmt.Errorf("failed to update registration status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

func (s *Storage) CountActive(eventID string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM registrations
		WHERE event_id = $1 AND status = ANY($2)`

	active := []string{string(models.StatusSelected), string(models.StatusConfirmed)}

	var count int
	if err := s.DB.QueryRow(query, eventID, pq.Array(active)).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count active registrations: %w", err)
	}

	return count, nil
}

func (s *Storage) SelectedRegistrations(eventID string) ([]models.Registration, error) {
	query := `
		SELECT event_id, user_id, status, created_at, selected_at, updated_at
		FROM registrations
		WHERE event_id = $1 AND status = $2
		ORDER BY selected_at ASC`

	rows, err := s.DB.Query(query, eventID, string(models.StatusSelected))
	if err != nil {
		return nil, fmt.Errorf("failed to get selected registrations: %w", err)
	}
	defer rows.Close()

	var regs []models.Registration
	for rows.Next() {
		var reg models.Registration
		var selectedAt sql.NullTime

		err = rows.Scan(
			&reg.EventID,
			&reg.UserID,
			&reg.Status,
			&reg.CreatedAt,
			&selectedAt,
			&reg.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan registration: %w", err)
		}

		if selectedAt.Valid {
			reg.SelectedAt = selectedAt.Time
		}

		regs = append(regs, reg)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating registrations: %w", err)
	}

	return regs, nil
}

func (s *Storage) BulkCancelSelected(eventID string, userIDs []string) (int, error) {
	query := `
		UPDATE registrations
		SET status = $3, updated_at = NOW()
		WHERE event_id = $1 AND user_id = ANY($2) AND status = $4`

	result, err := s.DB.Exec(query, eventID, pq.Array(userIDs),
		string(models.StatusCancelled), string(models.StatusSelected))
	if err != nil {
		return 0, fmt.Errorf("failed to cancel selected registrations: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read rows affected: %w", err)
	}

	return int(rowsAffected), nil
}

// PromoteFromWaitlist consumes waitlist entries and writes selected
// registrations in one transaction. An entrant whose waitlist row was
// already removed is skipped without aborting the batch.
func (s *Storage) PromoteFromWaitlist(eventID string, userIDs []string, selectedAt time.Time) ([]string, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	deleteQuery := `DELETE FROM waitlist WHERE event_id = $1 AND user_id = $2`
	insertQuery := `
		INSERT INTO registrations (event_id, user_id, status, created_at, selected_at, updated_at)
		VALUES ($1, $2, $3, $4, $4, $4)
		ON CONFLICT (event_id, user_id) DO UPDATE
		SET status = EXCLUDED.status,
			selected_at = EXCLUDED.selected_at,
			updated_at = EXCLUDED.updated_at`

	promoted := make([]string, 0, len(userIDs))

	for _, userID := range userIDs {
		result, err := tx.Exec(deleteQuery, eventID, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to consume waitlist entry: %w", err)
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return nil, fmt.Errorf("failed to read rows affected: %w", err)
		}

		if rowsAffected == 0 {
			continue
		}

		_, err = tx.Exec(insertQuery, eventID, userID, string(models.StatusSelected), selectedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to create selected registration: %w", err)
		}

		promoted = append(promoted, userID)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit promotion: %w", err)
	}

	return promoted, nil
}

func (s *Storage) SaveLotteryResult(result *models.LotteryResult) error {
	query := `
		INSERT INTO lottery_results (id, event_id, entrant_ids, drawn_at)
		VALUES ($1, $2, $3, $4)`

	_, err := s.DB.Exec(query, result.ID, result.EventID, pq.Array(result.EntrantIDs), result.DrawnAt)
	if err != nil {
		return fmt.Errorf("failed to save lottery result: %w", err)
	}

	return nil
}

func (s *Storage) CustomLotteryCriteria() (string, error) {
	query := `SELECT value FROM settings WHERE key = 'lottery_criteria'`

	var criteria string
	err := s.DB.QueryRow(query).Scan(&criteria)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get lottery criteria: %w", err)
	}

	return criteria, nil
}
