package batch

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"imageorganizer/internal/classify"
	"imageorganizer/internal/extract"
)

const imageColumns = "id, filename, source_path, role, status, error_message, ocr_confidence, identity_json, created_at, updated_at"

// Add inserts a new pending image record and returns it.
func (s *Store) Add(ctx context.Context, filename, sourcePath string) (*Image, error) {
	now := time.Now().UTC()
	timestamp := now.Format(time.RFC3339Nano)
	id := uuid.NewString()

	_, err := s.execWithRetry(
		ctx,
		`INSERT INTO image_records (id, filename, source_path, role, status, ocr_confidence, created_at, updated_at)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id,
		filename,
		sourcePath,
		string(classify.RoleUnknown),
		string(StatusPending),
		0.0,
		timestamp,
		timestamp,
	)
	if err != nil {
		return nil, fmt.Errorf("insert image record: %w", err)
	}
	return s.GetByID(ctx, id)
}

// GetByID fetches an image record by identifier. Returns nil when absent.
func (s *Store) GetByID(ctx context.Context, id string) (*Image, error) {
	row := s.db.QueryRowContext(ensureContext(ctx), `SELECT `+imageColumns+` FROM image_records WHERE id = ?`, id)
	img, err := scanImage(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get image record: %w", err)
	}
	return img, nil
}

// List returns every image record in insertion order.
func (s *Store) List(ctx context.Context) ([]*Image, error) {
	rows, err := s.db.QueryContext(ensureContext(ctx), `SELECT `+imageColumns+` FROM image_records ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("list image records: %w", err)
	}
	defer rows.Close()

	var images []*Image
	for rows.Next() {
		img, err := scanImage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan image record: %w", err)
		}
		images = append(images, img)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate image records: %w", err)
	}
	return images, nil
}

// SetRole assigns the document role. Roles are assigned once; a second
// assignment to a different role is rejected.
func (s *Store) SetRole(ctx context.Context, id string, role classify.Role) error {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("image record %s not found", id)
	}
	if existing.Role != classify.RoleUnknown && existing.Role != role {
		return fmt.Errorf("image record %s already has role %s", id, existing.Role)
	}
	return s.touch(ctx, id, `role = ?`, string(role))
}

// SetIdentity attaches the extracted identity record. Identities attach at
// most once and only to front-role images.
func (s *Store) SetIdentity(ctx context.Context, id string, record *extract.IdentityRecord) error {
	if !record.Valid() {
		return errors.New("identity record is not valid")
	}
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("image record %s not found", id)
	}
	if existing.Role != classify.RoleFront {
		return fmt.Errorf("image record %s has role %s; identities attach to fronts only", id, existing.Role)
	}
	if existing.Identity != nil {
		return fmt.Errorf("image record %s already has an identity", id)
	}
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal identity: %w", err)
	}
	return s.touch(ctx, id, `identity_json = ?`, string(payload))
}

// SetOCRConfidence records the mean recognition confidence for logging.
func (s *Store) SetOCRConfidence(ctx context.Context, id string, confidence float64) error {
	return s.touch(ctx, id, `ocr_confidence = ?`, confidence)
}

// Transition moves a record to the next status, enforcing forward-only
// transitions. The error message is stored only for failures.
func (s *Store) Transition(ctx context.Context, id string, next Status, errorMessage string) error {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("image record %s not found", id)
	}
	if !existing.Status.CanTransition(next) {
		return fmt.Errorf("illegal status transition %s -> %s for image record %s", existing.Status, next, id)
	}
	if next != StatusFailed {
		errorMessage = ""
	}
	timestamp := time.Now().UTC().Format(time.RFC3339Nano)
	_, err = s.execWithRetry(
		ctx,
		`UPDATE image_records SET status = ?, error_message = ?, updated_at = ? WHERE id = ?`,
		string(next),
		nullableString(errorMessage),
		timestamp,
		id,
	)
	if err != nil {
		return fmt.Errorf("transition image record: %w", err)
	}
	return nil
}

// HealthSummary returns aggregate counts per lifecycle state.
func (s *Store) HealthSummary(ctx context.Context) (HealthSummary, error) {
	rows, err := s.db.QueryContext(ensureContext(ctx), `SELECT status, COUNT(1) FROM image_records GROUP BY status`)
	if err != nil {
		return HealthSummary{}, fmt.Errorf("summarize batch: %w", err)
	}
	defer rows.Close()

	var summary HealthSummary
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return HealthSummary{}, fmt.Errorf("scan summary row: %w", err)
		}
		summary.Total += count
		switch Status(status) {
		case StatusPending:
			summary.Pending = count
		case StatusProcessing:
			summary.Processing = count
		case StatusCompleted:
			summary.Completed = count
		case StatusFailed:
			summary.Failed = count
		}
	}
	return summary, rows.Err()
}

// Clear removes every image record.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.execWithRetry(ctx, `DELETE FROM image_records`); err != nil {
		return fmt.Errorf("clear image records: %w", err)
	}
	return nil
}

func (s *Store) touch(ctx context.Context, id, assignment string, value any) error {
	timestamp := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := s.execWithRetry(
		ctx,
		`UPDATE image_records SET `+assignment+`, updated_at = ? WHERE id = ?`,
		value,
		timestamp,
		id,
	)
	if err != nil {
		return fmt.Errorf("update image record: %w", err)
	}
	return nil
}

func scanImage(scanner interface{ Scan(dest ...any) error }) (*Image, error) {
	var (
		id           string
		filename     string
		sourcePath   sql.NullString
		roleStr      string
		statusStr    string
		errorMessage sql.NullString
		confidence   sql.NullFloat64
		identityJSON sql.NullString
		createdRaw   string
		updatedRaw   string
	)
	if err := scanner.Scan(
		&id,
		&filename,
		&sourcePath,
		&roleStr,
		&statusStr,
		&errorMessage,
		&confidence,
		&identityJSON,
		&createdRaw,
		&updatedRaw,
	); err != nil {
		return nil, err
	}

	img := &Image{
		ID:            id,
		Filename:      filename,
		SourcePath:    sourcePath.String,
		Role:          classify.Role(roleStr),
		Status:        Status(statusStr),
		ErrorMessage:  errorMessage.String,
		OCRConfidence: confidence.Float64,
	}
	if identityJSON.Valid && identityJSON.String != "" {
		var record extract.IdentityRecord
		if err := json.Unmarshal([]byte(identityJSON.String), &record); err != nil {
			return nil, fmt.Errorf("unmarshal identity: %w", err)
		}
		img.Identity = &record
	}
	img.CreatedAt = parseTimestamp(createdRaw)
	img.UpdatedAt = parseTimestamp(updatedRaw)
	return img, nil
}

func parseTimestamp(raw string) time.Time {
	ts, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}
	}
	return ts
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
