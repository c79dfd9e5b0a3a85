package sqlite

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/grafana/grafana-sub060/internal/domain/entity"
	"github.com/grafana/grafana-sub060/internal/domain/repository"
	"github.com/grafana/grafana-sub060/internal/logging"
)

type dashboardRepo struct {
	db  *sql.DB
	now func() time.Time
}

// NewDashboardRepository creates a new SQLite-backed dashboard repository.
func NewDashboardRepository(db *sql.DB) repository.DashboardRepository {
	return &dashboardRepo{db: db, now: time.Now}
}

func (r *dashboardRepo) GetByUID(ctx context.Context, uid string) (*entity.DashboardDTO, error) {
	var (
		data             string
		folderUID        string
		version          int
		created, updated int64
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT data, folder_uid, version, created, updated FROM dashboards WHERE uid = ?`, uid,
	).Scan(&data, &folderUID, &version, &created, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("dashboard %s: %w", uid, entity.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	var doc entity.Dashboard
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return nil, fmt.Errorf("failed to decode dashboard %s: %w", uid, err)
	}
	doc.UID = uid
	doc.Version = version

	slug := entity.Slugify(doc.Title)
	return &entity.DashboardDTO{
		Dashboard: &doc,
		Meta: entity.DashboardMeta{
			Slug:      slug,
			URL:       "/d/" + uid + "/" + slug,
			FolderUID: folderUID,
			CanSave:   true,
			CanEdit:   true,
			CanShare:  true,
			Created:   formatUnix(created),
			Updated:   formatUnix(updated),
			Version:   version,
		},
	}, nil
}

func (r *dashboardRepo) Save(ctx context.Context, doc *entity.Dashboard, opts entity.SaveOptions) (*entity.SaveAck, error) {
	if doc == nil {
		return nil, fmt.Errorf("cannot save nil dashboard")
	}
	log := logging.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	uid := doc.UID
	if uid == "" {
		uid = newUID()
	}

	stored := 0
	err = tx.QueryRowContext(ctx, `SELECT version FROM dashboards WHERE uid = ?`, uid).Scan(&stored)
	exists := err == nil
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if exists && !opts.Overwrite && doc.Version != stored {
		return nil, fmt.Errorf("dashboard %s is at version %d, save is based on %d: %w",
			uid, stored, doc.Version, entity.ErrVersionConflict)
	}

	version := stored + 1
	saved := *doc
	saved.UID = uid
	saved.Version = version
	saved.ID = 0
	data, err := json.Marshal(&saved)
	if err != nil {
		return nil, fmt.Errorf("failed to encode dashboard: %w", err)
	}
	tags, err := json.Marshal(nonNilTags(doc.Tags))
	if err != nil {
		return nil, err
	}

	now := r.now().Unix()
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO dashboards (uid, title, tags, folder_uid, version, data, created, updated)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(uid) DO UPDATE SET
			title = excluded.title,
			tags = excluded.tags,
			folder_uid = excluded.folder_uid,
			version = excluded.version,
			data = excluded.data,
			updated = excluded.updated`,
		uid, doc.Title, string(tags), opts.FolderUID, version, string(data), now, now,
	); err != nil {
		return nil, fmt.Errorf("failed to upsert dashboard: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO dashboard_versions (uid, version, message, data, created) VALUES (?, ?, ?, ?, ?)`,
		uid, version, opts.Message, string(data), now,
	); err != nil {
		return nil, fmt.Errorf("failed to record dashboard version: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit dashboard save: %w", err)
	}

	log.Debug().Str("uid", uid).Int("version", version).Msg("dashboard stored")
	return &entity.SaveAck{UID: uid, Version: version, Status: "success"}, nil
}

func (r *dashboardRepo) List(ctx context.Context, query string, limit int) ([]*entity.DashboardSummary, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT uid, title, tags, folder_uid, version, updated FROM dashboards
		WHERE title LIKE ? ESCAPE '\'
		ORDER BY title COLLATE NOCASE, uid
		LIMIT ?`,
		"%"+escapeLike(query)+"%", limit,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	list := []*entity.DashboardSummary{}
	for rows.Next() {
		var (
			s       entity.DashboardSummary
			tags    string
			updated int64
		)
		if err := rows.Scan(&s.UID, &s.Title, &tags, &s.FolderUID, &s.Version, &updated); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(tags), &s.Tags); err != nil {
			return nil, fmt.Errorf("failed to decode tags of %s: %w", s.UID, err)
		}
		s.Updated = time.Unix(updated, 0).UTC()
		list = append(list, &s)
	}
	return list, rows.Err()
}

func (r *dashboardRepo) Versions(ctx context.Context, uid string) ([]*entity.DashboardVersion, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT version, message, created FROM dashboard_versions WHERE uid = ? ORDER BY version DESC`, uid)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var versions []*entity.DashboardVersion
	for rows.Next() {
		v := entity.DashboardVersion{UID: uid}
		var created int64
		if err := rows.Scan(&v.Version, &v.Message, &created); err != nil {
			return nil, err
		}
		v.Created = time.Unix(created, 0).UTC()
		versions = append(versions, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(versions) == 0 {
		return nil, fmt.Errorf("dashboard %s: %w", uid, entity.ErrNotFound)
	}
	return versions, nil
}

func (r *dashboardRepo) Delete(ctx context.Context, uid string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM dashboards WHERE uid = ?`, uid)
	if err != nil {
		return err
	}
	return expectAffected(res, "dashboard "+uid)
}

// newUID returns a 14 character random dashboard uid.
func newUID() string {
	b := make([]byte, 7)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func nonNilTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func formatUnix(sec int64) string {
	return time.Unix(sec, 0).UTC().Format(time.RFC3339)
}

func expectAffected(res sql.Result, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", what, entity.ErrNotFound)
	}
	return nil
}
