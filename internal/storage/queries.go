package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/arasv/runwrapped/internal/model"
)

// StoredUpload is one row of the uploads table.
type StoredUpload struct {
	Hash        string
	Username    string
	EmailHash   string
	TotalGames  int
	CorpGames   int
	RunnerGames int
	Coverage    float64
	ImportedAt  string
}

// UploadExists returns true if an upload with the given hash is already stored.
func (db *DB) UploadExists(hash string) (bool, error) {
	var count int
	err := db.conn.QueryRow("SELECT COUNT(1) FROM uploads WHERE hash = ?", hash).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// InsertUpload inserts an upload record. Uses INSERT OR REPLACE for idempotency.
func (db *DB) InsertUpload(u StoredUpload) error {
	_, err := db.conn.Exec(`
		INSERT OR REPLACE INTO uploads(hash, username, email_hash, total_games, corp_games, runner_games, coverage, imported_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		u.Hash, u.Username, u.EmailHash, u.TotalGames, u.CorpGames, u.RunnerGames, u.Coverage, u.ImportedAt,
	)
	return err
}

// InsertGames bulk-inserts the normalized games of one upload in a transaction.
func (db *DB) InsertGames(uploadHash string, games []model.GameRecord) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO games(
			upload_hash, seq, winner,
			corp_username, corp_identity, corp_email_hash,
			runner_username, runner_identity, runner_email_hash,
			started_at, completed_at, elapsed_minutes, format, turn_count, reason,
			runner_unique_accesses,
			corp_clicks_gained, corp_credits_gained, corp_credits_spent,
			corp_credits_from_clicks, corp_cards_drawn, corp_cards_drawn_from_clicks,
			corp_shuffles, corp_cards_played, corp_cards_accessed, corp_damage_done,
			corp_cards_rezzed,
			runner_clicks_gained, runner_credits_gained, runner_credits_spent,
			runner_credits_from_clicks, runner_cards_drawn, runner_cards_drawn_from_clicks,
			runner_shuffles, runner_cards_played, runner_cards_accessed, runner_damage_done,
			runner_runs_started, runner_tags_gained
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, g := range games {
		winner := sql.NullString{}
		if g.Winner != model.SideNone {
			winner = sql.NullString{String: g.Winner.String(), Valid: true}
		}
		_, err = stmt.Exec(
			uploadHash, i, winner,
			g.Corp.Username, g.Corp.Identity, g.Corp.EmailHash,
			g.Runner.Username, g.Runner.Identity, g.Runner.EmailHash,
			nullTime(g.StartedAt), nullTime(g.CompletedAt), nullFloat(g.ElapsedMinutes),
			g.Format, nullInt(g.TurnCount), g.Reason,
			nullInt(g.RunnerUniqueAccesses),
			nullFloat(g.CorpStats.ClicksGained), nullFloat(g.CorpStats.CreditsGained),
			nullFloat(g.CorpStats.CreditsSpent), nullFloat(g.CorpStats.CreditsFromClicks),
			nullFloat(g.CorpStats.CardsDrawn), nullFloat(g.CorpStats.CardsDrawnFromClicks),
			nullFloat(g.CorpStats.Shuffles), nullFloat(g.CorpStats.CardsPlayed),
			nullFloat(g.CorpStats.CardsAccessed), nullFloat(g.CorpStats.DamageDone),
			nullFloat(g.CorpStats.CardsRezzed),
			nullFloat(g.RunnerStats.ClicksGained), nullFloat(g.RunnerStats.CreditsGained),
			nullFloat(g.RunnerStats.CreditsSpent), nullFloat(g.RunnerStats.CreditsFromClicks),
			nullFloat(g.RunnerStats.CardsDrawn), nullFloat(g.RunnerStats.CardsDrawnFromClicks),
			nullFloat(g.RunnerStats.Shuffles), nullFloat(g.RunnerStats.CardsPlayed),
			nullFloat(g.RunnerStats.CardsAccessed), nullFloat(g.RunnerStats.DamageDone),
			nullFloat(g.RunnerStats.RunsStarted), nullFloat(g.RunnerStats.TagsGained),
		)
		if err != nil {
			return fmt.Errorf("insert game %d: %w", i, err)
		}
	}
	return tx.Commit()
}

// ListUploads returns all stored uploads, newest import first.
func (db *DB) ListUploads() ([]StoredUpload, error) {
	rows, err := db.conn.Query(`
		SELECT hash, username, email_hash, total_games, corp_games, runner_games, coverage, imported_at
		FROM uploads ORDER BY imported_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []StoredUpload
	for rows.Next() {
		var u StoredUpload
		if err := rows.Scan(&u.Hash, &u.Username, &u.EmailHash, &u.TotalGames,
			&u.CorpGames, &u.RunnerGames, &u.Coverage, &u.ImportedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// GetUploadByPrefix finds a stored upload by hash prefix. Returns nil when
// no upload matches; errors when the prefix is ambiguous.
func (db *DB) GetUploadByPrefix(prefix string) (*StoredUpload, error) {
	rows, err := db.conn.Query(`
		SELECT hash, username, email_hash, total_games, corp_games, runner_games, coverage, imported_at
		FROM uploads WHERE hash LIKE ? || '%'`, prefix)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []StoredUpload
	for rows.Next() {
		var u StoredUpload
		if err := rows.Scan(&u.Hash, &u.Username, &u.EmailHash, &u.TotalGames,
			&u.CorpGames, &u.RunnerGames, &u.Coverage, &u.ImportedAt); err != nil {
			return nil, err
		}
		matches = append(matches, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	switch len(matches) {
	case 0:
		return nil, nil
	case 1:
		return &matches[0], nil
	default:
		return nil, fmt.Errorf("hash prefix %q is ambiguous (%d matches)", prefix, len(matches))
	}
}

// LoadGames reloads the normalized games of one upload in original order.
func (db *DB) LoadGames(uploadHash string) ([]model.GameRecord, error) {
	rows, err := db.conn.Query(`
		SELECT winner,
			corp_username, corp_identity, corp_email_hash,
			runner_username, runner_identity, runner_email_hash,
			started_at, completed_at, elapsed_minutes, format, turn_count, reason,
			runner_unique_accesses,
			corp_clicks_gained, corp_credits_gained, corp_credits_spent,
			corp_credits_from_clicks, corp_cards_drawn, corp_cards_drawn_from_clicks,
			corp_shuffles, corp_cards_played, corp_cards_accessed, corp_damage_done,
			corp_cards_rezzed,
			runner_clicks_gained, runner_credits_gained, runner_credits_spent,
			runner_credits_from_clicks, runner_cards_drawn, runner_cards_drawn_from_clicks,
			runner_shuffles, runner_cards_played, runner_cards_accessed, runner_damage_done,
			runner_runs_started, runner_tags_gained
		FROM games WHERE upload_hash = ? ORDER BY seq`, uploadHash)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.GameRecord
	for rows.Next() {
		var (
			g          model.GameRecord
			winner     sql.NullString
			started    sql.NullString
			completed  sql.NullString
			elapsed    sql.NullFloat64
			turns      sql.NullInt64
			accesses   sql.NullInt64
			corpVals   [11]sql.NullFloat64
			runnerVals [12]sql.NullFloat64
		)
		err := rows.Scan(&winner,
			&g.Corp.Username, &g.Corp.Identity, &g.Corp.EmailHash,
			&g.Runner.Username, &g.Runner.Identity, &g.Runner.EmailHash,
			&started, &completed, &elapsed, &g.Format, &turns, &g.Reason,
			&accesses,
			&corpVals[0], &corpVals[1], &corpVals[2], &corpVals[3], &corpVals[4],
			&corpVals[5], &corpVals[6], &corpVals[7], &corpVals[8], &corpVals[9],
			&corpVals[10],
			&runnerVals[0], &runnerVals[1], &runnerVals[2], &runnerVals[3], &runnerVals[4],
			&runnerVals[5], &runnerVals[6], &runnerVals[7], &runnerVals[8], &runnerVals[9],
			&runnerVals[10], &runnerVals[11],
		)
		if err != nil {
			return nil, err
		}

		if winner.Valid {
			switch winner.String {
			case "corp":
				g.Winner = model.SideCorp
			case "runner":
				g.Winner = model.SideRunner
			}
		}
		g.StartedAt = parseStoredTime(started)
		g.CompletedAt = parseStoredTime(completed)
		g.ElapsedMinutes = floatPtr(elapsed)
		g.TurnCount = intPtr(turns)
		g.RunnerUniqueAccesses = intPtr(accesses)

		assignSide(&g.CorpStats.SideStats, corpVals[:10])
		g.CorpStats.CardsRezzed = floatPtr(corpVals[10])
		assignSide(&g.RunnerStats.SideStats, runnerVals[:10])
		g.RunnerStats.RunsStarted = floatPtr(runnerVals[10])
		g.RunnerStats.TagsGained = floatPtr(runnerVals[11])

		out = append(out, g)
	}
	return out, rows.Err()
}

// DeleteUpload removes an upload and its games.
func (db *DB) DeleteUpload(hash string) error {
	_, err := db.conn.Exec("DELETE FROM games WHERE upload_hash = ?", hash)
	if err != nil {
		return err
	}
	_, err = db.conn.Exec("DELETE FROM uploads WHERE hash = ?", hash)
	return err
}

func assignSide(dst *model.SideStats, vals []sql.NullFloat64) {
	dst.ClicksGained = floatPtr(vals[0])
	dst.CreditsGained = floatPtr(vals[1])
	dst.CreditsSpent = floatPtr(vals[2])
	dst.CreditsFromClicks = floatPtr(vals[3])
	dst.CardsDrawn = floatPtr(vals[4])
	dst.CardsDrawnFromClicks = floatPtr(vals[5])
	dst.Shuffles = floatPtr(vals[6])
	dst.CardsPlayed = floatPtr(vals[7])
	dst.CardsAccessed = floatPtr(vals[8])
	dst.DamageDone = floatPtr(vals[9])
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func nullTime(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: t.UTC().Format(time.RFC3339Nano), Valid: true}
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}

func parseStoredTime(v sql.NullString) *time.Time {
	if !v.Valid {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, v.String)
	if err != nil {
		return nil
	}
	return &t
}
