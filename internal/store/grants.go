package store

import (
	"database/sql"
	"time"

	"github.com/chatmux-tools/chatmux/internal/domain"
	"github.com/chatmux-tools/chatmux/internal/log"
)

// Grant records a permission for a persona within a scenario.
// Granting an already-held permission is a no-op.
func (s *Store) Grant(scenario, persona, permission string) error {
	_, err := s.db.Exec(
		`INSERT INTO grants (scenario, persona, permission, granted_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(scenario, persona, permission) DO NOTHING`,
		scenario,
		persona,
		permission,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		log.Error("store: grant failed: %v (scenario=%s, persona=%s)", err, scenario, persona)
	}
	return err
}

// Revoke removes a grant and reports whether it existed.
func (s *Store) Revoke(scenario, persona, permission string) (bool, error) {
	result, err := s.db.Exec(
		`DELETE FROM grants WHERE scenario = ? AND persona = ? AND permission = ?`,
		scenario, persona, permission,
	)
	if err != nil {
		log.Error("store: revoke failed: %v (scenario=%s, persona=%s)", err, scenario, persona)
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// Grants returns every grant for a scenario, oldest first.
func (s *Store) Grants(scenario string) ([]domain.Grant, error) {
	rows, err := s.db.Query(
		`SELECT persona, permission, granted_at
		 FROM grants
		 WHERE scenario = ?
		 ORDER BY granted_at ASC, persona ASC, permission ASC`,
		scenario,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Grant

	for rows.Next() {
		var (
			g  domain.Grant
			ts string
		)
		if err := rows.Scan(&g.Persona, &g.Permission, &ts); err != nil {
			return nil, err
		}

		t, err := time.Parse(time.RFC3339, ts)
		if err != nil {
			return nil, err
		}

		g.Scenario = scenario
		g.GrantedAt = t
		out = append(out, g)
	}

	return out, rows.Err()
}

// HasGrant reports whether one specific grant exists.
func (s *Store) HasGrant(scenario, persona, permission string) (bool, error) {
	var one int
	err := s.db.QueryRow(
		`SELECT 1 FROM grants
		 WHERE scenario = ? AND persona = ? AND permission = ?`,
		scenario, persona, permission,
	).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Permissions returns the granted permission keys for one persona.
func (s *Store) Permissions(scenario, persona string) ([]string, error) {
	rows, err := s.db.Query(
		`SELECT permission
		 FROM grants
		 WHERE scenario = ? AND persona = ?
		 ORDER BY permission ASC`,
		scenario, persona,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string

	for rows.Next() {
		var permission string
		if err := rows.Scan(&permission); err != nil {
			return nil, err
		}
		out = append(out, permission)
	}

	return out, rows.Err()
}

// Verify Store implements domain.GrantStore
var _ domain.GrantStore = (*Store)(nil)
