package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"watchdog/internal/watch/models"
	"watchdog/pkg/platform/sentinel"
)

// PostgresStore reads watch lists and domains from PostgreSQL. Writes belong
// to the ingestion side; this store only loads what triggers need.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) FindWatchListByToken(ctx context.Context, token string) (*models.WatchList, error) {
	query := `
		SELECT w.token, u.id, u.email
		FROM watch_lists w
		JOIN users u ON u.id = w.user_id
		WHERE w.token = $1
	`
	var (
		wl     models.WatchList
		userID uuid.UUID
	)
	err := s.db.QueryRowContext(ctx, query, token).Scan(&wl.Token, &userID, &wl.Owner.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find watch list: %w", err)
	}
	wl.Owner.ID = userID

	rows, err := s.db.QueryContext(ctx,
		`SELECT event, action FROM watch_list_triggers WHERE watch_list_token = $1 ORDER BY event, action`, token)
	if err != nil {
		return nil, fmt.Errorf("find watch list triggers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var event, action string
		if err := rows.Scan(&event, &action); err != nil {
			return nil, fmt.Errorf("scan watch list trigger: %w", err)
		}
		wl.Triggers = append(wl.Triggers, models.WatchListTrigger{
			Event:  models.EventAction(event),
			Action: models.TriggerAction(action),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate watch list triggers: %w", err)
	}
	return &wl, nil
}

func (s *PostgresStore) FindDomainByLDHName(ctx context.Context, ldhName string) (*models.Domain, error) {
	var (
		deleted bool
		status  pq.StringArray
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT deleted, status FROM domains WHERE ldh_name = $1`, ldhName).Scan(&deleted, &status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find domain: %w", err)
	}

	events, err := s.events(ctx, ldhName)
	if err != nil {
		return nil, err
	}
	entities, err := s.entities(ctx, ldhName)
	if err != nil {
		return nil, err
	}
	return models.NewDomain(ldhName, deleted, status, events, entities), nil
}

// events skips actions outside the known set; no trigger can match them.
func (s *PostgresStore) events(ctx context.Context, ldhName string) ([]models.DomainEvent, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT action, date FROM domain_events WHERE ldh_name = $1 ORDER BY date`, ldhName)
	if err != nil {
		return nil, fmt.Errorf("find domain events: %w", err)
	}
	defer rows.Close()

	var events []models.DomainEvent
	for rows.Next() {
		var (
			raw  string
			date time.Time
		)
		if err := rows.Scan(&raw, &date); err != nil {
			return nil, fmt.Errorf("scan domain event: %w", err)
		}
		action, err := models.ParseEventAction(raw)
		if err != nil {
			continue
		}
		events = append(events, models.DomainEvent{Action: action, Date: date})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate domain events: %w", err)
	}
	return events, nil
}

func (s *PostgresStore) entities(ctx context.Context, ldhName string) ([]models.DomainEntity, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT handle, roles FROM domain_entities WHERE ldh_name = $1 ORDER BY handle`, ldhName)
	if err != nil {
		return nil, fmt.Errorf("find domain entities: %w", err)
	}
	defer rows.Close()

	var entities []models.DomainEntity
	for rows.Next() {
		var (
			handle string
			roles  pq.StringArray
		)
		if err := rows.Scan(&handle, &roles); err != nil {
			return nil, fmt.Errorf("scan domain entity: %w", err)
		}
		entity := models.DomainEntity{Handle: handle}
		for _, r := range roles {
			entity.Roles = append(entity.Roles, models.EntityRole(r))
		}
		entities = append(entities, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate domain entities: %w", err)
	}
	return entities, nil
}
