//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"watchdog/internal/watch/models"
	"watchdog/internal/watch/store"
	"watchdog/pkg/platform/sentinel"
	"watchdog/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *store.PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.postgres = containers.GetManager().GetPostgres(s.T())
	s.store = store.NewPostgres(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateModuleTables(context.Background()))
}

func (s *PostgresStoreSuite) TestFindWatchListByToken() {
	ctx := context.Background()
	userID := uuid.New()
	_, err := s.postgres.Exec(ctx, `INSERT INTO users (id, email) VALUES ($1, $2)`, userID, "ada@example.org")
	s.Require().NoError(err)
	_, err = s.postgres.Exec(ctx, `INSERT INTO watch_lists (token, user_id) VALUES ($1, $2)`, "wl-1", userID)
	s.Require().NoError(err)
	_, err = s.postgres.Exec(ctx, `
		INSERT INTO watch_list_triggers (watch_list_token, event, action)
		VALUES ('wl-1', 'expiration', 'email'), ('wl-1', 'deletion', 'email')
	`)
	s.Require().NoError(err)

	wl, err := s.store.FindWatchListByToken(ctx, "wl-1")
	s.Require().NoError(err)

	s.Equal(userID, wl.Owner.ID)
	s.Equal("ada@example.org", wl.Owner.Email)
	s.Equal([]models.WatchListTrigger{
		{Event: models.EventDeletion, Action: models.SendEmail},
		{Event: models.EventExpiration, Action: models.SendEmail},
	}, wl.Triggers)

	_, err = s.store.FindWatchListByToken(ctx, "missing")
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestFindDomainByLDHName() {
	ctx := context.Background()
	_, err := s.postgres.Exec(ctx,
		`INSERT INTO domains (ldh_name, deleted, status) VALUES ($1, true, ARRAY['pending delete','redemption period'])`,
		"example.com")
	s.Require().NoError(err)
	_, err = s.postgres.Exec(ctx, `
		INSERT INTO domain_events (ldh_name, action, date) VALUES
			('example.com', 'expiration', '2024-06-01T00:00:00Z'),
			('example.com', 'registration', '2014-06-01T00:00:00Z'),
			('example.com', 'locked', '2020-06-01T00:00:00Z')
	`)
	s.Require().NoError(err)
	_, err = s.postgres.Exec(ctx,
		`INSERT INTO domain_entities (ldh_name, handle, roles) VALUES ('example.com', 'REG-1', ARRAY['registrant','administrative'])`)
	s.Require().NoError(err)

	d, err := s.store.FindDomainByLDHName(ctx, "example.com")
	s.Require().NoError(err)

	s.True(d.Deleted)
	s.True(d.HasStatus("redemption period"))
	s.Require().Len(d.Events, 2)
	s.Equal(models.EventRegistration, d.Events[0].Action)
	s.True(d.Events[1].Date.Equal(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)))
	s.Len(d.EntitiesWithRole(models.RoleRegistrant), 1)

	_, err = s.store.FindDomainByLDHName(ctx, "missing.example")
	s.ErrorIs(err, sentinel.ErrNotFound)
}
