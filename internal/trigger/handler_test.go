package trigger

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks WatchListRepository,DomainRepository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"watchdog/internal/notification/email"
	emailmocks "watchdog/internal/notification/email/mocks"
	"watchdog/internal/trigger/mocks"
	"watchdog/internal/watch/models"
	"watchdog/internal/watch/store"
	"watchdog/pkg/platform/sentinel"
)

type HandlerSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	watchLists *mocks.MockWatchListRepository
	domains    *mocks.MockDomainRepository
	sender     *emailmocks.MockSender
	handler    *Handler
	owner      models.User
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.watchLists = mocks.NewMockWatchListRepository(s.ctrl)
	s.domains = mocks.NewMockDomainRepository(s.ctrl)
	s.sender = emailmocks.NewMockSender(s.ctrl)
	s.owner = models.User{ID: uuid.New(), Email: "owner@example.org"}

	dispatcher, err := NewDispatcher(s.sender)
	s.Require().NoError(err)
	s.handler, err = NewHandler(s.watchLists, s.domains, dispatcher)
	s.Require().NoError(err)
}

func (s *HandlerSuite) watchList(triggers ...models.WatchListTrigger) *models.WatchList {
	return &models.WatchList{Token: "wl-token", Owner: s.owner, Triggers: triggers}
}

func (s *HandlerSuite) cmd() ProcessDomainTrigger {
	return ProcessDomainTrigger{WatchListToken: "wl-token", LDHName: "example.com", UpdatedAt: jan1}
}

func (s *HandlerSuite) TestSendsOneEmailPerMatch() {
	ctx := context.Background()
	domain := models.NewDomain("example.com", false, nil, []models.DomainEvent{
		{Action: models.EventLastChanged, Date: jan1},
		{Action: models.EventExpiration, Date: jun1},
	}, nil)

	s.watchLists.EXPECT().FindWatchListByToken(ctx, "wl-token").
		Return(s.watchList(models.WatchListTrigger{Event: models.EventExpiration, Action: models.SendEmail}), nil)
	s.domains.EXPECT().FindDomainByLDHName(ctx, "example.com").Return(domain, nil)

	var sent *email.Message
	s.sender.EXPECT().Send(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, msg *email.Message) error {
		sent = msg
		return nil
	}).Times(1)

	s.Require().NoError(s.handler.Handle(ctx, s.cmd()))

	s.Require().NotNil(sent)
	s.Equal("owner@example.org", sent.To)
	s.Equal("A domain name has been changed", sent.Subject)
	s.Equal("domain_updated", sent.Template)
	s.Equal("en", sent.Locale)
	s.Equal(email.PriorityHigh, sent.Priority)
	s.Equal(models.DomainEvent{Action: models.EventExpiration, Date: jun1}, sent.Context["Event"])
	s.Equal("example.com", sent.Context["Domain"])
}

func (s *HandlerSuite) TestEmailCarriesRegistrants() {
	ctx := context.Background()
	domain := models.NewDomain("example.com", true, []string{models.StatusRedemptionPeriod}, []models.DomainEvent{
		{Action: models.EventDeletion, Date: jun1},
	}, []models.DomainEntity{
		{Handle: "REG-1", Roles: []models.EntityRole{models.RoleRegistrant}},
		{Handle: "TECH-1", Roles: []models.EntityRole{models.RoleTechnical}},
	})

	s.watchLists.EXPECT().FindWatchListByToken(ctx, "wl-token").
		Return(s.watchList(models.WatchListTrigger{Event: models.EventDeletion, Action: models.SendEmail}), nil)
	s.domains.EXPECT().FindDomainByLDHName(ctx, "example.com").Return(domain, nil)

	var sent *email.Message
	s.sender.EXPECT().Send(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, msg *email.Message) error {
		sent = msg
		return nil
	})

	s.Require().NoError(s.handler.Handle(ctx, s.cmd()))

	s.Require().NotNil(sent)
	s.Equal([]string{"REG-1"}, sent.Context["Registrants"])
	s.Equal(true, sent.Context["Redemption"])
}

func (s *HandlerSuite) TestUnknownActionIsNoOp() {
	ctx := context.Background()
	domain := models.NewDomain("example.com", false, nil, []models.DomainEvent{
		{Action: models.EventExpiration, Date: jun1},
	}, nil)

	s.watchLists.EXPECT().FindWatchListByToken(ctx, "wl-token").
		Return(s.watchList(models.WatchListTrigger{Event: models.EventExpiration, Action: "chat"}), nil)
	s.domains.EXPECT().FindDomainByLDHName(ctx, "example.com").Return(domain, nil)
	s.sender.EXPECT().Send(gomock.Any(), gomock.Any()).Times(0)

	s.NoError(s.handler.Handle(ctx, s.cmd()))
}

func (s *HandlerSuite) TestStopsAtFirstDeliveryFailure() {
	ctx := context.Background()
	domain := models.NewDomain("example.com", false, nil, []models.DomainEvent{
		{Action: models.EventTransfer, Date: jun1},
		{Action: models.EventExpiration, Date: jun1.Add(time.Hour)},
	}, nil)
	smtpDown := errors.New("connection refused")

	s.watchLists.EXPECT().FindWatchListByToken(ctx, "wl-token").Return(s.watchList(
		models.WatchListTrigger{Event: models.EventTransfer, Action: models.SendEmail},
		models.WatchListTrigger{Event: models.EventExpiration, Action: models.SendEmail},
	), nil)
	s.domains.EXPECT().FindDomainByLDHName(ctx, "example.com").Return(domain, nil)
	s.sender.EXPECT().Send(ctx, gomock.Any()).Return(smtpDown).Times(1)

	err := s.handler.Handle(ctx, s.cmd())

	var deliveryErr *DeliveryError
	s.Require().ErrorAs(err, &deliveryErr)
	s.Equal(models.SendEmail, deliveryErr.Action)
	s.Equal("example.com", deliveryErr.LDHName)
	s.ErrorIs(err, smtpDown)
}

func (s *HandlerSuite) TestMissingWatchListIsSkipped() {
	ctx := context.Background()
	s.watchLists.EXPECT().FindWatchListByToken(ctx, "wl-token").Return(nil, sentinel.ErrNotFound)

	err := s.handler.Handle(ctx, s.cmd())

	s.ErrorIs(err, ErrSkipped)
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *HandlerSuite) TestMissingDomainIsSkipped() {
	ctx := context.Background()
	s.watchLists.EXPECT().FindWatchListByToken(ctx, "wl-token").Return(s.watchList(), nil)
	s.domains.EXPECT().FindDomainByLDHName(ctx, "example.com").Return(nil, sentinel.ErrNotFound)

	s.ErrorIs(s.handler.Handle(ctx, s.cmd()), ErrSkipped)
}

func (s *HandlerSuite) TestRepositoryFailureIsRetryable() {
	ctx := context.Background()
	s.watchLists.EXPECT().FindWatchListByToken(ctx, "wl-token").Return(nil, sentinel.ErrUnavailable)

	err := s.handler.Handle(ctx, s.cmd())

	s.Require().Error(err)
	s.NotErrorIs(err, ErrSkipped)
}

func TestHandlerEndToEnd(t *testing.T) {
	ctx := context.Background()
	repo := store.NewInMemoryStore()
	owner := models.User{ID: uuid.New(), Email: "jane@example.org"}

	require.NoError(t, repo.SaveWatchList(ctx, &models.WatchList{
		Token:    "wl-e2e",
		Owner:    owner,
		Triggers: []models.WatchListTrigger{{Event: models.EventExpiration, Action: models.SendEmail}},
	}))
	require.NoError(t, repo.SaveDomain(ctx, models.NewDomain("example.com", false, nil, []models.DomainEvent{
		{Action: models.EventLastChanged, Date: jan1},
		{Action: models.EventExpiration, Date: jun1},
	}, nil)))

	ctrl := gomock.NewController(t)
	sender := emailmocks.NewMockSender(ctrl)
	var recipients []string
	sender.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg *email.Message) error {
		recipients = append(recipients, msg.To)
		return nil
	}).Times(1)

	dispatcher, err := NewDispatcher(sender)
	require.NoError(t, err)
	handler, err := NewHandler(repo, repo, dispatcher)
	require.NoError(t, err)

	messages := NewMessageHandler(handler, nil)
	err = messages.HandleMessage(ctx, []byte("wl-e2e"),
		[]byte(`{"watchListToken":"wl-e2e","ldhName":"Example.com","updatedAt":"2024-01-01T00:00:00Z"}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"jane@example.org"}, recipients)
}

func TestNewHandlerValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	dispatcher, err := NewDispatcher(emailmocks.NewMockSender(ctrl))
	require.NoError(t, err)

	_, err = NewHandler(nil, mocks.NewMockDomainRepository(ctrl), dispatcher)
	assert.Error(t, err)
	_, err = NewHandler(mocks.NewMockWatchListRepository(ctrl), mocks.NewMockDomainRepository(ctrl), nil)
	assert.Error(t, err)
	_, err = NewDispatcher(nil)
	assert.Error(t, err)
}
