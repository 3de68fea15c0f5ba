package trigger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"watchdog/internal/watch/models"
	"watchdog/pkg/testutil"
)

var (
	jan1 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	jun1 = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
)

func TestEvaluate(t *testing.T) {
	testutil.Given(t, "events at and after the cutoff", func(t *testing.T) {
		domain := models.NewDomain("example.com", false, nil, []models.DomainEvent{
			{Action: models.EventExpiration, Date: jun1},
			{Action: models.EventLastChanged, Date: jan1},
		}, nil)
		watchList := &models.WatchList{
			Token: "wl-1",
			Triggers: []models.WatchListTrigger{
				{Event: models.EventLastChanged, Action: models.SendEmail},
				{Event: models.EventExpiration, Action: models.SendEmail},
			},
		}

		testutil.When(t, "the cutoff equals the older event date", func(t *testing.T) {
			matches := Evaluate(domain, watchList, jan1)

			testutil.Then(t, "only the strictly later event fires", func(t *testing.T) {
				require.Len(t, matches, 1)
				assert.Equal(t, models.EventExpiration, matches[0].Event.Action)
				assert.Equal(t, jun1, matches[0].Event.Date)
			})
		})

		testutil.When(t, "the cutoff equals the newest event date", func(t *testing.T) {
			testutil.Then(t, "nothing fires", func(t *testing.T) {
				assert.Empty(t, Evaluate(domain, watchList, jun1))
			})
		})

		testutil.When(t, "the cutoff precedes every event", func(t *testing.T) {
			matches := Evaluate(domain, watchList, jan1.Add(-time.Second))

			testutil.Then(t, "matches follow domain event order", func(t *testing.T) {
				require.Len(t, matches, 2)
				assert.Equal(t, models.EventLastChanged, matches[0].Event.Action)
				assert.Equal(t, models.EventExpiration, matches[1].Event.Action)
			})
		})
	})

	testutil.Given(t, "an event watched by several triggers", func(t *testing.T) {
		domain := models.NewDomain("example.com", true, nil, []models.DomainEvent{
			{Action: models.EventDeletion, Date: jun1},
			{Action: models.EventTransfer, Date: jun1},
		}, nil)
		watchList := &models.WatchList{
			Triggers: []models.WatchListTrigger{
				{Event: models.EventDeletion, Action: models.SendEmail},
				{Event: models.EventDeletion, Action: "webhook"},
			},
		}

		testutil.Then(t, "every matching trigger fires and unwatched events are ignored", func(t *testing.T) {
			matches := Evaluate(domain, watchList, jan1)
			require.Len(t, matches, 2)
			assert.Equal(t, models.SendEmail, matches[0].Trigger.Action)
			assert.Equal(t, models.TriggerAction("webhook"), matches[1].Trigger.Action)
		})
	})

	t.Run("nil inputs", func(t *testing.T) {
		assert.Nil(t, Evaluate(nil, &models.WatchList{}, jan1))
		assert.Nil(t, Evaluate(&models.Domain{}, nil, jan1))
	})
}
