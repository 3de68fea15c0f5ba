// Package trigger turns domain change notifications into watch list actions.
package trigger

import (
	"time"

	"watchdog/internal/watch/models"
)

// Match pairs an event that happened after the cutoff with one trigger of the
// watch list listening for it.
type Match struct {
	Event   models.DomainEvent
	Trigger models.WatchListTrigger
}

// Evaluate selects the domain events strictly after cutoff and returns every
// trigger whose event kind matches, grouped by event in domain event order.
// An event dated exactly at cutoff was already seen by the previous update.
func Evaluate(domain *models.Domain, watchList *models.WatchList, cutoff time.Time) []Match {
	if domain == nil || watchList == nil {
		return nil
	}

	var matches []Match
	for _, event := range domain.Events {
		if !event.Date.After(cutoff) {
			continue
		}
		for _, t := range watchList.Triggers {
			if t.Event == event.Action {
				matches = append(matches, Match{Event: event, Trigger: t})
			}
		}
	}
	return matches
}
