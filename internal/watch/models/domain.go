package models

import (
	"fmt"
	"slices"
	"sort"
	"time"
)

// EventAction is an RDAP event action kind.
type EventAction string

const (
	EventRegistration   EventAction = "registration"
	EventReregistration EventAction = "reregistration"
	EventTransfer       EventAction = "transfer"
	EventLastChanged    EventAction = "last changed"
	EventExpiration     EventAction = "expiration"
	EventDeletion       EventAction = "deletion"
)

var eventActions = []EventAction{
	EventRegistration,
	EventReregistration,
	EventTransfer,
	EventLastChanged,
	EventExpiration,
	EventDeletion,
}

// ParseEventAction validates a raw RDAP event action.
func ParseEventAction(raw string) (EventAction, error) {
	action := EventAction(raw)
	if !slices.Contains(eventActions, action) {
		return "", fmt.Errorf("unknown event action %q", raw)
	}
	return action, nil
}

// EntityRole is an RDAP entity role attached to a domain contact.
type EntityRole string

const (
	RoleRegistrant     EntityRole = "registrant"
	RoleAdministrative EntityRole = "administrative"
	RoleTechnical      EntityRole = "technical"
	RoleRegistrar      EntityRole = "registrar"
	RoleSponsor        EntityRole = "sponsor"
	RoleBilling        EntityRole = "billing"
	RoleAbuse          EntityRole = "abuse"
	RoleReseller       EntityRole = "reseller"
	RoleProxy          EntityRole = "proxy"
	RoleNotifications  EntityRole = "notifications"
	RoleNOC            EntityRole = "noc"
)

// StatusRedemptionPeriod is the RDAP status of a deleted name that the
// previous registrant can still restore.
const StatusRedemptionPeriod = "redemption period"

// DomainEvent is an immutable lifecycle event owned by a single Domain.
type DomainEvent struct {
	Action EventAction
	Date   time.Time
}

// DomainEntity links a contact handle to the roles it holds on a domain.
type DomainEntity struct {
	Handle string
	Roles  []EntityRole
}

// Domain is the watched state of a domain name as last ingested from RDAP.
// Deleted is true once the name no longer appears in the registry record,
// which is the precondition for attempting a registration order.
type Domain struct {
	LDHName     string
	Deleted     bool
	StatusCodes []string
	Events      []DomainEvent
	Entities    []DomainEntity
}

// NewDomain builds a Domain with its events ordered by date. Events are never
// reordered after construction.
func NewDomain(ldhName string, deleted bool, statusCodes []string, events []DomainEvent, entities []DomainEntity) *Domain {
	ordered := slices.Clone(events)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date.Before(ordered[j].Date)
	})
	return &Domain{
		LDHName:     ldhName,
		Deleted:     deleted,
		StatusCodes: slices.Clone(statusCodes),
		Events:      ordered,
		Entities:    slices.Clone(entities),
	}
}

// HasStatus reports whether the EPP status code is set on the domain.
func (d *Domain) HasStatus(code string) bool {
	return slices.Contains(d.StatusCodes, code)
}

// Handles lists the handles of the contacts holding the given role.
func (d *Domain) Handles(role EntityRole) []string {
	var handles []string
	for _, e := range d.EntitiesWithRole(role) {
		handles = append(handles, e.Handle)
	}
	return handles
}

// EntitiesWithRole returns the contacts holding the given role.
func (d *Domain) EntitiesWithRole(role EntityRole) []DomainEntity {
	var result []DomainEntity
	for _, e := range d.Entities {
		if slices.Contains(e.Roles, role) {
			result = append(result, e)
		}
	}
	return result
}
