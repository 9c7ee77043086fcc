// Package policy decides which actor may perform which action on which record.
//
// Grants are purely additive: an action is allowed only when at least one
// grant for the actor's role matches the action, the subject and, when the
// grant carries one, its condition evaluated against the concrete record.
// There are no deny rules; when nothing matches, access is denied.
package policy

import (
	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// Action is an operation an actor may perform on a subject.
type Action string

const (
	ActionRead   Action = "read"
	ActionView   Action = "view"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	// ActionManage matches every action.
	ActionManage Action = "manage"
)

// Subject is the type of record a grant applies to.
type Subject string

const (
	SubjectProduct          Subject = "Product"
	SubjectOrder            Subject = "Order"
	SubjectInvoice          Subject = "Invoice"
	SubjectUser             Subject = "User"
	SubjectCart             Subject = "Cart"
	SubjectDeliveryAddress  Subject = "DeliveryAddress"
	SubjectSettlementRecord Subject = "SettlementRecord"
	// SubjectAll matches every subject.
	SubjectAll Subject = "all"
)

// Fields are the attributes of a record that conditions are evaluated against.
type Fields struct {
	ID     uuid.UUID // Identity of the record itself.
	UserID uuid.UUID // Owning user of the record.
}

// Resource is a concrete record, or a provisional one for type-level and
// create checks where nothing is persisted yet.
type Resource struct {
	Subject Subject
	Fields  Fields
}

// Of returns a resource carrying only its subject.
func Of(subject Subject) Resource {
	return Resource{Subject: subject}
}

// Provisional returns a not-yet-persisted resource owned by ownerID.
func Provisional(subject Subject, ownerID uuid.UUID) Resource {
	return Resource{Subject: subject, Fields: Fields{UserID: ownerID}}
}

// OrderResource exposes an order to the policy engine.
func OrderResource(o *entity.Order) Resource {
	return Resource{Subject: SubjectOrder, Fields: Fields{ID: o.ID, UserID: o.UserID}}
}

// InvoiceResource exposes an invoice to the policy engine.
func InvoiceResource(inv *entity.Invoice) Resource {
	return Resource{Subject: SubjectInvoice, Fields: Fields{ID: inv.ID, UserID: inv.UserID}}
}

// Condition is a field-level predicate a grant may carry.
type Condition func(actor entity.Actor, fields Fields) bool

// Grant authorizes an action on a subject, optionally under a condition.
type Grant struct {
	Action    Action
	Subject   Subject
	Condition Condition // nil means unconditional
}

// Can is shorthand for an unconditional grant.
func Can(action Action, subject Subject) Grant {
	return Grant{Action: action, Subject: subject}
}

// CanWhen is shorthand for a conditional grant.
func CanWhen(action Action, subject Subject, cond Condition) Grant {
	return Grant{Action: action, Subject: subject, Condition: cond}
}

// OwnedByActor holds when the record belongs to the actor.
func OwnedByActor(actor entity.Actor, fields Fields) bool {
	return !actor.IsAnonymous() && fields.UserID == actor.ID
}

// IsActor holds when the record is the actor itself.
func IsActor(actor entity.Actor, fields Fields) bool {
	return !actor.IsAnonymous() && fields.ID == actor.ID
}

// Rules maps each role to its ordered list of grants.
type Rules map[entity.Role][]Grant

type grantKey struct {
	action  Action
	subject Subject
}

// table is the immutable (role, action, subject) index built from Rules.
type table map[entity.Role]map[grantKey][]Condition

// Engine resolves a decision context per actor. It holds no mutable state and
// is safe for concurrent use.
type Engine struct {
	table table
}

// NewEngine indexes rules into a lookup table. The rules must define the
// guest role, which every anonymous or unrecognized actor falls back to.
func NewEngine(rules Rules) *Engine {
	t := make(table, len(rules))
	for role, grants := range rules {
		index := make(map[grantKey][]Condition, len(grants))
		for _, g := range grants {
			key := grantKey{action: g.Action, subject: g.Subject}
			index[key] = append(index[key], g.Condition)
		}
		t[role] = index
	}

	return &Engine{table: t}
}

// For returns the decision context of actor. Anonymous actors resolve to the
// guest rules, and so does any actor whose role has no rule set: an unknown
// role degrades to guest privileges rather than failing.
func (e *Engine) For(actor entity.Actor) Context {
	role := actor.Role
	if actor.IsAnonymous() {
		role = entity.RoleGuest
	}
	index, ok := e.table[role]
	if !ok {
		index = e.table[entity.RoleGuest]
	}

	return Context{actor: actor, index: index}
}

// Context answers decisions for a single actor.
type Context struct {
	actor entity.Actor
	index map[grantKey][]Condition
}

// Actor returns the actor the context was resolved for.
func (c Context) Actor() entity.Actor {
	return c.actor
}

// Can reports whether at least one grant allows action on res.
func (c Context) Can(action Action, res Resource) bool {
	for _, key := range [...]grantKey{
		{action: action, subject: res.Subject},
		{action: ActionManage, subject: res.Subject},
		{action: action, subject: SubjectAll},
		{action: ActionManage, subject: SubjectAll},
	} {
		for _, cond := range c.index[key] {
			if cond == nil || cond(c.actor, res.Fields) {
				return true
			}
		}
	}

	return false
}
