package policy

import "storefront/internal/domain/entity"

// DefaultRules is the storefront rule table.
func DefaultRules() Rules {
	return Rules{
		entity.RoleGuest: {
			Can(ActionRead, SubjectProduct),
		},
		entity.RoleUser: {
			Can(ActionView, SubjectOrder),
			Can(ActionCreate, SubjectOrder),
			CanWhen(ActionRead, SubjectOrder, OwnedByActor),
			CanWhen(ActionUpdate, SubjectUser, IsActor),
			CanWhen(ActionRead, SubjectCart, OwnedByActor),
			CanWhen(ActionUpdate, SubjectCart, OwnedByActor),
			Can(ActionView, SubjectDeliveryAddress),
			CanWhen(ActionCreate, SubjectDeliveryAddress, OwnedByActor),
			CanWhen(ActionRead, SubjectDeliveryAddress, OwnedByActor),
			CanWhen(ActionUpdate, SubjectDeliveryAddress, OwnedByActor),
			CanWhen(ActionDelete, SubjectDeliveryAddress, OwnedByActor),
			CanWhen(ActionRead, SubjectInvoice, OwnedByActor),
		},
		entity.RoleAdmin: {
			Can(ActionManage, SubjectAll),
		},
	}
}

// NewDefaultEngine builds an engine over DefaultRules.
func NewDefaultEngine() *Engine {
	return NewEngine(DefaultRules())
}
