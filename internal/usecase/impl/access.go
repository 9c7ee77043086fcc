// Package impl contains the implementation of the application's business logic.
package impl

import (
	"storefront/internal/domain/constants"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/policy"
)

// authorize returns ErrForbidden unless the actor may perform action on res.
func authorize(pc policy.Context, action policy.Action, res policy.Resource) error {
	if !pc.Can(action, res) {
		return domainerrors.ErrForbidden.WrapMessage(string(action) + " " + string(res.Subject))
	}

	return nil
}

// missing decides how a lookup miss is reported. An actor who could act on
// their own record of that subject learns it does not exist; anyone else is
// told they are forbidden, so a miss reveals nothing they could not see anyway.
func missing(pc policy.Context, action policy.Action, subject policy.Subject, notFound error) error {
	if pc.Can(action, policy.Provisional(subject, pc.Actor().ID)) {
		return notFound
	}

	return domainerrors.ErrForbidden.WrapMessage(string(action) + " " + string(subject))
}

// pageBounds clamps list pagination to the supported range.
func pageBounds(limit, offset int) (int, int) {
	switch {
	case limit <= 0:
		limit = constants.DefaultPageLimit
	case limit > constants.MaxPageLimit:
		limit = constants.MaxPageLimit
	}

	return limit, max(offset, 0)
}
