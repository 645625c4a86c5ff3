package impl

import (
	"sweetshop/internal/domain/entity"
	domainerrors "sweetshop/internal/domain/errors"
	"sweetshop/internal/domain/repository"
	"sweetshop/internal/errors"
)

func requireAdmin(user *entity.User) error {
	if user == nil {
		return domainerrors.ErrNotAuthenticated
	}
	if !user.IsAdmin() {
		return domainerrors.ErrAdminRequired
	}

	return nil
}

// mapProductError translates persistence failures on a sweet into domain errors.
func mapProductError(err error, message string) error {
	switch {
	case errors.Is(err, repository.ErrProductNotFound):
		return domainerrors.ErrProductNotFound
	case errors.Is(err, entity.ErrNegativeProductQuantity):
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	default:
		return errors.Wrap(err, message)
	}
}
