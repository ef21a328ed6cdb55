package employee

import (
	"errors"

	employeeerrors "go-roster/internal/employee/errors"
	"go-roster/internal/shared/apperror"
	"go-roster/internal/storage"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, storage.ErrTableMissing) {
		return apperror.Wrap(err,
			employeeerrors.ErrStorageNotReady.Code,
			employeeerrors.ErrStorageNotReady.Message,
			employeeerrors.ErrStorageNotReady.HTTPStatus,
		)
	}

	return apperror.Internal(err)
}
