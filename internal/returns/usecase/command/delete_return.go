package command

import (
	"errors"

	"gorm.io/gorm"

	"github.com/RehanShaikh007/texhub-backend/internal/returns/domain"
	"github.com/RehanShaikh007/texhub-backend/pkg/apperr"
)

// DeleteReturnHandler handles delete return command
type DeleteReturnHandler struct {
	repo domain.ReturnRepository
}

// NewDeleteReturnHandler creates a new delete return handler
func NewDeleteReturnHandler(repo domain.ReturnRepository) *DeleteReturnHandler {
	return &DeleteReturnHandler{repo: repo}
}

// Handle executes the delete return command
func (h *DeleteReturnHandler) Handle(id uint) error {
	if _, err := h.repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundf("return request not found")
		}
		return apperr.Unexpected("failed to get return request", err)
	}

	if err := h.repo.Delete(id); err != nil {
		return apperr.Unexpected("failed to delete return request", err)
	}
	return nil
}
