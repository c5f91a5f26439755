package queries

import (
	"context"

	"lorrylink/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllAccountsQueryHandler reads every account for user administration.
// Password hashes are deliberately left out of the read model.
type GetAllAccountsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllAccountsQueryHandler creates a handler for the admin account listing.
func NewGetAllAccountsQueryHandler(db *gorm.DB) GetAllAccountsQueryHandler {
	return GetAllAccountsQueryHandler{db: db}
}

// Handle executes the query, sorted by username for stable output.
func (h GetAllAccountsQueryHandler) Handle(
	ctx context.Context,
	query GetAllAccountsQuery,
) ([]AccountResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	accounts := make([]AccountResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			username,
			email,
			role,
			active,
			created_at
		FROM accounts
		ORDER BY username
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp AccountResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Username,
			&resp.Email,
			&resp.Role,
			&resp.Active,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}

		accounts = append(accounts, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return accounts, nil
}
