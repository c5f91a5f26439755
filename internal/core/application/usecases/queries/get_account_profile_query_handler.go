package queries

import (
	"context"
	"database/sql"

	"lorrylink/internal/core/domain/model/account"
	"lorrylink/internal/core/domain/model/kernel"
	"lorrylink/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAccountProfileQueryHandler reads one account's role-specific profile.
// Account holders see their own; administrators see anyone's.
type GetAccountProfileQueryHandler struct {
	db *gorm.DB
}

// NewGetAccountProfileQueryHandler creates a handler for the profile screen.
func NewGetAccountProfileQueryHandler(db *gorm.DB) GetAccountProfileQueryHandler {
	return GetAccountProfileQueryHandler{db: db}
}

// Handle executes the query. Profile columns are nullable; a profile view is
// only built when at least one of its columns is populated, mirroring how
// registration persists them.
func (h GetAccountProfileQueryHandler) Handle(
	ctx context.Context,
	query GetAccountProfileQuery,
) (ProfileResponse, error) {
	if err := query.Validate(); err != nil {
		return ProfileResponse{}, err
	}

	if !query.Actor().Is(account.Admin) && !query.Actor().ID().IsEqual(query.AccountID()) {
		return ProfileResponse{}, errs.NewForbiddenError(
			"only the account holder or an admin can view a profile")
	}

	var (
		id                                      uuid.UUID
		role                                    string
		driverPhone, licenceNumber, vehicleType sql.NullString
		loadCapacityKg                          sql.NullInt64
		companyName, gstNumber, ownerPhone      sql.NullString
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			role,
			driver_phone,
			licence_number,
			vehicle_type,
			load_capacity_kg,
			company_name,
			gst_number,
			owner_phone
		FROM accounts
		WHERE id = ?
	`, query.AccountID().Bytes()).Row()

	err := row.Scan(
		&id,
		&role,
		&driverPhone,
		&licenceNumber,
		&vehicleType,
		&loadCapacityKg,
		&companyName,
		&gstNumber,
		&ownerPhone,
	)
	if err != nil {
		return ProfileResponse{}, errs.NewObjectNotFoundErrorWithCause(
			"account", query.AccountID(), err)
	}

	resp := ProfileResponse{Role: role}
	if resp.AccountID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return ProfileResponse{}, err
	}

	if driverPhone.Valid || licenceNumber.Valid || vehicleType.Valid || loadCapacityKg.Valid {
		resp.DriverProfile = &DriverProfileView{
			Phone:          driverPhone.String,
			LicenceNumber:  licenceNumber.String,
			VehicleType:    vehicleType.String,
			LoadCapacityKg: int(loadCapacityKg.Int64),
		}
	}
	if companyName.Valid || gstNumber.Valid || ownerPhone.Valid {
		resp.OwnerProfile = &OwnerProfileView{
			CompanyName: companyName.String,
			GSTNumber:   gstNumber.String,
			Phone:       ownerPhone.String,
		}
	}

	return resp, nil
}
