package http

import (
	"time"

	"lorrylink/internal/core/application/usecases/queries"
)

// Error is the JSON body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreatedResponse carries the server-generated identifier of a new resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// RegisterAccountRequest is the payload of POST /auth/register. Exactly one
// profile may be present, and only when it matches the requested role.
type RegisterAccountRequest struct {
	Username      string                `json:"username"`
	Email         string                `json:"email"`
	Password      string                `json:"password"`
	Role          string                `json:"role"`
	DriverProfile *DriverProfilePayload `json:"driver_profile,omitempty"`
	OwnerProfile  *OwnerProfilePayload  `json:"owner_profile,omitempty"`
}

// DriverProfilePayload carries driver registration extras.
type DriverProfilePayload struct {
	Phone          string `json:"phone"`
	LicenceNumber  string `json:"licence_number"`
	VehicleType    string `json:"vehicle_type"`
	LoadCapacityKg int    `json:"load_capacity_kg"`
}

// OwnerProfilePayload carries goods-owner registration extras.
type OwnerProfilePayload struct {
	CompanyName string `json:"company_name"`
	GSTNumber   string `json:"gst_number"`
	Phone       string `json:"phone"`
}

// LoginRequest is the payload of POST /auth/login. Identifier is a username
// or an email address.
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// TokenResponse carries a signed bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}

// SendCodeRequest is the payload of POST /auth/otp/send.
type SendCodeRequest struct {
	Email string `json:"email"`
}

// SendCodeResponse returns the generated verification code directly.
// TODO: stop echoing the code once a mail provider is wired in.
type SendCodeResponse struct {
	Code string `json:"code"`
}

// VerifyCodeRequest is the payload of POST /auth/otp/verify.
type VerifyCodeRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// UpdateProfileRequest is the payload of PUT /profile and
// PUT /accounts/:account_id/profile. Exactly one profile may be present,
// matching the target account's role.
type UpdateProfileRequest struct {
	DriverProfile *DriverProfilePayload `json:"driver_profile,omitempty"`
	OwnerProfile  *OwnerProfilePayload  `json:"owner_profile,omitempty"`
}

// ProfileResponse is the JSON shape of an account's role-specific profile.
type ProfileResponse struct {
	AccountID     string                `json:"account_id"`
	Role          string                `json:"role"`
	DriverProfile *DriverProfilePayload `json:"driver_profile,omitempty"`
	OwnerProfile  *OwnerProfilePayload  `json:"owner_profile,omitempty"`
}

// ChangePasswordRequest is the payload of POST /auth/change-password.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// PostLoadRequest is the payload of POST /loads.
type PostLoadRequest struct {
	GoodsType        string    `json:"goods_type"`
	WeightKg         int       `json:"weight_kg"`
	PickupLocation   string    `json:"pickup_location"`
	DeliveryLocation string    `json:"delivery_location"`
	PickupDate       time.Time `json:"pickup_date"`
	DeliveryDate     time.Time `json:"delivery_date"`
	Description      string    `json:"description"`
	ExpectedPrice    *int64    `json:"expected_price,omitempty"`
}

// PlaceBidRequest is the payload of POST /loads/:load_id/bids.
type PlaceBidRequest struct {
	Amount int64 `json:"amount"`
}

// HireDriverRequest is the payload of POST /loads/:load_id/hire. An empty
// driver_id asks the system to hire the cheapest pending bid.
type HireDriverRequest struct {
	DriverID string `json:"driver_id,omitempty"`
}

// UpdateLoadStatusRequest is the payload of PATCH /loads/:load_id/status.
type UpdateLoadStatusRequest struct {
	Status string `json:"status"`
}

// RaiseDisputeRequest is the payload of POST /disputes. LoadID and DriverID
// are optional references to the disputed load and counterparty.
type RaiseDisputeRequest struct {
	DisputeType string  `json:"dispute_type"`
	Message     string  `json:"message"`
	LoadID      *string `json:"load_id,omitempty"`
	DriverID    *string `json:"driver_id,omitempty"`
}

// ResolveDisputeRequest is the payload of POST /disputes/:dispute_id/resolve.
// Status, when present, names the terminal status explicitly; otherwise it is
// inferred from the resolution text.
type ResolveDisputeRequest struct {
	Resolution string  `json:"resolution"`
	Status     *string `json:"status,omitempty"`
}

// LoadResponse is the JSON shape of a load.
type LoadResponse struct {
	ID                string    `json:"id"`
	OwnerID           string    `json:"owner_id"`
	GoodsType         string    `json:"goods_type"`
	WeightKg          int       `json:"weight_kg"`
	PickupLocation    string    `json:"pickup_location"`
	DeliveryLocation  string    `json:"delivery_location"`
	PickupDate        time.Time `json:"pickup_date"`
	DeliveryDate      time.Time `json:"delivery_date"`
	Description       string    `json:"description"`
	ExpectedPrice     *int64    `json:"expected_price,omitempty"`
	Status            string    `json:"status"`
	CurrentHighestBid *int64    `json:"current_highest_bid,omitempty"`
	AcceptedDriverID  *string   `json:"accepted_driver_id,omitempty"`
	PostedAt          time.Time `json:"posted_at"`
}

// BidResponse is the JSON shape of a bid.
type BidResponse struct {
	ID        string    `json:"id"`
	LoadID    string    `json:"load_id"`
	DriverID  string    `json:"driver_id"`
	Amount    int64     `json:"amount"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// DisputeResponse is the JSON shape of a dispute.
type DisputeResponse struct {
	ID                string    `json:"id"`
	RaisedByID        string    `json:"raised_by_id"`
	LoadID            *string   `json:"load_id,omitempty"`
	DriverID          *string   `json:"driver_id,omitempty"`
	DisputeType       string    `json:"dispute_type"`
	Message           string    `json:"message"`
	Status            string    `json:"status"`
	ResolutionDetails string    `json:"resolution_details,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// AccountResponse is the JSON shape of an account.
type AccountResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

func toLoadResponse(l queries.LoadResponse) LoadResponse {
	resp := LoadResponse{
		ID:                l.ID.String(),
		OwnerID:           l.OwnerID.String(),
		GoodsType:         l.GoodsType,
		WeightKg:          l.WeightKg,
		PickupLocation:    l.PickupLocation,
		DeliveryLocation:  l.DeliveryLocation,
		PickupDate:        l.PickupDate,
		DeliveryDate:      l.DeliveryDate,
		Description:       l.Description,
		ExpectedPrice:     l.ExpectedPrice,
		Status:            l.Status,
		CurrentHighestBid: l.CurrentHighestBid,
		PostedAt:          l.PostedAt,
	}
	if l.AcceptedDriverID != nil {
		driverID := l.AcceptedDriverID.String()
		resp.AcceptedDriverID = &driverID
	}
	return resp
}

func toLoadResponses(loads []queries.LoadResponse) []LoadResponse {
	response := make([]LoadResponse, len(loads))
	for i, l := range loads {
		response[i] = toLoadResponse(l)
	}
	return response
}

func toBidResponses(bids []queries.BidResponse) []BidResponse {
	response := make([]BidResponse, len(bids))
	for i, b := range bids {
		response[i] = BidResponse{
			ID:        b.ID.String(),
			LoadID:    b.LoadID.String(),
			DriverID:  b.DriverID.String(),
			Amount:    b.Amount,
			Status:    b.Status,
			CreatedAt: b.CreatedAt,
		}
	}
	return response
}

func toDisputeResponses(disputes []queries.DisputeResponse) []DisputeResponse {
	response := make([]DisputeResponse, len(disputes))
	for i, d := range disputes {
		resp := DisputeResponse{
			ID:                d.ID.String(),
			RaisedByID:        d.RaisedByID.String(),
			DisputeType:       d.DisputeType,
			Message:           d.Message,
			Status:            d.Status,
			ResolutionDetails: d.ResolutionDetails,
			CreatedAt:         d.CreatedAt,
		}
		if d.LoadID != nil {
			loadID := d.LoadID.String()
			resp.LoadID = &loadID
		}
		if d.DriverID != nil {
			driverID := d.DriverID.String()
			resp.DriverID = &driverID
		}
		response[i] = resp
	}
	return response
}

func toProfileResponse(p queries.ProfileResponse) ProfileResponse {
	resp := ProfileResponse{
		AccountID: p.AccountID.String(),
		Role:      p.Role,
	}
	if p.DriverProfile != nil {
		resp.DriverProfile = &DriverProfilePayload{
			Phone:          p.DriverProfile.Phone,
			LicenceNumber:  p.DriverProfile.LicenceNumber,
			VehicleType:    p.DriverProfile.VehicleType,
			LoadCapacityKg: p.DriverProfile.LoadCapacityKg,
		}
	}
	if p.OwnerProfile != nil {
		resp.OwnerProfile = &OwnerProfilePayload{
			CompanyName: p.OwnerProfile.CompanyName,
			GSTNumber:   p.OwnerProfile.GSTNumber,
			Phone:       p.OwnerProfile.Phone,
		}
	}
	return resp
}

func toAccountResponses(accounts []queries.AccountResponse) []AccountResponse {
	response := make([]AccountResponse, len(accounts))
	for i, a := range accounts {
		response[i] = AccountResponse{
			ID:        a.ID.String(),
			Username:  a.Username,
			Email:     a.Email,
			Role:      a.Role,
			Active:    a.Active,
			CreatedAt: a.CreatedAt,
		}
	}
	return response
}
