package models

// ConfirmRequest marks a reserved identifier as used by a confirmed listing.
type ConfirmRequest struct {
	IDHex string `json:"idHex"`
	Owner string `json:"owner"`
}

// TokenRequest records the token deployed for a property.
type TokenRequest struct {
	IDHex        string `json:"idHex"`
	TokenAddress string `json:"tokenAddress"`
	Owner        string `json:"owner"`
}

// DetailsRequest updates the housing value and image references of a property.
type DetailsRequest struct {
	IDHex        string   `json:"idHex"`
	HousingValue string   `json:"housingValue"`
	Images       []string `json:"images"`
	Owner        string   `json:"owner"`
}

// OpenPayloadRequest asks the server to decrypt a sealed payload.
type OpenPayloadRequest struct {
	Encrypted string `json:"encrypted"`
}
