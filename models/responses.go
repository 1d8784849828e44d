package models

// PropertiesResponse wraps a list of registry entries.
type PropertiesResponse struct {
	Properties []PropertyEntry `json:"properties"`
}

// RevealedPropertiesResponse wraps a list of entries with opened payloads.
type RevealedPropertiesResponse struct {
	Properties []RevealedProperty `json:"properties"`
}

// OKResponse is returned by mutating endpoints.
type OKResponse struct {
	OK bool `json:"ok"`

	// Property is the updated entry, when the endpoint returns one.
	Property *PropertyEntry `json:"property,omitempty"`
}

// OpenPayloadResponse carries a decrypted payload.
type OpenPayloadResponse struct {
	Plaintext string      `json:"plaintext"`
	Fields    *DeedFields `json:"fields,omitempty"`
}
