package types

// LocationInfo contains human-readable metadata for a resolved postal code
type LocationInfo struct {
	PostalCode  string `json:"postal_code" example:"81611"`
	City        string `json:"city,omitempty" example:"Aspen"`
	State       string `json:"state,omitempty" example:"CO"`
	CountryCode string `json:"country_code" example:"US"`
}

// ResolvedLocation is a postal code resolved to a coordinate pair
type ResolvedLocation struct {
	Coordinates Coords       `json:"coordinates"`
	Location    LocationInfo `json:"location"`
}
