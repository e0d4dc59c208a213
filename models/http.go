package models

// PatchRequest is the body of a climate query sent by a remote host.
type PatchRequest struct {
	// Name is the key of the record being loaded, e.g. "minecraft:desert".
	Name Key `json:"name"`

	// Climate is the host's baseline for Name.
	Climate Climate `json:"climate"`
}

// PatchResponse is returned when an override was applied to a query.
type PatchResponse struct {
	Name    Key     `json:"name"`
	Climate Climate `json:"climate"`
}
