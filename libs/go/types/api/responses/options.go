package responses

import "github.com/cyphera/store-admin/libs/go/types/business"

// OptionsResponse holds option values keyed by name
type OptionsResponse struct {
	Object string                 `json:"object"`
	Values map[string]interface{} `json:"values"`
}

// OptionsWriteResponse acknowledges a queued options write
type OptionsWriteResponse struct {
	Object     string   `json:"object"`
	Names      []string `json:"names"`
	Requesting bool     `json:"requesting"`
}

// NoticesResponse lists drained notices
type NoticesResponse struct {
	Object string            `json:"object"`
	Data   []business.Notice `json:"data"`
}
