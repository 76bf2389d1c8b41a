package responses

// WelcomeCardResponse reports whether the marketing welcome card is hidden
type WelcomeCardResponse struct {
	Hidden bool `json:"hidden"`
}
