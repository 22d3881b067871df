package entities

// SessionSnapshot is the persisted state of a shopper session between requests.
type SessionSnapshot struct {
	ID      string     `json:"id"`
	Items   []LineItem `json:"items"`
	Address *Address   `json:"address,omitempty"`
}
