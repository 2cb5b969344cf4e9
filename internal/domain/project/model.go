package project

import "time"

// Project represents a test campaign for one site or installation
type Project struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Client    string    `json:"client,omitempty"`
	Site      string    `json:"site,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Summary is a lightweight representation for listing
type Summary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Client    string    `json:"client,omitempty"`
	Site      string    `json:"site,omitempty"`
	ItemCount int       `json:"item_count"`
	RunCount  int       `json:"run_count"`
	CreatedAt time.Time `json:"created_at"`
}
