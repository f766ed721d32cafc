package model

import "time"

// Instance is one registered object. IDs are not unique across instances.
type Instance[T any] struct {
	ID   int `json:"id"`
	Data T   `json:"data"`
}

type AccessEvent struct {
	Signal    string    `json:"signal"`
	ID        int       `json:"id"`
	Found     bool      `json:"found"`
	Data      any       `json:"data,omitempty"`
	Exit      bool      `json:"exit"`
	HandledAt time.Time `json:"handled_at"`
}
