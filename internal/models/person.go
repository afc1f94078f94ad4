package models

// Person is a counterparty for transactions and a potential project participant.
type Person struct {
	ID      string
	OwnerID string
	Name    string

	// UserID optionally links the person to a login identity.
	UserID string
}

// PersonUpdate lists the person fields that may change after creation.
// A non-nil UserID pointing at "" unlinks the user.
type PersonUpdate struct {
	Name   *string
	UserID *string
}
