package api

type Person struct {
	ID      string `json:"id"`
	OwnerID string `json:"ownerId"`
	Name    string `json:"name"`
	UserID  string `json:"userId,omitempty"`
}

type CreatePersonRequest struct {
	Name   string `json:"name"`
	UserID string `json:"userId,omitempty"`
}

type CreatePersonResponse struct {
	Person *Person `json:"person"`
}

type GetPersonRequest struct {
	PersonID string `json:"personId"`
}

type GetPersonResponse struct {
	Person *Person `json:"person"`
}

type ListPersonsRequest struct{}

type ListPersonsResponse struct {
	Persons []*Person `json:"persons"`
}

// UpdatePersonRequest changes only the fields that are set. An empty UserID
// unlinks the login identity.
type UpdatePersonRequest struct {
	PersonID string  `json:"personId"`
	Name     *string `json:"name,omitempty"`
	UserID   *string `json:"userId,omitempty"`
}

type UpdatePersonResponse struct {
	Person *Person `json:"person"`
}

type DeletePersonRequest struct {
	PersonID string `json:"personId"`
}

type DeletePersonResponse struct{}
