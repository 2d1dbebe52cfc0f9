package domain

import "errors"

var (
	ErrClientNotFound = errors.New("client not found")
	ErrEmptyLastName  = errors.New("client last name must not be empty")
	ErrEmptyEmail     = errors.New("client email must not be empty")
	ErrDuplicateEmail = errors.New("a client with this email already exists")
)

type Client struct {
	ID        int
	LastName  string
	FirstName string
	Email     string
	Phone     string
	Address   string
}

func NewClient(lastName, firstName, email, phone, address string) (Client, error) {
	if lastName == "" {
		return Client{}, ErrEmptyLastName
	}
	if email == "" {
		return Client{}, ErrEmptyEmail
	}
	return Client{
		LastName:  lastName,
		FirstName: firstName,
		Email:     email,
		Phone:     phone,
		Address:   address,
	}, nil
}

// Duplicate copies every field into a fresh identity. The email gets a
// ".copy" suffix so the uniqueness rule keeps holding after the save.
func (c Client) Duplicate() Client {
	cp := c
	cp.ID = 0
	cp.Email = c.Email + ".copy"
	return cp
}
