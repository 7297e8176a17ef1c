package placeholder

import (
	"github.com/kbukum/restkit/httpclient"
	"github.com/kbukum/restkit/rest"
)

const (
	usersPath    = rest.Template("/users")
	userItemPath = rest.Template("/users/{userID}")
)

// Geo is a user address coordinate pair.
type Geo struct {
	Lat string `json:"lat,omitempty"`
	Lng string `json:"lng,omitempty"`
}

// Address is a user postal address.
type Address struct {
	Street  string `json:"street,omitempty"`
	Suite   string `json:"suite,omitempty"`
	City    string `json:"city,omitempty"`
	Zipcode string `json:"zipcode,omitempty"`
	Geo     *Geo   `json:"geo,omitempty"`
}

// Company is a user's company record.
type Company struct {
	Name        string `json:"name,omitempty"`
	CatchPhrase string `json:"catchPhrase,omitempty"`
	BS          string `json:"bs,omitempty"`
}

// User mirrors the user resource wire representation.
type User struct {
	ID       int      `json:"id,omitempty"`
	Name     string   `json:"name" validate:"required"`
	Username string   `json:"username,omitempty"`
	Email    string   `json:"email,omitempty" validate:"omitempty,email"`
	Address  *Address `json:"address,omitempty"`
	Phone    string   `json:"phone,omitempty"`
	Website  string   `json:"website,omitempty"`
	Company  *Company `json:"company,omitempty"`
}

// NewUserEndpoint binds the user resource to the given client.
func NewUserEndpoint(client *httpclient.Client) *rest.Endpoint[User] {
	return rest.NewEndpoint[User](client, usersPath, userItemPath)
}
