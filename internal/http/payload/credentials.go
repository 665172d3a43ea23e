package payload

import (
	"net/url"

	"github.com/jellydator/validation"

	"gotodo/internal/core"
)

// CredentialsForm carries the username/password fields of the login and
// register forms.
type CredentialsForm struct {
	Username string
	Password string
}

func (c *CredentialsForm) FromForm(form url.Values) {
	c.Username = form.Get("username")
	c.Password = form.Get("password")
}

func (c CredentialsForm) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Username, validation.Required, validation.RuneLength(1, 20)),
		validation.Field(&c.Password, validation.Required),
	)
}

func (c CredentialsForm) ToMessage() core.Credentials {
	return core.Credentials{
		Username: c.Username,
		Password: c.Password,
	}
}
