package payload

import (
	"fmt"
	"net/http"
	"net/url"
)

// Form is implemented by payload types that populate themselves from an HTML
// form submission.
type Form interface {
	FromForm(form url.Values)
	Validate() error
}

type Decoder struct{}

func (d Decoder) DecodeAndValidateForm(r *http.Request, object Form) error {
	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("parsing form: %w", err)
	}

	object.FromForm(r.PostForm)

	if err := object.Validate(); err != nil {
		return fmt.Errorf("validating form: %w", err)
	}

	return nil
}
