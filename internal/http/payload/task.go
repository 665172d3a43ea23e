package payload

import (
	"net/url"

	"github.com/jellydator/validation"
)

// TaskForm carries the content field of the add and update task forms.
type TaskForm struct {
	Content string
}

func (t *TaskForm) FromForm(form url.Values) {
	t.Content = form.Get("content")
}

func (t TaskForm) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Content, validation.Required, validation.RuneLength(1, 200)),
	)
}
