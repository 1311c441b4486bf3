package models

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FirstValidationMessage turns a gin binding error into the human message
// for the first failed rule. messages is keyed "Field.tag", e.g.
// "StartDateTime.required".
func FirstValidationMessage(err error, messages map[string]string) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if msg, ok := messages[fe.Field()+"."+fe.Tag()]; ok {
			return msg
		}
		return fmt.Sprintf("%s is invalid.", fe.Field())
	}
	return "Invalid request body."
}
