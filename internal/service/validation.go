package service

import (
	apperrors "github.com/ssm-admin/ssm-api/pkg/util"
)

// Messages shared by both resources.
const (
	MsgAllFieldsRequired = "All fields are required"
	MsgDatabaseError     = "Database error"
)

// requiredField pairs the key a client used with whether it carried a value.
type requiredField struct {
	key     string
	present bool
}

// requireAll fails with a validation error naming every absent key.
func requireAll(fields ...requiredField) error {
	var missing []string
	for _, f := range fields {
		if !f.present {
			missing = append(missing, f.key)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return apperrors.NewValidationError(MsgAllFieldsRequired, map[string]any{"missing": missing})
}
