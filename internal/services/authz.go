package services

import "github.com/quantity262/Myweb/internal/apperr"

// checkRole is the single capability check used by service-level
// authorization. Callers must already be authenticated.
func checkRole(role, need string) error {
	if role != need {
		return apperr.ErrForbidden
	}
	return nil
}
