package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenId returns a random 32 character hex id.
func GenId() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
