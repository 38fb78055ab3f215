package blogservice

import (
	"github.com/jarvis787/scribe/internal/common"
)

// The payload contract requires title and content to be present. Empty
// strings are valid values and are stored as given.
func validateTitle(v *common.Validator, title *string) {
	v.Check(title != nil, "title", "must be provided")
}

func validateContent(v *common.Validator, content *string) {
	v.Check(content != nil, "content", "must be provided")
}
