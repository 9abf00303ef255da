package feed

import (
	_ "embed"

	"github.com/okian/centum/internal/domain/model"
)

//go:embed fallback.json
var fallbackJSON []byte

// Fallback returns the built-in minimal record set used when no feed
// source yields a payload. Every derivation stays valid on it, just
// sparse. The embedded document is covered by tests; failing to decode it
// is a build defect.
func Fallback() *model.Payload {
	p, err := Decode(fallbackJSON)
	if err != nil {
		panic("embedded fallback payload is invalid: " + err.Error())
	}
	return p
}
