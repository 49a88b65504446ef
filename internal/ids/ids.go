package ids

import "github.com/segmentio/ksuid"

// Prefixes keep ids greppable across collections; a ksuid already embeds a
// timestamp plus random payload, so ids sort roughly by creation time.
const (
	PrefixGallery    = "g_"
	PrefixCommission = "c_"
	PrefixEnquiry    = "e_"
	PrefixImage      = "img_"
)

func New() string {
	return ksuid.New().String()
}

func NewWithPrefix(prefix string) string {
	return prefix + ksuid.New().String()
}
