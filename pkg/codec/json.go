package codec

import (
	"github.com/goccy/go-json"
)

// JSON is an alternative Codec for callers that want their snapshot data
// decoded with JSON struct tags.
type JSON struct{}

func (JSON) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (JSON) Unmarshal(data []byte, dst any) error {
	return json.Unmarshal(data, dst)
}
