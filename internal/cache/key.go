// internal/cache/key.go
package cache

import (
	"encoding/json"
	"fmt"
)

// Key derives a stable cache key from a filter struct. Struct field order is
// fixed at compile time, so identical filters always encode identically.
func Key(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return string(data)
}
