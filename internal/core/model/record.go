package model

import (
	"strings"

	"github.com/tidwall/gjson"
)

// Record is one JSON object decoded from an input line. Field access never
// fails: an absent key reads as Null.
type Record struct {
	raw gjson.Result
}

// ParseRecord decodes a single JSON object. It reports false for invalid JSON
// and for any JSON value that is not an object.
func ParseRecord(data string) (Record, bool) {
	data = strings.TrimSpace(data)
	if data == "" || !gjson.Valid(data) {
		return Record{}, false
	}
	r := gjson.Parse(data)
	if !r.IsObject() {
		return Record{}, false
	}
	return Record{raw: r}, true
}

func (r Record) Get(key string) Value {
	return valueOf(r.raw.Get(key))
}

// Has reports whether key is present, even with a null value.
func (r Record) Has(key string) bool {
	return r.raw.Get(key).Exists()
}
