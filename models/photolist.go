package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// PhotoList is the canonical value type for image-URL columns. It always
// stores as a JSON array of strings; scanning tolerates the legacy shapes
// that accumulated in text columns (plain JSON array, double-encoded JSON,
// comma-joined string, single bare URL).
type PhotoList []string

func (p PhotoList) Value() (driver.Value, error) {
	if p == nil {
		p = PhotoList{}
	}
	data, err := json.Marshal([]string(p))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (p *PhotoList) Scan(src interface{}) error {
	if src == nil {
		*p = PhotoList{}
		return nil
	}

	var raw string
	switch v := src.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("cannot scan %T into PhotoList", src)
	}

	*p = parsePhotoString(raw)
	return nil
}

// NormalizePhotos is the single boundary normalizer for client-supplied
// image fields. It accepts a JSON array, a []string, a comma-joined string,
// or a single URL, and returns the typed list every write path stores.
func NormalizePhotos(input interface{}) (PhotoList, error) {
	switch v := input.(type) {
	case nil:
		return PhotoList{}, nil
	case PhotoList:
		return v, nil
	case []string:
		return PhotoList(v), nil
	case string:
		return parsePhotoString(v), nil
	case []interface{}:
		list := make(PhotoList, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, errors.New("photo list entries must be strings")
			}
			if s = strings.TrimSpace(s); s != "" {
				list = append(list, s)
			}
		}
		return list, nil
	default:
		return nil, fmt.Errorf("unsupported photo list type %T", input)
	}
}

func parsePhotoString(raw string) PhotoList {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return PhotoList{}
	}

	// Unwrap double-encoded payloads ("\"[...]\"") before parsing.
	for strings.HasPrefix(raw, `"`) {
		var inner string
		if err := json.Unmarshal([]byte(raw), &inner); err != nil {
			break
		}
		raw = strings.TrimSpace(inner)
	}

	if strings.HasPrefix(raw, "[") {
		// Anything that looks like an array but doesn't parse as string
		// entries is junk; never hand it to the comma-splitter below.
		var list []string
		if err := json.Unmarshal([]byte(raw), &list); err != nil {
			return PhotoList{}
		}
		out := make(PhotoList, 0, len(list))
		for _, s := range list {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
		return out
	}

	// Comma-joined or single URL.
	parts := strings.Split(raw, ",")
	out := make(PhotoList, 0, len(parts))
	for _, s := range parts {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
