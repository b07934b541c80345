package repository

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedStoredList marks a stored list that no longer decodes. Batch
// readers skip such rows instead of aborting the whole pass.
var ErrMalformedStoredList = errors.New("malformed stored list")

// Skill, keyword and interest lists are stored as a single text column. The
// envelope is versioned so a schema change in the list encoding is an
// explicit migration, not silent corruption of stored features.
const listCodecVersion = 1

type versionedList struct {
	V     int      `json:"v"`
	Items []string `json:"items"`
}

func encodeStringList(items []string) (string, error) {
	if items == nil {
		items = []string{}
	}
	b, err := json.Marshal(versionedList{V: listCodecVersion, Items: items})
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeStringList(raw string) ([]string, error) {
	if raw == "" {
		return nil, nil
	}
	var v versionedList
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedStoredList, err)
	}
	if v.V != listCodecVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrMalformedStoredList, v.V)
	}
	return v.Items, nil
}
