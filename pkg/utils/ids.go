package utils

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// NewID returns a random identifier, optionally namespaced as "prefix-<nanoid>".
func NewID(prefix string) (string, error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", err
	}
	if prefix == "" {
		return id, nil
	}
	return prefix + "-" + id, nil
}
