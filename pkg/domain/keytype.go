package domain

import (
	"fmt"
	"strings"
)

// KeyType is the deployment environment an application key belongs to
type KeyType int

const (
	KeyTypeDev KeyType = iota
	KeyTypeStage
	KeyTypeProd
)

// App key prefixes, one per environment
const (
	DevKeyPrefix   = "ak_dev_"
	StageKeyPrefix = "ak_stage_"
	ProdKeyPrefix  = "ak_prod_"
)

// KeyTypes lists every environment in declaration order
var KeyTypes = []KeyType{KeyTypeDev, KeyTypeStage, KeyTypeProd}

// KeyTypeFromAppKey classifies an app key by its prefix.
// The second return value is false when no prefix matches.
func KeyTypeFromAppKey(appKey string) (KeyType, bool) {
	switch {
	case strings.HasPrefix(appKey, DevKeyPrefix):
		return KeyTypeDev, true
	case strings.HasPrefix(appKey, StageKeyPrefix):
		return KeyTypeStage, true
	case strings.HasPrefix(appKey, ProdKeyPrefix):
		return KeyTypeProd, true
	}
	return 0, false
}

// ParseKeyType parses "dev", "stage" or "prod" (case-insensitive)
func ParseKeyType(s string) (KeyType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dev":
		return KeyTypeDev, nil
	case "stage":
		return KeyTypeStage, nil
	case "prod":
		return KeyTypeProd, nil
	}
	return 0, fmt.Errorf("unknown key type %q", s)
}

func (k KeyType) String() string {
	switch k {
	case KeyTypeDev:
		return "dev"
	case KeyTypeStage:
		return "stage"
	case KeyTypeProd:
		return "prod"
	}
	return fmt.Sprintf("KeyType(%d)", int(k))
}

// Prefix returns the app key prefix of the environment, or "" for an unknown key type
func (k KeyType) Prefix() string {
	switch k {
	case KeyTypeDev:
		return DevKeyPrefix
	case KeyTypeStage:
		return StageKeyPrefix
	case KeyTypeProd:
		return ProdKeyPrefix
	}
	return ""
}

// MarshalText encodes the key type by name
func (k KeyType) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a key type name; it also lets KeyType serve as a
// YAML/JSON map key.
func (k *KeyType) UnmarshalText(text []byte) error {
	parsed, err := ParseKeyType(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
