package oidc

import (
	"encoding/json"
	"fmt"
	"time"
)

// Registered ID Token claim names used by the logout validation.
const (
	ClaimIssuer     = "iss"
	ClaimSubject    = "sub"
	ClaimAudience   = "aud"
	ClaimExpiration = "exp"
	ClaimIssuedAt   = "iat"
	ClaimAuthTime   = "auth_time"
	ClaimNonce      = "nonce"
	ClaimACR        = "acr"
	ClaimAMR        = "amr"
	ClaimAZP        = "azp"
	ClaimSessionID  = "sid"
)

// ClaimKind discriminates the value kinds a claim may hold.
// Claim sets are extensible, but every value is one of a small
// closed set of kinds: a string, a list of strings or a timestamp.
type ClaimKind int

const (
	KindString ClaimKind = iota
	KindStringList
	KindTime
)

// ClaimValue is a single tagged claim value.
// The zero value is an empty string claim.
type ClaimValue struct {
	kind ClaimKind
	str  string
	list []string
	time time.Time
}

func StringClaim(v string) ClaimValue {
	return ClaimValue{kind: KindString, str: v}
}

func StringListClaim(v ...string) ClaimValue {
	return ClaimValue{kind: KindStringList, list: v}
}

func TimeClaim(t time.Time) ClaimValue {
	return ClaimValue{kind: KindTime, time: t}
}

func (v ClaimValue) Kind() ClaimKind {
	return v.kind
}

// String returns the string value, or the empty string
// for any other kind.
func (v ClaimValue) String() string {
	if v.kind != KindString {
		return ""
	}
	return v.str
}

// StringList returns the list value. A plain string claim reads
// as a one-element list, matching the JSON `aud` representation
// which allows both forms.
func (v ClaimValue) StringList() []string {
	switch v.kind {
	case KindString:
		if v.str == "" {
			return nil
		}
		return []string{v.str}
	case KindStringList:
		return v.list
	default:
		return nil
	}
}

// Time returns the timestamp value, or the zero time
// for any other kind.
func (v ClaimValue) Time() time.Time {
	if v.kind != KindTime {
		return time.Time{}
	}
	return v.time
}

func (v ClaimValue) IsZero() bool {
	switch v.kind {
	case KindString:
		return v.str == ""
	case KindStringList:
		return len(v.list) == 0
	case KindTime:
		return v.time.IsZero()
	default:
		return true
	}
}

// MarshalJSON implements the json.Marshaler interface.
// Timestamps are written as unix seconds, the NumericDate
// representation of the registered claims.
func (v ClaimValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return json.Marshal(v.str)
	case KindStringList:
		return json.Marshal(v.list)
	case KindTime:
		return json.Marshal(v.time.Unix())
	default:
		return nil, fmt.Errorf("oidc: unknown claim kind %d", v.kind)
	}
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// JSON strings become string claims, arrays become string lists
// and numbers become timestamps (unix seconds), covering the
// registered NumericDate claims (exp, iat, auth_time).
func (v *ClaimValue) UnmarshalJSON(data []byte) error {
	var i any
	if err := json.Unmarshal(data, &i); err != nil {
		return err
	}
	switch value := i.(type) {
	case string:
		*v = StringClaim(value)
	case []any:
		list := make([]string, len(value))
		for i, entry := range value {
			s, ok := entry.(string)
			if !ok {
				return fmt.Errorf("oidc: claim list entry %d is not a string", i)
			}
			list[i] = s
		}
		*v = StringListClaim(list...)
	case float64:
		*v = TimeClaim(time.Unix(int64(value), 0).UTC())
	default:
		return fmt.Errorf("oidc: unsupported claim value %T", i)
	}
	return nil
}

// Claims is the claim set recorded for an issued token.
type Claims map[string]ClaimValue

func (c Claims) Has(name string) bool {
	_, ok := c[name]
	return ok
}

func (c Claims) String(name string) string {
	return c[name].String()
}

func (c Claims) StringList(name string) []string {
	return c[name].StringList()
}

func (c Claims) Time(name string) time.Time {
	return c[name].Time()
}
