package verify

import (
	"fmt"
	"strings"
)

// Kind selects the validator applied to a field.
// The zero value is KindEmpty.
type Kind int

const (
	// KindEmpty requires a non-empty value, optionally bounded in length.
	KindEmpty Kind = iota
	// KindEmail requires an email address.
	KindEmail
	// KindPhoneCN requires a mainland China mobile number.
	KindPhoneCN
	// KindIDCN requires a mainland China resident ID number.
	KindIDCN
	// KindCNText requires Chinese ideographs only.
	KindCNText
	// KindENText requires ASCII letters only.
	KindENText
	// KindNumber requires ASCII digits only.
	KindNumber
)

var kindNames = [...]string{
	KindEmpty:   "empty",
	KindEmail:   "email",
	KindPhoneCN: "phone_cn",
	KindIDCN:    "id_cn",
	KindCNText:  "cn_text",
	KindENText:  "en_text",
	KindNumber:  "number",
}

var kindDescriptions = [...]string{
	KindEmpty:   "non-empty value with optional min/max length",
	KindEmail:   "email address",
	KindPhoneCN: "11-digit mainland China mobile number (prefix 12-19)",
	KindIDCN:    "mainland China resident ID number, 15 or 18 characters",
	KindCNText:  "Chinese ideographs U+4E00..U+9FA5",
	KindENText:  "ASCII letters a-z, A-Z",
	KindNumber:  "ASCII digits 0-9",
}

// Kinds returns every rule kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindEmpty, KindEmail, KindPhoneCN, KindIDCN, KindCNText, KindENText, KindNumber}
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k >= KindEmpty && k <= KindNumber
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Description returns a short human-readable summary of what the kind accepts.
func (k Kind) Description() string {
	if !k.Valid() {
		return ""
	}
	return kindDescriptions[k]
}

// DefaultMessage returns the message reported when a value fails the kind's
// own check: the emptiness message for KindEmpty, the format message for the
// others. Custom rule messages replace it.
func (k Kind) DefaultMessage() string {
	if !k.Valid() {
		return ""
	}
	rules := rulesFor("", "", NewRule(k))
	return rules[len(rules)-1].Error.Message
}

// ParseKind resolves a kind by its name, case-insensitively.
func ParseKind(name string) (Kind, error) {
	name = strings.TrimSpace(name)
	for _, k := range Kinds() {
		if strings.EqualFold(kindNames[k], name) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}
