package directive

import (
	"strconv"
	"strings"
)

// Placeholder token delimiters. Unicode private-use code points cannot appear
// in parser output and pass XML text escaping untouched, so a placeholder
// survives every transformation stage byte-for-byte.
const (
	tokenPrefix = "mdc:"
	tokenSuffix = ""
)

// Vault maps generated placeholder tokens to original directive text for the
// lifetime of one document transform. A Vault must be allocated fresh per
// transform; sharing one across concurrent documents risks token collisions.
type Vault struct {
	counter int
	entries []vaultEntry
}

type vaultEntry struct {
	token    string
	original string
}

// NewVault returns an empty vault with its counter at zero.
func NewVault() *Vault {
	return &Vault{}
}

// Protect replaces every directive token in text with a freshly generated
// placeholder and records the mapping.
func (v *Vault) Protect(text string) string {
	return anyToken.ReplaceAllStringFunc(text, func(match string) string {
		v.counter++
		token := tokenPrefix + strconv.Itoa(v.counter) + tokenSuffix
		v.entries = append(v.entries, vaultEntry{token: token, original: match})
		return token
	})
}

// Restore substitutes every recorded placeholder back into its original
// directive text. With nothing recorded it is a no-op, so calling it twice
// without an intervening Protect yields the same string.
func (v *Vault) Restore(text string) string {
	for _, e := range v.entries {
		text = strings.ReplaceAll(text, e.token, e.original)
	}
	return text
}

// Len returns the number of protected tokens.
func (v *Vault) Len() int {
	return len(v.entries)
}
