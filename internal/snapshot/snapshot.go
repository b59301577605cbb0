// Package snapshot loads the JSON documents written by ADExplorerSnapshot.
// Only the parts adexdump reads are modelled: the object list under "data"
// and the name, pwdlastset and description entries of each object's
// Properties.
package snapshot

// Document is a fully loaded snapshot export.
type Document struct {
	Records []Record `json:"data"`
	Meta    Meta     `json:"meta"`
}

// Meta is the optional header ADExplorerSnapshot writes next to "data".
type Meta struct {
	Type    string `json:"type"`
	Count   int    `json:"count"`
	Version int    `json:"version"`
}

// Record is one directory object.
type Record struct {
	Properties Properties `json:"Properties"`
}

// Properties holds the attributes read from a directory object.
// Optional attributes are pointers; nil means the key was absent or null.
type Properties struct {
	Name        string  `json:"name"`
	PwdLastSet  *int64  `json:"pwdlastset,omitempty"`
	Description *string `json:"description,omitempty"`
}

// PasswordNeverSet is the pwdlastset value for accounts whose password was never set.
const PasswordNeverSet int64 = 0

// HasPwdLastSet reports whether the object carries a pwdlastset attribute.
func (p Properties) HasPwdLastSet() bool {
	return p.PwdLastSet != nil
}

// HasDescription reports whether the object carries a non-empty description.
func (p Properties) HasDescription() bool {
	return p.Description != nil && *p.Description != ""
}

// Len returns the number of records in the document.
func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Records)
}
