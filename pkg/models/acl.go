package models

import (
	"github.com/goccy/go-json"
)

const (
	// ACLPublicKey is the subject that grants a permission to everyone.
	ACLPublicKey = "*"
	// ACLRolePrefix prefixes role names used as ACL subjects.
	ACLRolePrefix = "role:"

	aclRead  = "read"
	aclWrite = "write"
)

// Permission is the read/write pair granted to one ACL subject.
type Permission struct {
	Read  bool
	Write bool
}

// ACL maps a subject (ACLPublicKey, a user id or a role:-prefixed name) to
// its permissions. The zero value is a nil map; use NewACL before setting
// permissions.
type ACL map[string]Permission

func NewACL() ACL {
	return ACL{}
}

// NewPublicACL returns an ACL granting read and write to everyone, the
// server's default for new objects.
func NewPublicACL() ACL {
	return ACL{ACLPublicKey: {Read: true, Write: true}}
}

func (a ACL) SetPublicReadAccess(allowed bool) {
	a.setRead(ACLPublicKey, allowed)
}

func (a ACL) SetPublicWriteAccess(allowed bool) {
	a.setWrite(ACLPublicKey, allowed)
}

func (a ACL) SetReadAccess(subject string, allowed bool) {
	a.setRead(subject, allowed)
}

func (a ACL) SetWriteAccess(subject string, allowed bool) {
	a.setWrite(subject, allowed)
}

func (a ACL) SetRoleReadAccess(roleName string, allowed bool) {
	a.setRead(ACLRolePrefix+roleName, allowed)
}

func (a ACL) SetRoleWriteAccess(roleName string, allowed bool) {
	a.setWrite(ACLRolePrefix+roleName, allowed)
}

func (a ACL) PublicReadAccess() bool {
	return a[ACLPublicKey].Read
}

func (a ACL) PublicWriteAccess() bool {
	return a[ACLPublicKey].Write
}

func (a ACL) ReadAccess(subject string) bool {
	return a[subject].Read
}

func (a ACL) WriteAccess(subject string) bool {
	return a[subject].Write
}

func (a ACL) RoleReadAccess(roleName string) bool {
	return a[ACLRolePrefix+roleName].Read
}

func (a ACL) RoleWriteAccess(roleName string) bool {
	return a[ACLRolePrefix+roleName].Write
}

// Remove drops every permission of subject.
func (a ACL) Remove(subject string) {
	delete(a, subject)
}

func (a ACL) setRead(subject string, allowed bool) {
	p := a[subject]
	p.Read = allowed
	a[subject] = p
}

func (a ACL) setWrite(subject string, allowed bool) {
	p := a[subject]
	p.Write = allowed
	a[subject] = p
}

// ToMap returns the wire form. A flag is present only when true and a
// subject with no granted flag is left out.
func (a ACL) ToMap() map[string]any {
	out := make(map[string]any, len(a))
	for subject, p := range a {
		entry := make(map[string]any, 2)
		if p.Read {
			entry[aclRead] = true
		}
		if p.Write {
			entry[aclWrite] = true
		}
		if len(entry) == 0 {
			continue
		}
		out[subject] = entry
	}
	return out
}

func (a ACL) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.ToMap())
}

func (a *ACL) UnmarshalJSON(data []byte) error {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*a = ACLFromMap(m)
	return nil
}

// ACLFromMap reads the wire form leniently: unknown keys and non-boolean
// flags are ignored.
func ACLFromMap(m map[string]any) ACL {
	acl := make(ACL, len(m))
	for subject, raw := range m {
		entry, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		var p Permission
		p.Read, _ = entry[aclRead].(bool)
		p.Write, _ = entry[aclWrite].(bool)
		if !p.Read && !p.Write {
			continue
		}
		acl[subject] = p
	}
	return acl
}
