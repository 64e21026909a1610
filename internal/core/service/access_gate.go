package service

import "crypto/subtle"

// StaticAccessGate accepts exactly one registration code, fixed at startup.
type StaticAccessGate struct {
	code []byte
}

func NewStaticAccessGate(code string) *StaticAccessGate {
	return &StaticAccessGate{code: []byte(code)}
}

// Check compares in constant time. An unconfigured gate rejects everything.
func (g *StaticAccessGate) Check(code string) bool {
	if len(g.code) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare(g.code, []byte(code)) == 1
}
