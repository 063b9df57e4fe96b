// Package canaries collects signed messages (a message file plus its detached
// .sig file) from folders and renders them into a static HTML page.
package canaries

import (
	"fmt"
	"strings"
	"time"
)

const (
	// SignatureSuffix marks a detached signature file. The message it signs
	// lives next to it under the same name without the suffix.
	SignatureSuffix = ".sig"

	DefaultTemplatePath = "template.html"
	DefaultOutputPath   = "canaries.html"
)

// SignedMessage is one message and its signature, ready for the template.
type SignedMessage struct {
	Name      string
	Message   string
	Signature string
	Created   time.Time
}

// templateRecord is what a template sees for each message. Keys are
// lowercase so templates can say {{.name}}, {{.message}} and {{.signature}}.
func (m SignedMessage) templateRecord() map[string]any {
	return map[string]any{
		"name":      m.Name,
		"message":   m.Message,
		"signature": m.Signature,
		"created":   m.Created,
	}
}

// Policy decides how many signed messages a single folder may hold.
type Policy string

const (
	// PolicyAll collects every pair in the folder, newest first.
	PolicyAll Policy = "all"
	// PolicySingle requires exactly one pair per folder and names it after the folder.
	PolicySingle Policy = "single"
)

// ParsePolicy accepts "all" or "single" (case insensitive). Empty means PolicyAll.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(s))) {
	case "", PolicyAll:
		return PolicyAll, nil
	case PolicySingle:
		return PolicySingle, nil
	default:
		return "", fmt.Errorf("unknown folder policy %q (want %q or %q)", s, PolicyAll, PolicySingle)
	}
}

// MessagePath returns the message a signature file signs.
func MessagePath(signaturePath string) string {
	return strings.TrimSuffix(signaturePath, SignatureSuffix)
}
