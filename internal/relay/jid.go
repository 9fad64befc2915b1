package relay

import (
	"fmt"
	"strings"
)

// groupJIDSuffix is the domain part of WhatsApp group JIDs.
const groupJIDSuffix = "@g.us"

// NormalizeJID returns a canonical form of a WhatsApp chat JID so monitored
// group comparison and stored source groups are stable across gateway
// variants:
//   - surrounding whitespace is trimmed
//   - the domain part is lower-cased
//   - a leading "+" on the local part (phone-number form) is dropped
//   - a bare group ID without a domain gets the "@g.us" suffix
//
// An empty input is an error.
func NormalizeJID(raw string) (string, error) {
	jid := strings.TrimSpace(raw)
	if jid == "" {
		return "", fmt.Errorf("empty jid")
	}

	local, domain, found := strings.Cut(jid, "@")
	if !found {
		// gateways sometimes send just the group ID
		local, domain = jid, strings.TrimPrefix(groupJIDSuffix, "@")
	}

	local = strings.TrimPrefix(local, "+")
	if local == "" {
		return "", fmt.Errorf("jid %q has empty local part", raw)
	}

	return local + "@" + strings.ToLower(domain), nil
}

// IsGroupJID reports whether jid refers to a WhatsApp group.
func IsGroupJID(jid string) bool {
	return strings.HasSuffix(jid, groupJIDSuffix)
}

// monitored reports whether jid is in the monitored set. An empty set means
// every group is accepted.
func monitored(jid string, groups []string) bool {
	if len(groups) == 0 {
		return true
	}
	for _, g := range groups {
		if normalized, err := NormalizeJID(g); err == nil && normalized == jid {
			return true
		}
	}

	return false
}
