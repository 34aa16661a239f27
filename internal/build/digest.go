package build

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"

	"git.home.luguber.info/inful/blogbuilder/internal/output"
)

// ComputeDigest returns a deterministic hash over a set of artifacts. Two
// builds that produce byte-identical sites have equal digests regardless of
// write order.
func ComputeDigest(artifacts []output.Artifact) string {
	entries := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		sum := sha256.Sum256([]byte(a.Content))
		entries = append(entries, fmt.Sprintf("%s|%s|%s", a.Name, a.Kind, hex.EncodeToString(sum[:])))
	}
	sort.Strings(entries)

	h := sha256.New()
	for _, e := range entries {
		h.Write([]byte(e))
		h.Write([]byte("\n"))
	}
	return hex.EncodeToString(h.Sum(nil))
}
