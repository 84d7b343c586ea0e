// Package strandid derives content identifiers for nucleotide strands, so the
// same strand gets the same ID in every output format and run.
package strandid

import (
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// CID returns the CIDv1 (raw codec, sha2-256) of the strand's ASCII bytes,
// or "" for an empty strand.
func CID(strand string) string {
	if strand == "" {
		return ""
	}
	c, err := Sum(strand)
	if err != nil {
		return ""
	}
	return c.String()
}

// Sum hashes the strand into its structured CID; CID is its string form.
func Sum(strand string) (cid.Cid, error) {
	sum, err := multihash.Sum([]byte(strand), multihash.SHA2_256, -1)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(cid.Raw, sum), nil
}

// Verify reports whether id is the CID of strand.
func Verify(id, strand string) bool {
	want, err := cid.Decode(id)
	if err != nil {
		return false
	}
	got, err := Sum(strand)
	if err != nil {
		return false
	}
	return want.Equals(got)
}
