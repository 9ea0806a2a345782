// Package checksum computes the content fingerprint of a flattened
// definition. The resolver never computes sums itself; callers that need a
// real fingerprint apply Sum to the resolver's output.
package checksum

import (
	"crypto/md5"
	"encoding/hex"

	"github.com/artpar/varmsg/domain/errs"
	"github.com/artpar/varmsg/domain/msgtype"
)

// Sum returns the 32-character hex MD5 sum of the flattened definition
// bytes.
func Sum(definition string) string {
	sum := md5.Sum([]byte(definition))
	return hex.EncodeToString(sum[:])
}

// Verify checks a provided sum against an expected one. The wildcard on
// either side matches anything.
func Verify(expected, provided string) error {
	if expected == msgtype.WildcardMD5Sum || provided == msgtype.WildcardMD5Sum {
		return nil
	}
	if expected != provided {
		return &errs.ChecksumMismatchError{Expected: expected, Provided: provided}
	}
	return nil
}
