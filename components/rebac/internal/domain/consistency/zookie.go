// Package consistency implements the zookie token format and the
// per-request consistency modes of spec §4.6, grounded on
// _examples/original_source/src/nexus/core/zookie.py translated into
// idiomatic Go.
package consistency

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/LerianStudio/midaz/v3/pkg/merrors"
)

const zookieVersion = "v1"

// Zookie is the decoded form of an opaque consistency token: a
// point-in-time (tenant, revision) snapshot.
type Zookie struct {
	Tenant      string
	Revision    int64
	CreatedAtMs int64
}

// Age returns how long ago this zookie was created.
func (z Zookie) Age() time.Duration {
	return time.Since(time.UnixMilli(z.CreatedAtMs))
}

// IsAtLeast reports whether this zookie's revision satisfies a minimum
// revision requirement.
func (z Zookie) IsAtLeast(minRevision int64) bool {
	return z.Revision >= minRevision
}

// Signer produces and validates zookie MACs. The key is supplied at
// startup (spec §6 "Optional keyed MAC secret"); it is for tamper
// detection, not secrecy, so HMAC-SHA256 truncated to 8 hex chars is
// sufficient and rotation is out of scope (§9).
type Signer struct {
	key []byte
}

// NewSigner builds a Signer from the configured MAC key.
func NewSigner(key []byte) *Signer {
	return &Signer{key: key}
}

// Encode produces the opaque token "v1.{b64url(tenant)}.{revision}.{created_at_ms}.{mac}".
func (s *Signer) Encode(tenant string, revision int64) string {
	createdAtMs := time.Now().UnixMilli()
	tenantB64 := base64.RawURLEncoding.EncodeToString([]byte(tenant))
	payload := fmt.Sprintf("%s.%s.%d.%d", zookieVersion, tenantB64, revision, createdAtMs)
	mac := s.checksum(payload)

	return payload + "." + mac
}

// Decode parses and validates an opaque token, returning InvalidZookieError
// on any signature, version, or format failure.
func (s *Signer) Decode(token string) (Zookie, error) {
	if token == "" {
		return Zookie{}, &merrors.InvalidZookieError{Reason: "empty token", Token: token}
	}

	parts := strings.Split(token, ".")
	if len(parts) != 5 {
		return Zookie{}, &merrors.InvalidZookieError{
			Reason: fmt.Sprintf("expected 5 parts, got %d", len(parts)),
			Token:  token,
		}
	}

	version, tenantB64, revisionStr, createdAtStr, mac := parts[0], parts[1], parts[2], parts[3], parts[4]

	if version != zookieVersion {
		return Zookie{}, &merrors.InvalidZookieError{
			Reason: fmt.Sprintf("unsupported version %q", version),
			Token:  token,
		}
	}

	payload := fmt.Sprintf("%s.%s.%s.%s", version, tenantB64, revisionStr, createdAtStr)
	expected := s.checksum(payload)

	if !hmac.Equal([]byte(mac), []byte(expected)) {
		return Zookie{}, &merrors.InvalidZookieError{Reason: "checksum mismatch", Token: token}
	}

	tenantBytes, err := base64.RawURLEncoding.DecodeString(tenantB64)
	if err != nil {
		return Zookie{}, &merrors.InvalidZookieError{Reason: "invalid tenant encoding", Token: token}
	}

	revision, err := strconv.ParseInt(revisionStr, 10, 64)
	if err != nil || revision < 0 {
		return Zookie{}, &merrors.InvalidZookieError{Reason: "invalid revision", Token: token}
	}

	createdAtMs, err := strconv.ParseInt(createdAtStr, 10, 64)
	if err != nil {
		return Zookie{}, &merrors.InvalidZookieError{Reason: "invalid timestamp", Token: token}
	}

	return Zookie{
		Tenant:      string(tenantBytes),
		Revision:    revision,
		CreatedAtMs: createdAtMs,
	}, nil
}

func (s *Signer) checksum(payload string) string {
	mac := hmac.New(sha256.New, s.key)
	mac.Write([]byte(payload))

	return fmt.Sprintf("%x", mac.Sum(nil))[:8]
}
