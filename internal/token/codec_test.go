package token

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sheetvault/internal/domain"
)

const testSecret = "test-secret-32-bytes-long-xxxxx"

func testCodec(t *testing.T, at time.Time) *Codec {
	t.Helper()
	c, err := NewCodec([]byte(testSecret), 0)
	require.NoError(t, err)
	c.now = func() time.Time { return at }
	return c
}

func player() domain.Principal {
	return domain.Principal{ID: "u-1", Email: "a@b.com", Name: "Alice", IsMaster: false}
}

func TestNewCodec_RequiresSecret(t *testing.T) {
	_, err := NewCodec(nil, 0)
	require.Error(t, err)
}

func TestCodec_RoundTrip(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c := testCodec(t, now)

	tests := []struct {
		name      string
		principal domain.Principal
		wantRole  string
	}{
		{"player", player(), domain.RolePlayer},
		{"master", domain.Principal{ID: "u-2", Email: "gm@b.com", Name: "GM", IsMaster: true}, domain.RoleMaster},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signed, err := c.Issue(tt.principal)
			require.NoError(t, err)

			got, err := c.Verify(signed)
			require.NoError(t, err)
			assert.Equal(t, tt.principal.ID, got.ID)
			assert.Equal(t, tt.principal.Email, got.Email)
			assert.Equal(t, tt.principal.Name, got.Name)
			assert.Equal(t, tt.wantRole, got.Role())
		})
	}
}

func TestCodec_IssuanceIsNotIdempotent(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c := testCodec(t, now)

	first, err := c.Issue(player())
	require.NoError(t, err)

	c.now = func() time.Time { return now.Add(time.Second) }
	second, err := c.Issue(player())
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "different issuance instants must yield different tokens")
}

func TestCodec_ExpiryBoundary(t *testing.T) {
	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c := testCodec(t, issued)

	signed, err := c.Issue(player())
	require.NoError(t, err)

	tests := []struct {
		name    string
		at      time.Time
		wantErr bool
	}{
		{"just before expiry", issued.Add(12*time.Hour - time.Second), false},
		{"exactly at expiry", issued.Add(12 * time.Hour), true},
		{"just after expiry", issued.Add(12*time.Hour + time.Second), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c.now = func() time.Time { return tt.at }
			_, err := c.Verify(signed)
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			var verr *VerificationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, KindExpired, verr.Kind)
		})
	}
}

func TestCodec_TamperedSignature(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c := testCodec(t, now)

	signed, err := c.Issue(player())
	require.NoError(t, err)

	parts := strings.Split(signed, ".")
	require.Len(t, parts, 3)

	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = c.Verify(tampered)
	var verr *VerificationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, KindBadSignature, verr.Kind)
}

func TestCodec_TamperedPayload(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c := testCodec(t, now)

	signed, err := c.Issue(player())
	require.NoError(t, err)

	parts := strings.Split(signed, ".")
	require.Len(t, parts, 3)

	// Re-encode a claims payload that grants the MASTER role, keeping the
	// original signature. The signature no longer covers the payload, so
	// verification must fail closed instead of accepting the new claims.
	payload, err := json.Marshal(map[string]interface{}{
		"id":   "u-1",
		"name": "Alice",
		"role": "MASTER",
		"sub":  "a@b.com",
		"iat":  now.Unix(),
		"exp":  now.Add(12 * time.Hour).Unix(),
	})
	require.NoError(t, err)
	forged := base64.RawURLEncoding.EncodeToString(payload)
	tampered := parts[0] + "." + forged + "." + parts[2]

	_, err = c.Verify(tampered)
	var verr *VerificationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, KindBadSignature, verr.Kind)
}

func TestCodec_WrongSecret(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c := testCodec(t, now)

	other, err := NewCodec([]byte("another-secret-entirely-yyyyyyy"), 0)
	require.NoError(t, err)
	other.now = c.now

	signed, err := other.Issue(player())
	require.NoError(t, err)

	_, err = c.Verify(signed)
	var verr *VerificationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, KindBadSignature, verr.Kind)
}

func TestCodec_Malformed(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c := testCodec(t, now)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not-a-token"},
		{"two segments", "abc.def"},
		{"binary junk", "\x00\x01\x02"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Verify(tt.token)
			var verr *VerificationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, KindMalformed, verr.Kind)
		})
	}
}
