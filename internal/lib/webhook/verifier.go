// Package webhook verifies Svix-signed Clerk webhook deliveries and decodes
// them into typed organization events.
package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	HeaderID        = "svix-id"
	HeaderTimestamp = "svix-timestamp"
	HeaderSignature = "svix-signature"
)

const (
	secretPrefix     = "whsec_"
	signatureVersion = "v1"

	// DefaultTolerance is the accepted skew between svix-timestamp and now.
	DefaultTolerance = 5 * time.Minute
)

var (
	ErrMissingSecret    = errors.New("webhook signing secret is not configured")
	ErrInvalidSecret    = errors.New("webhook signing secret is not valid base64")
	ErrMissingHeaders   = errors.New("missing svix headers")
	ErrInvalidSignature = errors.New("no matching signature found")
	ErrInvalidTimestamp = errors.New("invalid signature timestamp")
	ErrTimestampExpired = errors.New("signature timestamp outside allowed tolerance")
	ErrMalformedPayload = errors.New("malformed event payload")
)

// IsSignatureError reports whether err means the delivery could not be
// authenticated.
func IsSignatureError(err error) bool {
	return errors.Is(err, ErrInvalidSignature) ||
		errors.Is(err, ErrInvalidTimestamp) ||
		errors.Is(err, ErrTimestampExpired)
}

type Option func(*Verifier)

// WithTolerance overrides DefaultTolerance. Non-positive values are ignored.
func WithTolerance(d time.Duration) Option {
	return func(v *Verifier) {
		if d > 0 {
			v.tolerance = d
		}
	}
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(v *Verifier) {
		if now != nil {
			v.now = now
		}
	}
}

// Verifier checks svix-signature headers against a shared endpoint secret.
// It is safe for concurrent use.
type Verifier struct {
	key       []byte
	tolerance time.Duration
	now       func() time.Time
}

// NewVerifier decodes secret ("whsec_<base64>", prefix optional) into the HMAC
// key. Both error returns are configuration errors.
func NewVerifier(secret string, opts ...Option) (*Verifier, error) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return nil, ErrMissingSecret
	}

	key, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(secret, secretPrefix))
	if err != nil || len(key) == 0 {
		return nil, ErrInvalidSecret
	}

	v := &Verifier{
		key:       key,
		tolerance: DefaultTolerance,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v, nil
}

// Verify authenticates body against the svix headers and decodes the event.
func (v *Verifier) Verify(body []byte, headers http.Header) (Event, error) {
	msgID := headers.Get(HeaderID)
	rawTimestamp := headers.Get(HeaderTimestamp)
	signatures := headers.Get(HeaderSignature)
	if msgID == "" || rawTimestamp == "" || signatures == "" {
		return nil, ErrMissingHeaders
	}

	timestamp, err := v.checkTimestamp(rawTimestamp)
	if err != nil {
		return nil, err
	}

	expected := v.sign(msgID, timestamp, body)
	if !matchSignature(signatures, expected) {
		return nil, ErrInvalidSignature
	}

	event, err := Decode(body)
	if err != nil {
		return nil, err
	}
	return event, nil
}

// Sign returns the svix-signature header value for the given delivery.
func (v *Verifier) Sign(msgID string, timestamp time.Time, body []byte) string {
	return signatureVersion + "," + v.sign(msgID, timestamp.Unix(), body)
}

func (v *Verifier) sign(msgID string, timestamp int64, body []byte) string {
	mac := hmac.New(sha256.New, v.key)
	fmt.Fprintf(mac, "%s.%d.", msgID, timestamp)
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func (v *Verifier) checkTimestamp(raw string) (int64, error) {
	ts, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, ErrInvalidTimestamp
	}

	now := v.now().Unix()
	tolerance := int64(v.tolerance / time.Second)
	if ts < now-tolerance || ts > now+tolerance {
		return 0, ErrTimestampExpired
	}
	return ts, nil
}

// matchSignature scans the space separated "v1,<sig>" entries of the header.
// Entries for other versions are skipped.
func matchSignature(header, expected string) bool {
	for _, entry := range strings.Fields(header) {
		version, sig, ok := strings.Cut(entry, ",")
		if !ok || version != signatureVersion {
			continue
		}
		if hmac.Equal([]byte(sig), []byte(expected)) {
			return true
		}
	}
	return false
}
