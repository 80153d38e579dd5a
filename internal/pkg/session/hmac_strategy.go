package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/elbekdesign/storefront/internal/domain/model"
)

var ErrInvalidToken = errors.New("invalid session token")

// HMACStrategy implements session token creation/verification using HMAC
// signatures. The token embeds the viewer identity, so no server-side session
// store is needed; identity changes arrive as a new token, never as ambient
// state.
type HMACStrategy struct {
	secret []byte
	ttl    time.Duration
}

// NewHMACStrategy builds HMACStrategy with provided secret and options.
func NewHMACStrategy(secret string, opts Options) *HMACStrategy {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &HMACStrategy{secret: []byte(secret), ttl: ttl}
}

// IssueToken generates a signed session token for the viewer.
func (s *HMACStrategy) IssueToken(viewer model.Viewer) (string, error) {
	if viewer.ID == "" {
		return "", ErrInvalidToken
	}

	identity, err := json.Marshal(viewer)
	if err != nil {
		return "", err
	}

	expires := time.Now().Add(s.ttl).Unix()
	payload := fmt.Sprintf("%s:%d", base64.RawURLEncoding.EncodeToString(identity), expires)
	sig := s.sign(payload)
	token := fmt.Sprintf("%s:%s", payload, sig)
	return base64.StdEncoding.EncodeToString([]byte(token)), nil
}

// ParseToken validates the token and returns the embedded viewer.
func (s *HMACStrategy) ParseToken(token string) (model.Viewer, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return model.Viewer{}, ErrInvalidToken
	}

	parts := strings.Split(string(raw), ":")
	if len(parts) != 3 {
		return model.Viewer{}, ErrInvalidToken
	}

	payload := strings.Join(parts[:2], ":")
	expectedSig := s.sign(payload)
	if !hmac.Equal([]byte(expectedSig), []byte(parts[2])) {
		return model.Viewer{}, ErrInvalidToken
	}

	expires, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return model.Viewer{}, ErrInvalidToken
	}
	if time.Unix(expires, 0).Before(time.Now()) {
		return model.Viewer{}, ErrInvalidToken
	}

	identity, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return model.Viewer{}, ErrInvalidToken
	}

	var viewer model.Viewer
	if err := json.Unmarshal(identity, &viewer); err != nil {
		return model.Viewer{}, ErrInvalidToken
	}
	if viewer.ID == "" {
		return model.Viewer{}, ErrInvalidToken
	}

	return viewer, nil
}

func (s *HMACStrategy) Name() string {
	return "hmac"
}

func (s *HMACStrategy) sign(payload string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
