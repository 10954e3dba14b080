package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/stationchief/station-backend/internal/domain"
)

// secretKeyLabel is the fixed key Telegram specifies for deriving the init-data
// signing key from a bot token.
const secretKeyLabel = "WebAppData"

// DefaultCacheSize bounds the verified-token cache. The client re-sends the
// same init data on every poll, so a small cache absorbs almost all repeat
// HMAC work.
const DefaultCacheSize = 1024

// Verifier validates Telegram Mini App init data against the bot token.
// Verification is a pure function of the token; the cache only memoizes
// results for byte-identical, already verified inputs.
type Verifier struct {
	secretKey []byte
	cache     *lru.Cache[string, domain.TelegramUser]
}

// NewVerifier derives the signing key from the bot token and prepares the
// verified-token cache.
func NewVerifier(botToken string, cacheSize int) (*Verifier, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := lru.New[string, domain.TelegramUser](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth cache: %w", err)
	}

	mac := hmac.New(sha256.New, []byte(secretKeyLabel))
	mac.Write([]byte(botToken))

	return &Verifier{
		secretKey: mac.Sum(nil),
		cache:     cache,
	}, nil
}

// Verify checks the init-data signature and returns the embedded user.
// Failure modes: domain.ErrInvalidInitData for an unparsable token, a missing
// hash field or a signature mismatch; domain.ErrInvalidUser when the signature
// holds but the embedded user payload is missing or lacks an id.
func (v *Verifier) Verify(initData string) (domain.TelegramUser, error) {
	if user, ok := v.cache.Get(initData); ok {
		return user, nil
	}

	params, err := url.ParseQuery(initData)
	if err != nil {
		return domain.TelegramUser{}, fmt.Errorf("%w: malformed query", domain.ErrInvalidInitData)
	}

	hash := params.Get("hash")
	if hash == "" {
		return domain.TelegramUser{}, fmt.Errorf("%w: missing hash", domain.ErrInvalidInitData)
	}

	calculated := v.sign(dataCheckString(params))
	if !constantTimeEqual(calculated, hash) {
		return domain.TelegramUser{}, fmt.Errorf("%w: signature mismatch", domain.ErrInvalidInitData)
	}

	userJSON := params.Get("user")
	if userJSON == "" {
		return domain.TelegramUser{}, fmt.Errorf("%w: missing user field", domain.ErrInvalidUser)
	}
	var user domain.TelegramUser
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		return domain.TelegramUser{}, fmt.Errorf("%w: %v", domain.ErrInvalidUser, err)
	}
	if user.ID == 0 {
		return domain.TelegramUser{}, fmt.Errorf("%w: missing user id", domain.ErrInvalidUser)
	}

	v.cache.Add(initData, user)
	return user, nil
}

// dataCheckString builds the canonical signing input: every key except hash,
// sorted lexicographically, joined as key=value lines. Pair order in the
// original token does not affect the result.
func dataCheckString(params url.Values) string {
	keys := make([]string, 0, len(params))
	for key := range params {
		if key == "hash" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, key+"="+params.Get(key))
	}
	return strings.Join(pairs, "\n")
}

// sign computes the hex-encoded HMAC-SHA256 of the canonical string under the
// derived secret key.
func (v *Verifier) sign(dataCheck string) string {
	mac := hmac.New(sha256.New, v.secretKey)
	mac.Write([]byte(dataCheck))
	return hex.EncodeToString(mac.Sum(nil))
}

// constantTimeEqual compares two signatures without leaking a timing side
// channel.
func constantTimeEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
