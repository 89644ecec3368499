package rider

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"fixxo/internal/pkg/errs"
	"fixxo/internal/pkg/guard"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters embedded into every stored hash. Verification reads
// the parameters back from the hash string, so these can change without
// invalidating existing credentials.
const (
	argonMemoryKB    = 64 * 1024
	argonTime        = 1
	argonParallelism = 4
	argonSaltLen     = 16
	argonKeyLen      = 32
)

const (
	tokenCharset   = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	tokenLength    = 12
	suffixCharset  = "abcdefghijklmnopqrstuvwxyz0123456789"
	suffixLength   = 5
	usernameJoiner = "_"
)

var (
	// ErrCredentialsAreNotConstructed is returned when using improperly
	// initialized Credentials.
	ErrCredentialsAreNotConstructed = errs.NewValueIsRequiredError(
		"credentials must be created via GenerateCredentials or RestoreCredentials")

	// ErrInvalidTokenHash signals a malformed stored hash string.
	ErrInvalidTokenHash = fmt.Errorf("invalid argon2id token hash")
)

// Credentials is the rider's portal login pair: a derived username and the
// argon2id hash of the access token. The plaintext token exists only at
// generation time; it is returned once to the administrator and never
// persisted.
type Credentials struct {
	username  string
	tokenHash string
	guard     guard.ConstructorGuard
}

// GenerateCredentials derives a username from the rider's name (lowercased,
// spaces collapsed to underscores, random suffix for uniqueness), mints a
// random access token, and stores its argon2id hash. Returns the credentials
// and the one-time plaintext token.
func GenerateCredentials(name string) (Credentials, string, error) {
	if strings.TrimSpace(name) == "" {
		return Credentials{}, "", errs.NewValueIsRequiredError("name")
	}

	suffix, err := randomString(suffixCharset, suffixLength)
	if err != nil {
		return Credentials{}, "", fmt.Errorf("generate username suffix: %w", err)
	}
	username := usernameSlug(name) + usernameJoiner + suffix

	token, err := randomString(tokenCharset, tokenLength)
	if err != nil {
		return Credentials{}, "", fmt.Errorf("generate token: %w", err)
	}

	hash, err := hashToken(token)
	if err != nil {
		return Credentials{}, "", err
	}

	return Credentials{
		username:  username,
		tokenHash: hash,
		guard:     guard.NewConstructorGuard(),
	}, token, nil
}

// RestoreCredentials reconstructs Credentials from persisted storage.
func RestoreCredentials(username, tokenHash string) (Credentials, error) {
	if username == "" {
		return Credentials{}, errs.NewValueIsRequiredError("username")
	}
	if tokenHash == "" {
		return Credentials{}, errs.NewValueIsRequiredError("tokenHash")
	}

	return Credentials{
		username:  username,
		tokenHash: tokenHash,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Username returns the portal login name.
func (c Credentials) Username() string {
	return c.username
}

// TokenHash returns the stored argon2id hash for persistence.
func (c Credentials) TokenHash() string {
	return c.tokenHash
}

// Validate ensures the Credentials were created through a constructor.
func (c Credentials) Validate() error {
	return c.guard.Validate(ErrCredentialsAreNotConstructed)
}

// VerifyToken reports whether the supplied plaintext token matches the
// stored hash. Comparison is constant-time. Returns an error only for a
// malformed stored hash; a plain mismatch is (false, nil).
func (c Credentials) VerifyToken(token string) (bool, error) {
	memory, timeCost, threads, salt, hash, err := decodeTokenHash(c.tokenHash)
	if err != nil {
		return false, err
	}

	computed := argon2.IDKey([]byte(token), salt, timeCost, memory, threads, uint32(len(hash)))
	return subtle.ConstantTimeCompare(hash, computed) == 1, nil
}

func usernameSlug(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(name))), usernameJoiner)
}

func hashToken(token string) (string, error) {
	salt := make([]byte, argonSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	hash := argon2.IDKey([]byte(token), salt, argonTime, argonMemoryKB, argonParallelism, argonKeyLen)

	encSalt := base64.RawStdEncoding.EncodeToString(salt)
	encHash := base64.RawStdEncoding.EncodeToString(hash)

	return fmt.Sprintf("$argon2id$v=19$m=%d,t=%d,p=%d$%s$%s",
		argonMemoryKB, argonTime, argonParallelism, encSalt, encHash), nil
}

func decodeTokenHash(encoded string) (memory uint32, timeCost uint32, threads uint8, salt, hash []byte, err error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return 0, 0, 0, nil, nil, ErrInvalidTokenHash
	}

	for _, token := range strings.Split(parts[3], ",") {
		keyValue := strings.SplitN(token, "=", 2)
		if len(keyValue) != 2 {
			return 0, 0, 0, nil, nil, ErrInvalidTokenHash
		}
		switch keyValue[0] {
		case "m":
			v, parseErr := strconv.ParseUint(keyValue[1], 10, 32)
			if parseErr != nil {
				return 0, 0, 0, nil, nil, ErrInvalidTokenHash
			}
			memory = uint32(v)
		case "t":
			v, parseErr := strconv.ParseUint(keyValue[1], 10, 32)
			if parseErr != nil {
				return 0, 0, 0, nil, nil, ErrInvalidTokenHash
			}
			timeCost = uint32(v)
		case "p":
			v, parseErr := strconv.ParseUint(keyValue[1], 10, 8)
			if parseErr != nil {
				return 0, 0, 0, nil, nil, ErrInvalidTokenHash
			}
			threads = uint8(v)
		}
	}

	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return 0, 0, 0, nil, nil, ErrInvalidTokenHash
	}
	hash, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return 0, 0, 0, nil, nil, ErrInvalidTokenHash
	}

	return memory, timeCost, threads, salt, hash, nil
}

func randomString(charset string, length int) (string, error) {
	result := make([]byte, length)
	for i := range result {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		result[i] = charset[idx.Int64()]
	}
	return string(result), nil
}
