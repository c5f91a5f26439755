package auth

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"lorrylink/internal/pkg/errs"
)

// DefaultCodeTTL is how long a sent verification code stays redeemable.
const DefaultCodeTTL = 5 * time.Minute

// ErrCodeMismatch is returned when a presented verification code is wrong,
// expired, or was never sent. The three cases are indistinguishable to the
// caller on purpose.
var ErrCodeMismatch = errors.New("verification code does not match")

// CodeStore is the expiring email-to-code mapping the OTP service writes to.
// Implementations must be safe for concurrent use.
type CodeStore interface {
	// Put stores a code for the email, replacing any previous one.
	Put(email, code string, expiresAt time.Time)

	// Get returns the stored code and its expiry for the email.
	Get(email string) (code string, expiresAt time.Time, ok bool)

	// Delete removes the email's code if present.
	Delete(email string)

	// EvictExpired removes every code whose expiry is not after now and
	// returns how many were removed.
	EvictExpired(now time.Time) int
}

// MemoryCodeStore is an in-memory CodeStore backed by a mutex-guarded map.
type MemoryCodeStore struct {
	mu    sync.Mutex
	codes map[string]storedCode
}

type storedCode struct {
	code      string
	expiresAt time.Time
}

// NewMemoryCodeStore creates an empty in-memory code store.
func NewMemoryCodeStore() *MemoryCodeStore {
	return &MemoryCodeStore{codes: make(map[string]storedCode)}
}

// Put stores a code for the email, replacing any previous one.
func (s *MemoryCodeStore) Put(email, code string, expiresAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.codes[email] = storedCode{code: code, expiresAt: expiresAt}
}

// Get returns the stored code and its expiry for the email.
func (s *MemoryCodeStore) Get(email string) (string, time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.codes[email]
	if !ok {
		return "", time.Time{}, false
	}
	return entry.code, entry.expiresAt, true
}

// Delete removes the email's code if present.
func (s *MemoryCodeStore) Delete(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.codes, email)
}

// EvictExpired removes every expired code and returns how many were removed.
func (s *MemoryCodeStore) EvictExpired(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for email, entry := range s.codes {
		if !entry.expiresAt.After(now) {
			delete(s.codes, email)
			evicted++
		}
	}
	return evicted
}

// OTPService sends and verifies one-time email verification codes against an
// injected expiring store. Sending is a stub: the code is returned to the
// caller instead of being delivered over email.
type OTPService struct {
	store CodeStore
	ttl   time.Duration
	now   func() time.Time
}

// NewOTPService creates an OTP service over the given store with DefaultCodeTTL.
func NewOTPService(store CodeStore) (*OTPService, error) {
	if store == nil {
		return nil, errs.NewValueIsRequiredError("store")
	}

	return &OTPService{
		store: store,
		ttl:   DefaultCodeTTL,
		now:   time.Now,
	}, nil
}

// SendCode generates a six-digit code for the email, stores it with a TTL,
// and returns it. A repeated send replaces the previous code.
func (s *OTPService) SendCode(email string) (string, error) {
	if email == "" {
		return "", errs.NewValueIsRequiredError("email")
	}

	code, err := generateCode()
	if err != nil {
		return "", err
	}

	s.store.Put(email, code, s.now().Add(s.ttl))
	return code, nil
}

// VerifyCode checks the presented code for the email and consumes it on
// success. Expired codes are rejected and dropped.
func (s *OTPService) VerifyCode(email, code string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}

	stored, expiresAt, ok := s.store.Get(email)
	if !ok {
		return ErrCodeMismatch
	}

	if !expiresAt.After(s.now()) {
		s.store.Delete(email)
		return ErrCodeMismatch
	}

	if stored != code {
		return ErrCodeMismatch
	}

	s.store.Delete(email)
	return nil
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
