package paygate

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/intercity/internal/pkg/models"
)

var (
	ErrChargeNotFound  = errors.New("charge not found")
	ErrDuplicateCharge = errors.New("charge reference already used")
	ErrChargeState     = errors.New("charge cannot move to the requested state")
)

// Charge is the sandbox's record of one charge
type Charge struct {
	models.ChargeResult
	Method    string    `json:"method"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Store keeps charges in memory
type Store struct {
	mu      sync.RWMutex
	charges map[string]*Charge
	now     func() time.Time
}

// NewStore creates an empty charge store
func NewStore() *Store {
	return &Store{
		charges: make(map[string]*Charge),
		now:     models.Now,
	}
}

// Create opens a pending charge for req
func (s *Store) Create(req models.ChargeRequest, authorizationURL string) (Charge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.charges[req.Reference]; exists {
		return Charge{}, ErrDuplicateCharge
	}

	now := s.now()
	c := &Charge{
		ChargeResult: models.ChargeResult{
			Reference:            req.Reference,
			Status:               models.ChargeStatusPending,
			Amount:               req.Amount,
			GatewayTransactionID: "txn_" + uuid.NewString(),
			AuthorizationURL:     authorizationURL,
		},
		Method:    req.Method,
		Email:     req.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.charges[req.Reference] = c
	return *c, nil
}

// Get returns the charge with reference
func (s *Store) Get(reference string) (Charge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.charges[reference]
	if !ok {
		return Charge{}, ErrChargeNotFound
	}
	return *c, nil
}

// Transition moves a charge from one of from to status to
func (s *Store) Transition(reference string, to models.ChargeStatus, from ...models.ChargeStatus) (Charge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.charges[reference]
	if !ok {
		return Charge{}, ErrChargeNotFound
	}

	allowed := false
	for _, f := range from {
		if c.Status == f {
			allowed = true
			break
		}
	}
	if !allowed {
		return *c, ErrChargeState
	}

	c.Status = to
	c.UpdatedAt = s.now()
	return *c, nil
}
