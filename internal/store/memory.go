// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/go-tax-keeper/models"
	"github.com/shopspring/decimal"
)

// MemoryStore implements every repository interface and [Transactor] in
// process memory. It is selected with the DSN "memory" and backs the
// service tests.
//
// A transaction holds a per-profile lock from GetForUpdate until it ends.
// Its writes are staged and become visible to others only on commit.
type MemoryStore struct {
	mu sync.RWMutex

	users    map[int64]models.User
	profiles map[int64]models.TaxProfile
	payments map[int64]models.Payment

	nextUserID    int64
	nextProfileID int64
	nextPaymentID int64

	locksMu sync.Mutex
	locks   map[int64]chan struct{}

	lockTimeout time.Duration
	now         func() time.Time
}

// NewMemoryStore creates an empty store. A positive lockTimeout bounds how
// long GetForUpdate waits for a profile held by another transaction.
func NewMemoryStore(lockTimeout time.Duration) *MemoryStore {
	return &MemoryStore{
		users:       make(map[int64]models.User),
		profiles:    make(map[int64]models.TaxProfile),
		payments:    make(map[int64]models.Payment),
		locks:       make(map[int64]chan struct{}),
		lockTimeout: lockTimeout,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// TaxProfiles returns a non-transactional [TaxProfileRepository].
func (m *MemoryStore) TaxProfiles() TaxProfileRepository {
	return &memoryTaxProfiles{store: m}
}

// Payments returns a non-transactional [PaymentRepository].
func (m *MemoryStore) Payments() PaymentRepository {
	return &memoryPayments{store: m}
}

// Close implements io.Closer.
func (m *MemoryStore) Close() error {
	return nil
}

// ── users ─────────────────────────────────────────────────────────────────────

func (m *MemoryStore) CreateUser(_ context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Email == user.Email {
			return models.User{}, ErrEmailAlreadyExists
		}
	}

	m.nextUserID++
	user.UserID = m.nextUserID
	user.CreatedAt = m.now()
	m.users[user.UserID] = user

	return user, nil
}

func (m *MemoryStore) FindUserByID(_ context.Context, userID int64) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[userID]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}

func (m *MemoryStore) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

func (m *MemoryStore) UpdateUser(_ context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.users[user.UserID]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	for id, u := range m.users {
		if id != user.UserID && u.Email == user.Email {
			return models.User{}, ErrEmailAlreadyExists
		}
	}

	stored.Name = user.Name
	stored.Email = user.Email
	m.users[stored.UserID] = stored

	return stored, nil
}

func (m *MemoryStore) UpdatePassword(_ context.Context, userID int64, passwordHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.users[userID]
	if !ok {
		return ErrUserNotFound
	}
	stored.PasswordHash = passwordHash
	m.users[userID] = stored

	return nil
}

func (m *MemoryStore) ListUsersByRole(_ context.Context, role models.Role) ([]models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	users := make([]models.User, 0)
	for _, u := range m.users {
		if u.Role == role {
			users = append(users, u)
		}
	}
	sort.Slice(users, func(i, j int) bool {
		if users[i].Name != users[j].Name {
			return users[i].Name < users[j].Name
		}
		return users[i].UserID < users[j].UserID
	})

	return users, nil
}

// ── transactions ──────────────────────────────────────────────────────────────

// WithinTx implements [Transactor].
func (m *MemoryStore) WithinTx(ctx context.Context, fn func(ctx context.Context, uow UnitOfWork) error) error {
	tx := &memoryTx{
		store:    m,
		locked:   make(map[int64]struct{}),
		profiles: make(map[int64]models.TaxProfile),
	}
	defer tx.releaseLocks()

	if err := fn(ctx, tx); err != nil {
		return err
	}

	tx.commit()
	return nil
}

func (m *MemoryStore) profileLock(profileID int64) chan struct{} {
	m.locksMu.Lock()
	defer m.locksMu.Unlock()

	ch, ok := m.locks[profileID]
	if !ok {
		ch = make(chan struct{}, 1)
		m.locks[profileID] = ch
	}
	return ch
}

func (m *MemoryStore) acquire(ctx context.Context, profileID int64) error {
	ch := m.profileLock(profileID)

	var timeout <-chan time.Time
	if m.lockTimeout > 0 {
		timer := time.NewTimer(m.lockTimeout)
		defer timer.Stop()
		timeout = timer.C
	}

	select {
	case ch <- struct{}{}:
		return nil
	case <-timeout:
		return fmt.Errorf("%w: lock timeout on tax profile %d", ErrConcurrentUpdate, profileID)
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *MemoryStore) release(profileID int64) {
	<-m.profileLock(profileID)
}

type memoryTx struct {
	store    *MemoryStore
	locked   map[int64]struct{}
	profiles map[int64]models.TaxProfile
	payments []models.Payment
}

func (tx *memoryTx) TaxProfiles() TaxProfileRepository {
	return &memoryTaxProfiles{store: tx.store, tx: tx}
}

func (tx *memoryTx) Payments() PaymentRepository {
	return &memoryPayments{store: tx.store, tx: tx}
}

func (tx *memoryTx) commit() {
	m := tx.store
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, p := range tx.profiles {
		m.profiles[id] = p
	}
	for _, p := range tx.payments {
		m.payments[p.ID] = p
	}
}

func (tx *memoryTx) releaseLocks() {
	for id := range tx.locked {
		tx.store.release(id)
	}
}

// ── tax profiles ──────────────────────────────────────────────────────────────

type memoryTaxProfiles struct {
	store *MemoryStore
	tx    *memoryTx
}

// profile returns the staged version of a profile when the view is bound to
// a transaction, the committed one otherwise.
func (r *memoryTaxProfiles) profile(profileID int64) (models.TaxProfile, bool) {
	if r.tx != nil {
		if p, ok := r.tx.profiles[profileID]; ok {
			return p, true
		}
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	p, ok := r.store.profiles[profileID]
	return p, ok
}

func (r *memoryTaxProfiles) Create(_ context.Context, profile models.TaxProfile) (models.TaxProfile, error) {
	m := r.store
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, p := range m.profiles {
		if p.UserID == profile.UserID && p.FiscalYear == profile.FiscalYear {
			return models.TaxProfile{}, ErrDuplicateProfile
		}
	}

	m.nextProfileID++
	now := m.now()
	profile.ID = m.nextProfileID
	profile.CreatedAt = now
	profile.UpdatedAt = now
	m.profiles[profile.ID] = profile

	return profile, nil
}

func (r *memoryTaxProfiles) Get(_ context.Context, profileID int64) (models.TaxProfile, error) {
	p, ok := r.profile(profileID)
	if !ok {
		return models.TaxProfile{}, ErrTaxProfileNotFound
	}
	return p, nil
}

func (r *memoryTaxProfiles) GetForUpdate(ctx context.Context, profileID int64) (models.TaxProfile, error) {
	if _, ok := r.profile(profileID); !ok {
		return models.TaxProfile{}, ErrTaxProfileNotFound
	}

	if r.tx != nil {
		if _, held := r.tx.locked[profileID]; !held {
			if err := r.store.acquire(ctx, profileID); err != nil {
				return models.TaxProfile{}, err
			}
			r.tx.locked[profileID] = struct{}{}
		}
	}

	// re-read: the previous holder may have committed while we waited
	p, _ := r.profile(profileID)
	return p, nil
}

func (r *memoryTaxProfiles) FindByFiscalYear(_ context.Context, userID int64, fiscalYear string) (models.TaxProfile, error) {
	for _, p := range r.all() {
		if p.UserID == userID && p.FiscalYear == fiscalYear {
			return p, nil
		}
	}
	return models.TaxProfile{}, ErrTaxProfileNotFound
}

func (r *memoryTaxProfiles) ListByUser(_ context.Context, userID int64) ([]models.TaxProfile, error) {
	profiles := make([]models.TaxProfile, 0)
	for _, p := range r.all() {
		if p.UserID == userID {
			profiles = append(profiles, p)
		}
	}
	sort.Slice(profiles, func(i, j int) bool {
		if profiles[i].FiscalYear != profiles[j].FiscalYear {
			return profiles[i].FiscalYear > profiles[j].FiscalYear
		}
		return profiles[i].ID > profiles[j].ID
	})
	return profiles, nil
}

func (r *memoryTaxProfiles) UpdatePaidAndStatus(_ context.Context, profileID int64, taxPaid decimal.Decimal, status models.TaxStatus) (models.TaxProfile, error) {
	p, ok := r.profile(profileID)
	if !ok {
		return models.TaxProfile{}, ErrTaxProfileNotFound
	}

	p.TaxPaid = taxPaid
	p.Status = status
	p.UpdatedAt = r.store.now()

	if r.tx != nil {
		r.tx.profiles[profileID] = p
		return p, nil
	}

	r.store.mu.Lock()
	r.store.profiles[profileID] = p
	r.store.mu.Unlock()
	return p, nil
}

func (r *memoryTaxProfiles) all() []models.TaxProfile {
	r.store.mu.RLock()
	profiles := make([]models.TaxProfile, 0, len(r.store.profiles))
	for id, p := range r.store.profiles {
		if r.tx != nil {
			if staged, ok := r.tx.profiles[id]; ok {
				p = staged
			}
		}
		profiles = append(profiles, p)
	}
	r.store.mu.RUnlock()
	return profiles
}

// ── payments ──────────────────────────────────────────────────────────────────

type memoryPayments struct {
	store *MemoryStore
	tx    *memoryTx
}

func (r *memoryPayments) Append(_ context.Context, payment models.Payment) (models.Payment, error) {
	m := r.store

	m.mu.Lock()
	m.nextPaymentID++
	payment.ID = m.nextPaymentID
	payment.PaymentDate = m.now()
	if payment.TransactionID != nil {
		txnID := *payment.TransactionID
		payment.TransactionID = &txnID
	}
	payment.FiscalYear = ""
	if r.tx == nil {
		m.payments[payment.ID] = payment
	}
	m.mu.Unlock()

	if r.tx != nil {
		r.tx.payments = append(r.tx.payments, payment)
	}

	return payment, nil
}

func (r *memoryPayments) Get(_ context.Context, paymentID int64) (models.Payment, error) {
	for _, p := range r.all() {
		if p.ID == paymentID {
			return p, nil
		}
	}
	return models.Payment{}, ErrPaymentNotFound
}

func (r *memoryPayments) List(_ context.Context, filter models.PaymentFilter) ([]models.Payment, error) {
	payments := make([]models.Payment, 0)
	for _, p := range r.all() {
		if filter.UserID != 0 && p.UserID != filter.UserID {
			continue
		}
		if filter.TaxProfileID != 0 && p.TaxProfileID != filter.TaxProfileID {
			continue
		}
		if filter.FiscalYear != "" && p.FiscalYear != filter.FiscalYear {
			continue
		}
		payments = append(payments, p)
	}
	sort.Slice(payments, func(i, j int) bool {
		if !payments[i].PaymentDate.Equal(payments[j].PaymentDate) {
			return payments[i].PaymentDate.After(payments[j].PaymentDate)
		}
		return payments[i].ID > payments[j].ID
	})
	return payments, nil
}

func (r *memoryPayments) Summary(_ context.Context, userID int64) (models.PaymentSummary, error) {
	summary := models.PaymentSummary{TotalPaid: decimal.Zero}
	for _, p := range r.all() {
		if p.UserID != userID {
			continue
		}
		summary.TotalPaid = summary.TotalPaid.Add(p.Amount)
		summary.PaymentCount++
		if summary.LastPaymentDate == nil || p.PaymentDate.After(*summary.LastPaymentDate) {
			date := p.PaymentDate
			summary.LastPaymentDate = &date
		}
	}
	return summary, nil
}

// all returns committed payments plus the ones staged by the transaction,
// each with the fiscal year of its profile.
func (r *memoryPayments) all() []models.Payment {
	m := r.store
	m.mu.RLock()
	defer m.mu.RUnlock()

	payments := make([]models.Payment, 0, len(m.payments))
	for _, p := range m.payments {
		payments = append(payments, p)
	}
	if r.tx != nil {
		payments = append(payments, r.tx.payments...)
	}

	for i := range payments {
		profile, ok := m.profiles[payments[i].TaxProfileID]
		if r.tx != nil {
			if staged, stagedOK := r.tx.profiles[payments[i].TaxProfileID]; stagedOK {
				profile, ok = staged, true
			}
		}
		if ok {
			payments[i].FiscalYear = profile.FiscalYear
		}
	}

	return payments
}
