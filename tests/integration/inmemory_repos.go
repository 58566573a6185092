// Package integration wires the real service implementations against
// in-memory ports so full flows run without postgres, redis, or kafka.
package integration

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"agenin-transaction/internal/core/domain"
)

// memStore holds every table as a map guarded by one lock. Transactions
// snapshot the whole store on Begin and restore it on Rollback, which
// mirrors the all-or-nothing semantics of the real database layer.
type memStore struct {
	mu   sync.Mutex
	txMu sync.Mutex // serializes transactions, like row locks do

	transactions     map[uuid.UUID]domain.Transaction
	bankAccounts     map[uuid.UUID]domain.BankAccountDetail // keyed by transaction id
	balances         map[uuid.UUID]domain.UserBalance       // keyed by user id
	balanceHistories []domain.BalanceHistory
	wallets          map[uuid.UUID]domain.Wallet // keyed by user id
	walletHistories  []domain.WalletHistory
	referrals        map[uuid.UUID]domain.Referral   // keyed by invitee user id
	commissions      map[uuid.UUID]domain.Commission // keyed by product id
	products         map[uuid.UUID]domain.Product
	users            map[uuid.UUID]domain.User
}

func newMemStore() *memStore {
	return &memStore{
		transactions: make(map[uuid.UUID]domain.Transaction),
		bankAccounts: make(map[uuid.UUID]domain.BankAccountDetail),
		balances:     make(map[uuid.UUID]domain.UserBalance),
		wallets:      make(map[uuid.UUID]domain.Wallet),
		referrals:    make(map[uuid.UUID]domain.Referral),
		commissions:  make(map[uuid.UUID]domain.Commission),
		products:     make(map[uuid.UUID]domain.Product),
		users:        make(map[uuid.UUID]domain.User),
	}
}

type memSnapshot struct {
	transactions     map[uuid.UUID]domain.Transaction
	bankAccounts     map[uuid.UUID]domain.BankAccountDetail
	balances         map[uuid.UUID]domain.UserBalance
	balanceHistories []domain.BalanceHistory
	wallets          map[uuid.UUID]domain.Wallet
	walletHistories  []domain.WalletHistory
}

func (s *memStore) snapshot() *memSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := &memSnapshot{
		transactions:     make(map[uuid.UUID]domain.Transaction, len(s.transactions)),
		bankAccounts:     make(map[uuid.UUID]domain.BankAccountDetail, len(s.bankAccounts)),
		balances:         make(map[uuid.UUID]domain.UserBalance, len(s.balances)),
		balanceHistories: append([]domain.BalanceHistory(nil), s.balanceHistories...),
		wallets:          make(map[uuid.UUID]domain.Wallet, len(s.wallets)),
		walletHistories:  append([]domain.WalletHistory(nil), s.walletHistories...),
	}
	for k, v := range s.transactions {
		snap.transactions[k] = v
	}
	for k, v := range s.bankAccounts {
		snap.bankAccounts[k] = v
	}
	for k, v := range s.balances {
		snap.balances[k] = v
	}
	for k, v := range s.wallets {
		snap.wallets[k] = v
	}
	return snap
}

func (s *memStore) restore(snap *memSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = snap.transactions
	s.bankAccounts = snap.bankAccounts
	s.balances = snap.balances
	s.balanceHistories = snap.balanceHistories
	s.wallets = snap.wallets
	s.walletHistories = snap.walletHistories
}

// memTx satisfies pgx.Tx over the snapshot mechanism.
type memTx struct {
	pgx.Tx
	store *memStore
	snap  *memSnapshot
	done  bool
	mu    sync.Mutex
}

func (t *memTx) Commit(context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.done {
		t.done = true
		t.store.txMu.Unlock()
	}
	return nil
}

func (t *memTx) Rollback(context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.done {
		t.store.restore(t.snap)
		t.done = true
		t.store.txMu.Unlock()
	}
	return nil
}

// memTransactor implements ports.DBTransactor.
type memTransactor struct{ store *memStore }

func (m *memTransactor) Begin(context.Context) (pgx.Tx, error) {
	m.store.txMu.Lock()
	return &memTx{store: m.store, snap: m.store.snapshot()}, nil
}

// Repositories. Methods that take a pgx.Tx ignore it: isolation comes
// from the transactor's serialization and snapshots.

type memTransactionRepo struct{ store *memStore }

func (r *memTransactionRepo) Create(_ context.Context, _ pgx.Tx, txn *domain.Transaction) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.transactions[txn.ID] = *txn
	return nil
}

func (r *memTransactionRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Transaction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if txn, ok := r.store.transactions[id]; ok {
		return &txn, nil
	}
	return nil, nil
}

func (r *memTransactionRepo) ListByUserID(_ context.Context, userID uuid.UUID) ([]domain.Transaction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []domain.Transaction
	for _, txn := range r.store.transactions {
		if txn.UserID == userID {
			out = append(out, txn)
		}
	}
	return out, nil
}

type memBankAccountRepo struct{ store *memStore }

func (r *memBankAccountRepo) Create(_ context.Context, _ pgx.Tx, detail *domain.BankAccountDetail) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.bankAccounts[detail.TransactionID] = *detail
	return nil
}

func (r *memBankAccountRepo) GetByTransactionID(_ context.Context, transactionID uuid.UUID) (*domain.BankAccountDetail, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if detail, ok := r.store.bankAccounts[transactionID]; ok {
		return &detail, nil
	}
	return nil, nil
}

type memBalanceRepo struct{ store *memStore }

func (r *memBalanceRepo) Create(_ context.Context, _ pgx.Tx, balance *domain.UserBalance) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.balances[balance.UserID] = *balance
	return nil
}

func (r *memBalanceRepo) GetByUserID(_ context.Context, userID uuid.UUID) (*domain.UserBalance, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if balance, ok := r.store.balances[userID]; ok {
		return &balance, nil
	}
	return nil, nil
}

func (r *memBalanceRepo) GetByUserIDForUpdate(ctx context.Context, _ pgx.Tx, userID uuid.UUID) (*domain.UserBalance, error) {
	return r.GetByUserID(ctx, userID)
}

func (r *memBalanceRepo) UpdateAmount(_ context.Context, _ pgx.Tx, id uuid.UUID, amount decimal.Decimal, lastUpdate time.Time) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for userID, balance := range r.store.balances {
		if balance.ID == id {
			balance.BalanceAmount = amount
			balance.LastUpdate = lastUpdate
			r.store.balances[userID] = balance
			return nil
		}
	}
	return pgx.ErrNoRows
}

type memBalanceHistoryRepo struct{ store *memStore }

func (r *memBalanceHistoryRepo) Create(_ context.Context, _ pgx.Tx, history *domain.BalanceHistory) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.balanceHistories = append(r.store.balanceHistories, *history)
	return nil
}

func (r *memBalanceHistoryRepo) ListByTransactionID(_ context.Context, transactionID uuid.UUID) ([]domain.BalanceHistory, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []domain.BalanceHistory
	for _, h := range r.store.balanceHistories {
		if h.TransactionID == transactionID {
			out = append(out, h)
		}
	}
	return out, nil
}

type memWalletRepo struct{ store *memStore }

func (r *memWalletRepo) Create(_ context.Context, _ pgx.Tx, wallet *domain.Wallet) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.wallets[wallet.UserID] = *wallet
	return nil
}

func (r *memWalletRepo) GetByUserID(_ context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if wallet, ok := r.store.wallets[userID]; ok {
		return &wallet, nil
	}
	return nil, nil
}

func (r *memWalletRepo) GetByUserIDForUpdate(ctx context.Context, _ pgx.Tx, userID uuid.UUID) (*domain.Wallet, error) {
	return r.GetByUserID(ctx, userID)
}

func (r *memWalletRepo) UpdateAmount(_ context.Context, _ pgx.Tx, id uuid.UUID, amount decimal.Decimal, lastUpdate time.Time) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for userID, wallet := range r.store.wallets {
		if wallet.ID == id {
			wallet.Amount = amount
			wallet.LastUpdate = lastUpdate
			r.store.wallets[userID] = wallet
			return nil
		}
	}
	return pgx.ErrNoRows
}

type memWalletHistoryRepo struct{ store *memStore }

func (r *memWalletHistoryRepo) Create(_ context.Context, _ pgx.Tx, history *domain.WalletHistory) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.walletHistories = append(r.store.walletHistories, *history)
	return nil
}

type memReferralRepo struct{ store *memStore }

func (r *memReferralRepo) GetByInviteeUserID(_ context.Context, inviteeUserID uuid.UUID) (*domain.Referral, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if ref, ok := r.store.referrals[inviteeUserID]; ok {
		return &ref, nil
	}
	return nil, nil
}

type memCommissionRepo struct{ store *memStore }

func (r *memCommissionRepo) GetByProductID(_ context.Context, productID uuid.UUID) (*domain.Commission, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if commission, ok := r.store.commissions[productID]; ok {
		return &commission, nil
	}
	return nil, nil
}

type memProductRepo struct{ store *memStore }

func (r *memProductRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if product, ok := r.store.products[id]; ok {
		return &product, nil
	}
	return nil, nil
}

func (r *memProductRepo) FindAll(_ context.Context) ([]domain.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := make([]domain.Product, 0, len(r.store.products))
	for _, p := range r.store.products {
		out = append(out, p)
	}
	return out, nil
}

type memUserDirectory struct{ store *memStore }

func (r *memUserDirectory) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if user, ok := r.store.users[id]; ok {
		return &user, nil
	}
	return nil, nil
}

// memCache implements ports.ResponseCache.
type memCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newMemCache() *memCache {
	return &memCache{entries: make(map[string][]byte)}
}

func (c *memCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries[key], nil
}

func (c *memCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = append([]byte(nil), value...)
	return nil
}

func (c *memCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range keys {
		delete(c.entries, key)
	}
	return nil
}

// memBridge implements ports.MessageBridge, recording everything sent.
type memBridge struct {
	mu   sync.Mutex
	sent []sentMessage
}

type sentMessage struct {
	Destination string
	Payload     []byte
}

func (b *memBridge) SendAsync(_ context.Context, destination string, payload []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sent = append(b.sent, sentMessage{Destination: destination, Payload: append([]byte(nil), payload...)})
	return nil
}

func (b *memBridge) SendSync(context.Context, string, string, []byte) ([]byte, error) {
	return nil, nil
}

func (b *memBridge) messages() []sentMessage {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]sentMessage(nil), b.sent...)
}
