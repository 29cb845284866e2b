package wallet

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/algorand/go-algorand-sdk/v2/crypto"
	"github.com/algorand/go-algorand-sdk/v2/mnemonic"
	"github.com/algorand/go-algorand-sdk/v2/types"
)

// Wallet types.
const (
	TypeWatchOnly = "watch-only"
	TypeSigning   = "signing"
)

// Errors.
var (
	ErrWalletNotFound  = errors.New("wallet not found")
	ErrWalletExists    = errors.New("wallet already exists")
	ErrInvalidAddress  = errors.New("invalid Algorand address")
	ErrInvalidMnemonic = errors.New("invalid mnemonic")
	ErrWatchOnly       = errors.New("wallet is watch-only")
)

// Wallet holds metadata for a single account.
type Wallet struct {
	Name      string
	Address   string
	Type      string
	KeyRef    string // keychain reference for signing wallets
	IsDefault bool
	CreatedAt string
}

// Store is an interface for persisting wallets.
type Store interface {
	Load() ([]*Wallet, error)
	Save([]*Wallet) error
}

// Manager handles wallet CRUD.
type Manager struct {
	store   Store
	keys    KeystoreBackend
	wallets map[string]*Wallet
	loaded  bool
}

// Option configures a Manager.
type Option func(*Manager)

// WithInMemoryStore uses in-memory wallet and key storage (useful for tests).
func WithInMemoryStore() Option {
	return func(m *Manager) {
		m.store = &memStore{}
		m.keys = NewInMemoryKeystore()
	}
}

// WithStore sets a custom store.
func WithStore(s Store) Option {
	return func(m *Manager) {
		m.store = s
	}
}

// WithKeystore sets where mnemonics of signing wallets are kept.
func WithKeystore(ks KeystoreBackend) Option {
	return func(m *Manager) {
		m.keys = ks
	}
}

// NewManager creates a new wallet manager.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		wallets: make(map[string]*Wallet),
		store:   &memStore{},
		keys:    NewInMemoryKeystore(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Add registers a watch-only (or pre-built) wallet.
func (m *Manager) Add(name string, w *Wallet) error {
	if err := m.load(); err != nil {
		return err
	}
	if _, exists := m.wallets[name]; exists {
		return ErrWalletExists
	}
	if _, err := types.DecodeAddress(w.Address); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	w.Name = name
	if w.Type == "" {
		w.Type = TypeWatchOnly
	}
	if w.CreatedAt == "" {
		w.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	m.wallets[name] = w
	return m.persist()
}

// AddWithMnemonic derives the account address from a 25-word mnemonic and
// stores the wallet. The mnemonic itself goes to the keystore.
func (m *Manager) AddWithMnemonic(name, phrase string) error {
	if err := m.load(); err != nil {
		return err
	}
	if _, exists := m.wallets[name]; exists {
		return ErrWalletExists
	}

	phrase = normaliseMnemonic(phrase)
	sk, err := mnemonic.ToPrivateKey(phrase)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidMnemonic, err)
	}
	acct, err := crypto.AccountFromPrivateKey(sk)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidMnemonic, err)
	}

	return m.addSigning(name, acct.Address.String(), phrase)
}

// Generate creates a fresh account, stores it as a signing wallet and returns
// the mnemonic. The caller is expected to show it to the user exactly once.
func (m *Manager) Generate(name string) (*Wallet, string, error) {
	if err := m.load(); err != nil {
		return nil, "", err
	}
	if _, exists := m.wallets[name]; exists {
		return nil, "", ErrWalletExists
	}

	acct := crypto.GenerateAccount()
	phrase, err := mnemonic.FromPrivateKey(acct.PrivateKey)
	if err != nil {
		return nil, "", fmt.Errorf("encoding mnemonic: %w", err)
	}
	if err := m.addSigning(name, acct.Address.String(), phrase); err != nil {
		return nil, "", err
	}
	return m.wallets[name], phrase, nil
}

// ExportMnemonic returns the stored mnemonic of a signing wallet.
func (m *Manager) ExportMnemonic(name string) (string, error) {
	w, err := m.Get(name)
	if err != nil {
		return "", err
	}
	if w.Type != TypeSigning {
		return "", fmt.Errorf("%w: %q has no stored mnemonic", ErrWatchOnly, name)
	}
	return m.keys.Retrieve(w.KeyRef)
}

// Get returns a wallet by name.
func (m *Manager) Get(name string) (*Wallet, error) {
	if err := m.load(); err != nil {
		return nil, err
	}
	w, ok := m.wallets[name]
	if !ok {
		return nil, ErrWalletNotFound
	}
	return w, nil
}

// Remove deletes a wallet by name, along with its keystore entry.
func (m *Manager) Remove(name string) error {
	if err := m.load(); err != nil {
		return err
	}
	w, ok := m.wallets[name]
	if !ok {
		return ErrWalletNotFound
	}
	if w.KeyRef != "" {
		if err := m.keys.Delete(w.KeyRef); err != nil {
			return fmt.Errorf("deleting key: %w", err)
		}
	}
	delete(m.wallets, name)
	return m.persist()
}

// List returns all wallets sorted by name.
func (m *Manager) List() []*Wallet {
	m.load() //nolint:errcheck
	out := make([]*Wallet, 0, len(m.wallets))
	for _, w := range m.wallets {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// SetDefault marks a wallet as the default.
func (m *Manager) SetDefault(name string) error {
	if err := m.load(); err != nil {
		return err
	}
	if _, ok := m.wallets[name]; !ok {
		return ErrWalletNotFound
	}
	for _, w := range m.wallets {
		w.IsDefault = w.Name == name
	}
	return m.persist()
}

// Default returns the default wallet, or nil if none.
func (m *Manager) Default() *Wallet {
	m.load() //nolint:errcheck
	for _, w := range m.wallets {
		if w.IsDefault {
			return w
		}
	}
	// Fallback: return first wallet if only one exists.
	if len(m.wallets) == 1 {
		for _, w := range m.wallets {
			return w
		}
	}
	return nil
}

// --- internal ---

func (m *Manager) addSigning(name, address, phrase string) error {
	ref, err := m.keys.Store(name, phrase)
	if err != nil {
		return fmt.Errorf("storing mnemonic: %w", err)
	}
	m.wallets[name] = &Wallet{
		Name:      name,
		Address:   address,
		Type:      TypeSigning,
		KeyRef:    ref,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	return m.persist()
}

func (m *Manager) load() error {
	if m.loaded {
		return nil
	}
	wallets, err := m.store.Load()
	if err != nil {
		return err
	}
	for _, w := range wallets {
		m.wallets[w.Name] = w
	}
	m.loaded = true
	return nil
}

func (m *Manager) persist() error {
	return m.store.Save(m.List())
}

// normaliseMnemonic lowercases and collapses whitespace so pasted phrases
// with line breaks or double spaces still decode.
func normaliseMnemonic(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// --- in-memory store ---

type memStore struct {
	wallets []*Wallet
}

func (s *memStore) Load() ([]*Wallet, error) {
	return s.wallets, nil
}

func (s *memStore) Save(wallets []*Wallet) error {
	s.wallets = wallets
	return nil
}

// --- JSON file store ---

// JSONStore persists wallets to a JSON file.
type JSONStore struct {
	path string
}

// NewJSONStore creates a JSON-backed wallet store.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

func (s *JSONStore) Load() ([]*Wallet, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var wallets []*Wallet
	if err := json.Unmarshal(data, &wallets); err != nil {
		return nil, err
	}
	return wallets, nil
}

func (s *JSONStore) Save(wallets []*Wallet) error {
	data, err := json.MarshalIndent(wallets, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}
