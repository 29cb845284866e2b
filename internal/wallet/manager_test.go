package wallet_test

import (
	"strings"
	"testing"

	"github.com/algorand/go-algorand-sdk/v2/crypto"
	"github.com/algorand/go-algorand-sdk/v2/mnemonic"
	"github.com/defa-pool/defa/internal/wallet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAddr(t *testing.T) string {
	t.Helper()
	return crypto.GenerateAccount().Address.String()
}

func TestAddWatchOnlyWallet(t *testing.T) {
	mgr := wallet.NewManager(wallet.WithInMemoryStore())
	addr := newAddr(t)

	err := mgr.Add("mywallet", &wallet.Wallet{Address: addr, Type: wallet.TypeWatchOnly})
	require.NoError(t, err)

	w, err := mgr.Get("mywallet")
	require.NoError(t, err)
	assert.Equal(t, "mywallet", w.Name)
	assert.Equal(t, addr, w.Address)
	assert.Equal(t, wallet.TypeWatchOnly, w.Type)
	assert.NotEmpty(t, w.CreatedAt)
}

func TestAddRejectsInvalidAddress(t *testing.T) {
	mgr := wallet.NewManager(wallet.WithInMemoryStore())
	err := mgr.Add("bad", &wallet.Wallet{Address: "0x1234567890abcdef1234567890abcdef12345678"})
	assert.ErrorIs(t, err, wallet.ErrInvalidAddress)
}

func TestAddDuplicateWalletErrors(t *testing.T) {
	mgr := wallet.NewManager(wallet.WithInMemoryStore())
	addr := newAddr(t)

	require.NoError(t, mgr.Add("dup", &wallet.Wallet{Address: addr}))
	err := mgr.Add("dup", &wallet.Wallet{Address: addr})
	assert.ErrorIs(t, err, wallet.ErrWalletExists)
}

func TestAddWithMnemonic(t *testing.T) {
	mgr := wallet.NewManager(wallet.WithInMemoryStore())
	acct := crypto.GenerateAccount()
	phrase, err := mnemonic.FromPrivateKey(acct.PrivateKey)
	require.NoError(t, err)

	// Pasted with a line break and mixed case.
	messy := strings.ToUpper(strings.Replace(phrase, " ", "\n", 3))
	require.NoError(t, mgr.AddWithMnemonic("signer", messy))

	w, err := mgr.Get("signer")
	require.NoError(t, err)
	assert.Equal(t, wallet.TypeSigning, w.Type)
	assert.Equal(t, acct.Address.String(), w.Address)
	assert.Equal(t, "defa.signer", w.KeyRef)

	exported, err := mgr.ExportMnemonic("signer")
	require.NoError(t, err)
	assert.Equal(t, phrase, exported)
}

func TestAddWithInvalidMnemonic(t *testing.T) {
	mgr := wallet.NewManager(wallet.WithInMemoryStore())
	err := mgr.AddWithMnemonic("bad", "not a valid mnemonic")
	assert.ErrorIs(t, err, wallet.ErrInvalidMnemonic)
}

func TestListWalletsSortedByName(t *testing.T) {
	mgr := wallet.NewManager(wallet.WithInMemoryStore())
	for _, n := range []string{"w3", "w1", "w2"} {
		require.NoError(t, mgr.Add(n, &wallet.Wallet{Address: newAddr(t)}))
	}

	wallets := mgr.List()
	require.Len(t, wallets, 3)
	assert.Equal(t, "w1", wallets[0].Name)
	assert.Equal(t, "w2", wallets[1].Name)
	assert.Equal(t, "w3", wallets[2].Name)
}

func TestRemoveWallet(t *testing.T) {
	mgr := wallet.NewManager(wallet.WithInMemoryStore())
	require.NoError(t, mgr.Add("w1", &wallet.Wallet{Address: newAddr(t)}))

	require.NoError(t, mgr.Remove("w1"))

	_, err := mgr.Get("w1")
	assert.ErrorIs(t, err, wallet.ErrWalletNotFound)
}

func TestRemoveSigningWalletDeletesKey(t *testing.T) {
	ks := wallet.NewInMemoryKeystore()
	mgr := wallet.NewManager(wallet.WithInMemoryStore(), wallet.WithKeystore(ks))
	w, _, err := mgr.Generate("gone")
	require.NoError(t, err)

	require.NoError(t, mgr.Remove("gone"))
	_, err = ks.Retrieve(w.KeyRef)
	assert.Error(t, err)
}

func TestRemoveNonExistentWallet(t *testing.T) {
	mgr := wallet.NewManager(wallet.WithInMemoryStore())
	err := mgr.Remove("ghost")
	assert.ErrorIs(t, err, wallet.ErrWalletNotFound)
}

func TestSetDefault(t *testing.T) {
	mgr := wallet.NewManager(wallet.WithInMemoryStore())
	require.NoError(t, mgr.Add("w1", &wallet.Wallet{Address: newAddr(t)}))
	require.NoError(t, mgr.Add("w2", &wallet.Wallet{Address: newAddr(t)}))

	require.NoError(t, mgr.SetDefault("w2"))

	def := mgr.Default()
	require.NotNil(t, def)
	assert.Equal(t, "w2", def.Name)
}

func TestSetDefaultUnknown(t *testing.T) {
	mgr := wallet.NewManager(wallet.WithInMemoryStore())
	assert.ErrorIs(t, mgr.SetDefault("ghost"), wallet.ErrWalletNotFound)
}

func TestDefaultWalletWithSingleWallet(t *testing.T) {
	mgr := wallet.NewManager(wallet.WithInMemoryStore())
	require.NoError(t, mgr.Add("only", &wallet.Wallet{Address: newAddr(t)}))

	def := mgr.Default()
	require.NotNil(t, def)
	assert.Equal(t, "only", def.Name)
}

func TestDefaultWalletNoneWithSeveral(t *testing.T) {
	mgr := wallet.NewManager(wallet.WithInMemoryStore())
	require.NoError(t, mgr.Add("a", &wallet.Wallet{Address: newAddr(t)}))
	require.NoError(t, mgr.Add("b", &wallet.Wallet{Address: newAddr(t)}))
	assert.Nil(t, mgr.Default())
}

// ---------------------------------------------------------------------------
// Generate
// ---------------------------------------------------------------------------

func TestGenerateWallet(t *testing.T) {
	mgr := wallet.NewManager(wallet.WithInMemoryStore())

	w, phrase, err := mgr.Generate("fresh")
	require.NoError(t, err)

	assert.Equal(t, "fresh", w.Name)
	assert.Equal(t, wallet.TypeSigning, w.Type)
	assert.Len(t, w.Address, 58)
	assert.Len(t, strings.Fields(phrase), 25)

	sk, err := mnemonic.ToPrivateKey(phrase)
	require.NoError(t, err)
	acct, err := crypto.AccountFromPrivateKey(sk)
	require.NoError(t, err)
	assert.Equal(t, w.Address, acct.Address.String(), "mnemonic must belong to the stored address")
}

func TestGenerateWalletDuplicateErrors(t *testing.T) {
	mgr := wallet.NewManager(wallet.WithInMemoryStore())
	_, _, err := mgr.Generate("dup")
	require.NoError(t, err)

	_, _, err = mgr.Generate("dup")
	assert.ErrorIs(t, err, wallet.ErrWalletExists)
}

func TestGenerateUniqueAccounts(t *testing.T) {
	mgr := wallet.NewManager(wallet.WithInMemoryStore())
	w1, _, err := mgr.Generate("g1")
	require.NoError(t, err)
	w2, _, err := mgr.Generate("g2")
	require.NoError(t, err)
	assert.NotEqual(t, w1.Address, w2.Address)
}

// ---------------------------------------------------------------------------
// ExportMnemonic
// ---------------------------------------------------------------------------

func TestExportMnemonicNotFound(t *testing.T) {
	mgr := wallet.NewManager(wallet.WithInMemoryStore())
	_, err := mgr.ExportMnemonic("ghost")
	assert.ErrorIs(t, err, wallet.ErrWalletNotFound)
}

func TestExportMnemonicWatchOnlyErrors(t *testing.T) {
	mgr := wallet.NewManager(wallet.WithInMemoryStore())
	require.NoError(t, mgr.Add("watch", &wallet.Wallet{Address: newAddr(t)}))

	_, err := mgr.ExportMnemonic("watch")
	assert.ErrorIs(t, err, wallet.ErrWatchOnly)
}
