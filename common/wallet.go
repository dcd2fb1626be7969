package common

// WalletToScriptHash extracts a script hash from a base58-decoded Neo wallet
// address (one version byte, 20-byte script hash, 4-byte checksum).
func WalletToScriptHash(wallet []byte) []byte {
	return wallet[1 : len(wallet)-4]
}
