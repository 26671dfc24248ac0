package store

import (
	"crypto/rand"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"watchlist/internal/domain"
	"watchlist/internal/util/memzero"
)

const (
	// sealedFormat marks a file as a sealed envelope rather than a plain registry.
	sealedFormat = "wl-sealed"
	// The current supported version of the sealed format stored on disk.
	sealedFormatVersion = 1
)

// blob is the on-disk JSON structure holding the ciphertext and KDF parameters.
type blob struct {
	Format string `json:"format"`
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	N      int    `json:"scrypt_N"`
	R      int    `json:"scrypt_r"`
	P      int    `json:"scrypt_p"`
	Cipher []byte `json:"cipher"`
}

// isSealed reports whether data is a sealed envelope. A plain registry with a
// list called "format" fails to decode into the string field and is not
// mistaken for one.
func isSealed(data []byte) bool {
	var hdr struct {
		Format string `json:"format"`
	}
	if err := json.Unmarshal(data, &hdr); err != nil {
		return false
	}
	return hdr.Format == sealedFormat
}

// seal derives a key from passphrase and seals raw into a JSON blob.
func seal(passphrase string, raw []byte, N, r, p int) ([]byte, error) {
	var salt [16]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return nil, err
	}
	pass := memzero.Bytes(passphrase)
	defer memzero.Zero(pass)
	key, err := scrypt.Key(pass, salt[:], N, r, p, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(key)
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte // zero nonce; fresh salt per save gives a fresh key
	ct := aead.Seal(nil, nonce[:], raw, salt[:])

	return json.MarshalIndent(blob{
		Format: sealedFormat,
		V:      sealedFormatVersion,
		Salt:   salt[:],
		N:      N,
		R:      r,
		P:      p,
		Cipher: ct,
	}, "", "  ")
}

// open decrypts the JSON blob using a key derived from passphrase.
func open(passphrase string, b []byte) ([]byte, error) {
	var bl blob
	if err := json.Unmarshal(b, &bl); err != nil {
		return nil, fmt.Errorf("%w: decode sealed file: %w", domain.ErrIO, err)
	}
	if bl.V > sealedFormatVersion {
		return nil, fmt.Errorf("%w: unsupported sealed format version %d", domain.ErrIO, bl.V)
	}

	pass := memzero.Bytes(passphrase)
	defer memzero.Zero(pass)
	key, err := scrypt.Key(pass, bl.Salt, bl.N, bl.R, bl.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, fmt.Errorf("%w: derive key: %w", domain.ErrIO, err)
	}
	defer memzero.Zero(key)
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrIO, err)
	}
	var nonce [chacha20poly1305.NonceSize]byte
	pt, err := aead.Open(nil, nonce[:], bl.Cipher, bl.Salt)
	if err != nil {
		return nil, domain.ErrWrongPassphrase
	}
	return pt, nil
}

// Tunables for scrypt key derivation.
func scryptParamsDefault() (N, r, p int) { return 1 << 15, 8, 1 }
