package network

import (
	"crypto/rand"
	"crypto/sha512"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/curve25519"
	"golang.org/x/crypto/hkdf"

	"logency/logerr"
)

// keyLen is the x25519 private/public key length in bytes.
const keyLen = 32

// hkdfNamespace namespaces every key this module derives, so a key derived
// here can never collide with one derived for an unrelated purpose from
// the same shared secret.
const hkdfNamespace = "logency-network-envelope"

// Encryptor wraps one x25519 peer public key and encrypts every outgoing
// payload under a fresh ephemeral key pair: x25519 ECDH for the shared
// secret, HKDF(SHA-512) to turn it into a ChaCha20-Poly1305 key, then seal.
// There is no decryption side here; this module only ever sends.
type Encryptor struct {
	peerPublicKey []byte
}

// NewEncryptor returns an Encryptor that seals payloads for peerPublicKey,
// an x25519 public key exactly keyLen bytes long.
func NewEncryptor(peerPublicKey []byte) (*Encryptor, error) {
	if len(peerPublicKey) != keyLen {
		return nil, logerr.InvalidArgument("network encryptor: peer public key must be %d bytes, got %d", keyLen, len(peerPublicKey))
	}
	key := make([]byte, keyLen)
	copy(key, peerPublicKey)
	return &Encryptor{peerPublicKey: key}, nil
}

// Seal encrypts plaintext for the encryptor's peer. The returned blob is
// ephemeralPublicKey || nonce || ciphertext; the receiver recomputes the
// shared secret from its own private key and the leading ephemeral public
// key, then derives the same AEAD key via HKDF before opening.
func (e *Encryptor) Seal(plaintext []byte) ([]byte, error) {
	ephemeralPrivate := make([]byte, keyLen)
	if _, err := rand.Read(ephemeralPrivate); err != nil {
		return nil, logerr.NewSystemError("generating ephemeral private key", err)
	}

	ephemeralPublic, err := curve25519.X25519(ephemeralPrivate, curve25519.Basepoint)
	if err != nil {
		return nil, logerr.NewSystemError("deriving ephemeral public key", err)
	}

	sharedSecret, err := curve25519.X25519(ephemeralPrivate, e.peerPublicKey)
	if err != nil {
		return nil, logerr.NewSystemError("computing shared secret", err)
	}

	aeadKey, err := deriveKey(sharedSecret, ephemeralPublic, hkdfNamespace, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, chacha20poly1305.NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, logerr.NewSystemError("generating nonce", err)
	}

	aead, err := chacha20poly1305.New(aeadKey)
	if err != nil {
		return nil, logerr.NewSystemError("constructing AEAD cipher", err)
	}

	ciphertext := aead.Seal(nil, nonce, plaintext, nil)

	blob := make([]byte, 0, len(ephemeralPublic)+len(nonce)+len(ciphertext))
	blob = append(blob, ephemeralPublic...)
	blob = append(blob, nonce...)
	blob = append(blob, ciphertext...)
	return blob, nil
}

func deriveKey(secret, salt []byte, namespace string, keySize int) ([]byte, error) {
	deriver := hkdf.New(sha512.New, secret, salt, []byte(namespace))
	key := make([]byte, keySize)
	if _, err := deriver.Read(key); err != nil {
		return nil, fmt.Errorf("deriving AEAD key: %w", err)
	}
	return key, nil
}
