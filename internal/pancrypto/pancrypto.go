// Package pancrypto renders 16-digit PANs safe to store and safe to show:
// AES-256-GCM at rest, "**** **** **** XXXX" on read.
package pancrypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/GlebRadaev/bankcards/internal/domain"
)

const nonceSize = 12

type Codec struct {
	key       []byte
	rawSecret []byte
	legacyECB bool
}

// New derives a 32-byte AES key from the configured secret. When legacyECB is
// set, Decrypt additionally accepts values written by the predecessor system
// (AES-ECB/PKCS7 over the raw secret bytes); new writes are always GCM.
func New(secret string, legacyECB bool) (*Codec, error) {
	if secret == "" {
		return nil, fmt.Errorf("%w: PAN secret key is not configured", domain.ErrCrypto)
	}
	key := sha256.Sum256([]byte(secret))
	return &Codec{key: key[:], rawSecret: []byte(secret), legacyECB: legacyECB}, nil
}

func (c *Codec) Encrypt(plainPan string) (string, error) {
	aead, err := c.aead()
	if err != nil {
		return "", err
	}
	nonce := make([]byte, nonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("%w: nonce: %v", domain.ErrCrypto, err)
	}
	sealed := aead.Seal(nonce, nonce, []byte(plainPan), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

func (c *Codec) Decrypt(ciphertext string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: malformed ciphertext: %v", domain.ErrCrypto, err)
	}
	plain, gcmErr := c.decryptGCM(raw)
	if gcmErr == nil {
		return plain, nil
	}
	if c.legacyECB {
		if plain, err := c.decryptECB(raw); err == nil {
			return plain, nil
		}
	}
	return "", gcmErr
}

// Mask reveals only the last four digits of the PAN.
func (c *Codec) Mask(plainPan string) string {
	if len(plainPan) < 4 {
		return "**** **** **** ****"
	}
	return "**** **** **** " + plainPan[len(plainPan)-4:]
}

func (c *Codec) aead() (cipher.AEAD, error) {
	block, err := aes.NewCipher(c.key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCrypto, err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCrypto, err)
	}
	return aead, nil
}

func (c *Codec) decryptGCM(raw []byte) (string, error) {
	aead, err := c.aead()
	if err != nil {
		return "", err
	}
	if len(raw) < nonceSize {
		return "", fmt.Errorf("%w: ciphertext too short", domain.ErrCrypto)
	}
	plain, err := aead.Open(nil, raw[:nonceSize], raw[nonceSize:], nil)
	if err != nil {
		return "", fmt.Errorf("%w: tampered or wrong-key ciphertext", domain.ErrCrypto)
	}
	return string(plain), nil
}

// decryptECB handles pre-migration rows only. The legacy system encrypted with
// the raw secret string as the key, block by block, PKCS7-padded; the secret
// must therefore be a valid AES key length for this path to apply.
func (c *Codec) decryptECB(raw []byte) (string, error) {
	block, err := aes.NewCipher(c.rawSecret)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrCrypto, err)
	}
	if len(raw) == 0 || len(raw)%aes.BlockSize != 0 {
		return "", fmt.Errorf("%w: invalid legacy ciphertext length", domain.ErrCrypto)
	}
	plain := make([]byte, len(raw))
	for i := 0; i < len(raw); i += aes.BlockSize {
		block.Decrypt(plain[i:i+aes.BlockSize], raw[i:i+aes.BlockSize])
	}
	padding := int(plain[len(plain)-1])
	if padding == 0 || padding > aes.BlockSize || padding > len(plain) {
		return "", fmt.Errorf("%w: invalid legacy padding", domain.ErrCrypto)
	}
	for i := len(plain) - padding; i < len(plain); i++ {
		if int(plain[i]) != padding {
			return "", fmt.Errorf("%w: invalid legacy padding", domain.ErrCrypto)
		}
	}
	return string(plain[:len(plain)-padding]), nil
}
