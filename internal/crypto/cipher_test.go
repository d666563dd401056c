package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey(b byte) []byte {
	return bytes.Repeat([]byte{b}, KeyLength)
}

func TestCipher_RoundTrip(t *testing.T) {
	c := NewCipher()
	key := testKey(0x2A)

	for _, plain := range []string{"", "Memento mori, memento vivere", strings.Repeat("ж", 4096)} {
		env, err := c.Encrypt(key, []byte(plain))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(env, EnvelopeVersion+":"))

		got, err := c.Decrypt(key, env)
		require.NoError(t, err)
		assert.Equal(t, plain, string(got))
	}
}

func TestCipher_DerivedKeyRoundTrip(t *testing.T) {
	d, err := NewDeriver(DefaultPBKDF2Params())
	require.NoError(t, err)
	salt, err := GenerateSalt(nil)
	require.NoError(t, err)

	key, err := d.Derive([]byte("correct-horse"), salt)
	require.NoError(t, err)

	c := NewCipher()
	env, err := c.Encrypt(key, []byte("Memento mori, memento vivere"))
	require.NoError(t, err)

	again, err := d.Derive([]byte("correct-horse"), salt)
	require.NoError(t, err)
	got, err := c.Decrypt(again, env)
	require.NoError(t, err)
	assert.Equal(t, "Memento mori, memento vivere", string(got))

	wrong, err := d.Derive([]byte("wrong-passphrase"), salt)
	require.NoError(t, err)
	got, err = c.Decrypt(wrong, env)
	assert.ErrorIs(t, err, ErrDecryptionFailed)
	assert.Nil(t, got)
}

func TestCipher_EnvelopesAreNonDeterministic(t *testing.T) {
	c := NewCipher()
	key := testKey(0x2A)

	e1, err := c.Encrypt(key, []byte("same"))
	require.NoError(t, err)
	e2, err := c.Encrypt(key, []byte("same"))
	require.NoError(t, err)

	assert.NotEqual(t, e1, e2)

	b1, _ := base64.StdEncoding.DecodeString(strings.TrimPrefix(e1, "v1:"))
	b2, _ := base64.StdEncoding.DecodeString(strings.TrimPrefix(e2, "v1:"))
	assert.NotEqual(t, b1[:NonceLength], b2[:NonceLength], "nonces must differ")
}

func TestCipher_WrongKeyRejected(t *testing.T) {
	c := NewCipher()
	env, err := c.Encrypt(testKey(0x01), []byte("secret"))
	require.NoError(t, err)

	got, err := c.Decrypt(testKey(0x02), env)
	assert.ErrorIs(t, err, ErrDecryptionFailed)
	assert.Nil(t, got)
}

func TestCipher_TamperedEnvelopeRejected(t *testing.T) {
	c := NewCipher()
	key := testKey(0x07)
	env, err := c.Encrypt(key, []byte("secret"))
	require.NoError(t, err)

	blob, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(env, "v1:"))
	require.NoError(t, err)
	blob[len(blob)-1] ^= 0xFF
	tampered := "v1:" + base64.StdEncoding.EncodeToString(blob)

	_, err = c.Decrypt(key, tampered)
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestCipher_DecryptsLegacyUnprefixedEnvelope(t *testing.T) {
	key := testKey(0x09)

	// nonce || ciphertext || tag, base64 with no version prefix.
	block, err := aes.NewCipher(key)
	require.NoError(t, err)
	gcm, err := cipher.NewGCM(block)
	require.NoError(t, err)
	nonce := bytes.Repeat([]byte{0x03}, NonceLength)
	legacy := base64.StdEncoding.EncodeToString(gcm.Seal(append([]byte{}, nonce...), nonce, []byte("old note"), nil))

	got, err := NewCipher().Decrypt(key, legacy)
	require.NoError(t, err)
	assert.Equal(t, "old note", string(got))
}

func TestCipher_MalformedEnvelopes(t *testing.T) {
	c := NewCipher()
	key := testKey(0x01)

	_, err := c.Decrypt(key, "v1:!!!not-base64!!!")
	assert.ErrorIs(t, err, ErrMalformedEnvelope)

	_, err = c.Decrypt(key, "v1:"+base64.StdEncoding.EncodeToString([]byte("short")))
	assert.ErrorIs(t, err, ErrMalformedEnvelope)

	_, err = c.Decrypt(key, "v9:AAAA")
	assert.ErrorIs(t, err, ErrUnsupportedEnvelope)
}

func TestCipher_InvalidKeyLength(t *testing.T) {
	c := NewCipher()

	_, err := c.Encrypt([]byte("short"), []byte("x"))
	assert.ErrorIs(t, err, ErrInvalidKeyLength)

	_, err = c.Decrypt([]byte("short"), "v1:AAAA")
	assert.ErrorIs(t, err, ErrInvalidKeyLength)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestCipher_NonceSourceFailure(t *testing.T) {
	c := NewCipher(WithRandom(failingReader{}))

	env, err := c.Encrypt(testKey(0x01), []byte("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generate nonce")
	assert.Empty(t, env)
}

func TestSecureWipe(t *testing.T) {
	b := []byte{1, 2, 3, 4}
	SecureWipe(b)
	assert.Equal(t, []byte{0, 0, 0, 0}, b)
}
