/*
 * Radon
 *
 * Copyright 2019 The Radon Authors.
 * Code is licensed under the GPLv3.
 *
 */

package encrypt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAESEncryptor(t *testing.T) {
	enc, err := NewAESEncryptor("123456")
	assert.Nil(t, err)
	assert.Equal(t, "AES", enc.Type())

	// Known vectors.
	{
		got, err := enc.Encrypt("test")
		assert.Nil(t, err)
		assert.Equal(t, "9b8WmZSaJlkYXZCu8lwxPw==", got)

		got, err = enc.Encrypt("")
		assert.Nil(t, err)
		assert.Equal(t, "UQ7mmbZkEmMb7bEDaDVc0w==", got)
	}

	// Round trip, block aligned input gets a full padding block.
	for _, plain := range []string{"", "a", "0123456789abcdef", "radon shard core 中文"} {
		cipher, err := enc.Encrypt(plain)
		assert.Nil(t, err)
		got, err := enc.Decrypt(cipher)
		assert.Nil(t, err)
		assert.Equal(t, plain, got)
	}

	assert.Equal(t, "e10adc3949ba59abbe56e057f20f883e", enc.QueryAssistedEncrypt("123456"))
}

func TestAESEncryptorError(t *testing.T) {
	{
		_, err := NewAESEncryptor("")
		assert.NotNil(t, err)
	}

	enc, err := NewAESEncryptor("123456")
	assert.Nil(t, err)
	for _, bad := range []string{"!!", "", "YWJj", "Ab8WmZSaJlkYXZCu8lwxPw=="} {
		_, err := enc.Decrypt(bad)
		assert.NotNil(t, err, bad)
	}
}

func TestMD5Encryptor(t *testing.T) {
	enc, err := NewEncryptor("md5", "")
	assert.Nil(t, err)
	assert.Equal(t, "MD5", enc.Type())

	got, err := enc.Encrypt("123456")
	assert.Nil(t, err)
	assert.Equal(t, "e10adc3949ba59abbe56e057f20f883e", got)

	same, err := enc.Decrypt(got)
	assert.Nil(t, err)
	assert.Equal(t, got, same)
}

func TestNewEncryptor(t *testing.T) {
	{
		enc, err := NewEncryptor("Aes", "k")
		assert.Nil(t, err)
		_, ok := enc.(QueryAssistedEncryptor)
		assert.True(t, ok)
	}
	{
		enc, err := NewEncryptor("MD5", "")
		assert.Nil(t, err)
		_, ok := enc.(QueryAssistedEncryptor)
		assert.False(t, ok)
	}
	{
		_, err := NewEncryptor("rsa", "k")
		assert.NotNil(t, err)
	}
}
