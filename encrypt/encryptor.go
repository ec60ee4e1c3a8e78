/*
 * Radon
 *
 * Copyright 2019 The Radon Authors.
 * Code is licensed under the GPLv3.
 *
 */

package encrypt

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/md5"
	"crypto/sha1"
	"encoding/base64"
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
)

// Encryptor encrypts the values of one column.
type Encryptor interface {
	Type() string
	Encrypt(plain string) (string, error)
	Decrypt(cipher string) (string, error)
}

// QueryAssistedEncryptor also produces the stable value stored in the assisted query column.
type QueryAssistedEncryptor interface {
	Encryptor
	QueryAssistedEncrypt(plain string) string
}

const (
	encryptorAES = "AES"
	encryptorMD5 = "MD5"
)

// NewEncryptor creates the encryptor by type, key is used by aes only.
func NewEncryptor(typ string, key string) (Encryptor, error) {
	switch strings.ToUpper(typ) {
	case encryptorAES:
		return NewAESEncryptor(key)
	case encryptorMD5:
		return &MD5Encryptor{}, nil
	default:
		return nil, errors.Errorf("encrypt.unsupported.encryptor[%s]", typ)
	}
}

// AESEncryptor is AES-128 in ECB mode with PKCS5 padding, base64 encoded.
// The key is the first 16 bytes of the SHA-1 of the configured key.
type AESEncryptor struct {
	block cipher.Block
}

// NewAESEncryptor creates the encryptor.
func NewAESEncryptor(key string) (*AESEncryptor, error) {
	if key == "" {
		return nil, errors.New("encrypt.aes.key.can.not.be.empty")
	}
	digest := sha1.Sum([]byte(key))
	block, err := aes.NewCipher(digest[:16])
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return &AESEncryptor{block: block}, nil
}

// Type returns the encryptor type.
func (e *AESEncryptor) Type() string {
	return encryptorAES
}

// Encrypt implements Encryptor.
func (e *AESEncryptor) Encrypt(plain string) (string, error) {
	size := e.block.BlockSize()
	pad := size - len(plain)%size
	data := append([]byte(plain), bytes.Repeat([]byte{byte(pad)}, pad)...)
	for i := 0; i < len(data); i += size {
		e.block.Encrypt(data[i:i+size], data[i:i+size])
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// Decrypt implements Encryptor.
func (e *AESEncryptor) Decrypt(value string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return "", errors.Wrap(err, "encrypt.aes.decrypt.base64")
	}
	size := e.block.BlockSize()
	if len(data) == 0 || len(data)%size != 0 {
		return "", errors.Errorf("encrypt.aes.decrypt.length[%d].is.not.multiple.of.block", len(data))
	}
	for i := 0; i < len(data); i += size {
		e.block.Decrypt(data[i:i+size], data[i:i+size])
	}
	pad := int(data[len(data)-1])
	if pad == 0 || pad > size || !bytes.Equal(data[len(data)-pad:], bytes.Repeat([]byte{byte(pad)}, pad)) {
		return "", errors.New("encrypt.aes.decrypt.bad.padding")
	}
	return string(data[:len(data)-pad]), nil
}

// QueryAssistedEncrypt returns the md5 digest of the plain text.
func (e *AESEncryptor) QueryAssistedEncrypt(plain string) string {
	sum := md5.Sum([]byte(plain))
	return hex.EncodeToString(sum[:])
}

// MD5Encryptor is a one-way hex digest.
type MD5Encryptor struct{}

// Type returns the encryptor type.
func (e *MD5Encryptor) Type() string {
	return encryptorMD5
}

// Encrypt implements Encryptor.
func (e *MD5Encryptor) Encrypt(plain string) (string, error) {
	sum := md5.Sum([]byte(plain))
	return hex.EncodeToString(sum[:]), nil
}

// Decrypt returns the input, a digest can not be reversed.
func (e *MD5Encryptor) Decrypt(value string) (string, error) {
	return value, nil
}
