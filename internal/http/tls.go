package http

import (
	"crypto/tls"
	"errors"
	"fmt"
	"os"

	"software.sslmate.com/src/go-pkcs12"

	"betfair/pkg/core"
)

// LoadClientTLS builds the TLS configuration for certificate login from either a
// PEM certificate/key pair or a PKCS#12 key store.
func LoadClientTLS(creds *core.Credentials) (*tls.Config, error) {
	if creds == nil {
		return nil, core.ErrNoCredentials
	}

	var (
		cert tls.Certificate
		err  error
	)
	switch {
	case creds.CertFile != "":
		cert, err = tls.LoadX509KeyPair(creds.CertFile, creds.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("load key pair: %w", err)
		}
	case creds.KeyStoreFile != "":
		cert, err = loadKeyStore(creds.KeyStoreFile, creds.KeyStorePassphrase)
		if err != nil {
			return nil, fmt.Errorf("load key store: %w", err)
		}
	default:
		return nil, errors.New("no client certificate configured")
	}

	return &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
	}, nil
}

// loadKeyStore reads both legacy (RC2/3DES) and PBES2/AES bundles, the latter
// being the default output of OpenSSL 3 pkcs12 -export.
func loadKeyStore(path, passphrase string) (tls.Certificate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return tls.Certificate{}, err
	}

	key, leaf, chain, err := pkcs12.DecodeChain(data, passphrase)
	if err != nil {
		return tls.Certificate{}, err
	}
	if key == nil || leaf == nil {
		return tls.Certificate{}, errors.New("key store has no certificate or private key")
	}

	cert := tls.Certificate{
		Certificate: [][]byte{leaf.Raw},
		PrivateKey:  key,
		Leaf:        leaf,
	}
	for _, ca := range chain {
		cert.Certificate = append(cert.Certificate, ca.Raw)
	}
	return cert, nil
}
