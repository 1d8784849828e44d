// Command keygen prints a fresh ENCRYPTION_KEY_BASE64 line. With
// -passphrase the key is derived with Argon2id instead of drawn at random.
// With -write-env the line is also appended to a .env file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/MKhiriev/go-deed-keeper/internal/crypto"
	"github.com/MKhiriev/go-deed-keeper/internal/logger"
)

const envKeyName = "APP_ENCRYPTION_KEY_BASE64"

// minSaltLength is the shortest salt accepted for Argon2id derivation.
const minSaltLength = 8

var (
	errSaltRequired          = fmt.Errorf("-salt of at least %d bytes is required with -passphrase", minSaltLength)
	errSaltWithoutPassphrase = errors.New("-salt has no effect without -passphrase")
)

func main() {
	var (
		writeEnv   bool
		envFile    string
		passphrase string
		salt       string
	)
	flag.BoolVar(&writeEnv, "write-env", false, "append the key to the env file")
	flag.StringVar(&envFile, "env-file", ".env", "env file used with -write-env")
	flag.StringVar(&passphrase, "passphrase", "", "derive the key from a passphrase instead of generating it")
	flag.StringVar(&salt, "salt", "", "salt used with -passphrase")
	flag.Parse()

	log := logger.NewLogger("go-deed-keygen", "info")

	line, err := keyLine(passphrase, salt)
	if err != nil {
		log.Fatal().Err(err).Msg("error generating key")
	}

	fmt.Println(line)

	if writeEnv {
		if err := appendLine(envFile, line); err != nil {
			log.Fatal().Err(err).Str("file", envFile).Msg("error writing env file")
		}
		log.Info().Str("file", envFile).Msg("key appended")
	}
}

// keyLine renders the env line for a random key, or for a key derived from
// passphrase and salt when a passphrase is given. Derivation requires a salt
// of at least minSaltLength bytes; a salt without a passphrase is rejected.
func keyLine(passphrase, salt string) (string, error) {
	if passphrase != "" {
		if len(salt) < minSaltLength {
			return "", errSaltRequired
		}
		return envKeyName + "=" + crypto.DeriveKey(passphrase, []byte(salt)), nil
	}
	if salt != "" {
		return "", errSaltWithoutPassphrase
	}

	key, err := crypto.GenerateKey()
	if err != nil {
		return "", err
	}
	return envKeyName + "=" + key, nil
}

func appendLine(path, line string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(f, line); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
