package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"portfolio.backend/pkg/crypto"
)

var (
	generateHashFn = crypto.HashPassword
	generateKeyFn  = crypto.GenerateRandomToken
	fatalfFn       = log.Fatalf
)

var errNoPassword = errors.New("usage: hash-gen [-key-len n] <admin-password>")

// run prints the env lines for the admin credential and a fresh setup key
func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("hash-gen", flag.ContinueOnError)
	fs.SetOutput(out)
	keyLen := fs.Int("key-len", 32, "random bytes in the generated SETUP_SECRET_KEY")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 || fs.Arg(0) == "" {
		return errNoPassword
	}
	if *keyLen <= 0 {
		return fmt.Errorf("invalid key-len: %d", *keyLen)
	}

	hash, err := generateHashFn(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	key, err := generateKeyFn(*keyLen)
	if err != nil {
		return fmt.Errorf("failed to generate setup key: %w", err)
	}

	fmt.Fprintf(out, "ADMIN_PASSWORD_HASH=%s\n", hash)
	fmt.Fprintf(out, "SETUP_SECRET_KEY=%s\n", key)
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fatalfFn("%v", err)
	}
}
