// Command genkeys generates the RSA key pair used for signing access
// tokens. Run it once before first start:
//
//	go run ./cmd/genkeys -private keys/private.pem -public keys/public.pem
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/fieldday/api/pkg/jwt"
)

func main() {
	privatePath := flag.String("private", "./keys/private.pem", "path to write the private key")
	publicPath := flag.String("public", "./keys/public.pem", "path to write the public key")
	flag.Parse()

	if err := jwt.GenerateKeyPair(*privatePath, *publicPath); err != nil {
		slog.Error("failed to generate key pair", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("generated key pair",
		slog.String("private", *privatePath),
		slog.String("public", *publicPath),
	)
}
