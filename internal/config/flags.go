package config

import (
	"errors"
	"flag"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from the process command line.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN (postgres://…, sqlite://…, file:…, *.db)
//	-f JSON registry file path
//	-c/-config json file path with configs
//	-k base64-encoded 32-byte payload encryption key
//	-hash-key request integrity hash key
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-gemini-key Gemini API key
//	-gemini-model Gemini model name
//	-reservation-ttl how long unconfirmed identifiers stay reserved
//	-sweep-interval how often expired reservations are released
//	-log-level minimum log level
func ParseFlags() (*StructuredConfig, error) {
	var serverAddress NetAddress
	var registryFile string
	var databaseDSN string
	var jsonConfigPath string
	var encryptionKey string
	var hashKey string
	var requestTimeout time.Duration
	var geminiKey string
	var geminiModel string
	var reservationTTL time.Duration
	var sweepInterval time.Duration
	var logLevel string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&registryFile, "f", "", "JSON registry file path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&encryptionKey, "k", "", "Base64-encoded 32-byte encryption key")
	flag.StringVar(&hashKey, "hash-key", "", "Request integrity hash key")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&geminiKey, "gemini-key", "", "Gemini API key")
	flag.StringVar(&geminiModel, "gemini-model", "", "Gemini model name")
	flag.DurationVar(&reservationTTL, "reservation-ttl", 0, "Reservation TTL (e.g., 1h)")
	flag.DurationVar(&sweepInterval, "sweep-interval", 0, "Reservation sweep interval (e.g., 10m)")
	flag.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	if err := flag.CommandLine.Parse(os.Args[1:]); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			EncryptionKeyBase64: encryptionKey,
			HashKey:             hashKey,
			ReservationTTL:      reservationTTL,
			LogLevel:            logLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Files: Files{
				RegistryFile: registryFile,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			GeminiAPIKey: geminiKey,
			GeminiModel:  geminiModel,
		},
		Workers: Workers{
			SweepInterval: sweepInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number is an integer in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
