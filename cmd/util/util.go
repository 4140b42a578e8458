package util

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Cbush039/book-review-app/lib/account"
	"github.com/Cbush039/book-review-app/lib/books"
	"github.com/Cbush039/book-review-app/lib/codec"
	"github.com/Cbush039/book-review-app/lib/kv"
	"github.com/Cbush039/book-review-app/lib/kv/engines/boltkv"
	"github.com/Cbush039/book-review-app/lib/kv/engines/memkv"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	// Wrap is the number of characters to Wrap the help text at
	Wrap int = 50
)

// WrapString wraps a string at Wrap characters
func WrapString(text string) string {
	var wrappedLines []string
	var currentLine strings.Builder
	lineWidth := 0

	for _, word := range strings.Fields(text) {
		wordWidth := len(word)

		// Check if we need to wrap
		if lineWidth > 0 && lineWidth+1+wordWidth > Wrap {
			wrappedLines = append(wrappedLines, currentLine.String())
			currentLine.Reset()
			lineWidth = 0
		}

		// Add space before word (if not first word on line)
		if lineWidth > 0 {
			currentLine.WriteString(" ")
			lineWidth++
		}

		// Add the word
		currentLine.WriteString(word)
		lineWidth += wordWidth
	}

	// Add any remaining text
	if currentLine.Len() > 0 {
		wrappedLines = append(wrappedLines, currentLine.String())
	}

	return strings.Join(wrappedLines, "\n")
}

// InitConfig initializes configuration from environment variables
func InitConfig() {
	// load env files
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	// initialize viper
	viper.SetEnvPrefix("bookrev")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match
}

// BindCommandFlags binds a command's flags to viper
func BindCommandFlags(cmd *cobra.Command) error {
	return viper.BindPFlags(cmd.Flags())
}

// GetCodec creates a record codec based on configuration
func GetCodec() (codec.Codec, error) {
	switch viper.GetString("codec") {
	case "json":
		return codec.NewJSONCodec(), nil
	case "gob":
		return codec.NewGOBCodec(), nil
	default:
		return nil, fmt.Errorf("invalid codec %s", viper.GetString("codec"))
	}
}

// GetDataDir resolves the data directory, defaulting to ~/.bookrev, and
// creates it if missing.
func GetDataDir() (string, error) {
	dir := viper.GetString("data-dir")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		dir = filepath.Join(home, ".bookrev")
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("create data directory %s: %w", dir, err)
	}
	return dir, nil
}

// OpenStore creates the configured store engine. The bolt engine persists
// every write to books.db in the data directory. The mem engine loads a
// snapshot file at open and writes it back on Close, so a finished command
// still leaves durable state behind.
func OpenStore() (kv.Store, error) {
	dir, err := GetDataDir()
	if err != nil {
		return nil, err
	}

	switch engine := viper.GetString("engine"); engine {
	case string(kv.ImplBolt):
		store, err := boltkv.NewBoltStore(filepath.Join(dir, "books.db"))
		if err != nil {
			return nil, err
		}
		return kv.NewInstrumentedStore(store, kv.ImplBolt), nil

	case string(kv.ImplMem):
		store := memkv.NewMemStore()
		path := filepath.Join(dir, "books.snapshot")
		if err := loadSnapshot(store, path); err != nil {
			return nil, err
		}
		return kv.NewInstrumentedStore(&snapshotStore{Store: store, path: path}, kv.ImplMem), nil

	default:
		return nil, fmt.Errorf("invalid engine %s", engine)
	}
}

// loadSnapshot restores a snapshot file into the store. A missing file
// means a fresh store and is not an error.
func loadSnapshot(store kv.Store, path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()
	return store.(kv.Snapshotter).Load(f)
}

// snapshotStore saves the in-memory state back to the snapshot file when
// the store is closed.
type snapshotStore struct {
	kv.Store
	path string
}

func (s *snapshotStore) Close() error {
	f, err := os.Create(s.path)
	if err != nil {
		return err
	}
	if err := s.Store.(kv.Snapshotter).Save(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return s.Store.Close()
}

// --------------------------------------------------------------------------
// Service Bootstrap
// --------------------------------------------------------------------------

// Services bundles the opened store and the services built on top of it.
// Close must be called before the process exits.
type Services struct {
	Store    kv.Store
	Accounts *account.Service
	Books    *books.Service
}

// OpenServices opens the configured store and wires the account and book
// services on top of it.
func OpenServices() (*Services, error) {
	c, err := GetCodec()
	if err != nil {
		return nil, err
	}

	store, err := OpenStore()
	if err != nil {
		return nil, err
	}

	return &Services{
		Store:    store,
		Accounts: account.NewService(account.NewSessionStore(store, c)),
		Books:    books.NewService(books.NewCollectionStore(store, c)),
	}, nil
}

// Close releases the store. Errors are logged, not returned.
func (s *Services) Close() {
	if err := s.Store.Close(); err != nil {
		Logger("cmd").Errorf("closing store: %v", err)
	}
}

// RequireSession restores the persisted session and fails with a
// user-facing error when nobody is logged in. Book commands call this
// before touching any collection.
func (s *Services) RequireSession() (*account.Account, error) {
	acc, ok, err := s.Accounts.Restore()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("not logged in (use \"bookrev account login\" or \"bookrev account signup\")")
	}
	return acc, nil
}
