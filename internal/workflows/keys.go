package workflows

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/PolarWolf314/audiocrypt/internal/audit"
	"github.com/PolarWolf314/audiocrypt/internal/bigmath"
	"github.com/PolarWolf314/audiocrypt/internal/configs"
	kerrors "github.com/PolarWolf314/audiocrypt/internal/errors"
	"github.com/PolarWolf314/audiocrypt/internal/keys"
)

// GenerateKeysOptions configures the key generation workflow.
type GenerateKeysOptions struct {
	// PrimeBytes overrides keys.prime_bytes from the config when positive.
	PrimeBytes int
}

// GenerateKeysResult contains the outcome of key generation.
type GenerateKeysResult struct {
	PrivateKeyPath       string
	PublicKeyPath        string
	PublicExponent       string
	ModulusBits          int
	WrappedKeyByteLength int
	Encoding             string
}

// GenerateKeys creates a new key pair and persists both halves, replacing
// any previous pair.
//
// Returns ErrPrimeBytesTooSmall if PrimeBytes is below configs.MinPrimeBytes.
// Returns ErrPrimeSearchExhausted if no prime is found within the
// configured attempt budget, or ctx.Err() if cancelled.
func GenerateKeys(ctx context.Context, opts GenerateKeysOptions) (*GenerateKeysResult, error) {
	config, err := configs.LoadUserConfig()
	if err != nil {
		return nil, err
	}
	codec, err := config.Codec()
	if err != nil {
		return nil, err
	}

	if err := configs.CheckPrimeBytes(opts.PrimeBytes); err != nil {
		return nil, err
	}

	genOpts := config.GenerateOptions()
	if opts.PrimeBytes > 0 {
		genOpts.PrimeByteLength = opts.PrimeBytes
	}

	store := keys.NewStore(codec)
	pair, err := store.Generate(ctx, genOpts)
	if err != nil {
		return nil, err
	}

	privatePath := configs.UserAudiocryptSettings.PrivateKeyPath()
	publicPath := configs.UserAudiocryptSettings.PublicKeyPath()
	if err := store.WriteKeyFiles(privatePath, publicPath); err != nil {
		return nil, err
	}

	entry := audit.NewEntry(audit.OpKeygen)
	entry.Encoding = codec.Name()
	audit.Log(entry)

	return &GenerateKeysResult{
		PrivateKeyPath:       privatePath,
		PublicKeyPath:        publicPath,
		PublicExponent:       pair.PublicExponent.String(),
		ModulusBits:          pair.Modulus.BitLen(),
		WrappedKeyByteLength: pair.WrappedKeyByteLength,
		Encoding:             codec.Name(),
	}, nil
}

// ImportKeyOptions configures the key import workflow.
type ImportKeyOptions struct {
	Kind keys.Kind

	// Text is the key text, optionally sealed.
	Text []byte

	// Passphrase is called when Text is sealed or a protected OpenSSH key.
	Passphrase func() ([]byte, error)
}

// ImportKeyResult contains the outcome of a key import.
type ImportKeyResult struct {
	Kind   keys.Kind
	Path   string
	Sealed bool

	// Converted is true when the input was an OpenSSH or PEM RSA key.
	Converted bool
}

// ImportKey parses key text into the kind slot and persists it. The text
// may also be an OpenSSH authorized_keys line or an OpenSSH/PEM RSA private
// key, which is converted first.
//
// Returns ErrMalformedKeyText if the text is not a valid key.
// Returns ErrInvalidPassphrase if sealed text cannot be opened.
func ImportKey(ctx context.Context, opts ImportKeyOptions) (*ImportKeyResult, error) {
	env, err := loadEnvironment()
	if err != nil {
		return nil, err
	}

	text := keys.CleanKeyText(string(opts.Text))
	sealed := keys.IsSealed(text)
	if sealed {
		if opts.Passphrase == nil {
			return nil, fmt.Errorf("%w: key is sealed and no passphrase was provided", kerrors.ErrInvalidPassphrase)
		}
		passphrase, err := opts.Passphrase()
		if err != nil {
			return nil, err
		}
		if text, err = keys.Unseal(text, passphrase); err != nil {
			return nil, err
		}
	}

	converted := keys.IsOpenSSH(text)
	if converted {
		if text, err = convertOpenSSH(text, env.store, opts); err != nil {
			return nil, err
		}
	}

	session := env.session()
	if err := session.ImportKey(opts.Kind, text); err != nil {
		return nil, err
	}
	path, err := persistKey(env.store, opts.Kind)
	if err != nil {
		return nil, err
	}

	entry := audit.NewEntry(audit.OpImport)
	entry.KeyKind = string(opts.Kind)
	entry.Sealed = sealed
	audit.Log(entry)

	return &ImportKeyResult{Kind: opts.Kind, Path: path, Sealed: sealed, Converted: converted}, nil
}

// convertOpenSSH turns an OpenSSH or PEM RSA key into key text, asking for
// a passphrase only when the key is protected.
func convertOpenSSH(text string, store *keys.Store, opts ImportKeyOptions) (string, error) {
	converted, err := keys.FromOpenSSH([]byte(text), opts.Kind, nil, store.Codec())
	if !errors.Is(err, kerrors.ErrPassphraseRequired) {
		return converted, err
	}
	if opts.Passphrase == nil {
		return "", err
	}
	passphrase, perr := opts.Passphrase()
	if perr != nil {
		return "", perr
	}
	return keys.FromOpenSSH([]byte(text), opts.Kind, passphrase, store.Codec())
}

// ExportKeyOptions configures the single key export workflow.
type ExportKeyOptions struct {
	Kind keys.Kind

	// OutputPath receives the key text. Empty returns the text only.
	OutputPath string

	// Passphrase seals the exported text when non-empty.
	Passphrase []byte
}

// ExportKeyResult contains the outcome of a key export.
type ExportKeyResult struct {
	Text       string
	OutputPath string
	Sealed     bool
}

// ExportKey returns the kind half of the persisted pair as text and
// optionally writes it to a file.
//
// Returns ErrKeyUnavailable if that half has not been generated or imported.
func ExportKey(ctx context.Context, opts ExportKeyOptions) (*ExportKeyResult, error) {
	env, err := loadEnvironment()
	if err != nil {
		return nil, err
	}

	text, err := env.session().ExportKeyText(opts.Kind)
	if err != nil {
		return nil, err
	}

	sealed := len(opts.Passphrase) > 0
	if sealed {
		if text, err = keys.Seal(text, opts.Passphrase); err != nil {
			return nil, err
		}
	}

	if opts.OutputPath != "" {
		if err := keys.WriteKeyText(opts.OutputPath, text); err != nil {
			return nil, err
		}
		entry := audit.NewEntry(audit.OpExport)
		entry.KeyKind = string(opts.Kind)
		entry.OutputPath = opts.OutputPath
		entry.Sealed = sealed
		audit.Log(entry)
	}

	return &ExportKeyResult{Text: text, OutputPath: opts.OutputPath, Sealed: sealed}, nil
}

// ExportBothKeysOptions configures the export of both halves for sharing
// alongside an audio file.
type ExportBothKeysOptions struct {
	// Prefix distinguishes exports of the same file.
	Prefix string

	// WavName is the audio file the keys belong to.
	WavName string

	// Dir receives the key files. Empty means the working directory.
	Dir string
}

// ExportBothKeysResult contains the written key file paths.
type ExportBothKeysResult struct {
	PrivateKeyPath string
	PublicKeyPath  string
}

// ExportBothKeys writes <prefix>-private_key-<name>.txt and
// <prefix>-public_key-<name>.txt.
//
// Returns ErrKeyUnavailable unless both halves are set.
func ExportBothKeys(ctx context.Context, opts ExportBothKeysOptions) (*ExportBothKeysResult, error) {
	env, err := loadEnvironment()
	if err != nil {
		return nil, err
	}
	if !env.store.Has(keys.Private) || !env.store.Has(keys.Public) {
		return nil, fmt.Errorf("%w: both keys are required", kerrors.ErrKeyUnavailable)
	}

	privateName, publicName := keys.KeyFileNames(opts.Prefix, opts.WavName)
	result := &ExportBothKeysResult{
		PrivateKeyPath: filepath.Join(opts.Dir, privateName),
		PublicKeyPath:  filepath.Join(opts.Dir, publicName),
	}
	if err := env.store.WriteKeyFiles(result.PrivateKeyPath, result.PublicKeyPath); err != nil {
		return nil, err
	}

	for kind, path := range map[keys.Kind]string{keys.Private: result.PrivateKeyPath, keys.Public: result.PublicKeyPath} {
		entry := audit.NewEntry(audit.OpExport)
		entry.KeyKind = string(kind)
		entry.OutputPath = path
		audit.Log(entry)
	}

	return result, nil
}

// KeysStatus summarizes the persisted key pair.
type KeysStatus struct {
	HasPrivate           bool
	HasPublic            bool
	PublicExponent       string
	Modulus              string
	ModulusBits          int
	WrappedKeyByteLength int
	Encoding             string
	KeysPath             string
}

// ShowKeys reports which keys are persisted and their parameters.
func ShowKeys(ctx context.Context) (*KeysStatus, error) {
	env, err := loadEnvironment()
	if err != nil {
		return nil, err
	}

	pair := env.store.KeyPair()
	status := &KeysStatus{
		HasPrivate:           pair.Has(keys.Private),
		HasPublic:            pair.Has(keys.Public),
		WrappedKeyByteLength: pair.WrappedKeyByteLength,
		Encoding:             env.store.Codec().Name(),
		KeysPath:             configs.UserAudiocryptSettings.KeysPath,
	}
	if status.HasPublic {
		status.PublicExponent = pair.PublicExponent.String()
	}
	if !bigmath.IsZero(pair.Modulus) {
		status.Modulus = pair.Modulus.String()
		status.ModulusBits = pair.Modulus.BitLen()
	}
	return status, nil
}
