package main

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/c2h5oh/datasize"
	"github.com/ledgerwatch/log/v3"
	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"

	"github.com/woozymasta/lzw"
)

// config is the command configuration. It can be loaded from a YAML file
// given with -config; flags set on the command line win over the file.
//
//	code_bits: 12
//	init_dict_size: 256
//	max_input: 64MB
//	verbosity: debug
type config struct {
	CodeBits     int      `json:"code_bits"`
	InitDictSize int      `json:"init_dict_size"`
	MaxInput     byteSize `json:"max_input"`
	MaxOutput    byteSize `json:"max_output"`
	Verbosity    string   `json:"verbosity"`

	path string
}

// byteSize is a datasize.ByteSize that also accepts a bare byte count in
// the config file, e.g. "max_input: 1048576".
type byteSize struct {
	datasize.ByteSize
}

func (b *byteSize) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return errors.WithStack(err)
		}

		data = []byte(text)
	}

	return b.UnmarshalText(data)
}

func defaultConfig() *config {
	return &config{
		CodeBits:     lzw.DefaultCodeBits,
		InitDictSize: lzw.DefaultInitDictSize,
		Verbosity:    "info",
	}
}

// bindFlags registers the shared flags on flags and returns the config they fill.
func bindFlags(flags *flag.FlagSet) *config {
	cfg := defaultConfig()
	flags.StringVar(&cfg.path, "config", "", "YAML config file")
	flags.IntVar(&cfg.CodeBits, "bits", cfg.CodeBits, "code width in bits")
	flags.IntVar(&cfg.InitDictSize, "init", cfg.InitDictSize, "number of single-byte seed entries")
	flags.TextVar(&cfg.MaxInput, "max-input", cfg.MaxInput, "maximum input size, e.g. 64MB (0 = unlimited)")
	flags.TextVar(&cfg.MaxOutput, "max-output", cfg.MaxOutput, "maximum decompressed size (0 = unlimited)")
	flags.StringVar(&cfg.Verbosity, "verbosity", cfg.Verbosity, "log level: crit, error, warn, info, debug, trace")
	return cfg
}

// resolve loads cfg.path, if any, and re-applies the flags that were set
// explicitly so they override the file.
func (c *config) resolve(flags *flag.FlagSet) error {
	if c.path == "" {
		return nil
	}

	file, err := loadConfig(c.path)
	if err != nil {
		return err
	}

	explicit := make(map[string]string)
	flags.Visit(func(f *flag.Flag) {
		explicit[f.Name] = f.Value.String()
	})

	file.path = c.path
	*c = *file

	for name, value := range explicit {
		if name == "config" {
			continue
		}

		if err := flags.Set(name, value); err != nil {
			return errors.Wrapf(err, "re-applying -%s", name)
		}
	}

	return nil
}

func loadConfig(path string) (*config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}

	return cfg, nil
}

func (c *config) options(logger log.Logger) *lzw.Options {
	return &lzw.Options{
		CodeBits:      c.CodeBits,
		InitDictSize:  c.InitDictSize,
		MaxInputSize:  int(c.MaxInput.Bytes()),  //nolint:gosec // G115: sizes beyond int are rejected by the OS first
		MaxOutputSize: int(c.MaxOutput.Bytes()), //nolint:gosec // G115
		Logger:        logger,
	}
}
