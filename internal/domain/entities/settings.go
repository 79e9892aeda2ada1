package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsimple"
	logger "github.com/sirupsen/logrus"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"
)

const (
	defaultGitBinary         = "git"
	defaultSnapshotDirectory = "gitrevert/snapshots"
	defaultLogLevel          = "info"

	// ConfigEnvVar points at an explicit settings file.
	ConfigEnvVar = "GITREVERT_CONFIG"
)

// Settings is the top-level configuration for gitrevert.
type Settings struct {
	Git       GitSettings      `yaml:"git"`
	Snapshots SnapshotSettings `yaml:"snapshots"`
	Prompts   PromptSettings   `yaml:"prompts"`
	Log       LogSettings      `yaml:"log"`
}

// GitSettings configures how the git binary is invoked.
type GitSettings struct {
	Binary string `yaml:"binary"` // Name or path of the git executable
}

// SnapshotSettings configures where temporary snapshots are kept.
type SnapshotSettings struct {
	Directory string `yaml:"directory"` // Relative to the repository's git dir
}

// PromptSettings configures the interactive prompts.
type PromptSettings struct {
	AssumeYes bool `yaml:"assume_yes"`
}

// LogSettings configures the logger.
type LogSettings struct {
	Level string `yaml:"level"`
}

// hclSettings mirrors Settings with optional HCL blocks.
type hclSettings struct {
	Git *struct {
		Binary string `hcl:"binary,optional"`
	} `hcl:"git,block"`
	Snapshots *struct {
		Directory string `hcl:"directory,optional"`
	} `hcl:"snapshots,block"`
	Prompts *struct {
		AssumeYes bool `hcl:"assume_yes,optional"`
	} `hcl:"prompts,block"`
	Log *struct {
		Level string `hcl:"level,optional"`
	} `hcl:"log,block"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// DefaultSettings returns the settings used when no configuration file exists.
func DefaultSettings() *Settings {
	return &Settings{
		Git:       GitSettings{Binary: defaultGitBinary},
		Snapshots: SnapshotSettings{Directory: defaultSnapshotDirectory},
		Log:       LogSettings{Level: defaultLogLevel},
	}
}

// NewSettings reads a configuration file. Files ending in ".hcl" are decoded
// as HCL, everything else as YAML. Missing keys keep their default values.
func NewSettings(path string) (*Settings, error) {
	settings := DefaultSettings()

	var err error
	if strings.EqualFold(filepath.Ext(path), ".hcl") {
		err = decodeHCL(path, settings)
	} else {
		err = decodeYAML(path, settings)
	}
	if err != nil {
		return nil, err
	}

	if validateErr := settings.validate(); validateErr != nil {
		return nil, validateErr
	}
	return settings, nil
}

// LoadSettings resolves the configuration file to use: the path in
// GITREVERT_CONFIG, otherwise the first file found in the default locations,
// otherwise the defaults.
func LoadSettings() (*Settings, error) {
	if path := os.Getenv(ConfigEnvVar); path != "" {
		return NewSettings(path)
	}

	path, err := FindConfigFile()
	if err != nil {
		logger.Debugf("No config file found, using defaults: %v", err)
		return DefaultSettings(), nil
	}

	logger.Debugf("Using config file: %s", path)
	return NewSettings(path)
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".gitrevert.yaml",
		".gitrevert.yml",
		".gitrevert.hcl",
		"gitrevert.yaml",
		"gitrevert.yml",
		"gitrevert.hcl",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

func decodeYAML(path string, settings *Settings) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings.Git.Binary = expandEnv(settings.Git.Binary)
	settings.Snapshots.Directory = expandEnv(settings.Snapshots.Directory)
	settings.Log.Level = expandEnv(settings.Log.Level)
	return nil
}

func decodeHCL(path string, settings *Settings) error {
	var decoded hclSettings
	if err := hclsimple.DecodeFile(path, hclEvalContext(), &decoded); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	if decoded.Git != nil && decoded.Git.Binary != "" {
		settings.Git.Binary = decoded.Git.Binary
	}
	if decoded.Snapshots != nil && decoded.Snapshots.Directory != "" {
		settings.Snapshots.Directory = decoded.Snapshots.Directory
	}
	if decoded.Prompts != nil {
		settings.Prompts.AssumeYes = decoded.Prompts.AssumeYes
	}
	if decoded.Log != nil && decoded.Log.Level != "" {
		settings.Log.Level = decoded.Log.Level
	}
	return nil
}

// hclEvalContext exposes the process environment as the "env" object, so
// HCL files can write `binary = env.GIT_BINARY`.
func hclEvalContext() *hcl.EvalContext {
	vars := make(map[string]cty.Value)
	for _, entry := range os.Environ() {
		name, value, ok := strings.Cut(entry, "=")
		if !ok || name == "" {
			continue
		}
		vars[name] = cty.StringVal(value)
	}

	env := cty.EmptyObjectVal
	if len(vars) > 0 {
		env = cty.ObjectVal(vars)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": env},
	}
}

// expandEnv expands ${VAR} references, leaving unset variables empty.
func expandEnv(raw string) string {
	if raw == "" {
		return raw
	}

	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}

// validate checks for required configuration values.
func (s *Settings) validate() error {
	if strings.TrimSpace(s.Git.Binary) == "" {
		return errors.New("git.binary must not be empty")
	}

	dir := s.Snapshots.Directory
	if dir == "" {
		return errors.New("snapshots.directory must not be empty")
	}
	if filepath.IsAbs(dir) {
		return fmt.Errorf("snapshots.directory %q must be relative to the git dir", dir)
	}
	if cleaned := filepath.Clean(dir); cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return fmt.Errorf("snapshots.directory %q must stay inside the git dir", dir)
	}

	if _, err := logger.ParseLevel(s.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	return nil
}
