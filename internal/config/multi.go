package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var ErrNoConfig = errors.New("no config selected")

const DefaultLabel = "Default"

func ConfigRoot() string {
	// Windows
	if appdata := os.Getenv("APPDATA"); appdata != "" {
		return filepath.Join(appdata, "wikiep")
	}

	// Linux/macOS XDG
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "wikiep")
	}

	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "wikiep")
}

// Store manages labeled profiles: <root>/configs/<label>.yaml plus a
// current_config file holding the active label.
type Store struct {
	root string
}

func NewStore(root string) *Store {
	return &Store{root: root}
}

func DefaultStore() *Store {
	return NewStore(ConfigRoot())
}

func (s *Store) ConfigsDir() string {
	return filepath.Join(s.root, "configs")
}

func (s *Store) currentLabelFile() string {
	return filepath.Join(s.root, "current_config")
}

func (s *Store) PathFor(label string) string {
	return filepath.Join(s.ConfigsDir(), label+".yaml")
}

func (s *Store) ensureDirs() error {
	return os.MkdirAll(s.ConfigsDir(), 0o755)
}

func (s *Store) CurrentLabel() (string, error) {
	b, err := os.ReadFile(s.currentLabelFile())
	if os.IsNotExist(err) {
		return "", ErrNoConfig
	}
	if err != nil {
		return "", err
	}

	label := strings.TrimSpace(string(b))
	if label == "" {
		return "", ErrNoConfig
	}
	return label, nil
}

func (s *Store) ActiveConfigPath() (string, error) {
	label, err := s.CurrentLabel()
	if err != nil {
		return "", err
	}
	return s.PathFor(label), nil
}

// ConfigPathByLabel returns the profile path for label if it exists.
func (s *Store) ConfigPathByLabel(label string) (string, error) {
	path := s.PathFor(label)
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("config %q does not exist", label)
	}
	return path, nil
}

type ConfigInfo struct {
	Label  string
	Path   string
	Active bool
}

func (s *Store) ListConfigs() ([]ConfigInfo, error) {
	if err := s.ensureDirs(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.ConfigsDir())
	if err != nil {
		return nil, err
	}

	activeLabel, _ := s.CurrentLabel()
	var out []ConfigInfo

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".yaml") {
			continue
		}

		label := strings.TrimSuffix(name, ".yaml")
		out = append(out, ConfigInfo{
			Label:  label,
			Path:   filepath.Join(s.ConfigsDir(), name),
			Active: label == activeLabel,
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out, nil
}

func (s *Store) SwitchConfig(label string) error {
	if strings.TrimSpace(label) == "" {
		return errors.New("label cannot be empty")
	}
	if err := s.ensureDirs(); err != nil {
		return err
	}

	if _, err := s.ConfigPathByLabel(label); err != nil {
		return err
	}

	return os.WriteFile(s.currentLabelFile(), []byte(label), 0o644)
}

func (s *Store) CreateConfig(label string, cfg *Config) (string, error) {
	if strings.TrimSpace(label) == "" {
		return "", errors.New("label cannot be empty")
	}
	if strings.ContainsAny(label, `/\`) {
		return "", fmt.Errorf("label %q must not contain path separators", label)
	}
	if err := s.ensureDirs(); err != nil {
		return "", err
	}

	path := s.PathFor(label)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("config %q already exists", label)
	}

	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := SaveYAML(cfg, path); err != nil {
		return "", err
	}

	return path, nil
}

func (s *Store) RenameConfig(oldLabel, newLabel string) error {
	if strings.TrimSpace(newLabel) == "" {
		return errors.New("new label cannot be empty")
	}

	oldPath, err := s.ConfigPathByLabel(oldLabel)
	if err != nil {
		return err
	}
	newPath := s.PathFor(newLabel)
	if _, err := os.Stat(newPath); err == nil {
		return fmt.Errorf("config %q already exists", newLabel)
	}

	if err := os.Rename(oldPath, newPath); err != nil {
		return err
	}

	if active, _ := s.CurrentLabel(); active == oldLabel {
		return os.WriteFile(s.currentLabelFile(), []byte(newLabel), 0o644)
	}

	return nil
}

// RemoveConfig deletes a profile. Removing the active profile switches back
// to Default; the returned label is the profile active afterwards.
func (s *Store) RemoveConfig(label string) (string, error) {
	if strings.TrimSpace(label) == "" {
		return "", errors.New("label cannot be empty")
	}
	if label == DefaultLabel {
		return "", errors.New("cannot remove the Default config")
	}

	path, err := s.ConfigPathByLabel(label)
	if err != nil {
		return "", err
	}

	active, _ := s.CurrentLabel()
	if active == label {
		if err := s.SwitchConfig(DefaultLabel); err != nil {
			return "", fmt.Errorf("failed switching to Default: %w", err)
		}
		active = DefaultLabel
	}

	return active, os.Remove(path)
}

// InitDefaultConfig creates and activates the Default profile. It returns
// os.ErrExist along with the path when the profile is already there.
func (s *Store) InitDefaultConfig() (string, error) {
	if err := s.ensureDirs(); err != nil {
		return "", err
	}

	defPath := s.PathFor(DefaultLabel)
	if _, err := os.Stat(defPath); err != nil {
		if err := SaveYAML(DefaultConfig(), defPath); err != nil {
			return "", err
		}
	} else {
		_ = os.WriteFile(s.currentLabelFile(), []byte(DefaultLabel), 0o644)
		return defPath, os.ErrExist
	}

	return defPath, os.WriteFile(s.currentLabelFile(), []byte(DefaultLabel), 0o644)
}

// LoadMerged loads the active profile, applies opts on top and fills in
// defaults. The second return value describes where the config came from.
func (s *Store) LoadMerged(opts Options) (*Config, string, error) {
	if opts.IgnoreConfig {
		cfg := DefaultConfig()
		mergeConfig(cfg, opts)
		normalizeDefaults(cfg)
		return cfg, "(ignored config)", nil
	}

	activePath, err := s.ActiveConfigPath()
	if errors.Is(err, ErrNoConfig) {
		cfg := DefaultConfig()
		mergeConfig(cfg, opts)
		normalizeDefaults(cfg)
		return cfg, "(default config in memory)", nil
	}
	if err != nil {
		return nil, "", err
	}

	cfg, err := loadYAML(activePath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config %s: %w", activePath, err)
	}

	mergeConfig(cfg, opts)
	normalizeDefaults(cfg)

	return cfg, activePath, nil
}
