package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config carries the settings for one invocation after flag, file, and
// default precedence has been applied.
type Config struct {
	Session   string
	TmuxBin   string
	TmuxArgs  string
	SSHProg   string
	SSHArgs   []string
	LocalUser string
	Debug     bool
}

// DefaultName is the session name used when none was given explicitly:
// the configured stem joined with the local username.
func (c *Config) DefaultName() string {
	return c.Session + "_" + c.LocalUser
}

type HostProfile struct {
	Host     string   `yaml:"host"`
	User     string   `yaml:"user"`
	Port     int      `yaml:"port"`
	Identity string   `yaml:"identity"`
	Options  []string `yaml:"options"`
}

type File struct {
	Session    string                 `yaml:"session"`
	Tmux       string                 `yaml:"tmux"`
	TmuxArgs   string                 `yaml:"tmux_args"`
	SSHProgram string                 `yaml:"ssh_program"`
	Hosts      map[string]HostProfile `yaml:"hosts"`
}

// LoadFile reads the config from ~/.config/vigil/config.yaml.
// Returns an empty config if the file doesn't exist.
func LoadFile() (*File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return &File{}, nil
	}
	return loadFile(filepath.Join(home, ".config", "vigil", "config.yaml"))
}

func loadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &File{}, nil
		}
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	// Expand ~ in identity paths
	if home, err := os.UserHomeDir(); err == nil {
		for name, h := range f.Hosts {
			if len(h.Identity) > 0 && h.Identity[0] == '~' {
				h.Identity = filepath.Join(home, h.Identity[1:])
			}
			f.Hosts[name] = h
		}
	}

	return &f, nil
}

// ResolveHost replaces the first bare destination token that names a
// configured host profile with that profile's full ssh arguments. Flags
// and tokens that already look like destinations (user@host, host:port)
// pass through untouched.
func (f *File) ResolveHost(args []string) []string {
	for i, a := range args {
		if a == "" || strings.HasPrefix(a, "-") || strings.ContainsAny(a, "@:") {
			continue
		}
		h, ok := f.Hosts[a]
		if !ok {
			continue
		}

		host := h.Host
		if host == "" {
			host = a
		}
		dest := host
		if h.User != "" {
			dest = h.User + "@" + host
		}

		expanded := make([]string, 0, len(args)+len(h.Options)+4)
		expanded = append(expanded, args[:i]...)
		expanded = append(expanded, h.Options...)
		if h.Identity != "" {
			expanded = append(expanded, "-i", h.Identity)
		}
		if h.Port != 0 {
			expanded = append(expanded, "-p", strconv.Itoa(h.Port))
		}
		expanded = append(expanded, dest)
		expanded = append(expanded, args[i+1:]...)
		return expanded
	}
	return args
}
