package repo

import (
	"fmt"
	"os"

	format "github.com/go-git/go-git/v5/plumbing/format/config"
)

// Config reads and writes the repository configuration file (.git/config)
type Config struct {
	path string
	raw  *format.Config
}

// LoadConfig parses the configuration file at the given path
func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	raw := format.New()
	if err := format.NewDecoder(file).Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &Config{path: path, raw: raw}, nil
}

// Path returns the location of the configuration file
func (c *Config) Path() string {
	return c.path
}

// Get returns the value of a key in a plain section, e.g. Get("user", "name")
func (c *Config) Get(section, name string) string {
	return c.raw.Section(section).Option(name)
}

// GetSub returns the value of a key in a subsection, e.g.
// GetSub("remote", "origin", "url").
func (c *Config) GetSub(section, subsection, name string) string {
	return c.raw.Section(section).Subsection(subsection).Option(name)
}

// Set overrides the value of a key in a plain section
func (c *Config) Set(section, name, value string) {
	c.raw.Section(section).SetOption(name, value)
}

// SetSub overrides the value of a key in a subsection
func (c *Config) SetSub(section, subsection, name, value string) {
	c.raw.Section(section).Subsection(subsection).SetOption(name, value)
}

// Save writes the configuration back to its file
func (c *Config) Save() error {
	file, err := os.Create(c.path)
	if err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	defer file.Close()

	if err := format.NewEncoder(file).Encode(c.raw); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// Remotes returns every remote defined in the config file, one per
// [remote "name"] section, in file order.
func (c *Config) Remotes() *Remotes {
	remotes := NewRemotes()
	for _, subsection := range c.raw.Section("remote").Subsections {
		remotes.ordered = append(remotes.ordered, &Remote{
			Name: subsection.Name,
			URL:  subsection.Option("url"),
		})
	}
	return remotes
}
