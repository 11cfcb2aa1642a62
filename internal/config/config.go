package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	BaseURL     string `yaml:"base_url"`
	DataDir     string `yaml:"data_dir"`
	SummaryPath string `yaml:"summary_path"`
	ImageExt    string `yaml:"image_ext"`

	Cookie     string `yaml:"cookie"`
	CookieFile string `yaml:"cookie_file"`
	UserAgent  string `yaml:"user_agent"`

	TimeoutSeconds   int  `yaml:"timeout_seconds"`
	CloudflareBypass bool `yaml:"cloudflare_bypass"`
	Debug            bool `yaml:"debug"`
}

type Options struct {
	IgnoreConfig     bool
	Debug            bool
	BaseURL          string
	DataDir          string
	SummaryPath      string
	Cookie           string
	CookieFile       string
	UserAgent        string
	TimeoutSeconds   int
	CloudflareBypass bool
}

func DefaultConfig() *Config {
	return &Config{
		BaseURL:          "https://www.qwantz.com/",
		DataDir:          "data",
		SummaryPath:      "README.md",
		ImageExt:         "png",
		Cookie:           "",
		CookieFile:       "",
		UserAgent:        "",
		TimeoutSeconds:   30,
		CloudflareBypass: false,
		Debug:            false,
	}
}

func SaveYAML(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

func loadYAML(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}

	return &c, nil
}

func LoadMerged(opts Options) (*Config, string, error) {
	if opts.IgnoreConfig {
		cfg := DefaultConfig()
		mergeConfig(cfg, opts)
		normalizeDefaults(cfg)
		return cfg, "(ignored config)", nil
	}

	path := ConfigFile()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := DefaultConfig()
		mergeConfig(cfg, opts)
		normalizeDefaults(cfg)
		return cfg, "(default config in memory)\nRun `dinodaily config init` to create an actual config\n", nil
	}

	cfg, err := loadYAML(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config %s: %w", path, err)
	}

	mergeConfig(cfg, opts)
	normalizeDefaults(cfg)

	return cfg, path, nil
}

func mergeConfig(c *Config, o Options) {
	if o.BaseURL != "" {
		c.BaseURL = o.BaseURL
	}
	if o.DataDir != "" {
		c.DataDir = o.DataDir
	}
	if o.SummaryPath != "" {
		c.SummaryPath = o.SummaryPath
	}
	if o.Cookie != "" {
		c.Cookie = o.Cookie
	}
	if o.CookieFile != "" {
		c.CookieFile = o.CookieFile
	}
	if o.UserAgent != "" {
		c.UserAgent = o.UserAgent
	}
	if o.TimeoutSeconds != 0 {
		c.TimeoutSeconds = o.TimeoutSeconds
	}
	if o.CloudflareBypass {
		c.CloudflareBypass = true
	}
	if o.Debug {
		c.Debug = true
	}
}

func normalizeDefaults(c *Config) {
	if c.BaseURL == "" {
		c.BaseURL = "https://www.qwantz.com/"
	}
	if c.DataDir == "" {
		c.DataDir = "data"
	}
	if c.SummaryPath == "" {
		c.SummaryPath = "README.md"
	}
	if c.ImageExt == "" {
		c.ImageExt = "png"
	}
	if c.TimeoutSeconds == 0 {
		c.TimeoutSeconds = 30
	}
}

func (c *Config) Print() {
	fmt.Printf(" -base_url: %s\n", c.BaseURL)
	fmt.Printf(" -data_dir: %s\n", c.DataDir)
	fmt.Printf(" -summary_path: %s\n", c.SummaryPath)
	fmt.Printf(" -image_ext: %s\n", c.ImageExt)
	fmt.Printf(" -timeout_seconds: %d\n", c.TimeoutSeconds)
	if c.Cookie != "" {
		fmt.Printf(" -cookie: (set)\n")
	}
	if c.CookieFile != "" {
		fmt.Printf(" -cookie_file: %s\n", c.CookieFile)
	}
	if c.UserAgent != "" {
		fmt.Printf(" -user_agent: %s\n", c.UserAgent)
	}
	if c.CloudflareBypass {
		fmt.Printf(" -cloudflare_bypass: %t\n", c.CloudflareBypass)
	}
	if c.Debug {
		fmt.Printf(" -debug: %t\n", c.Debug)
	}
}
