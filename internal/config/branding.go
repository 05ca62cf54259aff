package config

import (
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// BrandingConfig carries the document branding defaults applied when
// the stored template settings leave a field blank.
type BrandingConfig struct {
	CompanyName    string `mapstructure:"companyName"`
	LogoText       string `mapstructure:"logoText"`
	PrimaryColor   string `mapstructure:"primaryColor"`
	AccentColor    string `mapstructure:"accentColor"`
	FontFamily     string `mapstructure:"fontFamily"`
	BodyFont       string `mapstructure:"bodyFont"`
	PageMarginMM   int    `mapstructure:"pageMarginMM"`
	HeaderHeightMM int    `mapstructure:"headerHeightMM"`
	FooterHeightMM int    `mapstructure:"footerHeightMM"`
}

func DefaultBrandingConfig() BrandingConfig {
	return BrandingConfig{
		CompanyName:    "A fine wood furniture company",
		LogoText:       "JAIPUR",
		PrimaryColor:   "#3d2c1e",
		AccentColor:    "#d4622e",
		FontFamily:     "Playfair Display",
		BodyFont:       "Manrope",
		PageMarginMM:   15,
		HeaderHeightMM: 25,
		FooterHeightMM: 20,
	}
}

// BrandingConfigHolder serves the current branding defaults and hot
// reloads them when the config file changes on disk.
type BrandingConfigHolder struct {
	current atomic.Value // holds BrandingConfig
}

func NewBrandingConfigHolder() (*BrandingConfigHolder, error) {
	v := viper.New()

	v.SetConfigName("branding")
	v.SetConfigType("yml")
	v.AddConfigPath("/var/lib/prodsheet/config") // Volume-mounted config
	v.AddConfigPath("/etc/prodsheet")            // System config
	v.AddConfigPath(".")                         // Current directory (dev mode)

	v.SetEnvPrefix("PRODSHEET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		defaults := DefaultBrandingConfig()
		v.SetDefault("branding.companyName", defaults.CompanyName)
		v.SetDefault("branding.logoText", defaults.LogoText)
		v.SetDefault("branding.primaryColor", defaults.PrimaryColor)
		v.SetDefault("branding.accentColor", defaults.AccentColor)
		v.SetDefault("branding.fontFamily", defaults.FontFamily)
		v.SetDefault("branding.bodyFont", defaults.BodyFont)
		v.SetDefault("branding.pageMarginMM", defaults.PageMarginMM)
		v.SetDefault("branding.headerHeightMM", defaults.HeaderHeightMM)
		v.SetDefault("branding.footerHeightMM", defaults.FooterHeightMM)
	}

	var cfg BrandingConfig
	if err := v.UnmarshalKey("branding", &cfg); err != nil {
		return nil, err
	}
	if err := validateBrandingConfig(cfg); err != nil {
		return nil, err
	}

	holder := &BrandingConfigHolder{}
	holder.current.Store(cfg)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		var updated BrandingConfig
		if err := v.UnmarshalKey("branding", &updated); err != nil {
			log.Printf("[branding-config] reload failed: %v", err)
			return
		}
		if err := validateBrandingConfig(updated); err != nil {
			log.Printf("[branding-config] invalid config ignored: %v", err)
			return
		}
		holder.current.Store(updated)
		log.Printf("[branding-config] reloaded from %s", e.Name)
	})

	return holder, nil
}

func (h *BrandingConfigHolder) Get() BrandingConfig {
	return h.current.Load().(BrandingConfig)
}

func validateBrandingConfig(cfg BrandingConfig) error {
	if strings.TrimSpace(cfg.LogoText) == "" {
		return errors.New("branding.logoText cannot be empty")
	}
	if cfg.PageMarginMM < 0 || cfg.HeaderHeightMM < 0 || cfg.FooterHeightMM < 0 {
		return errors.New("branding dimensions cannot be negative")
	}
	return nil
}
