// Package config loads application configuration from file and environment.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Data    DataConfig    `yaml:"data" mapstructure:"data"`
	Geo     GeoConfig     `yaml:"geo" mapstructure:"geo"`
	Market  MarketConfig  `yaml:"market" mapstructure:"market"`
	Scoring ScoringConfig `yaml:"scoring" mapstructure:"scoring"`
	Socio   SocioConfig   `yaml:"socio" mapstructure:"socio"`
	Server  ServerConfig  `yaml:"server" mapstructure:"server"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
}

// DataConfig points at the remote reference tables loaded at startup.
type DataConfig struct {
	DVFURL       string `yaml:"dvf_url" mapstructure:"dvf_url"`
	LoyersURL    string `yaml:"loyers_url" mapstructure:"loyers_url"`
	TimeoutSecs  int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	DVFSource    string `yaml:"dvf_source" mapstructure:"dvf_source"`
	LoyersSource string `yaml:"loyers_source" mapstructure:"loyers_source"`
}

// GeoConfig configures the commune name resolution client.
type GeoConfig struct {
	BaseURL     string `yaml:"base_url" mapstructure:"base_url"`
	Departement string `yaml:"departement" mapstructure:"departement"`
	TimeoutSecs int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
}

// MarketConfig holds the price reliability thresholds.
type MarketConfig struct {
	MinVentesAppartement int `yaml:"min_ventes_appartement" mapstructure:"min_ventes_appartement"`
	MinVentesMaison      int `yaml:"min_ventes_maison" mapstructure:"min_ventes_maison"`
}

// ScoringConfig holds the composite score weights.
type ScoringConfig struct {
	PoidsRendement   float64 `yaml:"poids_rendement" mapstructure:"poids_rendement"`
	PoidsDemographie float64 `yaml:"poids_demographie" mapstructure:"poids_demographie"`
	PoidsSocioEco    float64 `yaml:"poids_socio_eco" mapstructure:"poids_socio_eco"`
}

// SocioConfig holds the regional fallback indicators used when no richer
// per-commune source is wired in. Defaults approximate Seine-Maritime.
type SocioConfig struct {
	ChomagePct      float64 `yaml:"chomage_pct" mapstructure:"chomage_pct"`
	RevenuMedian    float64 `yaml:"revenu_median" mapstructure:"revenu_median"`
	PartCadresPct   float64 `yaml:"part_cadres_pct" mapstructure:"part_cadres_pct"`
	TauxPauvretePct float64 `yaml:"taux_pauvrete_pct" mapstructure:"taux_pauvrete_pct"`
	EvolutionPopPct float64 `yaml:"evolution_pop_pct" mapstructure:"evolution_pop_pct"`
	VacancePct      float64 `yaml:"vacance_pct" mapstructure:"vacance_pct"`
}

// ServerConfig configures the API server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("RADAR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("data.dvf_url", "https://raw.githubusercontent.com/raphaelrousselle-droid/radar-immo76/main/dvf_76.csv")
	v.SetDefault("data.loyers_url", "https://raw.githubusercontent.com/raphaelrousselle-droid/radar-immo76/main/loyers_76.csv")
	v.SetDefault("data.timeout_secs", 15)
	v.SetDefault("data.dvf_source", "DVF notarial 2024 (DGFiP)")
	v.SetDefault("data.loyers_source", "Carte loyers ANIL 2024")
	v.SetDefault("geo.base_url", "https://geo.api.gouv.fr")
	v.SetDefault("geo.departement", "76")
	v.SetDefault("geo.timeout_secs", 8)
	v.SetDefault("market.min_ventes_appartement", 10)
	v.SetDefault("market.min_ventes_maison", 5)
	v.SetDefault("scoring.poids_rendement", 0.5)
	v.SetDefault("scoring.poids_demographie", 0.25)
	v.SetDefault("scoring.poids_socio_eco", 0.25)
	v.SetDefault("socio.chomage_pct", 14.5)
	v.SetDefault("socio.revenu_median", 20000)
	v.SetDefault("socio.part_cadres_pct", 9.0)
	v.SetDefault("socio.taux_pauvrete_pct", 18.0)
	v.SetDefault("socio.evolution_pop_pct", 0.0)
	v.SetDefault("socio.vacance_pct", 10.0)
	v.SetDefault("server.port", 8000)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
