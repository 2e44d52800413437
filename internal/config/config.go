package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port                          string        `mapstructure:"PORT"`
	DatabasePath                  string        `mapstructure:"DATABASE_PATH"`
	Environment                   string        `mapstructure:"ENVIRONMENT"`
	FlightAPIURL                  string        `mapstructure:"FLIGHT_API_URL"`
	TaxiAPIURL                    string        `mapstructure:"TAXI_API_URL"`
	RemoteTimeout                 time.Duration `mapstructure:"REMOTE_TIMEOUT"`
	RemoteOAuthClientID           string        `mapstructure:"REMOTE_OAUTH_CLIENT_ID"`
	RemoteOAuthClientSecret       string        `mapstructure:"REMOTE_OAUTH_CLIENT_SECRET"`
	RemoteOAuthTokenURL           string        `mapstructure:"REMOTE_OAUTH_TOKEN_URL"`
	AgencyFirstName               string        `mapstructure:"AGENCY_FIRST_NAME"`
	AgencyLastName                string        `mapstructure:"AGENCY_LAST_NAME"`
	AgencyEmail                   string        `mapstructure:"AGENCY_EMAIL"`
	AgencyPhone                   string        `mapstructure:"AGENCY_PHONE"`
	DiscordBotToken               string        `mapstructure:"DISCORD_BOT_TOKEN"`
	DiscordNotificationsChannelID string        `mapstructure:"DISCORD_NOTIFICATIONS_CHANNEL_ID"`
}

// Agency is the identity the travel agent books flights and taxis under.
type Agency struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
}

func (c *Config) Agency() Agency {
	return Agency{
		FirstName:   c.AgencyFirstName,
		LastName:    c.AgencyLastName,
		Email:       c.AgencyEmail,
		PhoneNumber: c.AgencyPhone,
	}
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func LoadConfig() *Config {
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DATABASE_PATH", "travel.db")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("FLIGHT_API_URL", "http://127.0.0.1:8081")
	viper.SetDefault("TAXI_API_URL", "http://127.0.0.1:8082")
	viper.SetDefault("REMOTE_TIMEOUT", "10s")
	viper.SetDefault("AGENCY_FIRST_NAME", "Divya")
	viper.SetDefault("AGENCY_LAST_NAME", "Tewari")
	viper.SetDefault("AGENCY_EMAIL", "div@example.com")
	viper.SetDefault("AGENCY_PHONE", "08866754320")

	viper.BindEnv("FLIGHT_API_URL")
	viper.BindEnv("TAXI_API_URL")
	viper.BindEnv("REMOTE_OAUTH_CLIENT_ID")
	viper.BindEnv("REMOTE_OAUTH_CLIENT_SECRET")
	viper.BindEnv("REMOTE_OAUTH_TOKEN_URL")
	viper.BindEnv("AGENCY_FIRST_NAME")
	viper.BindEnv("AGENCY_LAST_NAME")
	viper.BindEnv("AGENCY_EMAIL")
	viper.BindEnv("AGENCY_PHONE")
	viper.BindEnv("DISCORD_BOT_TOKEN")
	viper.BindEnv("DISCORD_NOTIFICATIONS_CHANNEL_ID")

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}

	return &config
}
