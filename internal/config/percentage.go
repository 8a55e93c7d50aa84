package config

import "time"

type Percentage struct {
	ProviderURL     string        `env:"PERCENTAGE_PROVIDER_URL,notEmpty"`
	ProviderAPIKey  string        `env:"PERCENTAGE_PROVIDER_API_KEY" json:"-"`
	ProviderTimeout time.Duration `env:"PERCENTAGE_PROVIDER_TIMEOUT" envDefault:"10s"`
	CacheKey        string        `env:"PERCENTAGE_CACHE_KEY" envDefault:"percentage:string"`
	FetchDelay      time.Duration `env:"PERCENTAGE_FETCH_DELAY" envDefault:"3s"`
}
