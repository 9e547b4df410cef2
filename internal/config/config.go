package config

import (
	"encoding/xml"
	"io"
	"os"
	"sync"
)

var (
	cfg  *APIConfig
	once sync.Once
)

// APIConfig represents the root element.
type APIConfig struct {
	XMLName     xml.Name        `xml:"API"`
	RequestDump bool            `xml:"REQUEST_DUMP,attr"`
	Context     ContextConfig   `xml:"CONTEXT"`
	DB          DBConfig        `xml:"DB"`
	AIServices  AIServiceConfig `xml:"AI_SERVICES"`
	Interview   InterviewConfig `xml:"INTERVIEW"`
}

// ContextConfig holds basic server settings.
type ContextConfig struct {
	Port     int    `xml:"PORT"`
	Host     string `xml:"HOST"`
	Path     string `xml:"PATH"`
	TimeZone string `xml:"TIME_ZONE"`
	LogDir   string `xml:"LOG_DIR"`
}

// AIServiceConfig holds the endpoints of the external generation and
// scoring services. All three degrade to local fallbacks when empty or
// unreachable.
type AIServiceConfig struct {
	TheoryGenURL    string `xml:"THEORY_GEN_URL"`
	PracticalGenURL string `xml:"PRACTICAL_GEN_URL"`
	ValidationURL   string `xml:"VALIDATION_URL"`
	RequestsPerSec  int    `xml:"REQUESTS_PER_SEC"`
	TimeoutSeconds  int    `xml:"TIMEOUT_SECONDS"`
}

// InterviewConfig holds session policy settings.
type InterviewConfig struct {
	PairsPerSession   int    `xml:"PAIRS_PER_SESSION"`
	DefaultModule     string `xml:"DEFAULT_MODULE"`
	CaptureMaxSeconds int    `xml:"CAPTURE_MAX_SECONDS"`
}

// DBConfig holds database connection settings.
type DBConfig struct {
	Initialize bool         `xml:"INITIALIZE"`
	Host       string       `xml:"HOST"`
	Port       int          `xml:"PORT"`
	SSLMode    string       `xml:"SSL_MODE"`
	Name       string       `xml:"NAME"`
	Username   string       `xml:"USERNAME"`
	Password   string       `xml:"PASSWORD"`
	Pool       DBPoolConfig `xml:"POOL"`
}

// DBPoolConfig holds database connection pooling settings.
type DBPoolConfig struct {
	MaxOpenConns    int `xml:"MAX_OPEN_CONNS"`
	MaxIdleConns    int `xml:"MAX_IDLE_CONNS"`
	ConnMaxLifetime int `xml:"CONN_MAX_LIFETIME"`
}

// LoadConfig loads and parses the XML configuration from the given file.
func LoadConfig(xmlPath string) (*APIConfig, error) {
	once.Do(func() {
		f, err := os.Open(xmlPath)
		if err != nil {
			return
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			return
		}

		var newCfg APIConfig
		if err := xml.Unmarshal(data, &newCfg); err != nil {
			return
		}

		applyDefaults(&newCfg)
		cfg = &newCfg
	})

	if cfg == nil {
		return nil, os.ErrInvalid
	}
	return cfg, nil
}

func applyDefaults(c *APIConfig) {
	if c.Interview.PairsPerSession <= 0 {
		c.Interview.PairsPerSession = 1
	}
	if c.Interview.DefaultModule == "" {
		c.Interview.DefaultModule = "sql"
	}
	if c.AIServices.TimeoutSeconds <= 0 {
		c.AIServices.TimeoutSeconds = 30
	}
	if c.AIServices.RequestsPerSec <= 0 {
		c.AIServices.RequestsPerSec = 2
	}
	if c.Context.LogDir == "" {
		c.Context.LogDir = "logs"
	}
}

// GetConfig returns the loaded configuration.
func GetConfig() *APIConfig {
	return cfg
}
