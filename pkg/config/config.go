package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	DB      DBConfig
	AMQP    AMQPConfig
	Receipt ReceiptConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// DBConfig configuración de PostgreSQL.
// DBName, Port y User llegan normalmente por los argumentos posicionales del CLI (ver WithArgs).
type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string // vacío por defecto; DB_PASSWORD lo reemplaza
	DBName   string
	SSLMode  string
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// WithArgs aplica los argumentos posicionales <dbname> <port> <user>.
func (c DBConfig) WithArgs(dbName, port, user string) (DBConfig, error) {
	p, err := strconv.Atoi(strings.TrimSpace(port))
	if err != nil || p <= 0 || p > 65535 {
		return c, fmt.Errorf("puerto inválido %q", port)
	}
	c.DBName = dbName
	c.Port = p
	c.User = user
	return c, nil
}

// AMQPConfig configuración del publicador de eventos de pedidos.
// URL vacía desactiva la publicación.
type AMQPConfig struct {
	URL      string
	Exchange string
}

// Enabled indica si hay broker configurado.
func (c AMQPConfig) Enabled() bool { return c.URL != "" }

// ReceiptConfig destino de los recibos PDF exportados.
type ReceiptConfig struct {
	Dir string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DB_HOST, DB_PASSWORD, AMQP_URL, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "pizzastore"),
			LogLevel: getString(v, "LOG_LEVEL", "warn"),
		},
		DB: DBConfig{
			Host:     getString(v, "DB_HOST", "localhost"),
			Port:     getInt(v, "DB_PORT", 5432),
			User:     getString(v, "DB_USER", "postgres"),
			Password: getString(v, "DB_PASSWORD", ""),
			DBName:   getString(v, "DB_NAME", "pizzastore"),
			SSLMode:  getString(v, "DB_SSLMODE", "disable"),
		},
		AMQP: AMQPConfig{
			URL:      getString(v, "AMQP_URL", ""),
			Exchange: getString(v, "AMQP_EXCHANGE", "pizzastore.orders"),
		},
		Receipt: ReceiptConfig{
			Dir: getString(v, "RECEIPT_DIR", "."),
		},
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
