package ioc

import (
	"crypto/ed25519"
	"crypto/x509"
	"encoding/pem"

	httpapi "github.com/JrMarcco/shipsync/internal/api/http"
	"github.com/JrMarcco/shipsync/internal/api/http/middleware/jwt"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/viper"
	"go.uber.org/fx"
)

var HttpFxOpt = fx.Provide(
	InitGinEngine,
	httpapi.NewServer,
)

func InitGinEngine(server *httpapi.Server, registry *prometheus.Registry) *gin.Engine {
	type config struct {
		PubPem string `mapstructure:"public"`
	}

	cfg := &config{}
	if err := viper.UnmarshalKey("jwt", cfg); err != nil {
		panic(err)
	}

	metricsPath := viper.GetString("metrics.path")
	if metricsPath == "" {
		metricsPath = "/metrics"
	}

	if viper.GetString("profile.env") == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	// 指标接口不需要鉴权
	engine.GET(metricsPath, gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	api := engine.Group("/api/v1")
	api.Use(jwt.NewBuilder(loadJwtPublicKey(cfg.PubPem)).Build())
	server.RegisterRoutes(api)

	return engine
}

// loadJwtPublicKey 加载 jwt 公钥。
//
// PEM 块本身标注的是公钥，而不是具体的 ed25519 公钥。
// 需要先由 x509 包解析后再类型断言才能获得 ed25519 公钥。
func loadJwtPublicKey(pubPem string) ed25519.PublicKey {
	block, _ := pem.Decode([]byte(pubPem))
	if block == nil {
		panic("failed to decode public key PEM")
	}
	pubKey, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		panic(err)
	}

	edKey, ok := pubKey.(ed25519.PublicKey)
	if !ok {
		panic("jwt public key is not an ed25519 key")
	}
	return edKey
}
