package main

import (
	"errors"
	"net/http"

	"github.com/go-chi/cors"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"Windsign/internal/auth"
	"Windsign/internal/calc/loads"
	"Windsign/internal/calc/panel"
	"Windsign/internal/calc/post"
	"Windsign/internal/calc/premium/autodesign"
	"Windsign/internal/calc/premium/batch"
	"Windsign/internal/calc/premium/importer"
	"Windsign/internal/calc/premium/recommend"
	"Windsign/internal/calc/projecting"
	"Windsign/internal/calc/report"
	"Windsign/internal/calc/wall"
	"Windsign/internal/config"
	"Windsign/internal/metrics"
	"Windsign/internal/respond"
)

func CORS(next http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization", auth.APIKeyHeader},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         300,
	})(next)
}

var errPremiumDisabled = errors.New("premium features are not enabled on this server")

func premiumDisabled(w http.ResponseWriter, r *http.Request) {
	respond.Error(w, http.StatusNotFound, errPremiumDisabled)
}

func HandleList(r *mux.Router, cfg *config.Config, log zerolog.Logger, m *metrics.Metrics, reg prometheus.Gatherer) {
	r.Use(RequestLogger(log, m))

	authEnv := &auth.Authenv{
		JWTkey:     []byte(cfg.TokenKey),
		APIKeyHash: []byte(cfg.APIKeyHash),
		Log:        log,
	}
	limiter := auth.NewIPRateLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	loadsH := &loads.Handler{Log: log, Metrics: m}
	api.HandleFunc("/calculate-wind-loading", loadsH.Calc).Methods("POST")
	api.HandleFunc("/validate-postcode", loadsH.Postcode).Methods("POST")
	api.HandleFunc("/health", loadsH.Health).Methods("GET")
	api.HandleFunc("/info", loadsH.Info).Methods("GET")

	wallH := &wall.Handler{Log: log, Metrics: m}
	projectingH := &projecting.Handler{Log: log, Metrics: m}
	postH := &post.Handler{Log: log, Metrics: m}
	panelH := &panel.Handler{Log: log, Metrics: m}
	reportH := &report.Handler{Gen: report.NewGenerator(cfg.PreparedBy), Log: log}

	api.HandleFunc("/tools/wall/calc", wallH.Calc).Methods("POST")
	api.HandleFunc("/tools/projecting/calc", projectingH.Calc).Methods("POST")
	api.HandleFunc("/tools/post/calc", postH.Calc).Methods("POST")
	api.HandleFunc("/tools/panel/calc", panelH.Calc).Methods("POST")
	api.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")
	api.HandleFunc("/tools/report/xlsx", reportH.Workbook).Methods("POST")

	premium := api.PathPrefix("/premium").Subrouter()
	if cfg.Premium() {
		premium.Use(authEnv.AuthMiddleware)

		batchH := &batch.Handler{Log: log}
		importH := &importer.Handler{Log: log}
		autoH := &autodesign.Handler{Log: log}
		recommendH := &recommend.Handler{}
		premium.HandleFunc("/batch", batchH.Loads).Methods("POST")
		premium.HandleFunc("/import", importH.Wall).Methods("POST")
		premium.HandleFunc("/autodesign/post", autoH.Post).Methods("POST")
		premium.HandleFunc("/recommend/spacing", recommendH.Spacing).Methods("POST")
	} else {
		log.Warn().Msg("no token key or API key hash configured, premium routes disabled")
		premium.PathPrefix("/").HandlerFunc(premiumDisabled)
	}

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{})).Methods("GET")

	r.PathPrefix("/").Handler(http.FileServer(http.Dir(cfg.StaticDir)))
}
