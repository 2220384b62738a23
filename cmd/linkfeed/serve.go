package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"linkfeed/internal/api"
	"linkfeed/internal/auth"
	"linkfeed/internal/config"
	"linkfeed/internal/db"
	"linkfeed/internal/store"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			database, err := db.New(cfg.DB.Driver, cfg.DB.DSN)
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			if err := db.Migrate(database, cfg.DB.Driver); err != nil {
				return err
			}

			codec, err := auth.NewCodec(cfg.Auth.Secret)
			if err != nil {
				return err
			}
			resolver := auth.NewResolver(codec)
			authMiddleware := auth.NewMiddleware(resolver)

			userStore := store.NewUserStore(database)
			linkStore := store.NewLinkStore(database)
			voteStore := store.NewVoteStore(database)

			apiRouter := api.NewRouter(api.Deps{
				AuthMiddleware: authMiddleware,
				Codec:          codec,
				UserStore:      userStore,
				LinkStore:      linkStore,
				VoteStore:      voteStore,
			})

			router := chi.NewRouter()
			router.Mount("/api/v1", apiRouter)
			router.Handle("/metrics", promhttp.Handler())
			router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			log.Printf("listening on %s", cfg.HTTP.Addr)
			return http.ListenAndServe(cfg.HTTP.Addr, router)
		},
	}
}
