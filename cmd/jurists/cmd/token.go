package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/thejurists/site-api/internal/core/domain"
	"github.com/thejurists/site-api/internal/identity"
)

var (
	tokenSubject string
	tokenTTL     time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a bearer token for local development",
	Long: `Signs a token with JWT_SECRET whose subject is the given identity. The first
identity to call POST /v1/access/initialize becomes the site administrator.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cfg.IsDevelopment() {
			log.Warn().Str("env", cfg.Env).Msg("minting a token outside development")
		}
		token, err := identity.Issue(cfg.JWTSecret, domain.CallerIdentity(tokenSubject), tokenTTL)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "", "Caller identity placed in the token subject")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "Token lifetime")
	_ = tokenCmd.MarkFlagRequired("subject")
}
