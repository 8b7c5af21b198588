// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/taibuivan/studyhub/internal/platform/sec"
)

func newTokenCommand(load loader) *cobra.Command {
	var (
		id   string
		role string
		ttl  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a signed credential for local testing",
		Long: "Issue a signed credential with the configured key. RS256 setups need " +
			"JWT_PRIVATE_KEY_PATH; HS256 setups sign with JWT_SECRET.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsed, ok := sec.ParseRole(role)
			if !ok {
				return fmt.Errorf("unknown role %q (want user or admin)", role)
			}

			cfg, _, err := load()
			if err != nil {
				return err
			}

			tokens, err := newTokenService(cfg)
			if err != nil {
				return err
			}

			token, err := tokens.Issue(sec.Identity{ID: id, Role: parsed}, ttl)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}

	cmd.Flags().StringVar(&id, "id", "dev-admin", "identity id carried in the credential")
	cmd.Flags().StringVar(&role, "role", string(sec.RoleAdmin), "role carried in the credential (user or admin)")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "credential lifetime")
	return cmd
}
