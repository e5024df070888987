package main

import (
	"github.com/spf13/cobra"
	"github.com/wepin/wepin-common-go/internal/output"
)

func urlsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "urls [app-key]",
		Short: "Resolve the SDK base URLs for an app key",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := a.appKey(args)
			if err != nil {
				return err
			}
			urls, err := a.resolver.ResolveMap(key)
			if err != nil {
				return err
			}
			return a.render(cmd, output.NewDocument("WEPIN SDK URLS").AddMap(urls))
		},
	}
}

func keyTypeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "keytype [app-key]",
		Short: "Show the environment an app key belongs to",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := a.appKey(args)
			if err != nil {
				return err
			}
			k, err := a.resolver.KeyType(key)
			if err != nil {
				return err
			}
			return a.render(cmd, output.NewDocument("APP KEY").Add("keyType", k.String()))
		},
	}
}
