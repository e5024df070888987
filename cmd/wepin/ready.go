package main

import (
	"github.com/spf13/cobra"
	"github.com/wepin/wepin-common-go/internal/output"
	"github.com/wepin/wepin-common-go/pkg/jsbridge"
	"github.com/wepin/wepin-common-go/pkg/sdkurl"
)

func readyCommand(a *app) *cobra.Command {
	var (
		id          string
		requestFrom string
	)
	cmd := &cobra.Command{
		Use:   "ready",
		Short: "Print the ready_to_widget response built from the configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			key, err := a.appKey(nil)
			if err != nil {
				return err
			}
			urls, err := a.resolver.Resolve(key)
			if err != nil {
				return err
			}

			attrs := a.cfg.WidgetAttributes()
			resp := jsbridge.NewBuilder(id, requestFrom, "ready_to_widget", jsbridge.StateSuccess).
				SetBodyData(jsbridge.ReadyToWidgetBodyData{
					AppKey:     key,
					AppID:      a.cfg.AppID,
					Domain:     a.cfg.Domain,
					Platform:   a.cfg.Platform,
					Type:       a.cfg.SDKType,
					Version:    a.cfg.SDKVersion,
					LocalData:  map[string]any{},
					Attributes: &attrs,
				}).
				Build()

			doc := output.NewDocument("READY TO WIDGET").
				Add("id", resp.Header.ID).
				Add("responseTo", resp.Header.ResponseTo).
				Add("command", resp.Body.Command).
				Add("state", resp.Body.State).
				Add(sdkurl.KeySDKBackend, urls.SDKBackend).
				WithPayload(resp)

			// Headers the SDK presents to sdkBackend for this configuration.
			hdr := a.cfg.RequestHeaders().Header()
			for _, name := range []string{sdkurl.HeaderAPIKey, sdkurl.HeaderAPIDomain, sdkurl.HeaderSDKType, sdkurl.HeaderSDKVersion} {
				doc.Add(name, hdr.Get(name))
			}
			return a.render(cmd, doc)
		},
	}
	cmd.Flags().StringVar(&id, "id", "1", "Request id being answered")
	cmd.Flags().StringVar(&requestFrom, "request-from", "wepin_widget", "Sender of the request")
	return cmd
}
