// Package jsbridge models the envelope native code sends back to the Wepin
// widget running inside a webview.
package jsbridge

import (
	"encoding/json"
	"fmt"

	"github.com/wepin/wepin-common-go/pkg/domain"
)

// ResponseFromNative is the sender recorded on every native response.
const ResponseFromNative = "native"

// Response states
const (
	StateSuccess = "SUCCESS"
	StateError   = "ERROR"
)

// Response is a reply to a widget request
type Response struct {
	Header Header `json:"header" yaml:"header"`
	Body   Body   `json:"body" yaml:"body"`
}

// Header correlates a response with the request it answers
type Header struct {
	ID           string `json:"id" yaml:"id"`
	ResponseFrom string `json:"response_from" yaml:"response_from"`
	ResponseTo   string `json:"response_to" yaml:"response_to"`
}

// Body carries the command result
type Body struct {
	Command string `json:"command" yaml:"command"`
	State   string `json:"state" yaml:"state"`
	Data    any    `json:"data,omitempty" yaml:"data,omitempty"`
}

// Builder assembles a Response
type Builder struct {
	resp Response
}

// NewBuilder starts a response to request id sent by requestFrom
func NewBuilder(id, requestFrom, command, state string) *Builder {
	return &Builder{resp: Response{
		Header: Header{ID: id, ResponseFrom: ResponseFromNative, ResponseTo: requestFrom},
		Body:   Body{Command: command, State: state},
	}}
}

// SetBodyData sets the response payload
func (b *Builder) SetBodyData(data any) *Builder {
	b.resp.Body.Data = data
	return b
}

// SetErrorBodyData marks the response as failed and sets the message as payload
func (b *Builder) SetErrorBodyData(errMsg string) *Builder {
	b.resp.Body.State = StateError
	b.resp.Body.Data = errMsg
	return b
}

// Build returns the assembled response
func (b *Builder) Build() Response {
	return b.resp
}

// JSON returns the response as indented JSON
func (r Response) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode response: %w", err)
	}
	return data, nil
}

// ParseResponse decodes a response; Data is left as generic JSON values.
func ParseResponse(data []byte) (Response, error) {
	var r Response
	if err := json.Unmarshal(data, &r); err != nil {
		return Response{}, fmt.Errorf("failed to parse response: %w", err)
	}
	return r, nil
}

// ReadyToWidgetBodyData is the payload answering the widget's ready_to_widget request.
// LocalData goes out as "localDate", the name the widget reads.
type ReadyToWidgetBodyData struct {
	AppKey     string                         `json:"appKey" yaml:"appKey"`
	AppID      string                         `json:"appId" yaml:"appId"`
	Domain     string                         `json:"domain" yaml:"domain"`
	Platform   int                            `json:"platform" yaml:"platform"`
	Type       string                         `json:"type" yaml:"type"`
	Version    string                         `json:"version" yaml:"version"`
	LocalData  map[string]any                 `json:"localDate" yaml:"localDate"`
	Attributes *domain.AttributeWithProviders `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// SetEmailBodyData is the payload answering a set_user_email request
type SetEmailBodyData struct {
	Email string `json:"email" yaml:"email"`
}
