package main

import (
	"strconv"

	"github.com/spf13/cobra"
	"github.com/wepin/wepin-common-go/internal/output"
	"github.com/wepin/wepin-common-go/pkg/werrors"
)

type codeRow struct {
	Code    int    `json:"code" yaml:"code"`
	Name    string `json:"name" yaml:"name"`
	Message string `json:"message" yaml:"message"`
}

func errorsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "errors [code]",
		Short: "List SDK error codes or describe one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return werrors.Wrap(werrors.CodeInvalidParameter, err, "error code must be numeric")
				}
				c := werrors.FromCode(n, "").Code()
				row := codeRow{Code: int(c), Name: c.Name(), Message: c.Message()}
				doc := output.NewDocument("ERROR "+strconv.Itoa(n)).
					Add("code", strconv.Itoa(row.Code)).
					Add("name", row.Name).
					Add("message", row.Message).
					WithPayload(row)
				return a.render(cmd, doc)
			}

			codes := werrors.Codes()
			rows := make([]codeRow, 0, len(codes))
			doc := output.NewDocument("ERROR CODES (" + werrors.Domain + ")")
			for _, c := range codes {
				rows = append(rows, codeRow{Code: int(c), Name: c.Name(), Message: c.Message()})
				doc.Add(strconv.Itoa(int(c)), c.Name()+": "+c.Message())
			}
			return a.render(cmd, doc.WithPayload(rows))
		},
	}
}
