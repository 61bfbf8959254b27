package flags

import (
	"gopkg.in/urfave/cli.v1"
)

// DecodeFlags covers input selection and output rendering.

func DecodeFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "kind",
			Usage: "Input format (auto|puzzle|solution); auto uses the file extension, then the version",
			Value: "auto",
		},
		cli.StringFlag{
			Name:  "format",
			Usage: "Output encoding (json|yaml|cbor)",
			Value: "json",
		},
		cli.StringFlag{
			Name:  "out",
			Usage: "Write output to this file instead of stdout",
		},
		cli.IntFlag{
			Name:  "workers",
			Usage: "Number of files decoded in parallel",
			Value: 4,
		},
	}
}
