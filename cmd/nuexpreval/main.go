package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/eantcal/nuexpreval/cmd/nuexpreval/cmd"
	evalerrors "github.com/eantcal/nuexpreval/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		var rte *evalerrors.RuntimeError
		if errors.As(err, &rte) {
			fmt.Fprintf(os.Stderr, "%d - %s\n", rte.Code, rte.Error())
			os.Exit(int(rte.Code))
		}

		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
