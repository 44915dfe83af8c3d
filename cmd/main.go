// 指示: miu200521358
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/miu200521358/mu_weightcopy/pkg/infra/controller/cli"
)

// main は頂点ウェイトのコピー・貼り付けを実行する。
func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run はCLI処理全体を実行する。
func run(args []string, in io.Reader, out io.Writer, errOut io.Writer) error {
	return cli.Execute(args, in, out, errOut)
}
