// Copyright 2026 The lrucache Authors
// This file is part of lrucache.
//
// lrucache is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// lrucache is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with lrucache. If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"runtime"

	"github.com/lrucache/lrucache/internal/version"
	"github.com/urfave/cli/v2"
)

var versionCommand = &cli.Command{
	Action:    printVersion,
	Name:      "version",
	Usage:     "Print version numbers",
	ArgsUsage: " ",
	Description: `
The output of this command is supposed to be machine-readable.
`,
}

func printVersion(ctx *cli.Context) error {
	git, _ := version.VCS()

	fmt.Fprintln(ctx.App.Writer, "Lrucache")
	fmt.Fprintln(ctx.App.Writer, "Version:", version.WithMeta)
	if git.Commit != "" {
		fmt.Fprintln(ctx.App.Writer, "Git Commit:", git.Commit)
	}
	if git.Date != "" {
		fmt.Fprintln(ctx.App.Writer, "Git Commit Date:", git.Date)
	}
	fmt.Fprintln(ctx.App.Writer, "Architecture:", runtime.GOARCH)
	fmt.Fprintln(ctx.App.Writer, "Go Version:", runtime.Version())
	fmt.Fprintln(ctx.App.Writer, "Operating System:", runtime.GOOS)
	return nil
}
