/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"github.com/gnames/bggmech/pkg/config"
	"github.com/spf13/cobra"
)

// flagOptions converts explicitly set flags into config options.
func flagOptions(cmd *cobra.Command) []config.Option {
	var res []config.Option
	flags := cmd.Flags()

	if flags.Changed("max-game") {
		i, _ := flags.GetInt("max-game")
		res = append(res, config.OptInputMaxGame(i))
	}
	if flags.Changed("input-dir") {
		s, _ := flags.GetString("input-dir")
		res = append(res, config.OptInputDir(s))
	}
	if flags.Changed("output") {
		s, _ := flags.GetString("output")
		res = append(res, config.OptOutputPath(s))
	}
	if flags.Changed("format") {
		s, _ := flags.GetString("format")
		res = append(res, config.OptOutputFormat(s))
	}
	return res
}
