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
	"github.com/gnames/gnsyn/pkg/config"
	"github.com/spf13/cobra"
)

// flagFunc converts a command line flag to a config option. It returns
// nil when the flag does not change configuration.
type flagFunc func(cmd *cobra.Command) config.Option

func flagOptions(cmd *cobra.Command, fns ...flagFunc) []config.Option {
	var res []config.Option
	for _, fn := range fns {
		if opt := fn(cmd); opt != nil {
			res = append(res, opt)
		}
	}
	return res
}

// inputFlag is always applied, its default value is the default input.
func inputFlag(cmd *cobra.Command) config.Option {
	s, _ := cmd.Flags().GetString("input")
	return config.OptInput(s)
}

func outputFlag(cmd *cobra.Command) config.Option {
	if !cmd.Flags().Changed("output") {
		return nil
	}
	s, _ := cmd.Flags().GetString("output")
	return config.OptOutput(s)
}

func limitFlag(cmd *cobra.Command) config.Option {
	if !cmd.Flags().Changed("limit") {
		return nil
	}
	i, _ := cmd.Flags().GetInt("limit")
	return config.OptLimit(i)
}
