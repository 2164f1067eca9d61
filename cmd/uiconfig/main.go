// uiconfig prints the configuration the UI scenarios would resolve.
//
//	go run ./cmd/uiconfig --env local -D baseUrl=http://localhost:8080/
//	go run ./cmd/uiconfig --dir ./configs --format yaml --field baseUrl
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/thesyncim/webtests/pkg/config"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		klog.Flush()
		os.Exit(1)
	}
	klog.Flush()
}

type options struct {
	env       string
	dir       string
	format    string
	fields    []string
	overrides config.OverrideFlag
	reveal    bool
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:          "uiconfig",
		Short:        "Print the resolved UI test configuration",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printConfig(out, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.env, "env", config.EnvFromEnviron(), "environment name")
	f.StringVar(&opts.dir, "dir", "", "read resources from this directory instead of the embedded bundle")
	f.StringVar(&opts.format, "format", "properties", "resource format: properties or yaml")
	f.StringSliceVar(&opts.fields, "field", []string{config.FieldBaseURL, config.FieldUsername, config.FieldPassword}, "fields to resolve")
	f.VarP(&opts.overrides, "define", "D", "override a field (name=value), repeatable")
	f.BoolVar(&opts.reveal, "reveal", false, "print sensitive values")

	fs := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(fs)
	cmd.PersistentFlags().AddGoFlagSet(fs)
	return cmd
}

func printConfig(out io.Writer, opts *options) error {
	resolverOpts := []config.Option{config.WithOverrides(opts.overrides.Overrides())}
	if opts.dir != "" {
		resolverOpts = append(resolverOpts, config.WithLoader(config.DirLoader(opts.dir)))
	}
	switch opts.format {
	case "properties":
	case "yaml":
		resolverOpts = append(resolverOpts, config.WithFormat(config.YAMLFormat{}))
	default:
		return fmt.Errorf("unknown format %q", opts.format)
	}

	r, err := config.NewResolver(opts.env, resolverOpts...)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "env: %s\n", r.Env())
	for _, name := range opts.fields {
		v, err := r.Field(name)
		if err != nil {
			return err
		}
		if !opts.reveal && r.IsSensitive(name) {
			v = "[REDACTED]"
		}
		fmt.Fprintf(out, "%s: %s\n", name, v)
	}
	return nil
}
