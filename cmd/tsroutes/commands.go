package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	textsecure "github.com/tokenbrowser/go-textsecure"
)

const (
	cfgConfigFile = "config"
	cfgServer     = textsecure.PropServer
	cfgTimeout    = textsecure.PropTimeout
)

var (
	rootCmd = &cobra.Command{
		Use:          "tsroutes",
		Short:        "Inspect TextSecure server routes",
		SilenceUsage: true,
	}

	routesCmd = &cobra.Command{
		Use:   "routes",
		Short: "List known routes and their templates",
		Args:  cobra.NoArgs,
		RunE:  runRoutes,
	}

	formatCmd = &cobra.Command{
		Use:   "format <route> [argument]",
		Short: "Format a route path",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  runFormat,
	}

	urlCmd = &cobra.Command{
		Use:   "url <route> [argument]",
		Short: "Compose an absolute request URL",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  runURL,
	}

	messageTypeCmd = &cobra.Command{
		Use:   "message-type <value>",
		Short: "Decode an envelope type value",
		Args:  cobra.ExactArgs(1),
		RunE:  runMessageType,
	}

	// urlFlags are bound to viper so they can also come from the
	// environment (TEXTSECURE_SERVER, TEXTSECURE_TIMEOUT) or the config file.
	urlFlags = flag.NewFlagSet("", flag.ContinueOnError)
)

func runRoutes(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ROUTE\tTEMPLATE\tARGS\tAPI")
	for _, r := range textsecure.Routes() {
		tmpl, err := r.Template()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", r, tmpl, r.Arity(), r.APIVersion())
	}
	return w.Flush()
}

func runFormat(cmd *cobra.Command, args []string) error {
	path, err := textsecure.FormatRoute(args[0], args[1:]...)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

func runURL(cmd *cobra.Command, args []string) error {
	route, err := textsecure.LookupRoute(args[0])
	if err != nil {
		return err
	}
	endpoint, err := newEndpoint()
	if err != nil {
		return err
	}
	u, err := endpoint.URL(route, args[1:]...)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), u)
	return nil
}

func runMessageType(cmd *cobra.Command, args []string) error {
	v, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("message type %q is not an integer: %w", args[0], err)
	}
	printMessageType(cmd.OutOrStdout(), textsecure.ParseMessageType(v))
	return nil
}

func printMessageType(w io.Writer, t textsecure.MessageType) {
	fmt.Fprintf(w, "%d %s encrypted=%t\n", int32(t), t, t.IsEncrypted())
}

// newEndpoint builds the endpoint from the config file, then flags and
// environment on top.
func newEndpoint() (*textsecure.Endpoint, error) {
	cfg := textsecure.NewConfig()
	if path := viper.GetString(cfgConfigFile); path != "" {
		loaded, err := textsecure.LoadConfigFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if viper.IsSet(cfgServer) {
		if err := cfg.SetProperty(textsecure.PropServer, viper.GetString(cfgServer)); err != nil {
			return nil, err
		}
	}
	if viper.IsSet(cfgTimeout) {
		secs, err := parseTimeoutSeconds(viper.GetString(cfgTimeout))
		if err != nil {
			return nil, err
		}
		if err := cfg.SetProperty(textsecure.PropTimeout, strconv.Itoa(secs)); err != nil {
			return nil, err
		}
	}
	return textsecure.NewEndpoint(cfg)
}

// parseTimeoutSeconds reads a timeout given either as a bare number of
// seconds, the unit config files use, or as a duration such as "1m30s".
func parseTimeoutSeconds(v string) (int, error) {
	v = strings.TrimSpace(v)
	if secs, err := strconv.Atoi(v); err == nil {
		return secs, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is neither seconds nor a duration: %w", cfgTimeout, v, err)
	}
	return int(d / time.Second), nil
}

func init() {
	urlFlags.String(cfgConfigFile, "", "client config file (key=value; lines)")
	urlFlags.String(cfgServer, "", "server base URL")
	urlFlags.String(cfgTimeout, strconv.Itoa(textsecure.HTTPTimeoutSeconds), "per-request timeout in seconds, or a duration such as 1m")
	_ = viper.BindPFlags(urlFlags)

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	urlCmd.Flags().AddFlagSet(urlFlags)

	rootCmd.AddCommand(routesCmd, formatCmd, urlCmd, messageTypeCmd)
}
